package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"tradelog/internal/models"
)

// SQLiteStore implements SnapshotStore using SQLite.
type SQLiteStore struct {
	db        *sql.DB
	mu        sync.RWMutex
	saveTimes map[string]time.Time
}

// NewSQLiteStore creates a new SQLite-based snapshot store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	s := &SQLiteStore{
		db:        db,
		saveTimes: make(map[string]time.Time),
	}

	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return s, nil
}

// initSchema creates all required tables and indexes.
func (s *SQLiteStore) initSchema() error {
	schema := `
	-- Last-known trades; payload carries the full wire-format record
	CREATE TABLE IF NOT EXISTS trades (
		id TEXT PRIMARY KEY,
		symbol TEXT NOT NULL,
		status TEXT NOT NULL,
		rating REAL NOT NULL,
		idea_date DATETIME NOT NULL,
		current_price REAL,
		payload TEXT NOT NULL,
		saved_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_trades_symbol ON trades(symbol);
	CREATE INDEX IF NOT EXISTS idx_trades_status ON trades(status);

	-- Last-known trade ideas
	CREATE TABLE IF NOT EXISTS trade_ideas (
		id TEXT PRIMARY KEY,
		symbol TEXT NOT NULL,
		status TEXT NOT NULL,
		rating INTEGER NOT NULL,
		idea_date DATETIME NOT NULL,
		payload TEXT NOT NULL,
		saved_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_trade_ideas_symbol ON trade_ideas(symbol);

	-- Snapshot freshness per entity
	CREATE TABLE IF NOT EXISTS snapshot_times (
		entity TEXT PRIMARY KEY,
		saved_at DATETIME NOT NULL
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveTrades replaces the trade snapshot wholesale.
func (s *SQLiteStore) SaveTrades(ctx context.Context, trades []models.Trade) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM trades`); err != nil {
		return fmt.Errorf("clearing trades snapshot: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO trades (id, symbol, status, rating, idea_date, current_price, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i := range trades {
		t := &trades[i]
		payload, err := json.Marshal(t)
		if err != nil {
			return fmt.Errorf("encoding trade %s: %w", t.ID, err)
		}
		if _, err := stmt.ExecContext(ctx, t.ID, t.Symbol, string(t.Status), t.Rating, t.IdeaDate, t.CurrentPrice, string(payload)); err != nil {
			return fmt.Errorf("inserting trade %s: %w", t.ID, err)
		}
	}

	if err := s.touch(ctx, tx, EntityTrades); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}

	s.mu.Lock()
	s.saveTimes[EntityTrades] = time.Now()
	s.mu.Unlock()
	return nil
}

// LoadTrades returns the last saved trade snapshot.
func (s *SQLiteStore) LoadTrades(ctx context.Context) ([]models.Trade, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT payload FROM trades ORDER BY symbol`)
	if err != nil {
		return nil, fmt.Errorf("querying trades snapshot: %w", err)
	}
	defer rows.Close()

	var trades []models.Trade
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scanning trade row: %w", err)
		}
		var t models.Trade
		if err := json.Unmarshal([]byte(payload), &t); err != nil {
			return nil, fmt.Errorf("decoding trade payload: %w", err)
		}
		trades = append(trades, t)
	}
	return trades, rows.Err()
}

// SaveTradeIdeas replaces the trade-idea snapshot wholesale.
func (s *SQLiteStore) SaveTradeIdeas(ctx context.Context, ideas []models.TradeIdea) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM trade_ideas`); err != nil {
		return fmt.Errorf("clearing trade-ideas snapshot: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO trade_ideas (id, symbol, status, rating, idea_date, payload)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i := range ideas {
		idea := &ideas[i]
		payload, err := json.Marshal(idea)
		if err != nil {
			return fmt.Errorf("encoding idea %s: %w", idea.ID, err)
		}
		if _, err := stmt.ExecContext(ctx, idea.ID, idea.Symbol, string(idea.Status), idea.Rating, idea.IdeaDate, string(payload)); err != nil {
			return fmt.Errorf("inserting idea %s: %w", idea.ID, err)
		}
	}

	if err := s.touch(ctx, tx, EntityTradeIdeas); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}

	s.mu.Lock()
	s.saveTimes[EntityTradeIdeas] = time.Now()
	s.mu.Unlock()
	return nil
}

// LoadTradeIdeas returns the last saved trade-idea snapshot.
func (s *SQLiteStore) LoadTradeIdeas(ctx context.Context) ([]models.TradeIdea, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT payload FROM trade_ideas ORDER BY symbol`)
	if err != nil {
		return nil, fmt.Errorf("querying trade-ideas snapshot: %w", err)
	}
	defer rows.Close()

	var ideas []models.TradeIdea
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scanning idea row: %w", err)
		}
		var idea models.TradeIdea
		if err := json.Unmarshal([]byte(payload), &idea); err != nil {
			return nil, fmt.Errorf("decoding idea payload: %w", err)
		}
		ideas = append(ideas, idea)
	}
	return ideas, rows.Err()
}

// LastSaved returns when the entity snapshot was last written, zero if
// never.
func (s *SQLiteStore) LastSaved(entity string) time.Time {
	s.mu.RLock()
	if t, ok := s.saveTimes[entity]; ok {
		s.mu.RUnlock()
		return t
	}
	s.mu.RUnlock()

	var saved time.Time
	err := s.db.QueryRow(`SELECT saved_at FROM snapshot_times WHERE entity = ?`, entity).Scan(&saved)
	if err != nil {
		return time.Time{}
	}

	s.mu.Lock()
	s.saveTimes[entity] = saved
	s.mu.Unlock()
	return saved
}

func (s *SQLiteStore) touch(ctx context.Context, tx *sql.Tx, entity string) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO snapshot_times (entity, saved_at) VALUES (?, ?)
		ON CONFLICT(entity) DO UPDATE SET saved_at = excluded.saved_at`,
		entity, time.Now())
	if err != nil {
		return fmt.Errorf("recording snapshot time: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
