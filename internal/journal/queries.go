package journal

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"tradelog/internal/api"
	apperrors "tradelog/internal/errors"
	"tradelog/internal/metrics"
	"tradelog/internal/models"
	"tradelog/internal/store"
	"tradelog/pkg/utils"
)

// readRetry is the retry policy for idempotent reads. Mutations never
// retry; a failed read against a flaky network gets one more attempt.
func readRetry() utils.RetryConfig {
	cfg := utils.DefaultRetryConfig()
	cfg.MaxAttempts = 2
	cfg.Retryable = func(err error) bool {
		var apiErr *api.Error
		return errors.As(err, &apiErr) && apiErr.Kind == api.KindNetwork
	}
	return cfg
}

// Queries serves cached reads over the API bindings. Results stay fresh
// for the cache's staleness window; consumers always receive copies.
type Queries struct {
	client   *api.Client
	cache    *Cache
	snapshot store.SnapshotStore
	logger   zerolog.Logger
}

// NewQueries creates the read side of the journal service. snapshot may
// be nil, in which case offline fallback is disabled.
func NewQueries(client *api.Client, cache *Cache, snapshot store.SnapshotStore, logger zerolog.Logger) (*Queries, error) {
	if client == nil {
		return nil, apperrors.Wrap(apperrors.ErrServiceMissing, "api client")
	}
	if cache == nil {
		return nil, apperrors.Wrap(apperrors.ErrServiceMissing, "query cache")
	}
	return &Queries{
		client:   client,
		cache:    cache,
		snapshot: snapshot,
		logger:   logger,
	}, nil
}

// Activate marks every cached result stale, forcing fresh fetches. The
// CLI calls this when an interactive session regains the foreground.
func (q *Queries) Activate() {
	q.cache.InvalidateAll()
}

// fetchCached serves key from the cache when fresh, otherwise fetches
// and stores the result.
func fetchCached[T any](c *Cache, key string, fetch func() ([]T, error)) ([]T, error) {
	if v, ok := c.get(key); ok {
		if cached, ok := v.([]T); ok {
			out := make([]T, len(cached))
			copy(out, cached)
			return out, nil
		}
	}

	fresh, err := fetch()
	if err != nil {
		return nil, err
	}
	c.put(key, fresh)

	out := make([]T, len(fresh))
	copy(out, fresh)
	return out, nil
}

// Trades returns all trades. On a network or timeout failure the last
// local snapshot is served instead, when one exists.
func (q *Queries) Trades(ctx context.Context) ([]models.Trade, error) {
	trades, err := fetchCached(q.cache, KeyTrades, func() ([]models.Trade, error) {
		fetched, err := utils.RetryWithResult(ctx, readRetry(), func() ([]models.Trade, error) {
			return q.client.ListTrades(ctx)
		})
		if err != nil {
			return nil, err
		}
		q.saveSnapshot(ctx, fetched)
		return fetched, nil
	})
	if err != nil {
		return q.tradesFallback(ctx, err)
	}
	return trades, nil
}

// tradesFallback serves the offline snapshot for unreachable-backend
// errors only; application errors pass through.
func (q *Queries) tradesFallback(ctx context.Context, cause error) ([]models.Trade, error) {
	var apiErr *api.Error
	if q.snapshot == nil || !errors.As(cause, &apiErr) {
		return nil, cause
	}
	if apiErr.Kind != api.KindNetwork && apiErr.Kind != api.KindTimeout {
		return nil, cause
	}

	trades, err := q.snapshot.LoadTrades(ctx)
	if err != nil || len(trades) == 0 {
		return nil, cause
	}

	q.logger.Warn().
		Str("kind", string(apiErr.Kind)).
		Time("snapshot_at", q.snapshot.LastSaved(store.EntityTrades)).
		Msg("backend unreachable, serving trade snapshot")
	return trades, nil
}

func (q *Queries) saveSnapshot(ctx context.Context, trades []models.Trade) {
	if q.snapshot == nil {
		return
	}
	if err := q.snapshot.SaveTrades(ctx, trades); err != nil {
		q.logger.Warn().Err(err).Msg("failed to save trade snapshot")
	}
}

// LiveTrades returns trades through the legacy live-trades routes,
// cached independently of the primary trade list.
func (q *Queries) LiveTrades(ctx context.Context) ([]models.Trade, error) {
	return fetchCached(q.cache, KeyLiveTrades, func() ([]models.Trade, error) {
		return utils.RetryWithResult(ctx, readRetry(), func() ([]models.Trade, error) {
			return q.client.ListLiveTrades(ctx)
		})
	})
}

// OpenTrades returns the trades currently open.
func (q *Queries) OpenTrades(ctx context.Context) ([]models.Trade, error) {
	return q.tradesByStatus(ctx, models.TradeOpen)
}

// Watchlist returns the trades still in watching state.
func (q *Queries) Watchlist(ctx context.Context) ([]models.Trade, error) {
	return q.tradesByStatus(ctx, models.TradeWatching)
}

func (q *Queries) tradesByStatus(ctx context.Context, status models.TradeStatus) ([]models.Trade, error) {
	trades, err := q.Trades(ctx)
	if err != nil {
		return nil, err
	}

	filtered := trades[:0]
	for _, t := range trades {
		if t.Status == status {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

// Trade returns a single trade by id.
func (q *Queries) Trade(ctx context.Context, id string) (*models.Trade, error) {
	trades, err := q.Trades(ctx)
	if err != nil {
		return nil, err
	}
	for i := range trades {
		if trades[i].ID == id {
			return &trades[i], nil
		}
	}
	return nil, apperrors.NewEntityError("trade", id, "fetch", apperrors.ErrDataNotFound)
}

// TradeIdeas returns the watchlist of trade ideas. Snapshots are saved
// on successful fetches and served when the backend is unreachable.
func (q *Queries) TradeIdeas(ctx context.Context) ([]models.TradeIdea, error) {
	ideas, err := fetchCached(q.cache, KeyTradeIdeas, func() ([]models.TradeIdea, error) {
		fetched, err := utils.RetryWithResult(ctx, readRetry(), func() ([]models.TradeIdea, error) {
			return q.client.ListTradeIdeas(ctx)
		})
		if err != nil {
			return nil, err
		}
		if q.snapshot != nil {
			if saveErr := q.snapshot.SaveTradeIdeas(ctx, fetched); saveErr != nil {
				q.logger.Warn().Err(saveErr).Msg("failed to save trade-idea snapshot")
			}
		}
		return fetched, nil
	})
	if err != nil {
		return q.ideasFallback(ctx, err)
	}
	return ideas, nil
}

func (q *Queries) ideasFallback(ctx context.Context, cause error) ([]models.TradeIdea, error) {
	var apiErr *api.Error
	if q.snapshot == nil || !errors.As(cause, &apiErr) {
		return nil, cause
	}
	if apiErr.Kind != api.KindNetwork && apiErr.Kind != api.KindTimeout {
		return nil, cause
	}

	ideas, err := q.snapshot.LoadTradeIdeas(ctx)
	if err != nil || len(ideas) == 0 {
		return nil, cause
	}
	return ideas, nil
}

// Executions returns executions, optionally filtered to one trade.
func (q *Queries) Executions(ctx context.Context, tradeID string) ([]models.Execution, error) {
	return fetchCached(q.cache, KeyExecutions(tradeID), func() ([]models.Execution, error) {
		return q.client.ListExecutions(ctx, tradeID)
	})
}

// Metrics computes the position view for a trade. The computation runs
// on every call so the figures always reflect current data.
func (q *Queries) Metrics(ctx context.Context, tradeID string) (metrics.Position, error) {
	trade, err := q.Trade(ctx, tradeID)
	if err != nil {
		return metrics.Position{}, err
	}
	return metrics.Compute(trade), nil
}
