package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradelog/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "snapshot.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleTrades() []models.Trade {
	stop := 95.0
	return []models.Trade{
		{
			ID:           "t1",
			Symbol:       "AAPL",
			Setup:        "breakout",
			Rating:       4,
			Status:       models.TradeOpen,
			IdeaDate:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			CurrentPrice: 182.5,
			ScalePlans: []models.ScalePlan{{
				ID:        "p1",
				TradeID:   "t1",
				PlanType:  models.PlanEntry,
				OrderType: models.OrderLimit,
				Status:    models.PlanFilled,
				TradeType: models.Long,
				Qty:       100,
				StopPrice: &stop,
				Executions: []models.Execution{{
					ID:          "e1",
					TradeID:     "t1",
					ScalePlanID: "p1",
					Price:       100,
					Qty:         100,
					Side:        models.SideBuy,
					Source:      models.SourceManual,
					ExecutedAt:  time.Date(2024, 3, 2, 14, 30, 0, 0, time.UTC),
				}},
			}},
		},
		{
			ID:       "t2",
			Symbol:   "NVDA",
			Setup:    "pullback",
			Rating:   3,
			Status:   models.TradeWatching,
			IdeaDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestSaveLoadTrades(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveTrades(ctx, sampleTrades()))

	loaded, err := s.LoadTrades(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	// Ordered by symbol; the nested records survive the round trip.
	assert.Equal(t, "AAPL", loaded[0].Symbol)
	assert.Equal(t, "NVDA", loaded[1].Symbol)
	require.Len(t, loaded[0].ScalePlans, 1)
	require.Len(t, loaded[0].ScalePlans[0].Executions, 1)
	assert.Equal(t, 100.0, loaded[0].ScalePlans[0].Executions[0].Price)
}

func TestSaveTradesReplacesWholesale(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveTrades(ctx, sampleTrades()))
	require.NoError(t, s.SaveTrades(ctx, sampleTrades()[:1]))

	loaded, err := s.LoadTrades(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded, 1, "old snapshot should be replaced")
}

func TestSaveLoadTradeIdeas(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	stop := 170.0
	ideas := []models.TradeIdea{{
		ID:           "i1",
		Symbol:       "TSLA",
		Setup:        "base breakout",
		Rating:       4,
		Status:       models.IdeaWatching,
		EntryMin:     180,
		Stop:         &stop,
		TargetPrices: []float64{195, 210},
		IdeaDate:     time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	}}

	require.NoError(t, s.SaveTradeIdeas(ctx, ideas))

	loaded, err := s.LoadTradeIdeas(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "i1", loaded[0].ID)
	assert.Equal(t, []float64{195, 210}, loaded[0].TargetPrices)
	require.NotNil(t, loaded[0].Stop)
	assert.Equal(t, 170.0, *loaded[0].Stop)
}

func TestLoadEmptySnapshot(t *testing.T) {
	s := newTestStore(t)

	trades, err := s.LoadTrades(context.Background())
	require.NoError(t, err)
	assert.Empty(t, trades)
}

func TestLastSaved(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	assert.True(t, s.LastSaved(EntityTrades).IsZero(), "no snapshot yet")

	before := time.Now().Add(-time.Second)
	require.NoError(t, s.SaveTrades(ctx, sampleTrades()))

	assert.False(t, s.LastSaved(EntityTrades).Before(before))
	assert.True(t, s.LastSaved(EntityTradeIdeas).IsZero(), "idea snapshot time should be untouched")
}

func TestLastSavedSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.db")

	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, s.SaveTrades(context.Background(), sampleTrades()))
	s.Close()

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	assert.False(t, reopened.LastSaved(EntityTrades).IsZero(), "snapshot time lost across reopen")
}
