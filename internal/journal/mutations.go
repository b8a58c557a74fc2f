package journal

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"tradelog/internal/api"
	apperrors "tradelog/internal/errors"
	"tradelog/internal/models"
	"tradelog/internal/notify"
	"tradelog/internal/validate"
)

// ValidationError is returned when a submission fails local validation
// and never reaches the network.
type ValidationError struct {
	Issues validate.Issues
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Issues.Summary()
}

func (e *ValidationError) Unwrap() error {
	return apperrors.ErrInputValidation
}

// Mutations is the write side of the journal service. Every mutation
// validates locally, calls its binding, invalidates the relevant cache
// keys on success and surfaces a success or error notification. None of
// the mutations retry; the user resubmits.
type Mutations struct {
	client   *api.Client
	cache    *Cache
	notifier notify.Notifier
	logger   zerolog.Logger
}

// NewMutations creates the write side of the journal service.
func NewMutations(client *api.Client, cache *Cache, notifier notify.Notifier, logger zerolog.Logger) (*Mutations, error) {
	if client == nil {
		return nil, apperrors.Wrap(apperrors.ErrServiceMissing, "api client")
	}
	if cache == nil {
		return nil, apperrors.Wrap(apperrors.ErrServiceMissing, "query cache")
	}
	if notifier == nil {
		notifier = notify.NewNoOpNotifier()
	}
	return &Mutations{
		client:   client,
		cache:    cache,
		notifier: notifier,
		logger:   logger,
	}, nil
}

// handleSuccess invalidates the affected cache keys and notifies. The
// notification fires after the request settled and before dependent
// reads can observe the stale entries.
func (m *Mutations) handleSuccess(ctx context.Context, message string, keys ...string) {
	m.cache.Invalidate(keys...)
	if err := m.notifier.Success(ctx, message); err != nil {
		m.logger.Warn().Err(err).Msg("failed to send success notification")
	}
}

// handleError surfaces a normalized, human-readable error notification:
// a field-level summary for validation failures, a flat message for
// everything else. Never a raw stack trace.
func (m *Mutations) handleError(ctx context.Context, err error, action, entity string) {
	message := failureMessage(err)
	m.logger.Error().Err(err).Str("action", action).Str("entity", entity).Msg("mutation failed")
	if nerr := m.notifier.Failure(ctx, fmt.Sprintf("%s %s", action, entity), message); nerr != nil {
		m.logger.Warn().Err(nerr).Msg("failed to send error notification")
	}
}

// failureMessage flattens any mutation error into one displayable line.
func failureMessage(err error) string {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Issues.Summary()
	}

	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Kind {
		case api.KindValidation:
			return apiErr.FieldSummary()
		case api.KindTimeout:
			return "the request timed out; please try again"
		case api.KindNetwork:
			return "could not reach the server; check your connection"
		case api.KindAuth:
			return "you are not authorized to perform this action"
		default:
			return apiErr.Message
		}
	}

	return err.Error()
}

// --- Trades ---

// CreateTrade validates and creates a trade with its scale plans.
func (m *Mutations) CreateTrade(ctx context.Context, payload *models.TradeCreate) (*models.Trade, error) {
	if issues := validate.Trade(payload); !issues.Valid() {
		err := &ValidationError{Issues: issues}
		m.handleError(ctx, err, "create", "trade")
		return nil, err
	}

	trade, err := m.client.CreateTrade(ctx, payload)
	if err != nil {
		m.handleError(ctx, err, "create", "trade")
		return nil, err
	}

	m.handleSuccess(ctx, "Trade created successfully", KeyTrades, KeyLiveTrades)
	return trade, nil
}

// ReplaceTrade validates and fully replaces a trade.
func (m *Mutations) ReplaceTrade(ctx context.Context, id string, payload *models.TradeCreate) (*models.Trade, error) {
	if issues := validate.Trade(payload); !issues.Valid() {
		err := &ValidationError{Issues: issues}
		m.handleError(ctx, err, "update", "trade")
		return nil, err
	}

	trade, err := m.client.ReplaceTrade(ctx, id, payload)
	if err != nil {
		m.handleError(ctx, err, "update", "trade")
		return nil, err
	}

	m.handleSuccess(ctx, "Trade updated successfully", KeyTrades, KeyLiveTrades)
	return trade, nil
}

// UpdateTrade applies a partial trade update.
func (m *Mutations) UpdateTrade(ctx context.Context, id string, payload *models.TradeUpdate) (*models.Trade, error) {
	return m.updateTrade(ctx, id, payload, "Trade updated successfully")
}

func (m *Mutations) updateTrade(ctx context.Context, id string, payload *models.TradeUpdate, message string) (*models.Trade, error) {
	trade, err := m.client.UpdateTrade(ctx, id, payload)
	if err != nil {
		m.handleError(ctx, err, "update", "trade")
		return nil, err
	}

	m.handleSuccess(ctx, message, KeyTrades, KeyLiveTrades)
	return trade, nil
}

// DeleteTrade deletes a trade; the backend cascades to its plans and
// executions.
func (m *Mutations) DeleteTrade(ctx context.Context, id string) error {
	if err := m.client.DeleteTrade(ctx, id); err != nil {
		m.handleError(ctx, err, "delete", "trade")
		return err
	}

	m.handleSuccess(ctx, "Trade deleted successfully", KeyTrades, KeyLiveTrades, KeyExecutions(id))
	return nil
}

// --- Trade ideas ---

// CreateTradeIdea validates and creates a trade idea.
func (m *Mutations) CreateTradeIdea(ctx context.Context, payload *models.TradeIdeaCreate) (*models.TradeIdea, error) {
	if issues := validate.TradeIdea(payload); !issues.Valid() {
		err := &ValidationError{Issues: issues}
		m.handleError(ctx, err, "create", "trade idea")
		return nil, err
	}

	idea, err := m.client.CreateTradeIdea(ctx, payload)
	if err != nil {
		m.handleError(ctx, err, "create", "trade idea")
		return nil, err
	}

	m.handleSuccess(ctx, "Trade idea created successfully", KeyTradeIdeas)
	return idea, nil
}

// UpdateTradeIdea applies a partial trade-idea update.
func (m *Mutations) UpdateTradeIdea(ctx context.Context, id string, payload *models.TradeIdeaUpdate) (*models.TradeIdea, error) {
	idea, err := m.client.UpdateTradeIdea(ctx, id, payload)
	if err != nil {
		m.handleError(ctx, err, "update", "trade idea")
		return nil, err
	}

	m.handleSuccess(ctx, "Trade idea updated successfully", KeyTradeIdeas)
	return idea, nil
}

// DeleteTradeIdea deletes a trade idea.
func (m *Mutations) DeleteTradeIdea(ctx context.Context, id string) error {
	if err := m.client.DeleteTradeIdea(ctx, id); err != nil {
		m.handleError(ctx, err, "delete", "trade idea")
		return err
	}

	m.handleSuccess(ctx, "Trade idea deleted successfully", KeyTradeIdeas)
	return nil
}

// PromoteIdea creates a live trade from a trade idea and flips the idea
// status to live. Both the live-trade list and the originating idea
// list are invalidated.
func (m *Mutations) PromoteIdea(ctx context.Context, ideaID string, payload *models.TradeCreate) (*models.Trade, error) {
	if issues := validate.Trade(payload); !issues.Valid() {
		err := &ValidationError{Issues: issues}
		m.handleError(ctx, err, "create", "live trade")
		return nil, err
	}

	trade, err := m.client.CreateLiveTrade(ctx, payload)
	if err != nil {
		m.handleError(ctx, err, "create", "live trade")
		return nil, err
	}

	live := models.IdeaLive
	if _, err := m.client.UpdateTradeIdea(ctx, ideaID, &models.TradeIdeaUpdate{Status: &live}); err != nil {
		// The trade exists; report the partial promotion but keep it.
		m.handleError(ctx, err, "update", "trade idea")
		m.cache.Invalidate(KeyTrades, KeyLiveTrades, KeyTradeIdeas)
		return trade, err
	}

	m.handleSuccess(ctx, "Live trade created successfully", KeyTrades, KeyLiveTrades, KeyTradeIdeas)
	return trade, nil
}

// --- Scale plans ---

// CreateScalePlan validates and creates a scale plan on a trade.
func (m *Mutations) CreateScalePlan(ctx context.Context, payload *models.ScalePlanCreate) (*models.ScalePlan, error) {
	if issues := validate.ScalePlan(payload); !issues.Valid() {
		err := &ValidationError{Issues: issues}
		m.handleError(ctx, err, "create", "scale plan")
		return nil, err
	}

	plan, err := m.client.CreateScalePlan(ctx, payload)
	if err != nil {
		m.handleError(ctx, err, "create", "scale plan")
		return nil, err
	}

	m.handleSuccess(ctx, "Scale plan created successfully", KeyTrades, KeyLiveTrades)
	return plan, nil
}

// UpdateScalePlan applies a partial scale-plan update.
func (m *Mutations) UpdateScalePlan(ctx context.Context, id string, payload *models.ScalePlanUpdate) (*models.ScalePlan, error) {
	plan, err := m.client.UpdateScalePlan(ctx, id, payload)
	if err != nil {
		m.handleError(ctx, err, "update", "scale plan")
		return nil, err
	}

	m.handleSuccess(ctx, "Scale plan updated successfully", KeyTrades, KeyLiveTrades)
	return plan, nil
}

// DeleteScalePlan deletes a scale plan.
func (m *Mutations) DeleteScalePlan(ctx context.Context, id string) error {
	if err := m.client.DeleteScalePlan(ctx, id); err != nil {
		m.handleError(ctx, err, "delete", "scale plan")
		return err
	}

	m.handleSuccess(ctx, "Scale plan deleted successfully", KeyTrades, KeyLiveTrades)
	return nil
}

// --- Executions ---

// ExecutePlan validates and records a fill through the settlement
// endpoint.
func (m *Mutations) ExecutePlan(ctx context.Context, payload *models.ExecutionCreate) (*models.Execution, error) {
	if issues := validate.Execution(payload); !issues.Valid() {
		err := &ValidationError{Issues: issues}
		m.handleError(ctx, err, "create", "trade execution")
		return nil, err
	}

	exec, err := m.client.ExecutePlan(ctx, payload)
	if err != nil {
		m.handleError(ctx, err, "create", "trade execution")
		return nil, err
	}

	m.handleSuccess(ctx, "Executed plan successfully", KeyTrades, KeyLiveTrades, KeyExecutions(payload.TradeID))
	return exec, nil
}

// UpdateExecution applies a partial update to an execution record.
func (m *Mutations) UpdateExecution(ctx context.Context, id, tradeID string, payload *models.ExecutionUpdate) (*models.Execution, error) {
	exec, err := m.client.UpdateExecution(ctx, id, payload)
	if err != nil {
		m.handleError(ctx, err, "update", "trade execution")
		return nil, err
	}

	m.handleSuccess(ctx, "Execution updated successfully", KeyTrades, KeyLiveTrades, KeyExecutions(tradeID))
	return exec, nil
}

// DeleteExecution deletes an execution record.
func (m *Mutations) DeleteExecution(ctx context.Context, id, tradeID string) error {
	if err := m.client.DeleteExecution(ctx, id); err != nil {
		m.handleError(ctx, err, "delete", "trade execution")
		return err
	}

	m.handleSuccess(ctx, "Execution deleted successfully", KeyTrades, KeyLiveTrades, KeyExecutions(tradeID))
	return nil
}

// --- Annotations ---

// CreateAnnotation validates and appends an annotation to a trade.
func (m *Mutations) CreateAnnotation(ctx context.Context, payload *models.AnnotationCreate) (*models.Annotation, error) {
	if issues := validate.Annotation(payload); !issues.Valid() {
		err := &ValidationError{Issues: issues}
		m.handleError(ctx, err, "create", "annotation")
		return nil, err
	}

	a, err := m.client.CreateAnnotation(ctx, payload)
	if err != nil {
		m.handleError(ctx, err, "create", "annotation")
		return nil, err
	}

	m.handleSuccess(ctx, "Annotation added successfully", KeyTrades, KeyLiveTrades)
	return a, nil
}
