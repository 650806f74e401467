package handlers

import (
	"context"

	"github.com/draftea/visa-checkout/shared/events"
	"github.com/draftea/visa-checkout/shared/models"
	"github.com/draftea/visa-checkout/visacheckout-service/application"
	"github.com/draftea/visa-checkout/visacheckout-service/domain"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// TokenizeFailedPayload is published when an asynchronous tokenization fails
type TokenizeFailedPayload struct {
	SessionID string `json:"session_id"`
	CallID    string `json:"call_id"`
	Error     string `json:"error"`
}

// TokenizeSucceededPayload is published with the nonce of an asynchronous tokenization
type TokenizeSucceededPayload struct {
	SessionID string                     `json:"session_id"`
	Nonce     *domain.PaymentMethodNonce `json:"nonce"`
}

// VisaCheckoutEventHandlers handles Visa Checkout events from the bus
type VisaCheckoutEventHandlers struct {
	tokenize       *application.TokenizeVisaCheckout
	outcomes       domain.TokenizeOutcomeStore
	eventPublisher events.Publisher
	logger         *zap.Logger
}

// NewVisaCheckoutEventHandlers creates new Visa Checkout event handlers
func NewVisaCheckoutEventHandlers(
	tokenize *application.TokenizeVisaCheckout,
	outcomes domain.TokenizeOutcomeStore,
	eventPublisher events.Publisher,
	logger *zap.Logger,
) *VisaCheckoutEventHandlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VisaCheckoutEventHandlers{
		tokenize:       tokenize,
		outcomes:       outcomes,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

// Handle implements the events.EventHandler interface
func (h *VisaCheckoutEventHandlers) Handle(ctx context.Context, event *events.Event) error {
	switch event.EventType {
	case events.VisaCheckoutTokenizeRequestedEvent:
		return h.HandleTokenizeRequested(ctx, event)
	default:
		// Unknown event type, ignore
		return nil
	}
}

// HandlerID returns the unique identifier for this event handler
func (h *VisaCheckoutEventHandlers) HandlerID() string {
	return "visacheckout-service-event-handler"
}

// HandleTokenizeRequested tokenizes the carried summary at most once per request event
// and publishes the outcome. Once a request is claimed the message is always acked;
// a redelivered request republishes the stored outcome instead of tokenizing again.
func (h *VisaCheckoutEventHandlers) HandleTokenizeRequested(ctx context.Context, event *events.Event) error {
	log := h.logger.With(zap.String("event_id", event.ID.String()))

	var cmd application.TokenizeVisaCheckoutCommand
	if err := event.UnmarshalPayload(&cmd); err != nil {
		log.Error("dropping malformed tokenize request", zap.Error(err))
		return nil
	}
	cmd.SessionID = resolveSessionID(cmd.SessionID, event.AggregateID).String()

	claimed, err := h.outcomes.Claim(ctx, event.ID)
	if err != nil {
		// nothing was tokenized yet, the request may be redelivered
		return errors.Wrap(err, "failed to claim tokenize request")
	}
	if !claimed {
		h.republish(ctx, log, event)
		return nil
	}

	var outcome *domain.TokenizeOutcome
	h.tokenize.Execute(ctx, &cmd, func(nonce *domain.PaymentMethodNonce, err error) {
		outcome = &domain.TokenizeOutcome{
			EventID:   models.GenerateUUID(),
			SessionID: models.ID(cmd.SessionID),
			CallID:    cmd.PaymentSummary.CallID,
			Nonce:     nonce,
		}
		if err != nil {
			outcome.Error = err.Error()
		}
	})

	if err := h.outcomes.Save(ctx, event.ID, outcome); err != nil {
		log.Warn("failed to store tokenize outcome", zap.Error(err))
	}
	h.publish(ctx, log, event, outcome)

	return nil
}

func (h *VisaCheckoutEventHandlers) republish(ctx context.Context, log *zap.Logger, request *events.Event) {
	outcome, found, err := h.outcomes.Get(ctx, request.ID)
	if err != nil {
		log.Warn("failed to load tokenize outcome for redelivered request", zap.Error(err))
		return
	}
	if !found {
		log.Info("tokenize request already claimed without a recorded outcome")
		return
	}
	h.publish(ctx, log, request, outcome)
}

func (h *VisaCheckoutEventHandlers) publish(ctx context.Context, log *zap.Logger, request *events.Event, outcome *domain.TokenizeOutcome) {
	event := outcomeEvent(request, outcome)
	if err := h.eventPublisher.Publish(ctx, event); err != nil {
		log.Error("failed to publish tokenize outcome",
			zap.String("outcome", event.EventType),
			zap.Error(err))
	}
}

func outcomeEvent(request *events.Event, outcome *domain.TokenizeOutcome) *events.Event {
	var event *events.Event
	if outcome.Failed() {
		event = events.NewEvent(outcome.SessionID, events.VisaCheckoutTokenizeFailedEvent, TokenizeFailedPayload{
			SessionID: outcome.SessionID.String(),
			CallID:    outcome.CallID,
			Error:     outcome.Error,
		})
	} else {
		event = events.NewEvent(outcome.SessionID, events.VisaCheckoutTokenizeSucceededEvent, TokenizeSucceededPayload{
			SessionID: outcome.SessionID.String(),
			Nonce:     outcome.Nonce,
		})
	}
	event.ID = outcome.EventID
	return event.WithCorrelationID(request.ID)
}

func resolveSessionID(sessionID string, aggregateID models.ID) models.ID {
	if sessionID != "" {
		return models.ID(sessionID)
	}
	if !aggregateID.IsZero() {
		return aggregateID
	}
	return models.GenerateUUID()
}
