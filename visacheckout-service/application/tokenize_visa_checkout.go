package application

import (
	"context"

	"github.com/draftea/visa-checkout/shared/logger"
	"github.com/draftea/visa-checkout/shared/models"
	"github.com/draftea/visa-checkout/shared/telemetry"
	"github.com/draftea/visa-checkout/visacheckout-service/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tokenizeMetric = "visacheckout_tokenize_total"

// TokenizeVisaCheckoutCommand carries the payment summary returned by Visa Checkout
type TokenizeVisaCheckoutCommand struct {
	PaymentSummary domain.PaymentSummary `json:"payment_summary"`
	SessionID      string                `json:"session_id,omitempty"`
}

// TokenizeResultFunc receives exactly one of a nonce or an error
type TokenizeResultFunc func(nonce *domain.PaymentMethodNonce, err error)

// TokenizeVisaCheckout exchanges a Visa Checkout payment summary for a payment method nonce
type TokenizeVisaCheckout struct {
	tokenizationService domain.TokenizationService
	analytics           domain.AnalyticsSink
	logger              *zap.Logger
}

// NewTokenizeVisaCheckout creates a new TokenizeVisaCheckout use case
func NewTokenizeVisaCheckout(
	tokenizationService domain.TokenizationService,
	analytics domain.AnalyticsSink,
	logger *zap.Logger,
) *TokenizeVisaCheckout {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TokenizeVisaCheckout{
		tokenizationService: tokenizationService,
		analytics:           analytics,
		logger:              logger,
	}
}

// Execute tokenizes the summary and hands the outcome to onResult. The result is
// delivered before the matching analytics event is sent, and the tokenization
// error is forwarded untouched.
func (uc *TokenizeVisaCheckout) Execute(ctx context.Context, cmd *TokenizeVisaCheckoutCommand, onResult TokenizeResultFunc) {
	ctx, span := telemetry.StartSpan(ctx, "visacheckout.tokenize")
	defer span.End()
	log := logger.WithContext(ctx, uc.logger)

	if cmd == nil {
		uc.fail(ctx, log, span, "", domain.ErrMissingTokenizeCommand, onResult)
		return
	}

	req := domain.NewTokenizationRequest(cmd.PaymentSummary, models.ID(cmd.SessionID))
	span.SetAttributes(attribute.String("visacheckout.session_id", req.SessionID.String()))

	nonce, err := uc.tokenizationService.Tokenize(ctx, req)
	if err == nil && nonce == nil {
		err = domain.ErrEmptyTokenizationResponse
	}
	if err != nil {
		uc.fail(ctx, log, span, req.SessionID, err, onResult)
		return
	}

	log.Debug("visa checkout tokenization succeeded",
		zap.String("session_id", req.SessionID.String()),
		zap.String("card_type", nonce.Details.CardType))

	onResult(nonce, nil)
	uc.analytics.SendEvent(ctx, domain.AnalyticsTokenizeSucceeded)
	uc.record(ctx, "succeeded")
}

// Tokenize runs Execute and returns its outcome directly
func (uc *TokenizeVisaCheckout) Tokenize(ctx context.Context, cmd *TokenizeVisaCheckoutCommand) (*domain.PaymentMethodNonce, error) {
	var (
		nonce  *domain.PaymentMethodNonce
		result error
	)
	uc.Execute(ctx, cmd, func(n *domain.PaymentMethodNonce, err error) {
		nonce, result = n, err
	})
	return nonce, result
}

func (uc *TokenizeVisaCheckout) fail(ctx context.Context, log *zap.Logger, span trace.Span, sessionID models.ID, err error, onResult TokenizeResultFunc) {
	span.RecordError(err)
	span.SetStatus(codes.Error, "tokenization failed")
	log.Warn("visa checkout tokenization failed",
		zap.String("session_id", sessionID.String()),
		zap.Error(err))

	onResult(nil, err)
	uc.analytics.SendEvent(ctx, domain.AnalyticsTokenizeFailed)
	uc.record(ctx, "failed")
}

func (uc *TokenizeVisaCheckout) record(ctx context.Context, outcome string) {
	telemetry.RecordCounter(ctx, tokenizeMetric, "Visa Checkout tokenization attempts", 1,
		attribute.String("outcome", outcome))
}
