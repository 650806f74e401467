package domain

import (
	"context"

	"github.com/draftea/visa-checkout/shared/models"
)

//go:generate mockery --name=TokenizeOutcomeStore --output=../mocks --outpkg=mocks --structname=MockTokenizeOutcomeStore --with-expecter

// TokenizeOutcome is the recorded result of one asynchronous tokenization request
type TokenizeOutcome struct {
	EventID   models.ID           `json:"event_id"`
	SessionID models.ID           `json:"session_id"`
	CallID    string              `json:"call_id"`
	Nonce     *PaymentMethodNonce `json:"nonce,omitempty"`
	Error     string              `json:"error,omitempty"`
}

// Failed reports whether the tokenization ended in an error
func (o *TokenizeOutcome) Failed() bool {
	return o.Nonce == nil
}

// TokenizeOutcomeStore keeps tokenization requests single-shot across redeliveries.
// Claim returns false when the request was already taken by an earlier delivery.
type TokenizeOutcomeStore interface {
	Claim(ctx context.Context, requestID models.ID) (bool, error)
	Get(ctx context.Context, requestID models.ID) (*TokenizeOutcome, bool, error)
	Save(ctx context.Context, requestID models.ID, outcome *TokenizeOutcome) error
}
