// Package client exposes the Visa Checkout use cases through single-shot callbacks,
// the shape host integrations expect.
package client

import (
	"context"

	"github.com/draftea/visa-checkout/visacheckout-service/application"
	"github.com/draftea/visa-checkout/visacheckout-service/domain"
)

// ProfileCallback receives the profile request or the reason it could not be built
type ProfileCallback func(profile *domain.ProfileRequest, err error)

// TokenizeCallback receives the nonce or the tokenization error
type TokenizeCallback func(nonce *domain.PaymentMethodNonce, err error)

// ActivityResultCallback is accepted for symmetry with the other entry points
type ActivityResultCallback func(err error)

// VisaCheckoutClient runs each call on its own goroutine and calls back exactly once
type VisaCheckoutClient struct {
	createProfileRequest *application.CreateProfileRequest
	tokenize             *application.TokenizeVisaCheckout
	activityResult       *application.HandleActivityResult
}

// NewVisaCheckoutClient creates a new VisaCheckoutClient
func NewVisaCheckoutClient(
	createProfileRequest *application.CreateProfileRequest,
	tokenize *application.TokenizeVisaCheckout,
	activityResult *application.HandleActivityResult,
) *VisaCheckoutClient {
	return &VisaCheckoutClient{
		createProfileRequest: createProfileRequest,
		tokenize:             tokenize,
		activityResult:       activityResult,
	}
}

// CreateProfileRequest builds the Visa Checkout profile for the merchant
func (c *VisaCheckoutClient) CreateProfileRequest(ctx context.Context, callback ProfileCallback) {
	go func() {
		callback(c.createProfileRequest.Execute(ctx))
	}()
}

// Tokenize exchanges a payment summary for a payment method nonce. The callback runs
// before the analytics event for the attempt is recorded.
func (c *VisaCheckoutClient) Tokenize(ctx context.Context, summary domain.PaymentSummary, callback TokenizeCallback) {
	cmd := &application.TokenizeVisaCheckoutCommand{PaymentSummary: summary}
	go c.tokenize.Execute(ctx, cmd, application.TokenizeResultFunc(callback))
}

// OnActivityResult accepts an activity result. The callback is never invoked.
func (c *VisaCheckoutClient) OnActivityResult(ctx context.Context, result *application.ActivityResult, _ ActivityResultCallback) {
	c.activityResult.Execute(ctx, result)
}
