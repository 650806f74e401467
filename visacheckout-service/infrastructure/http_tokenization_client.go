package infrastructure

import (
	"context"
	"net/http"
	"strings"

	"github.com/draftea/visa-checkout/visacheckout-service/domain"
	"github.com/pkg/errors"
)

const visaCheckoutCardsPath = "/v1/payment_methods/visa_checkout_cards"

// ErrEmptyTokenizationResponse is returned when the gateway answers without a card
var ErrEmptyTokenizationResponse = domain.ErrEmptyTokenizationResponse

type tokenizationResponse struct {
	VisaCheckoutCards []*domain.PaymentMethodNonce `json:"visaCheckoutCards"`
}

// HTTPTokenizationClient exchanges Visa Checkout payment summaries for nonces
type HTTPTokenizationClient struct {
	client       *gatewayClient
	clientAPIURL string
}

// NewHTTPTokenizationClient creates a new HTTPTokenizationClient
func NewHTTPTokenizationClient(httpClient *http.Client, settings GatewaySettings) *HTTPTokenizationClient {
	return &HTTPTokenizationClient{
		client:       &gatewayClient{httpClient: httpClient, fingerprint: settings.AuthorizationFingerprint},
		clientAPIURL: strings.TrimRight(settings.ClientAPIURL, "/"),
	}
}

// Tokenize implements domain.TokenizationService
func (c *HTTPTokenizationClient) Tokenize(ctx context.Context, req *domain.TokenizationRequest) (*domain.PaymentMethodNonce, error) {
	var resp tokenizationResponse
	if err := c.client.do(ctx, http.MethodPost, c.clientAPIURL+visaCheckoutCardsPath, req, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to tokenize visa checkout card")
	}

	if len(resp.VisaCheckoutCards) == 0 || resp.VisaCheckoutCards[0] == nil {
		return nil, ErrEmptyTokenizationResponse
	}

	return resp.VisaCheckoutCards[0], nil
}
