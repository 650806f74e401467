package infrastructure

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/draftea/visa-checkout/visacheckout-service/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configurationWithVisaCheckout = `{
	"environment": "production",
	"clientApiUrl": "https://api.braintreegateway.com/merchants/merchant_id/client_api",
	"analytics": {"url": "https://origin-analytics-prod.production.braintree-api.com/merchant_id"},
	"visaCheckout": {
		"apikey": "gwApiKey",
		"externalClientId": "gwExternalClientId",
		"supportedCardTypes": ["Visa", "MasterCard", "JCB", "American Express"]
	}
}`

func TestHTTPConfigurationProvider_GetConfiguration(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected *domain.Configuration
	}{
		{
			name: "visa checkout enabled",
			body: configurationWithVisaCheckout,
			expected: &domain.Configuration{
				Environment:  "production",
				ClientAPIURL: "https://api.braintreegateway.com/merchants/merchant_id/client_api",
				AnalyticsURL: "https://origin-analytics-prod.production.braintree-api.com/merchant_id",
				VisaCheckout: domain.MerchantVisaConfig{
					APIKey:             "gwApiKey",
					AcceptedCardBrands: []string{"VISA", "MASTERCARD", "AMEX"},
					ExternalClientID:   "gwExternalClientId",
					Enabled:            true,
				},
			},
		},
		{
			name: "no visa checkout section",
			body: `{"environment": "sandbox", "clientApiUrl": "https://api.sandbox.braintreegateway.com"}`,
			expected: &domain.Configuration{
				Environment:  "sandbox",
				ClientAPIURL: "https://api.sandbox.braintreegateway.com",
				VisaCheckout: domain.MerchantVisaConfig{AcceptedCardBrands: []string{}},
			},
		},
		{
			name: "blank api key disables visa checkout",
			body: `{"environment": "sandbox", "visaCheckout": {"apikey": "  ", "supportedCardTypes": ["Visa"]}}`,
			expected: &domain.Configuration{
				Environment:  "sandbox",
				VisaCheckout: domain.MerchantVisaConfig{AcceptedCardBrands: []string{"VISA"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/v1/configuration", r.URL.Path)
				assert.Equal(t, "3", r.URL.Query().Get("configVersion"))
				assert.Equal(t, "Bearer fingerprint", r.Header.Get("Authorization"))
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			provider := NewHTTPConfigurationProvider(server.Client(), GatewaySettings{
				ConfigurationURL:         server.URL + "/v1/configuration",
				AuthorizationFingerprint: "fingerprint",
			})

			cfg, err := provider.GetConfiguration(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestHTTPConfigurationProvider_GetConfigurationStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Authorization fingerprint is invalid"}}`))
	}))
	defer server.Close()

	provider := NewHTTPConfigurationProvider(server.Client(), GatewaySettings{ConfigurationURL: server.URL})

	cfg, err := provider.GetConfiguration(context.Background())
	assert.Nil(t, cfg)
	assert.True(t, errors.Is(err, ErrAuthentication))

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, "Authorization fingerprint is invalid", statusErr.Message)
}

func TestHTTPConfigurationProvider_GetConfigurationMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	provider := NewHTTPConfigurationProvider(server.Client(), GatewaySettings{ConfigurationURL: server.URL})

	_, err := provider.GetConfiguration(context.Background())
	assert.ErrorContains(t, err, "failed to decode response")
}
