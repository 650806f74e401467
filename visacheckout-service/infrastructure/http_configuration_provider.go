package infrastructure

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/draftea/visa-checkout/visacheckout-service/domain"
	"github.com/pkg/errors"
)

const configurationVersion = "3"

// configurationResponse is the subset of the client configuration this service reads
type configurationResponse struct {
	Environment  string `json:"environment"`
	ClientAPIURL string `json:"clientApiUrl"`
	Analytics    struct {
		URL string `json:"url"`
	} `json:"analytics"`
	VisaCheckout struct {
		APIKey             string   `json:"apikey"`
		ExternalClientID   string   `json:"externalClientId"`
		SupportedCardTypes []string `json:"supportedCardTypes"`
	} `json:"visaCheckout"`
}

// toDomain maps the gateway document. Visa Checkout is enabled when an API key is present.
func (r *configurationResponse) toDomain() *domain.Configuration {
	apiKey := strings.TrimSpace(r.VisaCheckout.APIKey)
	return &domain.Configuration{
		Environment:  r.Environment,
		ClientAPIURL: r.ClientAPIURL,
		AnalyticsURL: r.Analytics.URL,
		VisaCheckout: domain.MerchantVisaConfig{
			APIKey:             apiKey,
			AcceptedCardBrands: domain.CardBrandsFromCardTypes(r.VisaCheckout.SupportedCardTypes),
			ExternalClientID:   r.VisaCheckout.ExternalClientID,
			Enabled:            apiKey != "",
		},
	}
}

// HTTPConfigurationProvider fetches the merchant configuration from the gateway
type HTTPConfigurationProvider struct {
	client           *gatewayClient
	configurationURL string
}

// NewHTTPConfigurationProvider creates a new HTTPConfigurationProvider
func NewHTTPConfigurationProvider(httpClient *http.Client, settings GatewaySettings) *HTTPConfigurationProvider {
	return &HTTPConfigurationProvider{
		client:           &gatewayClient{httpClient: httpClient, fingerprint: settings.AuthorizationFingerprint},
		configurationURL: settings.ConfigurationURL,
	}
}

// GetConfiguration implements domain.ConfigurationProvider
func (p *HTTPConfigurationProvider) GetConfiguration(ctx context.Context) (*domain.Configuration, error) {
	u, err := url.Parse(p.configurationURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid configuration url")
	}
	q := u.Query()
	q.Set("configVersion", configurationVersion)
	u.RawQuery = q.Encode()

	var resp configurationResponse
	if err := p.client.do(ctx, http.MethodGet, u.String(), nil, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to fetch configuration")
	}

	return resp.toDomain(), nil
}
