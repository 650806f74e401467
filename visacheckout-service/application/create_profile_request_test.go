package application

import (
	"context"
	"testing"

	"github.com/draftea/visa-checkout/visacheckout-service/domain"
	"github.com/draftea/visa-checkout/visacheckout-service/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func merchantConfiguration(environment string, enabled bool) *domain.Configuration {
	return &domain.Configuration{
		Environment:  environment,
		ClientAPIURL: "https://api.sandbox.braintreegateway.com/merchants/integration_merchant_id/client_api",
		VisaCheckout: domain.MerchantVisaConfig{
			APIKey:             "gwApiKey",
			AcceptedCardBrands: []string{domain.CardBrandVisa, domain.CardBrandMastercard},
			ExternalClientID:   "gwExternalClientId",
			Enabled:            enabled,
		},
	}
}

func TestCreateProfileRequest_Execute(t *testing.T) {
	fetchErr := errors.New("configuration unavailable")

	tests := []struct {
		name           string
		setupMocks     func(*mocks.MockConfigurationProvider, *mocks.MockSDKProbe)
		expectedError  error
		expectedResult *domain.ProfileRequest
	}{
		{
			name: "production merchant with sdk present",
			setupMocks: func(provider *mocks.MockConfigurationProvider, probe *mocks.MockSDKProbe) {
				provider.EXPECT().GetConfiguration(mock.Anything).
					Return(merchantConfiguration("production", true), nil).Once()
				probe.EXPECT().Available().Return(true).Once()
			},
			expectedResult: &domain.ProfileRequest{
				MerchantAPIKey:   "gwApiKey",
				Environment:      domain.EnvironmentProduction,
				CardBrands:       []string{"VISA", "MASTERCARD"},
				DataLevel:        domain.DataLevelFull,
				ExternalClientID: "gwExternalClientId",
			},
		},
		{
			name: "unrecognized environment falls back to sandbox",
			setupMocks: func(provider *mocks.MockConfigurationProvider, probe *mocks.MockSDKProbe) {
				provider.EXPECT().GetConfiguration(mock.Anything).
					Return(merchantConfiguration("environment", true), nil).Once()
				probe.EXPECT().Available().Return(true).Once()
			},
			expectedResult: &domain.ProfileRequest{
				MerchantAPIKey:   "gwApiKey",
				Environment:      domain.EnvironmentSandbox,
				CardBrands:       []string{"VISA", "MASTERCARD"},
				DataLevel:        domain.DataLevelFull,
				ExternalClientID: "gwExternalClientId",
			},
		},
		{
			name: "disabled in configuration",
			setupMocks: func(provider *mocks.MockConfigurationProvider, probe *mocks.MockSDKProbe) {
				provider.EXPECT().GetConfiguration(mock.Anything).
					Return(merchantConfiguration("production", false), nil).Once()
				probe.EXPECT().Available().Return(true).Maybe()
			},
			expectedError: domain.ErrConfigurationDisabled,
		},
		{
			name: "sdk absent",
			setupMocks: func(provider *mocks.MockConfigurationProvider, probe *mocks.MockSDKProbe) {
				provider.EXPECT().GetConfiguration(mock.Anything).
					Return(merchantConfiguration("production", true), nil).Once()
				probe.EXPECT().Available().Return(false).Once()
			},
			expectedError: domain.ErrConfigurationDisabled,
		},
		{
			name: "configuration fetch error is returned as is",
			setupMocks: func(provider *mocks.MockConfigurationProvider, probe *mocks.MockSDKProbe) {
				provider.EXPECT().GetConfiguration(mock.Anything).Return(nil, fetchErr).Once()
			},
			expectedError: fetchErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := mocks.NewMockConfigurationProvider(t)
			probe := mocks.NewMockSDKProbe(t)
			tt.setupMocks(provider, probe)

			useCase := NewCreateProfileRequest(provider, probe, nil)
			result, err := useCase.Execute(context.Background())

			if tt.expectedError != nil {
				assert.Same(t, tt.expectedError, err)
				assert.Nil(t, result)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedResult, result)
		})
	}
}

func TestCreateProfileRequest_DisabledErrorMessage(t *testing.T) {
	provider := mocks.NewMockConfigurationProvider(t)
	probe := mocks.NewMockSDKProbe(t)
	provider.EXPECT().GetConfiguration(mock.Anything).
		Return(merchantConfiguration("production", true), nil).Once()
	probe.EXPECT().Available().Return(false).Once()

	_, err := NewCreateProfileRequest(provider, probe, nil).Execute(context.Background())

	var cfgErr *domain.ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
	assert.EqualError(t, err, "Visa Checkout is not enabled.")
}

func TestCreateProfileRequest_DoesNotShareCardBrands(t *testing.T) {
	cfg := merchantConfiguration("sandbox", true)
	provider := mocks.NewMockConfigurationProvider(t)
	probe := mocks.NewMockSDKProbe(t)
	provider.EXPECT().GetConfiguration(mock.Anything).Return(cfg, nil).Once()
	probe.EXPECT().Available().Return(true).Once()

	profile, err := NewCreateProfileRequest(provider, probe, nil).Execute(context.Background())
	assert.NoError(t, err)

	profile.CardBrands[0] = "ELO"
	assert.Equal(t, domain.CardBrandVisa, cfg.VisaCheckout.AcceptedCardBrands[0])
}
