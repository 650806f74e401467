package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticProbe bool

func (p staticProbe) Available() bool { return bool(p) }

func enabledConfiguration(environment string) *Configuration {
	return &Configuration{
		Environment: environment,
		VisaCheckout: MerchantVisaConfig{
			APIKey:             "gwApiKey",
			AcceptedCardBrands: []string{CardBrandVisa, CardBrandMastercard},
			ExternalClientID:   "gwExternalClientId",
			Enabled:            true,
		},
	}
}

func TestIsEligible(t *testing.T) {
	disabled := enabledConfiguration("production")
	disabled.VisaCheckout.Enabled = false

	tests := []struct {
		name     string
		probe    SDKProbe
		config   *Configuration
		expected bool
	}{
		{name: "sdk present and enabled", probe: staticProbe(true), config: enabledConfiguration("production"), expected: true},
		{name: "sdk absent", probe: staticProbe(false), config: enabledConfiguration("production"), expected: false},
		{name: "disabled in configuration", probe: staticProbe(true), config: disabled, expected: false},
		{name: "sdk absent and disabled", probe: staticProbe(false), config: disabled, expected: false},
		{name: "nil configuration", probe: staticProbe(true), config: nil, expected: false},
		{name: "nil probe", probe: nil, config: enabledConfiguration("production"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsEligible(tt.probe, tt.config))
		})
	}
}

func TestNewProfileRequest_ProductionScenario(t *testing.T) {
	profile := NewProfileRequest(enabledConfiguration("production"))

	assert.Equal(t, &ProfileRequest{
		MerchantAPIKey:   "gwApiKey",
		Environment:      EnvironmentProduction,
		CardBrands:       []string{"VISA", "MASTERCARD"},
		DataLevel:        DataLevelFull,
		ExternalClientID: "gwExternalClientId",
	}, profile)
}

func TestNewProfileRequest_NonProductionUsesSandbox(t *testing.T) {
	for _, env := range []string{"environment", "sandbox", "Production", "", "production "} {
		t.Run("env="+env, func(t *testing.T) {
			profile := NewProfileRequest(enabledConfiguration(env))
			assert.Equal(t, EnvironmentSandbox, profile.Environment)
		})
	}
}

func TestNewProfileRequest_AlwaysFullDataLevel(t *testing.T) {
	configs := []*Configuration{
		enabledConfiguration("production"),
		enabledConfiguration("sandbox"),
		{VisaCheckout: MerchantVisaConfig{Enabled: true}},
		{},
	}

	for _, cfg := range configs {
		assert.Equal(t, DataLevelFull, NewProfileRequest(cfg).DataLevel)
	}
}

func TestNewProfileRequest_PreservesCardBrandOrder(t *testing.T) {
	cfg := enabledConfiguration("sandbox")
	cfg.VisaCheckout.AcceptedCardBrands = []string{CardBrandAmex, CardBrandVisa, CardBrandDiscover, CardBrandMastercard}

	profile := NewProfileRequest(cfg)

	assert.Equal(t, []string{"AMEX", "VISA", "DISCOVER", "MASTERCARD"}, profile.CardBrands)
}

func TestNewProfileRequest_CopiesCardBrands(t *testing.T) {
	cfg := enabledConfiguration("sandbox")

	profile := NewProfileRequest(cfg)
	profile.CardBrands[0] = "ELO"

	assert.Equal(t, CardBrandVisa, cfg.VisaCheckout.AcceptedCardBrands[0])
}

func TestNewProfileRequest_EmptyBrands(t *testing.T) {
	cfg := enabledConfiguration("sandbox")
	cfg.VisaCheckout.AcceptedCardBrands = nil

	profile := NewProfileRequest(cfg)

	require.NotNil(t, profile.CardBrands)
	assert.Empty(t, profile.CardBrands)
}

func TestErrConfigurationDisabled_Message(t *testing.T) {
	assert.EqualError(t, ErrConfigurationDisabled, "Visa Checkout is not enabled.")
}
