package client

import (
	"context"
	"testing"
	"time"

	"github.com/draftea/visa-checkout/visacheckout-service/application"
	"github.com/draftea/visa-checkout/visacheckout-service/domain"
	"github.com/draftea/visa-checkout/visacheckout-service/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type clientMocks struct {
	provider  *mocks.MockConfigurationProvider
	probe     *mocks.MockSDKProbe
	tokenizer *mocks.MockTokenizationService
	analytics *mocks.MockAnalyticsSink
}

func newTestClient(t *testing.T) (*VisaCheckoutClient, *clientMocks) {
	m := &clientMocks{
		provider:  mocks.NewMockConfigurationProvider(t),
		probe:     mocks.NewMockSDKProbe(t),
		tokenizer: mocks.NewMockTokenizationService(t),
		analytics: mocks.NewMockAnalyticsSink(t),
	}
	c := NewVisaCheckoutClient(
		application.NewCreateProfileRequest(m.provider, m.probe, nil),
		application.NewTokenizeVisaCheckout(m.tokenizer, m.analytics, nil),
		application.NewHandleActivityResult(),
	)
	return c, m
}

type profileResult struct {
	profile *domain.ProfileRequest
	err     error
}

func TestVisaCheckoutClient_CreateProfileRequest(t *testing.T) {
	c, m := newTestClient(t)
	m.provider.EXPECT().GetConfiguration(mock.Anything).Return(&domain.Configuration{
		Environment: "production",
		VisaCheckout: domain.MerchantVisaConfig{
			APIKey:             "gwApiKey",
			AcceptedCardBrands: []string{"VISA", "MASTERCARD"},
			ExternalClientID:   "gwExternalClientId",
			Enabled:            true,
		},
	}, nil).Once()
	m.probe.EXPECT().Available().Return(true).Once()

	results := make(chan profileResult, 2)
	c.CreateProfileRequest(context.Background(), func(profile *domain.ProfileRequest, err error) {
		results <- profileResult{profile: profile, err: err}
	})

	select {
	case got := <-results:
		require.NoError(t, got.err)
		assert.Equal(t, "gwApiKey", got.profile.MerchantAPIKey)
		assert.Equal(t, domain.EnvironmentProduction, got.profile.Environment)
		assert.Equal(t, []string{"VISA", "MASTERCARD"}, got.profile.CardBrands)
		assert.Equal(t, domain.DataLevelFull, got.profile.DataLevel)
		assert.Equal(t, "gwExternalClientId", got.profile.ExternalClientID)
	case <-time.After(time.Second):
		t.Fatal("callback was not invoked")
	}

	assert.Never(t, func() bool { return len(results) > 0 }, 50*time.Millisecond, 10*time.Millisecond)
}

func TestVisaCheckoutClient_CreateProfileRequestDisabled(t *testing.T) {
	c, m := newTestClient(t)
	m.provider.EXPECT().GetConfiguration(mock.Anything).Return(&domain.Configuration{}, nil).Once()
	m.probe.EXPECT().Available().Return(true).Once()

	results := make(chan profileResult, 1)
	c.CreateProfileRequest(context.Background(), func(profile *domain.ProfileRequest, err error) {
		results <- profileResult{profile: profile, err: err}
	})

	select {
	case got := <-results:
		assert.Nil(t, got.profile)
		assert.EqualError(t, got.err, "Visa Checkout is not enabled.")
	case <-time.After(time.Second):
		t.Fatal("callback was not invoked")
	}
}

func TestVisaCheckoutClient_Tokenize(t *testing.T) {
	tests := []struct {
		name          string
		nonce         *domain.PaymentMethodNonce
		tokenizeErr   error
		expectedEvent string
	}{
		{name: "success", nonce: &domain.PaymentMethodNonce{Nonce: "fake-nonce"}, expectedEvent: domain.AnalyticsTokenizeSucceeded},
		{name: "failure", tokenizeErr: errors.New("tokenization failed"), expectedEvent: domain.AnalyticsTokenizeFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, m := newTestClient(t)

			callbackDone := make(chan struct{})
			analyticsSent := make(chan struct{})
			m.tokenizer.EXPECT().Tokenize(mock.Anything, mock.Anything).Return(tt.nonce, tt.tokenizeErr).Once()
			m.analytics.EXPECT().SendEvent(mock.Anything, tt.expectedEvent).
				Run(func(ctx context.Context, name string) {
					select {
					case <-callbackDone:
					default:
						t.Error("analytics sent before the callback returned")
					}
					close(analyticsSent)
				}).
				Return().Once()

			c.Tokenize(context.Background(), domain.PaymentSummary{CallID: "call"}, func(nonce *domain.PaymentMethodNonce, err error) {
				if tt.tokenizeErr != nil {
					assert.Same(t, tt.tokenizeErr, err)
					assert.Nil(t, nonce)
				} else {
					assert.NoError(t, err)
					assert.Same(t, tt.nonce, nonce)
				}
				close(callbackDone)
			})

			select {
			case <-analyticsSent:
			case <-time.After(time.Second):
				t.Fatal("tokenize did not complete")
			}
		})
	}
}

func TestVisaCheckoutClient_OnActivityResultNeverCallsBack(t *testing.T) {
	c, _ := newTestClient(t)

	called := false
	c.OnActivityResult(context.Background(), &application.ActivityResult{RequestCode: 1}, func(err error) {
		called = true
	})

	assert.False(t, called)
}
