package domain

import "context"

//go:generate mockery --name=ConfigurationProvider --output=../mocks --outpkg=mocks --structname=MockConfigurationProvider --with-expecter
//go:generate mockery --name=TokenizationService --output=../mocks --outpkg=mocks --structname=MockTokenizationService --with-expecter
//go:generate mockery --name=AnalyticsSink --output=../mocks --outpkg=mocks --structname=MockAnalyticsSink --with-expecter
//go:generate mockery --name=SDKProbe --output=../mocks --outpkg=mocks --structname=MockSDKProbe --with-expecter
//go:generate mockery --name=AnalyticsEventStore --output=../mocks --outpkg=mocks --structname=MockAnalyticsEventStore --with-expecter
//go:generate mockery --srcpkg=github.com/draftea/visa-checkout/shared/events --name=Publisher --output=../mocks --outpkg=mocks --structname=MockPublisher --with-expecter

// ConfigurationProvider fetches the merchant configuration
type ConfigurationProvider interface {
	GetConfiguration(ctx context.Context) (*Configuration, error)
}

// TokenizationService exchanges a payment summary for a nonce
type TokenizationService interface {
	Tokenize(ctx context.Context, req *TokenizationRequest) (*PaymentMethodNonce, error)
}

// AnalyticsSink records analytics events. Implementations swallow their own failures.
type AnalyticsSink interface {
	SendEvent(ctx context.Context, name string)
}

// SDKProbe reports whether the Visa Checkout SDK is available to this deployment
type SDKProbe interface {
	Available() bool
}
