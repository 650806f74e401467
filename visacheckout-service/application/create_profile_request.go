package application

import (
	"context"

	"github.com/draftea/visa-checkout/shared/logger"
	"github.com/draftea/visa-checkout/shared/telemetry"
	"github.com/draftea/visa-checkout/visacheckout-service/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

const profileRequestsMetric = "visacheckout_profile_requests_total"

// CreateProfileRequest builds the Visa Checkout profile for the current merchant
type CreateProfileRequest struct {
	configurationProvider domain.ConfigurationProvider
	sdkProbe              domain.SDKProbe
	logger                *zap.Logger
}

// NewCreateProfileRequest creates a new CreateProfileRequest use case
func NewCreateProfileRequest(
	configurationProvider domain.ConfigurationProvider,
	sdkProbe domain.SDKProbe,
	logger *zap.Logger,
) *CreateProfileRequest {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CreateProfileRequest{
		configurationProvider: configurationProvider,
		sdkProbe:              sdkProbe,
		logger:                logger,
	}
}

// Execute fetches the merchant configuration and maps it onto a profile request.
// Configuration errors are returned as produced by the provider. When Visa Checkout
// is not eligible the result is domain.ErrConfigurationDisabled.
func (uc *CreateProfileRequest) Execute(ctx context.Context) (*domain.ProfileRequest, error) {
	ctx, span := telemetry.StartSpan(ctx, "visacheckout.create_profile_request")
	defer span.End()
	log := logger.WithContext(ctx, uc.logger)

	cfg, err := uc.configurationProvider.GetConfiguration(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "configuration fetch failed")
		uc.record(ctx, "configuration_error")
		log.Warn("failed to fetch configuration", zap.Error(err))
		return nil, err
	}

	if !domain.IsEligible(uc.sdkProbe, cfg) {
		uc.record(ctx, "disabled")
		log.Info("visa checkout is not enabled for merchant")
		return nil, domain.ErrConfigurationDisabled
	}

	profile := domain.NewProfileRequest(cfg)
	span.SetAttributes(
		attribute.String("visacheckout.environment", profile.Environment.String()),
		attribute.Int("visacheckout.card_brands", len(profile.CardBrands)),
	)
	uc.record(ctx, "created")

	return profile, nil
}

func (uc *CreateProfileRequest) record(ctx context.Context, outcome string) {
	telemetry.RecordCounter(ctx, profileRequestsMetric, "Visa Checkout profile requests", 1,
		attribute.String("outcome", outcome))
}
