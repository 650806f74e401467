package config

import (
	"context"
	"fmt"

	sharedinfra "github.com/draftea/visa-checkout/shared/infrastructure"
	"github.com/draftea/visa-checkout/shared/logger"
	"github.com/draftea/visa-checkout/shared/telemetry"
	"github.com/draftea/visa-checkout/visacheckout-service/application"
	"github.com/draftea/visa-checkout/visacheckout-service/client"
	"github.com/draftea/visa-checkout/visacheckout-service/handlers"
	"github.com/draftea/visa-checkout/visacheckout-service/infrastructure"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Dependencies struct {
	Logger *zap.Logger

	// Database
	DB *sqlx.DB

	// Cache
	Redis *redis.Client

	// Collaborators
	ConfigurationProvider *infrastructure.CachedConfigurationProvider
	TokenizationClient    *infrastructure.HTTPTokenizationClient
	AnalyticsStore        *infrastructure.PostgresAnalyticsEventStore
	SDKProbe              *infrastructure.StaticSDKProbe

	// Use Cases
	CreateProfileRequest *application.CreateProfileRequest
	TokenizeVisaCheckout *application.TokenizeVisaCheckout
	HandleActivityResult *application.HandleActivityResult
	FlushAnalyticsEvents *application.FlushAnalyticsEvents

	// Callback client for in-process integrations
	Client *client.VisaCheckoutClient

	// HTTP Handlers
	VisaCheckoutHandlers *handlers.VisaCheckoutHandlers

	// Event Handlers
	VisaCheckoutEventHandlers *handlers.VisaCheckoutEventHandlers

	// Infrastructure
	EventPublisher  *sharedinfra.SNSPublisherAdapter
	EventSubscriber *sharedinfra.SQSSubscriberAdapter

	// Telemetry
	Telemetry         *telemetry.Telemetry
	TelemetryShutdown func()
}

func BuildDependencies(ctx context.Context, config *Config) (*Dependencies, error) {
	deps := &Dependencies{}

	log, err := logger.New(logger.Config{
		ServiceName: config.ServiceName,
		Environment: config.Env,
		Level:       config.Log.Level,
		Format:      config.Log.Format,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	deps.Logger = log

	// Initialize telemetry first
	if config.Telemetry.Enabled {
		telConfig := telemetry.VisaCheckoutServiceConfig.
			WithOTLPEndpoint(config.Telemetry.OTLPEndpoint).
			WithEnvironment(config.Env)
		tel, telemetryShutdown, err := telemetry.InitTelemetry(ctx, telConfig)
		if err != nil {
			// Continue without telemetry rather than failing
			log.Warn("failed to initialize telemetry", zap.Error(err))
		} else {
			deps.Telemetry = tel
			deps.TelemetryShutdown = telemetryShutdown
		}
	}

	// Initialize database
	db, err := sqlx.Connect("postgres", config.GetDatabaseURL())
	if err != nil {
		deps.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	deps.DB = db

	deps.AnalyticsStore = infrastructure.NewPostgresAnalyticsEventStore(db)
	if err := deps.AnalyticsStore.EnsureSchema(ctx); err != nil {
		deps.Close()
		return nil, fmt.Errorf("failed to prepare analytics schema: %w", err)
	}

	// Initialize redis
	deps.Redis = redis.NewClient(&redis.Options{
		Addr:     config.Redis.Addr,
		Password: config.Redis.Password,
		DB:       config.Redis.DB,
	})
	if err := deps.Redis.Ping(ctx).Err(); err != nil {
		// the configuration cache degrades to direct gateway calls and
		// async tokenize requests are redelivered until redis is back
		log.Warn("redis unavailable", zap.String("addr", config.Redis.Addr), zap.Error(err))
	}

	// Initialize AWS infrastructure
	eventPublisher, err := sharedinfra.NewSNSPublisherAdapter(ctx, sharedinfra.AWSSettings{
		Region:   config.AWS.Region,
		Endpoint: config.AWS.EndpointSNS,
	}, config.AWS.SNSTopicArn, log)
	if err != nil {
		deps.Close()
		return nil, fmt.Errorf("failed to create SNS publisher: %w", err)
	}
	deps.EventPublisher = eventPublisher

	eventSubscriber, err := sharedinfra.NewSQSSubscriberAdapter(sharedinfra.AWSSettings{
		Region:   config.AWS.Region,
		Endpoint: config.AWS.EndpointSQS,
	}, config.AWS.SQSQueueURL, log, sharedinfra.WithWorkers(config.AWS.SQSWorkers))
	if err != nil {
		deps.Close()
		return nil, fmt.Errorf("failed to create SQS subscriber: %w", err)
	}
	deps.EventSubscriber = eventSubscriber

	// Initialize gateway collaborators
	gateway := infrastructure.GatewaySettings{
		ClientAPIURL:             config.Braintree.ClientAPIURL,
		ConfigurationURL:         config.Braintree.ConfigurationURL,
		AuthorizationFingerprint: config.Braintree.AuthorizationFingerprint,
		Timeout:                  config.Braintree.HTTPTimeout,
	}
	httpClient := infrastructure.NewGatewayHTTPClient(gateway)

	deps.ConfigurationProvider = infrastructure.NewCachedConfigurationProvider(
		infrastructure.NewHTTPConfigurationProvider(httpClient, gateway),
		infrastructure.NewRedisConfigurationCache(deps.Redis),
		gateway.AuthorizationFingerprint,
		config.Redis.ConfigurationTTL,
		log,
	)
	deps.TokenizationClient = infrastructure.NewHTTPTokenizationClient(httpClient, gateway)
	deps.SDKProbe = infrastructure.NewStaticSDKProbe(config.VisaCheckout.SDKAvailable)

	// Initialize use cases
	analyticsClient := application.NewAnalyticsClient(deps.AnalyticsStore, log)
	deps.CreateProfileRequest = application.NewCreateProfileRequest(deps.ConfigurationProvider, deps.SDKProbe, log)
	deps.TokenizeVisaCheckout = application.NewTokenizeVisaCheckout(deps.TokenizationClient, analyticsClient, log)
	deps.HandleActivityResult = application.NewHandleActivityResult()
	deps.FlushAnalyticsEvents = application.NewFlushAnalyticsEvents(deps.AnalyticsStore, eventPublisher, config.Analytics.BatchSize, log)

	deps.Client = client.NewVisaCheckoutClient(deps.CreateProfileRequest, deps.TokenizeVisaCheckout, deps.HandleActivityResult)

	// Initialize handlers
	deps.VisaCheckoutHandlers = handlers.NewVisaCheckoutHandlers(
		deps.CreateProfileRequest,
		deps.TokenizeVisaCheckout,
		deps.HandleActivityResult,
		log,
	)
	deps.VisaCheckoutEventHandlers = handlers.NewVisaCheckoutEventHandlers(
		deps.TokenizeVisaCheckout,
		infrastructure.NewRedisTokenizeOutcomeStore(deps.Redis, config.Redis.TokenizeOutcomeTTL),
		eventPublisher,
		log,
	)

	return deps, nil
}

// Close closes all dependencies
func (d *Dependencies) Close() error {
	var errs []error

	if d.EventSubscriber != nil {
		if err := d.EventSubscriber.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close event subscriber: %w", err))
		}
	}

	if d.EventPublisher != nil {
		if err := d.EventPublisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close event publisher: %w", err))
		}
	}

	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close redis: %w", err))
		}
	}

	if d.DB != nil {
		if err := d.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if d.TelemetryShutdown != nil {
		d.TelemetryShutdown()
	}

	if d.Logger != nil {
		_ = d.Logger.Sync()
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing dependencies: %v", errs)
	}

	return nil
}
