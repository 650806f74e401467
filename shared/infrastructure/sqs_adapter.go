package infrastructure

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/draftea/visa-checkout/shared/events"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var _ events.Subscriber = (*SQSSubscriberAdapter)(nil)

// SQSSubscriberAdapter adapts SQSEventSubscriber to work with events.Subscriber interface
type SQSSubscriberAdapter struct {
	mu            sync.Mutex
	sqsSubscriber *SQSEventSubscriber
	settings      AWSSettings
	queueURL      string
	logger        *zap.Logger
	opts          []SQSSubscriberOption
}

// NewSQSSubscriberAdapter creates a new SQS subscriber adapter
func NewSQSSubscriberAdapter(settings AWSSettings, queueURL string, logger *zap.Logger, opts ...SQSSubscriberOption) (*SQSSubscriberAdapter, error) {
	if queueURL == "" {
		return nil, errors.New("sqs queue url is required")
	}
	return &SQSSubscriberAdapter{
		settings: settings,
		queueURL: queueURL,
		logger:   logger,
		opts:     opts,
	}, nil
}

// eventHandlerAdapter filters deliveries down to a single event type
type eventHandlerAdapter struct {
	eventType string
	handler   events.EventHandler
}

func (a *eventHandlerAdapter) HandlerID() string {
	if identified, ok := a.handler.(interface{ HandlerID() string }); ok {
		return identified.HandlerID()
	}
	return "event-handler-adapter"
}

func (a *eventHandlerAdapter) Handle(ctx context.Context, event *events.Event) error {
	if a.eventType != "" && event.EventType != a.eventType {
		return nil
	}
	return a.handler.Handle(ctx, event)
}

// Subscribe implements events.Subscriber interface. An empty eventType delivers every event.
func (s *SQSSubscriberAdapter) Subscribe(ctx context.Context, eventType string, handler events.EventHandler) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sqsSubscriber != nil {
		return errors.New("subscriber is already running")
	}

	cfg, err := LoadAWSConfig(ctx, s.settings)
	if err != nil {
		return err
	}

	sqsClient := sqs.NewFromConfig(cfg, func(o *sqs.Options) {
		if s.settings.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.settings.Endpoint)
		}
	})

	adaptedHandler := &eventHandlerAdapter{eventType: eventType, handler: handler}
	subscriber := NewSQSEventSubscriber(sqsClient, s.queueURL, adaptedHandler, s.logger, s.opts...)

	if err := subscriber.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start SQS subscriber")
	}

	s.sqsSubscriber = subscriber
	return nil
}

// Close stops the subscriber
func (s *SQSSubscriberAdapter) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sqsSubscriber == nil {
		return nil
	}

	if err := s.sqsSubscriber.Stop(context.Background()); err != nil {
		return errors.Wrap(err, "failed to stop SQS subscriber")
	}

	s.sqsSubscriber = nil
	return nil
}
