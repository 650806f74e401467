package application

import (
	"context"
	"time"

	"github.com/draftea/visa-checkout/shared/events"
	"github.com/draftea/visa-checkout/shared/models"
	"github.com/draftea/visa-checkout/shared/telemetry"
	"github.com/draftea/visa-checkout/visacheckout-service/domain"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const (
	defaultFlushBatchSize = 100
	defaultFlushInterval  = 10 * time.Second
)

// analyticsEventPayload is the body of a VisaCheckoutAnalyticsRecordedEvent
type analyticsEventPayload struct {
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
}

// FlushAnalyticsEvents ships queued analytics events to the event bus
type FlushAnalyticsEvents struct {
	store          domain.AnalyticsEventStore
	eventPublisher events.Publisher
	batchSize      int
	logger         *zap.Logger
}

// NewFlushAnalyticsEvents creates a new FlushAnalyticsEvents use case
func NewFlushAnalyticsEvents(
	store domain.AnalyticsEventStore,
	eventPublisher events.Publisher,
	batchSize int,
	logger *zap.Logger,
) *FlushAnalyticsEvents {
	if batchSize <= 0 {
		batchSize = defaultFlushBatchSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FlushAnalyticsEvents{
		store:          store,
		eventPublisher: eventPublisher,
		batchSize:      batchSize,
		logger:         logger,
	}
}

// Execute publishes one batch of pending events and removes them from the store.
// It returns the number of events shipped.
func (uc *FlushAnalyticsEvents) Execute(ctx context.Context) (int, error) {
	ctx, span := telemetry.StartSpan(ctx, "visacheckout.flush_analytics")
	defer span.End()

	pending, err := uc.store.Pending(ctx, uc.batchSize)
	if err != nil {
		return 0, errors.Wrap(err, "failed to load pending analytics events")
	}
	if len(pending) == 0 {
		return 0, nil
	}

	batch := make([]*events.Event, 0, len(pending))
	ids := make([]models.ID, 0, len(pending))
	for _, e := range pending {
		evt := events.NewEvent(e.ID, events.VisaCheckoutAnalyticsRecordedEvent, analyticsEventPayload{
			Name:      e.Name,
			Timestamp: e.Timestamp,
		})
		batch = append(batch, evt)
		ids = append(ids, e.ID)
	}

	if err := uc.eventPublisher.Publish(ctx, batch...); err != nil {
		return 0, errors.Wrap(err, "failed to publish analytics events")
	}

	if err := uc.store.Delete(ctx, ids); err != nil {
		return 0, errors.Wrap(err, "failed to delete flushed analytics events")
	}

	span.SetAttributes(attribute.Int("visacheckout.analytics.flushed", len(ids)))
	return len(ids), nil
}

// Run flushes on every tick until ctx is cancelled. A non-positive interval falls
// back to the default.
func (uc *FlushAnalyticsEvents) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultFlushInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			flushed, err := uc.Execute(ctx)
			if err != nil {
				uc.logger.Error("analytics flush failed", zap.Error(err))
				continue
			}
			if flushed > 0 {
				uc.logger.Debug("analytics events flushed", zap.Int("count", flushed))
			}
		}
	}
}
