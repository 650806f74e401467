package application

import (
	"context"

	"github.com/draftea/visa-checkout/visacheckout-service/domain"
	"go.uber.org/zap"
)

// AnalyticsClient queues analytics events in the local store. Delivery happens
// later in batches, see FlushAnalyticsEvents.
type AnalyticsClient struct {
	store  domain.AnalyticsEventStore
	logger *zap.Logger
}

// NewAnalyticsClient creates a new AnalyticsClient
func NewAnalyticsClient(store domain.AnalyticsEventStore, logger *zap.Logger) *AnalyticsClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsClient{store: store, logger: logger}
}

// SendEvent records name. Failures are logged and dropped.
func (c *AnalyticsClient) SendEvent(ctx context.Context, name string) {
	event := domain.NewAnalyticsEvent(name)

	// the caller's request may already be finished
	if err := c.store.Append(context.WithoutCancel(ctx), event); err != nil {
		c.logger.Warn("failed to record analytics event",
			zap.String("event", name),
			zap.Error(err))
	}
}
