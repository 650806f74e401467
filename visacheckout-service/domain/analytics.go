package domain

import (
	"context"
	"time"

	"github.com/draftea/visa-checkout/shared/models"
)

// Analytics event names
const (
	AnalyticsTokenizeSucceeded = "visacheckout.tokenize.succeeded"
	AnalyticsTokenizeFailed    = "visacheckout.tokenize.failed"
)

// AnalyticsEvent is a queued analytics record waiting to be shipped
type AnalyticsEvent struct {
	ID        models.ID
	Name      string
	Timestamp time.Time
}

// NewAnalyticsEvent stamps a new analytics event
func NewAnalyticsEvent(name string) *AnalyticsEvent {
	return &AnalyticsEvent{
		ID:        models.GenerateUUID(),
		Name:      name,
		Timestamp: time.Now().UTC(),
	}
}

// AnalyticsEventStore queues analytics events until they are flushed
type AnalyticsEventStore interface {
	Append(ctx context.Context, event *AnalyticsEvent) error
	Pending(ctx context.Context, limit int) ([]*AnalyticsEvent, error)
	Delete(ctx context.Context, ids []models.ID) error
}
