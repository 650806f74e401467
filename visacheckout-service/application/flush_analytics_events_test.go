package application

import (
	"context"
	"testing"
	"time"

	"github.com/draftea/visa-checkout/shared/events"
	"github.com/draftea/visa-checkout/shared/models"
	"github.com/draftea/visa-checkout/visacheckout-service/domain"
	"github.com/draftea/visa-checkout/visacheckout-service/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFlushAnalyticsEvents_Execute(t *testing.T) {
	recordedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	pending := []*domain.AnalyticsEvent{
		{ID: "550e8400-e29b-41d4-a716-446655440001", Name: domain.AnalyticsTokenizeSucceeded, Timestamp: recordedAt},
		{ID: "550e8400-e29b-41d4-a716-446655440002", Name: domain.AnalyticsTokenizeFailed, Timestamp: recordedAt},
	}
	pendingIDs := []models.ID{pending[0].ID, pending[1].ID}

	tests := []struct {
		name          string
		setupMocks    func(*mocks.MockAnalyticsEventStore, *mocks.MockPublisher)
		expectedCount int
		expectedError string
	}{
		{
			name: "publishes and deletes pending events",
			setupMocks: func(store *mocks.MockAnalyticsEventStore, publisher *mocks.MockPublisher) {
				store.EXPECT().Pending(mock.Anything, 50).Return(pending, nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything).
					Run(func(ctx context.Context, evts ...*events.Event) {
						assert.Len(t, evts, 2)
						for i, evt := range evts {
							assert.Equal(t, events.VisaCheckoutAnalyticsRecordedEvent, evt.EventType)
							assert.Equal(t, pending[i].ID, evt.AggregateID)

							var payload analyticsEventPayload
							assert.NoError(t, evt.UnmarshalPayload(&payload))
							assert.Equal(t, pending[i].Name, payload.Name)
						}
					}).
					Return(nil).Once()
				store.EXPECT().Delete(mock.Anything, pendingIDs).Return(nil).Once()
			},
			expectedCount: 2,
		},
		{
			name: "nothing pending",
			setupMocks: func(store *mocks.MockAnalyticsEventStore, publisher *mocks.MockPublisher) {
				store.EXPECT().Pending(mock.Anything, 50).Return(nil, nil).Once()
			},
			expectedCount: 0,
		},
		{
			name: "store read fails",
			setupMocks: func(store *mocks.MockAnalyticsEventStore, publisher *mocks.MockPublisher) {
				store.EXPECT().Pending(mock.Anything, 50).Return(nil, errors.New("db down")).Once()
			},
			expectedError: "failed to load pending analytics events: db down",
		},
		{
			name: "publish fails keeps events queued",
			setupMocks: func(store *mocks.MockAnalyticsEventStore, publisher *mocks.MockPublisher) {
				store.EXPECT().Pending(mock.Anything, 50).Return(pending, nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything).
					Return(errors.New("sns throttled")).Once()
			},
			expectedError: "failed to publish analytics events: sns throttled",
		},
		{
			name: "delete fails",
			setupMocks: func(store *mocks.MockAnalyticsEventStore, publisher *mocks.MockPublisher) {
				store.EXPECT().Pending(mock.Anything, 50).Return(pending, nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
				store.EXPECT().Delete(mock.Anything, pendingIDs).Return(errors.New("db down")).Once()
			},
			expectedError: "failed to delete flushed analytics events: db down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewMockAnalyticsEventStore(t)
			publisher := mocks.NewMockPublisher(t)
			tt.setupMocks(store, publisher)

			useCase := NewFlushAnalyticsEvents(store, publisher, 50, nil)
			count, err := useCase.Execute(context.Background())

			if tt.expectedError != "" {
				assert.EqualError(t, err, tt.expectedError)
				assert.Zero(t, count)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedCount, count)
		})
	}
}

func TestFlushAnalyticsEvents_RunStopsOnCancel(t *testing.T) {
	store := mocks.NewMockAnalyticsEventStore(t)
	publisher := mocks.NewMockPublisher(t)
	store.EXPECT().Pending(mock.Anything, defaultFlushBatchSize).Return(nil, nil).Maybe()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		NewFlushAnalyticsEvents(store, publisher, 0, nil).Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("flusher did not stop after cancel")
	}
}

func TestFlushAnalyticsEvents_RunDefaultsNonPositiveInterval(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.NotPanics(t, func() {
			NewFlushAnalyticsEvents(mocks.NewMockAnalyticsEventStore(t), mocks.NewMockPublisher(t), 0, nil).Run(ctx, interval)
		})
	}
}
