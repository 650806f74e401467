package infrastructure

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/draftea/visa-checkout/shared/events"
	"github.com/draftea/visa-checkout/shared/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSQS struct {
	deleted    []string
	visibility []int32
}

func (f *fakeSQS) ReceiveMessage(context.Context, *sqs.ReceiveMessageInput, ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	return &sqs.ReceiveMessageOutput{}, nil
}

func (f *fakeSQS) DeleteMessage(_ context.Context, params *sqs.DeleteMessageInput, _ ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
	f.deleted = append(f.deleted, aws.ToString(params.ReceiptHandle))
	return &sqs.DeleteMessageOutput{}, nil
}

func (f *fakeSQS) ChangeMessageVisibility(_ context.Context, params *sqs.ChangeMessageVisibilityInput, _ ...func(*sqs.Options)) (*sqs.ChangeMessageVisibilityOutput, error) {
	f.visibility = append(f.visibility, params.VisibilityTimeout)
	return &sqs.ChangeMessageVisibilityOutput{}, nil
}

type recordingHandler struct {
	handled []*events.Event
	err     error
}

func (h *recordingHandler) HandlerID() string { return "recording" }

func (h *recordingHandler) Handle(_ context.Context, event *events.Event) error {
	h.handled = append(h.handled, event)
	return h.err
}

func newTestMessage(receiveCount string) *sqsMessage {
	return &sqsMessage{
		Message: types.Message{
			MessageId:     aws.String("message-1"),
			ReceiptHandle: aws.String("receipt-1"),
			Attributes:    map[string]string{"ApproximateReceiveCount": receiveCount},
		},
		Event: events.NewEvent(models.GenerateUUID(), events.VisaCheckoutTokenizeRequestedEvent, nil),
	}
}

func TestSQSEventSubscriber_HandleThenClean(t *testing.T) {
	tests := []struct {
		name               string
		handlerErr         error
		receiveCount       string
		expectedDeleted    []string
		expectedVisibility []int32
	}{
		{name: "success deletes message", expectedDeleted: []string{"receipt-1"}},
		{name: "failure extends visibility", handlerErr: errors.New("boom"), receiveCount: "1", expectedVisibility: []int32{30}},
		{name: "repeated failure backs off", handlerErr: errors.New("boom"), receiveCount: "6", expectedVisibility: []int32{90}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeSQS{}
			handler := &recordingHandler{err: tt.handlerErr}
			subscriber := NewSQSEventSubscriber(client, "queue", handler, nil)
			subscriber.outboundMessages = make(chan *sqsMessage, 1)

			message := newTestMessage(tt.receiveCount)
			subscriber.handle(context.Background(), message)

			require.Len(t, handler.handled, 1)
			cleaned := <-subscriber.outboundMessages
			assert.Equal(t, tt.handlerErr, cleaned.Err)

			require.NoError(t, subscriber.clean(context.Background(), cleaned))
			assert.Equal(t, tt.expectedDeleted, client.deleted)
			assert.Equal(t, tt.expectedVisibility, client.visibility)
		})
	}
}

func TestEventHandlerAdapter_FiltersByType(t *testing.T) {
	handler := &recordingHandler{}
	adapter := &eventHandlerAdapter{eventType: events.VisaCheckoutTokenizeRequestedEvent, handler: handler}

	require.NoError(t, adapter.Handle(context.Background(), events.NewEvent(models.GenerateUUID(), events.VisaCheckoutAnalyticsRecordedEvent, nil)))
	require.NoError(t, adapter.Handle(context.Background(), events.NewEvent(models.GenerateUUID(), events.VisaCheckoutTokenizeRequestedEvent, nil)))

	assert.Len(t, handler.handled, 1)
	assert.Equal(t, "recording", adapter.HandlerID())
}

func TestNewSQSSubscriberAdapter_RequiresQueueURL(t *testing.T) {
	_, err := NewSQSSubscriberAdapter(AWSSettings{Region: "us-east-1"}, "", nil)
	assert.Error(t, err)
}
