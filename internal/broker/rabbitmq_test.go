package broker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"rich-catering-be/internal/notification"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error {
	return m.Called(name, kind, durable, autoDelete, internal, noWait, args).Error(0)
}

func (m *MockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	return m.Called(ctx, exchange, key, mandatory, immediate, msg).Error(0)
}

func (m *MockChannel) Close() error {
	return m.Called().Error(0)
}

func TestDeclare(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ch := new(MockChannel)
		ch.On("ExchangeDeclare", NotificationsExchange, "fanout", true, false, false, false, amqp.Table(nil)).Return(nil)

		assert.NoError(t, declare(ch))
		ch.AssertExpectations(t)
	})

	t.Run("Error", func(t *testing.T) {
		ch := new(MockChannel)
		ch.On("ExchangeDeclare", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("access refused"))

		err := declare(ch)
		assert.ErrorContains(t, err, "notifications_fanout")
	})
}

func TestNotificationPublisher_Publish(t *testing.T) {
	created := time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)
	n := &notification.Notification{ID: 3, UserID: 9, Type: notification.TypeOrder, Message: "Order #3 approved", CreatedAt: created}

	t.Run("Success", func(t *testing.T) {
		ch := new(MockChannel)
		var sent amqp.Publishing
		ch.On("PublishWithContext", mock.Anything, NotificationsExchange, "", false, false, mock.AnythingOfType("amqp091.Publishing")).
			Run(func(args mock.Arguments) { sent = args.Get(5).(amqp.Publishing) }).
			Return(nil)

		err := NewNotificationPublisher(ch).Publish(context.Background(), n)
		require.NoError(t, err)

		assert.Equal(t, "application/json", sent.ContentType)
		assert.Equal(t, amqp.Persistent, sent.DeliveryMode)

		var msg NotificationMessage
		require.NoError(t, json.Unmarshal(sent.Body, &msg))
		assert.Equal(t, uint(9), msg.UserID)
		assert.Equal(t, "order", msg.Type)
		assert.Equal(t, "Order #3 approved", msg.Message)
	})

	t.Run("ChannelError", func(t *testing.T) {
		ch := new(MockChannel)
		ch.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("channel closed"))

		err := NewNotificationPublisher(ch).Publish(context.Background(), n)
		assert.EqualError(t, err, "channel closed")
	})
}
