package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"rich-catering-be/internal/logger"
	"rich-catering-be/internal/notification"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	NotificationsExchange = "notifications_fanout"
	publishTimeout        = 5 * time.Second
)

// Channel is the subset of *amqp.Channel the publisher uses.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type RabbitMQ struct {
	conn    *amqp.Connection
	channel Channel
}

// Connect dials url, opens a channel and declares the notifications exchange.
func Connect(url string) (*RabbitMQ, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declare(ch); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	logger.L().Info("connected to rabbitmq", zap.String("exchange", NotificationsExchange))
	return &RabbitMQ{conn: conn, channel: ch}, nil
}

func declare(ch Channel) error {
	err := ch.ExchangeDeclare(
		NotificationsExchange,
		"fanout",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare exchange %s: %w", NotificationsExchange, err)
	}
	return nil
}

func (r *RabbitMQ) Close() {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		r.conn.Close()
	}
}

// NotificationMessage is the body published for every stored notification.
type NotificationMessage struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"userId"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type NotificationPublisher struct {
	channel Channel
}

func NewNotificationPublisher(ch Channel) *NotificationPublisher {
	return &NotificationPublisher{channel: ch}
}

// Publisher returns a notification publisher bound to this connection.
func (r *RabbitMQ) Publisher() *NotificationPublisher {
	return NewNotificationPublisher(r.channel)
}

var _ notification.Publisher = (*NotificationPublisher)(nil)

func (p *NotificationPublisher) Publish(ctx context.Context, n *notification.Notification) error {
	body, err := json.Marshal(NotificationMessage{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      string(n.Type),
		Message:   n.Message,
		CreatedAt: n.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	return p.channel.PublishWithContext(ctx,
		NotificationsExchange,
		"", // fanout ignores the routing key
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
}
