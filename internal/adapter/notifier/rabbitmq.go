// Package notifier publishes outbound notification events to RabbitMQ.
// Publishing is fire-and-forget: the settlement and withdrawal transactions
// never wait on, or fail because of, the broker.
package notifier

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"github.com/valdes557/digitalmarket/internal/core/domain"
	"go.uber.org/zap"
)

const exchange = "marketplace.events"

type event struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	UserID    uint64    `json:"user_id,omitempty"`
	VendorID  uint64    `json:"vendor_id,omitempty"`
	Reference string    `json:"reference,omitempty"`
	Amount    string    `json:"amount,omitempty"`
	Message   string    `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type AMQPNotifier struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	logger  *zap.Logger
}

func New(amqpURL string, log *zap.Logger) (*AMQPNotifier, error) {
	conn, err := amqp091.DialConfig(amqpURL, amqp091.Config{Dial: amqp091.DefaultDial(10 * time.Second)})
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	err = channel.ExchangeDeclare(exchange, "topic", true, false, false, false, nil)
	if err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, err
	}

	return &AMQPNotifier{conn: conn, channel: channel, logger: log}, nil
}

func (n *AMQPNotifier) Close() {
	if n.channel != nil {
		_ = n.channel.Close()
	}
	if n.conn != nil {
		_ = n.conn.Close()
	}
}

func (n *AMQPNotifier) publish(routingKey string, e event) {
	e.ID = uuid.New()
	e.Timestamp = time.Now()

	body, err := json.Marshal(e)
	if err != nil {
		n.logger.Error("error encoding event", zap.String("type", e.Type), zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = n.channel.PublishWithContext(ctx, exchange, routingKey, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Body:         body,
	})
	if err != nil {
		n.logger.Error("error publishing event",
			zap.String("type", e.Type), zap.String("routingKey", routingKey), zap.Error(err))
	}
}

func (n *AMQPNotifier) OrderConfirmed(ctx context.Context, order *domain.Order) {
	go n.publish("order.confirmed", event{
		Type:      "order.confirmed",
		UserID:    order.UserID,
		Reference: order.Number,
		Amount:    order.TotalAmount.String(),
		Message:   "order confirmed, files are ready for download",
	})
}

func (n *AMQPNotifier) SaleRecorded(ctx context.Context, order *domain.Order, item *domain.OrderItem) {
	go n.publish("sale.recorded", event{
		Type:      "sale.recorded",
		VendorID:  item.VendorID,
		Reference: order.Number,
		Amount:    item.VendorAmount.String(),
		Message:   item.ProductName,
	})
}

func (n *AMQPNotifier) WithdrawalProcessed(ctx context.Context, withdrawal *domain.Withdrawal) {
	go n.publish("withdrawal.processed", event{
		Type:      "withdrawal." + string(withdrawal.Status),
		VendorID:  withdrawal.VendorID,
		Reference: withdrawal.Reference,
		Amount:    withdrawal.Amount.String(),
		Message:   withdrawal.RejectionReason,
	})
}

// Noop is used when no broker is configured, so the engine keeps working
// without outbound notifications.
type Noop struct {
	Logger *zap.Logger
}

func (n Noop) OrderConfirmed(ctx context.Context, order *domain.Order) {
	n.Logger.Debug("notification skipped", zap.String("type", "order.confirmed"))
}

func (n Noop) SaleRecorded(ctx context.Context, order *domain.Order, item *domain.OrderItem) {
	n.Logger.Debug("notification skipped", zap.String("type", "sale.recorded"))
}

func (n Noop) WithdrawalProcessed(ctx context.Context, withdrawal *domain.Withdrawal) {
	n.Logger.Debug("notification skipped", zap.String("type", "withdrawal.processed"))
}
