// Package eventbus publishes notification-action events to the system
// event bus so out-of-process collaborators can react to user responses.
package eventbus

import (
	"encoding/json"
	"fmt"

	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"

	"github.com/urbanshade/notify-center/internal/model"
)

const (
	ExchangeName = "notify-center-exchange"
	QueueName    = "notification-actions"
	DLQName      = "notification-actions-dlq"
	RoutingKey   = "notification-action"
)

// ActionEvent is the payload dispatched when a user invokes a notification
// action.
type ActionEvent struct {
	NotificationID string                   `json:"notificationId"`
	Action         string                   `json:"action"`
	Notification   model.SystemNotification `json:"notification"`
}

// ActionBus owns the action queue topology and its publisher.
type ActionBus struct {
	publisher *rabbitmq.Publisher
}

// NewActionBus declares the exchange, the durable action queue and its DLQ,
// and returns a bus ready to publish.
func NewActionBus(ch *rabbitmq.Channel) (*ActionBus, error) {
	exchange := rabbitmq.NewExchange(ExchangeName, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	_, err := qm.DeclareQueue(DLQName, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	mainArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": DLQName,
	}

	mainQ, err := qm.DeclareQueue(QueueName, rabbitmq.QueueConfig{
		Durable: true,
		Args:    mainArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare action queue: %w", err)
	}

	if err := ch.QueueBind(mainQ.Name, RoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the action queue: %w", err)
	}

	return &ActionBus{publisher: rabbitmq.NewPublisher(ch, exchange.Name())}, nil
}

// Publish sends an action event to the bus.
func (b *ActionBus) Publish(event ActionEvent, strategy retry.Strategy) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal action event: %w", err)
	}

	return b.publisher.PublishWithRetry(body, RoutingKey, "application/json", strategy)
}
