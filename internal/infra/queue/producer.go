package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	KindLeadCaptured     = "lead_captured"
	KindBienestarWelcome = "bienestar_welcome"
)

type NotificationPayload struct {
	Kind   string `json:"kind"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	UserID string `json:"user_id,omitempty"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishNotification(ctx context.Context, payload NotificationPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error serializando payload: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // Mensaje durable en disco
		},
	)
	if err != nil {
		return fmt.Errorf("fallo al publicar en RabbitMQ: %v", err)
	}

	return nil
}
