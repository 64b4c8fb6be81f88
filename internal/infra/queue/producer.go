package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ConversionPayload é a mensagem publicada quando um lead vira evento. Quem
// consome decide o que fazer (hoje: email de aviso para a equipe).
type ConversionPayload struct {
	MessageID string `json:"message_id"`

	LeadID      string `json:"lead_id"`
	LeadName    string `json:"lead_name"`
	LeadContact string `json:"lead_contact"`

	EventID    string `json:"event_id"`
	EventTitle string `json:"event_title"`
	EventType  string `json:"event_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
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

func (p *RabbitMQProducer) PublishConversion(ctx context.Context, payload ConversionPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName, // ex.pipeline
		RoutingKey,   // k.conversion
		false,        // Mandatory
		false,        // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // Mensagem salva no disco
		},
	)

	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %v", err)
	}

	return nil
}
