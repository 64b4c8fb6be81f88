package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ConversionNotifier define o contrato de quem avisa a equipe que um lead
// fechou (hoje email, amanhã WhatsApp).
type ConversionNotifier interface {
	SendConversionNotice(payload ConversionPayload) error
}

type Worker struct {
	Channel  *amqp.Channel
	Notifier ConversionNotifier
}

func NewWorker(ch *amqp.Channel, notifier ConversionNotifier) *Worker {
	return &Worker{
		Channel:  ch,
		Notifier: notifier,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual é mais seguro)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload ConversionPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON Inválido: %s", err)
				// Mensagem malformada vai para a DLQ, sem requeue.
				d.Nack(false, false)
				continue
			}

			log.Printf("⚙️ [WORKER] Conversão recebida: lead %s → evento %q", payload.LeadID, payload.EventTitle)

			if err := w.Notifier.SendConversionNotice(payload); err != nil {
				log.Printf("❌ [WORKER] Falha ao notificar conversão: %s", err)
				d.Nack(false, false)
			} else {
				log.Printf("✅ [WORKER] Equipe avisada da conversão do lead %s", payload.LeadID)
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker rodando e aguardando na fila '%s'", queueName)
	<-forever
}
