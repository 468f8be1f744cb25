package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// WelcomeSender manda la bienvenida por WhatsApp al recién inscrito.
type WelcomeSender interface {
	SendWelcome(ctx context.Context, phone, name, referralLink string) error
}

// LeadAlertSender avisa al equipo de campaña que entró un lead nuevo.
type LeadAlertSender interface {
	SendLeadAlert(name, phone string) error
}

type Worker struct {
	Channel  *amqp.Channel
	WhatsApp WelcomeSender
	Mail     LeadAlertSender
	// BaseURL arma el link único de embajador (?ref=<id>).
	BaseURL string
}

func NewWorker(ch *amqp.Channel, whatsapp WelcomeSender, mail LeadAlertSender, baseURL string) *Worker {
	return &Worker{
		Channel:  ch,
		WhatsApp: whatsapp,
		Mail:     mail,
		BaseURL:  baseURL,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual es más seguro)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ No se pudo registrar el consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload NotificationPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON inválido: %s", err)
				// Mensaje malformado: rechazar sin requeue para no trabar la cola.
				d.Nack(false, false)
				continue
			}

			if err := w.processMessage(context.Background(), payload); err != nil {
				log.Printf("❌ [WORKER] Error procesando %s: %s", payload.Kind, err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker esperando mensajes en la cola '%s'", queueName)
	<-forever
}

func (w *Worker) processMessage(ctx context.Context, payload NotificationPayload) error {
	switch payload.Kind {
	case KindBienestarWelcome:
		if w.WhatsApp == nil {
			return nil
		}
		link := w.BaseURL + "/bienestarytecnologia?ref=" + payload.UserID
		return w.WhatsApp.SendWelcome(ctx, payload.Phone, payload.Name, link)

	case KindLeadCaptured:
		if w.Mail == nil {
			return nil
		}
		return w.Mail.SendLeadAlert(payload.Name, payload.Phone)

	default:
		log.Printf("⚠️ [WORKER] Kind desconocido: %s. Solo logueando.", payload.Kind)
		// Ack para sacarlo de la cola: no sabemos tratarlo.
		return nil
	}
}
