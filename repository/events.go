package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"converso.io/billing/models"
)

const paymentEventsQueue = "payment_events"

// EventPublisher emits the "payment created" event consumed by the
// downstream billing trackers.
type EventPublisher interface {
	PublishPaymentCreated(event *models.PaymentCreatedEvent) error
}

type AmqpPublisher struct {
	channel  *amqp.Channel
	confirms chan amqp.Confirmation
}

func NewAmqpPublisher(conn *amqp.Connection) (*AmqpPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, errors.Wrap(err, "opening amqp channel")
	}
	if err := ch.Confirm(false); err != nil {
		return nil, errors.Wrap(err, "enabling amqp confirms")
	}
	if _, err := ch.QueueDeclare(paymentEventsQueue, true, false, false, false, nil); err != nil {
		return nil, errors.Wrap(err, "declaring payment events queue")
	}
	return &AmqpPublisher{
		channel:  ch,
		confirms: ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}, nil
}

func (p *AmqpPublisher) PublishPaymentCreated(event *models.PaymentCreatedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "marshaling payment created event")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = p.channel.PublishWithContext(ctx, "", paymentEventsQueue, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Body:         body,
	})
	if err != nil {
		return errors.Wrap(err, "publishing payment created event")
	}
	select {
	case confirmed := <-p.confirms:
		if !confirmed.Ack {
			return errors.New("payment created event nacked by broker")
		}
	case <-ctx.Done():
		return errors.New("timeout waiting for broker ack")
	}
	return nil
}

func (p *AmqpPublisher) Close() error {
	return p.channel.Close()
}
