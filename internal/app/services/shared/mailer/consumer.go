package mailer

import (
	"context"
	"fmt"
	"medxbay-service/internal/app/drivers/mailer"
	"medxbay-service/internal/pkg/constvars"
	"medxbay-service/internal/pkg/dto/requests"
	"medxbay-service/internal/pkg/exceptions"
	"net/smtp"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Consumer drains the mailer queue and delivers over SMTP.
type Consumer struct {
	Channel *amqp091.Channel
	Client  *mailer.SMTPClient
	Queue   string
	Log     *zap.Logger
}

func NewConsumer(rabbitMQConnection *amqp091.Connection, client *mailer.SMTPClient, queue string, logger *zap.Logger) (*Consumer, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		Channel: channel,
		Client:  client,
		Queue:   queue,
		Log:     logger,
	}, nil
}

// Start consumes until ctx is cancelled. Failed deliveries are nacked without
// requeue so a poisoned payload cannot wedge the queue.
func (c *Consumer) Start(ctx context.Context) error {
	deliveries, err := c.Channel.Consume(c.Queue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}
				c.handleDelivery(delivery)
			}
		}
	}()

	return nil
}

func (c *Consumer) handleDelivery(delivery amqp091.Delivery) {
	var payload requests.EmailPayload
	if err := json.Unmarshal(delivery.Body, &payload); err != nil {
		c.Log.Error("mailer.Consumer failed to unmarshal email payload",
			zap.String(constvars.LoggingQueueKey, c.Queue),
			zap.Error(err),
		)
		delivery.Nack(false, false)
		return
	}

	if err := c.deliver(&payload); err != nil {
		c.Log.Error("mailer.Consumer failed to deliver email",
			zap.String(constvars.LoggingQueueKey, c.Queue),
			zap.String(constvars.LoggingEmailToKey, payload.To),
			zap.Error(err),
		)
		delivery.Nack(false, false)
		return
	}

	c.Log.Info("mailer.Consumer delivered email",
		zap.String(constvars.LoggingEmailToKey, payload.To),
	)
	delivery.Ack(false)
}

func (c *Consumer) deliver(payload *requests.EmailPayload) error {
	format := constvars.EmailSendBasicEmailSubjectFormat
	if payload.HTML {
		format = constvars.EmailSendHTMLSubjectFormat
	}
	msg := []byte(fmt.Sprintf(format, payload.To, payload.Subject, payload.Body))
	addr := fmt.Sprintf("%s:%d", c.Client.Host, c.Client.Port)
	if err := smtp.SendMail(addr, c.Client.Auth, c.Client.EmailSender, []string{payload.To}, msg); err != nil {
		return exceptions.ErrSMTPSendEmail(err, c.Client.Host)
	}
	return nil
}
