package queue

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitMQ holds one connection and one channel shared by the publisher
// and every consumer worker of a process.
type RabbitMQ struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	// AppID is stamped on published messages and used as the consumer tag prefix
	AppID string
}

type QueueName string

const (
	QueuePdfJob QueueName = "pdf_job_queue"
)

const (
	MAX_QUEUE_RETRY = 3
)

func NewRabbitMQ(url string) (*RabbitMQ, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}

	r := &RabbitMQ{conn: conn, channel: channel, AppID: "pdfpress"}
	if err := r.declare(QueuePdfJob); err != nil {
		r.Close()
		return nil, err
	}

	return r, nil
}

// declare makes sure a durable queue exists before anything is published to it.
func (r *RabbitMQ) declare(name QueueName) error {
	_, err := r.channel.QueueDeclare(
		string(name),
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", name, err)
	}
	return nil
}

func (r *RabbitMQ) Close() error {
	if err := r.channel.Close(); err != nil {
		r.conn.Close()
		return err
	}
	return r.conn.Close()
}

// Publish sends a persistent json message. messageID is optional and lets
// consumers correlate redeliveries of the same job.
func (r *RabbitMQ) Publish(ctx context.Context, routingKey QueueName, messageID string, body []byte) error {
	return r.channel.PublishWithContext(
		ctx,
		"", // default exchange
		string(routingKey),
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			// survive broker restarts
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    messageID,
			AppId:        r.AppID,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
}

// Limit unacknowledged deliveries to one per worker so a busy consumer
// does not hoard jobs other consumers could run.
// Docs: https://www.rabbitmq.com/tutorials/tutorial-two-go#fair-dispatch
func (r *RabbitMQ) fairDispatch(workers int) error {
	if workers < 1 {
		workers = 1
	}
	return r.channel.Qos(workers, 0, false)
}

// Consume starts a manual-ack consumer on queueName, prefetching at most
// workers deliveries.
func (r *RabbitMQ) Consume(queueName QueueName, workers int) (<-chan amqp.Delivery, error) {
	if err := r.fairDispatch(workers); err != nil {
		return nil, fmt.Errorf("failed to set prefetch: %w", err)
	}

	deliveries, err := r.channel.Consume(
		string(queueName),
		fmt.Sprintf("%s-%s", r.AppID, queueName), // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to consume %s: %w", queueName, err)
	}
	return deliveries, nil
}

func (r *RabbitMQ) Ack(delivery amqp.Delivery) error {
	return delivery.Ack(false)
}

func (r *RabbitMQ) Nack(delivery amqp.Delivery, requeue bool) error {
	return delivery.Nack(false, requeue)
}
