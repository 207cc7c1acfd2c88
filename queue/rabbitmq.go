package queue

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	amqp "github.com/streadway/amqp"

	"github.com/ELWAANY111/Verto-Store55/models"
)

// NotificationQueue is the durable queue carrying order notifications from
// the checkout path to the mail consumer.
const NotificationQueue = "order_notifications"

// Client holds the RabbitMQ connection and channel used for order
// notification dispatch.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewClient connects to RabbitMQ and declares the notification queue.
func NewClient(url string) (*Client, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		NotificationQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare %s: %w", NotificationQueue, err)
	}

	return &Client{conn: conn, channel: ch}, nil
}

// Close closes the channel and the connection.
func (c *Client) Close() error {
	var firstErr error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			firstErr = fmt.Errorf("failed to close channel: %w", err)
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to close connection: %w", err)
		}
	}
	return firstErr
}

// NotifyOrderCreated publishes the order as a persistent JSON message on the
// notification queue. It satisfies the order service's Notifier interface.
func (c *Client) NotifyOrderCreated(order *models.Order) error {
	body, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}

	err = c.channel.Publish(
		"", // default exchange
		NotificationQueue,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}
	return nil
}

// ConsumeOrderNotifications delivers queued orders to handler with manual
// acknowledgement. A handler error nacks the message back onto the queue.
func (c *Client) ConsumeOrderNotifications(handler func(models.Order) error) error {
	msgs, err := c.channel.Consume(
		NotificationQueue,
		"order-notifier-"+uuid.NewString(), // consumer tag
		false,                              // auto-ack off, ack after handling
		false,                              // exclusive
		false,                              // no-local
		false,                              // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for msg := range msgs {
			var order models.Order
			if err := json.Unmarshal(msg.Body, &order); err != nil {
				log.Printf("Dropping malformed notification %d: %v", msg.DeliveryTag, err)
				if nackErr := msg.Nack(false, false); nackErr != nil {
					log.Printf("Error nacking message %d: %v", msg.DeliveryTag, nackErr)
				}
				continue
			}

			if err := handler(order); err != nil {
				log.Printf("Error handling notification for order %s: %v", order.ID.Hex(), err)
				if nackErr := msg.Nack(false, true); nackErr != nil {
					log.Printf("Error nacking message %d: %v", msg.DeliveryTag, nackErr)
				}
				continue
			}

			if ackErr := msg.Ack(false); ackErr != nil {
				log.Printf("Error acking message %d: %v", msg.DeliveryTag, ackErr)
			}
		}
	}()

	return nil
}
