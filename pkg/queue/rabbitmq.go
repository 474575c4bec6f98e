package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"portfolio-api/pkg/config"
	"portfolio-api/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	EventsExchange   = "portfolio_events"
	EventsQueueName  = "portfolio_events_log"
	EventsBindingKey = "#"
)

// Routing keys published on EventsExchange.
const (
	EventPostPublished   = "blog.post_published"
	EventContactReceived = "contact.received"
	EventSubscriberAdded = "newsletter.subscribed"
	EventMediaUploaded   = "media.uploaded"
)

// Event is the JSON envelope of every published message.
type Event struct {
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *logger.Logger
	mu      sync.Mutex
}

// NewRabbitMQClient dials the broker. It returns a nil client when RABBITMQ_HOST is empty.
func NewRabbitMQClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	if cfg.RabbitMQHost == "" {
		return nil, nil
	}

	url := fmt.Sprintf("amqp://%s:%s@%s:%s/",
		cfg.RabbitMQUser,
		cfg.RabbitMQPassword,
		cfg.RabbitMQHost,
		cfg.RabbitMQPort,
	)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		EventsExchange, // name
		"topic",        // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	_, err = channel.QueueDeclare(
		EventsQueueName, // name
		true,            // durable
		false,           // delete when unused
		false,           // exclusive
		false,           // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	if err := channel.QueueBind(EventsQueueName, EventsBindingKey, EventsExchange, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to bind queue: %w", err)
	}

	log.Info("Connected to RabbitMQ at %s:%s", cfg.RabbitMQHost, cfg.RabbitMQPort)

	return &Client{
		conn:    conn,
		channel: channel,
		logger:  log,
	}, nil
}

func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// Publish sends payload wrapped in an Event to EventsExchange under routing key event.
func (c *Client) Publish(ctx context.Context, event string, payload interface{}) error {
	if c == nil {
		return nil
	}

	body, err := EncodeEvent(event, payload, time.Now().UTC())
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	err = c.channel.PublishWithContext(ctx,
		EventsExchange, // exchange
		event,          // routing key
		false,          // mandatory
		false,          // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		c.logger.Error("[RABBITMQ] Failed to publish to exchange=%s, routing_key=%s: %v", EventsExchange, event, err)
		return fmt.Errorf("failed to publish message: %w", err)
	}

	c.logger.Debug("[RABBITMQ] Published exchange=%s, routing_key=%s, size=%d", EventsExchange, event, len(body))
	return nil
}

func EncodeEvent(event string, payload interface{}, at time.Time) ([]byte, error) {
	body, err := json.Marshal(Event{Type: event, OccurredAt: at, Payload: payload})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}
	return body, nil
}

// Delivery is an event read back from EventsQueueName.
type Delivery struct {
	Type       string          `json:"type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

func DecodeEvent(body []byte) (Delivery, error) {
	var d Delivery
	if err := json.Unmarshal(body, &d); err != nil {
		return Delivery{}, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if d.Type == "" {
		return Delivery{}, fmt.Errorf("event has no type")
	}
	return d, nil
}

// Delay before a failed event is requeued, doubling per consecutive failure.
const (
	MinRedeliveryDelay = time.Second
	MaxRedeliveryDelay = 30 * time.Second
)

// ConsumeEvents hands every event on EventsQueueName to handler until ctx is
// done or the channel closes. Undecodable messages are dropped; handler
// errors requeue the message after a backoff.
func (c *Client) ConsumeEvents(ctx context.Context, handler func(ctx context.Context, d Delivery) error) error {
	msgs, err := c.channel.ConsumeWithContext(ctx,
		EventsQueueName, // queue
		"",              // consumer
		false,           // auto-ack (we'll manually ack after processing)
		false,           // exclusive
		false,           // no-local
		false,           // no-wait
		nil,             // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	c.logger.Info("[RABBITMQ] Started consuming from %s", EventsQueueName)

	var backoff redeliveryBackoff
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}
			c.process(ctx, msg, handler, &backoff, sleep)
		}
	}
}

func (c *Client) process(
	ctx context.Context,
	msg amqp.Delivery,
	handler func(ctx context.Context, d Delivery) error,
	backoff *redeliveryBackoff,
	wait func(ctx context.Context, d time.Duration),
) {
	d, err := DecodeEvent(msg.Body)
	if err != nil {
		c.logger.Error("[RABBITMQ] Dropping malformed event: %v, body=%s", err, string(msg.Body))
		msg.Nack(false, false)
		return
	}

	if err := handler(ctx, d); err != nil {
		delay := backoff.failure()
		c.logger.Error("[RABBITMQ] Handler failed for %s, requeueing in %s: %v", d.Type, delay, err)
		wait(ctx, delay)
		msg.Nack(false, true)
		return
	}

	backoff.reset()
	msg.Ack(false)
}

type redeliveryBackoff struct {
	next time.Duration
}

func (b *redeliveryBackoff) failure() time.Duration {
	switch {
	case b.next == 0:
		b.next = MinRedeliveryDelay
	case b.next < MaxRedeliveryDelay:
		b.next *= 2
		if b.next > MaxRedeliveryDelay {
			b.next = MaxRedeliveryDelay
		}
	}
	return b.next
}

func (b *redeliveryBackoff) reset() {
	b.next = 0
}

func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
