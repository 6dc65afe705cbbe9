package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	kafka "github.com/segmentio/kafka-go"

	"order-review-svc/internal/models"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Event is the envelope every domain event is published in.
type Event struct {
	ID         string           `json:"id"`
	Type       models.EventType `json:"type"`
	OccurredAt time.Time        `json:"occurred_at"`
	Payload    any              `json:"payload"`
}

type Publisher struct {
	writer messageWriter
	now    func() time.Time
	newID  func() string
}

func NewPublisher(brokers []string, topic string) *Publisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
	}
	return newPublisher(w)
}

func newPublisher(w messageWriter) *Publisher {
	return &Publisher{writer: w, now: time.Now, newID: uuid.NewString}
}

// Publish writes a raw payload, used by the command CLI.
func (p *Publisher) Publish(ctx context.Context, key, payload []byte, headers ...kafka.Header) error {
	msg := kafka.Message{Key: key, Value: payload, Headers: headers}
	return errors.Wrap(p.writer.WriteMessages(ctx, msg), "kafka write")
}

// Emit wraps payload in an Event keyed by the aggregate id, so all events of
// one order or dish land on the same partition.
func (p *Publisher) Emit(ctx context.Context, eventType models.EventType, key string, payload any) error {
	ev := Event{
		ID:         p.newID(),
		Type:       eventType,
		OccurredAt: p.now().UTC(),
		Payload:    payload,
	}
	body, err := json.Marshal(ev)
	if err != nil {
		return errors.Wrapf(err, "marshal %s event", eventType)
	}
	msg := kafka.Message{
		Key:   []byte(key),
		Value: body,
		Headers: []kafka.Header{
			{Key: "x-event-type", Value: []byte(eventType)},
			{Key: "x-event-id", Value: []byte(ev.ID)},
		},
	}
	return errors.Wrapf(p.writer.WriteMessages(ctx, msg), "publish %s", eventType)
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
