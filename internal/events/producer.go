package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Publisher pushes domain events to downstream consumers. Publishing is
// best-effort; callers must not fail the originating request on error.
type Publisher interface {
	PublishUserCreated(ctx context.Context, event UserCreated) error
	PublishExerciseLogged(ctx context.Context, event ExerciseLogged) error
}

// NoopPublisher is used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishUserCreated(context.Context, UserCreated) error       { return nil }
func (NoopPublisher) PublishExerciseLogged(context.Context, ExerciseLogged) error { return nil }

// KafkaPublisher lazily manages one writer per topic.
type KafkaPublisher struct {
	brokers []string
	mu      sync.Mutex
	writers map[string]*kafka.Writer
}

// NewKafkaPublisher creates a KafkaPublisher.
func NewKafkaPublisher(brokers []string) *KafkaPublisher {
	return &KafkaPublisher{
		brokers: brokers,
		writers: make(map[string]*kafka.Writer),
	}
}

// PublishUserCreated writes a user.created message keyed by user id.
func (p *KafkaPublisher) PublishUserCreated(ctx context.Context, event UserCreated) error {
	stamp(&event.EventID, &event.OccurredAt)
	return p.write(ctx, TopicUserEvents, event.UserID, event)
}

// PublishExerciseLogged writes an exercise.logged message keyed by owner id,
// so one user's entries land on the same partition in order.
func (p *KafkaPublisher) PublishExerciseLogged(ctx context.Context, event ExerciseLogged) error {
	stamp(&event.EventID, &event.OccurredAt)
	return p.write(ctx, TopicExerciseEvents, event.OwnerID, event)
}

func stamp(eventID *string, occurredAt *time.Time) {
	if *eventID == "" {
		*eventID = uuid.NewString()
	}
	if occurredAt.IsZero() {
		*occurredAt = time.Now().UTC()
	}
}

func (p *KafkaPublisher) write(ctx context.Context, topic, key string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	writer := p.writerForTopic(topic)
	return writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: body,
	})
}

func (p *KafkaPublisher) writerForTopic(topic string) *kafka.Writer {
	p.mu.Lock()
	defer p.mu.Unlock()

	if writer, ok := p.writers[topic]; ok {
		return writer
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(p.brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireAll,
		Compression:  kafka.Snappy,
		Async:        false,
	}
	p.writers[topic] = writer
	return writer
}

// Close releases all writers.
func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error
	for topic, writer := range p.writers {
		if err := writer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(p.writers, topic)
	}
	return firstErr
}
