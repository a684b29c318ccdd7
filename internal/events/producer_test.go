package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStampFillsEnvelope(t *testing.T) {
	var id string
	var at time.Time
	stamp(&id, &at)

	require.NotEmpty(t, id)
	require.False(t, at.IsZero())
}

func TestStampKeepsExistingValues(t *testing.T) {
	id := "fixed-id"
	at := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	stamp(&id, &at)

	require.Equal(t, "fixed-id", id)
	require.Equal(t, 2024, at.Year())
}

func TestWriterPerTopicIsReused(t *testing.T) {
	p := NewKafkaPublisher([]string{"localhost:9092"})
	t.Cleanup(func() { _ = p.Close() })

	first := p.writerForTopic(TopicUserEvents)
	second := p.writerForTopic(TopicUserEvents)
	require.Same(t, first, second)

	other := p.writerForTopic(TopicExerciseEvents)
	require.NotSame(t, first, other)
}
