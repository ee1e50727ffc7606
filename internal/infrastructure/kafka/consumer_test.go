package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/SarAlbN1/AS-Catalogo-NET/internal/cfg"
	"github.com/SarAlbN1/AS-Catalogo-NET/internal/domain"
	"github.com/SarAlbN1/AS-Catalogo-NET/internal/events"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/logger"
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	messages []*kafka.Message
	pos      int
	commits  []*kafka.Message
	drained  context.CancelFunc
}

func (s *fakeSource) ReadMessage(timeout time.Duration) (*kafka.Message, error) {
	if s.pos >= len(s.messages) {
		if s.drained != nil {
			s.drained()
		}
		return nil, kafka.NewError(kafka.ErrTimedOut, "timed out", false)
	}

	msg := s.messages[s.pos]
	s.pos++
	return msg, nil
}

func (s *fakeSource) CommitMessage(m *kafka.Message) ([]kafka.TopicPartition, error) {
	s.commits = append(s.commits, m)
	return nil, nil
}

func (s *fakeSource) Close() error { return nil }

type fakeDispatcher struct {
	sent     []*domain.ProductEvent
	failures int
}

func (d *fakeDispatcher) Send(ctx context.Context, event *domain.ProductEvent) error {
	if d.failures > 0 {
		d.failures--
		return errors.New("smtp unavailable")
	}
	d.sent = append(d.sent, event)
	return nil
}

func testLogger() logger.Logger {
	return logger.NewSlogLogger()
}

func testKafkaCfg() *cfg.KafkaCfg {
	return &cfg.KafkaCfg{
		Topic:        "product-events",
		GroupID:      "test-group",
		PollTimeout:  time.Millisecond,
		FailurePause: time.Millisecond,
	}
}

func encodedMessage(t *testing.T, event *domain.ProductEvent) *kafka.Message {
	t.Helper()

	payload, err := events.Encode(event)
	require.NoError(t, err)

	return &kafka.Message{Value: payload}
}

func runConsumer(t *testing.T, source *fakeSource, dispatcher *fakeDispatcher) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	source.drained = cancel

	consumer := newConsumer(source, testLogger(), testKafkaCfg(), dispatcher)
	require.NoError(t, consumer.Run(ctx))
}

func TestConsumer_DeliversAndCommits(t *testing.T) {
	product := domain.NewProduct("Teclado", "Teclado mecánico", 9990, 4, 1)
	product.ID = 7

	source := &fakeSource{messages: []*kafka.Message{
		encodedMessage(t, domain.NewCreatedEvent(product)),
		encodedMessage(t, domain.NewUpdatedEvent(product)),
	}}
	dispatcher := &fakeDispatcher{}

	runConsumer(t, source, dispatcher)

	require.Len(t, dispatcher.sent, 2)
	assert.Equal(t, domain.EventProductCreated, dispatcher.sent[0].Type)
	assert.Equal(t, domain.EventProductUpdated, dispatcher.sent[1].Type)
	assert.Len(t, source.commits, 2)
}

func TestConsumer_NoCommitOnDispatchFailure(t *testing.T) {
	product := domain.NewProduct("Mouse", "", 4990, 10, 1)
	product.ID = 3

	source := &fakeSource{messages: []*kafka.Message{
		encodedMessage(t, domain.NewCreatedEvent(product)),
	}}
	dispatcher := &fakeDispatcher{failures: 1}

	runConsumer(t, source, dispatcher)

	assert.Empty(t, dispatcher.sent)
	assert.Empty(t, source.commits, "failed delivery must leave the offset unacknowledged")
}

func TestConsumer_RedeliveryAfterFailure(t *testing.T) {
	product := domain.NewProduct("Mouse", "", 4990, 10, 1)
	product.ID = 3
	msg := encodedMessage(t, domain.NewCreatedEvent(product))

	// Брокер отдает то же сообщение второй раз, как после рестарта группы.
	source := &fakeSource{messages: []*kafka.Message{msg, msg}}
	dispatcher := &fakeDispatcher{failures: 1}

	runConsumer(t, source, dispatcher)

	require.Len(t, dispatcher.sent, 1)
	assert.Equal(t, int64(3), dispatcher.sent[0].ProductID)
	assert.Len(t, source.commits, 1)
}

func TestConsumer_SkipsUndecodableWithoutCommit(t *testing.T) {
	source := &fakeSource{messages: []*kafka.Message{
		{Value: []byte("{not json")},
	}}
	dispatcher := &fakeDispatcher{}

	runConsumer(t, source, dispatcher)

	assert.Empty(t, dispatcher.sent)
	assert.Empty(t, source.commits)
}

func TestConsumer_UnknownEventTypeCommittedWithoutDispatch(t *testing.T) {
	payload, err := json.Marshal(map[string]any{
		"EventType": "ProductArchived",
		"ProductId": 42,
		"Timestamp": time.Now().UTC(),
	})
	require.NoError(t, err)

	source := &fakeSource{messages: []*kafka.Message{{Value: payload}}}
	dispatcher := &fakeDispatcher{}

	runConsumer(t, source, dispatcher)

	assert.Empty(t, dispatcher.sent)
	assert.Len(t, source.commits, 1, "unknown event types are acknowledged and never retried")
}
