package kafka

import (
	"fmt"
	"time"

	"github.com/SarAlbN1/AS-Catalogo-NET/internal/cfg"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/e"
	"github.com/jimlawless/whereami"
	kafkago "github.com/segmentio/kafka-go"
)

// EnsureTopic создает топик событий, если его еще нет.
// Вызывается при старте сервисов, чтобы не зависеть от auto.create.topics брокера.
func EnsureTopic(cfg *cfg.KafkaCfg, timeout time.Duration) error {
	conn, err := kafkago.Dial(cfg.NetworkMode, cfg.Brokers[0])
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions(cfg.Topic)
	if err == nil && len(partitions) > 0 {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		err := conn.CreateTopics(kafkago.TopicConfig{
			Topic:             cfg.Topic,
			NumPartitions:     cfg.Partitions,
			ReplicationFactor: cfg.ReplicationFactor,
		})
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), fmt.Errorf("failed to create topic %s: %w", cfg.Topic, err))
		}
		return nil
	case <-time.After(timeout):
		_ = conn.Close()
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("timeout: %v, topic: %s", timeout, cfg.Topic))
	}
}
