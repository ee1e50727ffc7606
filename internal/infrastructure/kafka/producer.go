package kafka

import (
	"context"
	"strconv"
	"strings"

	"github.com/SarAlbN1/AS-Catalogo-NET/internal/cfg"
	"github.com/SarAlbN1/AS-Catalogo-NET/internal/domain"
	"github.com/SarAlbN1/AS-Catalogo-NET/internal/events"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/e"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/logger"
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/jimlawless/whereami"
)

// Producer публикует события жизненного цикла товара в топик.
// Ключ сообщения — идентификатор товара, поэтому события одного товара
// попадают в одну партицию в порядке публикации.
type Producer struct {
	producer *kafka.Producer
	logger   logger.Logger
	cfg      *cfg.KafkaCfg
}

func NewProducer(logger logger.Logger, cfg *cfg.KafkaCfg) (*Producer, error) {
	producer, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers":  strings.Join(cfg.Brokers, ","),
		"client.id":          cfg.ClientID,
		"acks":               "all",
		"enable.idempotence": true,
		"message.timeout.ms": int(cfg.MessageTimeout.Milliseconds()),
	})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Producer{
		producer: producer,
		logger:   logger,
		cfg:      cfg,
	}, nil
}

// Publish блокируется до подтверждения брокером либо до отмены контекста.
// Локальной очереди повторов нет: решение об ошибке принимает вызывающий.
func (p *Producer) Publish(ctx context.Context, event *domain.ProductEvent) error {
	payload, err := events.Encode(event)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	deliveryChan := make(chan kafka.Event, 1)
	err = p.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &p.cfg.Topic, Partition: kafka.PartitionAny},
		Key:            []byte(strconv.FormatInt(event.ProductID, 10)),
		Value:          payload,
	}, deliveryChan)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	select {
	case ev := <-deliveryChan:
		msg, ok := ev.(*kafka.Message)
		if !ok {
			return e.Wrap(whereami.WhereAmI(), e.ErrInternalServerError)
		}
		if msg.TopicPartition.Error != nil {
			return e.Wrap(whereami.WhereAmI(), msg.TopicPartition.Error)
		}

		p.logger.Debugf("event %s published for product %d, partition: %d, offset: %v",
			event.Type, event.ProductID, msg.TopicPartition.Partition, msg.TopicPartition.Offset)
		return nil
	case <-ctx.Done():
		return e.Wrap(whereami.WhereAmI(), ctx.Err())
	}
}

// Close дожидается отправки буферизованных сообщений и закрывает продюсер.
func (p *Producer) Close() error {
	const flushTimeoutMs = 10000

	if remaining := p.producer.Flush(flushTimeoutMs); remaining > 0 {
		p.logger.Warnf("kafka producer closed with %d undelivered message(s)", remaining)
	}
	p.producer.Close()

	return nil
}
