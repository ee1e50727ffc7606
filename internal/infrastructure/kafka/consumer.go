package kafka

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/SarAlbN1/AS-Catalogo-NET/internal/cfg"
	"github.com/SarAlbN1/AS-Catalogo-NET/internal/domain"
	"github.com/SarAlbN1/AS-Catalogo-NET/internal/events"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/e"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/jitter"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/logger"
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/jimlawless/whereami"
)

// Dispatcher доставляет событие получателю (почта, вебхук и т.п.).
type Dispatcher interface {
	Send(ctx context.Context, event *domain.ProductEvent) error
}

// messageSource — минимальный срез *kafka.Consumer, нужный циклу обработки.
type messageSource interface {
	ReadMessage(timeout time.Duration) (*kafka.Message, error)
	CommitMessage(m *kafka.Message) ([]kafka.TopicPartition, error)
	Close() error
}

// Consumer читает события товаров и подтверждает оффсет только после
// успешной доставки. Автокоммит выключен: при падении между доставкой
// и коммитом сообщение придет повторно.
type Consumer struct {
	source     messageSource
	dispatcher Dispatcher
	logger     logger.Logger
	cfg        *cfg.KafkaCfg
}

func NewConsumer(logger logger.Logger, cfg *cfg.KafkaCfg, dispatcher Dispatcher) (*Consumer, error) {
	consumer, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers":  strings.Join(cfg.Brokers, ","),
		"group.id":           cfg.GroupID,
		"auto.offset.reset":  "earliest",
		"enable.auto.commit": false,
	})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := consumer.Subscribe(cfg.Topic, nil); err != nil {
		_ = consumer.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return newConsumer(consumer, logger, cfg, dispatcher), nil
}

func newConsumer(source messageSource, logger logger.Logger, cfg *cfg.KafkaCfg, dispatcher Dispatcher) *Consumer {
	return &Consumer{
		source:     source,
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// Run крутит цикл опроса до отмены контекста. Сообщение в обработке
// доводится до конца, после чего цикл завершается.
func (c *Consumer) Run(ctx context.Context) error {
	c.logger.Infof("consumer started, topic: %s, group: %s", c.cfg.Topic, c.cfg.GroupID)

	for {
		select {
		case <-ctx.Done():
			c.logger.Infof("consumer stopped by context cancellation")
			return nil
		default:
		}

		msg, err := c.source.ReadMessage(c.cfg.PollTimeout)
		if err != nil {
			var kafkaErr kafka.Error
			if errors.As(err, &kafkaErr) && kafkaErr.IsTimeout() {
				continue
			}
			c.logger.Warnf("consume error: %v", err)
			continue
		}

		c.handleMessage(ctx, msg)
	}
}

func (c *Consumer) handleMessage(ctx context.Context, msg *kafka.Message) {
	event, err := events.Decode(msg.Value)
	if err != nil {
		// Сообщение не разбирается и разбираться не начнет;
		// оффсет не подтверждаем, после рестарта оно придет снова.
		c.logger.Warnf("skipping undecodable message at %v: %v", msg.TopicPartition, err)
		return
	}

	switch event.Type {
	case domain.EventProductCreated, domain.EventProductUpdated, domain.EventProductDeleted:
	default:
		c.logger.Warnf("unknown event type %q for product %d, skipping", event.Type, event.ProductID)
		c.commit(msg)
		return
	}

	if err := c.dispatcher.Send(ctx, event); err != nil {
		c.logger.Errorf(err, "failed to dispatch %s for product %d, offset not committed", event.Type, event.ProductID)
		c.pause(ctx)
		return
	}

	c.commit(msg)
	c.logger.Infof("event %s for product %d processed, offset committed", event.Type, event.ProductID)
}

func (c *Consumer) commit(msg *kafka.Message) {
	if _, err := c.source.CommitMessage(msg); err != nil {
		c.logger.Errorf(err, "failed to commit offset at %v", msg.TopicPartition)
	}
}

// pause выдерживает паузу после сбоя доставки, чтобы не молотить
// недоступный SMTP в плотном цикле.
func (c *Consumer) pause(ctx context.Context) {
	timer := time.NewTimer(jitter.Duration(c.cfg.FailurePause, jitter.DefaultJitter))
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func (c *Consumer) Close() error {
	return c.source.Close()
}
