package app

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	config "github.com/SarAlbN1/AS-Catalogo-NET/internal/cfg"
	"github.com/SarAlbN1/AS-Catalogo-NET/internal/infrastructure/kafka"
	"github.com/SarAlbN1/AS-Catalogo-NET/internal/infrastructure/mail"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/e"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/logger"
	"github.com/jimlawless/whereami"
)

// RunConsumer поднимает воркер уведомлений: читает события товаров
// и рассылает письма, подтверждая оффсет только после отправки.
func RunConsumer(cfg *config.Config, log logger.Logger) error {
	mailer, err := mail.NewMailer(log, cfg.Mail)
	if err != nil {
		log.Errorf(err, "failed to initialize mailer")
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := kafka.EnsureTopic(cfg.Kafka, 10*time.Second); err != nil {
		log.Errorf(err, "failed to ensure kafka topic")
		return e.Wrap(whereami.WhereAmI(), err)
	}

	consumer, err := kafka.NewConsumer(log, cfg.Kafka, mailer)
	if err != nil {
		log.Errorf(err, "failed to initialize kafka consumer")
		return e.Wrap(whereami.WhereAmI(), err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runErr := consumer.Run(ctx)

	if err := consumer.Close(); err != nil {
		log.Warnf("consumer close: %v", err)
	}

	log.Infof("notification worker shutdown complete")
	return runErr
}
