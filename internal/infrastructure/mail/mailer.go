package mail

import (
	"context"
	"fmt"
	"strings"

	"github.com/SarAlbN1/AS-Catalogo-NET/internal/cfg"
	"github.com/SarAlbN1/AS-Catalogo-NET/internal/domain"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/e"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/logger"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
	gomail "github.com/wneessen/go-mail"
)

// smtpSender — срез *gomail.Client, достаточный для отправки письма.
type smtpSender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*gomail.Msg) error
}

// Mailer отправляет письмо администратору на каждое событие товара.
// Ошибка отправки возвращается наверх: консьюмер не подтвердит оффсет,
// и событие будет доставлено повторно.
type Mailer struct {
	sender smtpSender
	logger logger.Logger
	cfg    *cfg.MailCfg
}

func NewMailer(logger logger.Logger, cfg *cfg.MailCfg) (*Mailer, error) {
	opts := []gomail.Option{gomail.WithPort(cfg.Port)}

	// Локальные серверы вроде maildev не поддерживают ни TLS, ни аутентификацию.
	if isLocalHost(cfg.Host) {
		opts = append(opts, gomail.WithTLSPolicy(gomail.NoTLS))
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory))
		if cfg.Username != "" && cfg.Password != "" {
			opts = append(opts,
				gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
				gomail.WithUsername(cfg.Username),
				gomail.WithPassword(cfg.Password),
			)
		}
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return newMailer(client, logger, cfg), nil
}

func newMailer(sender smtpSender, logger logger.Logger, cfg *cfg.MailCfg) *Mailer {
	return &Mailer{
		sender: sender,
		logger: logger,
		cfg:    cfg,
	}
}

// Send формирует письмо по типу события и отправляет его синхронно.
func (m *Mailer) Send(ctx context.Context, event *domain.ProductEvent) error {
	msg, err := m.buildMessage(event)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := m.sender.DialAndSendWithContext(ctx, msg); err != nil {
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("%w: %w", e.ErrDeliveryFailure, err))
	}

	m.logger.Infof("notification for %s sent, product: %s", event.Type, event.ProductName)
	return nil
}

func (m *Mailer) buildMessage(event *domain.ProductEvent) (*gomail.Msg, error) {
	subject, body, err := render(event)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	msg := gomail.NewMsg()
	if err := msg.FromFormat("Catalogo System", m.cfg.From); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if err := msg.To(m.cfg.To); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	msg.SetMessageIDWithValue(uuid.NewString())
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, body)

	return msg, nil
}

func isLocalHost(host string) bool {
	return strings.Contains(host, "maildev") ||
		strings.Contains(host, "localhost") ||
		strings.Contains(host, "127.0.0.1")
}
