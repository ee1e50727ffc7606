package mail

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SarAlbN1/AS-Catalogo-NET/internal/cfg"
	"github.com/SarAlbN1/AS-Catalogo-NET/internal/domain"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/e"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "github.com/wneessen/go-mail"
)

type fakeSender struct {
	sent []*gomail.Msg
	err  error
}

func (s *fakeSender) DialAndSendWithContext(ctx context.Context, messages ...*gomail.Msg) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, messages...)
	return nil
}

func testMailCfg() *cfg.MailCfg {
	return &cfg.MailCfg{
		Host: "localhost",
		Port: 1025,
		From: "catalogo@localhost",
		To:   "admin@localhost",
	}
}

func snapshotEvent(t domain.EventType) *domain.ProductEvent {
	return &domain.ProductEvent{
		Type:              t,
		ProductID:         12,
		ProductName:       "Monitor LG",
		Price:             24950,
		QuantityAvailable: 3,
		CatalogID:         1,
		Timestamp:         time.Date(2026, 5, 14, 9, 30, 0, 0, time.UTC),
	}
}

func TestRender_CreatedEvent(t *testing.T) {
	subject, body, err := render(snapshotEvent(domain.EventProductCreated))
	require.NoError(t, err)

	assert.Equal(t, "Nuevo Producto Creado: Monitor LG", subject)
	assert.Contains(t, body, "Nuevo Producto en el Catálogo")
	assert.Contains(t, body, "Monitor LG")
	assert.Contains(t, body, "$249.50")
	assert.Contains(t, body, "14/05/2026 09:30:00")
}

func TestRender_UpdatedEvent(t *testing.T) {
	subject, body, err := render(snapshotEvent(domain.EventProductUpdated))
	require.NoError(t, err)

	assert.Equal(t, "Producto Actualizado: Monitor LG", subject)
	assert.Contains(t, body, "Producto Actualizado en el Catálogo")
	assert.Contains(t, body, "$249.50")
}

func TestRender_DeletedEventOmitsPrice(t *testing.T) {
	event := domain.NewDeletedEvent(12, "Monitor LG")

	subject, body, err := render(event)
	require.NoError(t, err)

	assert.Equal(t, "Producto Eliminado: Monitor LG", subject)
	assert.Contains(t, body, "Producto Eliminado del Catálogo")
	assert.NotContains(t, body, "Precio")
}

func TestRender_UnknownEventType(t *testing.T) {
	event := &domain.ProductEvent{Type: "ProductArchived", ProductID: 1}

	_, _, err := render(event)
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrUnknownEvent)
}

func TestMailer_SendAddressesMessage(t *testing.T) {
	sender := &fakeSender{}
	mailer := newMailer(sender, logger.NewSlogLogger(), testMailCfg())

	err := mailer.Send(context.Background(), snapshotEvent(domain.EventProductCreated))
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	require.Len(t, msg.GetToString(), 1)
	assert.Contains(t, msg.GetToString()[0], "admin@localhost")
	require.Len(t, msg.GetFromString(), 1)
	assert.Contains(t, msg.GetFromString()[0], "catalogo@localhost")
}

func TestMailer_SendFailureWrapsDeliveryError(t *testing.T) {
	sender := &fakeSender{err: errors.New("connection refused")}
	mailer := newMailer(sender, logger.NewSlogLogger(), testMailCfg())

	err := mailer.Send(context.Background(), snapshotEvent(domain.EventProductUpdated))
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrDeliveryFailure)
}

func TestIsLocalHost(t *testing.T) {
	assert.True(t, isLocalHost("localhost"))
	assert.True(t, isLocalHost("maildev"))
	assert.True(t, isLocalHost("127.0.0.1"))
	assert.False(t, isLocalHost("smtp.gmail.com"))
}
