package usecase

import (
	"context"

	"github.com/SarAlbN1/AS-Catalogo-NET/internal/domain"
)

// EventPublisher публикует событие жизненного цикла товара в брокер.
// Publish блокируется до подтверждения брокером либо до ошибки.
type EventPublisher interface {
	Publish(ctx context.Context, event *domain.ProductEvent) error
}
