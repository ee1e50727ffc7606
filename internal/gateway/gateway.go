// Package gateway абстрагирует источник данных REST-шлюза:
// либо локальная БД, либо удаленный слой данных по gRPC.
package gateway

import (
	"context"

	"github.com/SarAlbN1/AS-Catalogo-NET/internal/domain"
)

// CreateReq — данные нового товара, пришедшие через REST.
type CreateReq struct {
	Name              string
	Description       string
	Price             int64 // в центах
	QuantityAvailable int32
	CatalogID         int64
}

// UpdateReq — изменяемые поля товара.
type UpdateReq struct {
	Name              string
	Description       string
	Price             int64
	QuantityAvailable int32
}

// ProductGateway — операции каталога с точки зрения шлюза.
// Отсутствие товара выражается нулевым результатом, а не ошибкой:
// GetByID и Update возвращают (nil, nil), Delete — (false, nil).
type ProductGateway interface {
	GetAll(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, req *CreateReq) (*domain.Product, error)
	Update(ctx context.Context, id int64, req *UpdateReq) (*domain.Product, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
