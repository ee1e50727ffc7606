package usecase

import (
	"context"

	"github.com/SarAlbN1/AS-Catalogo-NET/internal/domain"
)

type ProductUC interface {
	GetAll(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, req *CreateProductReq) (*domain.Product, error)
	Update(ctx context.Context, id int64, req *UpdateProductReq) (*domain.Product, error)
	Delete(ctx context.Context, id int64) (*DeleteRes, error)
}
