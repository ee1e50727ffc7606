package gateway

import (
	"context"
	"errors"

	"github.com/SarAlbN1/AS-Catalogo-NET/internal/domain"
	"github.com/SarAlbN1/AS-Catalogo-NET/internal/usecase"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/e"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

// LocalGateway работает напрямую с БД шлюза, минуя слой данных.
// События при этом не публикуются: рассылка уведомлений — обязанность
// слоя данных, а не шлюза.
type LocalGateway struct {
	productRepo usecase.ProductRepository
	catalogRepo usecase.CatalogRepository
	dbPool      transaction.Transactional
	logger      logger.Logger
}

func NewLocalGateway(
	productRepo usecase.ProductRepository,
	catalogRepo usecase.CatalogRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *LocalGateway {
	return &LocalGateway{
		productRepo: productRepo,
		catalogRepo: catalogRepo,
		dbPool:      dbPool,
		logger:      logger,
	}
}

func (g *LocalGateway) GetAll(ctx context.Context) ([]domain.Product, error) {
	const op = "LocalGateway.GetAll"

	products, err := g.productRepo.GetAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

func (g *LocalGateway) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	const op = "LocalGateway.GetByID"

	product, err := g.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrProductNotFound) {
			return nil, nil
		}
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

func (g *LocalGateway) Create(ctx context.Context, req *CreateReq) (*domain.Product, error) {
	const op = "LocalGateway.Create"

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, g.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	var exists bool
	exists, err = g.catalogRepo.Exists(ctx, req.CatalogID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if !exists {
		err = e.ErrCatalogNotFound
		return nil, e.Wrap(op, err)
	}

	var product *domain.Product
	product, err = g.productRepo.Create(ctx, domain.NewProduct(
		req.Name,
		req.Description,
		req.Price,
		req.QuantityAvailable,
		req.CatalogID,
	))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

func (g *LocalGateway) Update(ctx context.Context, id int64, req *UpdateReq) (*domain.Product, error) {
	const op = "LocalGateway.Update"

	product, err := g.productRepo.Update(ctx, &domain.Product{
		ID:                id,
		Name:              req.Name,
		Description:       req.Description,
		Price:             req.Price,
		QuantityAvailable: req.QuantityAvailable,
	})
	if err != nil {
		if errors.Is(err, e.ErrProductNotFound) {
			return nil, nil
		}
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

func (g *LocalGateway) Delete(ctx context.Context, id int64) (bool, error) {
	const op = "LocalGateway.Delete"

	if _, err := g.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, e.ErrProductNotFound) {
			return false, nil
		}
		return false, e.Wrap(op, err)
	}

	return true, nil
}
