package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/SarAlbN1/AS-Catalogo-NET/internal/domain"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/e"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

const (
	maxNameLen        = 100
	maxDescriptionLen = 500
)

// ProductUseCase реализует бизнес-логику слоя данных каталога:
// CRUD по товарам и публикация события после каждой успешной мутации.
type ProductUseCase struct {
	productRepo ProductRepository
	catalogRepo CatalogRepository
	dbPool      transaction.Transactional
	publisher   EventPublisher
	cacheRepo   CacheRepository
	logger      logger.Logger
}

func NewProductUC(
	productRepo ProductRepository,
	catalogRepo CatalogRepository,
	dbPool transaction.Transactional,
	publisher EventPublisher,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		catalogRepo: catalogRepo,
		dbPool:      dbPool,
		publisher:   publisher,
		cacheRepo:   cacheRepo,
		logger:      logger,
	}
}

// GetAll возвращает все товары каталога.
func (p *ProductUseCase) GetAll(ctx context.Context) ([]domain.Product, error) {
	const op = "ProductUseCase.GetAll"

	products, err := p.productRepo.GetAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// GetByID возвращает товар по идентификатору, используя кэш на чтение.
func (p *ProductUseCase) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	const op = "ProductUseCase.GetByID"

	cached, err := p.cacheRepo.GetProduct(ctx, id)
	if err != nil {
		p.logger.Warnf("cache lookup failed for product %d: %v", id, err)
	} else if cached != nil {
		return cached, nil
	}

	product, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Фоновое добавление товара в кэш
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := p.cacheRepo.SetProduct(bgCtx, product); err != nil {
			p.logger.Warnf("failed to cache product %d in background: %v", id, err)
		}
	}()

	return product, nil
}

// Create создает товар и публикует событие ProductCreated.
// Проверка каталога и вставка выполняются в одной транзакции.
func (p *ProductUseCase) Create(ctx context.Context, req *CreateProductReq) (*domain.Product, error) {
	const op = "ProductUseCase.Create"

	var err error
	if err = validateProductFields(req.Name, req.Description, req.Price, req.QuantityAvailable); err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.dbPool)
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
	exists, err = p.catalogRepo.Exists(ctx, req.CatalogID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if !exists {
		err = e.ErrCatalogNotFound
		return nil, e.Wrap(op, err)
	}

	var product *domain.Product
	product, err = p.productRepo.Create(ctx, domain.NewProduct(
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

	// Запись уже зафиксирована: ошибка публикации все равно отдается вызывающему
	if err = p.publisher.Publish(ctx, domain.NewCreatedEvent(product)); err != nil {
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

// Update перезаписывает изменяемые поля товара и публикует событие ProductUpdated.
// Привязка к каталогу при обновлении не меняется.
func (p *ProductUseCase) Update(ctx context.Context, id int64, req *UpdateProductReq) (*domain.Product, error) {
	const op = "ProductUseCase.Update"

	if err := validateProductFields(req.Name, req.Description, req.Price, req.QuantityAvailable); err != nil {
		return nil, e.Wrap(op, err)
	}

	product, err := p.productRepo.Update(ctx, &domain.Product{
		ID:                id,
		Name:              req.Name,
		Description:       req.Description,
		Price:             req.Price,
		QuantityAvailable: req.QuantityAvailable,
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	p.invalidateCache(ctx, id)

	if err := p.publisher.Publish(ctx, domain.NewUpdatedEvent(product)); err != nil {
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

// Delete удаляет товар и публикует событие ProductDeleted с именем,
// зафиксированным до удаления.
func (p *ProductUseCase) Delete(ctx context.Context, id int64) (*DeleteRes, error) {
	const op = "ProductUseCase.Delete"

	name, err := p.productRepo.Delete(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	p.invalidateCache(ctx, id)

	if err := p.publisher.Publish(ctx, domain.NewDeletedEvent(id, name)); err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewDeleteRes(true, fmt.Sprintf("product with id %d deleted successfully", id)), nil
}

// invalidateCache удаляет товар из кэша; ошибка кэша мутацию не отменяет.
func (p *ProductUseCase) invalidateCache(ctx context.Context, id int64) {
	if err := p.cacheRepo.DeleteProduct(ctx, id); err != nil {
		p.logger.Warnf("failed to invalidate cache for product %d: %v", id, err)
	}
}

// validateProductFields проверяет корректность входных данных мутации.
func validateProductFields(name, description string, price int64, quantity int32) error {
	if name == "" {
		return e.ErrProductNameRequired
	}
	if len(name) > maxNameLen {
		return e.ErrNameTooLong
	}
	if len(description) > maxDescriptionLen {
		return e.ErrDescriptionTooLong
	}
	if price < 0 {
		return e.ErrInvalidPrice
	}
	if quantity < 0 {
		return e.ErrInvalidQuantity
	}

	return nil
}
