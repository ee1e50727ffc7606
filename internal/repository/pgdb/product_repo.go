package pgdb

import (
	"context"
	"errors"

	"github.com/SarAlbN1/AS-Catalogo-NET/internal/domain"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/e"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
}

func NewProductRepo(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

// GetAll возвращает все товары в порядке идентификаторов.
func (p *ProductRepo) GetAll(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT id, name, description, price, quantity_available, catalog_id, created_at, updated_at
		FROM products
		ORDER BY id
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Product, 0)
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(
			&product.ID, &product.Name, &product.Description, &product.Price,
			&product.QuantityAvailable, &product.CatalogID, &product.CreatedAt, &product.UpdatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, product)
	}

	return result, rows.Err()
}

// GetByID возвращает товар по идентификатору или ErrProductNotFound.
func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `
		SELECT id, name, description, price, quantity_available, catalog_id, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	var product domain.Product
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&product.ID, &product.Name, &product.Description, &product.Price,
		&product.QuantityAvailable, &product.CatalogID, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrProductNotFound
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &product, nil
}

// Create вставляет товар в рамках транзакции из контекста.
// Идентификатор и created_at назначает база.
func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO products (name, description, price, quantity_available, catalog_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err = tx.QueryRow(ctx, query,
		product.Name,
		product.Description,
		product.Price,
		product.QuantityAvailable,
		product.CatalogID,
	).Scan(&product.ID, &product.CreatedAt)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return product, nil
}

// Update перезаписывает изменяемые поля товара одной командой.
// catalog_id намеренно не входит в SET: привязка к каталогу неизменна.
func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		UPDATE products
		SET name = $2,
			description = $3,
			price = $4,
			quantity_available = $5,
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, description, price, quantity_available, catalog_id, created_at, updated_at
	`

	var updated domain.Product
	err := p.pool.QueryRow(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Price,
		product.QuantityAvailable,
	).Scan(
		&updated.ID, &updated.Name, &updated.Description, &updated.Price,
		&updated.QuantityAvailable, &updated.CatalogID, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrProductNotFound
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &updated, nil
}

// Delete удаляет товар и возвращает имя, зафиксированное до удаления.
func (p *ProductRepo) Delete(ctx context.Context, id int64) (string, error) {
	query := `
		DELETE FROM products
		WHERE id = $1
		RETURNING name
	`

	var name string
	if err := p.pool.QueryRow(ctx, query, id).Scan(&name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", e.ErrProductNotFound
		}

		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return name, nil
}
