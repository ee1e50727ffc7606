package pgdb

import (
	"context"

	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/e"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/tr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CatalogRepo реализует репозиторий каталогов поверх PostgreSQL.
type CatalogRepo struct {
	pool *pgxpool.Pool
}

func NewCatalogRepo(pool *pgxpool.Pool) *CatalogRepo {
	return &CatalogRepo{pool: pool}
}

// Exists проверяет существование каталога.
// Внутри транзакции создания товара читает через транзакцию из контекста.
func (c *CatalogRepo) Exists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM catalogs WHERE id = $1)`

	var exists bool
	if tx, err := tr.TxFromCtx(ctx); err == nil {
		if err := tx.QueryRow(ctx, query, id).Scan(&exists); err != nil {
			return false, e.Wrap(whereami.WhereAmI(), err)
		}

		return exists, nil
	}

	if err := c.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return exists, nil
}
