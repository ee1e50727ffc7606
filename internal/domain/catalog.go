package domain

import "time"

// Catalog описывает родительский каталог товаров
type Catalog struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
