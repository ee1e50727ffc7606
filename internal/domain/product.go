package domain

import "time"

// Product описывает товар каталога
type Product struct {
	ID                int64
	Name              string
	Description       string
	Price             int64 // Цена хранится в центах
	QuantityAvailable int32
	CatalogID         int64
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}

func NewProduct(name, description string, price int64, quantity int32, catalogID int64) *Product {
	return &Product{
		Name:              name,
		Description:       description,
		Price:             price,
		QuantityAvailable: quantity,
		CatalogID:         catalogID,
	}
}
