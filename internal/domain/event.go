package domain

import "time"

// EventType — тип события жизненного цикла товара.
type EventType string

const (
	EventProductCreated EventType = "ProductCreated"
	EventProductUpdated EventType = "ProductUpdated"
	EventProductDeleted EventType = "ProductDeleted"
)

// ProductEvent — неизменяемый факт об одной завершенной мутации товара.
// Timestamp фиксирует момент публикации события, а не момент записи в БД.
type ProductEvent struct {
	Type              EventType
	ProductID         int64
	ProductName       string
	Price             int64 // в центах; только для Created/Updated
	QuantityAvailable int32 // только для Created/Updated
	CatalogID         int64 // только для Created/Updated
	Timestamp         time.Time
}

// NewCreatedEvent строит событие о создании товара.
func NewCreatedEvent(p *Product) *ProductEvent {
	return newSnapshotEvent(EventProductCreated, p)
}

// NewUpdatedEvent строит событие об изменении товара.
func NewUpdatedEvent(p *Product) *ProductEvent {
	return newSnapshotEvent(EventProductUpdated, p)
}

// NewDeletedEvent строит событие об удалении товара.
// Событие несет только идентификатор и имя, зафиксированные до удаления.
func NewDeletedEvent(productID int64, productName string) *ProductEvent {
	return &ProductEvent{
		Type:        EventProductDeleted,
		ProductID:   productID,
		ProductName: productName,
		Timestamp:   time.Now().UTC(),
	}
}

func newSnapshotEvent(t EventType, p *Product) *ProductEvent {
	return &ProductEvent{
		Type:              t,
		ProductID:         p.ID,
		ProductName:       p.Name,
		Price:             p.Price,
		QuantityAvailable: p.QuantityAvailable,
		CatalogID:         p.CatalogID,
		Timestamp:         time.Now().UTC(),
	}
}
