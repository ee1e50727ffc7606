// Package events кодирует события жизненного цикла товара в JSON-формат
// топика product-events и обратно. Формат совместим со старыми консьюмерами,
// поэтому имена ключей (CantidadDisponible, CatalogoId) менять нельзя.
package events

import (
	"encoding/json"
	"time"

	"github.com/SarAlbN1/AS-Catalogo-NET/internal/domain"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/e"
	"github.com/shopspring/decimal"
)

func init() {
	// Цена сериализуется как JSON-число, не строка
	decimal.MarshalJSONWithoutQuotes = true
}

// Envelope — проводное представление события в топике.
// Price/CantidadDisponible/CatalogoId отсутствуют у ProductDeleted.
type Envelope struct {
	EventType          string           `json:"EventType"`
	ProductID          int64            `json:"ProductId"`
	ProductName        string           `json:"ProductName"`
	Price              *decimal.Decimal `json:"Price,omitempty"`
	CantidadDisponible *int32           `json:"CantidadDisponible,omitempty"`
	CatalogoID         *int64           `json:"CatalogoId,omitempty"`
	Timestamp          time.Time        `json:"Timestamp"`
}

// Encode сериализует событие в JSON-сообщение топика.
func Encode(event *domain.ProductEvent) ([]byte, error) {
	env := Envelope{
		EventType:   string(event.Type),
		ProductID:   event.ProductID,
		ProductName: event.ProductName,
		Timestamp:   event.Timestamp,
	}

	if event.Type != domain.EventProductDeleted {
		price := decimal.New(event.Price, -2)
		quantity := event.QuantityAvailable
		catalogID := event.CatalogID

		env.Price = &price
		env.CantidadDisponible = &quantity
		env.CatalogoID = &catalogID
	}

	payload, err := json.Marshal(env)
	if err != nil {
		return nil, e.Wrap("events.Encode", err)
	}

	return payload, nil
}

// Decode разбирает JSON-сообщение топика в событие.
// Неразбираемое сообщение дает ErrDecodeFailure; неизвестный тип события
// не считается ошибкой декодирования — политику выбирает консьюмер.
func Decode(payload []byte) (*domain.ProductEvent, error) {
	var env Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, e.Wrap(err.Error(), e.ErrDecodeFailure)
	}

	if env.EventType == "" || env.ProductID == 0 {
		return nil, e.Wrap("missing EventType or ProductId", e.ErrDecodeFailure)
	}

	event := &domain.ProductEvent{
		Type:        domain.EventType(env.EventType),
		ProductID:   env.ProductID,
		ProductName: env.ProductName,
		Timestamp:   env.Timestamp,
	}

	if env.Price != nil {
		event.Price = env.Price.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	}
	if env.CantidadDisponible != nil {
		event.QuantityAvailable = *env.CantidadDisponible
	}
	if env.CatalogoID != nil {
		event.CatalogID = *env.CatalogoID
	}

	return event, nil
}
