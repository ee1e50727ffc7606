package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SarAlbN1/AS-Catalogo-NET/internal/domain"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	product := &domain.Product{
		ID:                42,
		Name:              "Widget",
		Price:             999, // 9.99
		QuantityAvailable: 5,
		CatalogID:         1,
	}

	for _, event := range []*domain.ProductEvent{
		domain.NewCreatedEvent(product),
		domain.NewUpdatedEvent(product),
		domain.NewDeletedEvent(42, "Widget"),
	} {
		payload, err := Encode(event)
		require.NoError(t, err)

		decoded, err := Decode(payload)
		require.NoError(t, err)

		assert.Equal(t, event.Type, decoded.Type)
		assert.Equal(t, event.ProductID, decoded.ProductID)
		assert.Equal(t, event.ProductName, decoded.ProductName)
		assert.Equal(t, event.Price, decoded.Price)
		assert.Equal(t, event.QuantityAvailable, decoded.QuantityAvailable)
		assert.Equal(t, event.CatalogID, decoded.CatalogID)
		assert.WithinDuration(t, event.Timestamp, decoded.Timestamp, time.Second)
	}
}

func TestEncode_WireFormat(t *testing.T) {
	event := domain.NewCreatedEvent(&domain.Product{
		ID:                7,
		Name:              "Widget",
		Price:             999,
		QuantityAvailable: 5,
		CatalogID:         1,
	})

	payload, err := Encode(event)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(payload, &raw))

	assert.JSONEq(t, `"ProductCreated"`, string(raw["EventType"]))
	assert.JSONEq(t, `7`, string(raw["ProductId"]))
	assert.JSONEq(t, `"Widget"`, string(raw["ProductName"]))
	// Цена — JSON-число с двумя знаками, не строка
	assert.Equal(t, "9.99", string(raw["Price"]))
	assert.JSONEq(t, `5`, string(raw["CantidadDisponible"]))
	assert.JSONEq(t, `1`, string(raw["CatalogoId"]))
	assert.Contains(t, string(raw["Timestamp"]), `"`)
}

func TestEncode_DeletedOmitsSnapshotFields(t *testing.T) {
	payload, err := Encode(domain.NewDeletedEvent(7, "Widget"))
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(payload, &raw))

	assert.NotContains(t, raw, "Price")
	assert.NotContains(t, raw, "CantidadDisponible")
	assert.NotContains(t, raw, "CatalogoId")
	assert.Contains(t, raw, "ProductId")
	assert.Contains(t, raw, "ProductName")
}

func TestDecode_Malformed(t *testing.T) {
	for _, payload := range [][]byte{
		[]byte(`{not json`),
		[]byte(`{}`),
		[]byte(`{"ProductId":1}`),
	} {
		_, err := Decode(payload)
		require.Error(t, err)
		assert.ErrorIs(t, err, e.ErrDecodeFailure)
	}
}

func TestDecode_UnknownTypeIsNotDecodeFailure(t *testing.T) {
	event, err := Decode([]byte(`{"EventType":"ProductArchived","ProductId":3,"ProductName":"Widget"}`))
	require.NoError(t, err)
	assert.Equal(t, domain.EventType("ProductArchived"), event.Type)
}
