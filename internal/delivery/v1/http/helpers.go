package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/SarAlbN1/AS-Catalogo-NET/internal/domain"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/e"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// ProductResponse — представление товара в REST-ответах.
type ProductResponse struct {
	ID                int64      `json:"id"`
	Name              string     `json:"name"`
	Description       string     `json:"description"`
	Price             float64    `json:"price"`
	QuantityAvailable int32      `json:"quantityAvailable"`
	CatalogID         int64      `json:"catalogId"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         *time.Time `json:"updatedAt,omitempty"`
}

// CreateProductRequest — тело POST /products.
// Цена принимается как json.Number, чтобы не терять десятичную запись.
type CreateProductRequest struct {
	Name              string      `json:"name"`
	Description       string      `json:"description"`
	Price             json.Number `json:"price"`
	QuantityAvailable int32       `json:"quantityAvailable"`
	CatalogID         int64       `json:"catalogId"`
}

// UpdateProductRequest — тело PUT /products/{id}.
// Привязку к каталогу через обновление менять нельзя.
type UpdateProductRequest struct {
	Name              string      `json:"name"`
	Description       string      `json:"description"`
	Price             json.Number `json:"price"`
	QuantityAvailable int32       `json:"quantityAvailable"`
}

func toProductResponse(p *domain.Product) *ProductResponse {
	return &ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		Price:             decimal.New(p.Price, -2).InexactFloat64(),
		QuantityAvailable: p.QuantityAvailable,
		CatalogID:         p.CatalogID,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func toArrProductResponse(prs []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(prs))
	for i, p := range prs {
		res[i] = *toProductResponse(&p)
	}

	return res
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrCatalogNotFound):
		return http.StatusNotFound, e.ErrCatalogNotFound.Error()
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrProductNameRequired):
		return http.StatusBadRequest, e.ErrProductNameRequired.Error()
	case errors.Is(err, e.ErrNameTooLong):
		return http.StatusBadRequest, e.ErrNameTooLong.Error()
	case errors.Is(err, e.ErrDescriptionTooLong):
		return http.StatusBadRequest, e.ErrDescriptionTooLong.Error()
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusBadRequest, e.ErrInvalidPrice.Error()
	case errors.Is(err, e.ErrPricePrecision):
		return http.StatusBadRequest, e.ErrPricePrecision.Error()
	case errors.Is(err, e.ErrInvalidQuantity):
		return http.StatusBadRequest, e.ErrInvalidQuantity.Error()
	case errors.Is(err, e.ErrUnavailable):
		return http.StatusServiceUnavailable, e.ErrUnavailable.Error()
	case errors.Is(err, e.ErrDeadlineExceeded):
		return http.StatusGatewayTimeout, e.ErrDeadlineExceeded.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parsePriceToCents converts a string like "599.99" or "600" to int64 cents.
// Returns error if:
// - invalid format
// - more than 2 decimal places
// - negative value
// - exceeds reasonable limit
func parsePriceToCents(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, e.ErrInvalidPrice
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	if d.LessThan(decimal.Zero) {
		return 0, e.ErrInvalidPrice
	}

	maxPrice := decimal.NewFromInt(1_000_000_000).Mul(decimal.NewFromInt(100))
	if d.GreaterThan(maxPrice) {
		return 0, e.ErrInvalidPrice
	}

	if d.Exponent() < -2 {
		return 0, e.ErrPricePrecision
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}
