package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SarAlbN1/AS-Catalogo-NET/internal/domain"
	"github.com/SarAlbN1/AS-Catalogo-NET/internal/gateway"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/e"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	products map[int64]*domain.Product
	nextID   int64
	err      error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{products: make(map[int64]*domain.Product), nextID: 1}
}

func (f *fakeGateway) GetAll(ctx context.Context) ([]domain.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	res := make([]domain.Product, 0, len(f.products))
	for _, p := range f.products {
		res = append(res, *p)
	}
	return res, nil
}

func (f *fakeGateway) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.products[id], nil
}

func (f *fakeGateway) Create(ctx context.Context, req *gateway.CreateReq) (*domain.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	p := domain.NewProduct(req.Name, req.Description, req.Price, req.QuantityAvailable, req.CatalogID)
	p.ID = f.nextID
	p.CreatedAt = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	f.nextID++
	f.products[p.ID] = p
	return p, nil
}

func (f *fakeGateway) Update(ctx context.Context, id int64, req *gateway.UpdateReq) (*domain.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	p.Name = req.Name
	p.Description = req.Description
	p.Price = req.Price
	p.QuantityAvailable = req.QuantityAvailable
	return p, nil
}

func (f *fakeGateway) Delete(ctx context.Context, id int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.products[id]; !ok {
		return false, nil
	}
	delete(f.products, id)
	return true, nil
}

func newTestRouter(gw gateway.ProductGateway) *chi.Mux {
	mux := chi.NewRouter()
	mux.Route("/api/v1", func(v1 chi.Router) {
		registerProductRoutes(v1, NewProductHandler(gw, logger.NewSlogLogger()))
	})
	return mux
}

func doRequest(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestProductHandler_CreateAndGet(t *testing.T) {
	router := newTestRouter(newFakeGateway())

	rec := doRequest(t, router, http.MethodPost, "/api/v1/products/", map[string]any{
		"name":              "Teclado",
		"description":       "Teclado mecánico",
		"price":             99.99,
		"quantityAvailable": 4,
		"catalogId":         1,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/v1/products/1", rec.Header().Get("Location"))

	var created ProductResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.ID)
	assert.InDelta(t, 99.99, created.Price, 0.001)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/products/1/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched ProductResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, "Teclado", fetched.Name)
	assert.Equal(t, int32(4), fetched.QuantityAvailable)
}

func TestProductHandler_GetByID_NotFound(t *testing.T) {
	router := newTestRouter(newFakeGateway())

	rec := doRequest(t, router, http.MethodGet, "/api/v1/products/404/", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductHandler_Create_PricePrecision(t *testing.T) {
	router := newTestRouter(newFakeGateway())

	rec := doRequest(t, router, http.MethodPost, "/api/v1/products/", map[string]any{
		"name":      "Teclado",
		"price":     9.999,
		"catalogId": 1,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductHandler_Create_DefaultsCatalog(t *testing.T) {
	gw := newFakeGateway()
	router := newTestRouter(gw)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/products/", map[string]any{
		"name":  "Mouse",
		"price": 49.9,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(1), gw.products[1].CatalogID)
}

func TestProductHandler_Update_NotFound(t *testing.T) {
	router := newTestRouter(newFakeGateway())

	rec := doRequest(t, router, http.MethodPut, "/api/v1/products/404/", map[string]any{
		"name":  "X",
		"price": 1,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductHandler_Delete(t *testing.T) {
	gw := newFakeGateway()
	router := newTestRouter(gw)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/products/", map[string]any{
		"name": "Mouse", "price": 49.9, "catalogId": 1,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, "/api/v1/products/1/", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, "/api/v1/products/1/", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductHandler_BadID(t *testing.T) {
	router := newTestRouter(newFakeGateway())

	rec := doRequest(t, router, http.MethodGet, "/api/v1/products/abc/", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductHandler_UpstreamUnavailable(t *testing.T) {
	gw := newFakeGateway()
	gw.err = e.ErrUnavailable
	router := newTestRouter(gw)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/products/", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, http.StatusServiceUnavailable, errResp.Code)
}

func TestParsePriceToCents(t *testing.T) {
	cents, err := parsePriceToCents("599.99")
	require.NoError(t, err)
	assert.Equal(t, int64(59999), cents)

	cents, err = parsePriceToCents("600")
	require.NoError(t, err)
	assert.Equal(t, int64(60000), cents)

	_, err = parsePriceToCents("-1")
	assert.ErrorIs(t, err, e.ErrInvalidPrice)

	_, err = parsePriceToCents("9.999")
	assert.ErrorIs(t, err, e.ErrPricePrecision)

	_, err = parsePriceToCents("abc")
	assert.ErrorIs(t, err, e.ErrInvalidPrice)
}
