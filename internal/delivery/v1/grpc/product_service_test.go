package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/SarAlbN1/AS-Catalogo-NET/internal/domain"
	"github.com/SarAlbN1/AS-Catalogo-NET/internal/proto"
	"github.com/SarAlbN1/AS-Catalogo-NET/internal/usecase"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/e"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type stubUC struct {
	products map[int64]*domain.Product
	nextID   int64
}

func newStubUC() *stubUC {
	return &stubUC{products: make(map[int64]*domain.Product), nextID: 1}
}

func (s *stubUC) GetAll(ctx context.Context) ([]domain.Product, error) {
	res := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		res = append(res, *p)
	}
	return res, nil
}

func (s *stubUC) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}
	return p, nil
}

func (s *stubUC) Create(ctx context.Context, req *usecase.CreateProductReq) (*domain.Product, error) {
	p := domain.NewProduct(req.Name, req.Description, req.Price, req.QuantityAvailable, req.CatalogID)
	p.ID = s.nextID
	p.CreatedAt = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s.nextID++
	s.products[p.ID] = p
	return p, nil
}

func (s *stubUC) Update(ctx context.Context, id int64, req *usecase.UpdateProductReq) (*domain.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}
	p.Name = req.Name
	p.Description = req.Description
	p.Price = req.Price
	p.QuantityAvailable = req.QuantityAvailable
	now := time.Now().UTC()
	p.UpdatedAt = &now
	return p, nil
}

func (s *stubUC) Delete(ctx context.Context, id int64) (*usecase.DeleteRes, error) {
	if _, ok := s.products[id]; !ok {
		return nil, e.ErrProductNotFound
	}
	delete(s.products, id)
	return usecase.NewDeleteRes(true, "producto eliminado"), nil
}

func newTestClient(t *testing.T, uc usecase.ProductUC) proto.CatalogDataClient {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	server := grpc.NewServer()
	proto.RegisterCatalogDataServer(server, NewCatalogService(uc, logger.NewSlogLogger()))

	go func() {
		_ = server.Serve(lis)
	}()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return proto.NewCatalogDataClient(conn)
}

func TestCatalogService_CreateAndGet(t *testing.T) {
	client := newTestClient(t, newStubUC())

	created, err := client.CreateProduct(context.Background(), &proto.CreateProductRequest{
		Name:              "Teclado",
		Description:       "Teclado mecánico",
		Price:             99.9,
		QuantityAvailable: 4,
		CatalogId:         1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.GetId())
	assert.InDelta(t, 99.9, created.GetPrice(), 0.001)
	assert.NotEmpty(t, created.GetCreatedAt())
	assert.Empty(t, created.GetUpdatedAt())

	fetched, err := client.GetProductById(context.Background(), &proto.ProductId{Id: created.GetId()})
	require.NoError(t, err)
	assert.Equal(t, "Teclado", fetched.GetName())
	assert.Equal(t, int32(4), fetched.GetQuantityAvailable())
}

func TestCatalogService_GetProductById_NotFound(t *testing.T) {
	client := newTestClient(t, newStubUC())

	_, err := client.GetProductById(context.Background(), &proto.ProductId{Id: 404})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestCatalogService_CreateProduct_PricePrecision(t *testing.T) {
	client := newTestClient(t, newStubUC())

	_, err := client.CreateProduct(context.Background(), &proto.CreateProductRequest{
		Name:      "Teclado",
		Price:     9.999,
		CatalogId: 1,
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestCatalogService_UpdateProduct_SetsUpdatedAt(t *testing.T) {
	uc := newStubUC()
	client := newTestClient(t, uc)

	created, err := client.CreateProduct(context.Background(), &proto.CreateProductRequest{
		Name: "Mouse", Price: 49.9, QuantityAvailable: 10, CatalogId: 1,
	})
	require.NoError(t, err)

	updated, err := client.UpdateProduct(context.Background(), &proto.UpdateProductRequest{
		Id: created.GetId(), Name: "Mouse Pro", Price: 59.9, QuantityAvailable: 8,
	})
	require.NoError(t, err)
	assert.Equal(t, "Mouse Pro", updated.GetName())
	assert.InDelta(t, 59.9, updated.GetPrice(), 0.001)
	assert.NotEmpty(t, updated.GetUpdatedAt())
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	uc := newStubUC()
	client := newTestClient(t, uc)

	created, err := client.CreateProduct(context.Background(), &proto.CreateProductRequest{
		Name: "Mouse", Price: 49.9, CatalogId: 1,
	})
	require.NoError(t, err)

	res, err := client.DeleteProduct(context.Background(), &proto.ProductId{Id: created.GetId()})
	require.NoError(t, err)
	assert.True(t, res.GetSuccess())

	_, err = client.DeleteProduct(context.Background(), &proto.ProductId{Id: created.GetId()})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestToCents(t *testing.T) {
	cents, err := toCents(9.99)
	require.NoError(t, err)
	assert.Equal(t, int64(999), cents)

	cents, err = toCents(100)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), cents)

	_, err = toCents(9.999)
	assert.ErrorIs(t, err, e.ErrPricePrecision)
}
