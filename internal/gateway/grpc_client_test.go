package gateway

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/SarAlbN1/AS-Catalogo-NET/internal/cfg"
	"github.com/SarAlbN1/AS-Catalogo-NET/internal/proto"
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

// stubDataTier отвечает заранее заданными данными вместо настоящего слоя данных.
type stubDataTier struct {
	proto.UnimplementedCatalogDataServer
	products map[int64]*proto.Product
	delay    time.Duration
}

func (s *stubDataTier) GetAllProducts(ctx context.Context, _ *proto.Empty) (*proto.ProductList, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	list := &proto.ProductList{}
	for _, p := range s.products {
		list.Products = append(list.Products, p)
	}
	return list, nil
}

func (s *stubDataTier) GetProductById(ctx context.Context, req *proto.ProductId) (*proto.Product, error) {
	p, ok := s.products[req.GetId()]
	if !ok {
		return nil, status.Error(codes.NotFound, "product not found")
	}
	return p, nil
}

func (s *stubDataTier) CreateProduct(ctx context.Context, req *proto.CreateProductRequest) (*proto.Product, error) {
	return &proto.Product{
		Id:                100,
		Name:              req.GetName(),
		Description:       req.GetDescription(),
		Price:             req.GetPrice(),
		QuantityAvailable: req.GetQuantityAvailable(),
		CatalogId:         req.GetCatalogId(),
		CreatedAt:         time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC).Format(time.RFC3339),
	}, nil
}

func (s *stubDataTier) UpdateProduct(ctx context.Context, req *proto.UpdateProductRequest) (*proto.Product, error) {
	p, ok := s.products[req.GetId()]
	if !ok {
		return nil, status.Error(codes.NotFound, "product not found")
	}
	p.Name = req.GetName()
	p.Price = req.GetPrice()
	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return p, nil
}

func (s *stubDataTier) DeleteProduct(ctx context.Context, req *proto.ProductId) (*proto.DeleteResponse, error) {
	if _, ok := s.products[req.GetId()]; !ok {
		return nil, status.Error(codes.NotFound, "product not found")
	}
	delete(s.products, req.GetId())
	return &proto.DeleteResponse{Success: true, Message: "deleted"}, nil
}

func newTestGrpcClient(t *testing.T, stub *stubDataTier, deadline time.Duration) *GrpcClient {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	server := grpc.NewServer()
	proto.RegisterCatalogDataServer(server, stub)

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

	return &GrpcClient{
		conn:   conn,
		client: proto.NewCatalogDataClient(conn),
		logger: logger.NewSlogLogger(),
		cfg:    &cfg.GatewayCfg{DataTierAddr: "bufnet", CallDeadline: deadline},
	}
}

func seededStub() *stubDataTier {
	return &stubDataTier{products: map[int64]*proto.Product{
		1: {
			Id:                1,
			Name:              "Teclado",
			Description:       "Teclado mecánico",
			Price:             99.9,
			QuantityAvailable: 4,
			CatalogId:         1,
			CreatedAt:         "2026-04-02T08:00:00Z",
		},
	}}
}

func TestGrpcClient_GetByID(t *testing.T) {
	client := newTestGrpcClient(t, seededStub(), 10*time.Second)

	product, err := client.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "Teclado", product.Name)
	assert.Equal(t, int64(9990), product.Price)
	assert.Equal(t, time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC), product.CreatedAt)
	assert.Nil(t, product.UpdatedAt)
}

func TestGrpcClient_GetByID_AbsentIsNotAnError(t *testing.T) {
	client := newTestGrpcClient(t, seededStub(), 10*time.Second)

	product, err := client.GetByID(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, product)
}

func TestGrpcClient_Create(t *testing.T) {
	client := newTestGrpcClient(t, seededStub(), 10*time.Second)

	product, err := client.Create(context.Background(), &CreateReq{
		Name:              "Monitor",
		Price:             24950,
		QuantityAvailable: 2,
		CatalogID:         1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(100), product.ID)
	assert.Equal(t, int64(24950), product.Price)
}

func TestGrpcClient_Update_AbsentIsNotAnError(t *testing.T) {
	client := newTestGrpcClient(t, seededStub(), 10*time.Second)

	product, err := client.Update(context.Background(), 404, &UpdateReq{Name: "X", Price: 100})
	require.NoError(t, err)
	assert.Nil(t, product)
}

func TestGrpcClient_Delete(t *testing.T) {
	client := newTestGrpcClient(t, seededStub(), 10*time.Second)

	ok, err := client.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = client.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGrpcClient_DeadlineExceeded(t *testing.T) {
	stub := seededStub()
	stub.delay = 500 * time.Millisecond
	client := newTestGrpcClient(t, stub, 50*time.Millisecond)

	_, err := client.GetAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrDeadlineExceeded)
}
