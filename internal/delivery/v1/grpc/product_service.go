package grpc

import (
	"context"
	"time"

	"github.com/SarAlbN1/AS-Catalogo-NET/internal/domain"
	"github.com/SarAlbN1/AS-Catalogo-NET/internal/proto"
	"github.com/SarAlbN1/AS-Catalogo-NET/internal/usecase"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/e"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/logger"
)

// CatalogService — gRPC-фасад над бизнес-слоем каталога.
type CatalogService struct {
	proto.UnimplementedCatalogDataServer
	prUC   usecase.ProductUC
	logger logger.Logger
}

func NewCatalogService(prUC usecase.ProductUC, logger logger.Logger) *CatalogService {
	return &CatalogService{prUC: prUC, logger: logger}
}

func (g *CatalogService) GetAllProducts(ctx context.Context, _ *proto.Empty) (*proto.ProductList, error) {
	const op = "grpc.GetAllProducts"

	products, err := g.prUC.GetAll(ctx)
	if err != nil {
		g.logger.Errorf(e.Wrap(op, err), "%s", op)
		return nil, GRPCErrorResponse(err)
	}

	return &proto.ProductList{Products: toArrGRPCProduct(products)}, nil
}

func (g *CatalogService) GetProductById(ctx context.Context, req *proto.ProductId) (*proto.Product, error) {
	const op = "grpc.GetProductById"

	product, err := g.prUC.GetByID(ctx, req.GetId())
	if err != nil {
		g.logger.Errorf(e.Wrap(op, err), "%s", op)
		return nil, GRPCErrorResponse(err)
	}

	return toGRPCProduct(product), nil
}

func (g *CatalogService) CreateProduct(ctx context.Context, req *proto.CreateProductRequest) (*proto.Product, error) {
	const op = "grpc.CreateProduct"

	cents, err := toCents(req.GetPrice())
	if err != nil {
		return nil, GRPCErrorResponse(err)
	}

	product, err := g.prUC.Create(ctx, usecase.NewCreateProductReq(
		req.GetName(),
		req.GetDescription(),
		cents,
		req.GetQuantityAvailable(),
		req.GetCatalogId(),
	))
	if err != nil {
		g.logger.Errorf(e.Wrap(op, err), "%s", op)
		return nil, GRPCErrorResponse(err)
	}

	return toGRPCProduct(product), nil
}

func (g *CatalogService) UpdateProduct(ctx context.Context, req *proto.UpdateProductRequest) (*proto.Product, error) {
	const op = "grpc.UpdateProduct"

	cents, err := toCents(req.GetPrice())
	if err != nil {
		return nil, GRPCErrorResponse(err)
	}

	product, err := g.prUC.Update(ctx, req.GetId(), usecase.NewUpdateProductReq(
		req.GetName(),
		req.GetDescription(),
		cents,
		req.GetQuantityAvailable(),
	))
	if err != nil {
		g.logger.Errorf(e.Wrap(op, err), "%s", op)
		return nil, GRPCErrorResponse(err)
	}

	return toGRPCProduct(product), nil
}

func (g *CatalogService) DeleteProduct(ctx context.Context, req *proto.ProductId) (*proto.DeleteResponse, error) {
	const op = "grpc.DeleteProduct"

	res, err := g.prUC.Delete(ctx, req.GetId())
	if err != nil {
		g.logger.Errorf(e.Wrap(op, err), "%s", op)
		return nil, GRPCErrorResponse(err)
	}

	return &proto.DeleteResponse{Success: res.Success, Message: res.Message}, nil
}

func toGRPCProduct(p *domain.Product) *proto.Product {
	res := &proto.Product{
		Id:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		Price:             toPrice(p.Price),
		QuantityAvailable: p.QuantityAvailable,
		CatalogId:         p.CatalogID,
		CreatedAt:         p.CreatedAt.Format(time.RFC3339),
	}
	if p.UpdatedAt != nil {
		res.UpdatedAt = p.UpdatedAt.Format(time.RFC3339)
	}

	return res
}

func toArrGRPCProduct(prs []domain.Product) []*proto.Product {
	res := make([]*proto.Product, len(prs))
	for i, p := range prs {
		res[i] = toGRPCProduct(&p)
	}

	return res
}
