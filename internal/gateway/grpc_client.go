package gateway

import (
	"context"
	"errors"
	"time"

	"github.com/SarAlbN1/AS-Catalogo-NET/internal/cfg"
	"github.com/SarAlbN1/AS-Catalogo-NET/internal/domain"
	"github.com/SarAlbN1/AS-Catalogo-NET/internal/proto"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/e"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// GrpcClient ходит за товарами в удаленный слой данных.
// Каждый вызов ограничен дедлайном из конфигурации.
type GrpcClient struct {
	conn   *grpc.ClientConn
	client proto.CatalogDataClient
	logger logger.Logger
	cfg    *cfg.GatewayCfg
}

func NewGrpcClient(logger logger.Logger, cfg *cfg.GatewayCfg) (*GrpcClient, error) {
	conn, err := grpc.NewClient(cfg.DataTierAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	logger.Infof("catalog data client initialized, addr: %s", cfg.DataTierAddr)

	return &GrpcClient{
		conn:   conn,
		client: proto.NewCatalogDataClient(conn),
		logger: logger,
		cfg:    cfg,
	}, nil
}

func (c *GrpcClient) GetAll(ctx context.Context) ([]domain.Product, error) {
	const op = "GrpcClient.GetAll"

	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	list, err := c.client.GetAllProducts(ctx, &proto.Empty{})
	if err != nil {
		c.logger.Errorf(err, "%s", op)
		return nil, e.Wrap(op, translateError(err))
	}

	return fromArrGRPCProduct(list.GetProducts()), nil
}

func (c *GrpcClient) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	const op = "GrpcClient.GetByID"

	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	p, err := c.client.GetProductById(ctx, &proto.ProductId{Id: id})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			c.logger.Warnf("product %d not found on data tier", id)
			return nil, nil
		}
		c.logger.Errorf(err, "%s", op)
		return nil, e.Wrap(op, translateError(err))
	}

	return fromGRPCProduct(p), nil
}

func (c *GrpcClient) Create(ctx context.Context, req *CreateReq) (*domain.Product, error) {
	const op = "GrpcClient.Create"

	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	p, err := c.client.CreateProduct(ctx, &proto.CreateProductRequest{
		Name:              req.Name,
		Description:       req.Description,
		Price:             centsToPrice(req.Price),
		QuantityAvailable: req.QuantityAvailable,
		CatalogId:         req.CatalogID,
	})
	if err != nil {
		c.logger.Errorf(err, "%s", op)
		return nil, e.Wrap(op, translateError(err))
	}

	return fromGRPCProduct(p), nil
}

func (c *GrpcClient) Update(ctx context.Context, id int64, req *UpdateReq) (*domain.Product, error) {
	const op = "GrpcClient.Update"

	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	p, err := c.client.UpdateProduct(ctx, &proto.UpdateProductRequest{
		Id:                id,
		Name:              req.Name,
		Description:       req.Description,
		Price:             centsToPrice(req.Price),
		QuantityAvailable: req.QuantityAvailable,
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			c.logger.Warnf("cannot update: product %d not found on data tier", id)
			return nil, nil
		}
		c.logger.Errorf(err, "%s", op)
		return nil, e.Wrap(op, translateError(err))
	}

	return fromGRPCProduct(p), nil
}

func (c *GrpcClient) Delete(ctx context.Context, id int64) (bool, error) {
	const op = "GrpcClient.Delete"

	ctx, cancel := c.callCtx(ctx)
	defer cancel()

	res, err := c.client.DeleteProduct(ctx, &proto.ProductId{Id: id})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			c.logger.Warnf("cannot delete: product %d not found on data tier", id)
			return false, nil
		}
		c.logger.Errorf(err, "%s", op)
		return false, e.Wrap(op, translateError(err))
	}

	return res.GetSuccess(), nil
}

func (c *GrpcClient) Close() error {
	return c.conn.Close()
}

func (c *GrpcClient) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.cfg.CallDeadline)
}

// translateError сводит статусы gRPC к ошибкам прикладного уровня,
// чтобы HTTP-слой не знал про коды транспорта.
func translateError(err error) error {
	switch status.Code(err) {
	case codes.Unavailable:
		return e.ErrUnavailable
	case codes.DeadlineExceeded:
		return e.ErrDeadlineExceeded
	case codes.InvalidArgument:
		return e.ErrStatusBadRequest
	case codes.NotFound:
		return e.ErrProductNotFound
	default:
		if errors.Is(err, context.DeadlineExceeded) {
			return e.ErrDeadlineExceeded
		}
		return e.ErrInternalServerError
	}
}

func centsToPrice(cents int64) float64 {
	return decimal.New(cents, -2).InexactFloat64()
}

func fromGRPCProduct(p *proto.Product) *domain.Product {
	res := &domain.Product{
		ID:                p.GetId(),
		Name:              p.GetName(),
		Description:       p.GetDescription(),
		Price:             decimal.NewFromFloat(p.GetPrice()).Mul(decimal.NewFromInt(100)).Round(0).IntPart(),
		QuantityAvailable: p.GetQuantityAvailable(),
		CatalogID:         p.GetCatalogId(),
	}

	if ts, err := time.Parse(time.RFC3339, p.GetCreatedAt()); err == nil {
		res.CreatedAt = ts
	}
	if p.GetUpdatedAt() != "" {
		if ts, err := time.Parse(time.RFC3339, p.GetUpdatedAt()); err == nil {
			res.UpdatedAt = &ts
		}
	}

	return res
}

func fromArrGRPCProduct(prs []*proto.Product) []domain.Product {
	res := make([]domain.Product, len(prs))
	for i, p := range prs {
		res[i] = *fromGRPCProduct(p)
	}

	return res
}
