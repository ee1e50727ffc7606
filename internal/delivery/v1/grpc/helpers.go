package grpc

import (
	"errors"

	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/e"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var validationErrors = []error{
	e.ErrProductNameRequired,
	e.ErrNameTooLong,
	e.ErrDescriptionTooLong,
	e.ErrInvalidPrice,
	e.ErrPricePrecision,
	e.ErrInvalidQuantity,
}

// GRPCErrorResponse переводит ошибки бизнес-слоя в статусы gRPC.
// Внутренние детали наружу не утекают: по умолчанию отдается Internal.
func GRPCErrorResponse(err error) error {
	switch {
	case errors.Is(err, e.ErrProductNotFound):
		return status.Error(codes.NotFound, e.ErrProductNotFound.Error())
	case errors.Is(err, e.ErrCatalogNotFound):
		return status.Error(codes.NotFound, e.ErrCatalogNotFound.Error())
	default:
		for _, ve := range validationErrors {
			if errors.Is(err, ve) {
				return status.Error(codes.InvalidArgument, ve.Error())
			}
		}
		return status.Error(codes.Internal, e.ErrInternalServerError.Error())
	}
}

// toCents переводит цену из double в центы.
// Дробная часть мельче цента означает испорченный запрос.
func toCents(price float64) (int64, error) {
	d := decimal.NewFromFloat(price)
	if !d.Equal(d.Round(2)) {
		return 0, e.ErrPricePrecision
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

// toPrice переводит центы обратно в double для ответа.
func toPrice(cents int64) float64 {
	return decimal.New(cents, -2).InexactFloat64()
}
