package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки каталога
	ErrProductNotFound = fmt.Errorf("product not found")
	ErrCatalogNotFound = fmt.Errorf("catalog not found")

	// 400 Bad Request
	ErrProductNameRequired = fmt.Errorf("product name is required")
	ErrNameTooLong         = fmt.Errorf("product name is too long")
	ErrDescriptionTooLong  = fmt.Errorf("product description is too long")
	ErrInvalidPrice        = fmt.Errorf("price must be non-negative")
	ErrPricePrecision      = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidQuantity     = fmt.Errorf("quantity must be non-negative")
	ErrStatusBadRequest    = fmt.Errorf("bad request")

	// Транспортные ошибки (gRPC)
	ErrInternalServerError = fmt.Errorf("internal server error")
	ErrUnavailable         = fmt.Errorf("data tier unavailable")
	ErrDeadlineExceeded    = fmt.Errorf("deadline exceeded")

	// Ошибки конвейера событий
	ErrDecodeFailure   = fmt.Errorf("malformed event payload")
	ErrUnknownEvent    = fmt.Errorf("unknown event type")
	ErrDeliveryFailure = fmt.Errorf("notification delivery failed")

	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
