package usecase

// PRODUCT USECASE

// CreateProductReq — запрос на создание товара.
type CreateProductReq struct {
	Name              string
	Description       string
	Price             int64 // в центах
	QuantityAvailable int32
	CatalogID         int64
}

// UpdateProductReq — запрос на изменение товара.
// CatalogID намеренно отсутствует: привязка к каталогу не меняется.
type UpdateProductReq struct {
	Name              string
	Description       string
	Price             int64
	QuantityAvailable int32
}

// DeleteRes — результат удаления товара.
type DeleteRes struct {
	Success bool
	Message string
}

// MAPPERS

func NewCreateProductReq(name, description string, price int64, quantity int32, catalogID int64) *CreateProductReq {
	return &CreateProductReq{
		Name:              name,
		Description:       description,
		Price:             price,
		QuantityAvailable: quantity,
		CatalogID:         catalogID,
	}
}

func NewUpdateProductReq(name, description string, price int64, quantity int32) *UpdateProductReq {
	return &UpdateProductReq{
		Name:              name,
		Description:       description,
		Price:             price,
		QuantityAvailable: quantity,
	}
}

func NewDeleteRes(success bool, message string) *DeleteRes {
	return &DeleteRes{
		Success: success,
		Message: message,
	}
}
