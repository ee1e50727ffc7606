package http

import (
	_ "github.com/SarAlbN1/AS-Catalogo-NET/docs" // Импорт сгенерированных файлов
	"github.com/SarAlbN1/AS-Catalogo-NET/internal/gateway"
	"github.com/SarAlbN1/AS-Catalogo-NET/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(gw gateway.ProductGateway) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		prHandler := NewProductHandler(gw, r.logger)
		registerProductRoutes(v1, prHandler)
	})
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", prHandler.getAllProducts)
		pr.Post("/", prHandler.createProduct)
		pr.Route("/{id}", func(item chi.Router) {
			item.Get("/", prHandler.getProductByID)
			item.Put("/", prHandler.updateProduct)
			item.Delete("/", prHandler.deleteProduct)
		})
	})
}
