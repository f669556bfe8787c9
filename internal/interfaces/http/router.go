package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Planificador-api/internal/application/auth"
	"github.com/jhoicas/Planificador-api/internal/application/importer"
	"github.com/jhoicas/Planificador-api/internal/application/planning"
	"github.com/jhoicas/Planificador-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ImportUC  *importer.UseCase
	MatrixUC  *planning.MatrixUseCase
	ChartUC   *planning.ChartUseCase
	DataUC    *usecase.PlanningDataUseCase
	StoreUC   *usecase.StoreUseCase
	SKUUC     *usecase.SKUUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Importación del libro (protegido)
	importHandler := NewImportHandler(deps.ImportUC)
	protected.Post("/import", importHandler.Import)

	// Grilla de planificación (protegido)
	planningHandler := NewPlanningHandler(deps.MatrixUC, deps.DataUC)
	protected.Get("/planning/matrix", planningHandler.GetMatrix)
	protected.Patch("/planning/cells", planningHandler.EditCell)
	protected.Get("/planning/facts", planningHandler.ListFacts)
	protected.Get("/calendar/weeks", planningHandler.ListWeeks)

	// Tiendas (protegido)
	stores := protected.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC)
	stores.Get("/", storeHandler.List)
	stores.Post("/", storeHandler.Create)
	stores.Put("/reorder", storeHandler.Reorder)
	stores.Post("/:id/move", storeHandler.Move)
	stores.Delete("/:id", storeHandler.Delete)

	// SKUs (protegido)
	skus := protected.Group("/skus")
	skuHandler := NewSKUHandler(deps.SKUUC)
	skus.Get("/", skuHandler.List)
	skus.Post("/", skuHandler.Create)
	skus.Delete("/:id", skuHandler.Delete)

	// Gráfico por tienda (protegido)
	chartHandler := NewChartHandler(deps.ChartUC)
	protected.Get("/charts/stores/:id", chartHandler.Series)
}
