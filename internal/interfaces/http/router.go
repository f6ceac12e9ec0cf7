package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/aircatering-bi/internal/application/analytics"
	"github.com/jhoicas/aircatering-bi/internal/application/report"
	"github.com/jhoicas/aircatering-bi/internal/application/session"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName    string
	Sessions   *session.Store
	Overview   *analytics.OverviewUseCase
	Sales      *analytics.SalesUseCase
	Finance    *analytics.FinanceUseCase
	Inventory  *analytics.InventoryUseCase
	HR         *analytics.HRUseCase
	Production *analytics.ProductionUseCase
	Reports    *report.UseCase
}

// Router registra las rutas de la API. El dashboard es de solo lectura y no requiere autenticación.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	api := app.Group("/api")

	// Datasets
	datasets := api.Group("/datasets")
	datasetHandler := NewDatasetHandler(deps.Sessions)
	datasets.Get("/", datasetHandler.List)
	datasets.Post("/reload", datasetHandler.Reload)

	// Páginas del dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(
		deps.Overview, deps.Sales, deps.Finance, deps.Inventory, deps.HR, deps.Production,
	)
	dashboard.Get("/overview", dashboardHandler.Overview)
	dashboard.Get("/sales", dashboardHandler.Sales)
	dashboard.Get("/finance", dashboardHandler.Finance)
	dashboard.Get("/inventory", dashboardHandler.Inventory)
	dashboard.Get("/hr", dashboardHandler.HR)
	dashboard.Get("/production", dashboardHandler.Production)

	// Descargas
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.Reports)
	reports.Get("/summary.pdf", reportHandler.SummaryPDF)
	reports.Get("/sales.xlsx", reportHandler.SalesXLSX)
	reports.Get("/hr.xlsx", reportHandler.HRXLSX)
}
