package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/aircatering-bi/internal/application/analytics"
	"github.com/jhoicas/aircatering-bi/internal/application/dto"
)

// DashboardHandler maneja las páginas del dashboard.
type DashboardHandler struct {
	overview   *analytics.OverviewUseCase
	sales      *analytics.SalesUseCase
	finance    *analytics.FinanceUseCase
	inventory  *analytics.InventoryUseCase
	hr         *analytics.HRUseCase
	production *analytics.ProductionUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(
	overview *analytics.OverviewUseCase,
	sales *analytics.SalesUseCase,
	finance *analytics.FinanceUseCase,
	inventory *analytics.InventoryUseCase,
	hr *analytics.HRUseCase,
	production *analytics.ProductionUseCase,
) *DashboardHandler {
	return &DashboardHandler{
		overview:   overview,
		sales:      sales,
		finance:    finance,
		inventory:  inventory,
		hr:         hr,
		production: production,
	}
}

// Overview godoc
// @Summary      Visión general
// @Description  KPIs principales, ventas por mes y categoría y sección de empresas del grupo.
// @Description  Los datasets ausentes no fallan la página: sus KPIs quedan en null y se listan en notices.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.OverviewDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/overview [get]
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	out, err := h.overview.Get(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Sales godoc
// @Summary      Ventas
// @Tags         dashboard
// @Produce      json
// @Param        categories  query  string  false  "Categorías (repetible o separadas por coma)"
// @Param        regions     query  string  false  "Regiones (repetible o separadas por coma)"
// @Param        from        query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to          query  string  false  "Hasta (YYYY-MM-DD)"
// @Param        limit       query  int     false  "Filas del detalle (default 100, max 500)"
// @Param        offset      query  int     false  "Desplazamiento del detalle"
// @Success      200  {object}  dto.SalesPageDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/dashboard/sales [get]
func (h *DashboardHandler) Sales(c *fiber.Ctx) error {
	req, ok, err := salesRequest(c)
	if !ok {
		return err
	}
	out, err := h.sales.Get(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Finance godoc
// @Summary      Financiero
// @Tags         dashboard
// @Produce      json
// @Param        statuses  query  string  false  "Status (repetible o separados por coma)"
// @Param        from      query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to        query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200  {object}  dto.FinancePageDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/dashboard/finance [get]
func (h *DashboardHandler) Finance(c *fiber.Ctx) error {
	var req dto.FinanceRequest
	if ok, err := bindQuery(c, &req); !ok {
		return err
	}
	req.Statuses = multiQuery(c, "statuses")

	out, err := h.finance.Get(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Inventory godoc
// @Summary      Estoque
// @Tags         dashboard
// @Produce      json
// @Param        categories   query  string  false  "Categorías (repetible o separadas por coma)"
// @Param        as_of        query  string  false  "Fecha de referencia del vencimiento (YYYY-MM-DD, default hoy)"
// @Param        expiry_days  query  int     false  "Ventana de vencimiento en días (default 30)"
// @Success      200  {object}  dto.InventoryPageDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/dashboard/inventory [get]
func (h *DashboardHandler) Inventory(c *fiber.Ctx) error {
	var req dto.InventoryRequest
	if ok, err := bindQuery(c, &req); !ok {
		return err
	}
	req.Categories = multiQuery(c, "categories")

	out, err := h.inventory.Get(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// HR godoc
// @Summary      Recursos humanos
// @Description  El absentismo es simulado (no hay registro de asistencia).
// @Tags         dashboard
// @Produce      json
// @Param        department  query  string  false  "Departamento del detalle (Todos = todos)"
// @Param        status      query  string  false  "Status del detalle (Todos, Ativo, Inativo, Férias, Licença)"
// @Success      200  {object}  dto.HRPageDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/dashboard/hr [get]
func (h *DashboardHandler) HR(c *fiber.Ctx) error {
	var req dto.HRRequest
	if ok, err := bindQuery(c, &req); !ok {
		return err
	}
	out, err := h.hr.Get(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Production godoc
// @Summary      Produção
// @Tags         dashboard
// @Produce      json
// @Param        lines   query  string  false  "Líneas de producción (repetible o separadas por coma)"
// @Param        shifts  query  string  false  "Turnos (repetible o separados por coma)"
// @Param        from    query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to      query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200  {object}  dto.ProductionPageDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/dashboard/production [get]
func (h *DashboardHandler) Production(c *fiber.Ctx) error {
	var req dto.ProductionRequest
	if ok, err := bindQuery(c, &req); !ok {
		return err
	}
	req.Lines = multiQuery(c, "lines")
	req.Shifts = multiQuery(c, "shifts")

	out, err := h.production.Get(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// salesRequest filtros de ventas; compartido con la exportación XLSX.
func salesRequest(c *fiber.Ctx) (dto.SalesRequest, bool, error) {
	var req dto.SalesRequest
	if ok, err := bindQuery(c, &req); !ok {
		return req, false, err
	}
	req.Categories = multiQuery(c, "categories")
	req.Regions = multiQuery(c, "regions")
	return req, true, nil
}
