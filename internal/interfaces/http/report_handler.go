package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/aircatering-bi/internal/application/dto"
	"github.com/jhoicas/aircatering-bi/internal/application/report"
)

const (
	mimePDF  = "application/pdf"
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ReportHandler descargas del dashboard.
type ReportHandler struct {
	uc *report.UseCase
}

func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// SummaryPDF godoc
// @Summary      Resumen ejecutivo en PDF
// @Tags         reports
// @Produce      application/pdf
// @Success      200
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/summary.pdf [get]
func (h *ReportHandler) SummaryPDF(c *fiber.Ctx) error {
	data, filename, err := h.uc.SummaryPDF(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return attachment(c, mimePDF, filename, data)
}

// SalesXLSX godoc
// @Summary      Ventas filtradas en XLSX
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        categories  query  string  false  "Categorías"
// @Param        regions     query  string  false  "Regiones"
// @Param        from        query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to          query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/sales.xlsx [get]
func (h *ReportHandler) SalesXLSX(c *fiber.Ctx) error {
	req, ok, err := salesRequest(c)
	if !ok {
		return err
	}
	data, filename, err := h.uc.SalesXLSX(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return attachment(c, mimeXLSX, filename, data)
}

// HRXLSX godoc
// @Summary      Detalle de RRHH en XLSX
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        department  query  string  false  "Departamento (Todos = todos)"
// @Param        status      query  string  false  "Status (Todos = todos)"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/hr.xlsx [get]
func (h *ReportHandler) HRXLSX(c *fiber.Ctx) error {
	var req dto.HRRequest
	if ok, err := bindQuery(c, &req); !ok {
		return err
	}
	data, filename, err := h.uc.HRXLSX(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return attachment(c, mimeXLSX, filename, data)
}

func attachment(c *fiber.Ctx, mime, filename string, data []byte) error {
	c.Set(fiber.HeaderContentType, mime)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}
