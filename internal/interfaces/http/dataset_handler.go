package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/aircatering-bi/internal/application/session"
)

// DatasetHandler estado y recarga de los datasets de la sesión.
type DatasetHandler struct {
	store *session.Store
}

func NewDatasetHandler(store *session.Store) *DatasetHandler {
	return &DatasetHandler{store: store}
}

// List godoc
// @Summary      Estado de los datasets
// @Tags         datasets
// @Produce      json
// @Success      200  {object}  dto.DatasetsDTO
// @Router       /api/datasets [get]
func (h *DatasetHandler) List(c *fiber.Ctx) error {
	return c.JSON(session.Describe(h.store.Current()))
}

// Reload godoc
// @Summary      Recargar datasets
// @Description  Vuelve a leer las seis fuentes y reemplaza la sesión vigente.
// @Tags         datasets
// @Produce      json
// @Success      200  {object}  dto.DatasetsDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/datasets/reload [post]
func (h *DatasetHandler) Reload(c *fiber.Ctx) error {
	s, err := h.store.Reload(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(session.Describe(s))
}
