package http

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/aircatering-bi/internal/application/dto"
	"github.com/jhoicas/aircatering-bi/internal/domain"
)

// Códigos de error de la API.
const (
	CodeInvalidParams      = "INVALID_PARAMS"
	CodeValidation         = "VALIDATION"
	CodeDatasetUnavailable = "DATASET_UNAVAILABLE"
	CodeDatasetMalformed   = "DATASET_MALFORMED"
	CodeNotFound           = "NOT_FOUND"
	CodeInternal           = "INTERNAL"
)

// writeError traduce un error de la capa de aplicación a la respuesta HTTP.
//
//   - 404 DATASET_UNAVAILABLE → el dataset de la página no está cargado.
//   - 422 DATASET_MALFORMED  → el dataset existe pero no se pudo interpretar.
//   - 400 INVALID_PARAMS     → filtros inválidos (fechas, rangos).
//   - 500 INTERNAL           → cualquier otro error.
func writeError(c *fiber.Ctx, err error) error {
	status, code := fiber.StatusInternalServerError, CodeInternal
	switch {
	case errors.Is(err, domain.ErrMalformedDataset):
		status, code = fiber.StatusUnprocessableEntity, CodeDatasetMalformed
	case errors.Is(err, domain.ErrDatasetUnavailable):
		status, code = fiber.StatusNotFound, CodeDatasetUnavailable
	case errors.Is(err, domain.ErrInvalidInput):
		status, code = fiber.StatusBadRequest, CodeInvalidParams
	case errors.Is(err, domain.ErrNotFound):
		status, code = fiber.StatusNotFound, CodeNotFound
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}

// validationError 400 con la lista de campos rechazados.
func validationError(c *fiber.Ctx, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Message: err.Error()})
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field()+" ("+fe.Tag()+")")
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code:    CodeValidation,
		Message: "parámetros inválidos: " + strings.Join(fields, ", "),
	})
}

// ErrorHandler manejador de errores de Fiber para lo que no atrapan los handlers (404 de ruta, panics).
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code := CodeInternal
		if fe.Code == fiber.StatusNotFound {
			code = CodeNotFound
		}
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: code, Message: fe.Message})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: CodeInternal, Message: err.Error()})
}
