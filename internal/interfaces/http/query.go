package http

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/aircatering-bi/internal/application/dto"
)

var validate = validator.New()

// bindQuery parsea la query string en req y valida sus tags. Si responde, devuelve ok=false.
func bindQuery(c *fiber.Ctx, req any) (ok bool, err error) {
	if err := c.QueryParser(req); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: CodeInvalidParams, Message: "parámetros de consulta inválidos",
		})
	}
	if err := validate.Struct(req); err != nil {
		return false, validationError(c, err)
	}
	return true, nil
}

// multiQuery lee un parámetro multivalor: ?k=a&k=b o ?k=a,b.
// Parámetro ausente ⇒ nil (sin restricción); presente pero vacío ⇒ slice vacío (ninguno).
func multiQuery(c *fiber.Ctx, key string) []string {
	args := c.Context().QueryArgs()
	if !args.Has(key) {
		return nil
	}
	out := []string{}
	for _, raw := range args.PeekMulti(key) {
		for _, v := range strings.Split(string(raw), ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}
