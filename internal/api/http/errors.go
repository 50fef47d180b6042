package httpapi

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/goodday-climate/internal/climate"
	"github.com/i474232898/goodday-climate/internal/log"
)

// Client-facing messages. Internal error text is logged, never returned.
const (
	msgNoLocationData = "No se encontraron datos para esta ubicación"
	msgNoDateData     = "No hay datos para esa fecha"
	msgInternal       = "Error interno del servidor"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error string `json:"error"`
}

// classifyError maps a service error to a status code and client message.
func classifyError(err error) (int, string) {
	var dateErr *climate.DateFormatError
	var fiberErr *fiber.Error

	switch {
	case errors.As(err, &fiberErr):
		return fiberErr.Code, fiberErr.Message
	case errors.As(err, &dateErr):
		return fiber.StatusBadRequest, fmt.Sprintf("Formato de fecha no válido: %s", dateErr.Value)
	case errors.Is(err, climate.ErrInvalidParameter):
		return fiber.StatusBadRequest, err.Error()
	case errors.Is(err, climate.ErrNoLocationData):
		return fiber.StatusNotFound, msgNoLocationData
	case errors.Is(err, climate.ErrNoData):
		return fiber.StatusNotFound, msgNoDateData
	default:
		return fiber.StatusInternalServerError, msgInternal
	}
}

// ErrorHandler is the app's centralized error response.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code, msg := classifyError(err)

	switch {
	case code >= fiber.StatusInternalServerError:
		log.Errorw("request failed", "path", c.Path(), "status", code, "error", err)
	case errors.Is(err, climate.ErrProviderUnavailable):
		log.Warnw("provider unavailable", "path", c.Path(), "status", code, "error", err)
	}

	return c.Status(code).JSON(errorBody{Error: msg})
}
