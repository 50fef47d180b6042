package httpapi

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/i474232898/goodday-climate/internal/climate"
	"github.com/i474232898/goodday-climate/internal/store"
)

var validate = validator.New()

// NewApp builds the Fiber app with the shared error handler and middleware.
func NewApp(name string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               name,
		DisableStartupMessage: true,
		UnescapePath:          true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          90 * time.Second,
		ErrorHandler:          ErrorHandler,
	})

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())

	return app
}

// RegisterRoutes wires the climate handler into the Fiber app.
func RegisterRoutes(app *fiber.App, service *climate.Service) {
	app.Get("/clima/:lat/:lon/:fecha", func(c *fiber.Ctx) error {
		var req climaRequest
		if err := req.bind(c); err != nil {
			return err
		}

		report, err := service.Report(c.UserContext(), climate.Query{
			Lat:   req.Lat,
			Lon:   req.Lon,
			Fecha: req.Fecha,
		})
		if err != nil {
			return err
		}

		return c.JSON(report)
	})
}

// healthHistoryWindow is how far back /health lists probe results.
const healthHistoryWindow = time.Hour

// ProbeReader exposes recorded provider probes.
type ProbeReader interface {
	Latest(provider string) (store.ProbeResult, error)
	Range(provider string, from, to time.Time) ([]store.ProbeResult, error)
}

// RegisterHealth adds the health endpoint: the last probe of provider plus the
// probes of the past hour.
func RegisterHealth(app *fiber.App, name string, probes ProbeReader, provider string) {
	app.Get("/health", func(c *fiber.Ctx) error {
		body := fiber.Map{
			"status":  "ok",
			"service": name,
		}

		probe, err := probes.Latest(provider)
		switch {
		case errors.Is(err, store.ErrNotFound):
			body["provider"] = fiber.Map{"name": provider, "probed": false}
		case err != nil:
			return err
		default:
			body["provider"] = probe
			if !probe.OK {
				body["status"] = "degraded"
			}
		}

		now := time.Now().UTC()
		history, err := probes.Range(provider, now.Add(-healthHistoryWindow), now)
		switch {
		case errors.Is(err, store.ErrNotFound):
			history = []store.ProbeResult{}
		case err != nil:
			return err
		}
		body["history"] = history

		return c.JSON(body)
	})
}

// climaRequest holds the path parameters of the climate endpoint.
type climaRequest struct {
	Lat   float64 `validate:"gte=-90,lte=90"`
	Lon   float64 `validate:"gte=-180,lte=180"`
	Fecha string  `validate:"required"`
}

func (r *climaRequest) bind(c *fiber.Ctx) error {
	lat, err := strconv.ParseFloat(c.Params("lat"), 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Latitud no válida: %s", c.Params("lat")))
	}
	lon, err := strconv.ParseFloat(c.Params("lon"), 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Longitud no válida: %s", c.Params("lon")))
	}

	r.Lat = lat
	r.Lon = lon
	r.Fecha = strings.Clone(c.Params("fecha"))

	if err := validate.Struct(r); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, validationMessage(err))
	}
	return nil
}

// fieldMessages are the client messages for climaRequest validation failures.
var fieldMessages = map[string]string{
	"Lat":   "Latitud fuera de rango (-90 a 90)",
	"Lon":   "Longitud fuera de rango (-180 a 180)",
	"Fecha": "Fecha requerida",
}

func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		if msg, ok := fieldMessages[fieldErrs[0].Field()]; ok {
			return msg
		}
	}
	return "Parámetros no válidos"
}
