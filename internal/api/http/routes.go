package httpapi

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/i474232898/weather-mock-mcp/internal/tools"
)

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	Ready() error
}

// Options carries the handlers mounted next to the tool routes.
type Options struct {
	// MCPPath is where MCP is mounted, e.g. "/mcp".
	MCPPath string
	// MCP serves the streamable HTTP transport.
	MCP http.Handler
	// Metrics serves the Prometheus exposition; nil skips /metrics.
	Metrics http.Handler
	// Ready backs /readyz; nil means always ready.
	Ready ReadinessChecker
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, t *tools.Tools, opts Options) {
	descriptor := tools.NewDescriptor(opts.MCPPath)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(descriptor)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-mock-mcp",
		})
	})

	app.Get("/readyz", func(c *fiber.Ctx) error {
		if opts.Ready != nil {
			if err := opts.Ready.Ready(); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"status": "not ready",
					"error":  err.Error(),
				})
			}
		}
		return c.JSON(fiber.Map{"status": "ready"})
	})

	if opts.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(opts.Metrics))
	}

	if opts.MCP != nil {
		app.All(opts.MCPPath, adaptor.HTTPHandler(opts.MCP))
	}

	// REST mirror of the tools; bodies are exactly what the tools return.
	v1 := app.Group("/api/v1")

	v1.Get("/cities", func(c *fiber.Ctx) error {
		c.Type("json")
		return c.SendString(t.GetCities(c.Query("country")))
	})

	v1.Get("/weather", func(c *fiber.Ctx) error {
		c.Type("json")
		return c.SendString(t.GetWeather(c.Query("city")))
	})
}
