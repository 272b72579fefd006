// Package server assembles the fiber application: global middleware, the
// product routes and the liveness probe.
package server

import (
	"errors"

	"catalog/internal/handlers"
	"catalog/internal/middleware"
	"catalog/internal/repositories"
	"catalog/internal/services"
	"catalog/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Deps are the collaborators the application is built from.
type Deps struct {
	Logger        zerolog.Logger
	Products      repositories.ProductRepository
	TrustedOrigin string
}

// New builds the fiber app with every route registered.
func New(deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "catalog",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(deps.Logger),
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Output: deps.Logger,
		Format: "${method} ${path} ${status} ${latency} - ${bytesSent} ${respHeader:X-Request-ID}",
	}))
	app.Use(middleware.CORS(middleware.IsAllowedOrigin(deps.TrustedOrigin)))

	productService := services.NewProductService(deps.Products)
	productHandler := handlers.NewProductHandler(productService, validation.New(), deps.Logger)
	healthHandler := handlers.NewHealthHandler()

	api := app.Group("/api")
	healthHandler.RegisterRoutes(api)
	productHandler.RegisterRoutes(api)

	return app
}

// errorHandler renders errors that escape the handlers as {error: message}.
func errorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		} else {
			log.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
		}

		return c.Status(code).JSON(fiber.Map{"error": message})
	}
}
