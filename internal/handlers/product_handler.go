package handlers

import (
	"errors"

	"catalog/internal/middleware"
	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"
	"catalog/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cast"
)

const deletedMessage = "Se elimino correctamente"

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service    *services.ProductService
	validation *validation.Engine
	log        zerolog.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, engine *validation.Engine, log zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service:    service,
		validation: engine,
		log:        log.With().Str("component", "products").Logger(),
	}
}

// RegisterRoutes registers the product routes. Every route that takes input
// runs its rule list and the error reporter before the handler.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	check := h.validation.Check

	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", check(idRules...), middleware.HandleInputErrors, h.HandleGetProductByID)
	productRoutes.Post("/", check(createRules...), middleware.HandleInputErrors, h.HandleCreateProduct)
	productRoutes.Put("/:id", check(replaceRules...), middleware.HandleInputErrors, h.HandleReplaceProduct)
	productRoutes.Patch("/:id", check(idRules...), middleware.HandleInputErrors, h.HandleToggleAvailability)
	productRoutes.Delete("/:id", check(idRulesWithMessage...), middleware.HandleInputErrors, h.HandleDeleteProduct)
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts(c.UserContext())
	if err != nil {
		return h.storeFailure(c, "retrieve products", err)
	}
	return c.JSON(fiber.Map{"data": products})
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, ok := productID(c)
	if !ok {
		return productNotFound(c)
	}

	product, err := h.service.GetProductByID(c.UserContext(), id)
	if err != nil {
		return h.lookupFailure(c, "retrieve product", err)
	}
	return c.JSON(fiber.Map{"data": product})
}

// HandleCreateProduct creates a new product. Availability always starts true.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	payload, err := validation.Payload(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	product := models.Product{
		Name:  cast.ToString(payload["name"]),
		Price: cast.ToFloat64(payload["price"]),
	}
	if err := h.service.CreateProduct(c.UserContext(), &product); err != nil {
		return h.storeFailure(c, "create product", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": product})
}

// HandleReplaceProduct overwrites name, price and availability of a product.
func (h *ProductHandler) HandleReplaceProduct(c *fiber.Ctx) error {
	id, ok := productID(c)
	if !ok {
		return productNotFound(c)
	}
	payload, err := validation.Payload(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	product, err := h.service.ReplaceProduct(c.UserContext(), id, models.Product{
		Name:         cast.ToString(payload["name"]),
		Price:        cast.ToFloat64(payload["price"]),
		Availability: cast.ToBool(payload["availability"]),
	})
	if err != nil {
		return h.lookupFailure(c, "update product", err)
	}
	return c.JSON(fiber.Map{"data": product})
}

// HandleToggleAvailability flips the availability of a product.
func (h *ProductHandler) HandleToggleAvailability(c *fiber.Ctx) error {
	id, ok := productID(c)
	if !ok {
		return productNotFound(c)
	}

	product, err := h.service.ToggleAvailability(c.UserContext(), id)
	if err != nil {
		return h.lookupFailure(c, "update availability", err)
	}
	return c.JSON(fiber.Map{"data": product})
}

// HandleDeleteProduct removes a product.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, ok := productID(c)
	if !ok {
		return productNotFound(c)
	}

	if err := h.service.DeleteProduct(c.UserContext(), id); err != nil {
		return h.lookupFailure(c, "delete product", err)
	}
	return c.JSON(fiber.Map{"data": deletedMessage})
}

// productID reads the already validated id parameter. Non-positive values
// can never match a stored product.
func productID(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

func productNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "Product not found",
	})
}

func (h *ProductHandler) lookupFailure(c *fiber.Ctx, action string, err error) error {
	if errors.Is(err, repositories.ErrProductNotFound) {
		return productNotFound(c)
	}
	return h.storeFailure(c, action, err)
}

func (h *ProductHandler) storeFailure(c *fiber.Ctx, action string, err error) error {
	h.log.Error().
		Err(err).
		Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
		Msgf("could not %s", action)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Could not " + action,
	})
}
