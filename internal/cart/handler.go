package cart

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/sittikornl/marketplace-backend/internal/product"
	"github.com/sittikornl/marketplace-backend/internal/user"
)

// Handler translates HTTP requests into cart commands. Product data is
// resolved through the catalog service here; the engine itself never
// fetches or validates catalog data.
type Handler struct {
	sessions *Sessions
	products *product.Service
}

func NewHandler(sessions *Sessions, products *product.Service) *Handler {
	return &Handler{sessions: sessions, products: products}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/v1/cart", h.getCart)
	app.Post("/api/v1/cart/items", h.addItem)
	app.Put("/api/v1/cart/items/:id", h.updateQuantity)
	app.Delete("/api/v1/cart/items/:id", h.removeItem)
	app.Delete("/api/v1/cart", h.clearCart)
}

type addItemRequest struct {
	ProductID int `json:"productId"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	owner, err := user.OwnerKeyFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	return c.JSON(h.sessions.Engine(owner).State())
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	payload := new(addItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId"})
	}
	owner, err := user.OwnerKeyFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	p, err := h.products.GetByID(payload.ProductID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	}

	state := h.sessions.Engine(owner).Apply(AddItem{Line: LineInput{
		ID:          strconv.Itoa(p.ID),
		Name:        p.Name,
		UnitPrice:   p.Price,
		Image:       p.Image,
		Vendor:      p.Vendor,
		Delivery:    p.Delivery,
		MaxQuantity: p.Stock,
	}})
	return c.JSON(state)
}

func (h *Handler) updateQuantity(c *fiber.Ctx) error {
	payload := new(updateQuantityRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	owner, err := user.OwnerKeyFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	state := h.sessions.Engine(owner).Apply(UpdateQuantity{
		ID:       c.Params("id"),
		Quantity: payload.Quantity,
	})
	return c.JSON(state)
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	owner, err := user.OwnerKeyFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	state := h.sessions.Engine(owner).Apply(RemoveItem{ID: c.Params("id")})
	return c.JSON(state)
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	owner, err := user.OwnerKeyFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	h.sessions.Engine(owner).Apply(Clear{})
	return c.SendStatus(fiber.StatusNoContent)
}
