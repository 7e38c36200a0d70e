package checkout

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sittikornl/marketplace-backend/internal/cart"
	"github.com/sittikornl/marketplace-backend/internal/user"
)

type Handler struct {
	service  *Service
	sessions *cart.Sessions
}

func NewHandler(s *Service, sessions *cart.Sessions) *Handler {
	return &Handler{service: s, sessions: sessions}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/v1/checkout", h.placeOrder)
	app.Get("/api/v1/orders", h.listOrders)
}

func (h *Handler) placeOrder(c *fiber.Ctx) error {
	owner, err := user.OwnerKeyFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	ord, err := h.service.PlaceOrder(h.sessions.Engine(owner), owner)
	if err != nil {
		switch err {
		case ErrEmptyCart:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "cart is empty"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(ord)
}

func (h *Handler) listOrders(c *fiber.Ctx) error {
	owner, err := user.OwnerKeyFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	orders, err := h.service.History(owner)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(orders)
}
