package compare

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sittikornl/marketplace-backend/internal/product"
	"github.com/sittikornl/marketplace-backend/internal/user"
)

// Handler exposes the comparison list. Like the cart it is scoped by owner
// key, so guests can compare products too.
type Handler struct {
	service  *Service
	products *product.Service
}

func NewHandler(s *Service, products *product.Service) *Handler {
	return &Handler{service: s, products: products}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/v1/compare", h.list)
	app.Post("/api/v1/compare", h.add)
	app.Delete("/api/v1/compare/:id<[0-9]+>", h.remove)
	app.Delete("/api/v1/compare", h.clear)
}

type compareRequest struct {
	ProductID int `json:"productId"`
}

func (h *Handler) add(c *fiber.Ctx) error {
	payload := new(compareRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	owner, err := user.OwnerKeyFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	if _, err := h.products.GetByID(payload.ProductID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	}

	ids, err := h.service.Add(owner, payload.ProductID)
	if err != nil {
		switch err {
		case ErrAlreadyCompared:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "product already in comparison"})
		case ErrCompareFull:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "comparison list is full"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(fiber.Map{"productIds": ids})
}

func (h *Handler) remove(c *fiber.Ctx) error {
	owner, err := user.OwnerKeyFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	productID, _ := c.ParamsInt("id")

	ids, err := h.service.Remove(owner, productID)
	if err != nil {
		switch err {
		case ErrNotCompared:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not in comparison"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(fiber.Map{"productIds": ids})
}

func (h *Handler) list(c *fiber.Ctx) error {
	owner, err := user.OwnerKeyFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	ids, err := h.service.List(owner)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	products, err := h.products.ListByIDs(ids)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(products)
}

func (h *Handler) clear(c *fiber.Ctx) error {
	owner, err := user.OwnerKeyFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	if err := h.service.Clear(owner); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
