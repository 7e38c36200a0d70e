package product

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/sittikornl/marketplace-backend/internal/vendor"
)

// Handler serves the public catalog and the vendor portal's product
// management routes.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.list)
	app.Get("/api/v1/product/:id<[0-9]+>", h.getByID)
}

func (h *Handler) RegisterVendorRoutes(app *fiber.App) {
	app.Get("/api/v1/vendor/products", h.listOwn)
	app.Post("/api/v1/vendor/products", h.create)
	app.Put("/api/v1/vendor/products/:id<[0-9]+>", h.update)
	app.Delete("/api/v1/vendor/products/:id<[0-9]+>", h.delete)
}

type productRequest struct {
	Name     string  `json:"productName"`
	Price    float64 `json:"productPrice"`
	Image    string  `json:"productImage"`
	Vendor   string  `json:"vendor"`
	Delivery string  `json:"delivery"`
	Stock    int     `json:"stock"`
}

func (h *Handler) list(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

func (h *Handler) getByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	p, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	}
	return c.JSON(p)
}

func (h *Handler) listOwn(c *fiber.Ctx) error {
	vendorID, err := vendor.GetVendorIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	return c.JSON(h.service.ListByVendor(vendorID))
}

func (h *Handler) create(c *fiber.Ctx) error {
	vendorID, err := vendor.GetVendorIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	payload := new(productRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Name == "" || payload.Price < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product payload"})
	}

	created, err := h.service.Create(vendorID, Product{
		Name:     payload.Name,
		Price:    payload.Price,
		Image:    payload.Image,
		Vendor:   payload.Vendor,
		Delivery: payload.Delivery,
		Stock:    payload.Stock,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) update(c *fiber.Ctx) error {
	vendorID, err := vendor.GetVendorIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}
	payload := new(productRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := h.service.Update(vendorID, id, Product{
		Name:     payload.Name,
		Price:    payload.Price,
		Image:    payload.Image,
		Delivery: payload.Delivery,
		Stock:    payload.Stock,
	})
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		case ErrNotOwner:
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "product belongs to another vendor"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(updated)
}

func (h *Handler) delete(c *fiber.Ctx) error {
	vendorID, err := vendor.GetVendorIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	if err := h.service.Delete(vendorID, id); err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		case ErrNotOwner:
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "product belongs to another vendor"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}
