package wishlist

import (
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/sittikornl/marketplace-backend/internal/product"
)

func makeAppWithWishlistHandler(h *Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-User-ID"); v != "" {
			id, err := strconv.Atoi(v)
			if err == nil {
				claims := jwt.MapClaims{"user_id": id}
				tok := &jwt.Token{Claims: claims}
				c.Locals("user", tok)
			}
		}
		return c.Next()
	})
	h.RegisterProtectedRoutes(app)
	return app
}

func TestWishlistRoutes_Basic(t *testing.T) {
	products := product.NewService(product.NewInMemoryRepository([]product.Product{
		{ID: 1, Name: "Soap", Price: 100, Vendor: "V1"},
		{ID: 2, Name: "Brush", Price: 49.5, Vendor: "V2"},
	}))
	handler := NewHandler(NewService(NewInMemoryRepository()), products)
	app := makeAppWithWishlistHandler(handler)

	// unauthorized access should be blocked
	req := httptest.NewRequest("GET", "/api/v1/wishlist", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for unauthenticated GET, got %d", res.StatusCode)
	}

	// add product 1
	req2 := httptest.NewRequest("POST", "/api/v1/wishlist", strings.NewReader(`{"productId":1}`))
	req2.Header.Set("Content-Type", "application/json")
	req2.Header.Set("X-User-ID", "42")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for add, got %d", res2.StatusCode)
	}

	// adding the same product again conflicts
	req3 := httptest.NewRequest("POST", "/api/v1/wishlist", strings.NewReader(`{"productId":1}`))
	req3.Header.Set("Content-Type", "application/json")
	req3.Header.Set("X-User-ID", "42")
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409 for duplicate add, got %d", res3.StatusCode)
	}

	// list resolves full products
	req4 := httptest.NewRequest("GET", "/api/v1/wishlist", nil)
	req4.Header.Set("X-User-ID", "42")
	res4, _ := app.Test(req4)
	if res4.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for list, got %d", res4.StatusCode)
	}
	b, _ := io.ReadAll(res4.Body)
	if !strings.Contains(string(b), `"productName":"Soap"`) {
		t.Fatalf("expected resolved product in list, got %s", string(b))
	}

	// another user's wishlist is empty
	req5 := httptest.NewRequest("GET", "/api/v1/wishlist", nil)
	req5.Header.Set("X-User-ID", "7")
	res5, _ := app.Test(req5)
	b5, _ := io.ReadAll(res5.Body)
	if strings.Contains(string(b5), "Soap") {
		t.Fatalf("wishlist leaked across users: %s", string(b5))
	}

	// remove product 1
	req6 := httptest.NewRequest("DELETE", "/api/v1/wishlist", strings.NewReader(`{"productId":1}`))
	req6.Header.Set("Content-Type", "application/json")
	req6.Header.Set("X-User-ID", "42")
	res6, _ := app.Test(req6)
	if res6.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for remove, got %d", res6.StatusCode)
	}

	// removing again reports not found
	req7 := httptest.NewRequest("DELETE", "/api/v1/wishlist", strings.NewReader(`{"productId":1}`))
	req7.Header.Set("Content-Type", "application/json")
	req7.Header.Set("X-User-ID", "42")
	res7, _ := app.Test(req7)
	if res7.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for removing absent product, got %d", res7.StatusCode)
	}
}
