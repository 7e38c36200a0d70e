package main

import (
	"database/sql"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/sittikornl/marketplace-backend/internal/cart"
	"github.com/sittikornl/marketplace-backend/internal/checkout"
	"github.com/sittikornl/marketplace-backend/internal/compare"
	"github.com/sittikornl/marketplace-backend/internal/config"
	"github.com/sittikornl/marketplace-backend/internal/product"
	"github.com/sittikornl/marketplace-backend/internal/snapshot"
	"github.com/sittikornl/marketplace-backend/internal/user"
	"github.com/sittikornl/marketplace-backend/internal/vendor"
	"github.com/sittikornl/marketplace-backend/internal/wishlist"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	app := fiber.New()
	setupCORS(app)

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()
	ensureSchema(db)

	userService := user.NewService(user.NewPostgresRepository(db))
	userHandler := user.NewHandler(userService)

	vendorService := vendor.NewService(vendor.NewPostgresRepository(db))
	vendorHandler := vendor.NewHandler(vendorService)

	productService := product.NewService(product.NewPostgresRepository(db))
	productHandler := product.NewHandler(productService)

	// one engine per owner key, all sharing the JSONB snapshot store
	sessions := cart.NewSessions(snapshot.NewPostgresStore(db), logger)
	cartHandler := cart.NewHandler(sessions, productService)

	wishlistHandler := wishlist.NewHandler(wishlist.NewService(wishlist.NewPostgresRepository(db)), productService)
	compareHandler := compare.NewHandler(compare.NewService(compare.NewInMemoryRepository()), productService)
	checkoutHandler := checkout.NewHandler(checkout.NewService(checkout.NewPostgresRepository(db)), sessions)

	// public routes
	userHandler.RegisterPublicRoutes(app)
	vendorHandler.RegisterPublicRoutes(app)
	productHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
		// guests carry no token; their cart, comparison and checkout
		// requests are scoped by the X-Guest-ID header instead
		Filter: func(c *fiber.Ctx) bool {
			if c.Get("X-Guest-ID") != "" && isGuestPath(c.Path()) {
				return true
			}
			return false
		},
	}))

	// protected routes
	userHandler.RegisterProtectedRoutes(app)
	cartHandler.RegisterRoutes(app)
	wishlistHandler.RegisterProtectedRoutes(app)
	compareHandler.RegisterRoutes(app)
	checkoutHandler.RegisterRoutes(app)
	productHandler.RegisterVendorRoutes(app)
	vendorHandler.RegisterAdminRoutes(app)

	logger.Info("starting server", zap.String("addr", cfg.Addr))
	if err := app.Listen(cfg.Addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func isGuestPath(p string) bool {
	return strings.HasPrefix(p, "/api/v1/cart") ||
		strings.HasPrefix(p, "/api/v1/compare") ||
		strings.HasPrefix(p, "/api/v1/checkout") ||
		strings.HasPrefix(p, "/api/v1/orders")
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Guest-ID",
	}))
}

func mustOpenDB(url string) *sql.DB {
	if url == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", url)
	if err != nil {
		panic(err)
	}
	if err := db.Ping(); err != nil {
		panic(err)
	}
	return db
}

func ensureSchema(db *sql.DB) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			"userId" SERIAL PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			"firstName" TEXT NOT NULL DEFAULT '',
			"lastName" TEXT NOT NULL DEFAULT '',
			"createdAt" TEXT,
			"updatedAt" TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS vendors (
			"vendorId" TEXT PRIMARY KEY,
			"storeName" TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			"createdAt" TEXT,
			"updatedAt" TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			"productId" SERIAL PRIMARY KEY,
			"productName" TEXT NOT NULL,
			"productPrice" NUMERIC NOT NULL DEFAULT 0,
			"productImage" TEXT NOT NULL DEFAULT '',
			vendor TEXT NOT NULL DEFAULT '',
			"vendorId" TEXT NOT NULL DEFAULT '',
			delivery TEXT NOT NULL DEFAULT '',
			stock INT NOT NULL DEFAULT 0,
			"createdAt" TEXT,
			"updatedAt" TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS carts (
			"ownerKey" TEXT PRIMARY KEY,
			lines JSONB NOT NULL DEFAULT '[]',
			"updatedAt" TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			"orderID" SERIAL PRIMARY KEY,
			"ownerKey" TEXT NOT NULL,
			lines JSONB NOT NULL DEFAULT '[]',
			subtotal NUMERIC NOT NULL DEFAULT 0,
			"itemCount" INT NOT NULL DEFAULT 0,
			status TEXT,
			"createdAt" TEXT,
			"updatedAt" TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS wishlist (
			"userId" INT PRIMARY KEY,
			"productIds" INTEGER[] NOT NULL DEFAULT '{}',
			"updatedAt" TEXT
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			panic(err)
		}
	}
}
