package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/skevingreen/ims-server/internal/cache"
	"github.com/skevingreen/ims-server/internal/config"
	"github.com/skevingreen/ims-server/internal/database"
	"github.com/skevingreen/ims-server/internal/handlers"
	"github.com/skevingreen/ims-server/internal/middleware"
	"github.com/skevingreen/ims-server/internal/sequence"
	"github.com/skevingreen/ims-server/internal/services"
	"github.com/skevingreen/ims-server/internal/stores"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Load env vars
	cfg := config.Load()

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	// Auto migration
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Redis is optional: without it, list endpoints read straight from the DB.
	redisClient, err := cache.InitRedis(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		logger.Warn("redis unavailable, running without cache", "error", err)
		redisClient = nil
	}
	listCache := cache.New(redisClient, cfg.CacheTTL)

	// Services
	categoryService := services.NewCategoryService(stores.NewCategoryStore(db))
	supplierService := services.NewSupplierService(stores.NewSupplierStore(db), sequence.NewPostgresGenerator(db))
	itemService := services.NewItemService(stores.NewItemStore(db))

	// Handlers
	itemHandler := &handlers.ItemHandler{Service: itemService, Cache: listCache, Logger: logger}
	supplierHandler := &handlers.SupplierHandler{Service: supplierService, Cache: listCache, Logger: logger}
	categoryHandler := &handlers.CategoryHandler{Service: categoryService, Cache: listCache, Logger: logger}
	healthHandler := &handlers.HealthHandler{DB: db, RedisClient: redisClient}

	// Router
	r := handlers.NewRouter(itemHandler, supplierHandler, categoryHandler, healthHandler)
	loggedRouter := middleware.Logger(logger, r)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	fmt.Println("Server started at", addr)
	log.Fatal(http.ListenAndServe(addr, loggedRouter))
}
