package main

import (
	"log"
	"net/http"
	"os"

	_ "github.com/Terracotich/apitest/docs" // swagger docs

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Terracotich/apitest/internal/config"
	"github.com/Terracotich/apitest/internal/db"
	"github.com/Terracotich/apitest/internal/handler"
	"github.com/Terracotich/apitest/internal/model"
	"github.com/Terracotich/apitest/internal/repository"
	"github.com/Terracotich/apitest/internal/router"
	"github.com/Terracotich/apitest/internal/service"
)

// @title Shop API
// @version 1.0
// @description CRUD REST API for users, roles, brands, categories, products, orders, payments and reviews.
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Review{},
			&model.Payment{},
			&model.Order{},
			&model.Product{},
			&model.User{},
			&model.Category{},
			&model.Brand{},
			&model.Role{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Role{},
		&model.Brand{},
		&model.Category{},
		&model.User{},
		&model.Product{},
		&model.Order{},
		&model.Payment{},
		&model.Review{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	// Initialize repositories
	roleRepo := repository.NewRoleRepository(gormDB)
	brandRepo := repository.NewBrandRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	orderRepo := repository.NewOrderRepository(gormDB)
	paymentRepo := repository.NewPaymentRepository(gormDB)
	reviewRepo := repository.NewReviewRepository(gormDB)

	// Initialize services
	roleService := service.NewRoleService(roleRepo)
	brandService := service.NewBrandService(brandRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo, brandRepo, categoryRepo)
	orderService := service.NewOrderService(orderRepo, userRepo)
	paymentService := service.NewPaymentService(paymentRepo, userRepo, orderRepo)
	reviewService := service.NewReviewService(reviewRepo, userRepo, orderRepo)

	// Initialize handlers
	roleHandler := handler.NewRoleHandler(roleService)
	brandHandler := handler.NewBrandHandler(brandService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)
	orderHandler := handler.NewOrderHandler(orderService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	reviewHandler := handler.NewReviewHandler(reviewService)

	// Register routes
	router.Register(
		e,
		roleHandler,
		brandHandler,
		categoryHandler,
		userHandler,
		productHandler,
		orderHandler,
		paymentHandler,
		reviewHandler,
	)

	swaggerHost := cfg.SwaggerHost
	if swaggerHost == "" {
		swaggerHost = "http://localhost:" + cfg.ServerPort
	}
	log.Printf("Swagger documentation available at: %s/swagger/index.html", swaggerHost)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
