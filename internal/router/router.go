package router

import (
	"fmt"
	"net/http"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/Terracotich/apitest/internal/handler"
	"github.com/Terracotich/apitest/internal/metrics"
)

var phoneRE = regexp.MustCompile(`^\+?[0-9]{10,20}$`)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	roleHandler *handler.RoleHandler,
	brandHandler *handler.BrandHandler,
	categoryHandler *handler.CategoryHandler,
	userHandler *handler.UserHandler,
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	paymentHandler *handler.PaymentHandler,
	reviewHandler *handler.ReviewHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(metrics.Middleware())

	e.Validator = NewValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Role routes
	api.POST("/roles", roleHandler.CreateRole)
	api.GET("/roles", roleHandler.ListRoles)
	api.GET("/roles/:id", roleHandler.GetRole)
	api.PUT("/roles/:id", roleHandler.UpdateRole)
	api.DELETE("/roles/:id", roleHandler.DeleteRole)

	// Brand routes
	api.POST("/brands", brandHandler.CreateBrand)
	api.GET("/brands", brandHandler.ListBrands)
	api.GET("/brands/:id", brandHandler.GetBrand)
	api.PUT("/brands/:id", brandHandler.UpdateBrand)
	api.DELETE("/brands/:id", brandHandler.DeleteBrand)

	// Category routes
	api.POST("/categories", categoryHandler.CreateCategory)
	api.GET("/categories", categoryHandler.ListCategories)
	api.GET("/categories/:id", categoryHandler.GetCategory)
	api.PUT("/categories/:id", categoryHandler.UpdateCategory)
	api.DELETE("/categories/:id", categoryHandler.DeleteCategory)

	// User routes
	api.POST("/users", userHandler.CreateUser)
	api.GET("/users", userHandler.ListUsers)
	api.GET("/users/by-role/:roleId", userHandler.ListUsersByRole)
	api.GET("/users/:id", userHandler.GetUser)
	api.PUT("/users/:id", userHandler.UpdateUser)
	api.DELETE("/users/:id", userHandler.DeleteUser)

	// Product routes
	api.POST("/products", productHandler.CreateProduct)
	api.GET("/products", productHandler.ListProducts)
	api.GET("/products/search", productHandler.SearchProducts)
	api.GET("/products/by-brand/:brandId", productHandler.ListProductsByBrand)
	api.GET("/products/by-category/:categoryId", productHandler.ListProductsByCategory)
	api.GET("/products/by-price", productHandler.ListProductsByPriceRange)
	api.GET("/products/:id", productHandler.GetProduct)
	api.PUT("/products/:id", productHandler.UpdateProduct)
	api.DELETE("/products/:id", productHandler.DeleteProduct)

	// Order routes
	api.POST("/orders", orderHandler.CreateOrder)
	api.GET("/orders", orderHandler.ListOrders)
	api.GET("/orders/by-user/:userId", orderHandler.ListOrdersByUser)
	api.GET("/orders/by-status/:status", orderHandler.ListOrdersByStatus)
	api.GET("/orders/by-date", orderHandler.ListOrdersByDateRange)
	api.GET("/orders/:id", orderHandler.GetOrder)
	api.PUT("/orders/:id", orderHandler.UpdateOrder)
	api.DELETE("/orders/:id", orderHandler.DeleteOrder)

	// Payment routes
	api.POST("/payments", paymentHandler.CreatePayment)
	api.GET("/payments", paymentHandler.ListPayments)
	api.GET("/payments/by-user/:userId", paymentHandler.ListPaymentsByUser)
	api.GET("/payments/by-order/:orderId", paymentHandler.ListPaymentsByOrder)
	api.GET("/payments/by-date", paymentHandler.ListPaymentsByDateRange)
	api.GET("/payments/by-method/:method", paymentHandler.ListPaymentsByMethod)
	api.GET("/payments/:id", paymentHandler.GetPayment)
	api.PUT("/payments/:id", paymentHandler.UpdatePayment)
	api.DELETE("/payments/:id", paymentHandler.DeletePayment)

	// Review routes
	api.POST("/reviews", reviewHandler.CreateReview)
	api.GET("/reviews", reviewHandler.ListReviews)
	api.GET("/reviews/by-user/:userId", reviewHandler.ListReviewsByUser)
	api.GET("/reviews/by-order/:orderId", reviewHandler.ListReviewsByOrder)
	api.GET("/reviews/by-rating", reviewHandler.ListReviewsByMinRating)
	api.GET("/reviews/:id", reviewHandler.GetReview)
	api.PUT("/reviews/:id", reviewHandler.UpdateReview)
	api.DELETE("/reviews/:id", reviewHandler.DeleteReview)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator builds the request validator with the custom phone rule.
func NewValidator() *CustomValidator {
	v := validator.New()
	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRE.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("register phone validation: %v", err))
	}
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
