package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ELWAANY111/Verto-Store55/handlers"
	custommiddleware "github.com/ELWAANY111/Verto-Store55/middleware"
)

// SetupRoutes wires the API surface: public catalog reads, admin-gated
// catalog mutations, checkout, auth, static uploads and operational
// endpoints.
func SetupRoutes(e *echo.Echo, products *handlers.ProductHandler, orders *handlers.OrderHandler, auth *handlers.AuthHandler, uploadDir string) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Uploaded product images are served as static files.
	e.Static("/uploads", uploadDir)

	api := e.Group("/api")

	api.POST("/auth/login", auth.Login)

	api.GET("/products", products.GetProducts)
	api.GET("/products/:id", products.GetProduct)
	api.POST("/products", products.CreateProduct, custommiddleware.AdminOnly)
	api.DELETE("/products/:id", products.DeleteProduct, custommiddleware.AdminOnly)
	api.POST("/products/:id/reviews", products.AddReview)

	api.POST("/orders", orders.CreateOrder)
	api.GET("/orders", orders.GetOrders, custommiddleware.AdminOnly)
}
