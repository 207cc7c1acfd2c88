package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ELWAANY111/Verto-Store55/models"
	"github.com/ELWAANY111/Verto-Store55/services"
)

// OrderHandler handles HTTP requests for checkout submissions.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var order models.Order
	if err := c.Bind(&order); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	if _, err := h.service.Create(c.Request().Context(), order); err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": ve.Message})
		}
		log.Printf("Error creating order: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to submit order"})
	}

	return c.JSON(http.StatusCreated, map[string]string{"message": "Order submitted successfully"})
}

// GetOrders lists all submitted orders for the admin dashboard.
func (h *OrderHandler) GetOrders(c echo.Context) error {
	orders, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		log.Printf("Error fetching orders: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch orders"})
	}
	return c.JSON(http.StatusOK, orders)
}
