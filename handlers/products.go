package handlers

import (
	"errors"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ELWAANY111/Verto-Store55/models"
	"github.com/ELWAANY111/Verto-Store55/repositories"
	"github.com/ELWAANY111/Verto-Store55/services"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	products, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		log.Printf("Error fetching products: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch products"})
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return productError(c, err, "Failed to fetch product")
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var files []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		files = form.File["images"]
	}

	input := services.CreateProductInput{
		Name:                c.FormValue("name"),
		Description:         c.FormValue("description"),
		PriceBeforeDiscount: c.FormValue("priceBeforeDiscount"),
		PriceAfterDiscount:  c.FormValue("priceAfterDiscount"),
		Category:            c.FormValue("category"),
		Brand:               c.FormValue("brand"),
		Stock:               c.FormValue("stock"),
		Sizes:               c.FormValue("sizes"),
		Colors:              c.FormValue("colors"),
		Images:              files,
	}

	product, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return productError(c, err, "Failed to create product")
	}
	return c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	product, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return productError(c, err, "Failed to delete product")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":        "Product deleted successfully",
		"deletedProduct": product,
	})
}

func (h *ProductHandler) AddReview(c echo.Context) error {
	var review models.Review
	if err := c.Bind(&review); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if review.User == "" {
		review.User = "anonymous"
	}

	created, err := h.service.AddReview(c.Request().Context(), c.Param("id"), review)
	if err != nil {
		return productError(c, err, "Failed to add review")
	}
	return c.JSON(http.StatusCreated, created)
}

// productError maps service errors onto the 400/404/500 taxonomy.
func productError(c echo.Context, err error, internalMsg string) error {
	var ve *services.ValidationError
	if errors.As(err, &ve) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": ve.Message})
	}
	if errors.Is(err, repositories.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Product not found"})
	}
	log.Printf("%s: %v", internalMsg, err)
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": internalMsg})
}
