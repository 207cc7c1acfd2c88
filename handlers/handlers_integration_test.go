package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ELWAANY111/Verto-Store55/handlers"
	"github.com/ELWAANY111/Verto-Store55/models"
	"github.com/ELWAANY111/Verto-Store55/repositories"
	"github.com/ELWAANY111/Verto-Store55/routes"
	"github.com/ELWAANY111/Verto-Store55/services"
	"github.com/ELWAANY111/Verto-Store55/uploads"
	"github.com/ELWAANY111/Verto-Store55/utils"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "correct horse battery staple"
)

type failingNotifier struct{ err error }

func (n *failingNotifier) NotifyOrderCreated(order *models.Order) error { return n.err }

type testEnv struct {
	e           *echo.Echo
	productRepo *repositories.MockProductRepository
	orderRepo   *repositories.MockOrderRepository
	notifier    *failingNotifier
	token       string
}

func setup(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	productRepo := repositories.NewMockProductRepository()
	orderRepo := repositories.NewMockOrderRepository()
	store, err := uploads.NewStore(t.TempDir())
	require.NoError(t, err)

	notifier := &failingNotifier{}
	productHandler := handlers.NewProductHandler(services.NewProductService(productRepo, store))
	orderHandler := handlers.NewOrderHandler(services.NewOrderService(orderRepo, notifier))

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	require.NoError(t, err)
	authHandler := handlers.NewAuthHandler(adminEmail, string(hash))

	e := echo.New()
	routes.SetupRoutes(e, productHandler, orderHandler, authHandler, store.Dir())

	token, err := utils.GenerateJWT(adminEmail)
	require.NoError(t, err)

	return &testEnv{e: e, productRepo: productRepo, orderRepo: orderRepo, notifier: notifier, token: token}
}

func (env *testEnv) request(t *testing.T, method, path string, body io.Reader, contentType, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func productForm(t *testing.T, fields map[string]string, imageNames ...string) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, name := range imageNames {
		header := make(map[string][]string)
		header["Content-Disposition"] = []string{fmt.Sprintf(`form-data; name="images"; filename="%s"`, name)}
		header["Content-Type"] = []string{"image/jpeg"}
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte("jpegdata"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func validProductFields() map[string]string {
	return map[string]string{
		"name":                "Canvas Sneakers",
		"description":         "Low-top canvas sneakers",
		"priceBeforeDiscount": "79.99",
		"priceAfterDiscount":  "59.99",
		"category":            "shoes",
		"stock":               `[{"size":"42","quantity":3}]`,
		"sizes":               "42,43",
		"colors":              "white,black",
	}
}

func TestCreateProductRequiresAdminToken(t *testing.T) {
	env := setup(t)

	body, contentType := productForm(t, validProductFields())
	rec := env.request(t, http.MethodPost, "/api/products", body, contentType, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateAndFetchProduct(t *testing.T) {
	env := setup(t)

	body, contentType := productForm(t, validProductFields(), "front.jpg")
	rec := env.request(t, http.MethodPost, "/api/products", body, contentType, env.token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 79.99, created.PriceBeforeDiscount)
	assert.Equal(t, 59.99, created.PriceAfterDiscount)
	require.Len(t, created.Images, 1)
	assert.True(t, strings.HasPrefix(created.Images[0], "/uploads/"))

	rec = env.request(t, http.MethodGet, "/api/products", nil, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	rec = env.request(t, http.MethodGet, "/api/products/"+created.ID.Hex(), nil, "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateProductMalformedStock(t *testing.T) {
	env := setup(t)

	fields := validProductFields()
	fields["stock"] = `{"size":"42"`
	body, contentType := productForm(t, fields)

	rec := env.request(t, http.MethodPost, "/api/products", body, contentType, env.token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.request(t, http.MethodGet, "/api/products", nil, "", "")
	var list []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Empty(t, list, "rejected submission must not be persisted")
}

func TestGetProductNotFound(t *testing.T) {
	env := setup(t)

	rec := env.request(t, http.MethodGet, "/api/products/65b8d1f2e4b0a1c2d3e4f5a6", nil, "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.request(t, http.MethodGet, "/api/products/not-a-hex-id", nil, "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code, "malformed id reads as missing")
}

func TestDeleteProduct(t *testing.T) {
	env := setup(t)

	body, contentType := productForm(t, validProductFields())
	rec := env.request(t, http.MethodPost, "/api/products", body, contentType, env.token)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = env.request(t, http.MethodDelete, "/api/products/bad-id", nil, "", env.token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.request(t, http.MethodDelete, "/api/products/"+created.ID.Hex(), nil, "", env.token)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Message        string         `json:"message"`
		DeletedProduct models.Product `json:"deletedProduct"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Product deleted successfully", resp.Message)
	assert.Equal(t, created.ID, resp.DeletedProduct.ID)

	rec = env.request(t, http.MethodDelete, "/api/products/"+created.ID.Hex(), nil, "", env.token)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.request(t, http.MethodGet, "/api/products", nil, "", "")
	var list []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Empty(t, list)
}

func TestAddReview(t *testing.T) {
	env := setup(t)

	body, contentType := productForm(t, validProductFields())
	rec := env.request(t, http.MethodPost, "/api/products", body, contentType, env.token)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	review := `{"user":"u1","rating":4,"comment":"solid"}`
	rec = env.request(t, http.MethodPost, "/api/products/"+created.ID.Hex()+"/reviews",
		strings.NewReader(review), echo.MIMEApplicationJSON, "")
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = env.request(t, http.MethodPost, "/api/products/"+created.ID.Hex()+"/reviews",
		strings.NewReader(`{"user":"u2","rating":5}`), echo.MIMEApplicationJSON, "")
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = env.request(t, http.MethodGet, "/api/products/"+created.ID.Hex(), nil, "", "")
	var got models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 4.5, got.Rating)

	rec = env.request(t, http.MethodPost, "/api/products/65b8d1f2e4b0a1c2d3e4f5a6/reviews",
		strings.NewReader(review), echo.MIMEApplicationJSON, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateOrder(t *testing.T) {
	env := setup(t)

	order := `{
		"fullName": "Ada Lovelace",
		"address": "12 Analytical St",
		"city": "London",
		"zipCode": "N1 7GU",
		"phone": "+44 20 7946 0000",
		"paymentMethod": "cash on delivery",
		"cartItems": [
			{"productId": "65b8d1f2e4b0a1c2d3e4f5a6", "price": 100, "quantity": 2},
			{"productId": "65b8d1f2e4b0a1c2d3e4f5a7", "price": 50, "quantity": 1}
		]
	}`
	rec := env.request(t, http.MethodPost, "/api/orders", strings.NewReader(order), echo.MIMEApplicationJSON, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Order submitted successfully", resp["message"])

	stored := env.orders(t)
	require.Len(t, stored, 1)
	assert.Equal(t, 250.0, stored[0].TotalPrice)
}

func TestCreateOrderMissingField(t *testing.T) {
	env := setup(t)

	order := `{"fullName": "Ada", "cartItems": [{"productId": "65b8d1f2e4b0a1c2d3e4f5a6", "price": 1, "quantity": 1}]}`
	rec := env.request(t, http.MethodPost, "/api/orders", strings.NewReader(order), echo.MIMEApplicationJSON, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, env.orders(t))
}

func TestCreateOrderSucceedsWhenNotificationFails(t *testing.T) {
	env := setup(t)
	env.notifier.err = errors.New("smtp unreachable")

	order := `{
		"fullName": "Ada Lovelace",
		"address": "12 Analytical St",
		"city": "London",
		"zipCode": "N1 7GU",
		"phone": "+44 20 7946 0000",
		"cartItems": [{"productId": "65b8d1f2e4b0a1c2d3e4f5a6", "price": 10, "quantity": 1}]
	}`
	rec := env.request(t, http.MethodPost, "/api/orders", strings.NewReader(order), echo.MIMEApplicationJSON, "")
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Len(t, env.orders(t), 1)
}

func TestAdminLogin(t *testing.T) {
	env := setup(t)

	rec := env.request(t, http.MethodPost, "/api/auth/login",
		strings.NewReader(fmt.Sprintf(`{"email":%q,"password":%q}`, adminEmail, adminPassword)),
		echo.MIMEApplicationJSON, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["token"])

	// The issued token must pass the admin gate.
	body, contentType := productForm(t, validProductFields())
	rec = env.request(t, http.MethodPost, "/api/products", body, contentType, resp["token"])
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = env.request(t, http.MethodPost, "/api/auth/login",
		strings.NewReader(fmt.Sprintf(`{"email":%q,"password":"wrong"}`, adminEmail)),
		echo.MIMEApplicationJSON, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListOrdersRequiresAdmin(t *testing.T) {
	env := setup(t)

	rec := env.request(t, http.MethodGet, "/api/orders", nil, "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.request(t, http.MethodGet, "/api/orders", nil, "", env.token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func (env *testEnv) orders(t *testing.T) []models.Order {
	t.Helper()
	rec := env.request(t, http.MethodGet, "/api/orders", nil, "", env.token)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	return list
}
