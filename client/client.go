// Package client is the storefront's Go API client: typed calls against the
// backend plus a cart store held by the caller.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ELWAANY111/Verto-Store55/models"
)

// Client talks to the storefront API at a configured base URL.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the given base URL, e.g. "http://localhost:5000".
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// ListProducts fetches the full catalog.
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.get(ctx, "/api/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches a single product by id.
func (c *Client) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := c.get(ctx, "/api/products/"+id, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// SubmitReview posts a review for a product.
func (c *Client) SubmitReview(ctx context.Context, productID string, review models.Review) error {
	return c.post(ctx, "/api/products/"+productID+"/reviews", review, nil)
}

// CheckoutDetails carries the customer fields of the checkout form.
type CheckoutDetails struct {
	FullName      string `json:"fullName"`
	Address       string `json:"address"`
	City          string `json:"city"`
	ZipCode       string `json:"zipCode"`
	Phone         string `json:"phone"`
	PaymentMethod string `json:"paymentMethod"`
}

// CreateOrder submits an order built from the checkout details and cart.
func (c *Client) CreateOrder(ctx context.Context, details CheckoutDetails, cart *Cart) (string, error) {
	order := models.Order{
		FullName:      details.FullName,
		Address:       details.Address,
		City:          details.City,
		ZipCode:       details.ZipCode,
		Phone:         details.Phone,
		PaymentMethod: details.PaymentMethod,
		CartItems:     cart.Items(),
	}

	var resp struct {
		Message string `json:"message"`
	}
	if err := c.post(ctx, "/api/orders", order, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		body, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s (status %d)", req.Method, req.URL.Path, apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("%s %s: unexpected status %d", req.Method, req.URL.Path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
