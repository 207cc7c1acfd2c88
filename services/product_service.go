package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ELWAANY111/Verto-Store55/models"
	"github.com/ELWAANY111/Verto-Store55/repositories"
	"github.com/ELWAANY111/Verto-Store55/uploads"
)

var validate = validator.New()

// CreateProductInput carries the raw multipart form fields of an admin
// product submission. Prices arrive as strings and stock as a JSON-encoded
// array, exactly as the form posts them.
type CreateProductInput struct {
	Name                string
	Description         string
	PriceBeforeDiscount string
	PriceAfterDiscount  string
	Category            string
	Brand               string
	Stock               string
	Sizes               string
	Colors              string
	Images              []*multipart.FileHeader
}

// ProductService handles catalog business logic: creation with image
// ingestion, lookups, cascading deletes and review aggregation.
type ProductService struct {
	repo  repositories.ProductRepository
	files *uploads.Store
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, files *uploads.Store) *ProductService {
	return &ProductService{
		repo:  repo,
		files: files,
	}
}

// Create validates the submission, stores the accepted image files and
// persists the product. Image files written before a failed insert are
// removed again best-effort.
func (s *ProductService) Create(ctx context.Context, input CreateProductInput) (*models.Product, error) {
	if input.Name == "" || input.Description == "" || input.Category == "" ||
		input.PriceBeforeDiscount == "" || input.PriceAfterDiscount == "" {
		return nil, NewValidationError("All required fields must be provided")
	}

	priceBefore, err := strconv.ParseFloat(input.PriceBeforeDiscount, 64)
	if err != nil {
		return nil, NewValidationError("Price values must be numbers")
	}
	priceAfter, err := strconv.ParseFloat(input.PriceAfterDiscount, 64)
	if err != nil {
		return nil, NewValidationError("Price values must be numbers")
	}
	if priceBefore < 0 || priceAfter < 0 {
		return nil, NewValidationError("Price values must not be negative")
	}
	if priceAfter > priceBefore {
		return nil, NewValidationError("Discounted price must not exceed the original price")
	}

	stock := []models.StockEntry{}
	if input.Stock != "" {
		if err := json.Unmarshal([]byte(input.Stock), &stock); err != nil {
			return nil, NewValidationError("Invalid stock format")
		}
	}

	imagePaths, err := s.saveImages(input.Images)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	product := &models.Product{
		Name:                input.Name,
		Description:         input.Description,
		PriceBeforeDiscount: priceBefore,
		PriceAfterDiscount:  priceAfter,
		Category:            input.Category,
		Brand:               input.Brand,
		Stock:               stock,
		Images:              imagePaths,
		Sizes:               splitList(input.Sizes),
		Colors:              splitList(input.Colors),
		Reviews:             []models.Review{},
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		// The files were written before the insert; do not leave orphans.
		s.removeImages(imagePaths)
		return nil, err
	}
	return product, nil
}

// GetAll retrieves the full catalog.
func (s *ProductService) GetAll(ctx context.Context) ([]models.Product, error) {
	return s.repo.GetAll(ctx)
}

// GetByID retrieves a single product. A malformed id is reported the same
// way as a missing record.
func (s *ProductService) GetByID(ctx context.Context, id string) (*models.Product, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repositories.ErrNotFound
	}
	return s.repo.GetByID(ctx, objID)
}

// Delete removes the product record and then its stored image files. A file
// that fails to delete is logged but does not undo the record deletion.
func (s *ProductService) Delete(ctx context.Context, id string) (*models.Product, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, NewValidationError("Invalid product ID")
	}

	product, err := s.repo.Delete(ctx, objID)
	if err != nil {
		return nil, err
	}

	s.removeImages(product.Images)
	return product, nil
}

// AddReview appends a review to the product and recomputes its rating as
// the arithmetic mean of all review ratings.
func (s *ProductService) AddReview(ctx context.Context, id string, review models.Review) (*models.Review, error) {
	if err := validate.Struct(review); err != nil {
		return nil, NewValidationError("Rating must be between 1 and 5")
	}

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repositories.ErrNotFound
	}

	product, err := s.repo.GetByID(ctx, objID)
	if err != nil {
		return nil, err
	}

	sum := review.Rating
	for _, r := range product.Reviews {
		sum += r.Rating
	}
	rating := sum / float64(len(product.Reviews)+1)

	if err := s.repo.AddReview(ctx, objID, review, rating); err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *ProductService) saveImages(files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return []string{}, nil
	}
	paths, err := s.files.Save(files)
	if err != nil {
		if errors.Is(err, uploads.ErrTooManyFiles) ||
			errors.Is(err, uploads.ErrFileTooLarge) ||
			errors.Is(err, uploads.ErrUnsupportedType) {
			return nil, &ValidationError{Message: err.Error()}
		}
		return nil, err
	}
	return paths, nil
}

func (s *ProductService) removeImages(paths []string) {
	for _, p := range paths {
		if err := s.files.Remove(p); err != nil {
			log.Printf("Error deleting image %s: %v", p, err)
		}
	}
}

// splitList turns a comma-separated form value into a trimmed, de-duplicated
// list, preserving first-seen order.
func splitList(value string) []string {
	out := []string{}
	if value == "" {
		return out
	}
	seen := make(map[string]bool)
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" || seen[part] {
			continue
		}
		seen[part] = true
		out = append(out, part)
	}
	return out
}
