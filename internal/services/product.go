package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/pasale/product-catalog/internal/cache"
	appErrors "github.com/pasale/product-catalog/internal/errors"
	"github.com/pasale/product-catalog/internal/models"
	repository "github.com/pasale/product-catalog/internal/repositories"
	"github.com/pasale/product-catalog/internal/utils"
)

// ProductService resolves products for exactly one owner. The owner is always the
// userID argument, never an identity taken from the request context.
type ProductService interface {
	LookupProduct(ctx context.Context, req models.LookupRequest) (*models.LookupResult, error)
	GetProduct(ctx context.Context, userID, productID int64) (*models.ProductView, error)
	ListProducts(ctx context.Context, userID int64, page int) (*models.PaginatedResponse[models.ProductView], error)
}

type productService struct {
	repo     repository.ProductRepository
	aside    *cache.Aside
	ttl      time.Duration
	sanitize *bluemonday.Policy
}

func NewProductService(repo repository.ProductRepository, aside *cache.Aside, ttl time.Duration) ProductService {
	return &productService{
		repo:     repo,
		aside:    aside,
		ttl:      ttl,
		sanitize: bluemonday.StrictPolicy(),
	}
}

// LookupProduct is the single entry point for product reads: a set ProductID
// selects one product, otherwise req.Page of the owner's list is returned.
func (s *productService) LookupProduct(ctx context.Context, req models.LookupRequest) (*models.LookupResult, error) {

	if req.ProductID != nil {
		product, err := s.GetProduct(ctx, req.UserID, *req.ProductID)
		if err != nil {
			return nil, err
		}

		return &models.LookupResult{Product: product}, nil
	}

	page, err := s.ListProducts(ctx, req.UserID, req.Page)
	if err != nil {
		return nil, err
	}

	return &models.LookupResult{Page: page}, nil
}

func (s *productService) GetProduct(ctx context.Context, userID, productID int64) (*models.ProductView, error) {

	logger := utils.LoggerFromContext(ctx).With(slog.Int64("userId", userID), slog.Int64("productId", productID))

	key := cache.ProductKey(userID, productID)

	return cache.GetOrSet(ctx, s.aside, key, s.ttl, func(ctx context.Context) (*models.ProductView, error) {

		product, err := s.repo.GetProductByOwner(ctx, productID, userID)
		if err != nil {

			if errors.Is(err, repository.ErrProductNotFound) {
				logger.Warn("Product not found")
				return nil, appErrors.ProductFetchError(appErrors.NotFoundError("Product matching query does not exist.").WithError(err))
			}

			logger.Error("Failed to fetch product", slog.String("error", err.Error()))
			return nil, appErrors.ProductFetchError(err)
		}

		view := s.toView(product)

		return &view, nil
	})
}

// page means "page number requested", the page size is fixed
func (s *productService) ListProducts(ctx context.Context, userID int64, page int) (*models.PaginatedResponse[models.ProductView], error) {

	logger := utils.LoggerFromContext(ctx).With(slog.Int64("userId", userID), slog.Int("page", page))

	if page < 1 {
		return nil, appErrors.ProductFetchError(appErrors.NotFoundError("Invalid page."))
	}

	key := cache.ProductListKey(userID, page)

	return cache.GetOrSet(ctx, s.aside, key, s.ttl, func(ctx context.Context) (*models.PaginatedResponse[models.ProductView], error) {

		products, total, err := s.repo.ListProductsByOwner(ctx, userID, page, models.DefaultPageSize)
		if err != nil {
			logger.Error("Failed to fetch products", slog.String("error", err.Error()))
			return nil, appErrors.ProductFetchError(err)
		}

		if page > models.TotalPages(total, models.DefaultPageSize) {
			logger.Warn("Requested page is out of range", slog.Int("total", total))
			return nil, appErrors.ProductFetchError(appErrors.NotFoundError("Invalid page."))
		}

		views := make([]models.ProductView, 0, len(products))
		for _, product := range products {
			views = append(views, s.toView(product))
		}

		return models.NewPaginatedResponse(views, total, page, models.DefaultPageSize), nil
	})
}

// toView keeps the public subset of a product. Names are user input and are
// stripped of markup before leaving the service.
func (s *productService) toView(product *models.Product) models.ProductView {
	view := models.ProductView{
		ID:          product.ID,
		User:        product.UserID,
		Category:    product.CategoryID,
		ProductName: s.sanitize.Sanitize(product.ProductName),
		UnitPrice:   product.UnitPrice.StringFixed(2),
		Quantity:    product.Quantity,
	}

	if product.Category != nil {
		view.CategoryName = s.sanitize.Sanitize(product.Category.Name)
	}

	return view
}
