package handlers

import (
	stdErrors "errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/pasale/product-catalog/internal/api/middleware"
	"github.com/pasale/product-catalog/internal/cache"
	"github.com/pasale/product-catalog/internal/errors"
	"github.com/pasale/product-catalog/internal/models"
	service "github.com/pasale/product-catalog/internal/services"
	"github.com/pasale/product-catalog/internal/utils"
	"github.com/pasale/product-catalog/internal/utils/response"
)

type ProductHandler struct {
	productService service.ProductService
	validator      *validator.Validate
}

type ListProductsQuery struct {
	Page int `validate:"gte=1"`
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService, validator: validator.New()}
}

// GetProduct godoc
//	@Summary		Get one of the user's products
//	@Description	Retrieves a product owned by the authenticated user. Results are cached for a few minutes.
//	@Tags			Products
//	@Produce		json
//	@Param			id	path		int						true	"Product ID"	minimum(1)
//	@Success		200	{object}	models.ProductView		"Successfully retrieved product"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid product ID format"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404	{object}	response.ErrorResponse	"Product not found"
//	@Failure		500	{object}	response.ErrorResponse	"Error fetching product"
//	@Failure		503	{object}	response.ErrorResponse	"Product cache is unavailable"
//	@Security		BearerAuth
//	@Router			/products/{id} [get]
func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := utils.LoggerFromContext(r.Context())

		userID, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized product access attempt: missing user claims")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger = logger.With(slog.Int64("productId", id))

		result, err := h.productService.LookupProduct(r.Context(), models.LookupRequest{UserID: userID, ProductID: &id})
		if err != nil {
			h.writeError(w, logger, err)
			return
		}

		logger.Info("Product retrieved successfully")
		response.Success(w, http.StatusOK, result.Product)
	}
}

// ListProducts godoc
//	@Summary		List the user's products
//	@Description	Retrieves one page (10 items) of the products owned by the authenticated user.
//	@Tags			Products
//	@Produce		json
//	@Param			page	query		int													false	"Page number (default: 1)"	minimum(1)
//	@Success		200		{object}	models.PaginatedResponse[models.ProductView]		"Successfully retrieved products"
//	@Failure		400		{object}	response.ErrorResponse								"Invalid page parameter"
//	@Failure		401		{object}	response.ErrorResponse								"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse								"Invalid page"
//	@Failure		500		{object}	response.ErrorResponse								"Error fetching product"
//	@Failure		503		{object}	response.ErrorResponse								"Product cache is unavailable"
//	@Security		BearerAuth
//	@Router			/products [get]
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := utils.LoggerFromContext(r.Context())

		userID, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized product list attempt: missing user claims")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		page, err := utils.QueryInt(r, "page", 1)
		if err != nil {
			logger.Warn("Invalid page parameter", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		query := ListProductsQuery{Page: page}
		if err := utils.ValidateStruct(h.validator, query); err != nil {
			var validationErrs validator.ValidationErrors
			if stdErrors.As(err, &validationErrs) {
				response.ValidationError(w, validationErrs)
				return
			}
			response.Error(w, errors.InternalError("Failed to validate request").WithError(err))
			return
		}

		logger = logger.With(slog.Int("page", page))

		result, err := h.productService.LookupProduct(r.Context(), models.LookupRequest{UserID: userID, Page: page})
		if err != nil {
			h.writeError(w, logger, err)
			return
		}

		products := result.Page
		logger.Info("Products listed successfully", slog.Int("count", len(products.Results)), slog.Int("total", products.Count))
		response.Success(w, http.StatusOK, products)
	}
}

func (h *ProductHandler) writeError(w http.ResponseWriter, logger *slog.Logger, err error) {

	if stdErrors.Is(err, cache.ErrUnavailable) {
		logger.Error("Product cache is unavailable", slog.String("error", err.Error()))
		response.Error(w, errors.ServiceUnavailableError("Product cache is unavailable").WithError(err))
		return
	}

	if errors.IsNotFound(err) {
		logger.Warn("Product lookup found nothing", slog.String("error", err.Error()))
	} else {
		logger.Error("Failed to fetch products", slog.String("error", err.Error()))
	}

	response.Error(w, err)
}
