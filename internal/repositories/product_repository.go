package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pasale/product-catalog/internal/models"
	"github.com/pasale/product-catalog/internal/utils"
)

var ErrProductNotFound = errors.New("product matching query does not exist")

// ProductRepository is read-only, products are managed elsewhere.
type ProductRepository interface {
	GetProductByOwner(ctx context.Context, id, userID int64) (*models.Product, error)
	ListProductsByOwner(ctx context.Context, userID int64, page, size int) ([]*models.Product, int, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

const productColumns = `p.id, p.user_id, p.category_id, p.product_name, p.unit_price,
		p.quantity, p.created_at, p.updated_at,
		c.id, c.name, c.slug`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	product := &models.Product{}

	var (
		categoryID   sql.NullInt64
		categoryName sql.NullString
		categorySlug sql.NullString
	)

	err := row.Scan(&product.ID, &product.UserID, &product.CategoryID, &product.ProductName, &product.UnitPrice,
		&product.Quantity, &product.CreatedAt, &product.UpdatedAt,
		&categoryID, &categoryName, &categorySlug)
	if err != nil {
		return nil, err
	}

	if categoryID.Valid {
		product.Category = &models.Category{
			ID:   categoryID.Int64,
			Name: categoryName.String,
			Slug: categorySlug.String,
		}
	}

	return product, nil
}

func (r *productRepository) GetProductByOwner(ctx context.Context, id, userID int64) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE p.id = $1 AND p.user_id = $2`

	product, err := scanProduct(r.DB.QueryRowContext(dbCtx, query, id, userID))
	if err != nil {

		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	return product, nil
}

func (r *productRepository) ListProductsByOwner(ctx context.Context, userID int64, page, size int) ([]*models.Product, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	countQuery := `SELECT COUNT(*) FROM products WHERE user_id = $1`

	err := r.DB.QueryRowContext(dbCtx, countQuery, userID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("counting products: %w", err)
	}

	// Offset
	offset := (page - 1) * size

	query := `
		SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE p.user_id = $1
		ORDER BY p.id
		LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(dbCtx, query, userID, size, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("listing products: %w", err)
	}

	defer rows.Close()

	var products []*models.Product

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning product: %w", err)
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating products: %w", err)
	}

	return products, total, nil
}
