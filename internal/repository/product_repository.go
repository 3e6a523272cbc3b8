package repository

import (
	"context"
	"database/sql"
	"fmt"

	"product-catalog/internal/domain"
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	List(ctx context.Context) ([]domain.Product, error)
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new instance of ProductRepository
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

// Create inserts a new product into the database using parameterized queries
func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (id, name, category_id)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.ExecContext(ctx, query, product.ID, product.Name, product.CategoryID)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return ErrProductAlreadyExists
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: product %d category %d", ErrDanglingReference, product.ID, product.CategoryID)
		}
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

// List retrieves all products in id order, which is the order the catalog displays when unsorted
func (r *productRepository) List(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT id, name, category_id
		FROM products
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(&product.ID, &product.Name, &product.CategoryID); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}
