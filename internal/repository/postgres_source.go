package repository

import (
	"context"
	"database/sql"

	"product-catalog/internal/domain"
)

// PostgresSource reads the catalog collections from Postgres.
// Foreign keys on categories.owner_id and products.category_id keep references total.
type PostgresSource struct {
	users      UserRepository
	categories CategoryRepository
	products   ProductRepository
}

// NewPostgresSource creates a catalog source backed by db
func NewPostgresSource(db *sql.DB) *PostgresSource {
	return &PostgresSource{
		users:      NewUserRepository(db),
		categories: NewCategoryRepository(db),
		products:   NewProductRepository(db),
	}
}

func (s *PostgresSource) Users(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *PostgresSource) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *PostgresSource) Products(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}
