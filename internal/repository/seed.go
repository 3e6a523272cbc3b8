package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"product-catalog/internal/catalog"
)

// Seed copies every record of src into db and returns how many rows were inserted.
// Records whose id is already stored are skipped, so seeding an existing database is a no-op.
func Seed(ctx context.Context, db *sql.DB, src catalog.Source) (int, error) {
	users, err := src.Users(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read users: %w", err)
	}
	categories, err := src.Categories(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read categories: %w", err)
	}
	products, err := src.Products(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read products: %w", err)
	}

	userRepo := NewUserRepository(db)
	categoryRepo := NewCategoryRepository(db)
	productRepo := NewProductRepository(db)

	inserted := 0
	insert := func(err error, exists error) error {
		switch {
		case err == nil:
			inserted++
			return nil
		case errors.Is(err, exists):
			return nil
		default:
			return err
		}
	}

	// owners first, then categories, then products, following the foreign keys
	for i := range users {
		if err := insert(userRepo.Create(ctx, &users[i]), ErrUserAlreadyExists); err != nil {
			return inserted, err
		}
	}
	for i := range categories {
		if err := insert(categoryRepo.Create(ctx, &categories[i]), ErrCategoryAlreadyExists); err != nil {
			return inserted, err
		}
	}
	for i := range products {
		if err := insert(productRepo.Create(ctx, &products[i]), ErrProductAlreadyExists); err != nil {
			return inserted, err
		}
	}

	return inserted, nil
}
