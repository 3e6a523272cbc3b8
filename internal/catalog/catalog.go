package catalog

import (
	"context"
	"fmt"

	"product-catalog/internal/domain"
)

// Source provides the read-only collections the catalog is built from
type Source interface {
	Users(ctx context.Context) ([]domain.User, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	Products(ctx context.Context) ([]domain.Product, error)
}

// Catalog is the immutable dataset shared by every view
type Catalog struct {
	Users      []domain.User
	Categories []domain.Category
	Products   []domain.EnrichedProduct
}

// Load reads every collection from src once and joins products to their categories and owners
func Load(ctx context.Context, src Source) (*Catalog, error) {
	users, err := src.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	categories, err := src.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	products, err := src.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	return &Catalog{
		Users:      users,
		Categories: categories,
		Products:   Enrich(users, categories, products),
	}, nil
}

// Enrich joins every product with its category and the category's owner, keeping product order.
// References are expected to resolve; sources validate that before returning data.
func Enrich(users []domain.User, categories []domain.Category, products []domain.Product) []domain.EnrichedProduct {
	usersByID := make(map[int]domain.User, len(users))
	for _, user := range users {
		usersByID[user.ID] = user
	}

	categoriesByID := make(map[int]domain.Category, len(categories))
	for _, category := range categories {
		categoriesByID[category.ID] = category
	}

	enriched := make([]domain.EnrichedProduct, 0, len(products))
	for _, product := range products {
		category := categoriesByID[product.CategoryID]
		enriched = append(enriched, domain.EnrichedProduct{
			Product:  product,
			Category: category,
			Owner:    usersByID[category.OwnerID],
		})
	}

	return enriched
}

// User returns the user with the given id
func (c *Catalog) User(id int) (domain.User, bool) {
	for _, user := range c.Users {
		if user.ID == id {
			return user, true
		}
	}
	return domain.User{}, false
}

// Category returns the category with the given id
func (c *Catalog) Category(id int) (domain.Category, bool) {
	for _, category := range c.Categories {
		if category.ID == id {
			return category, true
		}
	}
	return domain.Category{}, false
}
