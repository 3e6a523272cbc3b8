package repository

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"

	"product-catalog/internal/domain"

	"github.com/go-playground/validator/v10"
)

//go:embed fixtures/*.json
var embeddedFixtures embed.FS

const (
	usersFile      = "users.json"
	categoriesFile = "categories.json"
	productsFile   = "products.json"
)

var validate = validator.New()

// FixtureSource serves the catalog from static JSON fixtures loaded once
type FixtureSource struct {
	users      []domain.User
	categories []domain.Category
	products   []domain.Product
}

// NewDefaultFixtureSource loads the fixtures compiled into the binary
func NewDefaultFixtureSource() (*FixtureSource, error) {
	fsys, err := fs.Sub(embeddedFixtures, "fixtures")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded fixtures: %w", err)
	}
	return NewFixtureSource(fsys)
}

// NewFixtureSource reads users.json, categories.json and products.json from fsys,
// validates every record and checks that all references resolve
func NewFixtureSource(fsys fs.FS) (*FixtureSource, error) {
	src := &FixtureSource{}

	if err := readFixture(fsys, usersFile, &src.users); err != nil {
		return nil, err
	}
	if err := readFixture(fsys, categoriesFile, &src.categories); err != nil {
		return nil, err
	}
	if err := readFixture(fsys, productsFile, &src.products); err != nil {
		return nil, err
	}

	if err := src.check(); err != nil {
		return nil, err
	}

	return src, nil
}

func readFixture[T any](fsys fs.FS, name string, dst *[]T) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read fixture %s: %w", name, err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to decode fixture %s: %w", name, err)
	}

	for i := range *dst {
		if err := validate.Struct((*dst)[i]); err != nil {
			return fmt.Errorf("invalid record %d in %s: %w", i, name, err)
		}
	}

	return nil
}

func (s *FixtureSource) check() error {
	users := make(map[int]bool, len(s.users))
	for _, user := range s.users {
		if users[user.ID] {
			return fmt.Errorf("%w: user %d", ErrDuplicateID, user.ID)
		}
		users[user.ID] = true
	}

	categories := make(map[int]bool, len(s.categories))
	for _, category := range s.categories {
		if categories[category.ID] {
			return fmt.Errorf("%w: category %d", ErrDuplicateID, category.ID)
		}
		if !users[category.OwnerID] {
			return fmt.Errorf("%w: category %d owner %d", ErrDanglingReference, category.ID, category.OwnerID)
		}
		categories[category.ID] = true
	}

	products := make(map[int]bool, len(s.products))
	for _, product := range s.products {
		if products[product.ID] {
			return fmt.Errorf("%w: product %d", ErrDuplicateID, product.ID)
		}
		if !categories[product.CategoryID] {
			return fmt.Errorf("%w: product %d category %d", ErrDanglingReference, product.ID, product.CategoryID)
		}
		products[product.ID] = true
	}

	return nil
}

func (s *FixtureSource) Users(ctx context.Context) ([]domain.User, error) {
	return s.users, nil
}

func (s *FixtureSource) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.categories, nil
}

func (s *FixtureSource) Products(ctx context.Context) ([]domain.Product, error) {
	return s.products, nil
}
