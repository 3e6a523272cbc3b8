package service

import (
	"context"
	"fmt"

	"product-catalog/internal/catalog"
	"product-catalog/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// CatalogService defines the interface for catalog browsing
type CatalogService interface {
	// Browse builds a view of the catalog for the given filter and sort state
	Browse(st catalog.State) *catalog.View
	Catalog() *catalog.Catalog
	Users() []domain.User
	Categories() []domain.Category
}

type catalogService struct {
	catalog  *catalog.Catalog
	pipeline *catalog.Pipeline
}

// NewCatalogService loads the catalog from src once and serves every view from that snapshot
func NewCatalogService(ctx context.Context, src catalog.Source, locale language.Tag, logger *zap.Logger) (CatalogService, error) {
	c, err := catalog.Load(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	logger.Info("Catalog loaded",
		zap.Int("users", len(c.Users)),
		zap.Int("categories", len(c.Categories)),
		zap.Int("products", len(c.Products)),
		zap.String("locale", locale.String()),
	)

	return &catalogService{
		catalog:  c,
		pipeline: catalog.NewPipeline(locale),
	}, nil
}

func (s *catalogService) Browse(st catalog.State) *catalog.View {
	return catalog.NewView(s.pipeline, s.catalog.Products, st)
}

func (s *catalogService) Catalog() *catalog.Catalog {
	return s.catalog
}

func (s *catalogService) Users() []domain.User {
	return s.catalog.Users
}

func (s *catalogService) Categories() []domain.Category {
	return s.catalog.Categories
}

// ParseLocale resolves a BCP 47 tag for collation, falling back to English
func ParseLocale(s string) (language.Tag, error) {
	if s == "" {
		return language.English, nil
	}

	tag, err := language.Parse(s)
	if err != nil {
		return language.English, fmt.Errorf("invalid catalog locale %q: %w", s, err)
	}
	return tag, nil
}
