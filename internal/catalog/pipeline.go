package catalog

import (
	"cmp"
	"slices"
	"strings"

	"product-catalog/internal/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Pipeline filters and orders enriched products for a given state.
// It holds no per-call state and is safe for concurrent use.
type Pipeline struct {
	locale language.Tag
}

// NewPipeline creates a pipeline that orders text columns using the collation rules of locale
func NewPipeline(locale language.Tag) *Pipeline {
	return &Pipeline{locale: locale}
}

// Apply returns the products that pass every filter of st, ordered as st requests.
// The input slice is never modified.
func (p *Pipeline) Apply(products []domain.EnrichedProduct, st State) []domain.EnrichedProduct {
	rows := p.filter(products, st)
	p.sort(rows, st)
	return rows
}

func (p *Pipeline) filter(products []domain.EnrichedProduct, st State) []domain.EnrichedProduct {
	// collate.Collator and cases.Caser keep internal buffers, so each call builds its own
	fold := cases.Fold()
	needle := fold.String(st.Query)

	rows := make([]domain.EnrichedProduct, 0, len(products))
	for _, product := range products {
		if st.OwnerID != AllOwners && product.Owner.ID != st.OwnerID {
			continue
		}
		if st.Query != "" && !strings.Contains(fold.String(product.Name), needle) {
			continue
		}
		if !st.Categories.Allows(product.CategoryID) {
			continue
		}
		rows = append(rows, product)
	}

	return rows
}

func (p *Pipeline) sort(rows []domain.EnrichedProduct, st State) {
	if !st.Sorted() {
		return
	}

	compare := p.comparator(st.SortField)
	if compare == nil {
		return
	}

	if st.SortDirection == Descending {
		ascending := compare
		compare = func(a, b domain.EnrichedProduct) int {
			return -ascending(a, b)
		}
	}

	slices.SortStableFunc(rows, compare)
}

func (p *Pipeline) comparator(field SortField) func(a, b domain.EnrichedProduct) int {
	collator := collate.New(p.locale)

	switch field {
	case SortByID:
		return func(a, b domain.EnrichedProduct) int {
			return cmp.Compare(a.ID, b.ID)
		}
	case SortByName:
		return func(a, b domain.EnrichedProduct) int {
			return collator.CompareString(a.Name, b.Name)
		}
	case SortByCategory:
		return func(a, b domain.EnrichedProduct) int {
			return collator.CompareString(a.Category.Title, b.Category.Title)
		}
	case SortByOwner:
		return func(a, b domain.EnrichedProduct) int {
			return collator.CompareString(a.Owner.Name, b.Owner.Name)
		}
	default:
		return nil
	}
}
