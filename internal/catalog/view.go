package catalog

import (
	"product-catalog/internal/domain"
)

// View is a catalog page: the shared dataset plus one user's filter and sort state.
// Every mutation recomputes the visible rows from the full product list.
// A View is not safe for concurrent use.
type View struct {
	pipeline *Pipeline
	products []domain.EnrichedProduct
	state    State
	rows     []domain.EnrichedProduct
}

// NewView creates a view over products starting from st
func NewView(pipeline *Pipeline, products []domain.EnrichedProduct, st State) *View {
	v := &View{
		pipeline: pipeline,
		products: products,
		state:    st.Clone(),
	}
	v.recompute()
	return v
}

// State returns a copy of the current state
func (v *View) State() State {
	return v.state.Clone()
}

// Rows returns the visible products in display order
func (v *View) Rows() []domain.EnrichedProduct {
	return v.rows
}

// Empty reports whether no product matches the current state
func (v *View) Empty() bool {
	return len(v.rows) == 0
}

func (v *View) SelectOwner(id int) {
	v.state.SelectOwner(id)
	v.recompute()
}

func (v *View) SelectAllOwners() {
	v.state.SelectAllOwners()
	v.recompute()
}

func (v *View) SetQuery(query string) {
	v.state.SetQuery(query)
	v.recompute()
}

func (v *View) ClearQuery() {
	v.state.ClearQuery()
	v.recompute()
}

func (v *View) ToggleCategory(id int) {
	v.state.ToggleCategory(id)
	v.recompute()
}

func (v *View) ClearCategories() {
	v.state.ClearCategories()
	v.recompute()
}

func (v *View) ClickSort(field SortField) {
	v.state.ClickSort(field)
	v.recompute()
}

// Reset clears the search text and owner filter; categories and sorting are kept
func (v *View) Reset() {
	v.state.Reset()
	v.recompute()
}

func (v *View) recompute() {
	v.rows = v.pipeline.Apply(v.products, v.state)
}
