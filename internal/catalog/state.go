package catalog

import (
	"slices"
)

// AllOwners is the owner filter value that disables owner filtering
const AllOwners = 0

// SortField names the column the rows are ordered by
type SortField string

const (
	SortNone       SortField = ""
	SortByID       SortField = "id"
	SortByName     SortField = "name"
	SortByCategory SortField = "category"
	SortByOwner    SortField = "user"
)

// SortFields lists the sortable columns in table order
var SortFields = []SortField{SortByID, SortByName, SortByCategory, SortByOwner}

// SortDirection is the ordering applied to the sort field
type SortDirection string

const (
	DirectionNone SortDirection = ""
	Ascending     SortDirection = "asc"
	Descending    SortDirection = "desc"
)

// CategorySet is a set of selected category ids. The empty set means no restriction.
type CategorySet map[int]struct{}

// NewCategorySet builds a set from ids, dropping duplicates
func NewCategorySet(ids ...int) CategorySet {
	set := make(CategorySet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Has reports whether id is selected
func (s CategorySet) Has(id int) bool {
	_, ok := s[id]
	return ok
}

// Allows reports whether a product in category id passes the filter
func (s CategorySet) Allows(id int) bool {
	return len(s) == 0 || s.Has(id)
}

// IDs returns the selected ids in ascending order
func (s CategorySet) IDs() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// State is the transient filter and sort state of a catalog view.
// The zero value shows every product in source order.
type State struct {
	OwnerID       int
	Query         string
	Categories    CategorySet
	SortField     SortField
	SortDirection SortDirection
}

// Clone returns a copy that shares no mutable data with s
func (s State) Clone() State {
	c := s
	c.Categories = NewCategorySet(s.Categories.IDs()...)
	return c
}

// Sorted reports whether the state requests any ordering
func (s State) Sorted() bool {
	return s.SortField != SortNone && s.SortDirection != DirectionNone
}

// DirectionOf returns the direction applied to field, DirectionNone when another field is active
func (s State) DirectionOf(field SortField) SortDirection {
	if !s.Sorted() || s.SortField != field {
		return DirectionNone
	}
	return s.SortDirection
}

// SelectOwner restricts rows to products whose category belongs to the user
func (s *State) SelectOwner(id int) {
	s.OwnerID = id
}

// SelectAllOwners removes the owner restriction
func (s *State) SelectAllOwners() {
	s.OwnerID = AllOwners
}

// SetQuery replaces the search text
func (s *State) SetQuery(query string) {
	s.Query = query
}

// ClearQuery empties the search text
func (s *State) ClearQuery() {
	s.Query = ""
}

// ToggleCategory adds id to the category filter when absent and removes it when present
func (s *State) ToggleCategory(id int) {
	if s.Categories.Has(id) {
		delete(s.Categories, id)
		return
	}
	if s.Categories == nil {
		s.Categories = make(CategorySet)
	}
	s.Categories[id] = struct{}{}
}

// ClearCategories removes every category restriction
func (s *State) ClearCategories() {
	s.Categories = nil
}

// ClickSort advances the sort cycle for field:
// unsorted or another field -> ascending -> descending -> unsorted.
func (s *State) ClickSort(field SortField) {
	switch s.DirectionOf(field) {
	case DirectionNone:
		s.SortField = field
		s.SortDirection = Ascending
	case Ascending:
		s.SortDirection = Descending
	default:
		s.SortField = SortNone
		s.SortDirection = DirectionNone
	}
}

// Reset clears the search text and the owner filter.
// Category selection and sorting are left as they are.
func (s *State) Reset() {
	s.ClearQuery()
	s.SelectAllOwners()
}
