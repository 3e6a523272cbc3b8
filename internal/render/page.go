package render

import (
	"fmt"
	"net/url"

	"product-catalog/internal/catalog"
	"product-catalog/internal/domain"
)

// NoMatchesMessage is shown instead of the table when no product passes the filters
const NoMatchesMessage = "No products matching selected criteria"

// Page is the template model of the catalog page
type Page struct {
	Title string

	AllUsers Link
	Users    []Link

	Query       string
	ClearQuery  Link
	HiddenState []Field

	AllCategories Link
	Categories    []Link

	Reset    Link
	Selected []string

	Columns []Column
	Rows    []Row
	Empty   bool
	Message string
}

// Link is a control that moves the view to another state
type Link struct {
	Label  string
	Href   string
	Active bool
}

// Field is a hidden form input carrying state through the search form
type Field struct {
	Name  string
	Value string
}

// Column is a sortable table header
type Column struct {
	Title string
	Href  string
	Icon  string
}

// Row is one rendered product
type Row struct {
	ID         int
	Name       string
	Category   string
	Owner      string
	OwnerClass string
}

var columnTitles = map[catalog.SortField]string{
	catalog.SortByID:       "ID",
	catalog.SortByName:     "Product",
	catalog.SortByCategory: "Category",
	catalog.SortByOwner:    "User",
}

// NewPage builds the page model. Every link carries the state the view would have after that click.
func NewPage(c *catalog.Catalog, v *catalog.View) Page {
	st := v.State()

	page := Page{
		Title:   "Product Categories",
		Query:   st.Query,
		Empty:   v.Empty(),
		Message: NoMatchesMessage,
	}

	page.AllUsers = Link{
		Label:  "All",
		Href:   next(st, (*catalog.State).SelectAllOwners),
		Active: st.OwnerID == catalog.AllOwners,
	}
	for _, user := range c.Users {
		id := user.ID
		page.Users = append(page.Users, Link{
			Label:  user.Name,
			Href:   next(st, func(s *catalog.State) { s.SelectOwner(id) }),
			Active: st.OwnerID == id,
		})
	}

	page.ClearQuery = Link{Href: next(st, (*catalog.State).ClearQuery), Active: st.Query != ""}
	page.HiddenState = hiddenFields(st.Values())

	page.AllCategories = Link{
		Label:  "All",
		Href:   next(st, (*catalog.State).ClearCategories),
		Active: len(st.Categories) == 0,
	}
	for _, category := range c.Categories {
		id := category.ID
		page.Categories = append(page.Categories, Link{
			Label:  category.Title,
			Href:   next(st, func(s *catalog.State) { s.ToggleCategory(id) }),
			Active: st.Categories.Has(id),
		})
	}

	page.Reset = Link{Label: "Reset all filters", Href: next(st, (*catalog.State).Reset)}
	page.Selected = selected(c, st)

	for _, field := range catalog.SortFields {
		f := field
		page.Columns = append(page.Columns, Column{
			Title: columnTitles[f],
			Href:  next(st, func(s *catalog.State) { s.ClickSort(f) }),
			Icon:  sortIcon(st.DirectionOf(f)),
		})
	}

	for _, product := range v.Rows() {
		page.Rows = append(page.Rows, newRow(product))
	}

	return page
}

func next(st catalog.State, click func(*catalog.State)) string {
	n := st.Clone()
	click(&n)
	return n.Href()
}

// selected labels the active owner and categories. Ids missing from the catalog are skipped.
func selected(c *catalog.Catalog, st catalog.State) []string {
	var labels []string
	if user, ok := c.User(st.OwnerID); ok {
		labels = append(labels, user.Name)
	}
	for _, id := range st.Categories.IDs() {
		if category, ok := c.Category(id); ok {
			labels = append(labels, fmt.Sprintf("%s %s", category.Icon, category.Title))
		}
	}
	return labels
}

func hiddenFields(values url.Values) []Field {
	var fields []Field
	for _, name := range []string{catalog.ParamUser, catalog.ParamCategory, catalog.ParamSort, catalog.ParamOrder} {
		for _, value := range values[name] {
			fields = append(fields, Field{Name: name, Value: value})
		}
	}
	return fields
}

func sortIcon(direction catalog.SortDirection) string {
	switch direction {
	case catalog.Ascending:
		return "fa-sort-up"
	case catalog.Descending:
		return "fa-sort-down"
	default:
		return "fa-sort"
	}
}

func newRow(product domain.EnrichedProduct) Row {
	ownerClass := "has-text-danger"
	if product.Owner.Sex == domain.SexMale {
		ownerClass = "has-text-link"
	}

	return Row{
		ID:         product.ID,
		Name:       product.Name,
		Category:   fmt.Sprintf("%s - %s", product.Category.Icon, product.Category.Title),
		Owner:      product.Owner.Name,
		OwnerClass: ownerClass,
	}
}
