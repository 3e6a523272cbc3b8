package render

import (
	"bytes"
	"strings"
	"testing"

	"product-catalog/internal/catalog"
	"product-catalog/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func testCatalog() *catalog.Catalog {
	users := []domain.User{
		{ID: 1, Name: "Roma", Sex: domain.SexMale},
		{ID: 2, Name: "Anna", Sex: domain.SexFemale},
	}
	categories := []domain.Category{
		{ID: 1, Title: "Grocery", Icon: "🍞", OwnerID: 2},
		{ID: 2, Title: "Drinks", Icon: "🍺", OwnerID: 1},
	}
	products := []domain.Product{
		{ID: 1, Name: "Milk", CategoryID: 2},
		{ID: 2, Name: "Bread", CategoryID: 1},
	}

	return &catalog.Catalog{
		Users:      users,
		Categories: categories,
		Products:   catalog.Enrich(users, categories, products),
	}
}

func render(t *testing.T, st catalog.State) string {
	t.Helper()

	c := testCatalog()
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, c, catalog.NewView(catalog.NewPipeline(language.English), c.Products, st)))
	return buf.String()
}

func TestRender_Table(t *testing.T) {
	out := render(t, catalog.State{})

	assert.Contains(t, out, `data-cy="ProductTable"`)
	assert.NotContains(t, out, NoMatchesMessage)
	assert.Equal(t, 2, strings.Count(out, `data-cy="Product"`))
	assert.Contains(t, out, `<td data-cy="ProductCategory">🍺 - Drinks</td>`)
	assert.Contains(t, out, `<td data-cy="ProductUser" class="has-text-link">Roma</td>`)
	assert.Contains(t, out, `<td data-cy="ProductUser" class="has-text-danger">Anna</td>`)
	assert.Equal(t, 4, strings.Count(out, `class="fas fa-sort"`))
	assert.NotContains(t, out, `data-cy="SelectedFilters"`)
}

func TestRender_SelectedFilters(t *testing.T) {
	out := render(t, catalog.State{OwnerID: 1, Categories: catalog.NewCategorySet(2, 7)})

	assert.Contains(t, out, `data-cy="SelectedFilters"`)
	assert.Contains(t, out, `<span class="tag is-info is-light">Roma</span>`)
	assert.Contains(t, out, `<span class="tag is-info is-light">🍺 Drinks</span>`)
	assert.Equal(t, 2, strings.Count(out, `class="tag is-info is-light"`))
}

func TestRender_NoMatches(t *testing.T) {
	out := render(t, catalog.State{OwnerID: 1, Query: "zzz"})

	assert.Contains(t, out, `<p data-cy="NoMatchingMessage">`+NoMatchesMessage+`</p>`)
	assert.NotContains(t, out, `data-cy="ProductTable"`)
	assert.NotContains(t, out, "<table")
}

func TestRender_SearchExample(t *testing.T) {
	out := render(t, catalog.State{Query: "mi"})

	assert.Contains(t, out, `<td data-cy="ProductName">Milk</td>`)
	assert.NotContains(t, out, `<td data-cy="ProductName">Bread</td>`)
	assert.Contains(t, out, `value="mi"`)
	assert.Contains(t, out, `data-cy="ClearButton"`)
}

func TestRender_EscapesQuery(t *testing.T) {
	out := render(t, catalog.State{Query: `<script>"x"</script>`})

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestNewPage_LinksCarryNextState(t *testing.T) {
	c := testCatalog()
	st := catalog.State{
		OwnerID:       2,
		Query:         "br",
		Categories:    catalog.NewCategorySet(1),
		SortField:     catalog.SortByName,
		SortDirection: catalog.Ascending,
	}
	page := NewPage(c, catalog.NewView(catalog.NewPipeline(language.English), c.Products, st))

	assert.False(t, page.AllUsers.Active)
	assert.Equal(t, "?category=1&order=asc&query=br&sort=name", page.AllUsers.Href)
	assert.True(t, page.Users[1].Active)
	assert.Equal(t, "?category=1&order=asc&query=br&sort=name&user=1", page.Users[0].Href)

	assert.Equal(t, "?category=1&order=asc&sort=name&user=2", page.ClearQuery.Href)
	assert.Equal(t, []Field{
		{Name: "user", Value: "2"},
		{Name: "category", Value: "1"},
		{Name: "sort", Value: "name"},
		{Name: "order", Value: "asc"},
	}, page.HiddenState)

	assert.False(t, page.AllCategories.Active)
	assert.Equal(t, "?order=asc&query=br&sort=name&user=2", page.AllCategories.Href)
	assert.True(t, page.Categories[0].Active)
	assert.Equal(t, "?order=asc&query=br&sort=name&user=2", page.Categories[0].Href)
	assert.Equal(t, "?category=1&category=2&order=asc&query=br&sort=name&user=2", page.Categories[1].Href)

	assert.Equal(t, "?category=1&order=asc&sort=name", page.Reset.Href)

	require.Len(t, page.Columns, 4)
	assert.Equal(t, "ID", page.Columns[0].Title)
	assert.Equal(t, "fa-sort", page.Columns[0].Icon)
	assert.Equal(t, "?category=1&order=asc&query=br&sort=id&user=2", page.Columns[0].Href)
	assert.Equal(t, "fa-sort-up", page.Columns[1].Icon)
	assert.Equal(t, "?category=1&order=desc&query=br&sort=name&user=2", page.Columns[1].Href)

	assert.Equal(t, []string{"Anna", "🍞 Grocery"}, page.Selected)

	require.Len(t, page.Rows, 1)
	assert.Equal(t, Row{ID: 2, Name: "Bread", Category: "🍞 - Grocery", Owner: "Anna", OwnerClass: "has-text-danger"}, page.Rows[0])
}

func TestNewPage_DescendingHeaderLinksToUnsorted(t *testing.T) {
	c := testCatalog()
	st := catalog.State{SortField: catalog.SortByID, SortDirection: catalog.Descending}
	page := NewPage(c, catalog.NewView(catalog.NewPipeline(language.English), c.Products, st))

	assert.Equal(t, "fa-sort-down", page.Columns[0].Icon)
	assert.Equal(t, "?", page.Columns[0].Href)
	assert.Equal(t, []int{2, 1}, []int{page.Rows[0].ID, page.Rows[1].ID})
}
