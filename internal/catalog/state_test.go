package catalog

import (
	"errors"
	"net/url"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestClickSort_Cycle(t *testing.T) {
	var st State

	st.ClickSort(SortByName)
	assert.Equal(t, SortByName, st.SortField)
	assert.Equal(t, Ascending, st.SortDirection)

	st.ClickSort(SortByName)
	assert.Equal(t, SortByName, st.SortField)
	assert.Equal(t, Descending, st.SortDirection)

	st.ClickSort(SortByName)
	assert.Equal(t, SortNone, st.SortField)
	assert.Equal(t, DirectionNone, st.SortDirection)
	assert.False(t, st.Sorted())
}

func TestClickSort_OtherFieldRestartsAscending(t *testing.T) {
	st := State{SortField: SortByName, SortDirection: Descending}

	st.ClickSort(SortByOwner)

	assert.Equal(t, SortByOwner, st.SortField)
	assert.Equal(t, Ascending, st.SortDirection)
	assert.Equal(t, DirectionNone, st.DirectionOf(SortByName))
	assert.Equal(t, Ascending, st.DirectionOf(SortByOwner))
}

// Feature: product-catalog, Property 5: Three clicks on a column restore the sort state
func TestProperty_ThreeClicksRestoreSortState(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("clicking the same column three times from unsorted is a no-op", prop.ForAll(
		func(field string) bool {
			st := State{}
			for i := 0; i < 3; i++ {
				st.ClickSort(SortField(field))
			}
			return !st.Sorted() && st.SortField == SortNone && st.SortDirection == DirectionNone
		},
		gen.OneConstOf("id", "name", "category", "user"),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestToggleCategory(t *testing.T) {
	var st State

	st.ToggleCategory(3)
	st.ToggleCategory(5)
	assert.Equal(t, []int{3, 5}, st.Categories.IDs())

	st.ToggleCategory(3)
	assert.Equal(t, []int{5}, st.Categories.IDs())
	assert.True(t, st.Categories.Has(5))
	assert.False(t, st.Categories.Has(3))

	st.ToggleCategory(5)
	assert.Empty(t, st.Categories.IDs())
	assert.True(t, st.Categories.Allows(42))
}

// Feature: product-catalog, Property 6: Toggling a category twice leaves the set unchanged
func TestProperty_ToggleIsInvolution(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("toggle twice is identity and never duplicates", prop.ForAll(
		func(initial []int, id int) bool {
			st := State{Categories: NewCategorySet(initial...)}
			before := st.Categories.IDs()

			st.ToggleCategory(id)
			if st.Categories.Has(id) == NewCategorySet(initial...).Has(id) {
				return false
			}
			st.ToggleCategory(id)

			after := st.Categories.IDs()
			if len(before) != len(after) {
				return false
			}
			for i := range before {
				if before[i] != after[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(1, 10)),
		gen.IntRange(1, 10),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestClearCategories(t *testing.T) {
	st := State{Categories: NewCategorySet(1, 2, 3)}

	st.ClearCategories()

	assert.Empty(t, st.Categories)
	assert.True(t, st.Categories.Allows(1))
}

func TestReset_KeepsCategoriesAndSort(t *testing.T) {
	st := State{
		OwnerID:       2,
		Query:         "milk",
		Categories:    NewCategorySet(1),
		SortField:     SortByID,
		SortDirection: Descending,
	}

	st.Reset()

	assert.Equal(t, AllOwners, st.OwnerID)
	assert.Empty(t, st.Query)
	assert.Equal(t, []int{1}, st.Categories.IDs())
	assert.Equal(t, SortByID, st.SortField)
	assert.Equal(t, Descending, st.SortDirection)
}

func TestClone_DoesNotShareCategories(t *testing.T) {
	st := State{Categories: NewCategorySet(1)}

	c := st.Clone()
	c.ToggleCategory(2)
	c.ToggleCategory(1)

	assert.Equal(t, []int{1}, st.Categories.IDs())
	assert.Equal(t, []int{2}, c.Categories.IDs())
}

func TestValues(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		expected string
	}{
		{
			name:     "default state",
			state:    State{},
			expected: "",
		},
		{
			name: "full state",
			state: State{
				OwnerID:       2,
				Query:         "green tea",
				Categories:    NewCategorySet(5, 3),
				SortField:     SortByOwner,
				SortDirection: Descending,
			},
			expected: "category=3&category=5&order=desc&query=green+tea&sort=user&user=2",
		},
		{
			name:     "sort field without direction is dropped",
			state:    State{SortField: SortByName},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.Values().Encode())
			assert.Equal(t, "?"+tt.expected, tt.state.Href())
		})
	}
}

func TestValues_RoundTripThroughURL(t *testing.T) {
	st := State{Query: "a&b=c", Categories: NewCategorySet(1)}

	parsed, err := url.ParseQuery(st.Values().Encode())

	assert.NoError(t, err)
	assert.Equal(t, "a&b=c", parsed.Get(ParamQuery))
	assert.Equal(t, []string{"1"}, parsed[ParamCategory])
}

func TestParseSortField(t *testing.T) {
	for _, field := range SortFields {
		parsed, err := ParseSortField(string(field))
		assert.NoError(t, err)
		assert.Equal(t, field, parsed)
	}

	parsed, err := ParseSortField("")
	assert.NoError(t, err)
	assert.Equal(t, SortNone, parsed)

	_, err = ParseSortField("price")
	assert.True(t, errors.Is(err, ErrInvalidSortField))
}

func TestParseSortDirection(t *testing.T) {
	for _, s := range []string{"", "asc", "desc"} {
		parsed, err := ParseSortDirection(s)
		assert.NoError(t, err)
		assert.Equal(t, SortDirection(s), parsed)
	}

	_, err := ParseSortDirection("ASC")
	assert.ErrorIs(t, err, ErrInvalidSortOrder)
}
