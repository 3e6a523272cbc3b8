package catalog

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// Query string keys used to carry the state between requests
const (
	ParamUser     = "user"
	ParamQuery    = "query"
	ParamCategory = "category"
	ParamSort     = "sort"
	ParamOrder    = "order"
)

var (
	ErrInvalidSortField = errors.New("invalid sort field")
	ErrInvalidSortOrder = errors.New("invalid sort order")
)

// ParseSortField converts a query value into a sort field. The empty string means no sorting.
func ParseSortField(s string) (SortField, error) {
	if s == "" {
		return SortNone, nil
	}
	for _, field := range SortFields {
		if string(field) == s {
			return field, nil
		}
	}
	return SortNone, fmt.Errorf("%w: %q", ErrInvalidSortField, s)
}

// ParseSortDirection converts a query value into a sort direction. The empty string means no sorting.
func ParseSortDirection(s string) (SortDirection, error) {
	switch SortDirection(s) {
	case DirectionNone, Ascending, Descending:
		return SortDirection(s), nil
	default:
		return DirectionNone, fmt.Errorf("%w: %q", ErrInvalidSortOrder, s)
	}
}

// Values encodes the state as query parameters, omitting everything at its default
func (s State) Values() url.Values {
	values := url.Values{}

	if s.OwnerID != AllOwners {
		values.Set(ParamUser, strconv.Itoa(s.OwnerID))
	}
	if s.Query != "" {
		values.Set(ParamQuery, s.Query)
	}
	for _, id := range s.Categories.IDs() {
		values.Add(ParamCategory, strconv.Itoa(id))
	}
	if s.Sorted() {
		values.Set(ParamSort, string(s.SortField))
		values.Set(ParamOrder, string(s.SortDirection))
	}

	return values
}

// Href returns the relative link "?<query>" that restores the state, or "?" for the default state
func (s State) Href() string {
	return "?" + s.Values().Encode()
}
