package controller

import "strings"

// FilterState is the active filter selection of a list screen: one
// selected value per filter key plus a free-text search string.
type FilterState struct {
	Search  string
	Filters map[string]string
}

// filterAll is the selection meaning "no filtering on this key".
const filterAll = "all"

// ApplyFilters returns the subsequence of items where every active
// filter predicate holds and the search predicate holds. Pure and
// idempotent; element order is preserved and no items are invented.
func ApplyFilters[T any](spec Spec[T], items []T, state FilterState) []T {
	search := strings.ToLower(strings.TrimSpace(state.Search))

	result := make([]T, 0, len(items))
	for _, item := range items {
		if !matchesFilters(spec, item, state.Filters) {
			continue
		}
		if !matchesSearch(spec, item, search) {
			continue
		}
		result = append(result, item)
	}
	return result
}

// matchesFilters applies the active predicates with AND semantics.
// Empty and "all" selections are inactive; keys without a configured
// predicate are ignored.
func matchesFilters[T any](spec Spec[T], item T, selected map[string]string) bool {
	for key, value := range selected {
		if value == "" || value == filterAll {
			continue
		}
		predicate, ok := spec.Filters[key]
		if !ok {
			continue
		}
		if !predicate(item, value) {
			return false
		}
	}
	return true
}

// matchesSearch checks whether any searchable field contains the
// search string as a case-insensitive substring.
func matchesSearch[T any](spec Spec[T], item T, search string) bool {
	if search == "" {
		return true
	}
	if spec.SearchFields == nil {
		return false
	}
	for _, field := range spec.SearchFields(item) {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}
