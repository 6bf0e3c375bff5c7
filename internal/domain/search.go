package domain

import (
	"sort"
	"strings"
)

// SearchFields are the startup fields a search term is matched against
type SearchFields struct {
	Name        string
	Tagline     string
	Description string
	Sector      string
	Category    string
	Industry    string
}

// MatchesSearch reports whether term is a case-sensitive substring of any field.
// An empty term matches everything.
func MatchesSearch(term string, f SearchFields) bool {
	if term == "" {
		return true
	}

	for _, field := range []string{f.Name, f.Tagline, f.Description, f.Sector, f.Category, f.Industry} {
		if strings.Contains(field, term) {
			return true
		}
	}
	return false
}

// SortByUpvotes orders items by upvotes, highest first. Ties keep their input order.
func SortByUpvotes[T any](items []T, upvotes func(T) int64) {
	sort.SliceStable(items, func(i, j int) bool {
		return upvotes(items[i]) > upvotes(items[j])
	})
}
