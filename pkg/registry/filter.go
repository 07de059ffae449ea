package registry

import (
	"sort"
	"strings"
)

// Query is one catalog-browser filter request.
type Query struct {
	SearchText string
	Category   Category // CategoryAll matches everything
	Tags       []string // empty matches everything; otherwise OR over tags
}

// Filter returns the descriptors matching the query, preserving input
// order. It is pure: the input slice is never modified and identical calls
// yield identical results.
func Filter(all []Descriptor, q Query) []Descriptor {
	search := strings.ToLower(strings.TrimSpace(q.SearchText))
	out := make([]Descriptor, 0, len(all))
	for _, d := range all {
		if !matchesText(d, search) {
			continue
		}
		if !matchesCategory(d, q.Category) {
			continue
		}
		if !matchesTags(d, q.Tags) {
			continue
		}
		out = append(out, d)
	}
	return out
}

func matchesText(d Descriptor, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(d.Name), search) ||
		strings.Contains(strings.ToLower(d.Description), search)
}

func matchesCategory(d Descriptor, c Category) bool {
	return c == "" || c == CategoryAll || d.Category == c
}

// matchesTags passes when the query has no tags or the descriptor shares at
// least one tag with it (OR semantics, not AND).
func matchesTags(d Descriptor, tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	for _, want := range tags {
		for _, have := range d.Tags {
			if strings.EqualFold(have, want) {
				return true
			}
		}
	}
	return false
}

// AllTags returns the union of every descriptor's tags, de-duplicated and
// sorted lexicographically. Used to populate the tag picker.
func AllTags(all []Descriptor) []string {
	seen := make(map[string]struct{})
	for _, d := range all {
		for _, t := range d.Tags {
			seen[t] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
