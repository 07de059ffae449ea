package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterFixture() []Descriptor {
	return []Descriptor{
		{ID: "minimal", Name: "Minimal", Description: "A clean minimal layout", Category: CategoryBasic, Tags: []string{"simple", "clean"}, Loader: noopLoader},
		{ID: "corporate", Name: "Corporate", Description: "Formal layout for business", Category: CategoryProfessional, Tags: []string{"formal", "business"}, Loader: noopLoader},
		{ID: "creative", Name: "Creative", Description: "Bold design for creatives", Category: CategorySpecialized, Tags: []string{"bold", "design"}, Loader: noopLoader},
		{ID: "compact", Name: "Compact", Description: "Dense single page format", Category: CategoryFormat, Tags: []string{"dense", "clean"}, Loader: noopLoader},
	}
}

func ids(ds []Descriptor) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	all := filterFixture()

	tests := []struct {
		name string
		q    Query
		want []string
	}{
		{
			name: "empty query returns everything in order",
			q:    Query{},
			want: []string{"minimal", "corporate", "creative", "compact"},
		},
		{
			name: "category all is a no-op filter",
			q:    Query{Category: CategoryAll},
			want: []string{"minimal", "corporate", "creative", "compact"},
		},
		{
			name: "search matches name case-insensitively",
			q:    Query{SearchText: "MINI"},
			want: []string{"minimal"},
		},
		{
			name: "search matches description too",
			q:    Query{SearchText: "business"},
			want: []string{"corporate"},
		},
		{
			name: "search with surrounding whitespace",
			q:    Query{SearchText: "  clean  "},
			want: []string{"minimal"},
		},
		{
			name: "category filter is exact",
			q:    Query{Category: CategoryProfessional},
			want: []string{"corporate"},
		},
		{
			name: "tags are OR not AND",
			q:    Query{Tags: []string{"formal", "bold"}},
			want: []string{"corporate", "creative"},
		},
		{
			name: "tags match case-insensitively",
			q:    Query{Tags: []string{"CLEAN"}},
			want: []string{"minimal", "compact"},
		},
		{
			name: "criteria combine with AND",
			q:    Query{SearchText: "layout", Category: CategoryBasic, Tags: []string{"clean"}},
			want: []string{"minimal"},
		},
		{
			name: "no match yields empty, not nil panic",
			q:    Query{SearchText: "nonexistent"},
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(all, tt.q)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterIsPure(t *testing.T) {
	all := filterFixture()
	q := Query{Tags: []string{"clean"}}

	first := Filter(all, q)
	second := Filter(all, q)
	assert.Equal(t, ids(first), ids(second))

	// Input order and content are untouched.
	assert.Equal(t, []string{"minimal", "corporate", "creative", "compact"}, ids(all))
}

func TestAllTagsSortedUnion(t *testing.T) {
	got := AllTags(filterFixture())
	require.NotEmpty(t, got)
	assert.Equal(t, []string{"bold", "business", "clean", "dense", "design", "formal", "simple"}, got)
}
