package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumeforge/resumeforge/pkg/render"
)

func noopLoader() (render.Renderer, error) { return render.Fallback(), nil }

func testDescriptors() []Descriptor {
	return []Descriptor{
		{ID: "alpha", Name: "Alpha", Description: "Clean starter layout", Category: CategoryBasic, Tags: []string{"simple", "clean"}, Loader: noopLoader},
		{ID: "beta", Name: "Beta", Description: "Corporate two column", Category: CategoryProfessional, Tags: []string{"corporate"}, Loader: noopLoader},
		{ID: "gamma", Name: "Gamma", Description: "Layout for designers", Category: CategorySpecialized, Tags: []string{"creative", "clean"}, Loader: noopLoader},
	}
}

func TestNewRejectsInvalidDescriptors(t *testing.T) {
	tests := []struct {
		name string
		ds   []Descriptor
	}{
		{
			name: "empty id",
			ds:   []Descriptor{{Name: "NoID", Category: CategoryBasic, Loader: noopLoader}},
		},
		{
			name: "duplicate id",
			ds: []Descriptor{
				{ID: "dup", Name: "One", Category: CategoryBasic, Loader: noopLoader},
				{ID: "dup", Name: "Two", Category: CategoryBasic, Loader: noopLoader},
			},
		},
		{
			name: "unknown category",
			ds:   []Descriptor{{ID: "x", Name: "X", Category: Category("Fancy"), Loader: noopLoader}},
		},
		{
			name: "missing loader",
			ds:   []Descriptor{{ID: "x", Name: "X", Category: CategoryBasic}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.ds...)
			require.Error(t, err)
		})
	}
}

func TestListAllPreservesRegistrationOrder(t *testing.T) {
	r, err := New(testDescriptors()...)
	require.NoError(t, err)

	all := r.ListAll()
	require.Len(t, all, 3)
	assert.Equal(t, "alpha", all[0].ID)
	assert.Equal(t, "beta", all[1].ID)
	assert.Equal(t, "gamma", all[2].ID)

	// The returned slice is a copy; mutating it must not affect the registry.
	all[0].ID = "mutated"
	again := r.ListAll()
	assert.Equal(t, "alpha", again[0].ID)
}

func TestGetByID(t *testing.T) {
	r, err := New(testDescriptors()...)
	require.NoError(t, err)

	// Every listed descriptor is reachable by its own id.
	for _, d := range r.ListAll() {
		got, ok := r.GetByID(d.ID)
		require.True(t, ok, "id %q", d.ID)
		assert.Equal(t, d.ID, got.ID)
		assert.Equal(t, d.Name, got.Name)
	}

	_, ok := r.GetByID("no-such-template")
	assert.False(t, ok)
}

func TestCatalogRegistry(t *testing.T) {
	r, err := NewCatalogRegistry()
	require.NoError(t, err)

	assert.Equal(t, 45, r.Len())

	d, ok := r.GetByID(DefaultTemplateID)
	require.True(t, ok)
	assert.Equal(t, "Professional", d.Name)

	// Every catalog entry has a working renderer loader.
	for _, d := range r.ListAll() {
		renderer, err := d.Loader()
		require.NoError(t, err, "template %q", d.ID)
		require.NotNil(t, renderer, "template %q", d.ID)
	}
}
