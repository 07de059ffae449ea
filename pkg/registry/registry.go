// Package registry holds the fixed template catalog: one immutable
// descriptor per visual template, registered once at startup.
package registry

import (
	"fmt"

	"github.com/resumeforge/resumeforge/pkg/render"
)

// Category is the closed set of catalog groupings.
type Category string

const (
	CategoryBasic        Category = "Basic"
	CategoryProfessional Category = "Professional"
	CategoryIndustry     Category = "Industry"
	CategoryFormat       Category = "Format"
	CategorySpecialized  Category = "Specialized"
)

// CategoryAll is the filter sentinel matching every category.
const CategoryAll Category = "all"

var validCategories = map[Category]struct{}{
	CategoryBasic:        {},
	CategoryProfessional: {},
	CategoryIndustry:     {},
	CategoryFormat:       {},
	CategorySpecialized:  {},
}

// Loader defers renderer construction until a template is actually used.
type Loader func() (render.Renderer, error)

// Descriptor is the registry metadata record for one template. Descriptors
// are immutable after registration.
type Descriptor struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Tags        []string `json:"tags"`
	IsNew       bool     `json:"isNew,omitempty"`
	Loader      Loader   `json:"-"`
}

// Registry is process-wide read-only state mapping template ids to
// descriptors in registration order.
type Registry struct {
	order []Descriptor
	byID  map[string]int
}

// New builds a registry from descriptors. Registration is static: duplicate
// ids, unknown categories, and missing loaders are construction errors, not
// runtime surprises.
func New(descriptors ...Descriptor) (*Registry, error) {
	r := &Registry{byID: make(map[string]int, len(descriptors))}
	for _, d := range descriptors {
		if d.ID == "" {
			return nil, fmt.Errorf("registry: descriptor %q has empty id", d.Name)
		}
		if _, dup := r.byID[d.ID]; dup {
			return nil, fmt.Errorf("registry: duplicate template id %q", d.ID)
		}
		if _, ok := validCategories[d.Category]; !ok {
			return nil, fmt.Errorf("registry: template %q has unknown category %q", d.ID, d.Category)
		}
		if d.Loader == nil {
			return nil, fmt.Errorf("registry: template %q has no renderer loader", d.ID)
		}
		r.byID[d.ID] = len(r.order)
		r.order = append(r.order, d)
	}
	return r, nil
}

// ListAll returns every descriptor in registration order. The slice is a
// copy; callers cannot mutate registry state through it.
func (r *Registry) ListAll() []Descriptor {
	out := make([]Descriptor, len(r.order))
	copy(out, r.order)
	return out
}

// GetByID looks up a descriptor. An unknown id reports ok=false; callers
// fall back to the default template instead of failing.
func (r *Registry) GetByID(id string) (Descriptor, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Descriptor{}, false
	}
	return r.order[i], true
}

// Len reports the number of registered templates.
func (r *Registry) Len() int { return len(r.order) }
