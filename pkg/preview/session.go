// Package preview owns the live-preview state for one editing session:
// which template is active, the asynchronously resolved renderer, and the
// last rendered document.
package preview

import (
	"context"
	"fmt"
	"sync"

	"github.com/resumeforge/resumeforge/pkg/registry"
	"github.com/resumeforge/resumeforge/pkg/render"
	"github.com/resumeforge/resumeforge/pkg/resume"
)

// State is the lifecycle of the active template load.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateLoaded  State = "loaded"
	StateError   State = "error"
)

// Snapshot is an immutable view of the session handed to subscribers.
type Snapshot struct {
	State      State
	TemplateID string
	Document   render.Document
	Warning    string
}

// Session is the single owning controller of preview state. All mutation
// goes through it; consumers observe changes via Subscribe. Renderer loads
// are asynchronous and follow last-request-wins: a result only commits if
// no newer Select superseded it. Loads are never aborted, their results are
// simply discarded when stale.
type Session struct {
	mu         sync.Mutex
	reg        *registry.Registry
	fallback   render.Renderer
	data       resume.ResumeData
	state      State
	templateID string
	renderer   render.Renderer
	doc        render.Document
	warning    string
	generation uint64
	observers  []func(Snapshot)
}

// NewSession starts an idle session over the given registry.
func NewSession(reg *registry.Registry, data resume.ResumeData) *Session {
	return &Session{
		reg:      reg,
		fallback: render.Fallback(),
		data:     data,
		state:    StateIdle,
	}
}

// Subscribe registers an observer called after every committed change.
// Observers run outside the session lock.
func (s *Session) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

// Select makes id the active template and starts resolving its renderer.
// A newer Select supersedes any in-flight load for an older id.
func (s *Session) Select(id string) {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.templateID = id
	s.state = StateLoading
	s.warning = ""
	s.mu.Unlock()

	go func() {
		r, err := s.load(id)
		s.commit(gen, id, r, err)
	}()
}

// Load is the synchronous form of Select: it resolves id, commits the
// result and returns the resulting snapshot. The same supersession rule
// applies, so a concurrent newer Select wins and Load's result is the
// newer state.
func (s *Session) Load(ctx context.Context, id string) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return s.Snapshot(), err
	}
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.templateID = id
	s.state = StateLoading
	s.warning = ""
	s.mu.Unlock()

	r, err := s.load(id)
	s.commit(gen, id, r, err)
	return s.Snapshot(), nil
}

func (s *Session) load(id string) (render.Renderer, error) {
	d, ok := s.reg.GetByID(id)
	if !ok {
		return nil, fmt.Errorf("unknown template %q", id)
	}
	return d.Loader()
}

// commit applies a finished load unless a newer Select made it stale.
func (s *Session) commit(gen uint64, id string, r render.Renderer, err error) {
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return
	}
	if err != nil {
		// Never show a blank preview: keep the warning visible and fall
		// back to the default renderer with the same data.
		s.state = StateError
		s.warning = fmt.Sprintf("template %q could not be loaded: %v", id, err)
		s.renderer = s.fallback
	} else {
		s.state = StateLoaded
		s.renderer = r
	}
	s.rerenderLocked()
	snap := s.snapshotLocked()
	observers := append([]func(Snapshot){}, s.observers...)
	s.mu.Unlock()

	for _, fn := range observers {
		fn(snap)
	}
}

// SetData replaces the session's resume data and re-renders with the
// current renderer.
func (s *Session) SetData(data resume.ResumeData) {
	s.mu.Lock()
	s.data = data
	s.rerenderLocked()
	snap := s.snapshotLocked()
	observers := append([]func(Snapshot){}, s.observers...)
	s.mu.Unlock()

	for _, fn := range observers {
		fn(snap)
	}
}

// rerenderLocked renders the effective data (placeholder substitution for
// unnamed profiles) through the committed renderer. Render failures demote
// to the fallback renderer rather than blanking the preview.
func (s *Session) rerenderLocked() {
	if s.renderer == nil {
		return
	}
	doc, err := s.renderer.Render(resume.EffectiveData(s.data))
	if err != nil {
		s.state = StateError
		s.warning = fmt.Sprintf("render failed: %v", err)
		doc, err = s.fallback.Render(resume.EffectiveData(s.data))
		if err != nil {
			return
		}
	}
	s.doc = doc
}

// Snapshot returns the current session view.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		State:      s.state,
		TemplateID: s.templateID,
		Document:   s.doc,
		Warning:    s.warning,
	}
}
