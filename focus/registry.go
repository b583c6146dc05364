package focus

import (
	"fmt"
	"sync"
)

// Focusable is the pure data record for one navigable element. Behavior lives
// in the Handler registered alongside it, so snapshots can be inspected and
// compared without triggering side effects.
type Focusable struct {
	ID       string
	Pos      Rect
	Group    string
	Disabled bool
	Priority int
}

// Handler carries an element's behavior. Register one per element; it is
// resolved by id when the session dispatches.
type Handler interface {
	// OnActivate runs the element's action.
	OnActivate()
	// OnNavigate may consume a navigation before the engine resolves it.
	// Returning true suppresses the focus change for that direction, e.g. a
	// scrollable list eating Down until its cursor reaches the bottom.
	OnNavigate(dir Direction) bool
}

// BaseHandler is a no-op Handler for embedding.
type BaseHandler struct{}

func (BaseHandler) OnActivate()               {}
func (BaseHandler) OnNavigate(Direction) bool { return false }

// ActivateFunc adapts a plain callback into a Handler.
type ActivateFunc func()

func (f ActivateFunc) OnActivate() {
	if f != nil {
		f()
	}
}

func (ActivateFunc) OnNavigate(Direction) bool { return false }

type entry struct {
	rec Focusable
	h   Handler
}

// Registry holds the currently mounted focusables, keyed by id. Insertion
// order is preserved so navigation tie-breaks stay reproducible.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry
	order   []string
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*entry)}
}

// Register adds or replaces a record. Replacing an id keeps its original
// insertion slot. An empty id or a non-finite rect is a caller bug and
// panics; runtime conditions never reach this path.
func (r *Registry) Register(f Focusable, h Handler) {
	if f.ID == "" {
		panic("focus: register with empty id")
	}
	if !f.Pos.finite() {
		panic(fmt.Sprintf("focus: register %q with bad rect %+v", f.ID, f.Pos))
	}
	if h == nil {
		h = BaseHandler{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[f.ID]; ok {
		e.rec = f
		e.h = h
		return
	}
	r.entries[f.ID] = &entry{rec: f, h: h}
	r.order = append(r.order, f.ID)
}

// Unregister removes the record with the given id. Unknown ids are ignored.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return
	}
	delete(r.entries, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// UpdatePosition refreshes a record's rect. Keyed lookup, O(1); safe to call
// on every layout or scroll tick.
func (r *Registry) UpdatePosition(id string, pos Rect) {
	if !pos.finite() {
		panic(fmt.Sprintf("focus: update %q with bad rect %+v", id, pos))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[id]; ok {
		e.rec.Pos = pos
	}
}

// Get returns a copy of the record with the given id.
func (r *Registry) Get(id string) (Focusable, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[id]; ok {
		return e.rec, true
	}
	return Focusable{}, false
}

// Snapshot returns copies of all records in insertion order. Disabled
// filtering happens at read time in the engine, not here.
func (r *Registry) Snapshot() []Focusable {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Focusable, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entries[id].rec)
	}
	return out
}

// Len returns the number of registered records.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// handler resolves the behavior registered for id, or nil.
func (r *Registry) handler(id string) Handler {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[id]; ok {
		return e.h
	}
	return nil
}
