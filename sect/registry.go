package sect

import (
	"fmt"

	"github.com/dmgtools/sectkit/internal/bucketmap"
)

// Registry owns all Section records of one link, keyed by name. It enforces
// name uniqueness at insertion time and otherwise has no ordering invariant.
// A Registry is populated once per link and torn down (or Cleared) at the
// end; it is not safe for concurrent use.
type Registry struct {
	store bucketmap.Map
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Insert adds s to the registry. A duplicate name fails with an
// ErrKindDuplicate error and leaves the registry unchanged. The returned
// collided flag is an advisory observation from the underlying store (its
// hash bucket was already occupied) and never indicates a failure.
func (r *Registry) Insert(s *Section) (collided bool, err error) {
	if _, exists := r.store.Lookup(s.Name); exists {
		return false, &Error{
			Kind: ErrKindDuplicate,
			Msg:  fmt.Sprintf("section name %q is already in use", s.Name),
			Err:  ErrDuplicateName,
		}
	}
	return r.store.Insert(s.Name, s), nil
}

// Lookup returns the section registered under name, or nil.
func (r *Registry) Lookup(name string) *Section {
	v, ok := r.store.Lookup(name)
	if !ok {
		return nil
	}
	return v.(*Section)
}

// ForEach invokes visit once per registered section, in unspecified order.
// The visitor may mutate the section in place but must not insert or remove
// sections during iteration.
func (r *Registry) ForEach(visit func(*Section)) {
	r.store.ForEach(func(_ string, v any) {
		visit(v.(*Section))
	})
}

// Len returns the number of registered sections.
func (r *Registry) Len() int { return r.store.Len() }

// Clear removes all sections, resetting the registry for the next link.
func (r *Registry) Clear() { r.store.Clear() }
