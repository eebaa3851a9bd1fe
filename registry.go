package ljschema

import "sync"

// Registry is a mapping from absolute URI to the root Located JSON Tree of
// a registered schema, used to resolve "$ref". It is shared mutable state
// with last-writer-wins semantics; callers manage lifetimes (see
// [Registry.Unregister]).
//
// The zero value is not usable; construct one with [NewRegistry].
type Registry struct {
	mu sync.Mutex
	m  map[string]*Node
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{m: map[string]*Node{}}
}

// DefaultRegistry is the process-wide registry used by the package-level
// [RegisterSchema] and [Validate] functions. Concurrent callers that rely
// on it should read the race caveat on [Validate].
var DefaultRegistry = NewRegistry()

// Register builds the Located JSON Tree for schema rooted at uri and
// stores it under uri, overwriting any previous registration.
func (r *Registry) Register(schema any, uri string) (*Node, error) {
	root, err := Build(schema, uri)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	r.m[uri] = root
	r.mu.Unlock()
	return root, nil
}

// Lookup returns the root node registered under uri, and whether it was
// found.
func (r *Registry) Lookup(uri string) (*Node, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.m[uri]
	return n, ok
}

// Unregister removes any schema registered under uri.
func (r *Registry) Unregister(uri string) {
	r.mu.Lock()
	delete(r.m, uri)
	r.mu.Unlock()
}

// RegisterSchema registers schema under uri in the process-wide
// [DefaultRegistry]. It persists until overwritten or explicitly
// unregistered, per §3.2.
func RegisterSchema(schema any, uri string) error {
	_, err := DefaultRegistry.Register(schema, uri)
	return err
}

// UnregisterSchema removes a schema registered under uri from the
// [DefaultRegistry].
func UnregisterSchema(uri string) {
	DefaultRegistry.Unregister(uri)
}
