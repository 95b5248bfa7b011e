package content

import (
	"github.com/pkg/errors"
)

// Registry resolves content type identifiers to their Type implementation.
type Registry struct {
	types []Type
	byKey map[string]Type
}

// NewRegistry builds the registry with every manageable content category.
func NewRegistry() *Registry {
	r := &Registry{byKey: make(map[string]Type)}

	for _, t := range []Type{
		Projects{},
		Services{},
		BlogPosts{},
		Testimonials{},
		Statistics{},
		TeamMembers{},
		ClientLogos{},
		Certifications{},
	} {
		r.types = append(r.types, t)
		r.byKey[t.Name()] = t
	}

	return r
}

// Lookup returns the Type for an identifier.
func (r *Registry) Lookup(name string) (Type, error) {
	t, ok := r.byKey[name]
	if !ok {
		return nil, errors.Wrap(ErrUnknownContentType, name)
	}

	return t, nil
}

// All returns every registered type in registration order.
func (r *Registry) All() []Type {
	return r.types
}
