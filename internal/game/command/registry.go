package command

import (
	"fmt"
	"strings"
)

// Registry maps verb names and aliases to Verb definitions.
type Registry struct {
	verbs   map[string]*Verb // canonical name → verb
	aliases map[string]string
}

// NewRegistry creates a Registry populated with the given verbs. Names and
// aliases are stored lowercase.
//
// Precondition: No two verbs may share a canonical name or alias.
// Postcondition: Returns a Registry or an error on name/alias collisions.
func NewRegistry(verbs []Verb) (*Registry, error) {
	r := &Registry{
		verbs:   make(map[string]*Verb, len(verbs)),
		aliases: make(map[string]string),
	}

	for i := range verbs {
		v := &verbs[i]
		name := strings.ToLower(v.Name)
		if _, exists := r.verbs[name]; exists {
			return nil, fmt.Errorf("duplicate verb name: %q", name)
		}
		if _, exists := r.aliases[name]; exists {
			return nil, fmt.Errorf("verb name %q conflicts with an existing alias", name)
		}
		r.verbs[name] = v

		for _, alias := range v.Aliases {
			alias = strings.ToLower(alias)
			if _, exists := r.verbs[alias]; exists {
				return nil, fmt.Errorf("alias %q conflicts with verb name %q", alias, alias)
			}
			if existing, exists := r.aliases[alias]; exists {
				return nil, fmt.Errorf("duplicate alias %q: used by %q and %q", alias, existing, name)
			}
			r.aliases[alias] = name
		}
	}

	return r, nil
}

// DefaultRegistry creates a Registry with all built-in verbs.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(BuiltinVerbs())
	if err != nil {
		panic(fmt.Sprintf("building default registry: %v", err))
	}
	return r
}

// Resolve looks up a verb by name or alias, ignoring case.
//
// Postcondition: Returns (verb, true) if found, or (nil, false).
func (r *Registry) Resolve(input string) (*Verb, bool) {
	input = strings.ToLower(input)
	if v, ok := r.verbs[input]; ok {
		return v, true
	}
	if canonical, ok := r.aliases[input]; ok {
		return r.verbs[canonical], true
	}
	return nil, false
}

// Verbs returns all registered verbs in no particular order.
func (r *Registry) Verbs() []*Verb {
	result := make([]*Verb, 0, len(r.verbs))
	for _, v := range r.verbs {
		result = append(result, v)
	}
	return result
}

// VerbsByCategory returns verbs grouped by category.
func (r *Registry) VerbsByCategory() map[string][]*Verb {
	categories := make(map[string][]*Verb)
	for _, v := range r.verbs {
		categories[v.Category] = append(categories[v.Category], v)
	}
	return categories
}
