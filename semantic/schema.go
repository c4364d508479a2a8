package semantic

import (
	"sort"
	"sync"

	"github.com/lokascript/semantic-go/errors"
)

// RoleSpec declares how one semantic role participates in a command.
type RoleSpec struct {
	Role        Role
	Description string
	Required    bool

	// Shapes is the accepted value-shape set for this role. Inference is
	// lexical and approximate, so the validator downgrades shape
	// mismatches to warnings.
	Shapes []ValueKind

	// Default, when non-nil, fills the role if input omits it. Roles with
	// a default become optional groups in synthesized templates.
	Default *Value

	// SVOPosition and SOVPosition are word-order hints consumed by the
	// grammar synthesizer. Higher positions are placed earlier.
	SVOPosition int
	SOVPosition int

	// Markers overrides the parsing marker per language code. When a
	// language has no entry, the language profile's case default applies.
	Markers map[string]string

	// RenderMarkers overrides the output preposition per language. It may
	// legitimately differ from the parsing marker and is consumed by
	// downstream renderers, not by the matcher.
	RenderMarkers map[string]string
}

// Accepts reports whether the spec's accepted shape set contains kind.
func (rs *RoleSpec) Accepts(kind ValueKind) bool {
	for _, s := range rs.Shapes {
		if s == kind {
			return true
		}
	}
	return false
}

// RuntimeErrorDoc documents an error the downstream executor may raise for
// a command. The core carries these for tooling; it never evaluates them.
type RuntimeErrorDoc struct {
	Code         string
	Precondition string
	Recovery     string
}

// Schema declares the semantic contract of one command: the roles it
// accepts, which of them are required, and how its arguments are shaped.
type Schema struct {
	Action   ActionType
	Category string
	// Primary names the role that identifies the command's main argument;
	// it drives verb placement for primary-role-first word orders.
	Primary Role
	// HasBody marks commands that carry a nested command block (event
	// handlers, conditionals, loops).
	HasBody bool
	Roles   []RoleSpec
	Errors  []RuntimeErrorDoc
}

// Spec returns the RoleSpec for role, if declared.
func (s *Schema) Spec(role Role) (*RoleSpec, bool) {
	for i := range s.Roles {
		if s.Roles[i].Role == role {
			return &s.Roles[i], true
		}
	}
	return nil, false
}

// RequiredRoles returns the declared roles with Required set, in
// declaration order.
func (s *Schema) RequiredRoles() []Role {
	var out []Role
	for _, rs := range s.Roles {
		if rs.Required {
			out = append(out, rs.Role)
		}
	}
	return out
}

// validateRoles rejects structurally broken schemas at registration time.
// A duplicate role within one schema is a programmer error, not input.
func (s *Schema) validateRoles() error {
	seen := make(map[Role]bool, len(s.Roles))
	for _, rs := range s.Roles {
		if seen[rs.Role] {
			return errors.Wrapf(errors.ErrInvalidSchema,
				"command %q declares role %q twice", s.Action, rs.Role)
		}
		seen[rs.Role] = true
	}
	return nil
}

// Registry holds command schemas keyed by action. Reads vastly outnumber
// writes; writes happen at startup and through plugin registration.
type Registry struct {
	mu      sync.RWMutex
	schemas map[ActionType]*Schema
}

// NewRegistry returns an empty registry. Most callers want
// DefaultRegistry, which is preloaded with the built-in command catalog.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[ActionType]*Schema)}
}

// Register adds or overwrites the schema for its action. Overwrite is
// idempotent and intended for plugin extension. Registration fails fast on
// malformed schemas (duplicate role declarations).
func (r *Registry) Register(schema *Schema) error {
	if schema == nil || schema.Action == "" {
		return errors.Wrap(errors.ErrInvalidSchema, "schema must name an action")
	}
	if err := schema.validateRoles(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schemas[schema.Action] = schema
	return nil
}

// Get returns the schema for action, if registered.
func (r *Registry) Get(action ActionType) (*Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schemas[action]
	return s, ok
}

// Actions returns the registered action types in lexical order. The sort
// keeps candidate iteration stable across builds.
func (r *Registry) Actions() []ActionType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]ActionType, 0, len(r.schemas))
	for a := range r.schemas {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
