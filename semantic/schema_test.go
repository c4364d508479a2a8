package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokascript/semantic-go/errors"
)

func TestRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	schema := &Schema{
		Action:  ActionToggle,
		Primary: RolePatient,
		Roles: []RoleSpec{
			{Role: RolePatient, Required: true, Shapes: []ValueKind{KindSelector}},
		},
	}
	require.NoError(t, r.Register(schema))

	got, ok := r.Get(ActionToggle)
	require.True(t, ok)
	assert.Equal(t, ActionToggle, got.Action)

	_, ok = r.Get(ActionFetch)
	assert.False(t, ok)
}

func TestRegisterOverwriteIsIdempotent(t *testing.T) {
	r := NewRegistry()
	first := &Schema{Action: ActionLog, Roles: []RoleSpec{{Role: RolePatient}}}
	second := &Schema{Action: ActionLog, Roles: []RoleSpec{{Role: RolePatient}, {Role: RoleDestination}}}

	require.NoError(t, r.Register(first))
	require.NoError(t, r.Register(second))

	got, ok := r.Get(ActionLog)
	require.True(t, ok)
	assert.Len(t, got.Roles, 2, "later registration wins")
}

func TestRegisterDuplicateRoleFailsFast(t *testing.T) {
	r := NewRegistry()
	err := r.Register(&Schema{
		Action: ActionAdd,
		Roles: []RoleSpec{
			{Role: RolePatient},
			{Role: RolePatient},
		},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidSchema))
}

func TestRegisterNilOrUnnamed(t *testing.T) {
	r := NewRegistry()
	assert.Error(t, r.Register(nil))
	assert.Error(t, r.Register(&Schema{}))
}

func TestActionsSorted(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&Schema{Action: ActionToggle}))
	require.NoError(t, r.Register(&Schema{Action: ActionAdd}))
	require.NoError(t, r.Register(&Schema{Action: ActionPut}))

	assert.Equal(t, []ActionType{ActionAdd, ActionPut, ActionToggle}, r.Actions())
}

func TestDefaultRegistryCatalog(t *testing.T) {
	r := DefaultRegistry()

	// Spot-check a few commands the language cannot live without.
	for _, action := range []ActionType{
		ActionToggle, ActionAdd, ActionPut, ActionOn, ActionIf,
		ActionFor, ActionFetch, ActionIncrement, ActionBehavior,
	} {
		_, ok := r.Get(action)
		assert.True(t, ok, "missing builtin schema for %q", action)
	}

	// toggle destination defaults to me so `toggle .active` parses alone.
	toggle, _ := r.Get(ActionToggle)
	dest, ok := toggle.Spec(RoleDestination)
	require.True(t, ok)
	require.NotNil(t, dest.Default)
	assert.Equal(t, Reference("me"), *dest.Default)

	// The builtin catalog must itself be lint-clean for shape ambiguity.
	for _, issue := range ValidateAllSchemas(r) {
		assert.NotEqual(t, LintAmbiguousShapes, issue.Code, "builtin %s", issue)
	}
}

func TestRequiredRoles(t *testing.T) {
	r := DefaultRegistry()
	put, _ := r.Get(ActionPut)
	assert.Equal(t, []Role{RolePatient, RoleDestination}, put.RequiredRoles())
}
