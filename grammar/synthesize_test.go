package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokascript/semantic-go/pattern"
	"github.com/lokascript/semantic-go/semantic"
)

func toggleSchema(t *testing.T) *semantic.Schema {
	t.Helper()
	schema, ok := semantic.DefaultRegistry().Get(semantic.ActionToggle)
	require.True(t, ok)
	return schema
}

func profileFor(t *testing.T, code string) *Profile {
	t.Helper()
	p, err := ProfileFor(code)
	require.NoError(t, err)
	return p
}

func TestSynthesizeSVO(t *testing.T) {
	out := Synthesize(toggleSchema(t), profileFor(t, "en"))
	require.Len(t, out, 1)
	p := out[0]

	assert.Equal(t, "en:toggle:synth", p.ID)
	assert.True(t, p.Synthesized)
	assert.Equal(t, pattern.PrioritySynthesized, p.Priority)
	assert.Less(t, p.Priority, pattern.PriorityHandAuthored)

	// verb, patient slot, optional marked destination
	require.Len(t, p.Template, 3)
	assert.Equal(t, pattern.TokenLiteral, p.Template[0].Kind)
	assert.Equal(t, "toggle", p.Template[0].Text)
	assert.Equal(t, pattern.TokenRole, p.Template[1].Kind)
	assert.Equal(t, semantic.RolePatient, p.Template[1].Role)

	group := p.Template[2]
	require.Equal(t, pattern.TokenGroup, group.Kind, "defaulted role must be optional")
	require.Len(t, group.Group, 2)
	// toggle overrides the generic destination marker with "on"
	assert.Equal(t, "on", group.Group[0].Text)
	assert.Equal(t, semantic.RoleDestination, group.Group[1].Role)
}

func TestSynthesizeSOVMarkersAfter(t *testing.T) {
	out := Synthesize(toggleSchema(t), profileFor(t, "ja"))
	require.Len(t, out, 1)
	p := out[0]

	// patient+particle, optional destination+particle, verb last
	require.Len(t, p.Template, 4)
	assert.Equal(t, semantic.RolePatient, p.Template[0].Role)
	assert.Equal(t, "を", p.Template[1].Text)

	group := p.Template[2]
	require.Equal(t, pattern.TokenGroup, group.Kind)
	assert.Equal(t, semantic.RoleDestination, group.Group[0].Role)
	assert.Equal(t, "に", group.Group[1].Text)

	verb := p.Template[3]
	assert.Equal(t, pattern.TokenLiteral, verb.Kind)
	assert.Equal(t, "切り替え", verb.Text)
	assert.Contains(t, verb.Alternatives, "切り替える")
}

func TestSynthesizeVSO(t *testing.T) {
	out := Synthesize(toggleSchema(t), profileFor(t, "ar"))
	require.Len(t, out, 1)
	p := out[0]

	require.NotEmpty(t, p.Template)
	verb := p.Template[0]
	assert.Equal(t, pattern.TokenLiteral, verb.Kind)
	assert.Equal(t, "بدّل", verb.Text)
}

func TestSynthesizeExtraction(t *testing.T) {
	p := Synthesize(toggleSchema(t), profileFor(t, "ja"))[0]

	byRole := make(map[semantic.Role]pattern.Extraction)
	for _, ext := range p.Extract {
		byRole[ext.Role] = ext
	}

	patient := byRole[semantic.RolePatient]
	assert.Equal(t, pattern.ByMarker, patient.Source)
	assert.Equal(t, []string{"を"}, patient.Markers)

	dest := byRole[semantic.RoleDestination]
	require.NotNil(t, dest.Default)
	assert.Equal(t, semantic.Reference("me"), *dest.Default)
}

// Synthesis is pure: identical inputs yield structurally identical
// patterns, and the schema is left untouched.
func TestSynthesizeDeterministic(t *testing.T) {
	schema := toggleSchema(t)
	profile := profileFor(t, "ja")

	first := Synthesize(schema, profile)
	second := Synthesize(schema, profile)
	assert.Equal(t, first, second)

	rolesAfter := make([]semantic.Role, 0, len(schema.Roles))
	for _, rs := range schema.Roles {
		rolesAfter = append(rolesAfter, rs.Role)
	}
	assert.Equal(t, []semantic.Role{semantic.RolePatient, semantic.RoleDestination}, rolesAfter)
}

func TestSynthesizeNilInputs(t *testing.T) {
	assert.Nil(t, Synthesize(nil, profileFor(t, "en")))
	assert.Nil(t, Synthesize(toggleSchema(t), nil))
}

func TestSynthesizerHook(t *testing.T) {
	synth := Synthesizer()

	out := synth(toggleSchema(t), "fr")
	require.Len(t, out, 1)
	assert.Equal(t, "fr:toggle:synth", out[0].ID)

	assert.Nil(t, synth(toggleSchema(t), "zz"), "unknown language synthesizes nothing")
}
