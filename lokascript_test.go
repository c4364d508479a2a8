package lokascript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokascript/semantic-go/semantic"
	"github.com/lokascript/semantic-go/validate"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine()
	require.NoError(t, err)
	return e
}

func TestEngineParse(t *testing.T) {
	e := newEngine(t)

	res, ok := e.Parse("toggle .active on #button", "en")
	require.True(t, ok)
	assert.Equal(t, semantic.ActionToggle, res.Match.Action)
	assert.True(t, res.Validation.Valid)
	assert.InDelta(t, 1.0, res.Confidence, 1e-9)

	patient, _ := res.Match.Value(semantic.RolePatient)
	assert.Equal(t, semantic.Selector(".active"), patient)
}

func TestEngineParseNormalizesLanguage(t *testing.T) {
	e := newEngine(t)

	res, ok := e.Parse("toggle .active", "en-US")
	require.True(t, ok)
	dest, _ := res.Match.Value(semantic.RoleDestination)
	assert.Equal(t, semantic.Reference("me"), dest)
}

// Portuguese has no hand-authored toggle pattern; the profile-driven
// synthesizer supplies it.
func TestEngineParseSynthesizedFallback(t *testing.T) {
	e := newEngine(t)

	res, ok := e.Parse("alternar .active", "pt")
	require.True(t, ok)
	assert.Equal(t, semantic.ActionToggle, res.Match.Action)
	assert.Equal(t, "pt:toggle:synth", res.Match.PatternID)

	patient, _ := res.Match.Value(semantic.RolePatient)
	assert.Equal(t, ".active", patient.Raw)
	dest, _ := res.Match.Value(semantic.RoleDestination)
	assert.Equal(t, semantic.Reference("me"), dest)
}

func TestEngineParseValidationDegradesConfidence(t *testing.T) {
	e := newEngine(t)

	// toggle's patient accepts selectors; an expression degrades the score
	// via an INVALID_TYPE warning but still parses.
	res, ok := e.Parse("toggle counter", "en")
	require.True(t, ok)
	assert.True(t, res.Validation.Valid)
	require.Len(t, res.Validation.Warnings, 1)
	assert.Equal(t, validate.CodeInvalidType, res.Validation.Warnings[0].Code)
	assert.Less(t, res.Confidence, res.Match.Confidence)
}

func TestEngineQuickCheck(t *testing.T) {
	e := newEngine(t)

	ok := e.QuickCheck("toggle .active", "en")
	assert.True(t, ok.Valid)

	bad := e.QuickCheck(`put "unterminated into #out`, "en")
	assert.False(t, bad.Valid)
}

func TestEngineLintBuiltinsClean(t *testing.T) {
	assert.Empty(t, newEngine(t).Lint())
}

func TestEngineClearCacheDeterministic(t *testing.T) {
	e := newEngine(t)

	first, ok := e.Parse("alternar .active", "pt")
	require.True(t, ok)

	e.ClearCache("pt")
	second, ok := e.Parse("alternar .active", "pt")
	require.True(t, ok)

	assert.Equal(t, first.Match.PatternID, second.Match.PatternID)
	assert.Equal(t, first.Confidence, second.Confidence)
}

func TestDefaultEngineShared(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)
	b, err := Default()
	require.NoError(t, err)
	assert.Same(t, a, b)

	res, ok := Parse("toggle .active", "en")
	require.True(t, ok)
	assert.Equal(t, semantic.ActionToggle, res.Match.Action)
}
