package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokascript/semantic-go/pattern"
	"github.com/lokascript/semantic-go/semantic"
	"github.com/lokascript/semantic-go/validate"
)

const sampleCorpus = `
name: english-smoke
language: en
entries:
  - input: "toggle .active on #button"
    action: toggle
    roles:
      patient: .active
      destination: "#button"
    minConfidence: 0.99
  - input: toggle .active
    action: toggle
    roles:
      destination: me
  - input: flibber the widget
    action: toggle
`

func newRunner(t *testing.T) *Runner {
	t.Helper()
	reg := semantic.DefaultRegistry()
	store := pattern.NewStore(reg, nil)
	require.NoError(t, pattern.RegisterBuiltins(store))
	return NewRunner(pattern.NewMatcher(store, reg), validate.New(reg))
}

func TestParseInheritsLanguage(t *testing.T) {
	c, err := Parse([]byte(sampleCorpus))
	require.NoError(t, err)
	assert.Equal(t, "english-smoke", c.Name)
	require.Len(t, c.Entries, 3)
	for _, e := range c.Entries {
		assert.Equal(t, "en", e.Language)
		assert.NotEmpty(t, e.ID)
	}

	_, err = Parse([]byte("entries: {not: [a, list"))
	assert.Error(t, err)
}

func TestRunScoresEntries(t *testing.T) {
	c, err := Parse([]byte(sampleCorpus))
	require.NoError(t, err)

	report := newRunner(t).Run(c)
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.Passed)
	assert.Equal(t, 1, report.Failed)
	assert.InDelta(t, 2.0/3.0, report.PassRate(), 1e-9)

	last := report.Results[2]
	assert.False(t, last.Matched)
	assert.Equal(t, "no pattern matched", last.Failure)
}

func TestRunDetectsWrongBinding(t *testing.T) {
	c, err := Parse([]byte(`
name: mismatch
language: en
entries:
  - input: toggle .active
    action: toggle
    roles:
      patient: .other
`))
	require.NoError(t, err)

	report := newRunner(t).Run(c)
	require.Len(t, report.Results, 1)
	assert.False(t, report.Results[0].Passed)
	assert.Contains(t, report.Results[0].Failure, "expected \".other\"")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smoke.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleCorpus), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, c.Entries, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
