package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokascript/semantic-go/errors"
)

func TestProfilesEmbedded(t *testing.T) {
	table, err := Profiles()
	require.NoError(t, err)
	require.NotEmpty(t, table)

	for _, code := range []string{"en", "es", "ja", "ko", "zh", "ar", "tr", "hi"} {
		p, ok := table[code]
		require.True(t, ok, "profile %s should be embedded", code)
		assert.Equal(t, code, p.Code)
		assert.NotEmpty(t, p.Name)
		assert.Contains(t, []WordOrder{SVO, SOV, VSO}, p.Order)
	}

	assert.Equal(t, SOV, table["ja"].Order)
	assert.False(t, table["ja"].Spaced)
	assert.True(t, table["ja"].MarkersAfter)
	assert.Equal(t, VSO, table["ar"].Order)
	assert.True(t, table["en"].Spaced)
}

func TestVerbFor(t *testing.T) {
	table, err := Profiles()
	require.NoError(t, err)

	es := table["es"]
	assert.Equal(t, []string{"añadir", "agregar"}, es.VerbFor("add"))
	// Missing entries fall back to the action name.
	assert.Equal(t, []string{"morph"}, es.VerbFor("morph"))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"en", "en"},
		{"en-US", "en"},
		{"pt_BR", "pt"},
		{"JA", "ja"},
		{"zh-Hant-TW", "zh"},
		{" fr ", "fr"},
		{"not a tag!", "not a tag!"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestProfileForUnknown(t *testing.T) {
	_, err := ProfileFor("zz")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnknownLanguage))
}

func TestProfileForRegionalVariant(t *testing.T) {
	p, err := ProfileFor("en-GB")
	require.NoError(t, err)
	assert.Equal(t, "en", p.Code)
}

func TestParseProfilesOverride(t *testing.T) {
	table, err := ParseProfiles([]byte(`
[languages.xx]
name = "Test"
order = "SOV"
spaced = true
markers_after = true
[languages.xx.markers]
destination = "XX"
`))
	require.NoError(t, err)
	p := table["xx"]
	require.NotNil(t, p)
	assert.Equal(t, "xx", p.Code)
	assert.Equal(t, SOV, p.Order)
	assert.Equal(t, "XX", p.MarkerFor("destination"))

	_, err = ParseProfiles([]byte("not toml ["))
	assert.Error(t, err)
}
