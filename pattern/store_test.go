package pattern

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokascript/semantic-go/semantic"
)

// countingSynth fabricates one low-priority pattern per schema and counts
// invocations, standing in for the grammar synthesizer.
func countingSynth(calls *int64) SynthFunc {
	return func(schema *semantic.Schema, lang string) []*Pattern {
		atomic.AddInt64(calls, 1)
		return []*Pattern{{
			ID:          lang + ":" + string(schema.Action) + ":synth",
			Language:    lang,
			Action:      schema.Action,
			Priority:    PrioritySynthesized,
			Synthesized: true,
			Template:    []Token{Lit(string(schema.Action))},
		}}
	}
}

func TestRegisterAssignsDefaults(t *testing.T) {
	s := NewStore(semantic.DefaultRegistry(), nil)

	p := &Pattern{Language: "en", Action: semantic.ActionToggle, Template: []Token{Lit("toggle")}}
	require.NoError(t, s.Register(p))
	assert.Equal(t, "en:toggle:0", p.ID)
	assert.Equal(t, PriorityHandAuthored, p.Priority)

	q := &Pattern{Language: "en", Action: semantic.ActionToggle, Template: []Token{Lit("flip")}}
	require.NoError(t, s.Register(q))
	assert.Equal(t, "en:toggle:1", q.ID)
}

func TestRegisterRejectsIncomplete(t *testing.T) {
	s := NewStore(semantic.DefaultRegistry(), nil)
	assert.Error(t, s.Register(nil))
	assert.Error(t, s.Register(&Pattern{Action: semantic.ActionToggle}))
	assert.Error(t, s.Register(&Pattern{Language: "en"}))
}

func TestPatternsForOrdersHandFirst(t *testing.T) {
	var calls int64
	s := NewStore(semantic.DefaultRegistry(), countingSynth(&calls))
	require.NoError(t, s.Register(&Pattern{
		Language: "en", Action: semantic.ActionToggle,
		Template: []Token{Lit("toggle"), Slot(rPatient)},
	}))

	out := s.PatternsFor("en", semantic.ActionToggle)
	require.Len(t, out, 2)
	assert.False(t, out[0].Synthesized, "hand-authored pattern must come first")
	assert.True(t, out[1].Synthesized)
	assert.Greater(t, out[0].Priority, out[1].Priority)
}

func TestLazySynthesisCachesPerLanguage(t *testing.T) {
	var calls int64
	reg := semantic.DefaultRegistry()
	s := NewStore(reg, countingSynth(&calls))

	s.PatternsFor("fr", semantic.ActionToggle)
	first := atomic.LoadInt64(&calls)
	assert.Equal(t, int64(len(reg.Actions())), first, "first access synthesizes every command once")

	s.PatternsFor("fr", semantic.ActionPut)
	s.AllPatternsFor("fr")
	assert.Equal(t, first, atomic.LoadInt64(&calls), "subsequent lookups hit the cache")

	s.PatternsFor("de", semantic.ActionToggle)
	assert.Equal(t, first*2, atomic.LoadInt64(&calls), "each language builds its own cache")
}

// Dropping the cache and rebuilding must reproduce the identical pattern
// sequence: synthesis is pure over (registry, language).
func TestClearCacheRebuildsDeterministically(t *testing.T) {
	var calls int64
	s := NewStore(semantic.DefaultRegistry(), countingSynth(&calls))

	ids := func() []string {
		var out []string
		for _, p := range s.AllPatternsFor("es") {
			out = append(out, p.ID)
		}
		return out
	}

	before := ids()
	require.NotEmpty(t, before)

	s.ClearCache("es")
	after := ids()
	assert.Equal(t, before, after)

	s.ClearCache()
	assert.Equal(t, before, ids())
}

func TestClearCacheKeepsHandAuthored(t *testing.T) {
	s := NewStore(semantic.DefaultRegistry(), nil)
	require.NoError(t, s.Register(&Pattern{
		Language: "en", Action: semantic.ActionToggle,
		Template: []Token{Lit("toggle"), Slot(rPatient)},
	}))

	s.ClearCache()
	assert.Len(t, s.PatternsFor("en", semantic.ActionToggle), 1)
}

func TestCommandWords(t *testing.T) {
	s := NewStore(semantic.DefaultRegistry(), nil)
	require.NoError(t, RegisterBuiltins(s))

	words := s.CommandWords("en")
	assert.Contains(t, words, "toggle")
	assert.Contains(t, words, "put")
	assert.Contains(t, words, "wait")
	assert.IsIncreasing(t, words)
}

func TestLanguages(t *testing.T) {
	s := NewStore(semantic.DefaultRegistry(), nil)
	require.NoError(t, RegisterBuiltins(s))

	langs := s.Languages()
	for _, want := range []string{"ar", "de", "en", "es", "fr", "hi", "ja", "ko", "tr", "zh"} {
		assert.Contains(t, langs, want)
	}
}

func TestTraitsDefaultSpaced(t *testing.T) {
	s := NewStore(semantic.DefaultRegistry(), nil)
	assert.True(t, s.TraitsFor("en").Spaced)

	s.SetTraits("ja", Traits{Spaced: false})
	assert.False(t, s.TraitsFor("ja").Spaced)
}
