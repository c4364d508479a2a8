package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokascript/semantic-go/semantic"
)

// newBuiltinMatcher wires the hand-authored catalog over the builtin
// schema registry, with unspaced traits for the scripts that need them.
func newBuiltinMatcher(t *testing.T) *Matcher {
	t.Helper()
	reg := semantic.DefaultRegistry()
	store := NewStore(reg, nil)
	require.NoError(t, RegisterBuiltins(store))
	for _, lang := range []string{"ja", "zh", "ko"} {
		store.SetTraits(lang, Traits{Spaced: false})
	}
	return NewMatcher(store, reg)
}

func TestMatchEnglish(t *testing.T) {
	m := newBuiltinMatcher(t)

	tests := []struct {
		name   string
		input  string
		action semantic.ActionType
		want   map[semantic.Role]semantic.Value
	}{
		{
			name:   "toggle with destination",
			input:  "toggle .active on #button",
			action: semantic.ActionToggle,
			want: map[semantic.Role]semantic.Value{
				semantic.RolePatient:     semantic.Selector(".active"),
				semantic.RoleDestination: semantic.Selector("#button"),
			},
		},
		{
			name:   "toggle defaults destination to me",
			input:  "toggle .active",
			action: semantic.ActionToggle,
			want: map[semantic.Role]semantic.Value{
				semantic.RolePatient:     semantic.Selector(".active"),
				semantic.RoleDestination: semantic.Reference("me"),
			},
		},
		{
			name:   "put literal into selector",
			input:  `put "hello" into #output`,
			action: semantic.ActionPut,
			want: map[semantic.Role]semantic.Value{
				semantic.RolePatient:     semantic.Literal("hello"),
				semantic.RoleDestination: semantic.Selector("#output"),
			},
		},
		{
			name:   "put multiword literal",
			input:  `put "hello world" into #output`,
			action: semantic.ActionPut,
			want: map[semantic.Role]semantic.Value{
				semantic.RolePatient:     semantic.Literal("hello world"),
				semantic.RoleDestination: semantic.Selector("#output"),
			},
		},
		{
			name:   "set variable",
			input:  "set counter to 42",
			action: semantic.ActionSet,
			want: map[semantic.Role]semantic.Value{
				semantic.RoleDestination: semantic.Expression("counter"),
				semantic.RolePatient:     semantic.Literal("42"),
			},
		},
		{
			name:   "add to destination",
			input:  "add .highlight to #row",
			action: semantic.ActionAdd,
			want: map[semantic.Role]semantic.Value{
				semantic.RolePatient:     semantic.Selector(".highlight"),
				semantic.RoleDestination: semantic.Selector("#row"),
			},
		},
		{
			name:   "remove defaults source to me",
			input:  "remove .hidden",
			action: semantic.ActionRemove,
			want: map[semantic.Role]semantic.Value{
				semantic.RolePatient: semantic.Selector(".hidden"),
				semantic.RoleSource:  semantic.Reference("me"),
			},
		},
		{
			name:   "increment by amount",
			input:  "increment counter by 2",
			action: semantic.ActionIncrement,
			want: map[semantic.Role]semantic.Value{
				semantic.RolePatient:  semantic.Expression("counter"),
				semantic.RoleQuantity: semantic.Literal("2"),
			},
		},
		{
			name:   "wait for event outranks duration",
			input:  "wait for click",
			action: semantic.ActionWait,
			want: map[semantic.Role]semantic.Value{
				semantic.RoleEvent: semantic.Expression("click"),
			},
		},
		{
			name:   "transition with duration",
			input:  "transition my *opacity to 0 over 2s",
			action: semantic.ActionTransition,
			want: map[semantic.Role]semantic.Value{
				semantic.RoleStyle:    semantic.Expression("my *opacity"),
				semantic.RoleGoal:     semantic.Literal("0"),
				semantic.RoleDuration: semantic.Expression("2s"),
			},
		},
		{
			name:   "show manner with defaulted patient",
			input:  "show with *opacity",
			action: semantic.ActionShow,
			want: map[semantic.Role]semantic.Value{
				semantic.RolePatient: semantic.Reference("me"),
				semantic.RoleManner:  semantic.Expression("*opacity"),
			},
		},
		{
			name:   "repeat times idiom",
			input:  "repeat 3 times",
			action: semantic.ActionRepeat,
			want: map[semantic.Role]semantic.Value{
				semantic.RoleQuantity: semantic.Literal("3"),
				semantic.RoleLoopType: semantic.Literal("times"),
			},
		},
		{
			name:   "for each over collection",
			input:  "for each item in items",
			action: semantic.ActionFor,
			want: map[semantic.Role]semantic.Value{
				semantic.RolePatient: semantic.Expression("item"),
				semantic.RoleSource:  semantic.Expression("items"),
			},
		},
		{
			name:   "halt bare defaults event",
			input:  "halt",
			action: semantic.ActionHalt,
			want: map[semantic.Role]semantic.Value{
				semantic.RoleEvent: semantic.Reference("event"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, ok := m.Match(tt.input, "en")
			require.True(t, ok, "input should match: %s", tt.input)
			assert.Equal(t, tt.action, res.Action)
			for role, want := range tt.want {
				got, bound := res.Value(role)
				require.True(t, bound, "role %s should be bound", role)
				assert.Equal(t, want, got, "role %s", role)
			}
		})
	}
}

func TestMatchNoCandidate(t *testing.T) {
	m := newBuiltinMatcher(t)

	for _, input := range []string{"", "   ", "flibber .x", "toggle"} {
		if _, ok := m.Match(input, "en"); ok {
			t.Errorf("Match(%q) should fail", input)
		}
	}
	if _, ok := m.Match("toggle .active", "xx"); ok {
		t.Error("unknown language without patterns should not match")
	}
}

func TestMatchActionScoped(t *testing.T) {
	m := newBuiltinMatcher(t)

	res, ok := m.Match("toggle .active", "en", semantic.ActionToggle)
	require.True(t, ok)
	assert.Equal(t, semantic.ActionToggle, res.Action)

	_, ok = m.Match("toggle .active", "en", semantic.ActionPut)
	assert.False(t, ok, "scoping to another command must not match")
}

// Full structural matches score 1.0; each omission (skipped group,
// default applied) lowers the score, never raises it.
func TestConfidenceMonotonic(t *testing.T) {
	m := newBuiltinMatcher(t)

	full, ok := m.Match("toggle .active on #button", "en")
	require.True(t, ok)
	assert.InDelta(t, ConfidenceBase, full.Confidence, 1e-9)

	partial, ok := m.Match("toggle .active", "en")
	require.True(t, ok)
	assert.Less(t, partial.Confidence, full.Confidence)
	assert.InDelta(t,
		ConfidenceBase-SkippedGroupPenalty-DefaultAppliedPenalty,
		partial.Confidence, 1e-9)
	assert.Equal(t, 1, partial.SkippedGroups)
	assert.Equal(t, 1, partial.DefaultsApplied)

	// Identical inputs always score identically.
	again, ok := m.Match("toggle .active", "en")
	require.True(t, ok)
	assert.Equal(t, partial.Confidence, again.Confidence)
	assert.Equal(t, partial.PatternID, again.PatternID)
}

func TestMatchJapaneseUnspaced(t *testing.T) {
	m := newBuiltinMatcher(t)

	res, ok := m.Match(".activeを#buttonに切り替え", "ja")
	require.True(t, ok)
	assert.Equal(t, semantic.ActionToggle, res.Action)
	patient, _ := res.Value(semantic.RolePatient)
	dest, _ := res.Value(semantic.RoleDestination)
	assert.Equal(t, semantic.Selector(".active"), patient)
	assert.Equal(t, semantic.Selector("#button"), dest)

	res, ok = m.Match(".activeを切り替え", "ja")
	require.True(t, ok)
	dest, _ = res.Value(semantic.RoleDestination)
	assert.Equal(t, semantic.Reference("me"), dest)
}

// The event-handler command has two Japanese idioms; both resolve to the
// same command with the same event binding.
func TestMatchJapaneseEventIdioms(t *testing.T) {
	m := newBuiltinMatcher(t)

	for _, input := range []string{"クリックの時", "クリックしたら"} {
		res, ok := m.Match(input, "ja")
		require.True(t, ok, "input should match: %s", input)
		assert.Equal(t, semantic.ActionOn, res.Action)
		ev, bound := res.Value(semantic.RoleEvent)
		require.True(t, bound)
		assert.Equal(t, "クリック", ev.Raw)
	}
}

func TestMatchKoreanParticles(t *testing.T) {
	m := newBuiltinMatcher(t)

	res, ok := m.Match(".active를 #button에 토글", "ko")
	require.True(t, ok)
	assert.Equal(t, semantic.ActionToggle, res.Action)
	patient, _ := res.Value(semantic.RolePatient)
	dest, _ := res.Value(semantic.RoleDestination)
	assert.Equal(t, ".active", patient.Raw)
	assert.Equal(t, "#button", dest.Raw)
}

func TestMatchChineseDisposal(t *testing.T) {
	m := newBuiltinMatcher(t)

	// The 把 construction outranks the plain verb-initial form.
	res, ok := m.Match("把.card放到#zone", "zh")
	require.True(t, ok)
	assert.Equal(t, semantic.ActionPut, res.Action)
	assert.Equal(t, "zh:put:0", res.PatternID)
	patient, _ := res.Value(semantic.RolePatient)
	dest, _ := res.Value(semantic.RoleDestination)
	assert.Equal(t, ".card", patient.Raw)
	assert.Equal(t, "#zone", dest.Raw)

	res, ok = m.Match("放.card到#zone", "zh")
	require.True(t, ok)
	assert.Equal(t, semantic.ActionPut, res.Action)
}

func TestMatchGermanSeparableVerb(t *testing.T) {
	m := newBuiltinMatcher(t)

	res, ok := m.Match("schalte .active auf #button um", "de")
	require.True(t, ok)
	assert.Equal(t, semantic.ActionToggle, res.Action)
	patient, _ := res.Value(semantic.RolePatient)
	dest, _ := res.Value(semantic.RoleDestination)
	assert.Equal(t, ".active", patient.Raw)
	assert.Equal(t, "#button", dest.Raw)
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{`put "hello world" into #out`, []string{"put", `"hello world"`, "into", "#out"}},
		{"a  b\tc", []string{"a", "b", "c"}},
		{`log 'it is'`, []string{"log", "'it is'"}},
		{"", nil},
	}
	for _, tt := range tests {
		got := tokenize(tt.input)
		assert.Equal(t, tt.want, got, "tokenize(%q)", tt.input)
	}
}
