// Package lokascript wires the semantic vocabulary, pattern store,
// grammar synthesizer, matcher and role validator into one engine for
// parsing multilingual DSL commands.
package lokascript

import (
	"sync"

	"github.com/lokascript/semantic-go/grammar"
	"github.com/lokascript/semantic-go/pattern"
	"github.com/lokascript/semantic-go/semantic"
	"github.com/lokascript/semantic-go/validate"
)

// Engine is the assembled parsing pipeline. It is safe for concurrent
// use; all mutation happens through the registry and store, which guard
// their own state.
type Engine struct {
	registry  *semantic.Registry
	store     *pattern.Store
	matcher   *pattern.Matcher
	validator *validate.Validator
}

// NewEngine assembles an engine over the built-in command catalog, the
// hand-authored pattern set, and profile-driven synthesis for every
// language the profile table covers.
func NewEngine() (*Engine, error) {
	registry := semantic.DefaultRegistry()
	store := pattern.NewStore(registry, grammar.Synthesizer())
	if err := pattern.RegisterBuiltins(store); err != nil {
		return nil, err
	}

	profiles, err := grammar.Profiles()
	if err != nil {
		return nil, err
	}
	for code, p := range profiles {
		store.SetTraits(code, pattern.Traits{Spaced: p.Spaced})
	}

	return &Engine{
		registry:  registry,
		store:     store,
		matcher:   pattern.NewMatcher(store, registry),
		validator: validate.New(registry),
	}, nil
}

// Result pairs a structural match with its role validation. Confidence is
// the match score after the validation adjustment, clamped to [0, 1].
type Result struct {
	Match      *pattern.Result
	Validation validate.Result
	Confidence float64
}

// Parse matches and validates one command utterance. Language codes are
// normalized ("en-US" resolves to the "en" patterns). The boolean is
// false when no pattern matched at all; validation errors still return
// true with Validation carrying the findings.
func (e *Engine) Parse(text, lang string, action ...semantic.ActionType) (*Result, bool) {
	match, ok := e.matcher.Match(text, grammar.Normalize(lang), action...)
	if !ok {
		return nil, false
	}
	validation := e.validator.ValidateResult(match)

	confidence := match.Confidence + validation.ConfidenceAdjustment
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}
	return &Result{Match: match, Validation: validation, Confidence: confidence}, true
}

// Match runs the pattern matcher without role validation.
func (e *Engine) Match(text, lang string, action ...semantic.ActionType) (*pattern.Result, bool) {
	return e.matcher.Match(text, grammar.Normalize(lang), action...)
}

// QuickCheck runs the cheap pre-parse validation tier: leading command
// word, balanced quotes and brackets. It never consults patterns beyond
// the language's command-word list.
func (e *Engine) QuickCheck(script, lang string) semantic.QuickCheckResult {
	return semantic.QuickCheck(script, e.store.CommandWords(grammar.Normalize(lang)))
}

// Lint runs the schema linter over every registered command.
func (e *Engine) Lint() []semantic.LintIssue {
	return semantic.ValidateAllSchemas(e.registry)
}

// Registry exposes the schema registry for plugin command registration.
func (e *Engine) Registry() *semantic.Registry { return e.registry }

// Store exposes the pattern store for custom pattern registration.
func (e *Engine) Store() *pattern.Store { return e.store }

// Matcher exposes the pattern matcher for batch tooling.
func (e *Engine) Matcher() *pattern.Matcher { return e.matcher }

// Validator exposes the role validator.
func (e *Engine) Validator() *validate.Validator { return e.validator }

// ClearCache drops synthesized patterns so profile changes take effect.
func (e *Engine) ClearCache(langs ...string) { e.store.ClearCache(langs...) }

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
	defaultErr    error
)

// Default returns the shared engine, built on first use.
func Default() (*Engine, error) {
	defaultOnce.Do(func() {
		defaultEngine, defaultErr = NewEngine()
	})
	return defaultEngine, defaultErr
}

// Parse parses with the shared engine. It returns false both when no
// pattern matches and when the engine failed to build.
func Parse(text, lang string) (*Result, bool) {
	e, err := Default()
	if err != nil {
		return nil, false
	}
	return e.Parse(text, lang)
}
