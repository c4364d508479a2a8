package pattern

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/lokascript/semantic-go/errors"
	"github.com/lokascript/semantic-go/logger"
	"github.com/lokascript/semantic-go/semantic"
)

// SynthFunc synthesizes patterns for a (schema, language) pair. The
// grammar package provides the canonical implementation; the hook keeps
// this package free of a dependency on language profiles.
type SynthFunc func(schema *semantic.Schema, lang string) []*Pattern

// Traits are the per-language matching conventions the matcher needs.
type Traits struct {
	// Spaced languages tokenize on whitespace. Unspaced scripts (Japanese,
	// Chinese, Thai) are matched as direct substring anchors.
	Spaced bool
}

// Store serves the ordered pattern candidates for (language, command)
// pairs. It unions hand-authored registrations with patterns synthesized
// lazily on first access per language, cached until ClearCache.
//
// Language codes are base codes ("ja", not "ja-JP"); callers normalize
// before lookup. Concurrent readers are safe; the cache write is guarded.
type Store struct {
	mu       sync.RWMutex
	registry *semantic.Registry
	synth    SynthFunc

	hand   map[string]map[semantic.ActionType][]*Pattern
	cache  map[string]map[semantic.ActionType][]*Pattern
	traits map[string]Traits

	log *zap.SugaredLogger
}

// NewStore builds a store over a schema registry. synth may be nil, in
// which case only hand-authored patterns are served.
func NewStore(registry *semantic.Registry, synth SynthFunc) *Store {
	return &Store{
		registry: registry,
		synth:    synth,
		hand:     make(map[string]map[semantic.ActionType][]*Pattern),
		cache:    make(map[string]map[semantic.ActionType][]*Pattern),
		traits:   make(map[string]Traits),
		log:      logger.Named("pattern.store"),
	}
}

// SetTraits records a language's matching conventions. Unset languages
// default to spaced.
func (s *Store) SetTraits(lang string, t Traits) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.traits[lang] = t
}

// TraitsFor returns the matching conventions for a language.
func (s *Store) TraitsFor(lang string) Traits {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t, ok := s.traits[lang]; ok {
		return t
	}
	return Traits{Spaced: true}
}

// Register adds a hand-authored pattern. Patterns without an explicit ID
// get a deterministic one from their registration index; patterns without
// an explicit priority get the hand-authored baseline.
func (s *Store) Register(p *Pattern) error {
	if p == nil || p.Language == "" || p.Action == "" {
		return errors.Wrap(errors.ErrInvalidSchema, "pattern must carry language and action")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	byAction, ok := s.hand[p.Language]
	if !ok {
		byAction = make(map[semantic.ActionType][]*Pattern)
		s.hand[p.Language] = byAction
	}
	if p.Priority == 0 {
		p.Priority = PriorityHandAuthored
	}
	if p.ID == "" {
		p.ID = fmt.Sprintf("%s:%s:%d", p.Language, p.Action, len(byAction[p.Action]))
	}
	byAction[p.Action] = append(byAction[p.Action], p)
	return nil
}

// PatternsFor returns the candidate patterns for one (language, command)
// pair, ordered by priority descending with registration order breaking
// ties: hand-authored idioms first, synthesized fallbacks after.
//
// First access for a language synthesizes patterns for every registered
// command and caches them; this lazy build amortizes across subsequent
// lookups.
func (s *Store) PatternsFor(lang string, action semantic.ActionType) []*Pattern {
	s.ensureLanguage(lang)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*Pattern
	if byAction, ok := s.hand[lang]; ok {
		out = append(out, byAction[action]...)
	}
	if byAction, ok := s.cache[lang]; ok {
		out = append(out, byAction[action]...)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority > out[j].Priority })
	return out
}

// AllPatternsFor returns every candidate for a language across all
// commands, in the stable global candidate order the matcher consumes:
// priority descending, ties broken by action name then registration order.
func (s *Store) AllPatternsFor(lang string) []*Pattern {
	s.ensureLanguage(lang)

	s.mu.RLock()
	defer s.mu.RUnlock()

	actions := make(map[semantic.ActionType]bool)
	for a := range s.hand[lang] {
		actions[a] = true
	}
	for a := range s.cache[lang] {
		actions[a] = true
	}
	ordered := make([]semantic.ActionType, 0, len(actions))
	for a := range actions {
		ordered = append(ordered, a)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	var out []*Pattern
	for _, a := range ordered {
		out = append(out, s.hand[lang][a]...)
	}
	for _, a := range ordered {
		out = append(out, s.cache[lang][a]...)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority > out[j].Priority })
	return out
}

// Languages returns the language codes with hand-authored coverage.
func (s *Store) Languages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.hand))
	for lang := range s.hand {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

// CommandWords returns every leading command word usable in a language,
// feeding the quick-check keyword list.
func (s *Store) CommandWords(lang string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range s.AllPatternsFor(lang) {
		for _, tok := range p.Template {
			if tok.Kind != TokenLiteral {
				break
			}
			for _, form := range tok.literalForms() {
				if !seen[form] {
					seen[form] = true
					out = append(out, form)
				}
			}
			break
		}
	}
	sort.Strings(out)
	return out
}

// ClearCache drops synthesized entries for the given languages, or for
// all languages when none are named. Used by tests and by profile
// hot-reload tooling; hand-authored patterns are unaffected.
func (s *Store) ClearCache(langs ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(langs) == 0 {
		s.cache = make(map[string]map[semantic.ActionType][]*Pattern)
		return
	}
	for _, lang := range langs {
		delete(s.cache, lang)
	}
}

// ensureLanguage builds the synthesized half for a language on first
// access. Synthesis is pure over (registry, profile), so a racing rebuild
// produces an equivalent table; the lock just keeps the map write safe.
func (s *Store) ensureLanguage(lang string) {
	s.mu.RLock()
	_, built := s.cache[lang]
	s.mu.RUnlock()
	if built || s.synth == nil || s.registry == nil {
		return
	}

	byAction := make(map[semantic.ActionType][]*Pattern)
	count := 0
	for _, action := range s.registry.Actions() {
		schema, _ := s.registry.Get(action)
		patterns := s.synth(schema, lang)
		if len(patterns) > 0 {
			byAction[action] = patterns
			count += len(patterns)
		}
	}

	s.mu.Lock()
	if _, raced := s.cache[lang]; !raced {
		s.cache[lang] = byAction
	}
	s.mu.Unlock()

	s.log.Debugw("Built pattern cache",
		logger.FieldLanguage, lang,
		logger.FieldCount, count)
}
