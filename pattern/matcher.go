package pattern

import (
	"strings"

	"go.uber.org/zap"

	"github.com/lokascript/semantic-go/logger"
	"github.com/lokascript/semantic-go/semantic"
)

// Confidence scoring constants. The base score applies to an exact
// structural match; every skipped optional group and every role filled
// from a default (absent in input) subtracts its penalty. More omissions
// never raise confidence, and identical inputs always score identically.
const (
	ConfidenceBase        = 1.0
	SkippedGroupPenalty   = 0.05
	DefaultAppliedPenalty = 0.05
	ConfidenceFloor       = 0.1
)

// Binding is one bound role-value pair in a parse result.
type Binding struct {
	Role  semantic.Role  `json:"role"`
	Value semantic.Value `json:"value"`
}

// Result is a successful semantic parse: the matched command, its bound
// roles in template order (defaults appended), a confidence score in
// [0,1], and the winning pattern's identifier. Results are transient and
// owned by the caller.
type Result struct {
	Action     semantic.ActionType `json:"action"`
	Bindings   []Binding           `json:"bindings"`
	Confidence float64             `json:"confidence"`
	PatternID  string              `json:"patternId"`

	// SkippedGroups and DefaultsApplied record how much of the match came
	// from omission rather than input, for confidence auditing.
	SkippedGroups   int `json:"skippedGroups"`
	DefaultsApplied int `json:"defaultsApplied"`
}

// Value returns the bound value for role, if present.
func (r *Result) Value(role semantic.Role) (semantic.Value, bool) {
	for _, b := range r.Bindings {
		if b.Role == role {
			return b.Value, true
		}
	}
	return semantic.Value{}, false
}

// Matcher matches raw input text against a language's pattern candidates.
// Matching is deterministic: candidates are tried in the store's stable
// priority order and the first structural match wins — there is no
// backtracking re-ranking after a match succeeds.
type Matcher struct {
	store    *Store
	registry *semantic.Registry
	log      *zap.SugaredLogger
}

// NewMatcher builds a matcher over a pattern store and the schema
// registry used for default filling.
func NewMatcher(store *Store, registry *semantic.Registry) *Matcher {
	return &Matcher{
		store:    store,
		registry: registry,
		log:      logger.Named("pattern.matcher"),
	}
}

// Match parses text in the given language. When action is supplied, only
// that command's candidates are tried; otherwise every command registered
// for the language competes. A false return means no candidate matched
// structurally — deliberately a boolean, not an error, so batch tooling
// can tally failures without exception plumbing.
func (m *Matcher) Match(text, lang string, action ...semantic.ActionType) (*Result, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, false
	}

	var candidates []*Pattern
	if len(action) > 0 && action[0] != "" {
		candidates = m.store.PatternsFor(lang, action[0])
	} else {
		candidates = m.store.AllPatternsFor(lang)
	}
	if len(candidates) == 0 {
		return nil, false
	}

	traits := m.store.TraitsFor(lang)
	var words []string
	if traits.Spaced {
		words = tokenize(text)
	}

	for _, p := range candidates {
		var w *walkState
		var ok bool
		if traits.Spaced {
			w, ok = matchSpaced(p.Template, words)
		} else {
			w, ok = matchUnspaced(p.Template, text)
		}
		if !ok {
			continue
		}
		res := m.finalize(p, w)
		m.log.Debugw("Matched",
			logger.FieldLanguage, lang,
			logger.FieldPatternID, p.ID,
			logger.FieldConfidence, res.Confidence)
		return res, true
	}
	return nil, false
}

// finalize turns a successful structural walk into a Result: fills
// pattern- then schema-level defaults for unbound roles and scores the
// match.
func (m *Matcher) finalize(p *Pattern, w *walkState) *Result {
	res := &Result{
		Action:        p.Action,
		Bindings:      w.bindings,
		PatternID:     p.ID,
		SkippedGroups: w.skipped,
	}

	bound := make(map[semantic.Role]bool, len(res.Bindings))
	for _, b := range res.Bindings {
		bound[b.Role] = true
	}
	for _, ext := range p.Extract {
		if ext.Default != nil && !bound[ext.Role] {
			res.Bindings = append(res.Bindings, Binding{Role: ext.Role, Value: *ext.Default})
			bound[ext.Role] = true
			res.DefaultsApplied++
		}
	}
	if m.registry != nil {
		if schema, ok := m.registry.Get(p.Action); ok {
			for _, rs := range schema.Roles {
				if rs.Default != nil && !bound[rs.Role] {
					res.Bindings = append(res.Bindings, Binding{Role: rs.Role, Value: *rs.Default})
					bound[rs.Role] = true
					res.DefaultsApplied++
				}
			}
		}
	}

	confidence := ConfidenceBase -
		SkippedGroupPenalty*float64(res.SkippedGroups) -
		DefaultAppliedPenalty*float64(res.DefaultsApplied)
	if confidence < ConfidenceFloor {
		confidence = ConfidenceFloor
	}
	res.Confidence = confidence
	return res
}

// walkState accumulates bindings and skip counts during one candidate walk.
type walkState struct {
	bindings []Binding
	skipped  int
}

func (w *walkState) bind(role semantic.Role, raw string) {
	w.bindings = append(w.bindings, Binding{Role: role, Value: semantic.Infer(raw)})
}

// walkMark brackets a speculative group attempt so a failed walk can be
// rolled back without leaking partial bindings.
type walkMark struct {
	bindings int
	skipped  int
}

func (w *walkState) snapshot() walkMark {
	return walkMark{bindings: len(w.bindings), skipped: w.skipped}
}

func (w *walkState) restore(mark walkMark) {
	w.bindings = w.bindings[:mark.bindings]
	w.skipped = mark.skipped
}

// tokenize splits spaced input into words, keeping quoted strings as
// single tokens (quotes retained for shape inference).
func tokenize(text string) []string {
	var words []string
	var current strings.Builder
	var quote byte

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case quote != 0:
			current.WriteByte(c)
			if c == quote && (i == 0 || text[i-1] != '\\') {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
			current.WriteByte(c)
		case c == ' ' || c == '\t' || c == '\n':
			flush()
		default:
			current.WriteByte(c)
		}
	}
	flush()
	return words
}

// matchSpaced walks a template against whitespace-delimited words. The
// whole input must be consumed.
func matchSpaced(tokens []Token, words []string) (*walkState, bool) {
	w := &walkState{}
	pos, ok := walkWords(tokens, words, 0, w, nil)
	if !ok || pos != len(words) {
		return nil, false
	}
	return w, true
}

// walkWords matches tokens from word position pos. cont carries the
// boundary forms that follow the current token run in the enclosing
// template, so role slots inside groups stop at the right place.
func walkWords(tokens []Token, words []string, pos int, w *walkState, cont []string) (int, bool) {
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch tok.Kind {
		case TokenLiteral:
			if pos >= len(words) || !tok.matchesLiteral(words[pos]) {
				return pos, false
			}
			pos++

		case TokenRole:
			boundary := append(boundaryForms(tokens, i), cont...)
			stop := pos
			if len(boundary) == 0 {
				stop = len(words)
			} else {
				for stop < len(words) && !matchesAny(words[stop], boundary) {
					stop++
				}
			}
			if stop == pos {
				// A mandatory role must capture at least one word.
				return pos, false
			}
			w.bind(tok.Role, strings.Join(words[pos:stop], " "))
			pos = stop

		case TokenGroup:
			if !groupPresent(tok, words, pos) {
				w.skipped++
				continue
			}
			groupCont := append(boundaryForms(tokens, i), cont...)
			mark := w.snapshot()
			next, ok := walkWords(tok.Group, words, pos, w, groupCont)
			if !ok {
				// Groups without an anchor literal are attempted
				// speculatively; a failed attempt is a skip, not a
				// candidate failure.
				if firstLiteral(tok.Group) == nil {
					w.restore(mark)
					w.skipped++
					continue
				}
				return pos, false
			}
			pos = next
		}
	}
	return pos, true
}

// groupPresent reports whether an optional group's anchor literal appears
// in the remaining input. Groups without any literal are attempted only
// while input remains.
func groupPresent(group Token, words []string, pos int) bool {
	anchor := firstLiteral(group.Group)
	if anchor == nil {
		return pos < len(words)
	}
	for j := pos; j < len(words); j++ {
		if anchor.matchesLiteral(words[j]) {
			return true
		}
	}
	return false
}

// matchUnspaced walks a template against an unsegmented script: literals
// anchor as direct substrings, role slots capture the span up to the next
// anchor.
func matchUnspaced(tokens []Token, text string) (*walkState, bool) {
	w := &walkState{}
	pos, ok := walkText(tokens, text, 0, w, nil)
	if !ok {
		return nil, false
	}
	if strings.TrimSpace(text[pos:]) != "" {
		return nil, false
	}
	return w, true
}

func walkText(tokens []Token, text string, pos int, w *walkState, cont []string) (int, bool) {
	for i := 0; i < len(tokens); i++ {
		pos = skipSpace(text, pos)
		tok := tokens[i]
		switch tok.Kind {
		case TokenLiteral:
			// Longest matching form wins, so an alternative that extends
			// another ("切り替える" vs "切り替え") consumes fully.
			best := -1
			for _, form := range tok.literalForms() {
				if strings.HasPrefix(text[pos:], form) && len(form) > best {
					best = len(form)
				}
			}
			if best < 0 {
				return pos, false
			}
			pos += best

		case TokenRole:
			boundary := append(boundaryForms(tokens, i), cont...)
			stop := len(text)
			for _, form := range boundary {
				if idx := strings.Index(text[pos:], form); idx >= 0 && pos+idx < stop {
					stop = pos + idx
				}
			}
			captured := strings.TrimSpace(text[pos:stop])
			if captured == "" {
				return pos, false
			}
			w.bind(tok.Role, captured)
			pos = stop

		case TokenGroup:
			anchor := firstLiteral(tok.Group)
			present := anchor == nil && pos < len(text)
			if anchor != nil {
				for _, form := range anchor.literalForms() {
					if strings.Contains(text[pos:], form) {
						present = true
						break
					}
				}
			}
			if !present {
				w.skipped++
				continue
			}
			groupCont := append(boundaryForms(tokens, i), cont...)
			mark := w.snapshot()
			next, ok := walkText(tok.Group, text, pos, w, groupCont)
			if !ok {
				if anchor == nil {
					w.restore(mark)
					w.skipped++
					continue
				}
				return pos, false
			}
			pos = next
		}
	}
	return pos, true
}

func skipSpace(text string, pos int) int {
	for pos < len(text) && (text[pos] == ' ' || text[pos] == '\t') {
		pos++
	}
	return pos
}

// boundaryForms collects the surface forms that terminate a role slot at
// token index i: the next literal's forms (a hard boundary) plus the
// anchor literals of any optional groups in between.
func boundaryForms(tokens []Token, i int) []string {
	var forms []string
	for j := i + 1; j < len(tokens); j++ {
		switch tokens[j].Kind {
		case TokenLiteral:
			return append(forms, tokens[j].literalForms()...)
		case TokenGroup:
			if anchor := firstLiteral(tokens[j].Group); anchor != nil {
				forms = append(forms, anchor.literalForms()...)
			}
		case TokenRole:
			// Adjacent role slots have no lexical boundary; stop here and
			// let the walk fail the candidate if the split is ambiguous.
			return forms
		}
	}
	return forms
}

func firstLiteral(tokens []Token) *Token {
	for i := range tokens {
		if tokens[i].Kind == TokenLiteral {
			return &tokens[i]
		}
	}
	return nil
}

func matchesAny(word string, forms []string) bool {
	for _, form := range forms {
		if strings.EqualFold(word, form) {
			return true
		}
	}
	return false
}
