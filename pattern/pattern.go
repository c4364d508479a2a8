// Package pattern holds the surface-syntax side of the language: per
// (language, command) template patterns, the store that serves them, and
// the matcher that binds raw input text to semantic roles.
//
// Patterns are declarative. A template is an ordered token sequence of
// literals (with alternatives), role slots, and optional groups; matching
// walks the tokens against input with no backtracking across candidates —
// first structural match wins.
package pattern

import (
	"fmt"
	"strings"

	"github.com/lokascript/semantic-go/semantic"
)

// TokenKind discriminates template tokens.
type TokenKind int

const (
	// TokenLiteral matches exact surface text or one of its alternatives.
	TokenLiteral TokenKind = iota
	// TokenRole greedily captures a span and binds it to a semantic role.
	TokenRole
	// TokenGroup is an optional sub-sequence, skippable as a whole when
	// its opening literal is absent.
	TokenGroup
)

// Token is one element of a template.
type Token struct {
	Kind TokenKind

	// Literal token fields
	Text         string
	Alternatives []string

	// Role slot field
	Role semantic.Role

	// Optional group contents
	Group []Token
}

// Lit builds a literal token with optional alternative spellings.
func Lit(text string, alternatives ...string) Token {
	return Token{Kind: TokenLiteral, Text: text, Alternatives: alternatives}
}

// Slot builds a role-slot token.
func Slot(role semantic.Role) Token {
	return Token{Kind: TokenRole, Role: role}
}

// Opt builds an optional group from sub-tokens. Groups usually open with
// a literal that anchors their presence; a group with no literal at all
// is attempted speculatively and skipped when the attempt fails.
func Opt(tokens ...Token) Token {
	return Token{Kind: TokenGroup, Group: tokens}
}

// matchesLiteral reports whether word matches the literal's text or one of
// its alternatives, case-folded.
func (t Token) matchesLiteral(word string) bool {
	if strings.EqualFold(t.Text, word) {
		return true
	}
	for _, alt := range t.Alternatives {
		if strings.EqualFold(alt, word) {
			return true
		}
	}
	return false
}

// literalForms returns all surface spellings of a literal token.
func (t Token) literalForms() []string {
	return append([]string{t.Text}, t.Alternatives...)
}

// ExtractionSource says how a role's bound value is located after a
// structural match.
type ExtractionSource int

const (
	// ByRoleSlot takes the value from the slot tagged with the role.
	ByRoleSlot ExtractionSource = iota
	// ByMarker takes the span following one of the marker literals.
	ByMarker
)

// Extraction maps one role to how its value is pulled out of a match.
// Most patterns rely on role-tagged slots; marker extraction covers
// hand-authored forms whose slot tagging is positional.
type Extraction struct {
	Role    semantic.Role
	Source  ExtractionSource
	Markers []string
	// Default fills the role when the template omitted it. Pattern-level
	// defaults take precedence over schema-level ones.
	Default *semantic.Value
}

// Pattern is one surface template for a (language, command) pair.
type Pattern struct {
	// ID identifies the winning pattern in parse results. IDs are
	// deterministic ("ja:toggle:0") so repeated builds order identically.
	ID       string
	Language string
	Action   semantic.ActionType

	// Priority orders candidates; higher is tried first. Hand-authored
	// patterns default to PriorityHandAuthored, synthesized ones to
	// PrioritySynthesized, so idiomatic forms always win when both exist.
	Priority int

	// Synthesized marks patterns produced by the grammar transformer.
	Synthesized bool

	Template []Token
	Extract  []Extraction
}

// Baseline priorities. Hand-authored idioms must outrank anything the
// synthesizer produces for the same (language, command) pair.
const (
	PriorityHandAuthored = 100
	PrioritySynthesized  = 10
)

// Verb returns the pattern's leading command word, used for quick-check
// keyword lists. Empty when the template does not open with a literal.
func (p *Pattern) Verb() string {
	for _, tok := range p.Template {
		switch tok.Kind {
		case TokenLiteral:
			return tok.Text
		case TokenRole:
			return ""
		case TokenGroup:
			continue
		}
	}
	return ""
}

// DefaultFor returns the pattern-level default for role, if declared.
func (p *Pattern) DefaultFor(role semantic.Role) (*semantic.Value, bool) {
	for i := range p.Extract {
		if p.Extract[i].Role == role && p.Extract[i].Default != nil {
			return p.Extract[i].Default, true
		}
	}
	return nil, false
}

// String renders a compact description for logs and debugging.
func (p *Pattern) String() string {
	var parts []string
	for _, tok := range p.Template {
		switch tok.Kind {
		case TokenLiteral:
			parts = append(parts, tok.Text)
		case TokenRole:
			parts = append(parts, "<"+string(tok.Role)+">")
		case TokenGroup:
			var inner []string
			for _, g := range tok.Group {
				if g.Kind == TokenRole {
					inner = append(inner, "<"+string(g.Role)+">")
				} else {
					inner = append(inner, g.Text)
				}
			}
			parts = append(parts, "["+strings.Join(inner, " ")+"]")
		}
	}
	return fmt.Sprintf("%s p%d %s", p.ID, p.Priority, strings.Join(parts, " "))
}
