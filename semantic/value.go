package semantic

import (
	"strconv"
	"strings"
)

// ValueKind tags a Value with its inferred or declared shape.
type ValueKind string

const (
	// KindLiteral is a quoted string, number, or boolean.
	KindLiteral ValueKind = "literal"
	// KindSelector is a CSS-like target string (".active", "#button").
	KindSelector ValueKind = "selector"
	// KindReference is one of the closed reference keywords ("me", "it").
	KindReference ValueKind = "reference"
	// KindExpression is an unevaluated computed expression.
	KindExpression ValueKind = "expression"
	// KindPropertyPath is a dotted access chain ("event.target.value").
	KindPropertyPath ValueKind = "property-path"
)

// Value is the tagged union carried by every bound role. Raw preserves the
// surface text exactly as matched, including quotes for literals.
type Value struct {
	Kind ValueKind `json:"kind"`
	Raw  string    `json:"raw"`
}

// Literal builds a literal Value.
func Literal(raw string) Value { return Value{Kind: KindLiteral, Raw: raw} }

// Selector builds a selector Value.
func Selector(raw string) Value { return Value{Kind: KindSelector, Raw: raw} }

// Reference builds a reference Value.
func Reference(raw string) Value { return Value{Kind: KindReference, Raw: raw} }

// Expression builds an expression Value.
func Expression(raw string) Value { return Value{Kind: KindExpression, Raw: raw} }

// PropertyPath builds a property-path Value.
func PropertyPath(raw string) Value { return Value{Kind: KindPropertyPath, Raw: raw} }

// String renders the value as kind(raw), the form used in diagnostics.
func (v Value) String() string {
	return string(v.Kind) + "(" + v.Raw + ")"
}

// referenceKeywords is the closed set of context references the language
// resolves at runtime. Membership implies KindReference during inference.
var referenceKeywords = map[string]bool{
	"me":     true,
	"my":     true,
	"it":     true,
	"its":    true,
	"event":  true,
	"target": true,
	"detail": true,
	"body":   true,
	"result": true,
	"you":    true,
	"yourself": true,
}

// IsReferenceKeyword reports whether word belongs to the closed reference set.
func IsReferenceKeyword(word string) bool {
	return referenceKeywords[strings.ToLower(word)]
}

// Infer classifies raw surface text into a Value using lexical heuristics.
// The heuristics are deliberately approximate; the role validator treats
// shape mismatches as warnings for exactly this reason.
//
// Order matters: selector prefixes beat reference keywords beat literals,
// and a dotted chain of bare identifiers is a property path before it is an
// expression.
func Infer(raw string) Value {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Expression(trimmed)
	}

	switch trimmed[0] {
	case '.', '#', '[':
		return Selector(trimmed)
	case '<':
		// Query-literal form <div.foo/>
		if strings.HasSuffix(trimmed, "/>") {
			return Selector(trimmed)
		}
	case '"', '\'':
		// Quoted strings bind their unquoted payload.
		if len(trimmed) >= 2 && trimmed[len(trimmed)-1] == trimmed[0] {
			return Literal(trimmed[1 : len(trimmed)-1])
		}
		return Literal(trimmed)
	}

	if IsReferenceKeyword(trimmed) {
		return Reference(trimmed)
	}

	if _, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Literal(trimmed)
	}
	switch strings.ToLower(trimmed) {
	case "true", "false", "null":
		return Literal(trimmed)
	}

	if isPropertyPath(trimmed) {
		return PropertyPath(trimmed)
	}

	return Expression(trimmed)
}

// isPropertyPath reports whether s is a dotted chain of plain identifiers
// with at least one dot, e.g. "event.target.value".
func isPropertyPath(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return false
	}
	for _, part := range parts {
		if !isIdentifier(part) {
			return false
		}
	}
	return true
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
