package semantic

import (
	"fmt"
	"strings"
)

// QuickCheckResult is the outcome of the tier-1 structural check.
type QuickCheckResult struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// QuickCheck runs fast structural validation on a raw script before any
// template matching: balanced quotes and brackets, and a recognized leading
// command word. starts is the set of valid leading words for the script's
// language (the pattern store's CommandWords output); when empty, the
// leading-word check is skipped.
//
// This catches the bulk of authoring typos without the cost of a full
// match, so batch tooling can triage cheaply.
func QuickCheck(script string, starts []string) QuickCheckResult {
	var errs, warnings []string

	script = strings.TrimSpace(script)
	if script == "" {
		return QuickCheckResult{Valid: false, Errors: []string{"script is empty"}}
	}

	if len(starts) > 0 && !startsWithAny(script, starts) {
		preview := script
		if len(preview) > 30 {
			preview = preview[:30] + "..."
		}
		errs = append(errs, fmt.Sprintf("script must start with a command keyword, got: %q", preview))
	}

	if countUnescaped(script, '\'')%2 != 0 {
		errs = append(errs, "unbalanced single quotes")
	}
	if countUnescaped(script, '"')%2 != 0 {
		errs = append(errs, "unbalanced double quotes")
	}
	if strings.Count(script, "(") != strings.Count(script, ")") {
		errs = append(errs, "unbalanced parentheses")
	}
	if strings.Count(script, "[") != strings.Count(script, "]") {
		errs = append(errs, "unbalanced brackets")
	}
	if strings.Count(script, "{") != strings.Count(script, "}") {
		errs = append(errs, "unbalanced braces")
	}

	lower := strings.ToLower(script)
	if strings.Contains(lower, "onclick") && !strings.Contains(lower, "on click") {
		warnings = append(warnings, "use 'on click' (with space), not 'onclick'")
	}
	if strings.Contains(script, " on click") && !strings.HasPrefix(script, "on ") {
		warnings = append(warnings, "did you mean 'on click' at the start?")
	}

	return QuickCheckResult{
		Valid:    len(errs) == 0,
		Errors:   errs,
		Warnings: warnings,
	}
}

func startsWithAny(script string, starts []string) bool {
	for _, kw := range starts {
		if kw == "" {
			continue
		}
		if script == kw || strings.HasPrefix(script, kw+" ") || strings.HasPrefix(script, kw) && !isASCIIWordByte(kw[len(kw)-1]) {
			return true
		}
	}
	return false
}

// isASCIIWordByte distinguishes spaced keywords ("toggle") from unspaced
// script keywords ("切り替え"), whose prefix match needs no separator.
func isASCIIWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

// countUnescaped counts occurrences of char that are not backslash-escaped.
func countUnescaped(text string, char byte) int {
	count := 0
	escaped := false
	for i := 0; i < len(text); i++ {
		switch {
		case escaped:
			escaped = false
		case text[i] == '\\':
			escaped = true
		case text[i] == char:
			count++
		}
	}
	return count
}
