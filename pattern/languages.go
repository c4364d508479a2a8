package pattern

import (
	"github.com/lokascript/semantic-go/semantic"
)

// RegisterBuiltins loads the hand-authored pattern catalog into a store.
// Coverage is deliberately uneven: English carries the full command set,
// the other languages cover the commands whose idiomatic surface form
// differs enough from synthesis to be worth authoring by hand. Everything
// else falls through to synthesized patterns.
func RegisterBuiltins(s *Store) error {
	catalogs := [][]*Pattern{
		englishPatterns(),
		spanishPatterns(),
		frenchPatterns(),
		germanPatterns(),
		japanesePatterns(),
		koreanPatterns(),
		chinesePatterns(),
		arabicPatterns(),
		turkishPatterns(),
		hindiPatterns(),
	}
	for _, catalog := range catalogs {
		for _, p := range catalog {
			if err := s.Register(p); err != nil {
				return err
			}
		}
	}
	return nil
}

// Role shorthands for the catalog files.
var (
	rPatient   = semantic.RolePatient
	rDest      = semantic.RoleDestination
	rSource    = semantic.RoleSource
	rEvent     = semantic.RoleEvent
	rQuantity  = semantic.RoleQuantity
	rCondition = semantic.RoleCondition
	rMethod    = semantic.RoleMethod
	rStyle     = semantic.RoleStyle
	rDuration  = semantic.RoleDuration
	rGoal      = semantic.RoleGoal
	rResponse  = semantic.RoleResponseType
	rLoopType  = semantic.RoleLoopType
	rManner    = semantic.RoleManner
)

// hp is the hand-pattern constructor used by the language catalogs.
// priority 0 means "hand-authored baseline"; catalogs pass an explicit
// higher value when one idiom must be tried before another for the same
// command.
func hp(lang string, action semantic.ActionType, priority int, tokens ...Token) *Pattern {
	return &Pattern{
		Language: lang,
		Action:   action,
		Priority: priority,
		Template: tokens,
	}
}

// withDefault attaches a pattern-level default for a role, for idioms
// whose surface form implies a value the schema does not carry.
func withDefault(p *Pattern, role semantic.Role, v semantic.Value) *Pattern {
	p.Extract = append(p.Extract, Extraction{Role: role, Source: ByRoleSlot, Default: &v})
	return p
}
