package grammar

import (
	"fmt"
	"sort"

	"github.com/lokascript/semantic-go/pattern"
	"github.com/lokascript/semantic-go/semantic"
)

// Synthesize produces the surface pattern for a command in a language
// lacking hand-authored coverage. The transformation is pure and
// deterministic with respect to (schema, profile): identical inputs always
// yield structurally identical templates, which the pattern cache and test
// fixtures rely on.
//
// Steps:
//  1. order the schema's roles by the profile's word-order position hint
//  2. place the localized verb per word order (first for VSO, last for
//     SOV, command-initial for SVO unless the profile marks the verb as
//     following the subject)
//  3. resolve each role's marker: RoleSpec per-language override, then the
//     profile's case default, then none
//  4. wrap defaulted roles in optional groups so input may omit them
//  5. assign the synthesized baseline priority, below any hand-authored
//     pattern for the same pair
func Synthesize(schema *semantic.Schema, profile *Profile) []*pattern.Pattern {
	if schema == nil || profile == nil {
		return nil
	}

	ordered := orderRoles(schema, profile.Order)

	verbs := profile.VerbFor(string(schema.Action))
	verbTok := pattern.Lit(verbs[0], verbs[1:]...)

	var tokens []pattern.Token
	switch profile.Order {
	case VSO:
		tokens = append(tokens, verbTok)
		for _, rs := range ordered {
			tokens = append(tokens, roleTokens(rs, profile)...)
		}
	case SOV:
		for _, rs := range ordered {
			tokens = append(tokens, roleTokens(rs, profile)...)
		}
		tokens = append(tokens, verbTok)
	default: // SVO
		if profile.VerbAfterSubject && len(ordered) > 0 {
			tokens = append(tokens, roleTokens(ordered[0], profile)...)
			tokens = append(tokens, verbTok)
			for _, rs := range ordered[1:] {
				tokens = append(tokens, roleTokens(rs, profile)...)
			}
		} else {
			tokens = append(tokens, verbTok)
			for _, rs := range ordered {
				tokens = append(tokens, roleTokens(rs, profile)...)
			}
		}
	}

	extract := make([]pattern.Extraction, 0, len(ordered))
	for _, rs := range ordered {
		ext := pattern.Extraction{
			Role:    rs.Role,
			Source:  pattern.ByRoleSlot,
			Default: rs.Default,
		}
		if m := resolveMarker(rs, profile); m != "" {
			ext.Source = pattern.ByMarker
			ext.Markers = []string{m}
		}
		extract = append(extract, ext)
	}

	return []*pattern.Pattern{{
		ID:          fmt.Sprintf("%s:%s:synth", profile.Code, schema.Action),
		Language:    profile.Code,
		Action:      schema.Action,
		Priority:    pattern.PrioritySynthesized,
		Synthesized: true,
		Template:    tokens,
		Extract:     extract,
	}}
}

// Synthesizer adapts Synthesize to the pattern store's hook, resolving the
// language code to its profile. Languages without a profile synthesize
// nothing and fall back to hand-authored patterns only.
func Synthesizer() pattern.SynthFunc {
	return func(schema *semantic.Schema, lang string) []*pattern.Pattern {
		profile, err := ProfileFor(lang)
		if err != nil {
			return nil
		}
		return Synthesize(schema, profile)
	}
}

// orderRoles returns the schema's roles sorted by the word-order position
// hint, descending. The sort is stable over declaration order so identical
// position hints keep a deterministic sequence.
func orderRoles(schema *semantic.Schema, order WordOrder) []*semantic.RoleSpec {
	out := make([]*semantic.RoleSpec, 0, len(schema.Roles))
	for i := range schema.Roles {
		out = append(out, &schema.Roles[i])
	}
	pos := func(rs *semantic.RoleSpec) int {
		if order == SOV {
			return rs.SOVPosition
		}
		// VSO treats the remainder as SVO-ordered.
		return rs.SVOPosition
	}
	sort.SliceStable(out, func(i, j int) bool { return pos(out[i]) > pos(out[j]) })
	return out
}

// roleTokens renders one role as template tokens: marker placement follows
// the profile (preposition before, particle after), and defaulted roles
// become skippable optional groups.
func roleTokens(rs *semantic.RoleSpec, profile *Profile) []pattern.Token {
	marker := resolveMarker(rs, profile)

	var seq []pattern.Token
	switch {
	case marker == "":
		seq = []pattern.Token{pattern.Slot(rs.Role)}
	case profile.MarkersAfter:
		seq = []pattern.Token{pattern.Slot(rs.Role), pattern.Lit(marker)}
	default:
		seq = []pattern.Token{pattern.Lit(marker), pattern.Slot(rs.Role)}
	}

	if rs.Default != nil {
		return []pattern.Token{pattern.Opt(seq...)}
	}
	return seq
}

func resolveMarker(rs *semantic.RoleSpec, profile *Profile) string {
	if m, ok := rs.Markers[profile.Code]; ok {
		return m
	}
	return profile.MarkerFor(string(rs.Role))
}
