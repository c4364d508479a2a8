// Package grammar carries the per-language grammar profiles (word order,
// marker conventions, verb lexicon) and the transformer that synthesizes
// surface patterns for languages without hand-authored coverage.
package grammar

import (
	_ "embed"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	"github.com/lokascript/semantic-go/errors"
)

// WordOrder is a language's canonical verb/argument ordering.
type WordOrder string

const (
	SVO WordOrder = "SVO"
	SOV WordOrder = "SOV"
	VSO WordOrder = "VSO"
)

// Profile describes one language's grammar conventions. Profiles are
// loaded once from a static table and read-only thereafter.
type Profile struct {
	// Code is the base language tag ("ja"), set from the table key.
	Code string `toml:"-"`
	Name string `toml:"name"`

	Order WordOrder `toml:"order"`

	// Spaced languages tokenize on whitespace; unspaced scripts (Japanese,
	// Chinese, Thai) are matched as substring anchors instead.
	Spaced bool `toml:"spaced"`

	// VerbAfterSubject places the verb between the first two ordered roles
	// in SVO synthesis instead of command-initial.
	VerbAfterSubject bool `toml:"verb_after_subject"`

	// MarkersAfter places role markers after the role value (postpositions
	// and case particles) instead of before it (prepositions).
	MarkersAfter bool `toml:"markers_after"`

	// Markers maps role names to the language's default case marker.
	// RoleSpec-level overrides take precedence per command.
	Markers map[string]string `toml:"markers"`

	// Verbs maps action names to localized command verbs. Alternative
	// spellings are separated by '|'. Missing entries fall back to the
	// action's English name.
	Verbs map[string]string `toml:"verbs"`
}

// VerbFor returns the localized spellings of action's command verb,
// primary form first.
func (p *Profile) VerbFor(action string) []string {
	if v, ok := p.Verbs[action]; ok && v != "" {
		return strings.Split(v, "|")
	}
	return []string{action}
}

// MarkerFor returns the profile's default marker for a role, or "".
func (p *Profile) MarkerFor(role string) string {
	return p.Markers[role]
}

//go:embed profiles.toml
var profilesTOML []byte

type profileTable struct {
	Languages map[string]*Profile `toml:"languages"`
}

var (
	loadOnce    sync.Once
	loadedTable map[string]*Profile
	loadErr     error
)

// Profiles returns the embedded language-profile table, keyed by base
// language code. The table is parsed once and shared; callers must not
// mutate it.
func Profiles() (map[string]*Profile, error) {
	loadOnce.Do(func() {
		loadedTable, loadErr = parseProfiles(profilesTOML)
	})
	return loadedTable, loadErr
}

// ParseProfiles decodes a profile table from TOML, for profile overrides
// loaded at runtime (tests, hot-reload tooling).
func ParseProfiles(data []byte) (map[string]*Profile, error) {
	return parseProfiles(data)
}

func parseProfiles(data []byte) (map[string]*Profile, error) {
	var table profileTable
	if err := toml.Unmarshal(data, &table); err != nil {
		return nil, errors.Wrap(err, "failed to decode language profiles")
	}
	for code, p := range table.Languages {
		p.Code = code
		if p.Order == "" {
			p.Order = SVO
		}
	}
	return table.Languages, nil
}

// ProfileFor resolves a caller-supplied language code to its profile,
// normalizing regional variants ("en-US", "pt_BR") to their base language.
func ProfileFor(code string) (*Profile, error) {
	table, err := Profiles()
	if err != nil {
		return nil, err
	}
	base := Normalize(code)
	p, ok := table[base]
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnknownLanguage, "no grammar profile for %q", code)
	}
	return p, nil
}

// Normalize reduces a BCP-47-ish language code to its base language
// ("en-US" -> "en"). Unparseable codes are lowercased and returned as-is
// so hand-authored registrations under ad-hoc codes still resolve.
func Normalize(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return code
	}
	tag, err := language.Parse(code)
	if err != nil {
		return strings.ToLower(strings.ReplaceAll(code, "_", "-"))
	}
	base, _ := tag.Base()
	return base.String()
}
