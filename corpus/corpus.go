// Package corpus loads YAML test corpora of natural-language commands and
// scores them against the matcher, for regression tracking of per-language
// coverage.
package corpus

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lokascript/semantic-go/errors"
	"github.com/lokascript/semantic-go/semantic"
)

// Entry is one corpus case: an input utterance plus the expected parse.
// Action and Roles are optional; entries without them only assert that the
// input matches at all.
type Entry struct {
	ID       string `yaml:"id,omitempty"`
	Language string `yaml:"language"`
	Input    string `yaml:"input"`

	Action semantic.ActionType `yaml:"action,omitempty"`
	// Roles maps role name to the expected raw value.
	Roles map[string]string `yaml:"roles,omitempty"`

	// MinConfidence, when set, asserts a lower bound on the match score.
	MinConfidence float64 `yaml:"minConfidence,omitempty"`
}

// Corpus is a named collection of entries, usually one file per language.
type Corpus struct {
	Name     string  `yaml:"name"`
	Language string  `yaml:"language,omitempty"`
	Entries  []Entry `yaml:"entries"`
}

// Load reads a corpus file.
func Load(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read corpus %s", path)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse corpus %s", path)
	}
	return c, nil
}

// Parse decodes a corpus from YAML. Entries inherit the corpus-level
// language when they do not set their own.
func Parse(data []byte) (*Corpus, error) {
	var c Corpus
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrap(err, "invalid corpus yaml")
	}
	for i := range c.Entries {
		if c.Entries[i].Language == "" {
			c.Entries[i].Language = c.Language
		}
		if c.Entries[i].ID == "" {
			c.Entries[i].ID = fmt.Sprintf("%s[%d]", c.Name, i)
		}
	}
	return &c, nil
}
