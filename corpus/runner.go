package corpus

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lokascript/semantic-go/logger"
	"github.com/lokascript/semantic-go/pattern"
	"github.com/lokascript/semantic-go/semantic"
	"github.com/lokascript/semantic-go/validate"
)

// EntryResult scores one corpus entry. Failure carries the first
// discrepancy found; an entry either passes or fails, never aborts the
// run.
type EntryResult struct {
	ID         string              `json:"id"`
	Input      string              `json:"input"`
	Language   string              `json:"language"`
	Matched    bool                `json:"matched"`
	Action     semantic.ActionType `json:"action,omitempty"`
	Confidence float64             `json:"confidence,omitempty"`
	Valid      bool                `json:"valid"`
	Passed     bool                `json:"passed"`
	Failure    string              `json:"failure,omitempty"`
}

// Report aggregates one corpus run.
type Report struct {
	Name    string        `json:"name"`
	Total   int           `json:"total"`
	Passed  int           `json:"passed"`
	Failed  int           `json:"failed"`
	Results []EntryResult `json:"results"`
}

// PassRate returns the passed fraction in [0,1], 1 for an empty corpus.
func (r *Report) PassRate() float64 {
	if r.Total == 0 {
		return 1
	}
	return float64(r.Passed) / float64(r.Total)
}

// Runner scores corpora against a matcher and role validator.
type Runner struct {
	matcher   *pattern.Matcher
	validator *validate.Validator
	log       *zap.SugaredLogger
}

// NewRunner builds a corpus runner.
func NewRunner(matcher *pattern.Matcher, validator *validate.Validator) *Runner {
	return &Runner{
		matcher:   matcher,
		validator: validator,
		log:       logger.Named("corpus"),
	}
}

// Run scores every entry. A failing entry is recorded and the run
// continues; the report is always complete.
func (r *Runner) Run(c *Corpus) *Report {
	report := &Report{Name: c.Name, Total: len(c.Entries)}
	for _, e := range c.Entries {
		res := r.runEntry(e)
		if res.Passed {
			report.Passed++
		} else {
			report.Failed++
		}
		report.Results = append(report.Results, res)
	}
	r.log.Debugw("Corpus run finished",
		logger.FieldCount, report.Total,
		"passed", report.Passed,
		"failed", report.Failed)
	return report
}

func (r *Runner) runEntry(e Entry) EntryResult {
	out := EntryResult{ID: e.ID, Input: e.Input, Language: e.Language}

	match, ok := r.matcher.Match(e.Input, e.Language)
	if !ok {
		out.Failure = "no pattern matched"
		return out
	}
	out.Matched = true
	out.Action = match.Action
	out.Confidence = match.Confidence

	validation := r.validator.ValidateResult(match)
	out.Valid = validation.Valid

	switch {
	case e.Action != "" && match.Action != e.Action:
		out.Failure = fmt.Sprintf("action %s, expected %s", match.Action, e.Action)
	case !validation.Valid:
		out.Failure = validate.FormatPlain(validation)
	case e.MinConfidence > 0 && match.Confidence < e.MinConfidence:
		out.Failure = fmt.Sprintf("confidence %.2f below %.2f", match.Confidence, e.MinConfidence)
	default:
		if failure := checkRoles(e, match); failure != "" {
			out.Failure = failure
			break
		}
		out.Passed = true
	}
	return out
}

func checkRoles(e Entry, match *pattern.Result) string {
	for role, want := range e.Roles {
		got, bound := match.Value(semantic.Role(role))
		if !bound {
			return fmt.Sprintf("role %s unbound, expected %q", role, want)
		}
		if got.Raw != want {
			return fmt.Sprintf("role %s = %q, expected %q", role, got.Raw, want)
		}
	}
	return ""
}
