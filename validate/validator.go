// Package validate checks a matched command's role bindings against its
// schema. Validation never rejects a structurally matched command outright
// for recoverable problems: only missing required roles are errors, shape
// and vocabulary mismatches degrade confidence as warnings.
package validate

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lokascript/semantic-go/logger"
	"github.com/lokascript/semantic-go/pattern"
	"github.com/lokascript/semantic-go/semantic"
)

// Severity grades an issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Code identifies the issue class, stable for programmatic handling.
type Code string

const (
	CodeMissingRequiredRole Code = "MISSING_REQUIRED_ROLE"
	CodeInvalidType         Code = "INVALID_TYPE"
	CodeUnknownRole         Code = "UNKNOWN_ROLE"
	CodeMissingSchema       Code = "MISSING_SCHEMA"
)

// Issue is one validation finding.
type Issue struct {
	Severity   Severity      `json:"severity"`
	Code       Code          `json:"code"`
	Role       semantic.Role `json:"role,omitempty"`
	Message    string        `json:"message"`
	Suggestion string        `json:"suggestion,omitempty"`
}

// Result is the outcome of validating one matched command. Valid is false
// only when errors are present; warnings leave the command usable with a
// degraded confidence.
type Result struct {
	Valid    bool    `json:"valid"`
	Errors   []Issue `json:"errors,omitempty"`
	Warnings []Issue `json:"warnings,omitempty"`

	// ConfidenceAdjustment is the summed penalty of all issues, clamped to
	// [-1, 0]. Callers add it to the match confidence.
	ConfidenceAdjustment float64 `json:"confidenceAdjustment"`
}

// Per-issue confidence penalties.
const (
	penaltyMissingRequired = -0.3
	penaltyInvalidType     = -0.1
	penaltyUnknownRole     = -0.05
	penaltyMissingSchema   = -0.1
)

// Validator checks bindings against a schema registry.
type Validator struct {
	registry *semantic.Registry
	log      *zap.SugaredLogger
}

// New builds a validator over a schema registry.
func New(registry *semantic.Registry) *Validator {
	return &Validator{
		registry: registry,
		log:      logger.Named("validate"),
	}
}

// ValidateResult validates a matcher result.
func (v *Validator) ValidateResult(res *pattern.Result) Result {
	return v.Validate(res.Action, res.Bindings)
}

// Validate checks the bound roles of one command. Each omitted required
// role yields exactly one MISSING_REQUIRED_ROLE error; bound values whose
// shape the schema does not accept, and bound roles the schema does not
// declare, yield warnings.
func (v *Validator) Validate(action semantic.ActionType, bindings []pattern.Binding) Result {
	var out Result
	adjustment := 0.0

	schema, ok := v.registry.Get(action)
	if !ok {
		out.Warnings = append(out.Warnings, Issue{
			Severity:   SeverityWarning,
			Code:       CodeMissingSchema,
			Message:    fmt.Sprintf("no schema registered for command %q", action),
			Suggestion: "register the command schema before validating",
		})
		out.Valid = true
		out.ConfidenceAdjustment = penaltyMissingSchema
		return out
	}

	bound := make(map[semantic.Role]semantic.Value, len(bindings))
	for _, b := range bindings {
		bound[b.Role] = b.Value
	}

	for i := range schema.Roles {
		rs := &schema.Roles[i]
		value, isBound := bound[rs.Role]
		if !isBound {
			if !rs.Required {
				continue
			}
			issue := Issue{
				Code:       CodeMissingRequiredRole,
				Role:       rs.Role,
				Message:    fmt.Sprintf("%s requires a %s role (%s)", action, rs.Role, rs.Description),
				Suggestion: fmt.Sprintf("supply a value for %s", rs.Role),
			}
			if rs.Default != nil {
				// A required role with a declared default can still be
				// filled downstream; degrade instead of failing.
				issue.Severity = SeverityWarning
				out.Warnings = append(out.Warnings, issue)
			} else {
				issue.Severity = SeverityError
				out.Errors = append(out.Errors, issue)
			}
			adjustment += penaltyMissingRequired
			continue
		}
		if len(rs.Shapes) > 0 && !rs.Accepts(value.Kind) {
			out.Warnings = append(out.Warnings, Issue{
				Severity:   SeverityWarning,
				Code:       CodeInvalidType,
				Role:       rs.Role,
				Message:    fmt.Sprintf("%s role %s got %s, accepts %s", action, rs.Role, value.Kind, shapeList(rs.Shapes)),
				Suggestion: fmt.Sprintf("use a %s value for %s", shapeList(rs.Shapes), rs.Role),
			})
			adjustment += penaltyInvalidType
		}
	}

	for _, b := range bindings {
		if _, declared := schema.Spec(b.Role); !declared {
			out.Warnings = append(out.Warnings, Issue{
				Severity: SeverityWarning,
				Code:     CodeUnknownRole,
				Role:     b.Role,
				Message:  fmt.Sprintf("%s does not declare a %s role", action, b.Role),
			})
			adjustment += penaltyUnknownRole
		}
	}

	if adjustment < -1 {
		adjustment = -1
	}
	out.ConfidenceAdjustment = adjustment
	out.Valid = len(out.Errors) == 0

	if !out.Valid {
		v.log.Debugw("Validation failed",
			logger.FieldAction, action,
			logger.FieldCount, len(out.Errors))
	}
	return out
}

func shapeList(shapes []semantic.ValueKind) string {
	out := ""
	for i, s := range shapes {
		if i > 0 {
			out += " or "
		}
		out += string(s)
	}
	return out
}
