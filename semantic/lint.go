package semantic

import "fmt"

// Schema lint codes. These are authoring diagnostics for schema writers;
// they are never evaluated against end-user input and never fail a parse.
const (
	LintAmbiguousShapes   = "AMBIGUOUS_SHAPES"
	LintTooManyShapes     = "TOO_MANY_SHAPES"
	LintMissingEventRole  = "MISSING_EVENT_ROLE"
	LintMissingCondition  = "MISSING_CONDITION_ROLE"
	LintMissingSourceRole = "MISSING_SOURCE_ROLE"
)

// LintIssue is one dev-time schema warning.
type LintIssue struct {
	Action  ActionType
	Role    Role
	Code    string
	Message string
}

// String renders the issue for build-tool output.
func (li LintIssue) String() string {
	if li.Role != "" {
		return fmt.Sprintf("%s: %s.%s: %s", li.Code, li.Action, li.Role, li.Message)
	}
	return fmt.Sprintf("%s: %s: %s", li.Code, li.Action, li.Message)
}

// maxAcceptedShapes is the point past which a role's shape set stops
// constraining anything useful.
const maxAcceptedShapes = 3

// ValidateAllSchemas runs the dev-time schema self-check over every
// registered command and returns structural lint warnings for schema
// authors. Intended for build tooling, never for production request paths.
//
// Checks:
//   - a role accepting both literal and selector is ambiguous, because
//     values beginning with '.', '#' or '[' always infer as selector
//   - a role accepting more than three shapes accepts nearly anything
//   - event-handler schemas must declare a required event role
//   - conditional schemas must declare a required condition role
//   - for-style iteration schemas must declare a source role
func ValidateAllSchemas(r *Registry) []LintIssue {
	var issues []LintIssue
	for _, action := range r.Actions() {
		schema, _ := r.Get(action)
		issues = append(issues, lintSchema(schema)...)
	}
	return issues
}

func lintSchema(s *Schema) []LintIssue {
	var issues []LintIssue

	for _, rs := range s.Roles {
		if rs.Accepts(KindLiteral) && rs.Accepts(KindSelector) {
			issues = append(issues, LintIssue{
				Action: s.Action, Role: rs.Role, Code: LintAmbiguousShapes,
				Message: "accepts both literal and selector; values starting with '.', '#' or '[' will always infer as selector",
			})
		}
		if len(rs.Shapes) > maxAcceptedShapes {
			issues = append(issues, LintIssue{
				Action: s.Action, Role: rs.Role, Code: LintTooManyShapes,
				Message: fmt.Sprintf("accepts %d value shapes; narrow the set so validation can catch mistakes", len(rs.Shapes)),
			})
		}
	}

	switch s.Category {
	case "event":
		// Only handler-style commands carry a body; trigger/send dispatch.
		if s.HasBody && !hasRequiredRole(s, RoleEvent) {
			issues = append(issues, LintIssue{
				Action: s.Action, Code: LintMissingEventRole,
				Message: "event-handler schema must declare a required event role",
			})
		}
	case "conditional":
		if !hasRequiredRole(s, RoleCondition) {
			issues = append(issues, LintIssue{
				Action: s.Action, Code: LintMissingCondition,
				Message: "conditional schema must declare a required condition role",
			})
		}
	case "iteration":
		if _, ok := s.Spec(RoleSource); !ok {
			issues = append(issues, LintIssue{
				Action: s.Action, Code: LintMissingSourceRole,
				Message: "for-style loop schema must declare a source role",
			})
		}
	}

	return issues
}

func hasRequiredRole(s *Schema, role Role) bool {
	rs, ok := s.Spec(role)
	return ok && rs.Required
}
