package validate

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// Format renders a result for terminal output, one line per issue with
// severity coloring and indented suggestions.
func Format(r Result) string {
	if r.Valid && len(r.Warnings) == 0 {
		return pterm.Green("ok")
	}

	var b strings.Builder
	for _, issue := range r.Errors {
		b.WriteString(pterm.Red(fmt.Sprintf("error[%s]", issue.Code)))
		writeIssueBody(&b, issue)
	}
	for _, issue := range r.Warnings {
		b.WriteString(pterm.Yellow(fmt.Sprintf("warning[%s]", issue.Code)))
		writeIssueBody(&b, issue)
	}
	if r.ConfidenceAdjustment != 0 {
		b.WriteString(pterm.Gray(fmt.Sprintf("confidence %+.2f", r.ConfidenceAdjustment)) + "\n")
	}
	return b.String()
}

// FormatPlain renders a result without terminal styling, for logs and
// non-tty output.
func FormatPlain(r Result) string {
	if r.Valid && len(r.Warnings) == 0 {
		return "ok"
	}

	var b strings.Builder
	for _, issue := range r.Errors {
		fmt.Fprintf(&b, "error[%s]", issue.Code)
		writeIssueBody(&b, issue)
	}
	for _, issue := range r.Warnings {
		fmt.Fprintf(&b, "warning[%s]", issue.Code)
		writeIssueBody(&b, issue)
	}
	if r.ConfidenceAdjustment != 0 {
		fmt.Fprintf(&b, "confidence %+.2f\n", r.ConfidenceAdjustment)
	}
	return b.String()
}

func writeIssueBody(b *strings.Builder, issue Issue) {
	if issue.Role != "" {
		fmt.Fprintf(b, " %s:", issue.Role)
	}
	fmt.Fprintf(b, " %s\n", issue.Message)
	if issue.Suggestion != "" {
		fmt.Fprintf(b, "  hint: %s\n", issue.Suggestion)
	}
}
