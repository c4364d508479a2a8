package semantic

import "testing"

// TestQuickCheck verifies tier-1 structural validation
func TestQuickCheck(t *testing.T) {
	starts := []string{"on", "toggle", "put", "set", "behavior", "init"}

	tests := []struct {
		name      string
		script    string
		wantValid bool
		wantErr   string
	}{
		{name: "valid toggle", script: "toggle .active on #button", wantValid: true},
		{name: "valid handler", script: "on click toggle .active", wantValid: true},
		{name: "empty", script: "   ", wantValid: false, wantErr: "script is empty"},
		{name: "unknown leading keyword", script: "frobnicate .active", wantValid: false},
		{name: "unbalanced double quote", script: `put "hello into #out`, wantValid: false, wantErr: "unbalanced double quotes"},
		{name: "escaped quote balances", script: `put "he said \"hi\"" into #out`, wantValid: true},
		{name: "unbalanced paren", script: "set x to (1 + 2", wantValid: false, wantErr: "unbalanced parentheses"},
		{name: "unbalanced bracket", script: "toggle [disabled on me", wantValid: false, wantErr: "unbalanced brackets"},
		{name: "unbalanced brace", script: "set x to {a: 1", wantValid: false, wantErr: "unbalanced braces"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QuickCheck(tt.script, starts)
			if got.Valid != tt.wantValid {
				t.Fatalf("QuickCheck(%q).Valid = %v, want %v (errors: %v)",
					tt.script, got.Valid, tt.wantValid, got.Errors)
			}
			if tt.wantErr != "" && !containsString(got.Errors, tt.wantErr) {
				t.Errorf("QuickCheck(%q) errors = %v, want to contain %q",
					tt.script, got.Errors, tt.wantErr)
			}
		})
	}
}

func TestQuickCheckWarnings(t *testing.T) {
	got := QuickCheck("toggle onclick handler", []string{"toggle"})
	if !got.Valid {
		t.Fatalf("warnings must not invalidate: %v", got.Errors)
	}
	if len(got.Warnings) == 0 {
		t.Error("expected an onclick warning")
	}
}

func TestQuickCheckNoStartsSkipsKeywordCheck(t *testing.T) {
	got := QuickCheck("frobnicate .active", nil)
	if !got.Valid {
		t.Errorf("with no starts list the leading-word check is skipped, got %v", got.Errors)
	}
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
