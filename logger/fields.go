package logger

// Standard field names for consistent structured logging across the
// semantic core. Use these constants instead of raw strings.
const (
	// Components
	FieldComponent = "component"
	FieldOperation = "operation"

	// Language and matching
	FieldLanguage   = "language"
	FieldAction     = "action"
	FieldRole       = "role"
	FieldPatternID  = "pattern_id"
	FieldPriority   = "priority"
	FieldConfidence = "confidence"
	FieldCandidates = "candidates"
	FieldSynthesized = "synthesized"

	// Input
	FieldText   = "text"
	FieldTokens = "tokens"

	// Counts and sizes
	FieldCount      = "count"
	FieldTotalCount = "total_count"

	// Errors
	FieldError     = "error"
	FieldErrorCode = "error_code"

	// Files
	FieldFile = "file"
	FieldPath = "path"

	// Timing
	FieldDurationMS = "duration_ms"
)
