package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// Color palette for console output (warm, muted, easy on eyes).
const (
	colorReset = "\x1b[0m"
	colorBold  = "\x1b[1m"

	colorFg       = "\x1b[38;5;223m" // Soft cream
	colorTime     = "\x1b[38;5;108m" // Muted cyan-green
	colorOrange   = "\x1b[38;5;208m" // Warm orange
	colorYellow   = "\x1b[38;5;214m" // Soft yellow
	colorGreen    = "\x1b[38;5;142m" // Muted green
	colorBlue     = "\x1b[38;5;109m" // Soft blue
	colorRed      = "\x1b[38;5;167m" // Warm red
	colorRedBg    = "\x1b[48;5;88m"  // Dark red background
	colorYellowBg = "\x1b[48;5;58m"  // Dark yellow background
)

// minimalEncoder implements a calm, compact console encoder.
// Format: "13:04:35  p.store  Built pattern cache  ja 42"
type minimalEncoder struct {
	zapcore.Encoder // Embed a base encoder for field serialization
}

func newMinimalEncoder() *minimalEncoder {
	// Base JSON encoder handles field serialization internally.
	return &minimalEncoder{
		Encoder: zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
	}
}

func (enc *minimalEncoder) Clone() zapcore.Encoder {
	return &minimalEncoder{Encoder: enc.Encoder.Clone()}
}

func (enc *minimalEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	final := buffer.NewPool().Get()

	final.AppendString(colorTime)
	final.AppendString(ent.Time.Format("15:04:05"))
	final.AppendString(colorReset)

	// Level: only shown for WARN/ERROR, bold with background.
	if ent.Level != zapcore.InfoLevel && ent.Level != zapcore.DebugLevel {
		final.AppendString("  ")
		final.AppendString(levelColorString(ent.Level))
	}

	if ent.LoggerName != "" {
		final.AppendString("  ")
		final.AppendString(componentColor(ent.LoggerName))
		final.AppendString(abbreviateName(ent.LoggerName))
		final.AppendString(colorReset)
	}

	final.AppendString("  ")
	final.AppendString(colorFg)
	final.AppendString(ent.Message)
	final.AppendString(colorReset)

	if len(fields) > 0 {
		final.AppendString("  ")
		final.AppendString(extractFieldValues(fields))
	}

	final.AppendString("\n")
	return final, nil
}

// levelColorString returns bold + colored + background for WARN/ERROR.
func levelColorString(level zapcore.Level) string {
	switch level {
	case zapcore.WarnLevel:
		return colorBold + colorYellowBg + colorYellow + "WARN" + colorReset
	case zapcore.ErrorLevel:
		return colorBold + colorRedBg + colorRed + "ERROR" + colorReset
	case zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return colorBold + colorRedBg + colorRed + level.CapitalString() + colorReset
	default:
		return ""
	}
}

// abbreviateName shortens component names: store -> store,
// pattern.store -> p.store.
func abbreviateName(name string) string {
	parts := strings.Split(name, ".")
	if len(parts) > 1 {
		return string(parts[0][0]) + "." + strings.Join(parts[1:], ".")
	}
	return name
}

// componentColor picks a stable color per component name.
func componentColor(name string) string {
	hash := 0
	for _, c := range name {
		hash += int(c)
	}
	if hash%2 == 0 {
		return colorOrange
	}
	return colorYellow
}

// getFieldValue extracts the value from a zap field, handling the common
// field types used in this codebase.
func getFieldValue(field zapcore.Field) string {
	if field.Type == zapcore.StringType {
		return field.String
	}
	switch field.Type {
	case zapcore.Int64Type, zapcore.Int32Type, zapcore.Int16Type, zapcore.Int8Type,
		zapcore.Uint64Type, zapcore.Uint32Type, zapcore.Uint16Type, zapcore.Uint8Type:
		return fmt.Sprintf("%d", field.Integer)
	case zapcore.Float64Type, zapcore.Float32Type:
		return fmt.Sprintf("%v", field.Interface)
	}
	if field.Interface != nil {
		return fmt.Sprintf("%v", field.Interface)
	}
	return ""
}

// extractFieldValues pulls just the values from structured fields.
// Input: {"language": "ja", "count": 42, "pattern_id": "ja:toggle:0"}
// Output: "ja 42 ja:toggle:0" (with IDs and numbers colored)
func extractFieldValues(fields []zapcore.Field) string {
	var values []string
	for _, field := range fields {
		val := getFieldValue(field)
		if val == "" {
			continue
		}
		switch field.Key {
		case FieldPatternID, FieldLanguage, FieldAction, FieldRole:
			values = append(values, colorBlue+val+colorReset)
		case FieldCount, FieldTotalCount, FieldCandidates, FieldPriority:
			values = append(values, colorGreen+val+colorReset)
		case FieldConfidence:
			values = append(values, colorGreen+val+colorReset)
		case FieldDurationMS:
			values = append(values, colorGreen+val+colorReset+"ms")
		default:
			values = append(values, colorFg+val+colorReset)
		}
	}
	if len(values) == 0 {
		return ""
	}
	return strings.Join(values, " ")
}
