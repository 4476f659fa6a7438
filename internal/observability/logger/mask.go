package logger

import (
	"encoding/json"
	"strings"
)

// sensitiveKeys are matched against lower-cased keys with underscores
// removed, so full_number and creditCardNumber are both caught.
var sensitiveKeys = []string{
	"password",
	"secret",
	"token",
	"apikey",
	"sharedkey",
	"authorization",
	"cardnumber",
	"fullnumber",
	"cvv",
	"accountnumber",
	"routingnumber",
}

// exactSensitiveKeys only match whole keys.
var exactSensitiveKeys = map[string]struct{}{
	"code": {},
}

// MaskAPIKey masks API keys, preserving only the last 4 characters.
func MaskAPIKey(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	return maskLast4(value)
}

// MaskJSON returns a deep-copied map with sensitive fields masked.
func MaskJSON(input map[string]any) map[string]any {
	if input == nil {
		return nil
	}
	out := make(map[string]any, len(input))
	for key, value := range input {
		if isSensitiveKey(key) {
			out[key] = maskValue(value)
			continue
		}
		out[key] = maskJSONValue(value)
	}
	return out
}

// MaskPayload encodes v as JSON and masks it for logging. Values that do
// not encode to an object are returned as "<unloggable>".
func MaskPayload(v any) any {
	raw, err := json.Marshal(v)
	if err != nil {
		return "<unloggable>"
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "<unloggable>"
	}
	return maskJSONValue(decoded)
}

func maskJSONValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return MaskJSON(typed)
	case []any:
		items := make([]any, 0, len(typed))
		for _, entry := range typed {
			items = append(items, maskJSONValue(entry))
		}
		return items
	default:
		return value
	}
}

func maskValue(value any) any {
	switch typed := value.(type) {
	case string:
		return maskLast4(typed)
	case []byte:
		return maskLast4(string(typed))
	case nil:
		return nil
	default:
		return "****"
	}
}

func isSensitiveKey(key string) bool {
	key = strings.ToLower(strings.TrimSpace(key))
	if _, ok := exactSensitiveKeys[key]; ok {
		return true
	}
	key = strings.ReplaceAll(key, "_", "")
	for _, needle := range sensitiveKeys {
		if strings.Contains(key, needle) {
			return true
		}
	}
	return false
}

func maskLast4(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if len(value) <= 4 {
		return "****"
	}
	return "****" + value[len(value)-4:]
}
