package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Text is a textual field decoded from any JSON scalar. Numbers and booleans
// keep their literal form, so "02" and 2 both survive as text.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	raw, err := scalarLiteral(data)
	if err != nil {
		return err
	}
	*t = Text(raw)
	return nil
}

func (t Text) String() string { return string(t) }

// Numeric is an integer-valued field held by its literal text. It encodes as
// a JSON number when the literal is an integer and as a string otherwise, so
// an invalid value can still be echoed back verbatim.
type Numeric string

func (n *Numeric) UnmarshalJSON(data []byte) error {
	raw, err := scalarLiteral(data)
	if err != nil {
		return err
	}
	*n = Numeric(raw)
	return nil
}

func (n Numeric) MarshalJSON() ([]byte, error) {
	if value, ok := n.Int64(); ok {
		return strconv.AppendInt(nil, value, 10), nil
	}
	return json.Marshal(string(n))
}

// Int64 parses the literal as a base-10 integer.
func (n Numeric) Int64() (int64, bool) {
	value, err := strconv.ParseInt(string(n), 10, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

func (n Numeric) String() string { return string(n) }

func TextOf(value string) *Text {
	t := Text(value)
	return &t
}

func NumericOf(value int64) *Numeric {
	n := Numeric(strconv.FormatInt(value, 10))
	return &n
}

func NumericText(value string) *Numeric {
	n := Numeric(value)
	return &n
}

func BoolOf(value bool) *bool {
	return &value
}

// IsBlank reports whether an optional scalar is absent or whitespace only.
func IsBlank[T ~string](value *T) bool {
	return value == nil || strings.TrimSpace(string(*value)) == ""
}

// Value returns the literal of an optional scalar, or "" when absent.
func Value[T ~string](value *T) string {
	if value == nil {
		return ""
	}
	return string(*value)
}

// Literal renders an optional scalar for error messages: blank and absent
// values render as null.
func Literal[T ~string](value *T) string {
	if IsBlank(value) {
		return "null"
	}
	return string(*value)
}

func scalarLiteral(data []byte) (string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", nil
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", err
		}
		return s, nil
	case '{', '[':
		return "", fmt.Errorf("expected a scalar value, got %s", trimmed[:1])
	default:
		return string(trimmed), nil
	}
}
