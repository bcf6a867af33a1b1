package types

import (
	"fmt"
	"strconv"
	"strings"
)

var (
	truthy_tokens = []string{"true", "1", "yes"}
	falsy_tokens  = []string{"false", "0", "no"}
)

// Coerce converts raw user input into the Go value stored for t:
// int for FieldTypeInt, bool for FieldTypeBool and string for FieldTypeString.
func Coerce(value string, t FieldType) (any, error) {
	switch t {
	case FieldTypeInt:
		return coerceInt(value)
	case FieldTypeBool:
		return coerceBool(value)
	case FieldTypeString:
		return Unquote(value), nil
	}
	return nil, ValidateFieldType(t)
}

func coerceInt(value string) (any, error) {
	i, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return nil, NewError(ErrorKindType, "Cannot convert '%s' to %s", value, FieldTypeInt)
	}
	return i, nil
}

func coerceBool(value string) (any, error) {
	token := strings.ToLower(strings.TrimSpace(value))
	for _, v := range truthy_tokens {
		if token == v {
			return true, nil
		}
	}
	for _, v := range falsy_tokens {
		if token == v {
			return false, nil
		}
	}
	return nil, NewError(ErrorKindType, "Cannot convert '%s' to %s", value, FieldTypeBool)
}

// Unquote strips one layer of matching ' or " quotes.
func Unquote(value string) string {
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if first == last && (first == '"' || first == '\'') {
			return value[1 : len(value)-1]
		}
	}
	return value
}

// CheckValue reports whether v already holds the Go type used for t.
func CheckValue(v any, t FieldType) bool {
	switch t {
	case FieldTypeInt:
		_, ok := v.(int)
		return ok
	case FieldTypeBool:
		_, ok := v.(bool)
		return ok
	case FieldTypeString:
		_, ok := v.(string)
		return ok
	}
	return false
}

// Stringify is the string form used for loose equality: 1 and "1" compare equal.
func Stringify(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}
