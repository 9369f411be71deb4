package interpreter

import (
	"strconv"
)

// stringify renders a runtime value in its printed form: numbers as the
// shortest round-tripping decimal, strings unquoted, booleans as
// true/false, nil as "nil".
func stringify(v any) string {
	switch value := v.(type) {
	case nil:
		return "nil"
	case float64:
		// 'f' keeps the shortest round-tripping form free of exponent
		// notation, so printed numbers re-scan as the same value.
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	case string:
		return value
	}

	panic("unreachable value variant")
}

// isTruthy implements the truthiness rule: nil and false are falsy, every
// other value is truthy, including 0 and "".
func isTruthy(value any) bool {
	if value == nil {
		return false
	}
	if b, ok := value.(bool); ok {
		return b
	}

	return true
}

// isEqual compares by value variant. Mixed variants are never equal.
func isEqual(left, right any) bool {
	if left == nil && right == nil {
		return true
	}
	return left == right
}
