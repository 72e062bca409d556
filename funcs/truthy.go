package funcs

import "strings"

// Truthy coerces an arbitrary value to a boolean, the way the predicate
// operations (All, Any, Select, Detect, …) interpret callable results:
//
//	nil                         → false
//	bool                        → as-is
//	numeric zero                → false, any other number true
//	"" "0" "false" "no" "off"   → false (case-insensitive), other strings true
//	anything else               → true
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case int:
		return x != 0
	case int8:
		return x != 0
	case int16:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case uint:
		return x != 0
	case uint8:
		return x != 0
	case uint16:
		return x != 0
	case uint32:
		return x != 0
	case uint64:
		return x != 0
	case float32:
		return x != 0
	case float64:
		return x != 0
	case string:
		switch strings.ToLower(x) {
		case "", "0", "false", "no", "off":
			return false
		}
		return true
	default:
		return true
	}
}
