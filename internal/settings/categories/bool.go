package categories

// CoerceBool normalizes any form/value representation of the enabled flag to
// a strict boolean. Checkboxes post "1" or nothing, imports may carry
// numbers or real booleans; empty and zero values are false, everything else
// is true.
func CoerceBool(v any) bool {
	switch value := v.(type) {
	case nil:
		return false
	case bool:
		return value
	case string:
		return value != "" && value != "0"
	case int:
		return value != 0
	case int64:
		return value != 0
	case float64:
		return value != 0
	default:
		return true
	}
}
