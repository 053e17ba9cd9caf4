package models

import "time"

// Stored documents are loosely typed field maps. Reads coerce every field to
// its declared type and fall back to a zero value on a missing or mismatched
// field instead of failing the decode.

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asBool(v interface{}) bool {
	b, _ := v.(bool)
	return b
}

func asTime(v interface{}) time.Time {
	t, _ := v.(time.Time)
	return t
}

func asStringSlice(v interface{}) []string {
	switch vv := v.(type) {
	case []string:
		return vv
	case []interface{}:
		out := make([]string, 0, len(vv))
		for _, e := range vv {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}
