// Package attrs works with slog-style key-value attribute slices
// ([key1, value1, key2, value2, ...]) so audit code can enrich events from
// the same attributes it logs.
package attrs

// String extracts a string value by key. Returns empty string if the key is
// absent or the value is not a string.
func String(kv []any, key string) string {
	v, ok := lookup(kv, key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Has reports whether the key is present with any value.
func Has(kv []any, key string) bool {
	_, ok := lookup(kv, key)
	return ok
}

func lookup(kv []any, key string) (any, bool) {
	for i := 0; i < len(kv)-1; i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			continue
		}
		if k == key {
			return kv[i+1], true
		}
	}
	return nil, false
}
