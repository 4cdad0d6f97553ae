package field

import "strings"

// Record is a loosely shaped element, as decoded from a JSON object.
type Record = map[string]any

// Separator splits a path into nested keys.
const Separator = "."

// Get returns the value found at path in r.
// Returns nil and false when any segment of the path is missing or a
// non-terminal segment does not hold a nested record.
//
//	Get(r, "user.address.city") // "London", true
func Get(r Record, path string) (any, bool) {
	segments := strings.Split(path, Separator)
	current := r
	for i, seg := range segments {
		val, ok := current[seg]
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return val, true
		}
		if current, ok = val.(map[string]any); !ok {
			return nil, false
		}
	}
	return nil, false
}

// Has reports whether path exists in r, even when it holds nil.
func Has(r Record, path string) bool {
	_, ok := Get(r, path)
	return ok
}

// Set writes value at path, creating intermediate records as needed and
// replacing non-record values that stand in the way.
//
//	Set(r, "user.address.postcode", "EC1")
func Set(r Record, path string, value any) {
	seg, rest, nested := strings.Cut(path, Separator)
	if !nested {
		r[path] = value
		return
	}
	child, ok := r[seg].(map[string]any)
	if !ok {
		child = make(Record)
		r[seg] = child
	}
	Set(child, rest, value)
}

// Forget removes path from r. Intermediate records are left in place.
func Forget(r Record, path string) {
	seg, rest, nested := strings.Cut(path, Separator)
	if !nested {
		delete(r, path)
		return
	}
	if child, ok := r[seg].(map[string]any); ok {
		Forget(child, rest)
	}
}

// Dot flattens a nested record into a single level keyed by full paths.
//
//	Dot(Record{"a": map[string]any{"b": 1}}) // Record{"a.b": 1}
func Dot(r Record) Record {
	out := make(Record)
	flatten("", r, out)
	return out
}

func flatten(prefix string, r Record, out Record) {
	for k, v := range r {
		key := k
		if prefix != "" {
			key = prefix + Separator + k
		}
		if nested, ok := v.(map[string]any); ok && len(nested) > 0 {
			flatten(key, nested, out)
			continue
		}
		out[key] = v
	}
}
