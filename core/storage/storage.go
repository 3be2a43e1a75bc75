package storage

import (
	"maps"
	"sort"
)

// Storage is an ordered-agnostic bag of named values, the interchange format
// between entities and the database layer. It replaces attribute-level
// dynamism with an explicit map plus typed accessors.
type Storage map[string]any

// Keys returns the sorted keys, giving deterministic iteration for SQL
// generation and tests.
func (s Storage) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Copy returns a shallow copy.
func (s Storage) Copy() Storage {
	return maps.Clone(s)
}

// Merge overlays other onto a copy of s and returns it; s is unchanged.
func (s Storage) Merge(other Storage) Storage {
	out := maps.Clone(s)
	if out == nil {
		out = Storage{}
	}
	maps.Copy(out, other)
	return out
}

// String returns the value for key as a string, or "" when absent or not a
// string.
func (s Storage) String(key string) string {
	v, _ := s[key].(string)
	return v
}

// Int returns the value for key as an int64, converting the common integer
// widths; 0 when absent or non-numeric.
func (s Storage) Int(key string) int64 {
	switch v := s[key].(type) {
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	case float64:
		return int64(v)
	default:
		return 0
	}
}

// Bool returns the value for key as a bool, or false when absent.
func (s Storage) Bool(key string) bool {
	v, _ := s[key].(bool)
	return v
}
