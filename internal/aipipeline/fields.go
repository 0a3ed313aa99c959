package aipipeline

import (
	"math"
	"strings"
)

// Accessors over decoded JSON. Model output is untrusted, so each one reports
// whether the value was present with the expected type.

func stringField(m map[string]any, key string) (string, bool) {
	v, ok := m[key].(string)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func stringOr(m map[string]any, key, def string) string {
	if v, ok := stringField(m, key); ok {
		return v
	}
	return def
}

func numberField(m map[string]any, key string) (float64, bool) {
	v, ok := m[key].(float64)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func intField(m map[string]any, key string) (int, bool) {
	v, ok := numberField(m, key)
	if !ok || v != math.Trunc(v) {
		return 0, false
	}
	return int(v), true
}

func boolOr(m map[string]any, key string, def bool) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return def
}

func objectField(m map[string]any, key string) (map[string]any, bool) {
	v, ok := m[key].(map[string]any)
	return v, ok
}

func arrayField(m map[string]any, key string) ([]any, bool) {
	v, ok := m[key].([]any)
	return v, ok
}

// stringList keeps the non-blank string elements of key and drops the rest.
func stringList(m map[string]any, key string) []string {
	out := []string{}
	items, _ := arrayField(m, key)
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// requiredStringList is stringList for arrays the schema requires. An array
// that had entries but lost all of them is a reconciliation failure.
func requiredStringList(m map[string]any, key string) ([]string, error) {
	out := stringList(m, key)
	if items, _ := arrayField(m, key); len(items) > 0 && len(out) == 0 {
		return nil, reconciliationError("%s: no usable entries in %d", key, len(items))
	}
	return out, nil
}

var incompleteLocations = map[string]struct{}{
	"":        {},
	"n/a":     {},
	"na":      {},
	"none":    {},
	"unknown": {},
	"tbd":     {},
	"...":     {},
}

// repairLocation substitutes the destination for a blank or placeholder location.
func repairLocation(location, destination string) string {
	if _, bad := incompleteLocations[strings.ToLower(strings.TrimSpace(location))]; bad {
		return destination
	}
	return strings.TrimSpace(location)
}
