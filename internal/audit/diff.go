package audit

import (
	"fmt"
	"reflect"
	"strings"
)

// Changes holds the minimal before/after key sets of a mutation. Both maps
// are always document-shaped and non-nil; an empty diff means "no changes".
type Changes struct {
	Before map[string]any `json:"before"`
	After  map[string]any `json:"after"`
}

// excludedFields are never included in a diff: secrets, bookkeeping
// timestamps and internal identifiers.
var excludedFields = map[string]struct{}{
	"password":   {},
	"created_at": {},
	"updated_at": {},
	"id":         {},
}

func isExcluded(key string) bool {
	if _, ok := excludedFields[key]; ok {
		return true
	}
	return strings.HasSuffix(key, "_id")
}

// Diff computes the changed fields between two snapshots. It walks the
// union of keys from both maps, skips excluded fields, and keeps a key in
// both outputs only when its values differ under loose equality.
func Diff(before, after map[string]any) Changes {
	changes := Changes{
		Before: make(map[string]any),
		After:  make(map[string]any),
	}

	keys := make(map[string]struct{}, len(before)+len(after))
	for k := range before {
		keys[k] = struct{}{}
	}
	for k := range after {
		keys[k] = struct{}{}
	}

	for k := range keys {
		if isExcluded(k) {
			continue
		}
		oldVal, newVal := before[k], after[k]
		if looseEqual(oldVal, newVal) {
			continue
		}
		changes.Before[k] = Normalize(oldVal).Plain()
		changes.After[k] = Normalize(newVal).Plain()
	}

	return changes
}

// looseEqual compares two values the way the audit trail needs: a numeric 1
// and the string "1" count as equal, as do int and float forms of the same
// number. Structured values fall back to deep equality.
func looseEqual(a, b any) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if reflect.DeepEqual(a, b) {
		return true
	}

	ka := reflect.ValueOf(a).Kind()
	kb := reflect.ValueOf(b).Kind()
	if isScalarKind(ka) && isScalarKind(kb) {
		return fmt.Sprint(a) == fmt.Sprint(b)
	}

	return false
}

func isScalarKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
