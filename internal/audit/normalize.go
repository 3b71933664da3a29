package audit

import (
	"encoding/json"
	"reflect"
)

// Kind classifies a normalized value for storage. The storage backend
// renders documents and lists differently, so an empty associative
// structure must stay a document and never collapse into an empty list.
type Kind int

const (
	KindScalar Kind = iota
	KindDocument
	KindList
)

// Value is the tagged, storage-safe form of an arbitrary payload value.
type Value struct {
	Kind   Kind
	Doc    map[string]Value
	List   []Value
	Scalar any
}

// Document builds a document Value from a plain map.
func Document(m map[string]any) Value {
	doc := make(map[string]Value, len(m))
	for k, v := range m {
		doc[k] = Normalize(v)
	}
	return Value{Kind: KindDocument, Doc: doc}
}

// Normalize recursively classifies v: keyed structures become documents,
// sequential structures become lists, everything else passes through as a
// scalar. Empty maps normalize to empty documents, not empty lists.
func Normalize(v any) Value {
	switch val := v.(type) {
	case nil:
		return Value{Kind: KindScalar, Scalar: nil}
	case map[string]any:
		return Document(val)
	case []any:
		list := make([]Value, 0, len(val))
		for _, item := range val {
			list = append(list, Normalize(item))
		}
		return Value{Kind: KindList, List: list}
	case Value:
		return val
	}

	// Fall back to reflection for other map and slice shapes
	// (e.g. map[string]int payloads attached as details).
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		doc := make(map[string]Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key, ok := iter.Key().Interface().(string)
			if !ok {
				continue
			}
			doc[key] = Normalize(iter.Value().Interface())
		}
		return Value{Kind: KindDocument, Doc: doc}
	case reflect.Slice, reflect.Array:
		list := make([]Value, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			list = append(list, Normalize(rv.Index(i).Interface()))
		}
		return Value{Kind: KindList, List: list}
	}

	return Value{Kind: KindScalar, Scalar: v}
}

// MarshalJSON renders documents as JSON objects, lists as JSON arrays and
// scalars as themselves. An empty document serializes to {} rather than [].
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindDocument:
		if v.Doc == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(v.Doc)
	case KindList:
		if v.List == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.List)
	default:
		return json.Marshal(v.Scalar)
	}
}

// Plain converts a normalized Value back into plain Go data with the
// document/list distinction preserved (maps stay maps even when empty).
func (v Value) Plain() any {
	switch v.Kind {
	case KindDocument:
		out := make(map[string]any, len(v.Doc))
		for k, item := range v.Doc {
			out[k] = item.Plain()
		}
		return out
	case KindList:
		out := make([]any, 0, len(v.List))
		for _, item := range v.List {
			out = append(out, item.Plain())
		}
		return out
	default:
		return v.Scalar
	}
}

// NormalizeMap normalizes every value of m, returning a plain map that is
// safe to hand to the storage layer. A nil map becomes an empty one.
func NormalizeMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = Normalize(v).Plain()
	}
	return out
}
