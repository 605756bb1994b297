package xmlmap

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindString Kind = iota
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value is a node of a decoded response. The zero value is an empty string.
type Value struct {
	kind Kind
	str  string
	obj  *orderedmap.OrderedMap[string, *Value]
	arr  []*Value
}

// String returns a string value.
func String(s string) *Value {
	return &Value{kind: KindString, str: s}
}

// Object returns an empty object value.
func Object() *Value {
	return &Value{kind: KindObject, obj: orderedmap.New[string, *Value]()}
}

// Array returns an array value holding items.
func Array(items ...*Value) *Value {
	return &Value{kind: KindArray, arr: append([]*Value(nil), items...)}
}

// Kind reports the variant held by v. A nil Value is reported as a string.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindString
	}
	return v.kind
}

// Str returns the string held by v, or "" for objects, arrays and nil.
func (v *Value) Str() string {
	if v == nil || v.kind != KindString {
		return ""
	}
	return v.str
}

// Get returns the entry stored under key. It reports false when v is not an
// object or the key is absent.
func (v *Value) Get(key string) (*Value, bool) {
	if v == nil || v.kind != KindObject {
		return nil, false
	}
	return v.obj.Get(key)
}

// Has reports whether v is an object containing key.
func (v *Value) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}

// Path walks nested objects following keys and returns the value found at
// the end, or nil if any step is missing.
func (v *Value) Path(keys ...string) *Value {
	cur := v
	for _, k := range keys {
		next, ok := cur.Get(k)
		if !ok {
			return nil
		}
		cur = next
	}
	return cur
}

// Keys returns the object keys in insertion order.
func (v *Value) Keys() []string {
	if v == nil || v.kind != KindObject {
		return nil
	}
	keys := make([]string, 0, v.obj.Len())
	for pair := v.obj.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Len returns the number of entries of an object or items of an array.
// Strings have length zero.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.kind {
	case KindObject:
		return v.obj.Len()
	case KindArray:
		return len(v.arr)
	default:
		return 0
	}
}

// Index returns the i-th item of an array, or nil when out of range.
func (v *Value) Index(i int) *Value {
	if v == nil || v.kind != KindArray || i < 0 || i >= len(v.arr) {
		return nil
	}
	return v.arr[i]
}

// Items returns the array items. A non-array value is returned as a single
// item list, which is convenient for elements that may or may not repeat.
func (v *Value) Items() []*Value {
	if v == nil {
		return nil
	}
	if v.kind == KindArray {
		return v.arr
	}
	return []*Value{v}
}

// Set stores child under key, keeping the original position when the key
// already exists. It panics if v is not an object.
func (v *Value) Set(key string, child *Value) {
	if v.kind != KindObject {
		panic("xmlmap: Set on " + v.kind.String() + " value")
	}
	v.obj.Set(key, child)
}

// Append adds items to an array. It panics if v is not an array.
func (v *Value) Append(items ...*Value) {
	if v.kind != KindArray {
		panic("xmlmap: Append on " + v.kind.String() + " value")
	}
	v.arr = append(v.arr, items...)
}

// Equal reports whether v and other hold the same tree, including object
// key order.
func (v *Value) Equal(other *Value) bool {
	if v == nil || other == nil {
		return v == other
	}
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	default:
		if v.obj.Len() != other.obj.Len() {
			return false
		}
		a, b := v.obj.Oldest(), other.obj.Oldest()
		for ; a != nil && b != nil; a, b = a.Next(), b.Next() {
			if a.Key != b.Key || !a.Value.Equal(b.Value) {
				return false
			}
		}
		return true
	}
}

// MarshalJSON encodes v keeping object keys in document order.
func (v *Value) MarshalJSON() ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	switch v.kind {
	case KindObject:
		return v.obj.MarshalJSON()
	case KindArray:
		if v.arr == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.arr)
	default:
		return json.Marshal(v.str)
	}
}
