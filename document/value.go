// Package document holds the in-memory tree a serializer writes into.
//
// A Value is a JSON-like node: null, object (ordered members), array,
// string, bool or number. The zero Value is null. Setters replace the
// node's kind and content in place, so a parent may hand a scratch Value to
// a child writer and decide afterwards whether to attach it.
package document

import (
	"math"
)

// Kind is the type of a Value.
type Kind uint8

const (
	Null Kind = iota
	Object
	Array
	String
	Bool
	Int
	Uint
	Float
)

var kindNames = [...]string{
	Null:   "null",
	Object: "object",
	Array:  "array",
	String: "string",
	Bool:   "bool",
	Int:    "int",
	Uint:   "uint",
	Float:  "float",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// Member is one key/value pair of an object.
type Member struct {
	Key   string
	Value Value
}

// Value is a node of a document tree.
type Value struct {
	kind    Kind
	str     string
	num     uint64
	members []Member
	items   []Value
}

func (v *Value) reset(k Kind) {
	*v = Value{kind: k}
}

func (v *Value) Kind() Kind     { return v.kind }
func (v *Value) IsNull() bool   { return v.kind == Null }
func (v *Value) IsObject() bool { return v.kind == Object }
func (v *Value) IsArray() bool  { return v.kind == Array }

// SetNull makes v null.
func (v *Value) SetNull() { v.reset(Null) }

// SetObject makes v an empty object.
func (v *Value) SetObject() { v.reset(Object) }

// SetArray makes v an empty array.
func (v *Value) SetArray() { v.reset(Array) }

func (v *Value) SetString(s string) {
	v.reset(String)
	v.str = s
}

func (v *Value) SetBool(b bool) {
	v.reset(Bool)
	if b {
		v.num = 1
	}
}

func (v *Value) SetInt(i int64) {
	v.reset(Int)
	v.num = uint64(i)
}

func (v *Value) SetUint(u uint64) {
	v.reset(Uint)
	v.num = u
}

func (v *Value) SetFloat(f float64) {
	v.reset(Float)
	v.num = math.Float64bits(f)
}

// AddMember appends a member, turning v into an object first if needed.
// Keys are not deduplicated.
func (v *Value) AddMember(key string, val Value) {
	if v.kind != Object {
		v.SetObject()
	}
	v.members = append(v.members, Member{Key: key, Value: val})
}

// PushBack appends an element, turning v into an array first if needed.
func (v *Value) PushBack(val Value) {
	if v.kind != Array {
		v.SetArray()
	}
	v.items = append(v.items, val)
}

// Len returns the number of members of an object or elements of an array.
func (v *Value) Len() int {
	switch v.kind {
	case Object:
		return len(v.members)
	case Array:
		return len(v.items)
	}
	return 0
}

// Empty reports whether an object or array has no entries. Scalars and
// null are empty.
func (v *Value) Empty() bool {
	return v.Len() == 0
}

// Index returns the i-th element of an array.
func (v *Value) Index(i int) *Value {
	if v.kind != Array || i < 0 || i >= len(v.items) {
		return nil
	}
	return &v.items[i]
}

// Members returns the members of an object in insertion order.
func (v *Value) Members() []Member {
	if v.kind != Object {
		return nil
	}
	return v.members
}

// Member returns the first member named key.
func (v *Value) Member(key string) (*Value, bool) {
	if v.kind != Object {
		return nil, false
	}
	for i := range v.members {
		if v.members[i].Key == key {
			return &v.members[i].Value, true
		}
	}
	return nil, false
}

// Elements returns the elements of an array.
func (v *Value) Elements() []Value {
	if v.kind != Array {
		return nil
	}
	return v.items
}

func (v *Value) AsString() (string, bool) {
	return v.str, v.kind == String
}

func (v *Value) AsBool() (bool, bool) {
	return v.num != 0, v.kind == Bool
}

func (v *Value) AsInt() (int64, bool) {
	switch v.kind {
	case Int:
		return int64(v.num), true
	case Uint:
		if v.num <= math.MaxInt64 {
			return int64(v.num), true
		}
	}
	return 0, false
}

func (v *Value) AsUint() (uint64, bool) {
	switch v.kind {
	case Uint:
		return v.num, true
	case Int:
		if int64(v.num) >= 0 {
			return v.num, true
		}
	}
	return 0, false
}

func (v *Value) AsFloat() (float64, bool) {
	switch v.kind {
	case Float:
		return math.Float64frombits(v.num), true
	case Int:
		return float64(int64(v.num)), true
	case Uint:
		return float64(v.num), true
	}
	return 0, false
}

// Equal reports deep equality. Integers compare by numeric value across
// Int and Uint; member order is significant.
func (v *Value) Equal(o *Value) bool {
	if v.kind != o.kind {
		if isInteger(v.kind) && isInteger(o.kind) {
			a, aok := v.AsInt()
			b, bok := o.AsInt()
			return aok && bok && a == b
		}
		return false
	}
	switch v.kind {
	case Null:
		return true
	case String:
		return v.str == o.str
	case Bool, Int, Uint:
		return v.num == o.num
	case Float:
		return math.Float64frombits(v.num) == math.Float64frombits(o.num)
	case Object:
		if len(v.members) != len(o.members) {
			return false
		}
		for i := range v.members {
			if v.members[i].Key != o.members[i].Key || !v.members[i].Value.Equal(&o.members[i].Value) {
				return false
			}
		}
		return true
	case Array:
		if len(v.items) != len(o.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(&o.items[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func isInteger(k Kind) bool {
	return k == Int || k == Uint
}
