package meta

import "unsafe"

// EnumValue is one named constant of an enum.
type EnumValue struct {
	Name  string
	Value int64
}

// EnumInfo describes an integer type with named constants.
type EnumInfo struct {
	Values []EnumValue
	// Size is the width of the underlying integer in bytes.
	Size   uintptr
	Signed bool
}

// Lookup returns the name of value v.
func (e *EnumInfo) Lookup(v int64) (string, bool) {
	for _, ev := range e.Values {
		if ev.Value == v {
			return ev.Name, true
		}
	}
	return "", false
}

// Load reads the integer stored at ptr.
func (e *EnumInfo) Load(ptr unsafe.Pointer) int64 {
	switch e.Size {
	case 1:
		if e.Signed {
			return int64(*(*int8)(ptr))
		}
		return int64(*(*uint8)(ptr))
	case 2:
		if e.Signed {
			return int64(*(*int16)(ptr))
		}
		return int64(*(*uint16)(ptr))
	case 4:
		if e.Signed {
			return int64(*(*int32)(ptr))
		}
		return int64(*(*uint32)(ptr))
	default:
		if e.Signed {
			return *(*int64)(ptr)
		}
		return int64(*(*uint64)(ptr))
	}
}
