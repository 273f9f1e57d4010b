package meta

import (
	"unsafe"

	"github.com/google/uuid"
)

// TypeID identifies a registered type.
type TypeID = uuid.UUID

// Nil is the zero TypeID.
var Nil TypeID

// EnumSerializerTypeID identifies the builtin enum serializer in a
// serializer registry.
var EnumSerializerTypeID = uuid.MustParse("7b1c3e0a-5d0e-4c47-9f3e-0e2a4c9a6b21")

// ElementFlags qualify a ClassElement.
type ElementFlags uint8

const (
	// FlagPointer marks an element whose memory is a pointer or interface
	// slot rather than the value itself.
	FlagPointer ElementFlags = 1 << iota
	// FlagBaseClass marks an embedded base whose members are written into
	// the enclosing object.
	FlagBaseClass
	// FlagNoDefaultValue disables default comparison for the element.
	FlagNoDefaultValue
)

// Has reports whether all bits of f are set.
func (fl ElementFlags) Has(f ElementFlags) bool {
	return fl&f == f
}

// ClassElement is one declared field of a class.
type ClassElement struct {
	Name   string
	TypeID TypeID
	Offset uintptr
	Flags  ElementFlags
}

func (e ClassElement) IsPointer() bool   { return e.Flags.Has(FlagPointer) }
func (e ClassElement) IsBaseClass() bool { return e.Flags.Has(FlagBaseClass) }
func (e ClassElement) NoDefault() bool   { return e.Flags.Has(FlagNoDefaultValue) }

// ClassData describes one type.
type ClassData struct {
	TypeID TypeID
	// GenericTypeID is the id of the type this one instantiates or is
	// declared over, such as float64 for "type Meters float64".
	GenericTypeID TypeID
	Name          string
	Size          uintptr
	Elements      []ClassElement

	Container Container
	RTTI      RTTI
	Enum      *EnumInfo
	Events    EventHandler
}

func (cd *ClassData) IsContainer() bool { return cd.Container != nil }
func (cd *ClassData) IsEnum() bool      { return cd.Enum != nil }

// HasGenericType reports whether GenericTypeID names a type other than the
// class itself.
func (cd *ClassData) HasGenericType() bool {
	return cd.GenericTypeID != Nil && cd.GenericTypeID != cd.TypeID
}

// ElementFunc receives one container element. cd and el are nil when the
// container cannot describe the element statically. Returning false stops
// the enumeration.
type ElementFunc func(elem unsafe.Pointer, typeID TypeID, cd *ClassData, el *ClassElement) bool

// Container is the capability of a type that holds a sequence of elements.
type Container interface {
	// IsAssociative reports keyed containers such as maps.
	IsAssociative() bool
	// IsSmartPointer reports containers holding at most one element that is
	// written as a bare value.
	IsSmartPointer() bool
	Size(instance unsafe.Pointer) int
	EnumElements(instance unsafe.Pointer, fn ElementFunc)
}

// RTTI discovers the dynamic type behind a pointer slot: the memory of a
// field flagged FlagPointer.
type RTTI interface {
	DeclaredTypeID() TypeID
	// ActualTypeID returns the type of the value the slot refers to, or Nil
	// when the slot is empty.
	ActualTypeID(slot unsafe.Pointer) TypeID
	// ActualInstance returns the address of the value the slot refers to,
	// or nil when the slot is empty.
	ActualInstance(slot unsafe.Pointer) unsafe.Pointer
}

// EventHandler is notified around the write of a class instance.
type EventHandler interface {
	OnWriteBegin(instance unsafe.Pointer)
	OnWriteEnd(instance unsafe.Pointer)
}
