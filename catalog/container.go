package catalog

import (
	"reflect"
	"unsafe"

	"github.com/cockroachdb/errors"

	"github.com/wippyai/docwriter/meta"
)

type sliceHeader struct {
	Data unsafe.Pointer
	Len  int
	Cap  int
}

// sequence walks slices and fixed-size arrays. For arrays, fixed is the
// length, which may be zero.
type sequence struct {
	elem      meta.ClassElement
	elemClass *meta.ClassData
	stride    uintptr
	array     bool
	fixed     int
}

func (s *sequence) IsAssociative() bool  { return false }
func (s *sequence) IsSmartPointer() bool { return false }

func (s *sequence) Size(instance unsafe.Pointer) int {
	if s.array {
		return s.fixed
	}
	return (*sliceHeader)(instance).Len
}

func (s *sequence) EnumElements(instance unsafe.Pointer, fn meta.ElementFunc) {
	data, n := instance, s.fixed
	if !s.array {
		hdr := (*sliceHeader)(instance)
		data, n = hdr.Data, hdr.Len
	}
	for i := 0; i < n; i++ {
		el := s.elem
		if !fn(unsafe.Add(data, uintptr(i)*s.stride), el.TypeID, s.elemClass, &el) {
			return
		}
	}
}

// mapping exposes map values so the walker can report them. Values are
// copied before they are handed out.
type mapping struct {
	typ       reflect.Type
	elem      meta.ClassElement
	elemClass *meta.ClassData
}

func (m *mapping) IsAssociative() bool  { return true }
func (m *mapping) IsSmartPointer() bool { return false }

func (m *mapping) Size(instance unsafe.Pointer) int {
	return reflect.NewAt(m.typ, instance).Elem().Len()
}

func (m *mapping) EnumElements(instance unsafe.Pointer, fn meta.ElementFunc) {
	iter := reflect.NewAt(m.typ, instance).Elem().MapRange()
	for iter.Next() {
		slot := reflect.New(m.typ.Elem())
		slot.Elem().Set(iter.Value())
		el := m.elem
		if !fn(slot.UnsafePointer(), el.TypeID, m.elemClass, &el) {
			return
		}
	}
}

// Ref holds at most one *T and is written as the bare value, or null when
// empty.
type Ref[T any] struct {
	ptr *T
}

// NewRef returns a Ref holding v.
func NewRef[T any](v *T) Ref[T] {
	return Ref[T]{ptr: v}
}

// Get returns the held pointer, or nil.
func (r Ref[T]) Get() *T { return r.ptr }

// Set replaces the held pointer.
func (r *Ref[T]) Set(v *T) { r.ptr = v }

// IsZero reports whether the ref is empty.
func (r Ref[T]) IsZero() bool { return r.ptr == nil }

func (Ref[T]) refTarget() reflect.Type { return reflect.TypeFor[T]() }

type refHolder interface {
	refTarget() reflect.Type
}

var refHolderType = reflect.TypeFor[refHolder]()

// refTemplateID is the generic type id shared by every Ref instantiation.
var refTemplateID = uuidFromKey(refHolderType.PkgPath() + ".Ref")

type smartPointer struct {
	elem      meta.ClassElement
	elemClass *meta.ClassData
}

func (p *smartPointer) IsAssociative() bool  { return false }
func (p *smartPointer) IsSmartPointer() bool { return true }

func (p *smartPointer) Size(instance unsafe.Pointer) int {
	if *(*unsafe.Pointer)(instance) == nil {
		return 0
	}
	return 1
}

// EnumElements hands out the Ref itself: its only field is the pointer
// slot, so the element is a pointer element at offset zero.
func (p *smartPointer) EnumElements(instance unsafe.Pointer, fn meta.ElementFunc) {
	if *(*unsafe.Pointer)(instance) == nil {
		return
	}
	el := p.elem
	fn(instance, el.TypeID, p.elemClass, &el)
}

func (c *Catalog) buildRef(t reflect.Type, cd *meta.ClassData) error {
	target := reflect.Zero(t).Interface().(refHolder).refTarget()
	if k := target.Kind(); k == reflect.Ptr || k == reflect.Interface {
		return errors.Wrapf(ErrUnsupportedType, "%s: reference to %s", t, k)
	}
	id, err := c.register(target)
	if err != nil {
		return errors.Wrapf(err, "%s target", t)
	}
	cd.GenericTypeID = refTemplateID
	cd.Container = &smartPointer{
		elem: meta.ClassElement{
			Name:   elementName,
			TypeID: id,
			Flags:  meta.FlagPointer,
		},
		elemClass: c.byID[id],
	}
	return nil
}
