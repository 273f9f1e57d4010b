package catalog

import (
	"reflect"
	"unsafe"

	"github.com/wippyai/docwriter/meta"
)

// pointerRTTI reads *T slots. Go pointers are not polymorphic, so the
// actual type of a non-nil slot is always the declared one.
type pointerRTTI meta.TypeID

func (r pointerRTTI) DeclaredTypeID() meta.TypeID { return meta.TypeID(r) }

func (r pointerRTTI) ActualTypeID(slot unsafe.Pointer) meta.TypeID {
	if slot == nil || *(*unsafe.Pointer)(slot) == nil {
		return meta.Nil
	}
	return meta.TypeID(r)
}

func (r pointerRTTI) ActualInstance(slot unsafe.Pointer) unsafe.Pointer {
	if slot == nil {
		return nil
	}
	return *(*unsafe.Pointer)(slot)
}

// interfaceRTTI reads interface slots. A dynamic *T reports T; a dynamic
// non-pointer value is copied so it can be addressed.
type interfaceRTTI struct {
	catalog *Catalog
	typ     reflect.Type
	id      meta.TypeID
}

func (r *interfaceRTTI) DeclaredTypeID() meta.TypeID { return r.id }

func (r *interfaceRTTI) dynamic(slot unsafe.Pointer) (reflect.Value, bool) {
	if slot == nil {
		return reflect.Value{}, false
	}
	v := reflect.NewAt(r.typ, slot).Elem()
	if v.IsNil() {
		return reflect.Value{}, false
	}
	dyn := v.Elem()
	if dyn.Kind() == reflect.Ptr && dyn.IsNil() {
		return reflect.Value{}, false
	}
	return dyn, true
}

func (r *interfaceRTTI) ActualTypeID(slot unsafe.Pointer) meta.TypeID {
	dyn, ok := r.dynamic(slot)
	if !ok {
		return meta.Nil
	}
	t := dyn.Type()
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return r.catalog.TypeIDOf(t)
}

func (r *interfaceRTTI) ActualInstance(slot unsafe.Pointer) unsafe.Pointer {
	dyn, ok := r.dynamic(slot)
	if !ok {
		return nil
	}
	if dyn.Kind() == reflect.Ptr {
		return dyn.UnsafePointer()
	}
	cp := reflect.New(dyn.Type())
	cp.Elem().Set(dyn)
	return cp.UnsafePointer()
}
