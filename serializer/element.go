package serializer

import (
	"slices"
	"unsafe"

	"github.com/wippyai/docwriter/docpath"
	"github.com/wippyai/docwriter/document"
	docerrors "github.com/wippyai/docwriter/errors"
	"github.com/wippyai/docwriter/meta"
	"github.com/wippyai/docwriter/result"
)

// StoreWithClassElement writes one element into parent. An array parent
// gets the value appended; an object parent gets it added under el.Name
// unless it is defaulted or failed without output. cd may be nil, in which
// case it is looked up by el.TypeID.
func (c *Context) StoreWithClassElement(parent *document.Value, object, def unsafe.Pointer, el *meta.ClassElement, cd *meta.ClassData) result.Status {
	return c.storeElement(parent, object, def, el, cd, nil)
}

// storeElement writes el, an element of owner. owner may be nil.
func (c *Context) storeElement(parent *document.Value, object, def unsafe.Pointer, el *meta.ClassElement, cd, owner *meta.ClassData) result.Status {
	if el.NoDefault() {
		def = nil
	}
	if cd == nil {
		cd = c.Catalog().FindClassData(el.TypeID)
	}
	if el.IsBaseClass() {
		return c.storeBaseClass(parent, object, def, el, cd, owner)
	}

	var scope docpath.Scope
	if parent.IsArray() {
		scope = c.path.PushIndex(parent.Len())
	} else {
		scope = c.path.Push(el.Name)
	}
	defer scope.Pop()

	var scratch document.Value
	var status result.Status
	switch {
	case cd == nil:
		status = c.ReportError(docerrors.MissingClassData(el.TypeID.String()))
	case el.IsPointer():
		status = c.StoreWithClassDataFromPointer(&scratch, object, def, cd)
	default:
		status = c.StoreWithClassData(&scratch, object, def, cd, false)
	}

	c.attach(parent, el.Name, &scratch, status)
	return status
}

// attach adds scratch to parent. Arrays always receive an entry so indices
// stay aligned with the source; failed entries become {}.
func (c *Context) attach(parent *document.Value, name string, scratch *document.Value, status result.Status) {
	failedEmpty := status.Outcome == result.Halted || (status.Failed() && scratch.IsNull())

	if parent.IsArray() {
		if failedEmpty {
			var placeholder document.Value
			placeholder.SetObject()
			parent.PushBack(placeholder)
			return
		}
		parent.PushBack(*scratch)
		return
	}

	if failedEmpty || (status.IsDefault() && !c.KeepDefaults()) {
		return
	}
	parent.AddMember(name, *scratch)
}

// storeBaseClass writes a base class into a scratch object and moves its
// members into parent. Members shadowed by a field owner declares itself,
// or already present in parent, are dropped. Write events of the base are
// not fired: its methods are promoted to the derived instance, which
// already received them.
func (c *Context) storeBaseClass(parent *document.Value, object, def unsafe.Pointer, el *meta.ClassElement, cd, owner *meta.ClassData) result.Status {
	if cd == nil {
		return c.ReportError(docerrors.New(result.TaskRetrieveInfo, result.Unknown).
			TypeName(el.TypeID.String()).
			Detail("no class data registered for base class %s", el.Name).
			Build())
	}

	prev := c.base
	c.base = baseFrame{object: object, cd: cd}
	var scratch document.Value
	status := c.StoreWithClassData(&scratch, object, def, cd, false)
	c.base = prev
	if status.Outcome == result.Halted {
		return status
	}

	switch {
	case scratch.IsObject():
		if !parent.IsObject() {
			parent.SetObject()
		}
		for _, m := range scratch.Members() {
			if _, dup := parent.Member(m.Key); dup || declares(owner, m.Key) {
				continue
			}
			parent.AddMember(m.Key, m.Value)
		}
	case scratch.IsNull():
	default:
		return result.Combine(status, c.ReportError(docerrors.Unsupported(cd.Name, "base class was not written as an object")))
	}
	return status
}

// declares reports whether owner has a non-base element named key.
func declares(owner *meta.ClassData, key string) bool {
	if owner == nil {
		return false
	}
	return slices.ContainsFunc(owner.Elements, func(el meta.ClassElement) bool {
		return !el.IsBaseClass() && el.Name == key
	})
}
