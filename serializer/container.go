package serializer

import (
	"unsafe"

	"github.com/wippyai/docwriter/document"
	docerrors "github.com/wippyai/docwriter/errors"
	"github.com/wippyai/docwriter/meta"
	"github.com/wippyai/docwriter/result"
)

// StoreContainer writes the elements of a container as an array. Every
// element is appended, failed ones as {}, so indices match the source.
// A smart pointer is written as its single element, or null when empty.
// Keyed containers are not supported.
func (c *Context) StoreContainer(out *document.Value, object, def unsafe.Pointer, cd *meta.ClassData) result.Status {
	container := cd.Container
	if container.IsAssociative() {
		out.SetNull()
		return c.ReportError(docerrors.Unsupported(cd.Name, "keyed containers are not supported"))
	}
	out.SetArray()

	if container.Size(object) == 0 {
		if container.IsSmartPointer() {
			out.SetNull()
		}
		return result.New(result.TaskWriteValue, c.defaultOutcome())
	}

	var acc result.Accumulator
	container.EnumElements(object, func(elem unsafe.Pointer, typeID meta.TypeID, ecd *meta.ClassData, el *meta.ClassElement) bool {
		if el == nil {
			el = &meta.ClassElement{Name: "element", TypeID: typeID}
		}

		// A fresh default per element; pointer elements get theirs from
		// the resolver.
		var elemDef unsafe.Pointer
		if !el.IsPointer() && !c.KeepDefaults() {
			elemDef = c.Catalog().CreateDefaultInstance(typeID)
			if elemDef == nil {
				scope := c.path.PushIndex(out.Len())
				name := typeID.String()
				if ecd != nil {
					name = ecd.Name
				}
				acc.Add(c.ReportError(docerrors.DefaultFailed(name)))
				scope.Pop()
			}
		}

		status := c.StoreWithClassElement(out, elem, elemDef, el, ecd)
		acc.Add(status)
		return status.Outcome != result.Halted
	})
	status := acc.Result(result.New(result.TaskWriteValue, c.defaultOutcome()))

	if container.IsSmartPointer() {
		if first := out.Index(0); first != nil {
			*out = *first
		} else {
			out.SetNull()
		}
	}
	return status
}
