package serializer

import (
	"unsafe"

	"github.com/wippyai/docwriter/document"
	"github.com/wippyai/docwriter/meta"
	"github.com/wippyai/docwriter/result"
)

// StoreClass writes the elements of cd as members of out. A class with no
// elements is a default value.
func (c *Context) StoreClass(out *document.Value, object, def unsafe.Pointer, cd *meta.ClassData) result.Status {
	if !out.IsObject() {
		out.SetObject()
	}

	if cd.Events != nil && c.base != (baseFrame{object: object, cd: cd}) {
		cd.Events.OnWriteBegin(object)
		defer cd.Events.OnWriteEnd(object)
	}

	if len(cd.Elements) == 0 {
		return result.New(result.TaskWriteValue, c.defaultOutcome())
	}

	var acc result.Accumulator
	for i := range cd.Elements {
		el := &cd.Elements[i]
		var elemDef unsafe.Pointer
		if def != nil {
			elemDef = unsafe.Add(def, el.Offset)
		}
		status := c.storeElement(out, unsafe.Add(object, el.Offset), elemDef, el, nil, cd)
		acc.Add(status)
		if status.Outcome == result.Halted {
			break
		}
	}
	return acc.Result(result.New(result.TaskWriteValue, c.defaultOutcome()))
}
