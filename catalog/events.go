package catalog

import (
	"reflect"
	"unsafe"

	"github.com/wippyai/docwriter/meta"
)

// WriteBeginner is implemented by types that prepare themselves before their
// members are written.
type WriteBeginner interface {
	OnWriteBegin()
}

// WriteEnder is implemented by types notified after their members were
// written.
type WriteEnder interface {
	OnWriteEnd()
}

var (
	writeBeginnerType = reflect.TypeFor[WriteBeginner]()
	writeEnderType    = reflect.TypeFor[WriteEnder]()
)

type events struct {
	typ        reflect.Type
	begin, end bool
}

func eventsFor(t reflect.Type) meta.EventHandler {
	pt := reflect.PointerTo(t)
	ev := &events{
		typ:   t,
		begin: pt.Implements(writeBeginnerType),
		end:   pt.Implements(writeEnderType),
	}
	if !ev.begin && !ev.end {
		return nil
	}
	return ev
}

func (e *events) OnWriteBegin(instance unsafe.Pointer) {
	if e.begin {
		reflect.NewAt(e.typ, instance).Interface().(WriteBeginner).OnWriteBegin()
	}
}

func (e *events) OnWriteEnd(instance unsafe.Pointer) {
	if e.end {
		reflect.NewAt(e.typ, instance).Interface().(WriteEnder).OnWriteEnd()
	}
}
