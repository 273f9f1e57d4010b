package serializer

import (
	"unsafe"

	"github.com/wippyai/docwriter/document"
	docerrors "github.com/wippyai/docwriter/errors"
	"github.com/wippyai/docwriter/meta"
	"github.com/wippyai/docwriter/result"
)

type pointerAction uint8

const (
	// fullyProcessed: the resolver reported a failure, nothing to write.
	fullyProcessed pointerAction = iota
	writeNull
	continueProcessing
)

// resolvedPointer is what the resolver hands back for continueProcessing.
type resolvedPointer struct {
	object      unsafe.Pointer
	def         unsafe.Pointer
	cd          *meta.ClassData
	storeTypeID bool
}

// resolvePointer dereferences the pointer slots object and def, described by
// the declared class cd. When the dynamic type differs from the declared
// one the dynamic class replaces cd. A default of a different dynamic type
// is dropped and, without KeepDefaults, replaced by a fresh default of the
// dynamic type.
func (c *Context) resolvePointer(object, def unsafe.Pointer, cd *meta.ClassData) (resolvedPointer, result.Status, pointerAction) {
	r := resolvedPointer{cd: cd}
	rtti := cd.RTTI
	if rtti == nil {
		return r, c.ReportError(docerrors.New(result.TaskRetrieveInfo, result.Unknown).
			TypeName(cd.Name).
			Detail("no runtime type information").
			Build()), fullyProcessed
	}

	r.object = rtti.ActualInstance(object)
	defActual := meta.Nil
	if def != nil {
		r.def = rtti.ActualInstance(def)
		if r.def != nil {
			defActual = rtti.ActualTypeID(def)
		}
	}

	if r.object == nil {
		outcome := result.DefaultsUsed
		if r.def != nil || c.KeepDefaults() {
			outcome = result.Success
		}
		return r, result.New(result.TaskWriteValue, outcome), writeNull
	}

	actual := rtti.ActualTypeID(object)
	if actual != rtti.DeclaredTypeID() {
		r.cd = c.Catalog().FindClassData(actual)
		if r.cd == nil {
			return r, c.ReportError(docerrors.New(result.TaskRetrieveInfo, result.Unknown).
				TypeName(actual.String()).
				Detail("no class data registered for value stored as %s", cd.Name).
				Build()), fullyProcessed
		}
		r.storeTypeID = actual != defActual || c.KeepDefaults()
	}

	if r.def != nil && defActual != actual {
		r.def = nil
	}
	if r.def == nil && !c.KeepDefaults() {
		r.def = c.Catalog().CreateDefaultInstance(actual)
		if r.def == nil {
			return r, c.ReportError(docerrors.DefaultFailed(r.cd.Name)), fullyProcessed
		}
	}
	return r, result.New(result.TaskWriteValue, result.Success), continueProcessing
}

// StoreWithClassDataFromPointer writes the value a pointer slot refers to.
// cd describes the declared type of the slot. An empty slot is written as
// null.
func (c *Context) StoreWithClassDataFromPointer(out *document.Value, object, def unsafe.Pointer, cd *meta.ClassData) result.Status {
	r, status, action := c.resolvePointer(object, def, cd)
	switch action {
	case writeNull:
		out.SetNull()
		return status
	case continueProcessing:
		return c.StoreWithClassData(out, r.object, r.def, r.cd, r.storeTypeID)
	}
	return status
}
