package builtin

import (
	"fmt"
	"math"
	"time"
	"unsafe"

	"github.com/wippyai/docwriter/document"
	docerrors "github.com/wippyai/docwriter/errors"
	"github.com/wippyai/docwriter/meta"
	"github.com/wippyai/docwriter/result"
	"github.com/wippyai/docwriter/serializer"
)

// storeDefault writes the explicit-default marker when the value equals
// its default and defaults are not kept.
func storeDefault(out *document.Value, def unsafe.Pointer, c *serializer.Context, equal func() bool) (result.Status, bool) {
	if def == nil || c.KeepDefaults() || !equal() {
		return result.Status{}, false
	}
	out.SetObject()
	return result.New(result.TaskWriteValue, result.DefaultsUsed), true
}

type scalar[T comparable] struct {
	write func(*document.Value, T)
}

func newScalar[T comparable](write func(*document.Value, T)) scalar[T] {
	return scalar[T]{write: write}
}

func (s scalar[T]) Store(out *document.Value, object, def unsafe.Pointer, _ meta.TypeID, c *serializer.Context) result.Status {
	v := *(*T)(object)
	if status, ok := storeDefault(out, def, c, func() bool { return v == *(*T)(def) }); ok {
		return status
	}
	s.write(out, v)
	return result.New(result.TaskWriteValue, result.Success)
}

type floatSerializer[T float32 | float64] struct{}

func (floatSerializer[T]) Store(out *document.Value, object, def unsafe.Pointer, _ meta.TypeID, c *serializer.Context) result.Status {
	v := float64(*(*T)(object))
	if math.IsNaN(v) || math.IsInf(v, 0) {
		out.SetNull()
		return c.ReportError(docerrors.New(result.TaskWriteValue, result.Unsupported).
			TypeName(fmt.Sprintf("%T", *(*T)(object))).
			Value(v).
			Detail("non-finite number").
			Build())
	}
	if status, ok := storeDefault(out, def, c, func() bool { return *(*T)(object) == *(*T)(def) }); ok {
		return status
	}
	out.SetFloat(v)
	return result.New(result.TaskWriteValue, result.Success)
}

type timeSerializer struct{}

func (timeSerializer) Store(out *document.Value, object, def unsafe.Pointer, _ meta.TypeID, c *serializer.Context) result.Status {
	v := (*time.Time)(object)
	if status, ok := storeDefault(out, def, c, func() bool { return v.Equal(*(*time.Time)(def)) }); ok {
		return status
	}
	// MarshalText fails for years outside [0, 9999].
	text, err := v.MarshalText()
	if err != nil {
		out.SetNull()
		return c.ReportError(docerrors.Wrap(result.TaskWriteValue, result.Unsupported, err, "time cannot be written as RFC 3339"))
	}
	out.SetString(string(text))
	return result.New(result.TaskWriteValue, result.Success)
}
