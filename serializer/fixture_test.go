package serializer_test

import (
	"reflect"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/wippyai/docwriter/builtin"
	"github.com/wippyai/docwriter/catalog"
	"github.com/wippyai/docwriter/document"
	docerrors "github.com/wippyai/docwriter/errors"
	"github.com/wippyai/docwriter/result"
	"github.com/wippyai/docwriter/serializer"
)

type Vec struct {
	X float64
	Y float64
}

type Shape interface{ Area() float64 }

type Circle struct {
	Radius float64
}

func (c *Circle) Area() float64 { return 3 * c.Radius * c.Radius }

type Rect struct {
	W, H float64
}

func (r Rect) Area() float64 { return r.W * r.H }

// Blob is never registered.
type Blob struct{ Size int }

func (b *Blob) Area() float64 { return float64(b.Size) }

type Scene struct {
	Name   string
	Origin Vec
	Main   Shape
	Items  []Shape
	Ptr    *Vec
}

type fixture struct {
	cat   *catalog.Catalog
	reg   *builtin.Registry
	diags docerrors.Collector
}

func newFixture(t *testing.T, types ...reflect.Type) *fixture {
	t.Helper()
	f := &fixture{cat: catalog.New()}
	f.reg = builtin.NewRegistry(f.cat)
	for _, typ := range append([]reflect.Type{
		reflect.TypeFor[Circle](),
		reflect.TypeFor[Rect](),
		reflect.TypeFor[Scene](),
	}, types...) {
		_, err := f.cat.Register(typ)
		require.NoError(t, err)
	}
	return f
}

func (f *fixture) settings(keep bool) serializer.Settings {
	return serializer.Settings{
		Catalog:      f.cat,
		Serializers:  f.reg,
		Reporting:    f.diags.Report,
		KeepDefaults: keep,
	}
}

func store[T any](f *fixture, v *T, keep bool) (document.Value, result.Status) {
	var out document.Value
	id := f.cat.TypeIDOf(reflect.TypeFor[T]())
	status := serializer.Store(&out, unsafe.Pointer(v), nil, id, f.settings(keep))
	return out, status
}

func storeWithDefault[T any](f *fixture, v, def *T, keep bool) (document.Value, result.Status) {
	var out document.Value
	id := f.cat.TypeIDOf(reflect.TypeFor[T]())
	status := serializer.Store(&out, unsafe.Pointer(v), unsafe.Pointer(def), id, f.settings(keep))
	return out, status
}
