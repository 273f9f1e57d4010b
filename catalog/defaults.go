package catalog

import (
	"reflect"
	"unsafe"

	"github.com/cockroachdb/errors"

	"github.com/wippyai/docwriter/meta"
)

// Defaulter is implemented by types whose default instance is not the Go
// zero value.
type Defaulter interface {
	SetDefaults()
}

var defaulterType = reflect.TypeFor[Defaulter]()

// RegisterDefault registers T and makes fn the source of its default
// instances. fn takes precedence over a Defaulter implementation.
func RegisterDefault[T any](c *Catalog, fn func() T) error {
	id, err := RegisterType[T](c)
	if err != nil {
		return err
	}
	if fn == nil {
		return errors.Newf("nil default constructor for %s", reflect.TypeFor[T]())
	}
	c.mu.Lock()
	c.defaults[id] = func(p unsafe.Pointer) {
		*(*T)(p) = fn()
	}
	c.mu.Unlock()
	return nil
}

// CreateDefaultInstance allocates a default instance of id. It returns nil
// for unregistered and interface types.
func (c *Catalog) CreateDefaultInstance(id meta.TypeID) unsafe.Pointer {
	c.mu.RLock()
	t, ok := c.types[id]
	init := c.defaults[id]
	c.mu.RUnlock()
	if !ok || t.Kind() == reflect.Interface {
		return nil
	}

	v := reflect.New(t)
	p := v.UnsafePointer()
	switch {
	case init != nil:
		init(p)
	case v.Type().Implements(defaulterType):
		v.Interface().(Defaulter).SetDefaults()
	}
	return p
}

// Default returns a fresh default instance of T.
func Default[T any](c *Catalog) (*T, error) {
	id := c.TypeIDOf(reflect.TypeFor[T]())
	p := c.CreateDefaultInstance(id)
	if p == nil {
		return nil, errors.Wrapf(ErrNotRegistered, "%s", reflect.TypeFor[T]())
	}
	return (*T)(p), nil
}
