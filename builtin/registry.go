// Package builtin provides serializers for scalar types and enums and a
// registry to look them up by type id.
package builtin

import (
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/wippyai/docwriter/document"
	"github.com/wippyai/docwriter/meta"
	"github.com/wippyai/docwriter/serializer"
)

// TypeIDResolver maps Go types to type ids, as catalog.Catalog does.
type TypeIDResolver interface {
	TypeIDOf(t reflect.Type) meta.TypeID
}

// Registry maps type ids to custom serializers. It is safe for concurrent
// use.
type Registry struct {
	mu           sync.RWMutex
	ids          TypeIDResolver
	byType       map[meta.TypeID]serializer.CustomSerializer
	bySerializer map[meta.TypeID]serializer.CustomSerializer
}

// NewRegistry returns a registry holding the builtin serializers, with type
// ids resolved through ids.
func NewRegistry(ids TypeIDResolver) *Registry {
	r := &Registry{
		ids:          ids,
		byType:       make(map[meta.TypeID]serializer.CustomSerializer),
		bySerializer: make(map[meta.TypeID]serializer.CustomSerializer),
	}

	Register[bool](r, newScalar(func(v *document.Value, b bool) { v.SetBool(b) }))
	registerInts(r)
	Register[float32](r, floatSerializer[float32]{})
	Register[float64](r, floatSerializer[float64]{})
	Register[string](r, newScalar(func(v *document.Value, s string) { v.SetString(s) }))
	Register[uuid.UUID](r, newScalar(func(v *document.Value, id uuid.UUID) { v.SetString(id.String()) }))
	Register[time.Duration](r, newScalar(func(v *document.Value, d time.Duration) { v.SetString(d.String()) }))
	Register[time.Time](r, timeSerializer{})

	r.RegisterSerializerType(meta.EnumSerializerTypeID, EnumSerializer{})
	return r
}

func registerInts(r *Registry) {
	Register[int](r, newScalar(func(v *document.Value, i int) { v.SetInt(int64(i)) }))
	Register[int8](r, newScalar(func(v *document.Value, i int8) { v.SetInt(int64(i)) }))
	Register[int16](r, newScalar(func(v *document.Value, i int16) { v.SetInt(int64(i)) }))
	Register[int32](r, newScalar(func(v *document.Value, i int32) { v.SetInt(int64(i)) }))
	Register[int64](r, newScalar(func(v *document.Value, i int64) { v.SetInt(i) }))
	Register[uint](r, newScalar(func(v *document.Value, u uint) { v.SetUint(uint64(u)) }))
	Register[uint8](r, newScalar(func(v *document.Value, u uint8) { v.SetUint(uint64(u)) }))
	Register[uint16](r, newScalar(func(v *document.Value, u uint16) { v.SetUint(uint64(u)) }))
	Register[uint32](r, newScalar(func(v *document.Value, u uint32) { v.SetUint(uint64(u)) }))
	Register[uint64](r, newScalar(func(v *document.Value, u uint64) { v.SetUint(u) }))
	Register[uintptr](r, newScalar(func(v *document.Value, u uintptr) { v.SetUint(uint64(u)) }))
}

// Register installs s for the Go type T.
func Register[T any](r *Registry, s serializer.CustomSerializer) {
	r.Register(r.ids.TypeIDOf(reflect.TypeFor[T]()), s)
}

// Register installs s for values of type id.
func (r *Registry) Register(id meta.TypeID, s serializer.CustomSerializer) {
	r.mu.Lock()
	r.byType[id] = s
	r.mu.Unlock()
}

// RegisterSerializerType installs s under its own serializer type id.
func (r *Registry) RegisterSerializerType(id meta.TypeID, s serializer.CustomSerializer) {
	r.mu.Lock()
	r.bySerializer[id] = s
	r.mu.Unlock()
}

func (r *Registry) FindSerializerForType(id meta.TypeID) serializer.CustomSerializer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byType[id]
}

func (r *Registry) FindSerializerForSerializerType(id meta.TypeID) serializer.CustomSerializer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.bySerializer[id]
}

// Types returns the ids that have a serializer.
func (r *Registry) Types() []meta.TypeID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Keys(r.byType)
}
