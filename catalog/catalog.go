package catalog

import (
	"reflect"
	"slices"
	"sort"
	"strconv"
	"sync"
	"time"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/wippyai/docwriter/meta"
)

// Namespace is the UUIDv5 namespace type ids are derived in.
var Namespace = uuid.MustParse("c0f1e6d2-9a4b-5e8f-b7a1-3d2c4e6f8a90")

var (
	// ErrUnsupportedType is returned for Go types with no document form.
	ErrUnsupportedType = errors.New("unsupported type")
	// ErrNotRegistered is returned when an operation needs a registered type.
	ErrNotRegistered = errors.New("type not registered")
)

// Catalog is a registry of class metadata. It is safe for concurrent use;
// registration must not run concurrently with a serialization pass that
// reads the types being changed.
type Catalog struct {
	mu       sync.RWMutex
	byID     map[meta.TypeID]*meta.ClassData
	byType   map[reflect.Type]meta.TypeID
	types    map[meta.TypeID]reflect.Type
	byName   map[string][]meta.TypeID
	defaults map[meta.TypeID]func(unsafe.Pointer)
}

// New returns a catalog with the scalar types, uuid.UUID, time.Duration and
// time.Time registered.
func New() *Catalog {
	c := &Catalog{
		byID:     make(map[meta.TypeID]*meta.ClassData),
		byType:   make(map[reflect.Type]meta.TypeID),
		types:    make(map[meta.TypeID]reflect.Type),
		byName:   make(map[string][]meta.TypeID),
		defaults: make(map[meta.TypeID]func(unsafe.Pointer)),
	}
	for _, t := range basicTypes {
		lo.Must(c.Register(t))
	}
	lo.Must(c.Register(reflect.TypeOf(uuid.UUID{})))
	lo.Must(c.Register(reflect.TypeOf(time.Duration(0))))
	lo.Must(c.Register(reflect.TypeOf(time.Time{})))
	return c
}

// Register adds t and every type reachable from its fields. A pointer type
// registers its element type. The id of t is returned.
func (c *Catalog) Register(t reflect.Type) (meta.TypeID, error) {
	if t == nil {
		return meta.Nil, errors.Wrap(ErrUnsupportedType, "nil type")
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.register(t)
}

// RegisterType registers T.
func RegisterType[T any](c *Catalog) (meta.TypeID, error) {
	return c.Register(reflect.TypeFor[T]())
}

// RegisterNamed registers t and sets its display name, which is written in
// type tags.
func (c *Catalog) RegisterNamed(t reflect.Type, name string) (meta.TypeID, error) {
	id, err := c.Register(t)
	if err != nil {
		return id, err
	}
	c.mu.Lock()
	c.rename(id, name)
	c.mu.Unlock()
	return id, nil
}

func (c *Catalog) rename(id meta.TypeID, name string) {
	cd := c.byID[id]
	if cd == nil || cd.Name == name {
		return
	}
	c.dropName(cd.Name, id)
	cd.Name = name
	c.byName[name] = append(c.byName[name], id)
}

func (c *Catalog) dropName(name string, id meta.TypeID) {
	ids := slices.DeleteFunc(c.byName[name], func(x meta.TypeID) bool { return x == id })
	if len(ids) == 0 {
		delete(c.byName, name)
		return
	}
	c.byName[name] = ids
}

// FindClassData returns the metadata registered for id, or nil.
func (c *Catalog) FindClassData(id meta.TypeID) *meta.ClassData {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.byID[id]
}

// FindTypeIDsByName returns the ids of all types with the display name.
func (c *Catalog) FindTypeIDsByName(name string) []meta.TypeID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.byName[name])
}

// TypeOf returns the Go type registered under id.
func (c *Catalog) TypeOf(id meta.TypeID) (reflect.Type, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.types[id]
	return t, ok
}

// TypeIDOf returns the id of t. Unregistered types get the id they would be
// registered under.
func (c *Catalog) TypeIDOf(t reflect.Type) meta.TypeID {
	c.mu.RLock()
	id, ok := c.byType[t]
	c.mu.RUnlock()
	if ok {
		return id
	}
	return uuidFromKey(typeKey(t))
}

func uuidFromKey(key string) meta.TypeID {
	return uuid.NewSHA1(Namespace, []byte(key))
}

// Names returns the sorted display names of all registered types.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := lo.Keys(c.byName)
	sort.Strings(names)
	return names
}

// Ambiguous returns the display names shared by more than one type.
func (c *Catalog) Ambiguous() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := lo.Keys(lo.PickBy(c.byName, func(_ string, ids []meta.TypeID) bool {
		return len(ids) > 1
	}))
	sort.Strings(names)
	return names
}

func typeKey(t reflect.Type) string {
	if t.Name() != "" {
		if t.PkgPath() == "" {
			return t.Name()
		}
		return t.PkgPath() + "." + t.Name()
	}
	return t.String()
}

// newID derives the id for t. Distinct types with the same key, such as
// function-local types, get a numbered key.
func (c *Catalog) newID(t reflect.Type) meta.TypeID {
	key := typeKey(t)
	id := uuidFromKey(key)
	for n := 1; ; n++ {
		other, taken := c.types[id]
		if !taken || other == t {
			return id
		}
		id = uuidFromKey(key + "#" + strconv.Itoa(n))
	}
}
