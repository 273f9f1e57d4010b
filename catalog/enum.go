package catalog

import (
	"cmp"
	"reflect"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"github.com/wippyai/docwriter/meta"
)

// Integer is the constraint for enum types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// RegisterEnum registers T as an enum with the given constant names. Values
// are written by name; values with no name are written as numbers.
func RegisterEnum[T Integer](c *Catalog, names map[T]string) error {
	values := lo.MapToSlice(names, func(v T, name string) meta.EnumValue {
		return meta.EnumValue{Name: name, Value: int64(v)}
	})
	slices.SortFunc(values, func(a, b meta.EnumValue) int {
		return cmp.Compare(a.Value, b.Value)
	})
	return c.RegisterEnum(reflect.TypeFor[T](), values...)
}

// RegisterEnum registers t as an enum. Registering an already known type
// replaces its enum values.
func (c *Catalog) RegisterEnum(t reflect.Type, values ...meta.EnumValue) error {
	info, err := enumInfo(t)
	if err != nil {
		return err
	}
	if dups := lo.FindDuplicatesBy(values, func(v meta.EnumValue) string { return v.Name }); len(dups) > 0 {
		return errors.Newf("enum %s: duplicate name %q", t, dups[0].Name)
	}
	info.Values = values

	id, err := c.Register(t)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.byID[id].Enum = info
	c.mu.Unlock()
	return nil
}

func enumInfo(t reflect.Type) (*meta.EnumInfo, error) {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &meta.EnumInfo{Size: t.Size(), Signed: true}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &meta.EnumInfo{Size: t.Size()}, nil
	}
	return nil, errors.Wrapf(ErrUnsupportedType, "enum %s must be an integer type", t)
}
