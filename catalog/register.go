package catalog

import (
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/wippyai/docwriter/meta"
)

var basicTypes = map[reflect.Kind]reflect.Type{
	reflect.Bool:    reflect.TypeFor[bool](),
	reflect.Int:     reflect.TypeFor[int](),
	reflect.Int8:    reflect.TypeFor[int8](),
	reflect.Int16:   reflect.TypeFor[int16](),
	reflect.Int32:   reflect.TypeFor[int32](),
	reflect.Int64:   reflect.TypeFor[int64](),
	reflect.Uint:    reflect.TypeFor[uint](),
	reflect.Uint8:   reflect.TypeFor[uint8](),
	reflect.Uint16:  reflect.TypeFor[uint16](),
	reflect.Uint32:  reflect.TypeFor[uint32](),
	reflect.Uint64:  reflect.TypeFor[uint64](),
	reflect.Uintptr: reflect.TypeFor[uintptr](),
	reflect.Float32: reflect.TypeFor[float32](),
	reflect.Float64: reflect.TypeFor[float64](),
	reflect.String:  reflect.TypeFor[string](),
}

// elementName is the name given to container elements.
const elementName = "element"

// register must be called with c.mu held for writing. The class is indexed
// before its elements are built so recursive types terminate.
func (c *Catalog) register(t reflect.Type) (meta.TypeID, error) {
	if id, ok := c.byType[t]; ok {
		return id, nil
	}

	switch t.Kind() {
	case reflect.Complex64, reflect.Complex128, reflect.Chan, reflect.Func,
		reflect.UnsafePointer, reflect.Invalid:
		return meta.Nil, errors.Wrapf(ErrUnsupportedType, "%s (%s)", t, t.Kind())
	case reflect.Ptr:
		return c.register(t.Elem())
	}

	id := c.newID(t)
	cd := &meta.ClassData{
		TypeID: id,
		Name:   t.String(),
		Size:   t.Size(),
	}
	c.byType[t] = id
	c.byID[id] = cd
	c.types[id] = t
	c.byName[cd.Name] = append(c.byName[cd.Name], id)

	if err := c.build(t, cd); err != nil {
		c.unregister(t, id)
		return meta.Nil, err
	}
	return id, nil
}

func (c *Catalog) unregister(t reflect.Type, id meta.TypeID) {
	if cd := c.byID[id]; cd != nil {
		c.dropName(cd.Name, id)
	}
	delete(c.byID, id)
	delete(c.byType, t)
	delete(c.types, id)
}

func (c *Catalog) build(t reflect.Type, cd *meta.ClassData) error {
	if t.Kind() == reflect.Interface {
		cd.RTTI = &interfaceRTTI{catalog: c, typ: t, id: cd.TypeID}
		return nil
	}
	cd.RTTI = pointerRTTI(cd.TypeID)
	cd.Events = eventsFor(t)

	if basic, ok := basicTypes[t.Kind()]; ok {
		if basic != t {
			gid, err := c.register(basic)
			if err != nil {
				return err
			}
			cd.GenericTypeID = gid
		}
		return nil
	}

	switch t.Kind() {
	case reflect.Struct:
		if t.PkgPath() == refHolderType.PkgPath() && t.Implements(refHolderType) {
			return c.buildRef(t, cd)
		}
		return c.buildStruct(t, cd)
	case reflect.Slice, reflect.Array:
		return c.buildSequence(t, cd)
	case reflect.Map:
		return c.buildMap(t, cd)
	}
	return errors.Wrapf(ErrUnsupportedType, "%s (%s)", t, t.Kind())
}

// element resolves the id and flags for a value of type ft stored inline.
func (c *Catalog) element(ft reflect.Type) (meta.TypeID, meta.ElementFlags, error) {
	switch ft.Kind() {
	case reflect.Ptr:
		target := ft.Elem()
		if k := target.Kind(); k == reflect.Ptr || k == reflect.Interface {
			return meta.Nil, 0, errors.Wrapf(ErrUnsupportedType, "%s: pointer to %s", ft, k)
		}
		id, err := c.register(target)
		return id, meta.FlagPointer, err
	case reflect.Interface:
		id, err := c.register(ft)
		return id, meta.FlagPointer, err
	}
	id, err := c.register(ft)
	return id, 0, err
}

type docTag struct {
	name      string
	skip      bool
	noDefault bool
}

func parseDocTag(tag string) docTag {
	if tag == "-" {
		return docTag{skip: true}
	}
	name, opts, _ := strings.Cut(tag, ",")
	dt := docTag{name: name}
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if opt == "nodefault" {
			dt.noDefault = true
		}
	}
	return dt
}

func (c *Catalog) buildStruct(t reflect.Type, cd *meta.ClassData) error {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := parseDocTag(field.Tag.Get("doc"))
		if tag.skip {
			continue
		}

		base := field.Anonymous && field.Type.Kind() == reflect.Struct && tag.name == ""
		if !field.IsExported() && !base {
			continue
		}

		id, flags, err := c.element(field.Type)
		if err != nil {
			return errors.Wrapf(err, "%s.%s", t, field.Name)
		}
		if base {
			flags |= meta.FlagBaseClass
		}
		if tag.noDefault {
			flags |= meta.FlagNoDefaultValue
		}

		name := field.Name
		if tag.name != "" {
			name = tag.name
		}
		cd.Elements = append(cd.Elements, meta.ClassElement{
			Name:   name,
			TypeID: id,
			Offset: field.Offset,
			Flags:  flags,
		})
	}
	return nil
}

func (c *Catalog) buildSequence(t reflect.Type, cd *meta.ClassData) error {
	elemType := t.Elem()
	id, flags, err := c.element(elemType)
	if err != nil {
		return errors.Wrapf(err, "%s element", t)
	}
	seq := &sequence{
		elem: meta.ClassElement{
			Name:   elementName,
			TypeID: id,
			Flags:  flags,
		},
		elemClass: c.byID[id],
		stride:    elemType.Size(),
	}
	if t.Kind() == reflect.Array {
		seq.array = true
		seq.fixed = t.Len()
	}
	cd.Container = seq
	return nil
}

func (c *Catalog) buildMap(t reflect.Type, cd *meta.ClassData) error {
	if _, err := c.register(t.Key()); err != nil {
		return errors.Wrapf(err, "%s key", t)
	}
	id, flags, err := c.element(t.Elem())
	if err != nil {
		return errors.Wrapf(err, "%s value", t)
	}
	cd.Container = &mapping{
		typ: t,
		elem: meta.ClassElement{
			Name:   elementName,
			TypeID: id,
			Flags:  flags,
		},
		elemClass: c.byID[id],
	}
	return nil
}
