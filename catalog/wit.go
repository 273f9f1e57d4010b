package catalog

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/docwriter/meta"
)

// RegisterRecord registers goType with the layout of a WIT record. The
// record's field names become document keys and its field order becomes
// element order. Go fields with no WIT counterpart are not written. A named
// type definition also sets the display name.
func (c *Catalog) RegisterRecord(goType reflect.Type, td *wit.TypeDef) error {
	if goType.Kind() == reflect.Ptr {
		goType = goType.Elem()
	}
	record, ok := td.Kind.(*wit.Record)
	if !ok {
		return errors.Newf("%s: WIT definition is not a record", goType)
	}
	if goType.Kind() != reflect.Struct {
		return errors.Wrapf(ErrUnsupportedType, "%s: record needs a struct", goType)
	}

	id, err := c.Register(goType)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	cd := c.byID[id]
	elements := make([]meta.ClassElement, 0, len(record.Fields))
	for _, witField := range record.Fields {
		goField, found := findGoField(goType, witField.Name)
		if !found {
			return errors.Newf("%s: no Go field for WIT field %q", goType, witField.Name)
		}
		fid, flags, err := c.element(goField.Type)
		if err != nil {
			return errors.Wrapf(err, "%s.%s", goType, goField.Name)
		}
		if tag := parseDocTag(goField.Tag.Get("doc")); tag.noDefault {
			flags |= meta.FlagNoDefaultValue
		}
		elements = append(elements, meta.ClassElement{
			Name:   witField.Name,
			TypeID: fid,
			Offset: goField.Offset,
			Flags:  flags,
		})
	}
	cd.Elements = elements

	if td.Name != nil && *td.Name != "" {
		c.rename(id, *td.Name)
	}
	return nil
}

// RegisterWITEnum registers goType as an enum whose constants are the WIT
// cases in order, starting at zero.
func (c *Catalog) RegisterWITEnum(goType reflect.Type, td *wit.TypeDef) error {
	e, ok := td.Kind.(*wit.Enum)
	if !ok {
		return errors.Newf("%s: WIT definition is not an enum", goType)
	}
	values := make([]meta.EnumValue, len(e.Cases))
	for i, ec := range e.Cases {
		values[i] = meta.EnumValue{Name: ec.Name, Value: int64(i)}
	}
	if err := c.RegisterEnum(goType, values...); err != nil {
		return err
	}
	if td.Name != nil && *td.Name != "" {
		c.mu.Lock()
		c.rename(c.byType[goType], *td.Name)
		c.mu.Unlock()
	}
	return nil
}

// findGoField matches by: 1) wit:"name" tag, 2) case-insensitive, 3) kebab-case.
func findGoField(goType reflect.Type, witName string) (reflect.StructField, bool) {
	for i := 0; i < goType.NumField(); i++ {
		field := goType.Field(i)
		if !field.IsExported() {
			continue
		}

		if tag := field.Tag.Get("wit"); tag != "" {
			if tag == "-" {
				continue
			}
			if tag == witName {
				return field, true
			}
		}

		if strings.EqualFold(field.Name, witName) {
			return field, true
		}

		if toKebabCase(field.Name) == witName {
			return field, true
		}
	}
	return reflect.StructField{}, false
}

func toKebabCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				result.WriteByte('-')
			}
			result.WriteRune(unicode.ToLower(r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
