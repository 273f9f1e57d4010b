package serializer

import (
	"strings"
	"unsafe"

	"github.com/google/uuid"

	"github.com/wippyai/docwriter/document"
	docerrors "github.com/wippyai/docwriter/errors"
	"github.com/wippyai/docwriter/meta"
	"github.com/wippyai/docwriter/result"
)

const (
	// TypeKey is the member holding the type tag of a polymorphic value.
	TypeKey = "$type"
	// ValueKey holds the value of a tagged value that is not written as an
	// object of members, such as a scalar or a sequence held by an interface.
	ValueKey = "$value"
)

// Store writes object into out. typeID names the type object points to.
// def is an optional default instance of the same type; when it is nil and
// KeepDefaults is unset, one is created from the catalog.
func Store(out *document.Value, object, def unsafe.Pointer, typeID meta.TypeID, settings Settings) result.Status {
	return NewContext(settings).Store(out, object, def, typeID)
}

// Store is the entry point for a pass. See the package function Store.
func (c *Context) Store(out *document.Value, object, def unsafe.Pointer, typeID meta.TypeID) result.Status {
	if c.settings.Catalog == nil {
		return c.Report(result.TaskRetrieveInfo, result.Catastrophic, "no type catalog configured")
	}
	cd := c.Catalog().FindClassData(typeID)
	if cd == nil {
		return c.ReportError(docerrors.MissingClassData(typeID.String()))
	}
	if object == nil {
		return c.Report(result.TaskWriteValue, result.Catastrophic, "nil object of type %s", cd.Name)
	}

	if def != nil || c.KeepDefaults() {
		return c.StoreWithClassData(out, object, def, cd, false)
	}

	def = c.Catalog().CreateDefaultInstance(typeID)
	if def != nil {
		return c.StoreWithClassData(out, object, def, cd, false)
	}
	status := c.ReportError(docerrors.DefaultFailed(cd.Name))
	return result.Combine(status, c.StoreWithClassData(out, object, nil, cd, false))
}

type storeStep struct {
	name string
	// store reports false when the step does not apply to the class.
	store func(c *Context, out *document.Value, object, def unsafe.Pointer, cd *meta.ClassData, storeTypeID bool) (result.Status, bool)
}

// storeSteps is the dispatch order of StoreWithClassData.
var storeSteps []storeStep

func init() {
	storeSteps = []storeStep{
		{name: "custom", store: (*Context).storeCustom},
		{name: "enum", store: (*Context).storeEnum},
		{name: "generic", store: (*Context).storeGeneric},
		{name: "container", store: (*Context).storeContainer},
		{name: "class", store: (*Context).storeClass},
	}
}

// StoreWithClassData writes object, described by cd, into out. With
// storeTypeID set the type tag is written first. Classes carry the tag next
// to their members; other values are wrapped as {"$type": ..., "$value": ...}.
func (c *Context) StoreWithClassData(out *document.Value, object, def unsafe.Pointer, cd *meta.ClassData, storeTypeID bool) result.Status {
	for _, step := range storeSteps {
		if status, ok := step.store(c, out, object, def, cd, storeTypeID); ok {
			return status
		}
	}
	return c.ReportError(docerrors.Unsupported(cd.Name, "no serializer, container or class layout"))
}

func (c *Context) storeCustom(out *document.Value, object, def unsafe.Pointer, cd *meta.ClassData, storeTypeID bool) (result.Status, bool) {
	s := c.Serializers().FindSerializerForType(cd.TypeID)
	if s == nil {
		return result.Status{}, false
	}
	return c.storeWithSerializer(s, out, object, def, cd, storeTypeID), true
}

func (c *Context) storeEnum(out *document.Value, object, def unsafe.Pointer, cd *meta.ClassData, storeTypeID bool) (result.Status, bool) {
	if !cd.IsEnum() {
		return result.Status{}, false
	}
	s := c.Serializers().FindSerializerForSerializerType(meta.EnumSerializerTypeID)
	if s == nil {
		return result.Status{}, false
	}
	return c.storeWithSerializer(s, out, object, def, cd, storeTypeID), true
}

func (c *Context) storeGeneric(out *document.Value, object, def unsafe.Pointer, cd *meta.ClassData, storeTypeID bool) (result.Status, bool) {
	if !cd.HasGenericType() {
		return result.Status{}, false
	}
	s := c.Serializers().FindSerializerForType(cd.GenericTypeID)
	if s == nil {
		return result.Status{}, false
	}
	return c.storeWithSerializer(s, out, object, def, cd, storeTypeID), true
}

func (c *Context) storeWithSerializer(s CustomSerializer, out *document.Value, object, def unsafe.Pointer, cd *meta.ClassData, storeTypeID bool) result.Status {
	if storeTypeID {
		return c.storeWrapped(out, cd, func(v *document.Value) result.Status {
			return s.Store(v, object, def, cd.TypeID, c)
		})
	}
	return s.Store(out, object, def, cd.TypeID, c)
}

func (c *Context) storeContainer(out *document.Value, object, def unsafe.Pointer, cd *meta.ClassData, storeTypeID bool) (result.Status, bool) {
	if !cd.IsContainer() {
		return result.Status{}, false
	}
	if storeTypeID {
		return c.storeWrapped(out, cd, func(v *document.Value) result.Status {
			return c.StoreContainer(v, object, def, cd)
		}), true
	}
	return c.StoreContainer(out, object, def, cd), true
}

func (c *Context) storeClass(out *document.Value, object, def unsafe.Pointer, cd *meta.ClassData, storeTypeID bool) (result.Status, bool) {
	if !storeTypeID {
		return c.StoreClass(out, object, def, cd), true
	}
	out.SetObject()
	status := c.storeTypeName(out, cd)
	if status.IsFatal() {
		return status, true
	}
	return result.Combine(status, c.StoreClass(out, object, def, cd)), true
}

// storeWrapped writes the type tag and stores the value under ValueKey,
// which follows the member rules: defaulted and failed values are left out.
func (c *Context) storeWrapped(out *document.Value, cd *meta.ClassData, store func(*document.Value) result.Status) result.Status {
	out.SetObject()
	status := c.storeTypeName(out, cd)

	scope := c.path.Push(ValueKey)
	var value document.Value
	valueStatus := store(&value)
	c.attach(out, ValueKey, &value, valueStatus)
	scope.Pop()

	return result.Combine(status, valueStatus)
}

// storeTypeName adds the type tag member. The display name is written
// alone when it identifies the type; otherwise the id is prefixed.
func (c *Context) storeTypeName(out *document.Value, cd *meta.ClassData) result.Status {
	var tag document.Value
	ids := c.Catalog().FindTypeIDsByName(cd.Name)
	if len(ids) == 1 && ids[0] == cd.TypeID {
		tag.SetString(cd.Name)
	} else {
		tag.SetString(FormatTypeTag(cd.TypeID, cd.Name))
	}
	out.AddMember(TypeKey, tag)
	return result.New(result.TaskWriteTypeID, result.Success)
}

// FormatTypeTag returns the qualified form of a type tag,
// "{UPPERCASE-UUID} name".
func FormatTypeTag(id meta.TypeID, name string) string {
	var b strings.Builder
	b.WriteByte('{')
	b.WriteString(strings.ToUpper(id.String()))
	b.WriteString("} ")
	b.WriteString(name)
	return b.String()
}

// ParseTypeTag splits a type tag into its id, if present, and name.
func ParseTypeTag(tag string) (id meta.TypeID, name string, qualified bool) {
	if !strings.HasPrefix(tag, "{") {
		return meta.Nil, tag, false
	}
	inner, rest, ok := strings.Cut(tag[1:], "} ")
	if !ok {
		return meta.Nil, tag, false
	}
	parsed, err := uuid.Parse(inner)
	if err != nil {
		return meta.Nil, tag, false
	}
	return parsed, rest, true
}
