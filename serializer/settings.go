package serializer

import (
	"unsafe"

	"github.com/wippyai/docwriter/docpath"
	"github.com/wippyai/docwriter/document"
	docerrors "github.com/wippyai/docwriter/errors"
	"github.com/wippyai/docwriter/meta"
	"github.com/wippyai/docwriter/result"
)

// TypeCatalog resolves type ids to class metadata.
type TypeCatalog interface {
	FindClassData(id meta.TypeID) *meta.ClassData
	// CreateDefaultInstance returns nil when no default can be built.
	CreateDefaultInstance(id meta.TypeID) unsafe.Pointer
	FindTypeIDsByName(name string) []meta.TypeID
}

// CustomSerializer writes values of the types it is registered for.
type CustomSerializer interface {
	Store(out *document.Value, object, defaultObject unsafe.Pointer, typeID meta.TypeID, c *Context) result.Status
}

// SerializerRegistry resolves custom serializers.
type SerializerRegistry interface {
	FindSerializerForType(id meta.TypeID) CustomSerializer
	FindSerializerForSerializerType(id meta.TypeID) CustomSerializer
}

// Settings configures one serialization pass.
type Settings struct {
	Catalog     TypeCatalog
	Serializers SerializerRegistry
	// Reporting receives every diagnostic. Nil logs through Logger().
	Reporting result.ReportFunc
	// KeepDefaults writes every value even when it equals its default.
	KeepDefaults bool
}

type noSerializers struct{}

func (noSerializers) FindSerializerForType(meta.TypeID) CustomSerializer           { return nil }
func (noSerializers) FindSerializerForSerializerType(meta.TypeID) CustomSerializer { return nil }

// Context carries the settings and the current document path through one
// pass. It is not safe for concurrent use.
type Context struct {
	settings Settings
	path     docpath.Path
	base     baseFrame
}

// baseFrame identifies the base class instance being spliced.
type baseFrame struct {
	object unsafe.Pointer
	cd     *meta.ClassData
}

// NewContext returns a context for settings. A nil reporting callback is
// replaced with LogReporter(Logger()).
func NewContext(settings Settings) *Context {
	if settings.Reporting == nil {
		settings.Reporting = LogReporter(Logger())
	}
	if settings.Serializers == nil {
		settings.Serializers = noSerializers{}
	}
	return &Context{settings: settings}
}

// KeepDefaults reports whether values equal to their defaults are written.
func (c *Context) KeepDefaults() bool { return c.settings.KeepDefaults }

// Catalog returns the type catalog of the pass.
func (c *Context) Catalog() TypeCatalog { return c.settings.Catalog }

// Serializers returns the serializer registry of the pass.
func (c *Context) Serializers() SerializerRegistry { return c.settings.Serializers }

// Path returns the path of the value being written. Custom serializers
// that write nested values push their own segments and pop them before
// returning.
func (c *Context) Path() *docpath.Path { return &c.path }

// ReportError sends e for the current path and returns the status the
// callback settled on. e.Path is overwritten; the callback receives
// e.Message().
func (c *Context) ReportError(e *docerrors.Error) result.Status {
	e.Path = c.path.String()
	return c.settings.Reporting(e.Message(), e.Status(), e.Path)
}

// Report sends a diagnostic built from a format string.
func (c *Context) Report(task result.Task, outcome result.Outcome, msg string, args ...any) result.Status {
	return c.ReportError(docerrors.New(task, outcome).Detail(msg, args...).Build())
}

// ReportStatus sends a diagnostic with an existing status.
func (c *Context) ReportStatus(status result.Status, msg string) result.Status {
	return c.ReportError(docerrors.New(status.Task, status.Outcome).Detail("%s", msg).Build())
}

// defaultOutcome is the outcome of a value that matched its default.
func (c *Context) defaultOutcome() result.Outcome {
	if c.settings.KeepDefaults {
		return result.Success
	}
	return result.DefaultsUsed
}
