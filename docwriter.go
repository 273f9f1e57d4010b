package docwriter

import (
	"bytes"
	"reflect"
	"unsafe"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/wippyai/docwriter/builtin"
	"github.com/wippyai/docwriter/catalog"
	"github.com/wippyai/docwriter/document"
	docerrors "github.com/wippyai/docwriter/errors"
	"github.com/wippyai/docwriter/result"
	"github.com/wippyai/docwriter/serializer"
)

// Config configures a Writer.
type Config struct {
	// KeepDefaults writes every value, including those equal to their
	// default.
	KeepDefaults bool

	// Logger receives one entry per diagnostic. Nil disables logging.
	Logger *zap.Logger

	// Reporting is called for every diagnostic after it was collected. The
	// status it returns replaces the reported one, so it may halt a pass.
	Reporting result.ReportFunc
}

// Writer stores Go values as documents.
type Writer struct {
	catalog     *catalog.Catalog
	serializers *builtin.Registry
	cfg         Config
}

// New creates a Writer with the default configuration.
func New() *Writer {
	return NewWithConfig(nil)
}

// NewWithConfig creates a Writer with the given configuration.
func NewWithConfig(cfg *Config) *Writer {
	w := &Writer{catalog: catalog.New()}
	if cfg != nil {
		w.cfg = *cfg
	}
	w.serializers = builtin.NewRegistry(w.catalog)
	return w
}

// Catalog returns the type catalog used by the writer.
func (w *Writer) Catalog() *catalog.Catalog { return w.catalog }

// Serializers returns the serializer registry used by the writer.
func (w *Writer) Serializers() *builtin.Registry { return w.serializers }

// Register registers the types of values, typically the dynamic types
// stored in interface fields.
func (w *Writer) Register(values ...any) error {
	for _, v := range values {
		if v == nil {
			return errors.New("register nil value")
		}
		if _, err := w.catalog.Register(reflect.TypeOf(v)); err != nil {
			return err
		}
	}
	return nil
}

// Output is the result of Store.
type Output struct {
	Document    document.Value
	Status      result.Status
	Diagnostics []*docerrors.Error
}

// Err returns the diagnostics joined into one error, or nil.
func (o *Output) Err() error {
	if len(o.Diagnostics) == 0 {
		return nil
	}
	errs := make([]error, len(o.Diagnostics))
	for i, d := range o.Diagnostics {
		errs[i] = d
	}
	return errors.Join(errs...)
}

// JSON encodes the document.
func (o *Output) JSON(indent bool) ([]byte, error) {
	var buf bytes.Buffer
	if err := document.EncodeJSON(&buf, &o.Document, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// YAML encodes the document.
func (o *Output) YAML() ([]byte, error) {
	var buf bytes.Buffer
	if err := document.EncodeYAML(&buf, &o.Document); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Store writes v, which may be a value or a non-nil pointer. The type of v
// is registered on first use. The returned error covers invalid input and
// registration failures only; problems inside the object graph are listed
// in Output.Diagnostics.
func (w *Writer) Store(v any) (*Output, error) {
	return w.store(v, nil)
}

// StoreWithDefault is like Store but diffs v against def, which must have
// the same type.
func (w *Writer) StoreWithDefault(v, def any) (*Output, error) {
	if def == nil {
		return nil, errors.New("nil default")
	}
	return w.store(v, def)
}

func (w *Writer) store(v, def any) (*Output, error) {
	ptr, t, err := addressOf(v)
	if err != nil {
		return nil, err
	}
	id, err := w.catalog.Register(t)
	if err != nil {
		return nil, errors.Wrapf(err, "register %s", t)
	}

	var defPtr unsafe.Pointer
	if def != nil {
		dp, dt, err := addressOf(def)
		if err != nil {
			return nil, errors.Wrap(err, "default")
		}
		if dt != t {
			return nil, errors.Newf("default has type %s, want %s", dt, t)
		}
		defPtr = dp
	}

	var diags docerrors.Collector
	reporting := []result.ReportFunc{diags.Report}
	if w.cfg.Logger != nil {
		reporting = append(reporting, serializer.LogReporter(w.cfg.Logger))
	}
	reporting = append(reporting, w.cfg.Reporting)

	out := &Output{}
	out.Status = serializer.Store(&out.Document, ptr, defPtr, id, serializer.Settings{
		Catalog:      w.catalog,
		Serializers:  w.serializers,
		Reporting:    result.Chain(reporting...),
		KeepDefaults: w.cfg.KeepDefaults,
	})
	out.Diagnostics = diags.Errors()
	return out, nil
}

// addressOf returns an address holding v. Non-pointer values are copied.
func addressOf(v any) (unsafe.Pointer, reflect.Type, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, nil, errors.New("nil value")
	}
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, nil, errors.Newf("nil %s", rv.Type())
		}
		return rv.UnsafePointer(), rv.Type().Elem(), nil
	}
	p := reflect.New(rv.Type())
	p.Elem().Set(rv)
	return p.UnsafePointer(), rv.Type(), nil
}

// Marshal writes v with a fresh Writer and returns indented JSON.
func Marshal(v any) ([]byte, error) {
	out, err := New().Store(v)
	if err != nil {
		return nil, err
	}
	return out.JSON(true)
}
