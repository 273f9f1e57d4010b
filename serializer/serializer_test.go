package serializer_test

import (
	"math"
	"reflect"
	"strings"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/docwriter/catalog"
	"github.com/wippyai/docwriter/document"
	"github.com/wippyai/docwriter/meta"
	"github.com/wippyai/docwriter/result"
	"github.com/wippyai/docwriter/serializer"
)

func TestStore_DefaultElision(t *testing.T) {
	tests := []struct {
		name    string
		value   Vec
		keep    bool
		want    string
		outcome result.Outcome
	}{
		{"all default", Vec{}, false, `{}`, result.DefaultsUsed},
		{"all default kept", Vec{}, true, `{"X":0,"Y":0}`, result.Success},
		{"partial", Vec{X: 1.5}, false, `{"X":1.5}`, result.PartialDefaults},
		{"none default", Vec{X: 1.5, Y: 2.5}, false, `{"X":1.5,"Y":2.5}`, result.Success},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, reflect.TypeFor[Vec]())
			out, status := store(f, &tt.value, tt.keep)
			assert.Equal(t, tt.want, out.String())
			assert.Equal(t, tt.outcome, status.Outcome)
			assert.Zero(t, f.diags.Len())
		})
	}
}

func TestStore_NestedDefaults(t *testing.T) {
	f := newFixture(t)

	out, status := store(f, &Scene{Name: "a"}, false)
	assert.Equal(t, `{"Name":"a"}`, out.String())
	assert.Equal(t, result.PartialDefaults, status.Outcome)

	out, status = store(f, &Scene{Name: "a"}, true)
	assert.Equal(t, `{"Name":"a","Origin":{"X":0,"Y":0},"Main":null,"Items":[],"Ptr":null}`, out.String())
	assert.Equal(t, result.Success, status.Outcome)

	out, status = store(f, &Scene{}, false)
	assert.Equal(t, `{}`, out.String())
	assert.Equal(t, result.DefaultsUsed, status.Outcome)
}

func TestStore_PointerSameType(t *testing.T) {
	f := newFixture(t)

	out, _ := store(f, &Scene{Ptr: &Vec{X: 1}}, false)
	assert.Equal(t, `{"Ptr":{"X":1}}`, out.String())

	// a pointer to a default value diffs against a fresh default
	out, status := store(f, &Scene{Ptr: &Vec{}}, false)
	assert.Equal(t, `{}`, out.String())
	assert.Equal(t, result.DefaultsUsed, status.Outcome)

	out, _ = store(f, &Scene{Ptr: &Vec{}}, true)
	assert.Contains(t, out.String(), `"Ptr":{"X":0,"Y":0}`)
}

func TestStore_TypeTag(t *testing.T) {
	f := newFixture(t)

	out, status := store(f, &Scene{Main: &Circle{Radius: 2}}, false)
	assert.Equal(t, `{"Main":{"$type":"serializer_test.Circle","Radius":2}}`, out.String())
	assert.Equal(t, result.PartialDefaults, status.Outcome)

	// non-pointer dynamic values are tagged as well
	out, _ = store(f, &Scene{Main: Rect{W: 2}}, false)
	assert.Equal(t, `{"Main":{"$type":"serializer_test.Rect","W":2}}`, out.String())
}

func TestStore_TypeTagSurvivesDefaultElision(t *testing.T) {
	f := newFixture(t)

	out, status := store(f, &Scene{Main: &Circle{}}, false)
	assert.Equal(t, `{"Main":{"$type":"serializer_test.Circle"}}`, out.String())
	assert.Equal(t, result.PartialDefaults, status.Outcome)
}

func TestStore_TypeTagOmittedWhenDefaultHasSameType(t *testing.T) {
	f := newFixture(t)

	def := &Scene{Main: &Circle{Radius: 1}}
	out, _ := storeWithDefault(f, &Scene{Main: &Circle{Radius: 2}}, def, false)
	assert.Equal(t, `{"Main":{"Radius":2}}`, out.String())

	out, status := storeWithDefault(f, &Scene{Main: &Circle{Radius: 1}}, def, false)
	assert.Equal(t, `{}`, out.String())
	assert.Equal(t, result.DefaultsUsed, status.Outcome)

	// a default of another dynamic type is not used for diffing
	out, _ = storeWithDefault(f, &Scene{Main: &Circle{Radius: 1}}, &Scene{Main: Rect{}}, false)
	assert.Equal(t, `{"Main":{"$type":"serializer_test.Circle","Radius":1}}`, out.String())

	// with KeepDefaults the tag is always written
	out, _ = storeWithDefault(f, &Scene{Main: &Circle{Radius: 2}}, def, true)
	assert.Contains(t, out.String(), `"Main":{"$type":"serializer_test.Circle","Radius":2}`)
}

func TestStore_NullPointerAgainstDefault(t *testing.T) {
	f := newFixture(t)

	// the default holds a value, so null is a real difference
	out, status := storeWithDefault(f, &Scene{}, &Scene{Main: &Circle{}}, false)
	assert.Equal(t, `{"Main":null}`, out.String())
	assert.Equal(t, result.PartialDefaults, status.Outcome)
}

type widgetA struct{ A int }

func (widgetA) Area() float64 { return 0 }

type widgetB struct{ B int }

func (widgetB) Area() float64 { return 0 }

func TestStore_AmbiguousTypeName(t *testing.T) {
	f := newFixture(t)
	idA, err := f.cat.RegisterNamed(reflect.TypeFor[widgetA](), "Widget")
	require.NoError(t, err)
	idB, err := f.cat.RegisterNamed(reflect.TypeFor[widgetB](), "Widget")
	require.NoError(t, err)

	out, status := store(f, &Scene{Main: widgetA{A: 1}}, false)
	require.False(t, status.Failed())

	main, ok := out.Member("Main")
	require.True(t, ok)
	tagValue, ok := main.Member(serializer.TypeKey)
	require.True(t, ok)
	tag, _ := tagValue.AsString()

	assert.Equal(t, serializer.FormatTypeTag(idA, "Widget"), tag)
	id, name, qualified := serializer.ParseTypeTag(tag)
	assert.True(t, qualified)
	assert.Equal(t, "Widget", name)
	assert.Equal(t, idA, id)
	assert.NotEqual(t, idB, id)
	assert.True(t, strings.HasPrefix(tag, "{"+strings.ToUpper(idA.String())+"} "))
	assert.Zero(t, f.diags.Len())
}

func TestParseTypeTag(t *testing.T) {
	_, name, qualified := serializer.ParseTypeTag("geo.Circle")
	assert.False(t, qualified)
	assert.Equal(t, "geo.Circle", name)

	_, _, qualified = serializer.ParseTypeTag("{not-a-uuid} x")
	assert.False(t, qualified)
}

func TestStore_IndexAlignment(t *testing.T) {
	f := newFixture(t)

	scene := &Scene{Items: []Shape{&Circle{Radius: 1}, &Blob{Size: 3}, nil, &Circle{}}}
	out, status := store(f, scene, false)

	items, ok := out.Member("Items")
	require.True(t, ok)
	require.Equal(t, 4, items.Len())
	assert.Equal(t, `[{"$type":"serializer_test.Circle","Radius":1},{},null,{"$type":"serializer_test.Circle"}]`, items.String())
	assert.Equal(t, result.Unknown, status.Outcome)

	errs := f.diags.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, ".Items[1]", errs[0].Path)
	assert.Equal(t, result.TaskRetrieveInfo, errs[0].Task)
}

func TestStore_SequenceOfValues(t *testing.T) {
	f := newFixture(t, reflect.TypeFor[[]Vec]())

	list := []Vec{{}, {X: 1}, {}}
	out, status := store(f, &list, false)
	assert.Equal(t, `[{},{"X":1},{}]`, out.String())
	assert.Equal(t, result.PartialDefaults, status.Outcome)

	list = []Vec{{}, {}}
	out, status = store(f, &list, false)
	assert.Equal(t, `[{},{}]`, out.String())
	assert.Equal(t, result.DefaultsUsed, status.Outcome)

	arr := [3]int{0, 2, 0}
	_, err := f.cat.Register(reflect.TypeFor[[3]int]())
	require.NoError(t, err)
	out, _ = store(f, &arr, false)
	assert.Equal(t, `[{},2,{}]`, out.String())

	out, _ = store(f, &arr, true)
	assert.Equal(t, `[0,2,0]`, out.String())
}

type Holder struct {
	Mat catalog.Ref[Vec]
}

func TestStore_SmartPointer(t *testing.T) {
	f := newFixture(t, reflect.TypeFor[Holder]())

	out, status := store(f, &Holder{Mat: catalog.NewRef(&Vec{X: 2})}, false)
	assert.Equal(t, `{"Mat":{"X":2}}`, out.String())
	assert.Equal(t, result.PartialDefaults, status.Outcome)

	out, status = store(f, &Holder{}, false)
	assert.Equal(t, `{}`, out.String())
	assert.Equal(t, result.DefaultsUsed, status.Outcome)

	out, _ = store(f, &Holder{}, true)
	assert.Equal(t, `{"Mat":null}`, out.String())

	empty := catalog.Ref[Vec]{}
	out, _ = store(f, &empty, true)
	assert.True(t, out.IsNull())

	full := catalog.NewRef(&Vec{X: 1, Y: 1})
	out, status = store(f, &full, false)
	assert.Equal(t, `{"X":1,"Y":1}`, out.String())
	assert.Equal(t, result.Success, status.Outcome)
}

type Triple struct {
	A int    `doc:"a"`
	B Shape  `doc:"b"`
	C string `doc:"c"`
}

func TestStore_PartialFailureIsolation(t *testing.T) {
	f := newFixture(t, reflect.TypeFor[Triple]())

	out, status := store(f, &Triple{A: 1, B: &Blob{}, C: "c"}, false)
	assert.Equal(t, `{"a":1,"c":"c"}`, out.String())
	assert.Equal(t, result.Unknown, status.Outcome)

	errs := f.diags.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, ".b", errs[0].Path)
	assert.Equal(t, result.Unknown, errs[0].Outcome)
}

func TestStore_Halted(t *testing.T) {
	f := newFixture(t, reflect.TypeFor[Triple]())

	var out document.Value
	settings := f.settings(false)
	settings.Reporting = result.Chain(f.diags.Report, result.HaltOn(result.Unknown))
	status := serializer.Store(&out, unsafe.Pointer(&Triple{A: 1, B: &Blob{}, C: "c"}), nil,
		f.cat.TypeIDOf(reflect.TypeFor[Triple]()), settings)

	assert.Equal(t, result.Halted, status.Outcome)
	assert.Equal(t, `{"a":1}`, out.String())
}

type Item struct {
	X Shape `doc:"x"`
}

type Listing struct {
	List []Item `doc:"list"`
}

func TestStore_PathCorrectness(t *testing.T) {
	f := newFixture(t, reflect.TypeFor[Listing]())

	listing := &Listing{List: []Item{{X: &Circle{Radius: 1}}, {X: &Blob{}}}}
	c := serializer.NewContext(f.settings(false))
	before := c.Path().Depth()

	var out document.Value
	c.Store(&out, unsafe.Pointer(listing), nil, f.cat.TypeIDOf(reflect.TypeFor[Listing]()))

	assert.Equal(t, before, c.Path().Depth())
	errs := f.diags.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, ".list[1].x", errs[0].Path)
	assert.Equal(t, `{"list":[{"x":{"$type":"serializer_test.Circle","Radius":1}},{}]}`, out.String())
}

type Base struct {
	ID   int    `doc:"id"`
	Name string `doc:"name"`
}

type Derived struct {
	Base
	Value int `doc:"value"`
}

func TestStore_BaseClassSplicing(t *testing.T) {
	f := newFixture(t, reflect.TypeFor[Derived]())

	out, status := store(f, &Derived{Base: Base{ID: 1, Name: "n"}, Value: 3}, false)
	assert.Equal(t, `{"id":1,"name":"n","value":3}`, out.String())
	assert.Equal(t, result.Success, status.Outcome)

	out, status = store(f, &Derived{Value: 3}, false)
	assert.Equal(t, `{"value":3}`, out.String())
	assert.Equal(t, result.PartialDefaults, status.Outcome)

	out, _ = store(f, &Derived{}, true)
	assert.Equal(t, `{"id":0,"name":"","value":0}`, out.String())
}

type Shadowed struct {
	Base
	ID int `doc:"id"`
}

type Label struct {
	ID int `doc:"id"`
}

type Twin struct {
	Base
	Label
}

func TestStore_ShadowedBaseMembers(t *testing.T) {
	f := newFixture(t, reflect.TypeFor[Shadowed](), reflect.TypeFor[Twin]())

	out, status := store(f, &Shadowed{Base: Base{ID: 1, Name: "n"}, ID: 2}, false)
	assert.Equal(t, `{"name":"n","id":2}`, out.String())
	assert.Equal(t, result.Success, status.Outcome)

	out, _ = store(f, &Shadowed{Base: Base{ID: 1}}, false)
	assert.Equal(t, `{}`, out.String())

	out, _ = store(f, &Shadowed{}, true)
	assert.Equal(t, `{"name":"","id":0}`, out.String())

	out, _ = store(f, &Twin{Base: Base{ID: 1}, Label: Label{ID: 2}}, false)
	assert.Equal(t, `{"id":1}`, out.String())
}

type Color uint8

type Meters float64

type Paint struct {
	Color  Color
	Length Meters
	Seed   int64 `doc:",nodefault"`
}

func TestStore_EnumAndGeneric(t *testing.T) {
	f := newFixture(t, reflect.TypeFor[Paint]())
	require.NoError(t, catalog.RegisterEnum(f.cat, map[Color]string{0: "red", 1: "green"}))

	out, status := store(f, &Paint{Color: 1, Length: 2.5}, false)
	assert.Equal(t, `{"Color":"green","Length":2.5,"Seed":0}`, out.String())
	assert.Equal(t, result.Success, status.Outcome)

	out, status = store(f, &Paint{Color: 7}, false)
	assert.Equal(t, `{"Color":7,"Seed":0}`, out.String())
	assert.Equal(t, result.Unknown, status.Outcome)
	require.Equal(t, 1, f.diags.Len())
	assert.Equal(t, ".Color", f.diags.Errors()[0].Path)
}

type constSerializer string

func (s constSerializer) Store(out *document.Value, _, _ unsafe.Pointer, _ meta.TypeID, _ *serializer.Context) result.Status {
	out.SetString(string(s))
	return result.New(result.TaskWriteValue, result.Success)
}

func TestStore_CustomSerializerWins(t *testing.T) {
	f := newFixture(t, reflect.TypeFor[Paint]())
	require.NoError(t, catalog.RegisterEnum(f.cat, map[Color]string{0: "red"}))
	f.reg.Register(f.cat.TypeIDOf(reflect.TypeFor[Color]()), constSerializer("custom"))
	f.reg.Register(f.cat.TypeIDOf(reflect.TypeFor[Vec]()), constSerializer("vec"))

	out, _ := store(f, &Paint{}, false)
	assert.Equal(t, `{"Color":"custom","Seed":0}`, out.String())

	out, _ = store(f, &Scene{}, false)
	assert.Equal(t, `{"Origin":"vec"}`, out.String())
}

func TestStoreWithClassData_TaggedValue(t *testing.T) {
	f := newFixture(t, reflect.TypeFor[[]Vec]())
	c := serializer.NewContext(f.settings(false))

	n := 3
	var out document.Value
	status := c.StoreWithClassData(&out, unsafe.Pointer(&n), nil,
		f.cat.FindClassData(f.cat.TypeIDOf(reflect.TypeFor[int]())), true)
	assert.Equal(t, `{"$type":"int","$value":3}`, out.String())
	assert.Equal(t, result.Success, status.Outcome)

	list := []Vec{{X: 1}}
	out = document.Value{}
	c.StoreWithClassData(&out, unsafe.Pointer(&list), nil,
		f.cat.FindClassData(f.cat.TypeIDOf(reflect.TypeFor[[]Vec]())), true)
	assert.Equal(t, `{"$type":"[]serializer_test.Vec","$value":[{"X":1}]}`, out.String())
	assert.Zero(t, f.diags.Len())
}

type Boxed struct {
	Name  string
	Value any
}

func TestStore_InterfaceHoldingValues(t *testing.T) {
	tests := []struct {
		name    string
		box     Boxed
		keep    bool
		want    string
		outcome result.Outcome
	}{
		{"int", Boxed{Name: "n", Value: 5}, false, `{"Name":"n","Value":{"$type":"int","$value":5}}`, result.Success},
		{"string", Boxed{Value: "x"}, false, `{"Value":{"$type":"string","$value":"x"}}`, result.PartialDefaults},
		{"default int", Boxed{Value: 0}, false, `{"Value":{"$type":"int"}}`, result.PartialDefaults},
		{"sequence", Boxed{Value: []int{1, 2}}, false, `{"Value":{"$type":"[]int","$value":[1,2]}}`, result.PartialDefaults},
		{"empty", Boxed{}, false, `{}`, result.DefaultsUsed},
		{"keep defaults", Boxed{Value: 0}, true, `{"Name":"","Value":{"$type":"int","$value":0}}`, result.Success},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, reflect.TypeFor[Boxed](), reflect.TypeFor[[]int]())
			out, status := store(f, &tt.box, tt.keep)
			assert.Equal(t, tt.want, out.String())
			assert.Equal(t, tt.outcome, status.Outcome)
			assert.Zero(t, f.diags.Len())
		})
	}
}

func TestStore_InterfaceHoldingFailedValue(t *testing.T) {
	f := newFixture(t, reflect.TypeFor[Boxed]())

	out, status := store(f, &Boxed{Value: math.NaN()}, false)
	assert.Equal(t, `{"Value":{"$type":"float64"}}`, out.String())
	assert.Equal(t, result.Unsupported, status.Outcome)
	require.Equal(t, 1, f.diags.Len())
	assert.Equal(t, ".Value.$value", f.diags.Errors()[0].Path)
}

func TestStore_EntryErrors(t *testing.T) {
	f := newFixture(t)

	var out document.Value
	status := serializer.Store(&out, unsafe.Pointer(&Blob{}), nil, f.cat.TypeIDOf(reflect.TypeFor[Blob]()), f.settings(false))
	assert.Equal(t, result.New(result.TaskRetrieveInfo, result.Unknown), status)

	status = serializer.Store(&out, nil, nil, f.cat.TypeIDOf(reflect.TypeFor[Vec]()), f.settings(false))
	assert.Equal(t, result.New(result.TaskWriteValue, result.Catastrophic), status)

	settings := f.settings(false)
	settings.Catalog = nil
	status = serializer.Store(&out, unsafe.Pointer(&Vec{}), nil, meta.Nil, settings)
	assert.True(t, status.IsFatal())
	assert.Equal(t, 3, f.diags.Len())
}

// noDefaults refuses to build default instances.
type noDefaults struct {
	*catalog.Catalog
}

func (noDefaults) CreateDefaultInstance(meta.TypeID) unsafe.Pointer { return nil }

func TestStore_DefaultCreationFailure(t *testing.T) {
	f := newFixture(t)
	settings := f.settings(false)
	settings.Catalog = noDefaults{f.cat}

	var out document.Value
	status := serializer.Store(&out, unsafe.Pointer(&Vec{X: 1}), nil, f.cat.TypeIDOf(reflect.TypeFor[Vec]()), settings)

	assert.Equal(t, `{"X":1,"Y":0}`, out.String())
	assert.Equal(t, result.New(result.TaskCreateDefault, result.Unsupported), status)
	require.Equal(t, 1, f.diags.Len())
	assert.Equal(t, "", f.diags.Errors()[0].Path)
}

func TestStore_ContainerDefaultCreationFailure(t *testing.T) {
	f := newFixture(t, reflect.TypeFor[[]Vec]())
	settings := f.settings(false)
	settings.Catalog = noDefaults{f.cat}

	list := []Vec{{X: 1}, {}}
	var out document.Value
	status := serializer.Store(&out, unsafe.Pointer(&list), nil, f.cat.TypeIDOf(reflect.TypeFor[[]Vec]()), settings)

	assert.Equal(t, `[{"X":1,"Y":0},{"X":0,"Y":0}]`, out.String())
	assert.Equal(t, result.Unsupported, status.Outcome)
	paths := []string{}
	for _, e := range f.diags.Errors() {
		paths = append(paths, e.Path)
	}
	assert.Equal(t, []string{"", "[0]", "[1]"}, paths)
}

type Lookup struct {
	Name  string
	Index map[string]int
}

func TestStore_AssociativeUnsupported(t *testing.T) {
	f := newFixture(t, reflect.TypeFor[Lookup]())

	out, status := store(f, &Lookup{Name: "n", Index: map[string]int{"a": 1}}, false)
	assert.Equal(t, `{"Name":"n"}`, out.String())
	assert.Equal(t, result.Unsupported, status.Outcome)
	require.Equal(t, 1, f.diags.Len())
	assert.Equal(t, ".Index", f.diags.Errors()[0].Path)
}

type Ratio struct {
	Value float64
	Label string
}

func TestStore_NonFiniteFloat(t *testing.T) {
	f := newFixture(t, reflect.TypeFor[Ratio]())

	nan := 0.0
	nan = nan / nan
	out, status := store(f, &Ratio{Value: nan, Label: "x"}, false)
	assert.Equal(t, `{"Label":"x"}`, out.String())
	assert.Equal(t, result.Unsupported, status.Outcome)
}

type Volume struct {
	Level int
}

func (v *Volume) SetDefaults() { v.Level = 7 }

func TestStore_DefaulterInstances(t *testing.T) {
	f := newFixture(t, reflect.TypeFor[Volume]())

	out, status := store(f, &Volume{Level: 7}, false)
	assert.Equal(t, `{}`, out.String())
	assert.Equal(t, result.DefaultsUsed, status.Outcome)

	out, _ = store(f, &Volume{Level: 0}, false)
	assert.Equal(t, `{"Level":0}`, out.String())
}

type Stamped struct {
	Revision int
	writes   int
}

func (s *Stamped) OnWriteBegin() { s.Revision++ }
func (s *Stamped) OnWriteEnd()   { s.writes++ }

func TestStore_WriteEvents(t *testing.T) {
	f := newFixture(t, reflect.TypeFor[Stamped]())

	s := &Stamped{Revision: 1}
	out, _ := store(f, s, false)
	assert.Equal(t, `{"Revision":2}`, out.String())
	assert.Equal(t, 1, s.writes)
}

type Journal struct {
	Stamped
	Body string
}

func TestStore_WriteEventsOfEmbeddedBase(t *testing.T) {
	f := newFixture(t, reflect.TypeFor[Journal]())

	j := &Journal{Stamped: Stamped{Revision: 1}, Body: "b"}
	out, _ := store(f, j, false)
	assert.Equal(t, `{"Revision":2,"Body":"b"}`, out.String())
	assert.Equal(t, 2, j.Revision)
	assert.Equal(t, 1, j.writes)
}

type Padded struct {
	Empty [0]int
	Tail  []int
}

func TestStore_EmptyArrayField(t *testing.T) {
	f := newFixture(t, reflect.TypeFor[Padded]())

	out, _ := store(f, &Padded{Tail: []int{7, 8, 9}}, true)
	assert.Equal(t, `{"Empty":[],"Tail":[7,8,9]}`, out.String())

	out, _ = store(f, &Padded{Tail: []int{7}}, false)
	assert.Equal(t, `{"Tail":[7]}`, out.String())
}

func TestStore_PointerDefaultCreationFailure(t *testing.T) {
	f := newFixture(t)
	settings := f.settings(false)
	settings.Catalog = noDefaults{f.cat}

	var out document.Value
	status := serializer.Store(&out, unsafe.Pointer(&Scene{Name: "x", Main: &Circle{Radius: 2}}), unsafe.Pointer(&Scene{}),
		f.cat.TypeIDOf(reflect.TypeFor[Scene]()), settings)

	assert.Equal(t, `{"Name":"x"}`, out.String())
	assert.Equal(t, result.New(result.TaskCreateDefault, result.Unsupported), status)
	require.Equal(t, 1, f.diags.Len())
	assert.Equal(t, ".Main", f.diags.Errors()[0].Path)
}

func TestStoreWithClassDataFromPointer_NoRuntimeTypeInfo(t *testing.T) {
	f := newFixture(t)
	c := serializer.NewContext(f.settings(false))

	p := &Vec{X: 1}
	var out document.Value
	status := c.StoreWithClassDataFromPointer(&out, unsafe.Pointer(&p), nil, &meta.ClassData{Name: "opaque"})

	assert.Equal(t, result.New(result.TaskRetrieveInfo, result.Unknown), status)
	assert.True(t, out.IsNull())
	require.Equal(t, 1, f.diags.Len())
	assert.Equal(t, "", f.diags.Errors()[0].Path)
}

func TestLogReporter(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	report := serializer.LogReporter(zap.New(core))

	status := report("missing", result.New(result.TaskRetrieveInfo, result.Unknown), ".a")
	assert.Equal(t, result.Unknown, status.Outcome)
	report("fine", result.New(result.TaskWriteValue, result.Success), ".b")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, ".a", entries[0].ContextMap()["path"])
	assert.Equal(t, "unknown", entries[0].ContextMap()["outcome"])
	assert.Equal(t, zapcore.DebugLevel, entries[1].Level)
}

func TestSetLogger(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	serializer.SetLogger(zap.New(core))
	defer serializer.SetLogger(nil)

	f := newFixture(t, reflect.TypeFor[Triple]())
	var out document.Value
	serializer.Store(&out, unsafe.Pointer(&Triple{B: &Blob{}}), nil,
		f.cat.TypeIDOf(reflect.TypeFor[Triple]()), serializer.Settings{Catalog: f.cat, Serializers: f.reg})

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, ".b", logs.All()[0].ContextMap()["path"])
}
