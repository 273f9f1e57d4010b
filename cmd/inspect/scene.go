package main

import (
	"reflect"
	"time"

	"github.com/google/uuid"
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/docwriter"
	"github.com/wippyai/docwriter/catalog"
)

type Meters float64

type Quality uint8

const (
	QualityLow Quality = iota
	QualityMedium
	QualityHigh
)

type Vec3 struct {
	X float64 `doc:"x"`
	Y float64 `doc:"y"`
	Z float64 `doc:"z"`
}

type Light interface {
	Kind() string
}

type PointLight struct {
	Position  Vec3    `doc:"position"`
	Intensity float64 `doc:"intensity"`
}

func (*PointLight) Kind() string { return "point" }

type SpotLight struct {
	PointLight
	Angle float64 `doc:"angle"`
}

func (*SpotLight) Kind() string { return "spot" }

type Material struct {
	Name      string  `doc:"name"`
	Roughness float64 `doc:"roughness"`
	Quality   Quality `doc:"quality"`
}

func (m *Material) SetDefaults() {
	m.Roughness = 0.5
	m.Quality = QualityMedium
}

type Node struct {
	ID       uuid.UUID             `doc:"id"`
	Name     string                `doc:"name"`
	Position Vec3                  `doc:"position"`
	Scale    Meters                `doc:"scale"`
	Material catalog.Ref[Material] `doc:"material"`
	Children []*Node               `doc:"children"`
}

// Camera is laid out by the camera WIT record.
type Camera struct {
	FieldOfView float64
	Near        Meters
	Far         Meters
	Label       string
}

type Scene struct {
	Name     string            `doc:"name"`
	Created  time.Time         `doc:"created"`
	Frame    time.Duration     `doc:"frame"`
	Camera   Camera            `doc:"camera"`
	Lights   []Light           `doc:"lights"`
	Nodes    []Node            `doc:"nodes"`
	Metadata map[string]string `doc:"metadata"`
}

var cameraRecord = func() *wit.TypeDef {
	name := "camera"
	return &wit.TypeDef{
		Name: &name,
		Kind: &wit.Record{
			Fields: []wit.Field{
				{Name: "field-of-view", Type: wit.F64{}},
				{Name: "near", Type: wit.F64{}},
				{Name: "far", Type: wit.F64{}},
			},
		},
	}
}()

func registerScene(w *docwriter.Writer) error {
	c := w.Catalog()
	if err := catalog.RegisterEnum(c, map[Quality]string{
		QualityLow:    "low",
		QualityMedium: "medium",
		QualityHigh:   "high",
	}); err != nil {
		return err
	}
	if err := c.RegisterRecord(reflect.TypeFor[Camera](), cameraRecord); err != nil {
		return err
	}
	if err := catalog.RegisterDefault(c, func() Camera {
		return Camera{FieldOfView: 60, Near: 0.1, Far: 1000}
	}); err != nil {
		return err
	}
	return w.Register(PointLight{}, SpotLight{}, Scene{})
}

type sample struct {
	name  string
	value any
}

func samples() []sample {
	steel := &Material{Name: "steel", Roughness: 0.2, Quality: QualityHigh}
	root := uuid.MustParse("5f0c6b1e-8d3a-4e55-b1c2-7a9e0d4f3c21")
	child := uuid.MustParse("0b7d2f9a-1c4e-4a8b-9e6f-3d5c7b1a2e80")

	return []sample{
		{name: "empty scene", value: &Scene{}},
		{name: "single node", value: &Node{Name: "origin"}},
		{name: "demo scene", value: &Scene{
			Name:    "demo",
			Created: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
			Frame:   16 * time.Millisecond,
			Camera:  Camera{FieldOfView: 75, Near: 0.1, Far: 1000, Label: "main"},
			Lights: []Light{
				&PointLight{Intensity: 1},
				&SpotLight{PointLight: PointLight{Position: Vec3{Y: 4}}, Angle: 30},
				nil,
			},
			Nodes: []Node{
				{
					ID:       root,
					Name:     "root",
					Scale:    1,
					Material: catalog.NewRef(steel),
					Children: []*Node{
						{ID: child, Name: "leaf", Position: Vec3{X: 1}, Material: catalog.NewRef(&Material{Roughness: 0.5, Quality: QualityMedium})},
						nil,
					},
				},
				{},
			},
			Metadata: map[string]string{"author": "demo"},
		}},
	}
}
