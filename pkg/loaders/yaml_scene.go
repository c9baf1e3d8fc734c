package loaders

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// ErrUnknownShape is returned for object types the loader cannot build or encode
var ErrUnknownShape = errors.New("unknown shape type")

// Vec3Def is a YAML [x, y, z] triple
type Vec3Def [3]float64

func (v Vec3Def) vec3() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// MarshalYAML writes the triple in flow style: [x, y, z]
func (v Vec3Def) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, c := range v {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Value: strconv.FormatFloat(c, 'g', -1, 64),
		})
	}
	return node, nil
}

func toVec3Def(v core.Vec3) *Vec3Def {
	return &Vec3Def{v.X, v.Y, v.Z}
}

// SceneFile is the YAML document describing a scene
type SceneFile struct {
	Name       string      `yaml:"name"`
	Camera     CameraDef   `yaml:"camera"`
	Render     RenderDef   `yaml:"render,omitempty"`
	Background *Vec3Def    `yaml:"background,omitempty"`
	Ambient    *Vec3Def    `yaml:"ambient,omitempty"`
	Lights     []LightDef  `yaml:"lights,omitempty"`
	Objects    []ObjectDef `yaml:"objects"`
}

// CameraDef describes the pinhole camera
type CameraDef struct {
	Position Vec3Def  `yaml:"position"`
	LookAt   Vec3Def  `yaml:"look_at"`
	Up       *Vec3Def `yaml:"up,omitempty"`
	VFov     float64  `yaml:"vfov,omitempty"`
}

// RenderDef holds the recommended render settings; zero values keep the defaults.
// Workers is a pointer since an explicit 0 means one worker per CPU.
type RenderDef struct {
	Width    int  `yaml:"width,omitempty"`
	Height   int  `yaml:"height,omitempty"`
	MaxDepth int  `yaml:"max_depth,omitempty"`
	Workers  *int `yaml:"workers,omitempty"`
}

// LightDef describes a point light
type LightDef struct {
	Position  Vec3Def  `yaml:"position"`
	Color     *Vec3Def `yaml:"color,omitempty"`
	Intensity *float64 `yaml:"intensity,omitempty"`
}

// MaterialDef describes a surface material; omitted fields keep material.New defaults
type MaterialDef struct {
	Diffuse         *Vec3Def `yaml:"diffuse,omitempty"`
	Specular        *Vec3Def `yaml:"specular,omitempty"`
	Emission        *Vec3Def `yaml:"emission,omitempty"`
	Shininess       float64  `yaml:"shininess,omitempty"`
	Reflectivity    float64  `yaml:"reflectivity,omitempty"`
	Transparency    float64  `yaml:"transparency,omitempty"`
	RefractiveIndex float64  `yaml:"refractive_index,omitempty"`
}

// ObjectDef describes one shape. Which fields apply depends on Type.
type ObjectDef struct {
	Type     string      `yaml:"type"`
	Center   *Vec3Def    `yaml:"center,omitempty"` // sphere
	Radius   float64     `yaml:"radius,omitempty"` // sphere
	Min      *Vec3Def    `yaml:"min,omitempty"`    // box
	Max      *Vec3Def    `yaml:"max,omitempty"`    // box
	Point    *Vec3Def    `yaml:"point,omitempty"`  // plane
	Normal   *Vec3Def    `yaml:"normal,omitempty"` // plane
	Material MaterialDef `yaml:"material,omitempty"`
}

// LoadSceneFile reads and builds a scene from a YAML file
func LoadSceneFile(path string) (*scene.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	s, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return s, nil
}

// ParseScene builds a scene from a YAML document
func ParseScene(data []byte) (*scene.Scene, error) {
	var file SceneFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	return file.Build()
}

// Build converts the document into a scene
func (f SceneFile) Build() (*scene.Scene, error) {
	renderConfig := scene.DefaultRenderConfig()
	if f.Render.Width > 0 {
		renderConfig.Width = f.Render.Width
	}
	if f.Render.Height > 0 {
		renderConfig.Height = f.Render.Height
	}
	if f.Render.MaxDepth > 0 {
		renderConfig.MaxDepth = f.Render.MaxDepth
	}
	if f.Render.Workers != nil {
		if *f.Render.Workers < 0 {
			return nil, fmt.Errorf("render workers must not be negative, got %d", *f.Render.Workers)
		}
		renderConfig.NumWorkers = *f.Render.Workers
	}

	cameraConfig := geometry.CameraConfig{
		Center: f.Camera.Position.vec3(),
		LookAt: f.Camera.LookAt.vec3(),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   60,
	}
	if f.Camera.Up != nil {
		cameraConfig.Up = f.Camera.Up.vec3()
	}
	if f.Camera.VFov > 0 {
		cameraConfig.VFov = f.Camera.VFov
	}
	if cameraConfig.LookAt == cameraConfig.Center {
		return nil, fmt.Errorf("camera position and look_at must differ")
	}

	name := f.Name
	if name == "" {
		name = "untitled"
	}
	s := scene.New(name, cameraConfig, renderConfig)

	if f.Background != nil {
		s.Background = f.Background.vec3()
	}
	if f.Ambient != nil {
		s.Ambient = f.Ambient.vec3()
	}

	for _, l := range f.Lights {
		color := core.NewVec3(1, 1, 1)
		if l.Color != nil {
			color = l.Color.vec3()
		}
		intensity := 1.0
		if l.Intensity != nil {
			intensity = *l.Intensity
		}
		s.AddLight(lights.NewPointLight(l.Position.vec3(), color, intensity))
	}

	for i, o := range f.Objects {
		shape, err := o.build()
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		s.AddShape(shape)
	}

	return s, nil
}

func (o ObjectDef) build() (geometry.Shape, error) {
	m := o.Material.build()

	switch o.Type {
	case "sphere":
		if o.Center == nil || o.Radius <= 0 {
			return nil, fmt.Errorf("sphere needs center and a positive radius")
		}
		return geometry.NewSphere(o.Center.vec3(), o.Radius, m), nil
	case "box":
		if o.Min == nil || o.Max == nil {
			return nil, fmt.Errorf("box needs min and max")
		}
		return geometry.NewBox(o.Min.vec3(), o.Max.vec3(), m), nil
	case "plane":
		if o.Point == nil || o.Normal == nil || o.Normal.vec3().IsZero() {
			return nil, fmt.Errorf("plane needs point and a non-zero normal")
		}
		return geometry.NewPlane(o.Point.vec3(), o.Normal.vec3(), m), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, o.Type)
	}
}

func (d MaterialDef) build() material.Material {
	m := material.New()
	if d.Diffuse != nil {
		m.Diffuse = d.Diffuse.vec3()
	}
	if d.Specular != nil {
		m.Specular = d.Specular.vec3()
	}
	if d.Emission != nil {
		m.Emission = d.Emission.vec3()
	}
	m.Shininess = d.Shininess
	m.Reflectivity = d.Reflectivity
	m.Transparency = d.Transparency
	if d.RefractiveIndex > 0 {
		m.RefractiveIndex = d.RefractiveIndex
	}
	return m
}

// EncodeScene writes a scene as a YAML document that ParseScene reads back
func EncodeScene(s *scene.Scene) ([]byte, error) {
	file, err := NewSceneFile(s)
	if err != nil {
		return nil, err
	}

	data, err := yaml.Marshal(file)
	if err != nil {
		return nil, fmt.Errorf("failed to encode scene: %w", err)
	}
	return data, nil
}

// NewSceneFile converts a scene to its YAML document form
func NewSceneFile(s *scene.Scene) (SceneFile, error) {
	camera := s.Camera.Config()
	workers := s.RenderConfig.NumWorkers
	file := SceneFile{
		Name: s.Name,
		Camera: CameraDef{
			Position: *toVec3Def(camera.Center),
			LookAt:   *toVec3Def(camera.LookAt),
			Up:       toVec3Def(camera.Up),
			VFov:     camera.VFov,
		},
		Render: RenderDef{
			Width:    s.RenderConfig.Width,
			Height:   s.RenderConfig.Height,
			MaxDepth: s.RenderConfig.MaxDepth,
			Workers:  &workers,
		},
		Background: toVec3Def(s.Background),
		Ambient:    toVec3Def(s.Ambient),
	}

	for _, l := range s.Lights {
		intensity := l.Intensity
		file.Lights = append(file.Lights, LightDef{
			Position:  *toVec3Def(l.Position),
			Color:     toVec3Def(l.Color),
			Intensity: &intensity,
		})
	}

	for i, shape := range s.Shapes {
		o := ObjectDef{Material: newMaterialDef(shape.GetMaterial())}
		switch sh := shape.(type) {
		case *geometry.Sphere:
			o.Type = "sphere"
			o.Center = toVec3Def(sh.Center)
			o.Radius = sh.Radius
		case *geometry.Box:
			o.Type = "box"
			o.Min = toVec3Def(sh.Min)
			o.Max = toVec3Def(sh.Max)
		case *geometry.Plane:
			o.Type = "plane"
			o.Point = toVec3Def(sh.Point)
			o.Normal = toVec3Def(sh.Normal)
		default:
			return SceneFile{}, fmt.Errorf("object %d: %w: %T", i, ErrUnknownShape, shape)
		}
		file.Objects = append(file.Objects, o)
	}

	return file, nil
}

func newMaterialDef(m material.Material) MaterialDef {
	d := MaterialDef{
		Shininess:       m.Shininess,
		Reflectivity:    m.Reflectivity,
		Transparency:    m.Transparency,
		RefractiveIndex: m.RefractiveIndex,
	}
	if !m.Diffuse.IsZero() {
		d.Diffuse = toVec3Def(m.Diffuse)
	}
	if !m.Specular.IsZero() {
		d.Specular = toVec3Def(m.Specular)
	}
	if !m.Emission.IsZero() {
		d.Emission = toVec3Def(m.Emission)
	}
	return d
}
