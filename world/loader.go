package world

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gosight/sightmesh"
)

// Fan defaults applied when a scene file omits a field. They describe a
// closed 360-degree sweep, the configuration a headless viewer most often
// wants out of the box.
const (
	DefaultArcDegrees  = 360
	DefaultStepDegrees = 2
	DefaultRadius      = 400
)

// fileSpec mirrors the YAML scene format:
//
//	fan:
//	  arc_degrees: 120
//	  step_degrees: 3
//	  radius: 350
//	origin: [320, 240]
//	forward: [1, 0]
//	walls:
//	  - [64, 64, 256, 64]
//	blocks:
//	  - {x: 400, y: 120, w: 96, h: 64}
type fileSpec struct {
	Fan struct {
		ArcDegrees  float64 `yaml:"arc_degrees"`
		StepDegrees float64 `yaml:"step_degrees"`
		Radius      float64 `yaml:"radius"`
	} `yaml:"fan"`
	Origin  []float64    `yaml:"origin"`
	Forward []float64    `yaml:"forward"`
	Walls   [][4]float64 `yaml:"walls"`
	Blocks  []struct {
		X float64 `yaml:"x"`
		Y float64 `yaml:"y"`
		W float64 `yaml:"w"`
		H float64 `yaml:"h"`
	} `yaml:"blocks"`
}

// Parse builds a scene and fan parameters from YAML scene data.
// Missing fan fields fall back to the package defaults; a missing forward
// direction defaults to +X. The returned params are validated, so a file
// with a nonsensical fan fails here rather than at first use.
func Parse(data []byte) (*Scene, sightmesh.Params, error) {
	var spec fileSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, sightmesh.Params{}, fmt.Errorf("world: parse scene: %w", err)
	}

	params := sightmesh.Params{
		Forward:     sightmesh.V2(1, 0),
		ArcDegrees:  DefaultArcDegrees,
		StepDegrees: DefaultStepDegrees,
		Radius:      DefaultRadius,
	}
	if spec.Fan.ArcDegrees != 0 {
		params.ArcDegrees = spec.Fan.ArcDegrees
	}
	if spec.Fan.StepDegrees != 0 {
		params.StepDegrees = spec.Fan.StepDegrees
	}
	if spec.Fan.Radius != 0 {
		params.Radius = spec.Fan.Radius
	}
	if v, ok, err := vec2At(spec.Origin, "origin"); err != nil {
		return nil, sightmesh.Params{}, err
	} else if ok {
		params.Origin = v
	}
	if v, ok, err := vec2At(spec.Forward, "forward"); err != nil {
		return nil, sightmesh.Params{}, err
	} else if ok {
		params.Forward = v
	}
	if err := params.Validate(); err != nil {
		return nil, sightmesh.Params{}, err
	}

	scene := New()
	for _, w := range spec.Walls {
		scene.Add(Seg(w[0], w[1], w[2], w[3]))
	}
	for _, b := range spec.Blocks {
		scene.AddRect(b.X, b.Y, b.W, b.H)
	}
	return scene, params, nil
}

// Load reads and parses a YAML scene file.
func Load(path string) (*Scene, sightmesh.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, sightmesh.Params{}, fmt.Errorf("world: load scene: %w", err)
	}
	return Parse(data)
}

func vec2At(coords []float64, field string) (sightmesh.Vec2, bool, error) {
	switch len(coords) {
	case 0:
		return sightmesh.Vec2{}, false, nil
	case 2:
		return sightmesh.V2(coords[0], coords[1]), true, nil
	default:
		return sightmesh.Vec2{}, false, fmt.Errorf("world: field %q needs exactly 2 coordinates, got %d", field, len(coords))
	}
}
