package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/platformer/motion"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type BodySpec struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Mass     float64 `yaml:"mass"`
	Friction float64 `yaml:"friction"`
}

type PlayerSpec struct {
	Name   string            `yaml:"name"`
	Preset string            `yaml:"preset"`
	Body   BodySpec          `yaml:"body"`
	Color  YAMLColor         `yaml:"color"`
	Clips  map[string]string `yaml:"clips"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Body.Width <= 0 || spec.Body.Height <= 0 {
		return nil, fmt.Errorf("prefabs: player.yaml: body size %.2fx%.2f must be positive", spec.Body.Width, spec.Body.Height)
	}
	return &spec, nil
}

// ClipMap resolves clip names by discrete state. Unknown state names are
// reported so typos in the prefab do not go unnoticed.
func (p *PlayerSpec) ClipMap() (map[motion.DiscreteState]string, error) {
	out := make(map[motion.DiscreteState]string, len(p.Clips))
	for name, clip := range p.Clips {
		s, ok := motion.ParseDiscreteState(name)
		if !ok {
			return nil, fmt.Errorf("prefabs: player.yaml: unknown state %q in clips", name)
		}
		out[s] = clip
	}
	return out, nil
}

type CameraSpec struct {
	Name       string  `yaml:"name"`
	OffsetX    float64 `yaml:"offset_x"`
	OffsetY    float64 `yaml:"offset_y"`
	Smoothing  float64 `yaml:"smoothing"`
	HalfWidth  float64 `yaml:"half_width"`
	HalfHeight float64 `yaml:"half_height"`
	ShakeSeed  int64   `yaml:"shake_seed"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec]("camera.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type YAMLColor struct {
	color.RGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("invalid color %s: %w", value.Value, err)
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}

	c.RGBA = color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	return nil
}
