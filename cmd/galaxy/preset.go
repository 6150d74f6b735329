package galaxy

import (
	"fmt"
	"os"

	"github.com/lepinkainen/nebula/internal/layout"
	"gopkg.in/yaml.v3"
)

// Preset tunes the sphere layout from a YAML file, so galaxy geometry can be
// adjusted without rebuilding the binary. Zero-valued fields keep the engine
// defaults.
type Preset struct {
	Radius    float64 `yaml:"radius"`
	SizeScale float64 `yaml:"size_scale"`
}

// LoadPreset reads and validates a layout preset file.
func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading preset file: %w", err)
	}

	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing preset file: %w", err)
	}

	if p.Radius < 0 {
		return nil, fmt.Errorf("preset radius must be positive, got %v", p.Radius)
	}
	if p.SizeScale < 0 {
		return nil, fmt.Errorf("preset size_scale must be positive, got %v", p.SizeScale)
	}

	return &p, nil
}

// Apply overrides the engine's tunables with the preset's non-zero values.
func (p *Preset) Apply(engine *layout.Engine) {
	if p.Radius > 0 {
		engine.Radius = p.Radius
	}
	if p.SizeScale > 0 {
		engine.SizeScale = p.SizeScale
	}
}
