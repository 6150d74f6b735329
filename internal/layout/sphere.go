// Package layout places indexed words on a sphere. Placement is
// deterministic: the same word count and order always reproduces identical
// positions, so a rebuilt galaxy looks the same.
package layout

import (
	"math"

	"github.com/lepinkainen/nebula/internal/geom"
	"github.com/lepinkainen/nebula/internal/wordindex"
)

const (
	// DefaultRadius is the galaxy sphere radius in scene units.
	DefaultRadius = 100.0
	// DefaultSizeScale multiplies the log-compressed frequency into a
	// visual size.
	DefaultSizeScale = 2.0
)

// Placement is one word's derived position and size. Placements are
// recomputed whenever the index changes, never mutated in place.
type Placement struct {
	Entry    *wordindex.Entry
	Position geom.Vec3
	Size     float64
}

// Engine computes sphere placements for a word index.
type Engine struct {
	Radius    float64
	SizeScale float64
}

// NewEngine returns an engine with the default radius and size scale.
func NewEngine() *Engine {
	return &Engine{Radius: DefaultRadius, SizeScale: DefaultSizeScale}
}

// Layout assigns every entry a position on the sphere using a
// Fibonacci-style distribution: polar angle acos(-1 + 2i/(N-1)) spreads
// points evenly pole to pole, azimuth sqrt(N*pi) * polar spreads them
// longitudinally. A single word sits at the north pole so the formulas
// never divide by zero.
func (e *Engine) Layout(words []*wordindex.Entry) []Placement {
	n := len(words)
	placements := make([]Placement, 0, n)

	for i, entry := range words {
		placements = append(placements, Placement{
			Entry:    entry,
			Position: e.position(i, n),
			Size:     e.VisualSize(entry.Frequency),
		})
	}

	return placements
}

func (e *Engine) position(i, n int) geom.Vec3 {
	if n == 1 {
		return geom.Vec3{Z: e.Radius}
	}

	polar := math.Acos(-1 + 2*float64(i)/float64(n-1))
	azimuth := math.Sqrt(float64(n)*math.Pi) * polar

	sinPolar := math.Sin(polar)
	return geom.Vec3{
		X: e.Radius * sinPolar * math.Cos(azimuth),
		Y: e.Radius * sinPolar * math.Sin(azimuth),
		Z: e.Radius * math.Cos(polar),
	}
}

// VisualSize maps a frequency to a display size: log(frequency+1) scaled.
// The log keeps very common words from dominating the display; size grows
// monotonically but sublinearly with frequency. A small floor keeps
// frequency-0 entries visible and hit-testable.
func (e *Engine) VisualSize(frequency int) float64 {
	size := math.Log(float64(frequency)+1) * e.SizeScale
	if size < minVisualSize {
		return minVisualSize
	}
	return size
}

const minVisualSize = 0.5
