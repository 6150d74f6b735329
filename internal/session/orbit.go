package session

import (
	"math"

	"github.com/lepinkainen/nebula/internal/catalog"
	"github.com/lepinkainen/nebula/internal/geom"
)

const (
	// DefaultOrbitRadius is the distance from a selected word to its
	// satellite ring, in scene units.
	DefaultOrbitRadius = 12.0
	// PlanetRadius is the hit-test radius of one satellite book.
	PlanetRadius = 1.5
)

// Satellite is one book placed in the ring around a selected word.
// BookIndex refers into the scene's book list.
type Satellite struct {
	BookIndex int
	Book      *catalog.Book
	Position  geom.Vec3
	Radius    float64
}

// orbitRing spreads n positions at equal angular steps around the center,
// at the given radius. The ring lies in the plane orthogonal to depth: every
// satellite keeps the center's Z. Not a true 3D orbit, and deliberately so.
func orbitRing(center geom.Vec3, radius float64, n int) []geom.Vec3 {
	positions := make([]geom.Vec3, 0, n)
	for k := 0; k < n; k++ {
		angle := 2 * math.Pi * float64(k) / float64(n)
		positions = append(positions, geom.Vec3{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
			Z: center.Z,
		})
	}
	return positions
}
