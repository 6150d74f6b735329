package scene

import (
	"math"

	"github.com/lepinkainen/nebula/internal/geom"
)

// WordPadding inflates a word's interaction sphere beyond its visual size.
// Rendered words are thin text geometry, so the clickable volume is twice
// the visual size.
const WordPadding = 2.0

// TargetKind distinguishes the two hit-test passes.
type TargetKind string

const (
	// KindWord targets are padded spheres around placed words.
	KindWord TargetKind = "word"
	// KindPlanet targets are the satellite books of the open selection.
	KindPlanet TargetKind = "planet"
)

// Target is one candidate sphere for a hit-test pass. Index identifies the
// word or book within its owning collection.
type Target struct {
	Kind   TargetKind
	Index  int
	Center geom.Vec3
	Radius float64
}

// Hit is the result of a successful hit test.
type Hit struct {
	Target   Target
	Distance float64
}

// NearestHit intersects the ray against every target and returns the hit
// with the smallest ray parameter. It is a pure function: callers supply
// whatever candidate set the current interaction mode allows.
func NearestHit(ray geom.Ray, targets []Target) (Hit, bool) {
	best := Hit{Distance: math.Inf(1)}
	found := false

	for _, tgt := range targets {
		t, ok := ray.IntersectSphere(tgt.Center, tgt.Radius)
		if ok && t < best.Distance {
			best = Hit{Target: tgt, Distance: t}
			found = true
		}
	}

	return best, found
}

// WordTargets builds the word-pass candidate set. Only indices listed in
// visible take part; a nil slice means every word is a candidate.
func (s *Scene) WordTargets(visible []int) []Target {
	if visible == nil {
		visible = make([]int, len(s.Words))
		for i := range visible {
			visible[i] = i
		}
	}

	targets := make([]Target, 0, len(visible))
	for _, i := range visible {
		if i < 0 || i >= len(s.Words) {
			continue
		}
		w := s.Words[i]
		targets = append(targets, Target{
			Kind:   KindWord,
			Index:  i,
			Center: w.Position,
			Radius: w.Size * WordPadding,
		})
	}
	return targets
}
