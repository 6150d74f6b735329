package session

import (
	"fmt"

	"github.com/lepinkainen/nebula/internal/geom"
	"github.com/lepinkainen/nebula/internal/scene"
)

// Selection is the open group of satellites around one word. It is built
// whole and swapped in atomically: there is never more than one group, and
// replacing it discards every prior satellite at once. A selection with zero
// satellites is valid, the word simply has no books in range.
type Selection struct {
	WordIndex  int
	Word       string
	Center     geom.Vec3
	Satellites []Satellite
}

// State is the mutable interaction state over one loaded scene. It is only
// ever touched from the single event loop driving the UI, so it carries no
// locking.
type State struct {
	Scene       *scene.Scene
	Range       YearRange
	OrbitRadius float64

	selection *Selection
	visible   []int
}

// New creates interaction state for a scene with the full year range active
// and nothing selected.
func New(sc *scene.Scene) *State {
	s := &State{
		Scene:       sc,
		Range:       NewYearRange(),
		OrbitRadius: DefaultOrbitRadius,
	}
	s.recompute()
	return s
}

// Selection returns the open selection group, or nil when no word is
// selected.
func (s *State) Selection() *Selection {
	return s.selection
}

// VisibleWords returns the indices of words with at least one book whose
// effective year falls inside the active range.
func (s *State) VisibleWords() []int {
	return s.visible
}

// Select opens a selection group around the word at the given index,
// replacing any previous group.
func (s *State) Select(wordIndex int) error {
	if wordIndex < 0 || wordIndex >= len(s.Scene.Words) {
		return fmt.Errorf("word index %d out of range", wordIndex)
	}

	word := s.Scene.Words[wordIndex]
	s.selection = &Selection{
		WordIndex:  wordIndex,
		Word:       word.Text,
		Center:     word.Position,
		Satellites: s.satellites(wordIndex, word.Position),
	}
	return nil
}

// ClearSelection closes the open selection group.
func (s *State) ClearSelection() {
	s.selection = nil
}

// SetStartYear adjusts the lower timeline bound and recomputes word
// visibility and the open selection against the new range.
func (s *State) SetStartYear(year int) {
	s.Range.SetStart(year)
	s.recompute()
}

// SetEndYear adjusts the upper timeline bound, with the same recompute
// cycle as SetStartYear.
func (s *State) SetEndYear(year int) {
	s.Range.SetEnd(year)
	s.recompute()
}

// SatelliteTargets returns the planet-pass hit-test candidates for the open
// selection, or nil when nothing is selected.
func (s *State) SatelliteTargets() []scene.Target {
	if s.selection == nil {
		return nil
	}

	targets := make([]scene.Target, 0, len(s.selection.Satellites))
	for _, sat := range s.selection.Satellites {
		targets = append(targets, scene.Target{
			Kind:   scene.KindPlanet,
			Index:  sat.BookIndex,
			Center: sat.Position,
			Radius: sat.Radius,
		})
	}
	return targets
}

// satellites filters the word's books by the active range and arranges the
// survivors in a ring sharing the word's depth.
func (s *State) satellites(wordIndex int, center geom.Vec3) []Satellite {
	word := s.Scene.Words[wordIndex]

	kept := make([]int, 0, len(word.Books))
	for _, bookIdx := range word.Books {
		if bookIdx < 0 || bookIdx >= len(s.Scene.Books) {
			continue
		}
		if s.Range.Contains(s.Scene.Books[bookIdx].EffectiveYear()) {
			kept = append(kept, bookIdx)
		}
	}

	positions := orbitRing(center, s.OrbitRadius, len(kept))
	sats := make([]Satellite, 0, len(kept))
	for i, bookIdx := range kept {
		sats = append(sats, Satellite{
			BookIndex: bookIdx,
			Book:      s.Scene.Books[bookIdx],
			Position:  positions[i],
			Radius:    PlanetRadius,
		})
	}
	return sats
}

func (s *State) recompute() {
	s.visible = s.visible[:0]
	for i := range s.Scene.Words {
		if s.wordInRange(i) {
			s.visible = append(s.visible, i)
		}
	}

	if s.selection != nil {
		s.selection = &Selection{
			WordIndex:  s.selection.WordIndex,
			Word:       s.selection.Word,
			Center:     s.selection.Center,
			Satellites: s.satellites(s.selection.WordIndex, s.selection.Center),
		}
	}
}

func (s *State) wordInRange(wordIndex int) bool {
	for _, bookIdx := range s.Scene.Words[wordIndex].Books {
		if bookIdx < 0 || bookIdx >= len(s.Scene.Books) {
			continue
		}
		if s.Range.Contains(s.Scene.Books[bookIdx].EffectiveYear()) {
			return true
		}
	}
	return false
}
