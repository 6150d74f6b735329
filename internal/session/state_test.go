package session

import (
	"math"
	"testing"

	"github.com/lepinkainen/nebula/internal/catalog"
	"github.com/lepinkainen/nebula/internal/geom"
	"github.com/lepinkainen/nebula/internal/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func bookDyingIn(title string, year int) *catalog.Book {
	return &catalog.Book{
		Title:   title,
		Authors: []catalog.Person{{Name: "Author of " + title, DeathYear: intPtr(year)}},
	}
}

// testScene links word 0 to books at effective years 1850, 1900 and 1950,
// and word 1 to a book with no authors at all.
func testScene() *scene.Scene {
	return &scene.Scene{
		Radius: 100,
		Books: []*catalog.Book{
			bookDyingIn("Early", 1850),
			bookDyingIn("Middle", 1900),
			bookDyingIn("Late", 1950),
			{Title: "Anonymous"},
		},
		Words: []scene.Word{
			{Text: "sea", Position: geom.Vec3{X: 30, Y: 40, Z: 50}, Size: 2, Books: []int{0, 1, 2}},
			{Text: "ghost", Position: geom.Vec3{Z: -60}, Size: 1, Books: []int{3}},
		},
	}
}

func satelliteTitles(sel *Selection) []string {
	titles := make([]string, 0, len(sel.Satellites))
	for _, sat := range sel.Satellites {
		titles = append(titles, sat.Book.Title)
	}
	return titles
}

func TestSelectFiltersByEffectiveYear(t *testing.T) {
	s := New(testScene())
	s.SetStartYear(1900)
	s.SetEndYear(1950)

	require.NoError(t, s.Select(0))

	sel := s.Selection()
	require.NotNil(t, sel)
	assert.Equal(t, "sea", sel.Word)
	assert.Equal(t, []string{"Middle", "Late"}, satelliteTitles(sel))
}

func TestSelectOutOfRangeIndex(t *testing.T) {
	s := New(testScene())

	assert.Error(t, s.Select(-1))
	assert.Error(t, s.Select(2))
	assert.Nil(t, s.Selection())
}

func TestSelectionReplacedAtomically(t *testing.T) {
	s := New(testScene())

	require.NoError(t, s.Select(0))
	require.Len(t, s.Selection().Satellites, 3)

	require.NoError(t, s.Select(1))
	sel := s.Selection()
	assert.Equal(t, "ghost", sel.Word)
	for _, title := range satelliteTitles(sel) {
		assert.NotContains(t, []string{"Early", "Middle", "Late"}, title)
	}
}

func TestEmptySelectionIsValid(t *testing.T) {
	s := New(testScene())
	s.SetStartYear(2000)

	require.NoError(t, s.Select(0))

	sel := s.Selection()
	require.NotNil(t, sel, "an empty selection group is still a selection")
	assert.Empty(t, sel.Satellites)
}

func TestBookWithoutAuthorsDefaultsTo1900(t *testing.T) {
	s := New(testScene())

	require.NoError(t, s.Select(1))
	assert.Len(t, s.Selection().Satellites, 1)

	// narrow the range to exclude 1900 and the anonymous book drops out
	s.SetStartYear(1950)
	assert.Empty(t, s.Selection().Satellites)

	s.SetStartYear(1880)
	s.SetEndYear(1920)
	assert.Len(t, s.Selection().Satellites, 1)
}

func TestRangeChangeRecomputesOpenSelection(t *testing.T) {
	s := New(testScene())
	require.NoError(t, s.Select(0))
	require.Len(t, s.Selection().Satellites, 3)

	s.SetEndYear(1875)
	assert.Equal(t, []string{"Early"}, satelliteTitles(s.Selection()))

	s.SetEndYear(MaxYear)
	assert.Len(t, s.Selection().Satellites, 3)
}

func TestVisibleWordsFollowRange(t *testing.T) {
	s := New(testScene())
	assert.Equal(t, []int{0, 1}, s.VisibleWords())

	// only the 1950 book survives, so only word 0 stays visible
	s.SetStartYear(1940)
	assert.Equal(t, []int{0}, s.VisibleWords())

	s.SetStartYear(2000)
	assert.Empty(t, s.VisibleWords())
}

func TestOrbitRingGeometry(t *testing.T) {
	s := New(testScene())
	require.NoError(t, s.Select(0))

	sel := s.Selection()
	require.Len(t, sel.Satellites, 3)

	for i, sat := range sel.Satellites {
		// ring shares the word's depth coordinate
		assert.Equal(t, sel.Center.Z, sat.Position.Z)

		// each satellite sits exactly one orbit radius from the word
		offset := sat.Position.Sub(sel.Center)
		assert.InDelta(t, s.OrbitRadius, offset.Length(), 1e-9)

		// equal angular increments of 2*pi/N
		angle := math.Atan2(offset.Y, offset.X)
		want := 2 * math.Pi * float64(i) / 3
		if want > math.Pi {
			want -= 2 * math.Pi
		}
		assert.InDelta(t, want, angle, 1e-9)
	}
}

func TestSatelliteTargets(t *testing.T) {
	s := New(testScene())
	assert.Nil(t, s.SatelliteTargets())

	require.NoError(t, s.Select(0))
	targets := s.SatelliteTargets()
	require.Len(t, targets, 3)
	for _, tgt := range targets {
		assert.Equal(t, scene.KindPlanet, tgt.Kind)
		assert.Equal(t, PlanetRadius, tgt.Radius)
	}

	s.ClearSelection()
	assert.Nil(t, s.SatelliteTargets())
}
