// Package explore opens a built galaxy scene in the terminal explorer.
package explore

import (
	"fmt"

	"github.com/lepinkainen/nebula/internal/scene"
	"github.com/lepinkainen/nebula/internal/session"
	"github.com/lepinkainen/nebula/internal/tui"
)

var runExplorer = tui.Explore

// ExploreWithParams loads the scene file and hands it to the interactive
// explorer.
func ExploreWithParams(scenePath string) error {
	sc, err := scene.Load(scenePath)
	if err != nil {
		return fmt.Errorf("loading scene (run 'nebula build' first?): %w", err)
	}

	return runExplorer(session.New(sc))
}
