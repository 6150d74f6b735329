// Package viewer renders a scene into a self-contained HTML galaxy view and
// captures headless-browser snapshots of it.
package viewer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/lepinkainen/nebula/internal/fileutil"
	"github.com/lepinkainen/nebula/internal/scene"
)

// viewerTemplate draws the galaxy on a canvas: words projected from their
// sphere positions with a simple perspective divide, sized by visual size.
// The scene travels inline as JSON so the file works from file:// URLs.
const viewerTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { margin: 0; background: #05060f; color: #dde; font-family: monospace; }
  #galaxy { display: block; }
  #hud { position: fixed; top: 8px; left: 8px; }
</style>
</head>
<body>
<div id="hud">{{.Title}} &mdash; {{.WordCount}} words, {{.BookCount}} books</div>
<canvas id="galaxy"></canvas>
<script id="scene-data" type="application/json">{{.SceneJSON}}</script>
<script>
  const sceneData = JSON.parse(document.getElementById("scene-data").textContent);
  const canvas = document.getElementById("galaxy");
  const ctx = canvas.getContext("2d");
  canvas.width = window.innerWidth || 1280;
  canvas.height = window.innerHeight || 800;

  const cx = canvas.width / 2;
  const cy = canvas.height / 2;
  const cameraZ = sceneData.radius * 3;

  for (const word of sceneData.words) {
    const depth = cameraZ - word.position.z;
    if (depth <= 0) continue;
    const scale = cameraZ / depth;
    const x = cx + word.position.x * scale;
    const y = cy - word.position.y * scale;
    ctx.fillStyle = "#cfd8ff";
    ctx.font = Math.max(8, word.size * 6 * scale) + "px monospace";
    ctx.fillText(word.text, x, y);
  }
</script>
</body>
</html>
`

type templateData struct {
	Title     string
	WordCount int
	BookCount int
	SceneJSON template.JS
}

// RenderHTML renders the scene into the standalone viewer page.
func RenderHTML(sc *scene.Scene, title string) ([]byte, error) {
	sceneJSON, err := json.Marshal(sc)
	if err != nil {
		return nil, fmt.Errorf("encoding scene: %w", err)
	}

	tmpl, err := template.New("viewer").Parse(viewerTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing viewer template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, templateData{
		Title:     title,
		WordCount: len(sc.Words),
		BookCount: len(sc.Books),
		SceneJSON: template.JS(sceneJSON),
	})
	if err != nil {
		return nil, fmt.Errorf("rendering viewer template: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteHTML renders the viewer page to a file, respecting the overwrite flag.
// Returns true if the file was written.
func WriteHTML(sc *scene.Scene, title, path string, overwrite bool) (bool, error) {
	html, err := RenderHTML(sc, title)
	if err != nil {
		return false, err
	}
	return fileutil.WriteFileWithOverwrite(path, html, 0644, overwrite)
}
