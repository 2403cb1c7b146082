// Package export writes the rendered views of one report to a directory so
// a setup can be shared or archived without running the server.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/banshee-data/tvmount/internal/controls"
	"github.com/banshee-data/tvmount/internal/fsutil"
	"github.com/banshee-data/tvmount/internal/monitoring"
	"github.com/banshee-data/tvmount/internal/render"
)

// File names written by Write, in write order.
const (
	SceneHTML    = "scene.html"
	ElevationPNG = "elevation.png"
	TrianglePNG  = "triangle.png"
	SceneJSON    = "scene.json"
)

type renderFunc func(buf *bytes.Buffer) error

// Write renders rep into dir on disk. See WriteFS.
func Write(dir string, rep controls.Report, o render.ChartOptions) ([]string, error) {
	return WriteFS(fsutil.OSFileSystem{}, dir, rep, o)
}

// WriteFS renders rep into dir on fsys, creating it if needed, and returns
// the paths written. Existing files with the same names are replaced. dir is
// used as given; callers taking it from users resolve it with
// security.ResolveExportDir first.
func WriteFS(fsys fsutil.FileSystem, dir string, rep controls.Report, o render.ChartOptions) ([]string, error) {
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}

	steps := []struct {
		name   string
		render renderFunc
	}{
		{SceneHTML, func(buf *bytes.Buffer) error {
			return render.WriteChart3D(buf, rep.Scene, o)
		}},
		{ElevationPNG, func(buf *bytes.Buffer) error {
			p, err := render.ElevationPlot(rep.Scene)
			if err != nil {
				return err
			}
			return render.WritePNG(buf, p, render.ElevationWidth, render.ElevationHeight)
		}},
		{TrianglePNG, func(buf *bytes.Buffer) error {
			params := rep.Selection.Params
			p, err := render.TrigPlot(params.DistanceIn(), params.FOVDeg)
			if err != nil {
				return err
			}
			return render.WritePNG(buf, p, render.TrigWidth, render.TrigHeight)
		}},
		{SceneJSON, func(buf *bytes.Buffer) error {
			enc := json.NewEncoder(buf)
			enc.SetIndent("", "  ")
			return enc.Encode(rep)
		}},
	}

	written := make([]string, 0, len(steps))
	for _, step := range steps {
		path := filepath.Join(dir, step.name)
		var buf bytes.Buffer
		if err := step.render(&buf); err != nil {
			return written, fmt.Errorf("render %s: %w", step.name, err)
		}
		if err := fsys.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", step.name, err)
		}
		monitoring.Logf("exported %s (%d bytes)", path, buf.Len())
		written = append(written, path)
	}
	return written, nil
}
