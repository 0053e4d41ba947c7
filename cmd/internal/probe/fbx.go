// Package probe inspects the input files before any host process is
// spawned, so a missing or malformed input fails fast instead of half
// way through a render.
package probe

import (
	"errors"
	"fmt"
	"os"

	"github.com/binzume/modelconv/fbx"
	"github.com/fbxshot/fbxshot/cmd/internal/framing"
	"github.com/fbxshot/fbxshot/cmd/internal/job"
	"github.com/go-gl/mathgl/mgl64"
)

// Model summarizes the geometry found in an FBX file.
type Model struct {
	Path     string
	Meshes   int
	Vertices int
	Bounds   framing.Bounds
}

// InspectFBX parses the FBX file and collects the world-space bounding
// box of its geometry. Any failure is a *job.ImportError naming the path.
func InspectFBX(path string) (*Model, error) {
	if err := checkRegularFile(path); err != nil {
		return nil, &job.ImportError{Path: path, Err: err}
	}

	doc, err := fbx.Load(path)
	if err != nil {
		return nil, &job.ImportError{Path: path, Err: fmt.Errorf("parse fbx: %w", err)}
	}

	m := &Model{Path: path, Bounds: framing.NewBounds()}
	if doc.Scene != nil {
		m.collect(doc.Scene)
	}
	return m, nil
}

func (m *Model) collect(node *fbx.Model) {
	if g := node.GetGeometry(); g != nil {
		m.Meshes++
		world := node.GetWorldMatrix()
		for _, v := range g.Vertices {
			w := world.ApplyTo(v)
			m.Bounds.Extend(mgl64.Vec3{float64(w.X), float64(w.Y), float64(w.Z)})
			m.Vertices++
		}
	}
	for _, child := range node.GetChildModels() {
		m.collect(child)
	}
}

func checkRegularFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return errors.New("is a directory, not a file")
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	return f.Close()
}
