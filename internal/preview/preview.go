// Package preview renders a binary STL mesh to a shaded PNG so a part can
// be inspected without loading it into a slicer.
package preview

import (
	"fmt"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"gonum.org/v1/gonum/spatial/r3"
)

// View configures the camera and canvas for a preview render. The mesh is
// normalized to a bi-unit cube before rendering, so eye positions are in
// cube units, not millimeters.
type View struct {
	// LookAt is the point the camera aims at.
	LookAt r3.Vec
	// Up is the camera up direction.
	Up r3.Vec
	// Eye is the camera position.
	Eye r3.Vec
	// Width and Height are the output image size in pixels.
	Width, Height int
	// Color and Background are hex colors, e.g. "#468966".
	Color      string
	Background string
}

// DefaultView is an isometric look at the part.
func DefaultView() View {
	return View{
		Up:         r3.Vec{Z: 1},
		Eye:        r3.Vec{X: 2.4, Y: 2.4, Z: 2.4},
		Width:      768,
		Height:     432,
		Color:      "#468966",
		Background: "#FFF8E3",
	}
}

// PNG reads the STL at stlName and writes a shaded render to pngName.
func PNG(stlName, pngName string, v View) error {
	mesh, err := fauxgl.LoadSTL(stlName)
	if err != nil {
		return fmt.Errorf("load %s: %w", stlName, err)
	}
	if len(mesh.Triangles) == 0 {
		return fmt.Errorf("%s: empty mesh", stlName)
	}
	const (
		scale = 2 // supersampling factor
		fovy  = 30
		near  = 1
		far   = 10
	)
	var (
		eye    = fauxgl.V(v.Eye.X, v.Eye.Y, v.Eye.Z)
		center = fauxgl.V(v.LookAt.X, v.LookAt.Y, v.LookAt.Z)
		up     = fauxgl.V(v.Up.X, v.Up.Y, v.Up.Z)
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()
	)

	mesh.BiUnitCube()
	context := fauxgl.NewContext(v.Width*scale, v.Height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor(v.Background))
	aspect := float64(v.Width) / float64(v.Height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, near, far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = fauxgl.HexColor(v.Color)
	context.Shader = shader
	context.DrawMesh(mesh)

	// Downsample for antialiasing.
	img := resize.Resize(uint(v.Width), uint(v.Height), context.Image(), resize.Bilinear)
	return fauxgl.SavePNG(pngName, img)
}
