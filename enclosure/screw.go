package enclosure

import (
	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form3/must3"
	"gonum.org/v1/gonum/spatial/r3"
)

// screwHoleParams defines one counterbored screw hole cut.
type screwHoleParams struct {
	ShaftDiameter float64
	HeadDiameter  float64
	// HeadHeight is how deep the counterbore recesses from TopZ so the
	// screw head seats flush.
	HeadHeight float64
	// Height is the shaft cut depth below TopZ.
	Height float64
	// TopZ is the z coordinate of the surface the head seats into.
	TopZ float64
}

// screwHole returns the cutting solid for a counterbored screw hole,
// centered on the z axis. The shaft and counterbore share the axis, so the
// bore is concentric with the shaft wherever the hole is placed.
func screwHole(k screwHoleParams) sdf.SDF3 {
	shaftH := k.Height + 2*cutMargin
	var shaft sdf.SDF3 = must3.Cylinder(shaftH, k.ShaftDiameter/2, 0)
	shaft = sdf.Transform3D(shaft, sdf.Translate3D(r3.Vec{Z: k.TopZ + cutMargin - shaftH/2}))

	boreH := k.HeadHeight + cutMargin
	var bore sdf.SDF3 = must3.Cylinder(boreH, k.HeadDiameter/2, 0)
	bore = sdf.Transform3D(bore, sdf.Translate3D(r3.Vec{Z: k.TopZ + cutMargin - boreH/2}))
	return sdf.Union3D(shaft, bore)
}
