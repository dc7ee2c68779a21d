package enclosure

import (
	"fmt"

	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form3/must3"
	"gonum.org/v1/gonum/spatial/r3"
)

// TopCase returns the upper shell: a hollow box open at the bottom, with
// the ball opening in the roof, three switch holes and four counterbored
// screw holes.
func TopCase(p Parameters) (s sdf.SDF3, err error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	defer func() {
		if a := recover(); a != nil {
			err = fmt.Errorf("top case geometry: %v", a)
		}
	}()

	c := p.CaseCenter()
	cz := p.CaseFloorZ() + p.CaseHeight()/2
	topZ := p.CaseFloorZ() + p.CaseHeight()

	// Shell: outer box minus an interior box dropped by one wall
	// thickness, leaving the roof and perimeter walls, open underneath.
	outer := must3.Box(r3.Vec{X: p.CaseWidth(), Y: p.CaseLength(), Z: p.CaseHeight()}, 0)
	var shell sdf.SDF3 = sdf.Transform3D(outer, sdf.Translate3D(r3.Vec{X: c.X, Y: c.Y, Z: cz}))
	inner := must3.Box(r3.Vec{X: p.InternalWidth(), Y: p.InternalLength(), Z: p.CaseHeight()}, 0)
	shell = sdf.Difference3D(shell, sdf.Transform3D(inner, sdf.Translate3D(r3.Vec{X: c.X, Y: c.Y, Z: cz - p.WallThickness})))

	cuts := make([]sdf.SDF3, 0, 8)

	// Ball opening, deliberately undersized so the lip retains the ball.
	opening := must3.Cylinder(p.CaseHeight()+2*cutMargin, p.BallOpeningDiameter()/2, 0)
	cuts = append(cuts, sdf.Transform3D(opening, sdf.Translate3D(r3.Vec{Z: cz})))

	// Switch holes, press-fit after shrinkage.
	side := material.InternalDimScale(p.ButtonSize)
	for _, bp := range p.ButtonPositions() {
		hole := must3.Box(r3.Vec{X: side, Y: side, Z: p.CaseHeight() + cutMargin}, 0)
		cuts = append(cuts, sdf.Transform3D(hole, sdf.Translate3D(bp)))
	}

	for _, pos := range p.PillarPositions() {
		hole := screwHole(screwHoleParams{
			ShaftDiameter: material.InternalDimScale(p.ScrewShaftDiameter),
			HeadDiameter:  material.InternalDimScale(p.ScrewHeadDiameter),
			HeadHeight:    p.ScrewHeadHeight,
			Height:        p.CaseHeight(),
			TopZ:          topZ,
		})
		cuts = append(cuts, sdf.Transform3D(hole, sdf.Translate3D(r3.Vec{X: pos.X, Y: pos.Y})))
	}

	return sdf.Difference3D(shell, sdf.Union3D(cuts...)), nil
}
