package enclosure

import (
	"fmt"

	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form3/must3"
	"gonum.org/v1/gonum/spatial/r3"
)

// BottomCase returns the lower tray: floor and walls reinforced by four
// screw pillars, with the ball cup, three bearing seats, the sensor and
// microcontroller pockets, the screw shafts and the USB opening carved out.
func BottomCase(p Parameters) (s sdf.SDF3, err error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	defer func() {
		if a := recover(); a != nil {
			err = fmt.Errorf("bottom case geometry: %v", a)
		}
	}()

	c := p.CaseCenter()
	floor := p.CaseFloorZ()
	bodyZ := floor + p.InternalHeight()/2

	// Base and walls, open top. The interior is hollowed before the
	// pillars go in so they keep their full height.
	outer := must3.Box(r3.Vec{X: p.CaseWidth(), Y: p.CaseLength(), Z: p.InternalHeight()}, 0)
	var shell sdf.SDF3 = sdf.Transform3D(outer, sdf.Translate3D(r3.Vec{X: c.X, Y: c.Y, Z: bodyZ}))
	cavityH := p.InternalHeight() + cutMargin
	cavity := must3.Box(r3.Vec{X: p.InternalWidth(), Y: p.InternalLength(), Z: cavityH}, 0)
	shell = sdf.Difference3D(shell, sdf.Transform3D(cavity, sdf.Translate3D(r3.Vec{X: c.X, Y: c.Y, Z: floor + p.WallThickness + cavityH/2})))

	solids := []sdf.SDF3{shell}
	for _, pos := range p.PillarPositions() {
		pillar := must3.Cylinder(p.InternalHeight(), p.PillarDiameter/2, 0)
		solids = append(solids, sdf.Transform3D(pillar, sdf.Translate3D(r3.Vec{X: pos.X, Y: pos.Y, Z: bodyZ})))
	}
	body := sdf.Union3D(solids...)
	body.SetMin(sdf.MinPoly(2, 2))

	cuts := make([]sdf.SDF3, 0, 8)

	// Ball cup.
	cuts = append(cuts, must3.Sphere(p.BallRadius()))

	// Bearing seats at 120° spacing below the ball equator.
	bearing := must3.Sphere(p.BearingDiameter / 2)
	seat := sdf.Transform3D(bearing, sdf.Translate3D(p.BearingSeat()))
	cuts = append(cuts, sdf.RotateCopy3D(seat, 3))

	// Component pockets, snug in plan and with clearance in depth.
	sensor := must3.Box(r3.Vec{
		X: material.InternalDimScale(p.SensorWidth),
		Y: material.InternalDimScale(p.SensorLength),
		Z: p.SensorThickness + p.Clearance,
	}, 0)
	cuts = append(cuts, sdf.Transform3D(sensor, sdf.Translate3D(p.SensorPosition())))
	mcu := must3.Box(r3.Vec{
		X: material.InternalDimScale(p.MCUWidth),
		Y: material.InternalDimScale(p.MCULength),
		Z: p.MCUThickness + p.Clearance,
	}, 0)
	cuts = append(cuts, sdf.Transform3D(mcu, sdf.Translate3D(p.MCUPosition())))

	// Screw shafts, from just under the floor through the full height.
	shaftH := p.CaseHeight() + 2*cutMargin
	for _, pos := range p.PillarPositions() {
		shaft := must3.Cylinder(shaftH, material.InternalDimScale(p.ScrewShaftDiameter)/2, 0)
		cuts = append(cuts, sdf.Transform3D(shaft, sdf.Translate3D(r3.Vec{X: pos.X, Y: pos.Y, Z: floor + p.CaseHeight()/2})))
	}

	// USB opening through the front wall at the microcontroller.
	mcuAt := p.MCUPosition()
	usb := must3.Box(r3.Vec{X: p.USBWidth, Y: p.WallThickness + p.Clearance, Z: p.USBHeight}, 0)
	frontY := c.Y + p.InternalLength()/2 + p.WallThickness/2
	cuts = append(cuts, sdf.Transform3D(usb, sdf.Translate3D(r3.Vec{X: mcuAt.X, Y: frontY, Z: mcuAt.Z})))

	return sdf.Difference3D(body, sdf.Union3D(cuts...)), nil
}
