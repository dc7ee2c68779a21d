package enclosure

import (
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

// Parameters holds every physical dimension of the enclosure in millimeters.
// The coordinate origin is the center of the trackball; x spans the case
// width, y points from the sensor towards the microcontroller and z is up.
// Derived dimensions are methods so they can never go stale after an
// override.
type Parameters struct {
	WallThickness float64 `yaml:"wall_thickness"`
	// Clearance is the insertion margin added around component pockets.
	Clearance float64 `yaml:"clearance"`
	// Padding is the free space kept between components and the walls.
	Padding float64 `yaml:"padding"`

	BallDiameter    float64 `yaml:"ball_diameter"`
	BearingDiameter float64 `yaml:"bearing_diameter"`
	// BearingOffset is the radial distance from the ball axis to a bearing
	// seat center.
	BearingOffset float64 `yaml:"bearing_offset"`

	SensorWidth     float64 `yaml:"sensor_width"`
	SensorLength    float64 `yaml:"sensor_length"`
	SensorThickness float64 `yaml:"sensor_thickness"`

	MCUWidth     float64 `yaml:"mcu_width"`
	MCULength    float64 `yaml:"mcu_length"`
	MCUThickness float64 `yaml:"mcu_thickness"`

	// ButtonSize is the side of the square switch body.
	ButtonSize float64 `yaml:"button_size"`

	ScrewShaftDiameter float64 `yaml:"screw_shaft_diameter"`
	ScrewHeadDiameter  float64 `yaml:"screw_head_diameter"`
	ScrewHeadHeight    float64 `yaml:"screw_head_height"`
	PillarDiameter     float64 `yaml:"pillar_diameter"`

	USBWidth  float64 `yaml:"usb_width"`
	USBHeight float64 `yaml:"usb_height"`
}

// DefaultParameters returns the stock enclosure dimensions: a 34mm ball on
// 3mm ceramic bearings, a PMW3360 breakout under the ball and a Pro Micro
// up front.
func DefaultParameters() Parameters {
	return Parameters{
		WallThickness: 3,
		Clearance:     1,
		Padding:       4,

		BallDiameter:    34,
		BearingDiameter: 3,
		BearingOffset:   13.5,

		SensorWidth:     21,
		SensorLength:    28,
		SensorThickness: 3,

		MCUWidth:     18,
		MCULength:    33,
		MCUThickness: 4,

		ButtonSize: 6,

		ScrewShaftDiameter: 3.2,
		ScrewHeadDiameter:  6,
		ScrewHeadHeight:    3,
		PillarDiameter:     8,

		USBWidth:  10,
		USBHeight: 5,
	}
}

// LoadParameters reads a YAML override file on top of the defaults. Fields
// absent from the file keep their default value.
func LoadParameters(filename string) (Parameters, error) {
	p := DefaultParameters()
	b, err := os.ReadFile(filename)
	if err != nil {
		return Parameters{}, err
	}
	if err := yaml.Unmarshal(b, &p); err != nil {
		return Parameters{}, fmt.Errorf("parse parameters %s: %w", filename, err)
	}
	if err := p.validate(); err != nil {
		return Parameters{}, fmt.Errorf("parameters %s: %w", filename, err)
	}
	return p, nil
}

func (p Parameters) validate() error {
	dims := []struct {
		name string
		v    float64
	}{
		{"wall_thickness", p.WallThickness},
		{"clearance", p.Clearance},
		{"padding", p.Padding},
		{"ball_diameter", p.BallDiameter},
		{"bearing_diameter", p.BearingDiameter},
		{"bearing_offset", p.BearingOffset},
		{"sensor_width", p.SensorWidth},
		{"sensor_length", p.SensorLength},
		{"sensor_thickness", p.SensorThickness},
		{"mcu_width", p.MCUWidth},
		{"mcu_length", p.MCULength},
		{"mcu_thickness", p.MCUThickness},
		{"button_size", p.ButtonSize},
		{"screw_shaft_diameter", p.ScrewShaftDiameter},
		{"screw_head_diameter", p.ScrewHeadDiameter},
		{"screw_head_height", p.ScrewHeadHeight},
		{"pillar_diameter", p.PillarDiameter},
		{"usb_width", p.USBWidth},
		{"usb_height", p.USBHeight},
	}
	for _, d := range dims {
		if d.v <= 0 {
			return fmt.Errorf("%s must be positive, got %g", d.name, d.v)
		}
	}
	if p.BallDiameter <= 1 {
		return fmt.Errorf("ball_diameter %g leaves no room for the opening lip", p.BallDiameter)
	}
	if p.ScrewHeadDiameter <= p.ScrewShaftDiameter {
		return fmt.Errorf("screw head diameter %g must exceed shaft diameter %g", p.ScrewHeadDiameter, p.ScrewShaftDiameter)
	}
	return nil
}

// BallRadius returns half the trackball diameter.
func (p Parameters) BallRadius() float64 { return p.BallDiameter / 2 }

// BallOpeningDiameter is the diameter of the top-case ball opening. It is
// one millimeter under the ball diameter on purpose: the lip retains the
// ball while leaving it free to spin. Do not round this away.
func (p Parameters) BallOpeningDiameter() float64 { return p.BallDiameter - 1 }

// CaseFloorZ is the z coordinate of the interior floor, placed so the sensor
// board fits between the floor and the ball with clearance to spare.
func (p Parameters) CaseFloorZ() float64 {
	return -p.BallRadius() - p.SensorThickness - p.Clearance
}

// InternalWidth is the interior span along x: the microcontroller flanked by
// a button body and padding on either side.
func (p Parameters) InternalWidth() float64 {
	return p.MCUWidth + 2*p.ButtonSize + 4*p.Padding
}

// InternalLength is the interior span along y: half the sensor board behind
// the ball plus the microcontroller in front, padded at both ends.
func (p Parameters) InternalLength() float64 {
	return p.SensorLength/2 + p.MCULength + 2*p.Padding
}

// InternalHeight is the interior height from floor to the underside of the
// top-case roof.
func (p Parameters) InternalHeight() float64 {
	return -p.CaseFloorZ() + p.WallThickness
}

// CaseWidth is the exterior width.
func (p Parameters) CaseWidth() float64 { return p.InternalWidth() + 2*p.WallThickness }

// CaseLength is the exterior length.
func (p Parameters) CaseLength() float64 { return p.InternalLength() + 2*p.WallThickness }

// CaseHeight is the exterior height: the interior plus the roof.
func (p Parameters) CaseHeight() float64 { return p.InternalHeight() + p.WallThickness }

// CaseCenter returns the XY center of the case footprint. The ball sits at
// the origin with the sensor half behind it, so the footprint center is
// pushed forward along y.
func (p Parameters) CaseCenter() r2.Vec {
	return r2.Vec{X: 0, Y: (p.MCULength - p.SensorLength/2) / 2}
}

// PillarPositions returns the four screw pillar centers, symmetric about the
// case center and inset from the interior walls by the padding.
func (p Parameters) PillarPositions() [4]r2.Vec {
	c := p.CaseCenter()
	dx := p.InternalWidth()/2 - p.Padding
	dy := p.InternalLength()/2 - p.Padding
	return [4]r2.Vec{
		{X: c.X + dx, Y: c.Y + dy},
		{X: c.X - dx, Y: c.Y + dy},
		{X: c.X - dx, Y: c.Y - dy},
		{X: c.X + dx, Y: c.Y - dy},
	}
}

// SensorPosition returns the sensor board center. The board lies on the
// floor directly under the ball.
func (p Parameters) SensorPosition() r3.Vec {
	return r3.Vec{X: 0, Y: 0, Z: p.CaseFloorZ() + p.SensorThickness/2}
}

// MCUPosition returns the microcontroller board center, on the floor in
// front of the ball.
func (p Parameters) MCUPosition() r3.Vec {
	return r3.Vec{X: 0, Y: p.MCULength / 2, Z: p.CaseFloorZ() + p.MCUThickness/2}
}

// ButtonPositions returns the three switch centers: left and right flanking
// the microcontroller and a center button ahead of the ball, staggered by
// quarter board lengths.
func (p Parameters) ButtonPositions() [3]r3.Vec {
	bx := p.InternalWidth()/2 - p.Padding - p.ButtonSize/2
	by := p.MCULength / 4
	return [3]r3.Vec{
		{X: -bx, Y: by, Z: 0},
		{X: 0, Y: p.MCULength/2 + p.MCULength/4, Z: 0},
		{X: bx, Y: by, Z: 0},
	}
}

// BearingSeat returns the first bearing seat center. The other two seats are
// this point rotated 120° and 240° about the z axis; the z height places the
// bearing contact 45° below the ball equator.
func (p Parameters) BearingSeat() r3.Vec {
	return r3.Vec{
		X: p.BearingOffset,
		Y: 0,
		Z: -p.BallRadius() * math.Cos(45*math.Pi/180),
	}
}
