// Package enclosure builds the printable solids of a two-part trackball
// mouse case: a top shell with the ball opening and button holes, and a
// bottom tray carrying the ball cup, bearing seats and the electronics.
// All geometry derives from a single immutable Parameters value with the
// ball center as the coordinate origin.
package enclosure

import (
	"fmt"
	"strings"

	"github.com/soypat/sdf"
	"github.com/soypat/sdf/helpers/matter"
)

// Part names accepted on the command line.
const (
	PartTopCase    = "top_case"
	PartBottomCase = "bottom_case"
)

// cutMargin makes subtracted solids overshoot the surfaces they pierce so
// boolean cuts never leave zero-thickness skins.
const cutMargin = 1.0

// Everything is sized for PLA; holes are grown to compensate shrinkage.
var material = matter.PLA

// Parts returns the names of the buildable parts.
func Parts() []string {
	return []string{PartTopCase, PartBottomCase}
}

// Build constructs the named part from the given parameters.
func Build(part string, p Parameters) (sdf.SDF3, error) {
	switch part {
	case PartTopCase:
		return TopCase(p)
	case PartBottomCase:
		return BottomCase(p)
	}
	return nil, fmt.Errorf("unknown part %q, valid parts: %s", part, strings.Join(Parts(), ", "))
}
