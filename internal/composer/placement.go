package composer

import (
	"fmt"

	"roomviz/internal/imagegen"
)

// DefaultCanvasWidth is the width of the preview canvas click coordinates are
// reported against.
const DefaultCanvasWidth = 1200

// Side is the wall a placed object is snapped to.
type Side string

const (
	SideLeft  Side = "LEFT"
	SideRight Side = "RIGHT"
)

// Point is a pixel coordinate on the preview canvas.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// SideFor is LEFT strictly left of the canvas midpoint and RIGHT otherwise,
// so a click exactly on the midpoint resolves to RIGHT.
func SideFor(p Point, canvasWidth int) Side {
	if float64(p.X) < float64(canvasWidth)/2 {
		return SideLeft
	}
	return SideRight
}

// Placement describes where a sofa was dropped.
type Placement struct {
	Side Side
	At   Point
}

func NewPlacement(p Point, canvasWidth int) Placement {
	return Placement{Side: SideFor(p, canvasWidth), At: p}
}

func (p Placement) Clause() string {
	return fmt.Sprintf("at coordinates (%d, %d). It MUST be placed flush against the %s wall, aligned parallel to that wall's perspective, "+
		"with the back of the object touching the %s wall, facing the center of the room.",
		p.At.X, p.At.Y, p.Side, p.Side)
}

// PlacementClause returns the spatial directive for an optional click.
func PlacementClause(p *Point, canvasWidth int) string {
	if p == nil {
		return imagegen.PlacementCentered
	}
	return NewPlacement(*p, canvasWidth).Clause()
}
