package imagegen

import (
	"fmt"
	"strings"
)

// PlacementCentered is used when a sofa is selected without a click position.
const PlacementCentered = "centered in the room"

const (
	floorUnchanged = "1. FLOOR: Do NOT change the floor. Keep the original floor from " + BaseName + " exactly as it is."
	wallsUnchanged = "2. WALLS: Do NOT change the wall color. Keep the original walls from " + BaseName + " exactly as they are."
)

// FloorClause replaces the floor when a tile reference is present and pins it
// to the base photo otherwise.
func FloorClause(tile *ReferenceImage) string {
	if tile == nil {
		return floorUnchanged
	}
	return fmt.Sprintf("1. FLOOR: Replace the entire visible floor area of %s with the texture in %s. Ensure perspective and lighting match.",
		BaseName, tile.Name)
}

// WallClause repaints every wall plane with color, or pins the walls to the
// base photo when color is empty. The color is embedded verbatim.
func WallClause(color string) string {
	if color == "" {
		return wallsUnchanged
	}
	lines := []string{
		fmt.Sprintf("2. WALLS: Repaint EVERY visible wall surface in %s with the hex color %s.", BaseName, color),
		"   - Identify all planes: back walls, side walls, and small sections around the door/window.",
		"   - It is critical that NO trace of the original wall color remains visible.",
	}
	return strings.Join(lines, "\n")
}

// FurnitureClause returns "" when no sofa is selected.
func FurnitureClause(sofa *ReferenceImage, placement string) string {
	if sofa == nil {
		return ""
	}
	placement = strings.TrimSuffix(strings.TrimSpace(placement), ".")
	if placement == "" {
		placement = PlacementCentered
	}
	lines := []string{
		fmt.Sprintf("3. FURNITURE: Place the sofa from %s %s.", sofa.Name, placement),
		"   - WALL SNAPPING: If a wall is specified, the furniture must be flush against it with no visible gap.",
		fmt.Sprintf("   - PERSPECTIVE: The sofa must be skewed and scaled to match the vanishing points of %s.", BaseName),
		"   - REALISM: It must sit naturally on the floor with realistic ambient occlusion and contact shadows where it touches the floor and wall.",
		"   - DO NOT alter any other part of the room while adding this sofa.",
	}
	return strings.Join(lines, "\n")
}

// GlobalConstraints are appended to every instruction regardless of selection.
func GlobalConstraints() []string {
	return []string{
		"- Maintain all original architectural details (door, trim, switches, windows).",
		fmt.Sprintf("- If no change is requested for walls or floors, they MUST be identical to %s.", BaseName),
		fmt.Sprintf("- Lighting on any inserted object must match the light source direction in %s.", BaseName),
		"- Provide ONLY the final image. Do not add any commentary.",
	}
}

// BuildInstruction composes the full edit instruction in fixed order: role,
// reference manifest, floor, walls, furniture, global constraints.
func BuildInstruction(spec EditSpec) string {
	lines := []string{
		fmt.Sprintf("You are a master interior designer. Your ONLY structural reference is %q.", BaseName),
		"Reference images are attached after this text in this order:",
	}
	for i, ref := range spec.References() {
		lines = append(lines, fmt.Sprintf("%d. %s: %s.", i+1, ref.Name, ref.Role))
	}
	lines = append(lines,
		"",
		"TASK:",
		"Combine these elements into one photorealistic image following these rules:",
		FloorClause(spec.Tile),
		WallClause(spec.WallColor),
	)
	if furniture := FurnitureClause(spec.Sofa, spec.Placement); furniture != "" {
		lines = append(lines, furniture)
	}
	lines = append(lines, GlobalConstraints()...)
	return strings.Join(lines, "\n")
}
