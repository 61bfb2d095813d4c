package imagegen

import (
	"context"

	"roomviz/internal/domain"
)

// Reference names used inside the instruction text. The model grounds each
// name positionally, so they must match the order returned by References.
const (
	BaseName      = "room.jpg"
	TileName      = "tile.jpg"
	SofaName      = "sofa.jpg"
	SecondaryName = "reference.jpg"
)

// ReferenceImage is one decoded image attached to the model call.
type ReferenceImage struct {
	Name     string
	Role     string
	MIMEType string
	Data     []byte
}

func BaseReference(data []byte, mime string) ReferenceImage {
	return ReferenceImage{Name: BaseName, Role: "the base room photo to edit", MIMEType: mime, Data: data}
}

func TileReference(data []byte, mime string) *ReferenceImage {
	return &ReferenceImage{Name: TileName, Role: "the floor texture", MIMEType: mime, Data: data}
}

func SofaReference(data []byte, mime string) *ReferenceImage {
	return &ReferenceImage{Name: SofaName, Role: "the furniture to insert", MIMEType: mime, Data: data}
}

func SecondaryReference(data []byte, mime string) *ReferenceImage {
	return &ReferenceImage{Name: SecondaryName, Role: "an additional secondary reference", MIMEType: mime, Data: data}
}

// EditSpec is a validated edit request. Nil references and an empty wall
// color mean the concern was not selected.
type EditSpec struct {
	Base      ReferenceImage
	Tile      *ReferenceImage
	Sofa      *ReferenceImage
	Secondary *ReferenceImage
	WallColor string
	Placement string
}

// References returns the images in the order they are sent to the model:
// base, tile, sofa, secondary. Absent references are skipped.
func (s EditSpec) References() []ReferenceImage {
	refs := []ReferenceImage{s.Base}
	for _, ref := range []*ReferenceImage{s.Tile, s.Sofa, s.Secondary} {
		if ref != nil {
			refs = append(refs, *ref)
		}
	}
	return refs
}

// HasEdits reports whether any concern asks for a change. The secondary
// reference alone does not.
func (s EditSpec) HasEdits() bool {
	return s.Tile != nil || s.Sofa != nil || s.WallColor != ""
}

// Editor turns an EditSpec into a single generated image.
type Editor interface {
	Edit(ctx context.Context, spec EditSpec) (*domain.GeneratedImage, error)
	Model() string
}
