package composer

import (
	"context"

	"golang.org/x/sync/errgroup"

	"roomviz/internal/domain"
)

// Selection is the user's current intent. Base is required; the rest are
// independently optional.
type Selection struct {
	Base      *Image
	Tile      *Image
	WallColor string
	Sofa      *Image
	SofaAt    *Point
	Secondary *Image
}

// Composer turns a Selection into the wire request.
type Composer struct {
	canvasWidth int
}

func New(canvasWidth int) *Composer {
	if canvasWidth <= 0 {
		canvasWidth = DefaultCanvasWidth
	}
	return &Composer{canvasWidth: canvasWidth}
}

func (c *Composer) CanvasWidth() int {
	return c.canvasWidth
}

// Compose fails with ErrMissingBasePhoto before any encoding when no base
// photo is selected. Images are encoded concurrently.
func (c *Composer) Compose(ctx context.Context, sel Selection) (domain.EditRequest, error) {
	if sel.Base == nil || len(sel.Base.Data) == 0 {
		return domain.EditRequest{}, domain.ErrMissingBasePhoto
	}

	var req domain.EditRequest
	g, ctx := errgroup.WithContext(ctx)
	encode := func(img *Image, dst *string) {
		if img == nil {
			return
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := EncodeImage(*img)
			if err != nil {
				return err
			}
			*dst = out
			return nil
		})
	}
	encode(sel.Base, &req.BasePhoto)
	encode(sel.Tile, &req.TileReference)
	encode(sel.Sofa, &req.SofaReference)
	encode(sel.Secondary, &req.SecondaryReference)
	if err := g.Wait(); err != nil {
		return domain.EditRequest{}, err
	}

	req.WallColor = sel.WallColor
	if sel.Sofa != nil {
		req.PlacementClause = PlacementClause(sel.SofaAt, c.canvasWidth)
	}
	return req, nil
}
