package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"roomviz/internal/catalog"
	"roomviz/internal/composer"
	"roomviz/internal/storage"
)

type editFlags struct {
	scene       string
	base        string
	tile        string
	tileID      string
	wall        string
	sofa        string
	at          string
	secondary   string
	out         string
	canvasWidth int
}

func newEditCmd(opts *options) *cobra.Command {
	var f editFlags

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Apply a tile, wall color and/or sofa to a room photo",
		Example: `  # Repaint the walls green
  roomctl edit --base room.jpg --wall "#10B981"

  # Lay a catalog tile and drop a sofa near the left wall
  roomctl edit --base room.jpg --tile-id classic-oak --sofa sofa.png --at 320,460

  # Everything from a scene file
  roomctl edit --scene living-room.yaml --out renders/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sel, err := f.selection()
			if err != nil {
				return err
			}
			client := opts.client()
			if f.tileID != "" {
				tile, err := fetchTile(cmd, client, f.tileID)
				if err != nil {
					return err
				}
				sel.Tile = tile
			}

			width := opts.cfg.CanvasWidth
			if f.canvasWidth > 0 {
				width = f.canvasWidth
			}
			outDir := opts.cfg.OutputDir
			if f.out != "" {
				outDir = f.out
			}
			store, err := storage.NewFileStore(outDir)
			if err != nil {
				return err
			}

			id := uuid.NewString()
			logger := opts.logger.With().Str("request_id", id).Logger()
			session := composer.NewSession(composer.New(width), client, logger)

			logger.Info().
				Bool("tile", sel.Tile != nil).
				Str("wall", sel.WallColor).
				Bool("sofa", sel.Sofa != nil).
				Msg("generating room edit")
			res, err := session.Generate(composer.WithRequestID(ctx, id), sel)
			if err != nil {
				return err
			}
			path, err := store.SaveImage(ctx, res.Image)
			if err != nil {
				return err
			}
			logger.Info().Str("path", path).Int("bytes", len(res.Image.Data)).Msg("saved edited image")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.scene, "scene", "", "YAML scene file; other flags override its fields")
	fl.StringVar(&f.base, "base", "", "room photo (required unless set by --scene)")
	fl.StringVar(&f.tile, "tile", "", "floor texture image")
	fl.StringVar(&f.tileID, "tile-id", "", "catalog tile id, fetched from the server")
	fl.StringVar(&f.wall, "wall", "", "wall color as hex (#10B981) or palette name (green)")
	fl.StringVar(&f.sofa, "sofa", "", "sofa image")
	fl.StringVar(&f.at, "at", "", "sofa position on the preview canvas as x,y")
	fl.StringVar(&f.secondary, "secondary", "", "additional reference image")
	fl.StringVar(&f.out, "out", "", "output directory (default $ROOMCTL_OUTPUT_DIR)")
	fl.IntVar(&f.canvasWidth, "canvas-width", 0, "preview canvas width the --at position refers to")
	cmd.MarkFlagsMutuallyExclusive("tile", "tile-id")

	return cmd
}

func (f editFlags) selection() (composer.Selection, error) {
	var sel composer.Selection
	if f.scene != "" {
		scene, err := composer.LoadScene(f.scene)
		if err != nil {
			return sel, err
		}
		if sel, err = scene.Selection(); err != nil {
			return sel, err
		}
	}

	images := []struct {
		path string
		dst  **composer.Image
	}{
		{f.base, &sel.Base},
		{f.tile, &sel.Tile},
		{f.sofa, &sel.Sofa},
		{f.secondary, &sel.Secondary},
	}
	for _, img := range images {
		if img.path == "" {
			continue
		}
		loaded, err := composer.ReadImage(img.path)
		if err != nil {
			return sel, err
		}
		*img.dst = loaded
	}
	if f.tileID != "" {
		sel.Tile = nil
	}
	if f.wall != "" {
		sel.WallColor = resolveWallColor(f.wall)
	}
	if f.at != "" {
		p, err := parsePoint(f.at)
		if err != nil {
			return sel, err
		}
		sel.SofaAt = &p
	}
	if sel.Base == nil {
		return sel, errors.New("a base photo is required: pass --base or a scene with base")
	}
	return sel, nil
}

func fetchTile(cmd *cobra.Command, client *composer.Client, id string) (*composer.Image, error) {
	if _, ok := catalog.Lookup(id); !ok {
		return nil, fmt.Errorf("unknown tile %q", id)
	}
	data, err := client.Tile(cmd.Context(), id)
	if err != nil {
		return nil, err
	}
	return &composer.Image{Name: id + ".png", Data: data}, nil
}

// resolveWallColor maps a palette name to its hex value. Anything else is
// passed through for the server to validate.
func resolveWallColor(v string) string {
	v = strings.TrimSpace(v)
	for _, c := range catalog.WallColors() {
		if strings.EqualFold(c.Name, v) {
			return c.Hex
		}
	}
	return v
}

func parsePoint(v string) (composer.Point, error) {
	xs, ys, ok := strings.Cut(v, ",")
	if !ok {
		return composer.Point{}, fmt.Errorf("invalid position %q: want x,y", v)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return composer.Point{}, fmt.Errorf("invalid x in %q: %w", v, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return composer.Point{}, fmt.Errorf("invalid y in %q: %w", v, err)
	}
	if x < 0 || y < 0 {
		return composer.Point{}, fmt.Errorf("invalid position %q: coordinates must not be negative", v)
	}
	return composer.Point{X: x, Y: y}, nil
}
