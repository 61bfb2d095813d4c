package imagegen

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"roomviz/internal/domain"
)

var (
	dataURLPattern  = regexp.MustCompile(`^data:([^;,]+)(?:;[^;,]+)*;base64,`)
	hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

// ParseEditRequest validates the wire payload and decodes every image.
func ParseEditRequest(req domain.EditRequest) (EditSpec, error) {
	if strings.TrimSpace(req.BasePhoto) == "" {
		return EditSpec{}, domain.ErrMissingBasePhoto
	}
	data, mime, err := decodeImage(req.BasePhoto)
	if err != nil {
		return EditSpec{}, fmt.Errorf("basePhoto: %w", err)
	}
	spec := EditSpec{Base: BaseReference(data, mime)}

	optional := []struct {
		field string
		raw   string
		build func([]byte, string) *ReferenceImage
		dst   **ReferenceImage
	}{
		{"tileReference", req.TileReference, TileReference, &spec.Tile},
		{"sofaReference", req.SofaReference, SofaReference, &spec.Sofa},
		{"secondaryReference", req.SecondaryReference, SecondaryReference, &spec.Secondary},
	}
	for _, ref := range optional {
		if strings.TrimSpace(ref.raw) == "" {
			continue
		}
		data, mime, err := decodeImage(ref.raw)
		if err != nil {
			return EditSpec{}, fmt.Errorf("%s: %w", ref.field, err)
		}
		*ref.dst = ref.build(data, mime)
	}

	if color := strings.TrimSpace(req.WallColor); color != "" {
		if !hexColorPattern.MatchString(color) {
			return EditSpec{}, fmt.Errorf("%w: %q", domain.ErrInvalidWallColor, color)
		}
		spec.WallColor = color
	}

	spec.Placement = strings.TrimSpace(req.PlacementClause)
	if spec.Placement == "" {
		spec.Placement = PlacementCentered
	}
	return spec, nil
}

// decodeImage accepts raw base64 or a base64 data URL. A data URL must
// declare an image/* type; raw base64 must sniff as one.
func decodeImage(raw string) ([]byte, string, error) {
	raw = strings.TrimSpace(raw)
	mime := ""
	if m := dataURLPattern.FindStringSubmatch(raw); len(m) == 2 {
		mime = strings.ToLower(m[1])
		if !strings.HasPrefix(mime, "image/") {
			return nil, "", fmt.Errorf("%w: data URL type %q is not an image", domain.ErrInvalidImage, mime)
		}
		raw = raw[len(m[0]):]
	}
	raw = strings.Join(strings.Fields(raw), "")
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrInvalidImage, err)
	}
	if len(data) == 0 {
		return nil, "", fmt.Errorf("%w: empty payload", domain.ErrInvalidImage)
	}
	if mime == "" {
		sniffed := http.DetectContentType(data)
		if !strings.HasPrefix(sniffed, "image/") {
			return nil, "", fmt.Errorf("%w: content sniffed as %q", domain.ErrInvalidImage, sniffed)
		}
		mime = sniffed
	}
	return data, mime, nil
}
