package imagegen

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomviz/internal/domain"
)

var (
	pngHeader  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00\x90wS\xde")
	jpegHeader = []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00 room")
)

func b64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

func TestParseEditRequestMissingBase(t *testing.T) {
	_, err := ParseEditRequest(domain.EditRequest{WallColor: "#10B981"})
	assert.ErrorIs(t, err, domain.ErrMissingBasePhoto)

	_, err = ParseEditRequest(domain.EditRequest{BasePhoto: "   "})
	assert.ErrorIs(t, err, domain.ErrMissingBasePhoto)
}

func TestParseEditRequestDataURL(t *testing.T) {
	spec, err := ParseEditRequest(domain.EditRequest{
		BasePhoto:     "data:image/webp;base64," + b64([]byte("room-bytes")),
		TileReference: b64(pngHeader),
	})
	require.NoError(t, err)

	assert.Equal(t, "room-bytes", string(spec.Base.Data))
	assert.Equal(t, "image/webp", spec.Base.MIMEType)
	require.NotNil(t, spec.Tile)
	assert.Equal(t, "image/png", spec.Tile.MIMEType)
	assert.Nil(t, spec.Sofa)
	assert.Nil(t, spec.Secondary)
	assert.Empty(t, spec.WallColor)
	assert.Equal(t, PlacementCentered, spec.Placement)
}

func TestParseEditRequestSniffsRawBase64(t *testing.T) {
	spec, err := ParseEditRequest(domain.EditRequest{BasePhoto: b64(jpegHeader)})
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", spec.Base.MIMEType)
}

func TestParseEditRequestRejectsNonImagePayloads(t *testing.T) {
	tests := []struct {
		name  string
		req   domain.EditRequest
		field string
	}{
		{
			name:  "data URL with text type",
			req:   domain.EditRequest{BasePhoto: "data:text/plain;base64," + b64([]byte("hello world")), WallColor: "#10B981"},
			field: "basePhoto",
		},
		{
			name:  "raw base64 of text",
			req:   domain.EditRequest{BasePhoto: b64([]byte("hello world")), WallColor: "#10B981"},
			field: "basePhoto",
		},
		{
			name:  "tile as pdf data URL",
			req:   domain.EditRequest{BasePhoto: b64(jpegHeader), TileReference: "data:application/pdf;base64," + b64([]byte("%PDF-1.4"))},
			field: "tileReference",
		},
		{
			name:  "raw sofa bytes",
			req:   domain.EditRequest{BasePhoto: b64(jpegHeader), SofaReference: b64([]byte("<html>sofa</html>"))},
			field: "sofaReference",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseEditRequest(tc.req)
			require.ErrorIs(t, err, domain.ErrInvalidImage)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestParseEditRequestInvalidImage(t *testing.T) {
	_, err := ParseEditRequest(domain.EditRequest{BasePhoto: "not base64 !!"})
	assert.ErrorIs(t, err, domain.ErrInvalidImage)

	_, err = ParseEditRequest(domain.EditRequest{BasePhoto: b64(jpegHeader), SofaReference: "%%%"})
	assert.ErrorIs(t, err, domain.ErrInvalidImage)
	assert.Contains(t, err.Error(), "sofaReference")
}

func TestParseEditRequestWallColor(t *testing.T) {
	tests := []struct {
		color string
		want  string
		err   error
	}{
		{color: "#10B981", want: "#10B981"},
		{color: "#fff", want: "#fff"},
		{color: " #3B82F6 ", want: "#3B82F6"},
		{color: "10B981", err: domain.ErrInvalidWallColor},
		{color: "#12345", err: domain.ErrInvalidWallColor},
		{color: "red", err: domain.ErrInvalidWallColor},
	}
	for _, tc := range tests {
		t.Run(tc.color, func(t *testing.T) {
			spec, err := ParseEditRequest(domain.EditRequest{BasePhoto: b64(jpegHeader), WallColor: tc.color})
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, spec.WallColor)
		})
	}
}

func TestParseEditRequestKeepsPlacement(t *testing.T) {
	clause := "at coordinates (900, 410). It MUST be placed flush against the RIGHT wall."
	spec, err := ParseEditRequest(domain.EditRequest{
		BasePhoto:       b64(jpegHeader),
		SofaReference:   b64(pngHeader),
		PlacementClause: clause,
	})
	require.NoError(t, err)
	assert.Equal(t, clause, spec.Placement)
	assert.Contains(t, BuildInstruction(spec), clause)
}

func TestEditSpecHasEdits(t *testing.T) {
	room := b64(jpegHeader)
	tests := []struct {
		name string
		req  domain.EditRequest
		want bool
	}{
		{"base only", domain.EditRequest{BasePhoto: room}, false},
		{"secondary only", domain.EditRequest{BasePhoto: room, SecondaryReference: room}, false},
		{"wall color", domain.EditRequest{BasePhoto: room, WallColor: "#10B981"}, true},
		{"tile", domain.EditRequest{BasePhoto: room, TileReference: room}, true},
		{"sofa", domain.EditRequest{BasePhoto: room, SofaReference: room}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spec, err := ParseEditRequest(tc.req)
			require.NoError(t, err)
			assert.Equal(t, tc.want, spec.HasEdits())
		})
	}
}
