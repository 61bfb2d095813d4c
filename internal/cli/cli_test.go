package cli

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomviz/internal/catalog"
	"roomviz/internal/composer"
	"roomviz/internal/domain"
)

func TestParsePoint(t *testing.T) {
	p, err := parsePoint(" 320, 460 ")
	require.NoError(t, err)
	assert.Equal(t, composer.Point{X: 320, Y: 460}, p)

	for _, bad := range []string{"320", "a,1", "1,b", "-1,5"} {
		_, err := parsePoint(bad)
		assert.Error(t, err, bad)
	}
}

func TestResolveWallColor(t *testing.T) {
	assert.Equal(t, "#10B981", resolveWallColor("green"))
	assert.Equal(t, "#FBBF24", resolveWallColor("Yellow"))
	assert.Equal(t, "#abc", resolveWallColor("#abc"))
	assert.Equal(t, "teal", resolveWallColor("teal"))
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ROOMCTL_SERVER_URL", "")
	t.Setenv("ROOMCTL_CANVAS_WIDTH", "")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 1200, cfg.CanvasWidth)
	assert.Equal(t, "http://localhost:5000", cfg.ServerURL)
}

func writePNG(t *testing.T, path string) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func TestEditCommandSavesResult(t *testing.T) {
	var got domain.EditRequest
	mux := http.NewServeMux()
	mux.HandleFunc("/edit-room", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(domain.EditResponse{
			Success:  true,
			Image:    base64.StdEncoding.EncodeToString([]byte("edited")),
			MIMEType: "image/png",
		})
	})
	mux.HandleFunc("/catalog/tiles/classic-oak.png", func(w http.ResponseWriter, r *http.Request) {
		tile, _ := catalog.Lookup("classic-oak")
		data, err := tile.Texture()
		require.NoError(t, err)
		_, _ = w.Write(data)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	dir := t.TempDir()
	base := filepath.Join(dir, "room.png")
	sofa := filepath.Join(dir, "sofa.png")
	writePNG(t, base)
	writePNG(t, sofa)
	out := filepath.Join(dir, "renders")

	root := NewRootCmd()
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetArgs([]string{
		"edit", "--server", srv.URL,
		"--base", base, "--tile-id", "classic-oak", "--wall", "green",
		"--sofa", sofa, "--at", "700,300", "--out", out,
	})
	require.NoError(t, root.ExecuteContext(context.Background()))

	assert.NotEmpty(t, got.BasePhoto)
	assert.NotEmpty(t, got.TileReference)
	assert.Equal(t, "#10B981", got.WallColor)
	assert.Contains(t, got.PlacementClause, "RIGHT wall")

	path := strings.TrimSpace(stdout.String())
	assert.Equal(t, out, filepath.Dir(path))
	assert.True(t, strings.HasSuffix(path, ".png"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("edited"), data)
}

func TestEditCommandRequiresBase(t *testing.T) {
	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"edit", "--wall", "red", "--out", t.TempDir()})
	err := root.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base photo is required")
}

func TestModelCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(domain.ModelResponse{Success: true, CurrentModel: "gemini-2.5-flash-image"})
	}))
	defer srv.Close()

	root := NewRootCmd()
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetArgs([]string{"model", "--server", srv.URL})
	require.NoError(t, root.ExecuteContext(context.Background()))
	assert.Equal(t, "gemini-2.5-flash-image\n", stdout.String())
}
