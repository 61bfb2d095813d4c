package composer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSceneResolvesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	room := pngImage(t, "room.png")
	sofa := pngImage(t, "sofa.png")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "room.png"), room.Data, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sofa.png"), sofa.Data, 0o644))

	scene := []byte(`base: room.png
wallColor: "#FFFFFF"
sofa: sofa.png
sofaAt: {x: 320, y: 460}
`)
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, scene, 0o644))

	s, err := LoadScene(path)
	require.NoError(t, err)
	sel, err := s.Selection()
	require.NoError(t, err)

	require.NotNil(t, sel.Base)
	assert.Equal(t, "room.png", sel.Base.Name)
	assert.Equal(t, room.Data, sel.Base.Data)
	assert.Nil(t, sel.Tile)
	assert.Nil(t, sel.Secondary)
	require.NotNil(t, sel.Sofa)
	assert.Equal(t, "#FFFFFF", sel.WallColor)
	assert.Equal(t, &Point{X: 320, Y: 460}, sel.SofaAt)
}

func TestLoadSceneMissingImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base: nope.jpg\n"), 0o644))

	s, err := LoadScene(path)
	require.NoError(t, err)
	_, err = s.Selection()
	assert.Error(t, err)
}

func TestLoadSceneInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base: [unterminated"), 0o644))
	_, err := LoadScene(path)
	assert.Error(t, err)
}
