package composer

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scene is a selection described in a YAML file. Image paths are relative to
// the file's directory.
//
//	base: living-room.jpg
//	tile: textures/oak.png
//	wallColor: "#10B981"
//	sofa: sofa.png
//	sofaAt: {x: 320, y: 460}
type Scene struct {
	Base      string `yaml:"base"`
	Tile      string `yaml:"tile"`
	WallColor string `yaml:"wallColor"`
	Sofa      string `yaml:"sofa"`
	SofaAt    *Point `yaml:"sofaAt"`
	Secondary string `yaml:"secondary"`

	dir string
}

func LoadScene(path string) (Scene, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("read scene: %w", err)
	}
	var scene Scene
	if err := yaml.Unmarshal(raw, &scene); err != nil {
		return Scene{}, fmt.Errorf("parse scene %s: %w", path, err)
	}
	scene.dir = filepath.Dir(path)
	return scene, nil
}

// Selection loads every referenced image from disk.
func (s Scene) Selection() (Selection, error) {
	var sel Selection
	var err error
	if sel.Base, err = s.load(s.Base); err != nil {
		return Selection{}, err
	}
	if sel.Tile, err = s.load(s.Tile); err != nil {
		return Selection{}, err
	}
	if sel.Sofa, err = s.load(s.Sofa); err != nil {
		return Selection{}, err
	}
	if sel.Secondary, err = s.load(s.Secondary); err != nil {
		return Selection{}, err
	}
	sel.WallColor = s.WallColor
	sel.SofaAt = s.SofaAt
	return sel, nil
}

func (s Scene) load(path string) (*Image, error) {
	if path == "" {
		return nil, nil
	}
	if !filepath.IsAbs(path) && s.dir != "" {
		path = filepath.Join(s.dir, path)
	}
	return ReadImage(path)
}

// ReadImage loads an image file from disk.
func ReadImage(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	return &Image{Name: filepath.Base(path), Data: data}, nil
}
