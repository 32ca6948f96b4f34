package config

import (
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LevelPath returns the path of a level file relative to the loader root
func LevelPath(name string) string {
	return path.Join("levels", name+".yaml")
}

// LoadPhysics loads physics.yaml
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "physics.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read physics.yaml: %w", err)
	}

	var cfg PhysicsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse physics.yaml: %w", err)
	}

	return &cfg, nil
}

// LoadLevel loads a level YAML file
func (l *Loader) LoadLevel(name string) (*LevelConfig, error) {
	data, err := fs.ReadFile(l.fsys, LevelPath(name))
	if err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", name, err)
	}

	var cfg LevelConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level %s: %w", name, err)
	}

	return &cfg, nil
}

// BasePath returns the directory the loader was created for, if any
func (l *Loader) BasePath() string {
	return l.basePath
}
