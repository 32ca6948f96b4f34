package config

// LevelConfig is the root config for levels/<id>.yaml
type LevelConfig struct {
	Version        int            `yaml:"version"`
	Name           string         `yaml:"name"`
	Author         string         `yaml:"author"`
	Width          int            `yaml:"width"`  // tiles
	Height         int            `yaml:"height"` // tiles
	Start          PositionConfig `yaml:"start"`  // pixels
	Background     string         `yaml:"background"`
	Music          string         `yaml:"music"`
	Time           int            `yaml:"time"`
	Gravity        int            `yaml:"gravity"`
	ParticleSystem string         `yaml:"particle_system"`
	Theme          string         `yaml:"theme"`

	Tilemaps    TilemapsConfig   `yaml:"tilemaps"`
	Objects     []ObjectConfig   `yaml:"objects"`
	Checkpoints []PositionConfig `yaml:"checkpoints"`
}

// TilemapsConfig holds one string per row with whitespace separated tile codes.
// Missing background/foreground layers are filled with zeros.
type TilemapsConfig struct {
	Interactive []string `yaml:"interactive"`
	Background  []string `yaml:"background"`
	Foreground  []string `yaml:"foreground"`
}

// ObjectConfig places a non-tile object, in tile coordinates
type ObjectConfig struct {
	Type string `yaml:"type"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
}

type PositionConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}
