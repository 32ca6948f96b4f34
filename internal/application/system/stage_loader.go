package system

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/younwookim/snowtux/internal/domain/entity"
	"github.com/younwookim/snowtux/internal/infrastructure/config"
)

// LevelFormatVersion is the only level file version understood by LoadLevel
const LevelFormatVersion = 1

// LoadLevel converts a LevelConfig into a validated Level
func LoadLevel(id string, cfg *config.LevelConfig) (*entity.Level, error) {
	if cfg.Version != LevelFormatVersion {
		return nil, fmt.Errorf("%w: level %s has version %d, want %d", entity.ErrMalformedLevel, id, cfg.Version, LevelFormatVersion)
	}

	interactive, err := parseTilemap(cfg.Tilemaps.Interactive, cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("level %s interactive layer: %w", id, err)
	}
	background, err := parseTilemap(cfg.Tilemaps.Background, cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("level %s background layer: %w", id, err)
	}
	foreground, err := parseTilemap(cfg.Tilemaps.Foreground, cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("level %s foreground layer: %w", id, err)
	}

	spawns := make([]entity.Spawn, 0, len(cfg.Objects))
	for i, obj := range cfg.Objects {
		kind, ok := entity.ParseKind(obj.Type)
		if !ok {
			return nil, fmt.Errorf("%w: level %s object %d has unknown type %q", entity.ErrMalformedLevel, id, i, obj.Type)
		}
		spawns = append(spawns, entity.Spawn{Kind: kind, TileX: obj.X, TileY: obj.Y})
	}

	checkpoints := make([]entity.Checkpoint, 0, len(cfg.Checkpoints))
	for _, cp := range cfg.Checkpoints {
		checkpoints = append(checkpoints, entity.Checkpoint{X: cp.X, Y: cp.Y})
	}

	level := &entity.Level{
		ID:     id,
		Width:  cfg.Width,
		Height: cfg.Height,
		Meta: entity.Metadata{
			Version:        cfg.Version,
			Name:           cfg.Name,
			Author:         cfg.Author,
			Background:     cfg.Background,
			Music:          cfg.Music,
			ParticleSystem: cfg.ParticleSystem,
			Theme:          cfg.Theme,
			Time:           cfg.Time,
			Gravity:        cfg.Gravity,
		},
		Background:  background,
		Interactive: interactive,
		Foreground:  foreground,
		Start:       entity.Checkpoint{X: cfg.Start.X, Y: cfg.Start.Y},
		Spawns:      spawns,
		Checkpoints: checkpoints,
	}
	if err := level.Validate(); err != nil {
		return nil, fmt.Errorf("level %s: %w", id, err)
	}
	return level, nil
}

// parseTilemap reads whitespace separated tile codes. An absent layer becomes
// an all-zero matrix of the level size.
func parseTilemap(rows []string, width, height int) (entity.TileMatrix, error) {
	if len(rows) == 0 {
		return entity.NewTileMatrix(width, height), nil
	}
	m := make(entity.TileMatrix, len(rows))
	for y, row := range rows {
		fields := strings.Fields(row)
		m[y] = make([]uint8, len(fields))
		for x, f := range fields {
			code, err := strconv.ParseUint(f, 10, 8)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d column %d: %v", entity.ErrMalformedLevel, y, x, err)
			}
			m[y][x] = uint8(code)
		}
	}
	return m, nil
}

// ErrUnknownLevel is returned by a LevelSource for ids it does not have
var ErrUnknownLevel = errors.New("unknown level")

// LevelSource resolves level ids into levels
type LevelSource interface {
	Level(id string) (*entity.Level, error)
}

// ConfigSource reads levels through a config loader
type ConfigSource struct {
	Loader *config.Loader
}

// Level loads and converts levels/<id>.yaml
func (c ConfigSource) Level(id string) (*entity.Level, error) {
	cfg, err := c.Loader.LoadLevel(id)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownLevel, id)
		}
		return nil, err
	}
	return LoadLevel(id, cfg)
}
