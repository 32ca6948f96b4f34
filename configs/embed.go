// Package configs embeds the default tuning and level files shipped with the game.
package configs

import "embed"

//go:embed physics.yaml levels/*.yaml
var FS embed.FS
