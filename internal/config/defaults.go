package config

import (
	_ "embed"
)

// Default gameplay tuning.
const (
	PlayerSpeed     = 500.0
	EnemySpeed      = 200.0
	NumberOfEnemies = 4
	NumberOfStars   = 10
	PlayerSize      = 64.0
	EnemySize       = 64.0
	StarSize        = 30.0
	StarSpawnTime   = 1.0 // seconds
)

// Default arena size when no host window dictates one.
const (
	DefaultArenaWidth  = 1280.0
	DefaultArenaHeight = 720.0
)

//go:embed defaults/starcatch.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
func Default() GameConfig {
	return GameConfig{
		Arena: ArenaConfig{
			Width:  DefaultArenaWidth,
			Height: DefaultArenaHeight,
		},
		Player: PlayerConfig{
			Speed: PlayerSpeed,
			Size:  PlayerSize,
		},
		Enemies: EnemyConfig{
			Count: NumberOfEnemies,
			Speed: EnemySpeed,
			Size:  EnemySize,
		},
		Stars: StarConfig{
			Count:         NumberOfStars,
			Size:          StarSize,
			SpawnInterval: StarSpawnTime,
		},
		Sound: SoundConfig{
			Enabled: false,
		},
	}
}
