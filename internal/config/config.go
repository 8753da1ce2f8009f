// Package config provides YAML-based configuration loading for Star Catcher.
package config

// GameConfig contains all tunable parameters of the simulation.
type GameConfig struct {
	Arena   ArenaConfig  `yaml:"arena"`
	Player  PlayerConfig `yaml:"player"`
	Enemies EnemyConfig  `yaml:"enemies"`
	Stars   StarConfig   `yaml:"stars"`
	Sound   SoundConfig  `yaml:"sound"`
}

// ArenaConfig defines the playfield size in arena units.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	Speed float64 `yaml:"speed"` // Units per second
	Size  float64 `yaml:"size"`  // Diameter; radius is Size/2
}

// EnemyConfig defines enemy parameters.
type EnemyConfig struct {
	Count int     `yaml:"count"`
	Speed float64 `yaml:"speed"`
	Size  float64 `yaml:"size"`
}

// StarConfig defines star parameters.
type StarConfig struct {
	Count         int     `yaml:"count"`          // Stars placed at start
	Size          float64 `yaml:"size"`           // Diameter
	SpawnInterval float64 `yaml:"spawn_interval"` // Seconds between spawns
}

// SoundConfig toggles the audio collaborator.
type SoundConfig struct {
	Enabled bool `yaml:"enabled"`
}
