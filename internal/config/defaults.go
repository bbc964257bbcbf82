package config

import (
	_ "embed"
)

//go:embed defaults/runline.yaml
var defaultYAML []byte

// Default returns the built-in configuration. These values preserve the
// original game feel; the YAML search path can override any of them.
func Default() Config {
	return Config{
		Physics: Physics{
			Gravity:      -1.0,
			JumpVelocity: 16.0,
			BaseSpeed:    5.0,
			SpeedGrowth:  1.001,
			HitTolerance: 20.0,
		},
		Obstacles: Obstacles{
			MinGap:           150.0,
			SpawnProbability: 0.12,
			RockProbability:  0.5,
			SafeBuffer:       300.0,
			SpawnLookahead:   100.0,
			SpawnJitter:      200.0,
			OffscreenX:       -50.0,
			Rock:             Box{Width: 40.0, Height: 40.0},
			Hole:             Box{Width: 60.0, Height: 10.0},
		},
		Player: Player{
			X:      100.0,
			Width:  40.0,
			Height: 40.0,
		},
		World: World{
			Width:       800.0,
			GroundLevel: 0.0,
		},
		Game: Game{
			CooldownSeconds: 2.0,
			SkipMenu:        false,
		},
	}
}
