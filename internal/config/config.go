// Package config provides YAML-based tunables for the runner simulation.
// Every named constant of the physics, generator and state machine lives
// here so behavior can be adjusted without touching game code.
package config

// Config contains all tunables for the runner.
type Config struct {
	Physics   Physics   `yaml:"physics"`
	Obstacles Obstacles `yaml:"obstacles"`
	Player    Player    `yaml:"player"`
	World     World     `yaml:"world"`
	Game      Game      `yaml:"game"`
}

// Physics defines the motion constants, all per simulation tick.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`       // Negative: pulls the player down
	JumpVelocity float64 `yaml:"jump_velocity"` // Applied upward on jump
	BaseSpeed    float64 `yaml:"base_speed"`    // Obstacle scroll speed before the ramp
	SpeedGrowth  float64 `yaml:"speed_growth"`  // Per-tick multiplier growth, >1
	HitTolerance float64 `yaml:"hit_tolerance"` // Max height above ground at which a hit is fatal
}

// Obstacles defines procedural generation parameters in distance-units.
type Obstacles struct {
	MinGap           float64 `yaml:"min_gap"`           // Fairness floor between consecutive spawns
	SpawnProbability float64 `yaml:"spawn_probability"` // Per candidate position
	RockProbability  float64 `yaml:"rock_probability"`  // Rock vs hole coin flip
	SafeBuffer       float64 `yaml:"safe_buffer"`       // Obstacle-free zone ahead of the player at run start
	SpawnLookahead   float64 `yaml:"spawn_lookahead"`   // How far past the world edge spawning looks
	SpawnJitter      float64 `yaml:"spawn_jitter"`      // Randomized spawn offset past the world edge
	OffscreenX       float64 `yaml:"offscreen_x"`       // Prune threshold left of the world
	Rock             Box     `yaml:"rock"`
	Hole             Box     `yaml:"hole"`
}

// Box is a hitbox size in distance-units.
type Box struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Player defines the player's fixed layout and hitbox.
type Player struct {
	X      float64 `yaml:"x"` // Fixed horizontal position, never simulated
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// World defines the visible world layout.
type World struct {
	Width       float64 `yaml:"width"`        // Visible world width in distance-units
	GroundLevel float64 `yaml:"ground_level"` // Injected layout constant, not physics state
}

// Game defines state machine parameters.
type Game struct {
	CooldownSeconds float64 `yaml:"cooldown_seconds"` // Restart lockout after a collision
	SkipMenu        bool    `yaml:"skip_menu"`        // Boot straight into a run, no menu states
}
