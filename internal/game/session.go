package game

import (
	"github.com/tavrel/runline/internal/config"
)

// Session owns one playthrough: the player body, the live obstacle list, the
// distance counter and the compounding speed ramp. It orchestrates the
// physics engine and the generator each tick; the state machine above it
// decides when ticks happen at all.
type Session struct {
	cfg       *config.Config
	engine    *Engine
	gen       *Generator
	body      Body
	obstacles []Obstacle
	distance  int
	speed     float64
}

// NewSession creates a session with the given tunables and RNG seed.
// The session is idle until Start.
func NewSession(cfg *config.Config, seed int64) *Session {
	return &Session{
		cfg:    cfg,
		engine: NewEngine(cfg),
		gen:    NewGenerator(seed, cfg),
		speed:  1.0,
	}
}

// Start resets the run: distance 0, speed multiplier 1.0, grounded player,
// fresh obstacle field seeded ahead of the player. The multiplier is reset
// here and nowhere else.
func (s *Session) Start() {
	s.distance = 0
	s.speed = 1.0
	s.body = Body{Y: s.cfg.World.GroundLevel, Vel: 0, Grounded: true}
	s.obstacles = s.gen.Seed(s.cfg.Player.X, s.cfg.World.Width)
}

// Jump applies the jump impulse. Mid-air jumps are ignored.
func (s *Session) Jump() {
	if !s.body.Grounded {
		return
	}
	s.body.Vel = s.cfg.Physics.JumpVelocity
	s.body.Grounded = false
}

// Tick advances the run by one step and reports whether it ended in a
// collision. Distance grows by exactly 1 per tick. On every surviving tick
// the speed multiplier compounds, so long runs are designed to eventually
// become unwinnable.
func (s *Session) Tick() bool {
	s.distance++

	var hit bool
	s.obstacles, hit = s.engine.Step(&s.body, s.obstacles, s.speed)

	if ob, ok := s.gen.MaybeSpawn(s.cfg.World.Width, s.obstacles); ok {
		s.obstacles = append(s.obstacles, ob)
	}

	if hit {
		return true
	}
	s.speed *= s.cfg.Physics.SpeedGrowth
	return false
}

// Distance returns the run's tick-counted distance.
func (s *Session) Distance() int {
	return s.distance
}

// Speed returns the current speed multiplier.
func (s *Session) Speed() float64 {
	return s.speed
}

// Body returns the player's current vertical state.
func (s *Session) Body() Body {
	return s.body
}

// Obstacles returns the live obstacle list. Callers must not mutate it.
func (s *Session) Obstacles() []Obstacle {
	return s.obstacles
}

// Reseed resets the generator's RNG stream.
func (s *Session) Reseed(seed int64) {
	s.gen.Reseed(seed)
}
