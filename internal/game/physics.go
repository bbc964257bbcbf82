package game

import (
	"github.com/tavrel/runline/internal/config"
	"github.com/tavrel/runline/internal/core"
)

// Body is the player's simulated vertical state. The horizontal position is
// fixed by layout and never integrated.
type Body struct {
	Y        float64 // Height of the player's bottom edge above ground level
	Vel      float64 // Vertical velocity, positive is up
	Grounded bool
}

// Engine advances player motion and obstacle positions and detects hits.
// Ground level is injected layout, not engine state.
type Engine struct {
	cfg *config.Config
}

// NewEngine creates a physics engine with the given tunables.
func NewEngine(cfg *config.Config) *Engine {
	return &Engine{cfg: cfg}
}

// Step advances one tick. The speed multiplier scales gravity and velocity
// integration as well as scroll speed, so the whole simulation accelerates
// together rather than just the scrolling. Returns the surviving obstacle
// list (pruned in place) and whether the player took a fatal hit.
func (e *Engine) Step(body *Body, obstacles []Obstacle, mult float64) ([]Obstacle, bool) {
	p := e.cfg.Physics
	ground := e.cfg.World.GroundLevel

	body.Vel += p.Gravity * mult
	body.Y += body.Vel * mult
	if body.Y <= ground {
		body.Y = ground
		body.Vel = 0
		body.Grounded = true
	} else {
		body.Grounded = false
	}

	// Scroll left and prune. Pruning is the sole removal path for
	// obstacles; memory stays bounded because they keep crossing the
	// threshold.
	kept := obstacles[:0]
	for _, o := range obstacles {
		o.X -= p.BaseSpeed * mult
		if o.X > e.cfg.Obstacles.OffscreenX {
			kept = append(kept, o)
		}
	}

	return kept, e.collides(body, kept)
}

// collides reports a fatal hit. Box overlap alone is not enough: both
// obstacle kinds only register while the player is within the ground
// tolerance, so a sufficiently high jump clears rocks and holes alike.
func (e *Engine) collides(body *Body, obstacles []Obstacle) bool {
	if body.Y-e.cfg.World.GroundLevel > e.cfg.Physics.HitTolerance {
		return false
	}
	pr := e.PlayerRect(body)
	for _, o := range obstacles {
		if pr.Intersects(o.Rect(e.cfg)) {
			return true
		}
	}
	return false
}

// PlayerRect returns the player's bounding box at the body's current height.
func (e *Engine) PlayerRect(body *Body) core.RectF {
	return core.NewRectF(e.cfg.Player.X, body.Y, e.cfg.Player.Width, e.cfg.Player.Height)
}
