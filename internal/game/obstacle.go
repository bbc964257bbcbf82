package game

import (
	"math"
	"math/rand"

	"github.com/tavrel/runline/internal/config"
	"github.com/tavrel/runline/internal/core"
)

// Kind identifies the obstacle variant.
type Kind int

const (
	KindRock Kind = iota
	KindHole
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindRock:
		return "Rock"
	case KindHole:
		return "Hole"
	default:
		return "Unknown"
	}
}

// Obstacle is a single hazard scrolling toward the player. The kind is fixed
// at spawn; only the position moves. Obstacles are owned by the run session
// and die when they scroll past the off-screen threshold.
type Obstacle struct {
	X    float64
	Kind Kind
}

// Rect returns the kind-specific hitbox. A rock stands on the ground; a hole
// lies flat at ground level.
func (o Obstacle) Rect(cfg *config.Config) core.RectF {
	box := cfg.Obstacles.Rock
	if o.Kind == KindHole {
		box = cfg.Obstacles.Hole
	}
	return core.NewRectF(o.X, cfg.World.GroundLevel, box.Width, box.Height)
}

// Generator procedurally places obstacles ahead of the visible world. It owns
// no obstacle state; the session does. All randomness flows through the
// injected seeded RNG so runs are reproducible.
type Generator struct {
	rng *rand.Rand
	cfg *config.Config
}

// NewGenerator creates a generator with the given RNG seed.
func NewGenerator(seed int64, cfg *config.Config) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
}

// Reseed resets the RNG stream.
func (g *Generator) Reseed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// Seed produces the initial obstacle field for a run. A guaranteed
// obstacle-free buffer sits immediately ahead of the player; beyond it the
// generator walks in minimum-gap strides up to the spawn lookahead and
// samples each stride independently. A rejected stride is skipped for good,
// never retried, so gaps in the field are expected.
func (g *Generator) Seed(playerX, worldWidth float64) []Obstacle {
	o := g.cfg.Obstacles
	obstacles := make([]Obstacle, 0, 8)
	end := worldWidth + o.SpawnLookahead
	for x := playerX + o.SafeBuffer; x <= end; x += o.MinGap {
		if g.rng.Float64() < o.SpawnProbability {
			obstacles = append(obstacles, Obstacle{X: x, Kind: g.pickKind()})
		}
	}
	return obstacles
}

// MaybeSpawn decides whether one new obstacle enters the world this tick.
// Nothing spawns while an obstacle already sits beyond the lookahead, and a
// candidate closer than the minimum gap to the current rightmost obstacle is
// rejected, so no two obstacles are ever unavoidable in combination.
func (g *Generator) MaybeSpawn(worldWidth float64, existing []Obstacle) (Obstacle, bool) {
	o := g.cfg.Obstacles

	rightmost := math.Inf(-1)
	for _, ob := range existing {
		if ob.X > rightmost {
			rightmost = ob.X
		}
	}
	if rightmost > worldWidth+o.SpawnLookahead {
		return Obstacle{}, false
	}
	if g.rng.Float64() >= o.SpawnProbability {
		return Obstacle{}, false
	}
	x := worldWidth + g.rng.Float64()*o.SpawnJitter
	if x-rightmost < o.MinGap {
		return Obstacle{}, false
	}
	return Obstacle{X: x, Kind: g.pickKind()}, true
}

// pickKind is a single independent coin flip per candidate. There is no
// memory of prior kinds; runs of the same kind are allowed.
func (g *Generator) pickKind() Kind {
	if g.rng.Float64() < g.cfg.Obstacles.RockProbability {
		return KindRock
	}
	return KindHole
}
