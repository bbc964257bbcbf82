package game

import (
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tavrel/runline/internal/config"
	"github.com/tavrel/runline/internal/core"
)

// Mode is the machine's top-level state.
type Mode int

const (
	ModeMainMenu Mode = iota
	ModeSettings
	ModePlaying
	ModeEnded // Game over plus the restart cooldown, one composite state
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMainMenu:
		return "MainMenu"
	case ModeSettings:
		return "Settings"
	case ModePlaying:
		return "Playing"
	case ModeEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// Gateway persists the two scalar values the game keeps across processes.
// Reads must silently default on any failure (0 and full volume); writes may
// fail and the caller logs and moves on. The in-memory value stays
// authoritative for the rest of the process either way.
type Gateway interface {
	HighScore() int
	SaveHighScore(score int) error
	Volume() float64
	SaveVolume(v float64) error
}

// Recorder receives every finished run for the history scoreboard.
// Optional; the machine runs fine without one.
type Recorder interface {
	RecordRun(distance int) error
	ClearRuns() error
}

// Machine is the top-level finite state machine: main menu, settings,
// playing and the post-collision ended state, plus the reset-confirmation
// flag that only matters inside settings. All mutation happens on the single
// frame-driven path; there is no locking and no background work. The restart
// cooldown is polled against a stored deadline, never scheduled.
type Machine struct {
	cfg      *config.Config
	session  *Session
	gateway  Gateway
	recorder Recorder
	log      *log.Logger

	mode         Mode
	resetConfirm bool
	highScore    int
	volume       float64
	deadline     time.Time // Restart accepted at or after this instant
}

// NewMachine creates the state machine, loading the high score and volume
// once through the gateway. recorder may be nil. With skip_menu set the
// machine boots straight into a run instead of the main menu.
func NewMachine(cfg *config.Config, gw Gateway, rec Recorder, logger *log.Logger, seed int64) *Machine {
	if logger == nil {
		logger = log.Default()
	}
	m := &Machine{
		cfg:       cfg,
		session:   NewSession(cfg, seed),
		gateway:   gw,
		recorder:  rec,
		log:       logger,
		highScore: gw.HighScore(),
		volume:    core.ClampF(gw.Volume(), 0, 1),
		mode:      ModeMainMenu,
	}
	if cfg.Game.SkipMenu {
		m.startRun()
	}
	return m
}

// Mode returns the current top-level state.
func (m *Machine) Mode() Mode {
	return m.mode
}

// HighScore returns the in-memory best distance.
func (m *Machine) HighScore() int {
	return m.highScore
}

// Volume returns the current volume in [0, 1].
func (m *Machine) Volume() float64 {
	return m.volume
}

// Session exposes the run session, mainly for rendering and tests.
func (m *Machine) Session() *Session {
	return m.session
}

// HandleEvent applies one semantic input event. Events with no defined
// transition in the current mode are discarded; that is a design rule, not
// an error.
func (m *Machine) HandleEvent(ev Event, now time.Time) {
	switch m.mode {
	case ModeMainMenu:
		m.handleMainMenu(ev)
	case ModeSettings:
		m.handleSettings(ev)
	case ModePlaying:
		m.handlePlaying(ev)
	case ModeEnded:
		m.handleEnded(ev, now)
	}
}

func (m *Machine) handleMainMenu(ev Event) {
	switch ev.Kind {
	case EventPlay:
		m.startRun()
	case EventSettings:
		m.mode = ModeSettings
		m.resetConfirm = false
	}
}

func (m *Machine) handleSettings(ev Event) {
	if m.resetConfirm {
		switch ev.Kind {
		case EventConfirmYes:
			m.highScore = 0
			if err := m.gateway.SaveHighScore(0); err != nil {
				m.log.Warn("could not persist high score reset", "error", err)
			}
			if m.recorder != nil {
				if err := m.recorder.ClearRuns(); err != nil {
					m.log.Warn("could not clear run history", "error", err)
				}
			}
			m.resetConfirm = false
		case EventConfirmNo, EventBack, EventEdgeSwipe:
			m.resetConfirm = false
		}
		return
	}

	switch ev.Kind {
	case EventSetVolume:
		m.volume = core.ClampF(ev.Volume, 0, 1)
		if err := m.gateway.SaveVolume(m.volume); err != nil {
			m.log.Warn("could not persist volume", "error", err)
		}
	case EventResetHighScore:
		m.resetConfirm = true
	case EventBack, EventEdgeSwipe:
		m.mode = ModeMainMenu
	}
}

func (m *Machine) handlePlaying(ev Event) {
	switch ev.Kind {
	case EventJump:
		m.session.Jump()
	case EventMenu, EventEdgeSwipe:
		if !m.cfg.Game.SkipMenu {
			m.mode = ModeMainMenu // World torn down; next run reseeds the field
		}
	}
}

func (m *Machine) handleEnded(ev Event, now time.Time) {
	switch ev.Kind {
	case EventJump:
		// Ignored for exactly the cooldown duration, then restarts
		if !now.Before(m.deadline) {
			m.startRun()
		}
	case EventMenu:
		if !m.cfg.Game.SkipMenu {
			m.mode = ModeMainMenu
		}
	}
}

func (m *Machine) startRun() {
	m.session.Start()
	m.mode = ModePlaying
}

// Tick advances the simulation by one step when playing; in every other mode
// it is a no-op. now anchors the cooldown deadline on collision.
func (m *Machine) Tick(now time.Time) {
	if m.mode != ModePlaying {
		return
	}
	if m.session.Tick() {
		m.recordScoreIfHighest()
		m.mode = ModeEnded
		m.deadline = now.Add(time.Duration(m.cfg.Game.CooldownSeconds * float64(time.Second)))
	}
}

// recordScoreIfHighest runs exactly once, at the moment of collision. The
// high score only moves when strictly beaten; the run itself always lands in
// the history recorder.
func (m *Machine) recordScoreIfHighest() {
	d := m.session.Distance()
	if d > m.highScore {
		m.highScore = d
		if err := m.gateway.SaveHighScore(d); err != nil {
			m.log.Warn("could not persist high score", "error", err)
		}
	}
	if m.recorder != nil {
		if err := m.recorder.RecordRun(d); err != nil {
			m.log.Warn("could not record run", "error", err)
		}
	}
}

// Snapshot is the per-tick view handed to the presentation gateway. It
// carries everything a renderer needs and nothing it can mutate.
type Snapshot struct {
	Mode         Mode
	ResetConfirm bool

	PlayerY   float64
	Obstacles []Obstacle
	Distance  int
	HighScore int
	Volume    float64

	CooldownRemaining int  // Whole seconds, only meaningful in ModeEnded
	CanRestart        bool // True once the cooldown has lapsed
}

// Snapshot captures the current state for rendering.
func (m *Machine) Snapshot(now time.Time) Snapshot {
	snap := Snapshot{
		Mode:         m.mode,
		ResetConfirm: m.resetConfirm,
		Distance:     m.session.Distance(),
		HighScore:    m.highScore,
		Volume:       m.volume,
	}
	if m.mode == ModePlaying || m.mode == ModeEnded {
		snap.PlayerY = m.session.Body().Y
		snap.Obstacles = append([]Obstacle(nil), m.session.Obstacles()...)
	}
	if m.mode == ModeEnded {
		if remaining := m.deadline.Sub(now); remaining > 0 {
			snap.CooldownRemaining = int(math.Ceil(remaining.Seconds()))
		} else {
			snap.CanRestart = true
		}
	}
	return snap
}
