package game

import (
	"errors"
	"testing"
	"time"
)

var errWriteFailed = errors.New("write failed")

// fakeGateway records persistence traffic for assertions.
type fakeGateway struct {
	high       int
	vol        float64
	savedHigh  []int
	savedVol   []float64
	saveHighFn func(int) error
}

func newFakeGateway(high int, vol float64) *fakeGateway {
	return &fakeGateway{high: high, vol: vol}
}

func (f *fakeGateway) HighScore() int { return f.high }

func (f *fakeGateway) SaveHighScore(score int) error {
	if f.saveHighFn != nil {
		return f.saveHighFn(score)
	}
	f.high = score
	f.savedHigh = append(f.savedHigh, score)
	return nil
}

func (f *fakeGateway) Volume() float64 { return f.vol }

func (f *fakeGateway) SaveVolume(v float64) error {
	f.vol = v
	f.savedVol = append(f.savedVol, v)
	return nil
}

// fakeRecorder records run history traffic.
type fakeRecorder struct {
	runs    []int
	cleared int
}

func (f *fakeRecorder) RecordRun(distance int) error {
	f.runs = append(f.runs, distance)
	return nil
}

func (f *fakeRecorder) ClearRuns() error {
	f.cleared++
	return nil
}

func newTestMachine(gw *fakeGateway) *Machine {
	cfg := testConfig()
	return NewMachine(cfg, gw, nil, nil, 42)
}

func TestMachineBootsToMainMenu(t *testing.T) {
	m := newTestMachine(newFakeGateway(0, 1.0))
	if m.Mode() != ModeMainMenu {
		t.Errorf("new machine should start in MainMenu, got %v", m.Mode())
	}
}

func TestMachineSkipMenuBootsPlaying(t *testing.T) {
	cfg := testConfig()
	cfg.Game.SkipMenu = true
	m := NewMachine(cfg, newFakeGateway(0, 1.0), nil, nil, 42)

	if m.Mode() != ModePlaying {
		t.Errorf("skip_menu machine should boot straight into Playing, got %v", m.Mode())
	}

	// Menu events are no-ops in the no-menu build
	m.HandleEvent(Event{Kind: EventMenu}, time.Now())
	if m.Mode() != ModePlaying {
		t.Errorf("menu event should be a no-op with skip_menu, got %v", m.Mode())
	}
}

func TestMainMenuTransitions(t *testing.T) {
	now := time.Now()

	m := newTestMachine(newFakeGateway(0, 1.0))
	m.HandleEvent(Event{Kind: EventPlay}, now)
	if m.Mode() != ModePlaying {
		t.Errorf("play should enter Playing, got %v", m.Mode())
	}
	if m.Session().Distance() != 0 {
		t.Errorf("play should start a fresh run, distance %d", m.Session().Distance())
	}

	m = newTestMachine(newFakeGateway(0, 1.0))
	m.HandleEvent(Event{Kind: EventSettings}, now)
	if m.Mode() != ModeSettings {
		t.Errorf("settings tap should enter Settings, got %v", m.Mode())
	}
	m.HandleEvent(Event{Kind: EventBack}, now)
	if m.Mode() != ModeMainMenu {
		t.Errorf("back from Settings should return to MainMenu, got %v", m.Mode())
	}
}

func TestUndefinedEventsAreNoOps(t *testing.T) {
	now := time.Now()
	m := newTestMachine(newFakeGateway(0, 1.0))

	// Jump, confirm and volume mean nothing in the main menu
	for _, ev := range []Event{{Kind: EventJump}, {Kind: EventConfirmYes}, SetVolume(0.5), {Kind: EventBack}} {
		m.HandleEvent(ev, now)
		if m.Mode() != ModeMainMenu {
			t.Fatalf("%v in MainMenu should be a no-op, mode now %v", ev.Kind, m.Mode())
		}
	}

	// Play means nothing mid-run
	m.HandleEvent(Event{Kind: EventPlay}, now)
	m.Tick(now)
	d := m.Session().Distance()
	m.HandleEvent(Event{Kind: EventPlay}, now)
	if m.Session().Distance() != d || m.Mode() != ModePlaying {
		t.Error("play during Playing should not restart the run")
	}
}

func TestVolumeClampedAndPersisted(t *testing.T) {
	now := time.Now()
	gw := newFakeGateway(0, 1.0)
	m := newTestMachine(gw)
	m.HandleEvent(Event{Kind: EventSettings}, now)

	m.HandleEvent(SetVolume(1.7), now)
	if m.Volume() != 1.0 {
		t.Errorf("volume should clamp to 1.0, got %.2f", m.Volume())
	}
	m.HandleEvent(SetVolume(-0.2), now)
	if m.Volume() != 0.0 {
		t.Errorf("volume should clamp to 0.0, got %.2f", m.Volume())
	}
	m.HandleEvent(SetVolume(0.4), now)

	// Every change persisted immediately, already clamped
	want := []float64{1.0, 0.0, 0.4}
	if len(gw.savedVol) != len(want) {
		t.Fatalf("expected %d persisted volumes, got %d", len(want), len(gw.savedVol))
	}
	for i, v := range want {
		if gw.savedVol[i] != v {
			t.Errorf("persisted volume %d = %.2f, want %.2f", i, gw.savedVol[i], v)
		}
	}
}

func TestHighScoreResetNeedsConfirmation(t *testing.T) {
	now := time.Now()
	gw := newFakeGateway(500, 1.0)
	rec := &fakeRecorder{}
	m := NewMachine(testConfig(), gw, rec, nil, 42)
	m.HandleEvent(Event{Kind: EventSettings}, now)

	// The plain reset tap only opens the confirmation
	m.HandleEvent(Event{Kind: EventResetHighScore}, now)
	if m.HighScore() != 500 {
		t.Fatal("reset tap alone must not clear the high score")
	}

	// Declining keeps everything
	m.HandleEvent(Event{Kind: EventConfirmNo}, now)
	if m.HighScore() != 500 || len(gw.savedHigh) != 0 {
		t.Fatal("declined reset must not mutate anything")
	}

	// Confirming clears and persists
	m.HandleEvent(Event{Kind: EventResetHighScore}, now)
	m.HandleEvent(Event{Kind: EventConfirmYes}, now)
	if m.HighScore() != 0 {
		t.Errorf("confirmed reset should zero the high score, got %d", m.HighScore())
	}
	if len(gw.savedHigh) != 1 || gw.savedHigh[0] != 0 {
		t.Errorf("confirmed reset should persist 0, saved %v", gw.savedHigh)
	}
	if rec.cleared != 1 {
		t.Errorf("confirmed reset should clear run history once, got %d", rec.cleared)
	}
	if m.Mode() != ModeSettings {
		t.Errorf("reset should land back in Settings, got %v", m.Mode())
	}
}

// forceCollision puts the run one tick away from hitting a rock at the given
// distance count.
func forceCollision(m *Machine, atDistance int) {
	cfg := m.cfg
	m.session.distance = atDistance - 1
	m.session.body = Body{Y: cfg.World.GroundLevel, Grounded: true}
	m.session.obstacles = []Obstacle{{X: cfg.Player.X + cfg.Physics.BaseSpeed, Kind: KindRock}}
}

func TestCollisionRecordsScoreAndCooldownGatesRestart(t *testing.T) {
	now := time.Now()
	gw := newFakeGateway(10, 1.0)
	rec := &fakeRecorder{}
	m := NewMachine(testConfig(), gw, rec, nil, 42)

	m.HandleEvent(Event{Kind: EventPlay}, now)
	forceCollision(m, 42)
	m.Tick(now)

	if m.Mode() != ModeEnded {
		t.Fatalf("collision should end the run, mode %v", m.Mode())
	}
	if m.HighScore() != 42 {
		t.Errorf("high score should become 42, got %d", m.HighScore())
	}
	if len(gw.savedHigh) != 1 || gw.savedHigh[0] != 42 {
		t.Errorf("high score 42 should be persisted once, saved %v", gw.savedHigh)
	}
	if len(rec.runs) != 1 || rec.runs[0] != 42 {
		t.Errorf("run of 42 should be recorded, got %v", rec.runs)
	}

	// Jump inside the cooldown window is ignored
	m.HandleEvent(Event{Kind: EventJump}, now.Add(1900*time.Millisecond))
	if m.Mode() != ModeEnded {
		t.Fatal("jump during cooldown must not restart")
	}
	snap := m.Snapshot(now.Add(500 * time.Millisecond))
	if snap.CooldownRemaining != 2 || snap.CanRestart {
		t.Errorf("snapshot during cooldown = remaining %d, restart %v", snap.CooldownRemaining, snap.CanRestart)
	}

	// Jump at expiry restarts with a clean run
	m.HandleEvent(Event{Kind: EventJump}, now.Add(2*time.Second))
	if m.Mode() != ModePlaying {
		t.Fatalf("jump after cooldown should restart, mode %v", m.Mode())
	}
	if m.Session().Distance() != 0 || m.Session().Speed() != 1.0 {
		t.Errorf("restart should reset distance and speed, got %d / %.4f", m.Session().Distance(), m.Session().Speed())
	}
}

func TestCollisionBelowHighScoreDoesNotPersist(t *testing.T) {
	now := time.Now()
	gw := newFakeGateway(100, 1.0)
	m := newTestMachine(gw)

	m.HandleEvent(Event{Kind: EventPlay}, now)
	forceCollision(m, 42)
	m.Tick(now)

	if m.HighScore() != 100 {
		t.Errorf("lower run should not move the high score, got %d", m.HighScore())
	}
	if len(gw.savedHigh) != 0 {
		t.Errorf("lower run should not persist, saved %v", gw.savedHigh)
	}
}

func TestWriteFailureKeepsMemoryAuthoritative(t *testing.T) {
	now := time.Now()
	gw := newFakeGateway(10, 1.0)
	gw.saveHighFn = func(int) error { return errWriteFailed }
	m := newTestMachine(gw)

	m.HandleEvent(Event{Kind: EventPlay}, now)
	forceCollision(m, 42)
	m.Tick(now)

	// The write failed but the in-memory value carries on
	if m.HighScore() != 42 {
		t.Errorf("in-memory high score should survive a write failure, got %d", m.HighScore())
	}
	if m.Mode() != ModeEnded {
		t.Errorf("a persistence failure is never fatal, mode %v", m.Mode())
	}
}

func TestMenuFromPlayingTearsDownWorld(t *testing.T) {
	now := time.Now()
	m := newTestMachine(newFakeGateway(0, 1.0))

	m.HandleEvent(Event{Kind: EventPlay}, now)
	m.Tick(now)
	m.HandleEvent(Event{Kind: EventMenu}, now)
	if m.Mode() != ModeMainMenu {
		t.Fatalf("menu tap should abandon the run, mode %v", m.Mode())
	}

	snap := m.Snapshot(now)
	if snap.Obstacles != nil {
		t.Error("main menu snapshot should carry no world geometry")
	}

	m.HandleEvent(Event{Kind: EventPlay}, now)
	if m.Session().Distance() != 0 {
		t.Errorf("re-entering play should start fresh, distance %d", m.Session().Distance())
	}
}
