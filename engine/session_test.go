package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/rolldodge/constants"
	"github.com/lixenwraith/rolldodge/events"
)

const testTick = 16 * time.Millisecond

var testStart = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func countEvents(evs []events.GameEvent, t events.EventType) int {
	n := 0
	for _, ev := range evs {
		if ev.Type == t {
			n++
		}
	}
	return n
}

// placeOnPlayer spawns a stationary obstacle overlapping the player
func placeOnPlayer(s *Session) uint64 {
	return s.SpawnObstacle(s.Player.X+10, s.Player.Y, 0)
}

func TestNewSessionDefaults(t *testing.T) {
	s := NewTestSession(800, 600, false)

	if s.ID == "" {
		t.Error("Expected a session id")
	}
	gs := s.State
	if gs.Lives != constants.MaxLives || !gs.CanRoll || gs.Score != 0 || gs.GameOver {
		t.Errorf("Unexpected initial state: %+v", gs)
	}
	if s.Player.X != 375 || s.Player.Y != 500 {
		t.Errorf("Expected player at (375, 500), got (%v, %v)", s.Player.X, s.Player.Y)
	}
	if s.Player.Direction != 1 {
		t.Errorf("Expected initial direction 1, got %d", s.Player.Direction)
	}
}

func TestScoreNonDecreasing(t *testing.T) {
	s := NewTestSession(800, 600, true)
	now := testStart

	last := 0
	for i := 0; i < 2000; i++ {
		now = now.Add(testTick)
		in := Input{Left: i%200 < 100, Right: i%200 >= 100, Roll: i%60 == 0}
		s.Update(now, in)

		if s.State.Score < last {
			t.Fatalf("Score decreased at tick %d: %d -> %d", i, last, s.State.Score)
		}
		if s.State.Lives < 0 || s.State.Lives > constants.MaxLives {
			t.Fatalf("Lives out of range at tick %d: %d", i, s.State.Lives)
		}
		if s.State.Score != s.State.BaseScore+s.State.ComboScore {
			t.Fatalf("Score %d != base %d + combo %d", s.State.Score, s.State.BaseScore, s.State.ComboScore)
		}
		if !s.State.IsRolling && len(s.State.Processed) != 0 {
			t.Fatalf("Processed set not empty while not rolling at tick %d", i)
		}
		last = s.State.Score
	}
}

func TestBaseScoreAccruesPerTick(t *testing.T) {
	s := NewTestSession(800, 600, false)
	now := testStart
	for i := 0; i < 10; i++ {
		now = now.Add(testTick)
		s.Update(now, Input{})
	}
	if s.State.Score != 10 {
		t.Errorf("Expected score 10 after 10 ticks, got %d", s.State.Score)
	}
}

// Obstacle at x=100 falling at speed 3 onto a player spanning x=90..140
func TestFallingObstacleScenario(t *testing.T) {
	s := NewTestSession(800, 600, false)
	s.Player.X = 90
	s.SpawnObstacle(100, -20, 3)

	now := testStart
	hitTick := -1
	var hitAt time.Time
	for i := 1; i <= 200; i++ {
		now = now.Add(testTick)
		evs := s.Update(now, Input{})
		if n := countEvents(evs, events.EventPlayerHit); n > 0 {
			if hitTick != -1 {
				t.Fatalf("Second hit at tick %d", i)
			}
			hitTick = i
			hitAt = now
		}
	}

	// -20 + 3k > 500 - 30 first holds at k = 164
	if hitTick != 164 {
		t.Fatalf("Expected hit at tick 164, got %d", hitTick)
	}
	if s.State.Lives != 2 {
		t.Errorf("Expected 2 lives, got %d", s.State.Lives)
	}
	if len(s.Obstacles) != 0 {
		t.Errorf("Damaging obstacle should be removed, %d left", len(s.Obstacles))
	}

	s.Update(hitAt.Add(999*time.Millisecond), Input{})
	if !s.State.IsInvincible {
		t.Error("Expected invincibility inside the 1000ms window")
	}
	s.Update(hitAt.Add(1000*time.Millisecond), Input{})
	if s.State.IsInvincible {
		t.Error("Expected invincibility to end after 1000ms")
	}
	if s.State.Lives != 2 {
		t.Errorf("No double decrement expected, got %d lives", s.State.Lives)
	}
}

func TestInvincibleObstacleIsHarmless(t *testing.T) {
	s := NewTestSession(800, 600, false)
	placeOnPlayer(s)
	s.Update(testStart, Input{})
	if s.State.Lives != 2 || !s.State.IsInvincible {
		t.Fatalf("Expected hit and invincibility, lives=%d", s.State.Lives)
	}

	placeOnPlayer(s)
	evs := s.Update(testStart.Add(testTick), Input{})
	if s.State.Lives != 2 {
		t.Errorf("Invincible player lost a life")
	}
	if len(s.Obstacles) != 1 {
		t.Errorf("Non-damaging obstacle should stay, got %d", len(s.Obstacles))
	}
	if countEvents(evs, events.EventObstacleDodged) != 0 || s.State.Combo != 0 {
		t.Error("Invincibility alone must not credit dodges")
	}
}

func TestRollCreditsObstacleOnce(t *testing.T) {
	s := NewTestSession(800, 600, false)
	now := testStart

	evs := s.Update(now, Input{Roll: true})
	if countEvents(evs, events.EventRollStarted) != 1 || !s.State.IsRolling {
		t.Fatal("Expected roll to start")
	}
	placeOnPlayer(s)

	dodges := 0
	for i := 0; i < 20; i++ {
		now = now.Add(testTick)
		evs = s.Update(now, Input{})
		dodges += countEvents(evs, events.EventObstacleDodged)
	}
	if dodges != 1 {
		t.Errorf("Expected exactly one credited dodge, got %d", dodges)
	}
	if s.State.Combo != 1 || s.State.ComboScore != 500 {
		t.Errorf("Expected combo 1 / 500 points, got %d / %d", s.State.Combo, s.State.ComboScore)
	}
	if s.State.Lives != constants.MaxLives {
		t.Errorf("Rolling player lost a life")
	}

	// Roll ends at 500ms, the stationary obstacle then damages
	evs = s.Update(testStart.Add(500*time.Millisecond), Input{})
	if s.State.IsRolling || len(s.State.Processed) != 0 {
		t.Error("Expected roll ended with empty processed set")
	}
	if countEvents(evs, events.EventRollEnded) != 1 {
		t.Error("Expected RollEnded event")
	}
	if s.State.Lives != 2 || s.State.Combo != 0 {
		t.Errorf("Expected hit after roll: lives=%d combo=%d", s.State.Lives, s.State.Combo)
	}
	if s.State.ComboScore != 500 {
		t.Errorf("Combo points must be kept after a hit, got %d", s.State.ComboScore)
	}
}

func TestComboStreakArithmetic(t *testing.T) {
	s := NewTestSession(800, 600, false)
	s.Update(testStart, Input{Roll: true})

	const n = 4
	for i := 0; i < n; i++ {
		placeOnPlayer(s)
	}
	evs := s.Update(testStart.Add(testTick), Input{})

	k := 0
	for _, ev := range evs {
		if ev.Type != events.EventComboAwarded {
			continue
		}
		k++
		p := ev.Payload.(*events.ComboPayload)
		if p.Combo != k || p.Points != 500*k {
			t.Errorf("Dodge %d: got combo %d points %d", k, p.Combo, p.Points)
		}
	}
	if k != n {
		t.Fatalf("Expected %d awards, got %d", n, k)
	}
	if s.State.ComboScore != ComboStreakTotal(n) || s.State.ComboScore != 5000 {
		t.Errorf("Expected combo score 5000, got %d", s.State.ComboScore)
	}
	if s.State.MaxCombo != n {
		t.Errorf("Expected max combo %d, got %d", n, s.State.MaxCombo)
	}
}

func TestComboPoints(t *testing.T) {
	for k := 1; k <= 10; k++ {
		if ComboPoints(k) != 500*k {
			t.Errorf("ComboPoints(%d) = %d", k, ComboPoints(k))
		}
		sum := 0
		for i := 1; i <= k; i++ {
			sum += ComboPoints(i)
		}
		if ComboStreakTotal(k) != sum {
			t.Errorf("ComboStreakTotal(%d) = %d, want %d", k, ComboStreakTotal(k), sum)
		}
	}
	if ComboPoints(0) != 0 || ComboStreakTotal(-1) != 0 {
		t.Error("Non-positive streaks award nothing")
	}
}

func TestHealPickup(t *testing.T) {
	t.Run("full life wastes item", func(t *testing.T) {
		s := NewTestSession(800, 600, false)
		s.SpawnHeal(s.Player.X, s.Player.Y)
		evs := s.Update(testStart, Input{})
		if s.State.Lives != constants.MaxLives {
			t.Errorf("Lives changed: %d", s.State.Lives)
		}
		if len(s.Heals) != 0 {
			t.Error("Heal item should be removed")
		}
		if countEvents(evs, events.EventHealWasted) != 1 {
			t.Error("Expected HealWasted event")
		}
	})

	t.Run("missing life restored", func(t *testing.T) {
		s := NewTestSession(800, 600, false)
		s.State.SetLives(1)
		s.SpawnHeal(s.Player.X, s.Player.Y)
		evs := s.Update(testStart, Input{})
		if s.State.Lives != 2 {
			t.Errorf("Expected 2 lives, got %d", s.State.Lives)
		}
		if len(s.Heals) != 0 {
			t.Error("Heal item should be removed")
		}
		if countEvents(evs, events.EventHealed) != 1 {
			t.Error("Expected Healed event")
		}
	})
}

func TestSetLivesClamps(t *testing.T) {
	gs := NewGameState()
	gs.SetLives(7)
	if gs.Lives != constants.MaxLives {
		t.Errorf("Expected clamp to %d, got %d", constants.MaxLives, gs.Lives)
	}
	gs.SetLives(-2)
	if gs.Lives != 0 {
		t.Errorf("Expected clamp to 0, got %d", gs.Lives)
	}
}

func TestGameOverTriggersOnce(t *testing.T) {
	s := NewTestSession(800, 600, false)
	s.State.SetLives(1)
	placeOnPlayer(s)
	placeOnPlayer(s)

	died, shown := 0, 0
	now := testStart
	evs := s.Update(now, Input{})
	died += countEvents(evs, events.EventPlayerDied)

	if !s.State.GameOver || !s.State.IsDying || s.State.Lives != 0 {
		t.Fatalf("Expected game over: %+v", s.State)
	}
	score := s.State.Score

	for i := 0; i < 120; i++ {
		now = now.Add(testTick)
		placeOnPlayer(s)
		evs = s.Update(now, Input{Roll: true, Left: true})
		died += countEvents(evs, events.EventPlayerDied)
		shown += countEvents(evs, events.EventGameOverShown)
	}

	if died != 1 {
		t.Errorf("Expected one PlayerDied, got %d", died)
	}
	if shown != 1 {
		t.Errorf("Expected one GameOverShown, got %d", shown)
	}
	if s.State.Lives != 0 {
		t.Errorf("Lives moved after death: %d", s.State.Lives)
	}
	if s.State.Score != score {
		t.Errorf("Score changed after game over: %d -> %d", score, s.State.Score)
	}
	if s.State.IsRolling {
		t.Error("Roll must not start after game over")
	}
}

func TestGameOverRevealDelay(t *testing.T) {
	s := NewTestSession(800, 600, false)
	s.State.SetLives(1)
	placeOnPlayer(s)
	s.Update(testStart, Input{})

	if evs := s.Update(testStart.Add(999*time.Millisecond), Input{}); countEvents(evs, events.EventGameOverShown) != 0 {
		t.Error("Game over shown too early")
	}
	evs := s.Update(testStart.Add(time.Second), Input{})
	if countEvents(evs, events.EventGameOverShown) != 1 {
		t.Fatal("Expected game over after 1000ms")
	}
	p := evs[0].Payload.(*events.GameOverPayload)
	if p.SessionID != s.ID || p.Score != s.State.Score {
		t.Errorf("Unexpected results payload: %+v", p)
	}
}

func TestDeathAnimation(t *testing.T) {
	s := NewTestSession(800, 600, false)
	s.State.SetLives(1)
	placeOnPlayer(s)
	now := testStart
	s.Update(now, Input{})

	for i := 0; i < 18; i++ {
		now = now.Add(testTick)
		s.Update(now, Input{})
	}
	if s.State.DeathRotation != constants.DeathRotationMax {
		t.Errorf("Expected rotation capped at 90 after 18 ticks, got %v", s.State.DeathRotation)
	}
	if !s.State.DeathAnimating() {
		t.Error("Soul should still be rising")
	}

	for i := 0; i < 40; i++ {
		now = now.Add(testTick)
		s.Update(now, Input{})
	}
	if s.State.SoulY != constants.SoulRiseMax || s.State.DeathRotation != constants.DeathRotationMax {
		t.Errorf("Expected finished animation, rotation=%v soul=%v", s.State.DeathRotation, s.State.SoulY)
	}
	if s.State.DeathAnimating() {
		t.Error("Animation should be complete")
	}
}

func TestRestartResetsSession(t *testing.T) {
	s := NewTestSession(800, 600, true)
	now := testStart
	for i := 0; i < 300; i++ {
		now = now.Add(testTick)
		s.Update(now, Input{Roll: true})
	}
	oldID := s.ID

	evs := s.Restart(now)
	if countEvents(evs, events.EventGameRestarted) != 1 {
		t.Error("Expected GameRestarted event")
	}
	gs := s.State
	if gs.Score != 0 || gs.Lives != constants.MaxLives || gs.Combo != 0 || gs.GameOver || gs.IsRolling {
		t.Errorf("State not reset: %+v", gs)
	}
	if len(s.Obstacles) != 0 || len(s.Heals) != 0 {
		t.Errorf("Entities not cleared: %d obstacles, %d heals", len(s.Obstacles), len(s.Heals))
	}
	if s.ID == oldID {
		t.Error("Expected new session id")
	}
	if s.Player.X != 375 {
		t.Errorf("Player not re-centred: %v", s.Player.X)
	}
	for kind := EffectKind(0); kind < effectKindCount; kind++ {
		if s.EffectActive(kind) {
			t.Errorf("Effect %s survived restart", kind)
		}
	}
}

func TestRestartCancelsPendingRoll(t *testing.T) {
	s := NewTestSession(800, 600, false)

	s.Update(testStart, Input{Roll: true})
	s.Restart(testStart)

	// New roll 400ms later: old roll would end at 500ms, old cooldown at 3000ms
	s.Update(testStart.Add(400*time.Millisecond), Input{Roll: true})

	evs := s.Update(testStart.Add(600*time.Millisecond), Input{})
	if !s.State.IsRolling || countEvents(evs, events.EventRollEnded) != 0 {
		t.Error("Stale roll effect ended the new roll")
	}

	evs = s.Update(testStart.Add(3000*time.Millisecond), Input{})
	if s.State.CanRoll || countEvents(evs, events.EventRollReady) != 0 {
		t.Error("Stale cooldown made roll available")
	}

	evs = s.Update(testStart.Add(3400*time.Millisecond), Input{})
	if !s.State.CanRoll || countEvents(evs, events.EventRollReady) != 1 {
		t.Error("Expected new cooldown to finish at 3400ms")
	}
}

func TestRollGatedByCooldown(t *testing.T) {
	s := NewTestSession(800, 600, false)
	s.Update(testStart, Input{Roll: true})

	evs := s.Update(testStart.Add(testTick), Input{Roll: true})
	if countEvents(evs, events.EventRollStarted) != 0 {
		t.Error("Roll restarted while rolling")
	}

	evs = s.Update(testStart.Add(time.Second), Input{Roll: true})
	if s.State.IsRolling || countEvents(evs, events.EventRollStarted) != 0 {
		t.Error("Roll started during cooldown")
	}

	evs = s.Update(testStart.Add(3*time.Second), Input{Roll: true})
	if countEvents(evs, events.EventRollReady) != 1 || countEvents(evs, events.EventRollStarted) != 1 {
		t.Error("Expected ready then new roll in the same tick")
	}
}

func TestCooldownProgressEvents(t *testing.T) {
	s := NewTestSession(800, 600, false)
	s.Update(testStart, Input{Roll: true})

	var progress []float64
	ready := 0
	for at := 50 * time.Millisecond; at <= 3*time.Second; at += 50 * time.Millisecond {
		evs := s.Update(testStart.Add(at), Input{})
		for _, ev := range evs {
			switch ev.Type {
			case events.EventCooldownProgress:
				if at < 500*time.Millisecond {
					t.Errorf("Progress reported while rolling at %v", at)
				}
				progress = append(progress, ev.Payload.(*events.CooldownPayload).Progress)
			case events.EventRollReady:
				ready++
			}
		}
	}

	if ready != 1 {
		t.Fatalf("Expected one RollReady, got %d", ready)
	}
	// Buckets 5..29 of 100ms
	if len(progress) != 25 {
		t.Errorf("Expected 25 progress reports, got %d", len(progress))
	}
	for i := 1; i < len(progress); i++ {
		if progress[i] <= progress[i-1] {
			t.Errorf("Progress not increasing: %v", progress)
			break
		}
	}
	if s.CooldownProgress() != 1 {
		t.Errorf("Expected progress 1 when ready, got %v", s.CooldownProgress())
	}
}

func TestHitFlashSchedule(t *testing.T) {
	s := NewTestSession(800, 600, false)
	placeOnPlayer(s)
	s.Update(testStart, Input{})

	tests := []struct {
		at   time.Duration
		want int
	}{
		{0, 100},
		{15 * time.Millisecond, 100},
		{16 * time.Millisecond, 95},
		{160 * time.Millisecond, 50},
		{319 * time.Millisecond, 5},
		{320 * time.Millisecond, 0},
		{500 * time.Millisecond, 0},
	}
	for _, tt := range tests {
		s.Update(testStart.Add(tt.at), Input{})
		if s.State.HitEffect != tt.want {
			t.Errorf("Flash at %v = %d, want %d", tt.at, s.State.HitEffect, tt.want)
		}
	}
}

func TestIdlePhaseBounded(t *testing.T) {
	s := NewTestSession(800, 600, false)
	now := testStart
	flips := 0
	dir := s.State.IdleDirection
	for i := 0; i < 500; i++ {
		now = now.Add(testTick)
		s.Update(now, Input{})
		if p := s.State.IdleAnimation; p < 0 || p > 1 {
			t.Fatalf("Idle phase out of range: %v", p)
		}
		if s.State.IdleDirection != dir {
			flips++
			dir = s.State.IdleDirection
		}
	}
	if flips < 2 {
		t.Errorf("Expected idle phase to reflect, %d flips", flips)
	}
	if off := s.State.FaceOffset(); off < 0 || off > constants.IdleFaceAmplitude {
		t.Errorf("Face offset out of range: %v", off)
	}
}

func TestMovementClamp(t *testing.T) {
	s := NewTestSession(800, 600, false)
	now := testStart
	for i := 0; i < 200; i++ {
		now = now.Add(testTick)
		s.Update(now, Input{Left: true})
	}
	if s.Player.X != 0 || s.Player.Direction != -1 || !s.Player.IsMoving {
		t.Errorf("Expected clamp at left edge: %+v", s.Player)
	}

	for i := 0; i < 200; i++ {
		now = now.Add(testTick)
		s.Update(now, Input{Right: true})
	}
	if s.Player.X != 750 || s.Player.Direction != 1 {
		t.Errorf("Expected clamp at right edge: %+v", s.Player)
	}

	s.Update(now.Add(testTick), Input{})
	if s.Player.IsMoving {
		t.Error("Expected movement flag cleared without input")
	}
	if s.Player.Direction != 1 {
		t.Error("Direction should persist from last input")
	}
}

func TestRollAngleSteering(t *testing.T) {
	s := NewTestSession(800, 600, false)
	s.Update(testStart, Input{Roll: true})
	if s.State.RollAngle != 20 {
		t.Errorf("Expected 20 degrees after first rolling tick, got %v", s.State.RollAngle)
	}

	s.Update(testStart.Add(testTick), Input{Left: true})
	if s.State.RollAngle != 0 || s.Player.Direction != -1 {
		t.Errorf("Expected left steer back to 0, got %v dir %d", s.State.RollAngle, s.Player.Direction)
	}

	s.Update(testStart.Add(2*testTick), Input{})
	if s.State.RollAngle != 340 {
		t.Errorf("Expected facing-driven spin to 340, got %v", s.State.RollAngle)
	}

	s.Update(testStart.Add(time.Second), Input{})
	if s.State.RollAngle != 0 {
		t.Errorf("Expected angle reset after roll, got %v", s.State.RollAngle)
	}
}

func TestResizeReanchorsPlayer(t *testing.T) {
	s := NewTestSession(800, 600, false)
	s.Player.X = 700

	s.Resize(400, 300)
	if s.Player.Y != 200 {
		t.Errorf("Expected player y 200, got %v", s.Player.Y)
	}
	if s.Player.X != 350 {
		t.Errorf("Expected player x clamped to 350, got %v", s.Player.X)
	}
	if w, h := s.Size(); w != 400 || h != 300 {
		t.Errorf("Unexpected size %vx%v", w, h)
	}
}

func TestEntitiesRemovedOffscreen(t *testing.T) {
	s := NewTestSession(800, 600, false)
	s.SpawnObstacle(0, 590, 20)
	s.SpawnHeal(0, 598)
	s.Update(testStart, Input{})
	if len(s.Obstacles) != 0 {
		t.Errorf("Obstacle past the bottom should be removed")
	}
	if len(s.Heals) != 0 {
		t.Errorf("Heal past the bottom should be removed")
	}
}

func TestSnapshotFill(t *testing.T) {
	s := NewTestSession(800, 600, false)
	s.SpawnObstacle(10, 10, 3)
	s.SpawnHeal(20, 20)
	s.Update(testStart, Input{})

	var snap Snapshot
	s.Fill(&snap)
	if len(snap.Obstacles) != 1 || len(snap.Heals) != 1 {
		t.Fatalf("Unexpected entity counts %d/%d", len(snap.Obstacles), len(snap.Heals))
	}
	if snap.Score != 1 || snap.Lives != 3 || !snap.CanRoll || snap.Cooldown != 1 {
		t.Errorf("Unexpected snapshot: %+v", snap)
	}

	// Snapshot is a copy
	snap.Obstacles[0].Y = 999
	if s.Obstacles[0].Y == 999 {
		t.Error("Snapshot aliases session storage")
	}
}
