package flappy

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-flapper/internal/config"
	"github.com/vovakirdan/tui-flapper/internal/core"
)

func TestPlayerJumpOverridesVelocity(t *testing.T) {
	cfg := config.DefaultConfig()
	p := NewPlayer(cfg.Player)

	for _, v := range []float64{-20, -8, -0.5, 0, 3.7, 10} {
		p.Velocity = v
		p.Jump()
		if p.Velocity != cfg.Player.JumpStrength {
			t.Errorf("Jump() from velocity %v gave %v, expected %v", v, p.Velocity, cfg.Player.JumpStrength)
		}
	}
}

func TestPlayerUpdate(t *testing.T) {
	cfg := config.DefaultConfig()
	p := NewPlayer(cfg.Player)

	p.Update()
	if p.Velocity != cfg.Player.Gravity {
		t.Errorf("Velocity after one update = %v, expected %v", p.Velocity, cfg.Player.Gravity)
	}
	if p.Y != cfg.Player.StartY+cfg.Player.Gravity {
		t.Errorf("Y after one update = %v, expected %v", p.Y, cfg.Player.StartY+cfg.Player.Gravity)
	}
	if p.X != cfg.Player.StartX {
		t.Errorf("X moved to %v", p.X)
	}
}

func TestPlayerVelocityCapped(t *testing.T) {
	cfg := config.DefaultConfig()
	p := NewPlayer(cfg.Player)

	for i := 0; i < 500; i++ {
		p.Update()
		if p.Velocity > cfg.Player.MaxFallSpeed {
			t.Fatalf("tick %d: velocity %v exceeds max fall speed %v", i, p.Velocity, cfg.Player.MaxFallSpeed)
		}
	}
	if p.Velocity != cfg.Player.MaxFallSpeed {
		t.Errorf("velocity should settle at max fall speed, got %v", p.Velocity)
	}
}

func TestPlayerReset(t *testing.T) {
	cfg := config.DefaultConfig()
	p := NewPlayer(cfg.Player)

	p.Jump()
	p.Update()
	p.Update()
	p.Reset()

	if p.X != cfg.Player.StartX || p.Y != cfg.Player.StartY || p.Velocity != 0 {
		t.Errorf("Reset() left player at (%v, %v) vel %v", p.X, p.Y, p.Velocity)
	}
}

func TestPlayerOutOfBounds(t *testing.T) {
	cfg := config.DefaultConfig()
	p := NewPlayer(cfg.Player)

	tests := []struct {
		y    float64
		want bool
	}{
		{0, true},
		{-3, true},
		{0.1, false},
		{569.9, false},
		{570, true}, // y + size == window height
	}
	for _, tc := range tests {
		p.Y = tc.y
		if got := p.OutOfBounds(600); got != tc.want {
			t.Errorf("OutOfBounds() at y=%v = %v, expected %v", tc.y, got, tc.want)
		}
	}
}

func TestWallRects(t *testing.T) {
	cfg := config.DefaultConfig()
	w := NewWall(200, 100, cfg.Walls, 600)

	if got, want := w.TopRect(), core.NewFRect(200, 0, 60, 100); got != want {
		t.Errorf("TopRect() = %+v, expected %+v", got, want)
	}
	if got, want := w.BottomRect(), core.NewFRect(200, 250, 60, 350); got != want {
		t.Errorf("BottomRect() = %+v, expected %+v", got, want)
	}

	if !w.Collides(core.NewFRect(210, 50, 30, 30)) {
		t.Error("box in the top segment should collide")
	}
	if !w.Collides(core.NewFRect(210, 400, 30, 30)) {
		t.Error("box in the bottom segment should collide")
	}
	if w.Collides(core.NewFRect(210, 150, 30, 30)) {
		t.Error("box inside the gap should not collide")
	}
}

func TestWallUpdateAndOffScreen(t *testing.T) {
	cfg := config.DefaultConfig()
	w := NewWall(-57, 100, cfg.Walls, 600)

	w.Update()
	if w.X != -60 {
		t.Fatalf("X after update = %v, expected -60", w.X)
	}
	if w.OffScreen() {
		t.Error("wall with right edge at 0 is still on screen")
	}
	w.Update()
	if !w.OffScreen() {
		t.Error("wall with right edge at -3 should be off screen")
	}
}

func TestWallGapTopRange(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Game.WindowHeight = 600
	cfg.Walls.MinMargin = 50
	cfg.Walls.GapSize = 150

	g := NewWallGenerator(rand.New(rand.NewSource(7)), cfg)
	lo, hi := 1<<30, -1
	for i := 0; i < 20000; i++ {
		top := g.GapTop()
		if top < 50 || top > 400 {
			t.Fatalf("gap top %d outside [50, 400]", top)
		}
		lo = min(lo, top)
		hi = max(hi, top)
	}
	if lo != 50 || hi != 400 {
		t.Errorf("observed range [%d, %d], expected both ends [50, 400] to be reachable", lo, hi)
	}
}

func TestWallGeneratorInterval(t *testing.T) {
	cfg := config.DefaultConfig()
	g := NewWallGenerator(rand.New(rand.NewSource(1)), cfg)

	for tick := 1; tick <= 180; tick++ {
		w, ok := g.Tick()
		want := tick%cfg.Walls.SpawnInterval == 0
		if ok != want {
			t.Fatalf("tick %d: spawned=%v, expected %v", tick, ok, want)
		}
		if ok && w.X != float64(cfg.Game.WindowWidth) {
			t.Errorf("wall spawned at x=%v, expected right edge %d", w.X, cfg.Game.WindowWidth)
		}
	}
}

func TestEnemyPursuit(t *testing.T) {
	cfg := config.DefaultConfig()
	rng := rand.New(rand.NewSource(1))

	// Right of the player: full speed.
	e := NewEnemy(rng, 300, 200, 4, cfg.Enemies, 600)
	e.Update(100)
	if e.X != 296 {
		t.Errorf("enemy right of player moved to %v, expected 296", e.X)
	}

	// At or left of the player: half speed.
	e = NewEnemy(rng, 100, 200, 4, cfg.Enemies, 600)
	e.Update(100)
	if e.X != 98 {
		t.Errorf("enemy at player x moved to %v, expected 98", e.X)
	}
}

func TestEnemyJitter(t *testing.T) {
	cfg := config.DefaultConfig()
	e := NewEnemy(rand.New(rand.NewSource(3)), 5000, 300, 1, cfg.Enemies, 600)

	y := e.Y
	for i := 1; i <= 200; i++ {
		e.Update(0)
		dy := e.Y - y
		if i%cfg.Enemies.JitterEvery != 0 {
			if dy != 0 {
				t.Fatalf("update %d: y changed by %v between jitter ticks", i, dy)
			}
			continue
		}
		if dy < -2 || dy > 2 || dy != float64(int(dy)) {
			t.Fatalf("update %d: jitter %v outside integer range [-2, 2]", i, dy)
		}
		y = e.Y
	}
}

func TestEnemyJitterClamp(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Enemies.ClampToPlayfield = true
	cfg.Enemies.JitterEvery = 1
	cfg.Enemies.JitterRange = 50

	e := NewEnemy(rand.New(rand.NewSource(9)), 5000, 0, 1, cfg.Enemies, 600)
	for i := 0; i < 1000; i++ {
		e.Update(0)
		if e.Y < 0 || e.Y > 600-cfg.Enemies.Size {
			t.Fatalf("clamped enemy drifted to y=%v", e.Y)
		}
	}
}

func TestEnemyOffScreen(t *testing.T) {
	cfg := config.DefaultConfig()
	e := NewEnemy(rand.New(rand.NewSource(1)), -30, 0, 1, cfg.Enemies, 600)
	if e.OffScreen() {
		t.Error("enemy with right edge at 0 is still on screen")
	}
	e.X = -30.5
	if !e.OffScreen() {
		t.Error("enemy with right edge below 0 should be off screen")
	}
}

func TestEnemyGeneratorSpawnRules(t *testing.T) {
	cfg := config.DefaultConfig()
	always := config.Level{Name: "always", EnemySpeed: 4, EnemySpawnRate: 1}

	g := NewEnemyGenerator(rand.New(rand.NewSource(1)), cfg)
	for tick := 1; tick < cfg.Enemies.SpawnDistance; tick++ {
		if _, ok := g.Tick(0, always); ok {
			t.Fatalf("tick %d: spawned before spawn distance", tick)
		}
	}
	e, ok := g.Tick(0, always)
	if !ok {
		t.Fatal("expected a spawn once spawn distance is reached")
	}
	if e.X != float64(cfg.Game.WindowWidth) || e.Speed != 4 || e.Size != cfg.Enemies.Size {
		t.Errorf("unexpected enemy %+v", e)
	}
	if e.Y < 150 || e.Y > 450 {
		t.Errorf("spawn y %v outside the middle half [150, 450]", e.Y)
	}
	if g.timer != 0 {
		t.Errorf("timer should reset after a spawn, got %d", g.timer)
	}
}

func TestEnemyGeneratorRespectsCap(t *testing.T) {
	cfg := config.DefaultConfig()
	always := config.Level{Name: "always", EnemySpeed: 4, EnemySpawnRate: 1}

	g := NewEnemyGenerator(rand.New(rand.NewSource(1)), cfg)
	for tick := 0; tick < 1000; tick++ {
		if _, ok := g.Tick(cfg.Enemies.MaxCount, always); ok {
			t.Fatal("spawned with the population at the cap")
		}
	}
}

func TestEnemyGeneratorTimerKeepsRunningOnFailedRoll(t *testing.T) {
	cfg := config.DefaultConfig()
	never := config.Level{Name: "never", EnemySpeed: 4, EnemySpawnRate: 0}
	always := config.Level{Name: "always", EnemySpeed: 4, EnemySpawnRate: 1}

	g := NewEnemyGenerator(rand.New(rand.NewSource(1)), cfg)
	for tick := 0; tick < 500; tick++ {
		if _, ok := g.Tick(0, never); ok {
			t.Fatal("spawned with a zero spawn rate")
		}
	}
	if g.timer != 500 {
		t.Errorf("failed rolls must not reset the timer, got %d", g.timer)
	}

	// Past the distance the roll happens every tick, so the next success spawns at once.
	if _, ok := g.Tick(0, always); !ok {
		t.Error("expected an immediate spawn after the rate allows it")
	}
}
