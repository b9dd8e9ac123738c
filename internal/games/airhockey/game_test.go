package airhockey

import (
	"image/color"
	"testing"

	"github.com/vovakirdan/arcade-physics/internal/config"
	"github.com/vovakirdan/arcade-physics/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func held(keys ...core.Key) core.InputFrame {
	in := core.NewInputFrame()
	for _, k := range keys {
		in.Press(k)
	}
	return in
}

// frictionless returns a game whose player has no static friction, so any
// push moves it.
func frictionless(seed int64) *Game {
	g := New()
	cfg := config.DefaultAirHockeyConfig()
	cfg.Player.PhysicsBody.Friction = 0
	g.cfg = cfg
	g.configured = true
	g.Reset(testRuntime(seed))
	return g
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 300)
	for i := range inputs {
		switch {
		case i%40 < 20:
			inputs[i] = held(core.KeyRight, core.KeyDown)
		default:
			inputs[i] = held(core.KeyUp)
		}
	}

	run := func() (*Game, core.Vec2, core.Vec2) {
		g := New()
		g.Reset(testRuntime(12345))
		for _, in := range inputs {
			g.Step(in)
		}
		return g, g.player.Body().Position(), g.puck.Body().Position()
	}

	g1, p1, k1 := run()
	g2, p2, k2 := run()

	if p1 != p2 || k1 != k2 {
		t.Errorf("Determinism failed: player %v vs %v, puck %v vs %v", p1, p2, k1, k2)
	}
	if g1.hits != g2.hits {
		t.Errorf("Determinism failed: hits differ. Run1=%d, Run2=%d", g1.hits, g2.hits)
	}
}

func TestPlayerAtRestWithoutInput(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	start := g.player.Position()

	// The puck cannot reach the centre within half a second.
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}

	if got := g.player.Position(); got != start {
		t.Errorf("player Position() = %v, expected %v", got, start)
	}
}

func TestPlayerMovesWithKeys(t *testing.T) {
	g := frictionless(1)
	start := g.player.Position()

	for i := 0; i < 5; i++ {
		g.Step(held(core.KeyRight))
	}

	got := g.player.Position()
	if got.X <= start.X {
		t.Errorf("player X = %v, expected > %v", got.X, start.X)
	}
	if got.Y != start.Y {
		t.Errorf("player Y = %v, expected %v", got.Y, start.Y)
	}
}

func TestPlayerMovesWithWASD(t *testing.T) {
	g := frictionless(1)
	start := g.player.Position()

	for i := 0; i < 5; i++ {
		g.Step(held(core.KeyW))
	}

	got := g.player.Position()
	if got.Y >= start.Y {
		t.Errorf("player Y = %v, expected < %v", got.Y, start.Y)
	}
	if got.X != start.X {
		t.Errorf("player X = %v, expected %v", got.X, start.X)
	}
}

func TestPlayerStopsAtWall(t *testing.T) {
	g := frictionless(1)
	half := g.cfg.Screen.PieceSize() / 2

	// Park the puck in a corner, out of the player's path.
	corner := core.V(float64(g.cfg.Screen.Width)-half, g.cfg.Screen.Height()-half)
	g.puck.Teleport(corner, core.V(0, 0))

	for i := 0; i < 600; i++ {
		g.Step(held(core.KeyLeft))
	}

	if got := g.player.Position().X; got != half {
		t.Errorf("player X = %v, expected %v", got, half)
	}
	if got := g.player.Body().Velocity().X; got > 0 {
		t.Errorf("player velocity X = %v, expected <= 0", got)
	}
}

func TestPuckBouncesOffWall(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	w := float64(g.cfg.Screen.Width)
	half := g.cfg.Screen.PieceSize() / 2

	g.puck.Teleport(core.V(w-half-1, 100), core.V(600, 0))
	g.Step(core.NewInputFrame())

	want := -600 * g.puck.Body().Elasticity()
	if got := g.puck.Body().Velocity().X; got != want {
		t.Errorf("puck velocity X = %v, expected %v", got, want)
	}
	if got := g.puck.Position().X; got != w-half {
		t.Errorf("puck X = %v, expected %v", got, w-half)
	}
}

func TestCollisionScoresOnce(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	// Park the puck on the player: a single contact episode.
	g.puck.Teleport(g.player.Position().Add(core.V(10, 0)), core.V(0, 0))
	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame())
	}

	if g.hits != 1 {
		t.Errorf("hits = %d, expected 1", g.hits)
	}
	if g.State().Score != 1 {
		t.Errorf("State().Score = %d, expected 1", g.State().Score)
	}
}

func TestResetActionServesOncePerPress(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	before := g.serves

	for i := 0; i < 10; i++ {
		g.Step(held(core.KeySpace))
	}
	if g.serves != before+1 {
		t.Errorf("serves = %d, expected %d", g.serves, before+1)
	}
	if got := g.puck.Position(); got.Distance(g.puck.start) > g.cfg.Puck.Speed {
		t.Errorf("puck Position() = %v, expected near %v", got, g.puck.start)
	}

	g.Step(core.NewInputFrame())
	g.Step(held(core.KeySpace))
	if g.serves != before+2 {
		t.Errorf("serves after second press = %d, expected %d", g.serves, before+2)
	}
}

func TestQuitActionEndsGame(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	g.Step(core.NewInputFrame())
	g.Step(held(core.KeyEscape))

	if !g.State().GameOver {
		t.Error("quit action should end the game")
	}
	ticks := g.Loop().Ticks()
	g.Step(core.NewInputFrame())
	if g.Loop().Ticks() != ticks {
		t.Error("game over should not advance the loop")
	}
}

func TestGamePause(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	g.Step(core.NewInputFrame())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	pos := g.puck.Position()
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.puck.Position() != pos {
		t.Error("puck moved while paused")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("game should be unpaused")
	}
}

func TestJoystickAttachesWhenPadAppears(t *testing.T) {
	g := frictionless(1)
	start := g.player.Position()

	in := core.NewInputFrame()
	in.Pads = []core.Pad{{Axes: []float64{0, 1}}}
	for i := 0; i < 5; i++ {
		g.Step(in)
	}

	if len(g.joysticks) != 1 {
		t.Fatalf("joysticks = %d, expected 1", len(g.joysticks))
	}
	if got := g.player.Position(); got.Y <= start.Y {
		t.Errorf("player Y = %v, expected > %v", got.Y, start.Y)
	}
}

func TestScene(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	scene := g.Scene()

	if scene.Width != 1280 || scene.Height != 720 {
		t.Errorf("Scene size = %vx%v, expected 1280x720", scene.Width, scene.Height)
	}
	if len(scene.Sprites) != 2 {
		t.Fatalf("Sprites = %d, expected 2", len(scene.Sprites))
	}
	if scene.Sprites[0].ID != PlayerID || scene.Sprites[1].ID != PuckID {
		t.Errorf("sprite ids = %d, %d", scene.Sprites[0].ID, scene.Sprites[1].ID)
	}
	if scene.Sprites[0].Radius != 20 {
		t.Errorf("player radius = %v, expected 20", scene.Sprites[0].Radius)
	}
	if scene.Sprites[0].Color != (color.RGBA{0x4b, 0x00, 0x82, 0xff}) {
		t.Errorf("player colour = %v, expected indigo", scene.Sprites[0].Color)
	}
}

func TestGameReset(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))
	for i := 0; i < 50; i++ {
		g.Step(held(core.KeyRight))
	}
	g.Reset(testRuntime(42))

	if g.hits != 0 || g.gameOver || g.paused {
		t.Errorf("Reset should clear state: hits=%d gameOver=%v paused=%v", g.hits, g.gameOver, g.paused)
	}
	if g.Loop().Ticks() != 0 {
		t.Errorf("Reset should replace the loop, ticks=%d", g.Loop().Ticks())
	}
}

func TestPlayerHoldsPositionWhenReleased(t *testing.T) {
	g := frictionless(1)

	for i := 0; i < 5; i++ {
		g.Step(held(core.KeyRight))
	}
	released := g.player.Position()

	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}

	if got := g.player.Position(); got != released {
		t.Errorf("player Position() = %v, expected %v", got, released)
	}
}

func TestResetServeIgnoresPreviousTicks(t *testing.T) {
	cfg := config.DefaultAirHockeyConfig()
	cfg.Difficulty = config.DifficultyConfig{
		Enabled:     true,
		Progression: config.ProgressionConfig{Type: "time", MaxAt: 60},
		Scaling:     config.ScalingConfig{SpeedMultiplier: 1},
	}
	newGame := func() *Game {
		g := New()
		g.cfg = cfg
		g.configured = true
		g.Reset(testRuntime(7))
		return g
	}

	fresh := newGame()
	want := fresh.puck.Body().Velocity()

	replay := newGame()
	for i := 0; i < 120; i++ {
		replay.Step(core.NewInputFrame())
	}
	replay.Reset(testRuntime(7))

	if got := replay.puck.Body().Velocity(); got != want {
		t.Errorf("puck velocity after Reset = %v, expected %v", got, want)
	}
}
