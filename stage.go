package sprig

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// FrameEvent reports that an animated sprite entered a frame.
type FrameEvent struct {
	SpriteID   uint32
	SpriteName string
	Sheet      string
	Frame      int
}

// EventSink receives frame events from a Stage, e.g. to forward them into
// an ECS world.
type EventSink interface {
	EmitFrame(event FrameEvent)
}

// Updater is anything advanced once per tick, such as a *Tweener[T].
type Updater interface {
	Update(tick Tick)
}

// StageConfig holds the settings applied by NewStage.
type StageConfig struct {
	// Width and Height are the logical screen size returned from Layout.
	Width, Height int
	// ClearColor fills the screen before drawing. The zero value leaves the
	// screen untouched.
	ClearColor Color
	// Speed is the clock's initial speed multiplier. Zero means 1.
	Speed float64
	// Debug enables per-tick timing output on stderr.
	Debug bool
	// Pixels overrides the pixel provider. Defaults to EbitenPixelProvider.
	Pixels PixelProvider
	// Keys is the real input polled when nothing is injected. Defaults to
	// Keyboard.
	Keys KeyState
	// ScreenshotDir is where Screenshot writes files. Defaults to
	// "screenshots".
	ScreenshotDir    string
	ScreenshotFormat ScreenshotFormat
}

// Stage is an optional host loop: it owns sprites, tweeners and a camera,
// advances them once per tick in a fixed order and draws the sprites. It
// implements ebiten.Game.
//
// Per tick: test runner, input, OnUpdate, sprites (in insertion order), tween groups,
// tweeners, camera.
type Stage struct {
	// Pixels is injected into every animated sprite's Update.
	Pixels PixelProvider
	Clock  *Clock
	Camera *Camera
	// Input is advanced once per tick and is the KeyState to hand to
	// Sprite.Move and KeyMap.
	Input *KeyInjector

	ClearColor Color
	Width      int
	Height     int

	ScreenshotDir    string
	ScreenshotFormat ScreenshotFormat

	// OnUpdate runs first each tick. Poll input here.
	OnUpdate func(tick Tick)

	sprites  []*Sprite
	overlays []*Sprite
	groups   []*TweenGroup
	tweeners []Updater
	sink     EventSink
	debug    bool
	surface  EbitenSurface

	testRunner      *TestRunner
	screenshotQueue []string
}

// NewStage creates a stage with a camera covering the whole screen.
func NewStage(cfg StageConfig) *Stage {
	pixels := cfg.Pixels
	if pixels == nil {
		pixels = NewEbitenPixelProvider()
	}
	clock := NewClock()
	if cfg.Speed != 0 {
		clock.Speed = cfg.Speed
	}
	keys := cfg.Keys
	if keys == nil {
		keys = Keyboard{}
	}
	dir := cfg.ScreenshotDir
	if dir == "" {
		dir = "screenshots"
	}
	cam := NewCamera(Rect{Width: float64(cfg.Width), Height: float64(cfg.Height)})
	cam.SetPosition(Vec2{float64(cfg.Width) / 2, float64(cfg.Height) / 2})
	s := &Stage{
		Pixels:     pixels,
		Clock:      clock,
		Camera:     cam,
		Input:      NewKeyInjector(keys),
		ClearColor: cfg.ClearColor,
		Width:      cfg.Width,
		Height:     cfg.Height,

		ScreenshotDir:    dir,
		ScreenshotFormat: cfg.ScreenshotFormat,
	}
	s.SetDebugMode(cfg.Debug)
	return s
}

// Add appends a sprite. Sprites update and draw in insertion order.
func (s *Stage) Add(sp *Sprite) {
	s.sprites = append(s.sprites, sp)
	s.wire(sp)
}

// Remove drops a sprite without disposing it.
func (s *Stage) Remove(sp *Sprite) {
	for i, c := range s.sprites {
		if c == sp {
			s.sprites = append(s.sprites[:i], s.sprites[i+1:]...)
			if sp.anim != nil {
				sp.anim.onEnter = nil
			}
			return
		}
	}
}

// AddOverlay appends a sprite drawn in screen space after the world, such
// as the FPS widget. Overlays update after the sprites and ignore the
// camera.
func (s *Stage) AddOverlay(sp *Sprite) {
	s.overlays = append(s.overlays, sp)
}

// Sprites returns the stage's sprites. The returned slice MUST NOT be mutated.
func (s *Stage) Sprites() []*Sprite {
	return s.sprites
}

// AddTweener registers a value tweener to be updated every tick.
func (s *Stage) AddTweener(u Updater) {
	s.tweeners = append(s.tweeners, u)
}

// RemoveTweener unregisters a tweener.
func (s *Stage) RemoveTweener(u Updater) {
	for i, c := range s.tweeners {
		if c == u {
			s.tweeners = append(s.tweeners[:i], s.tweeners[i+1:]...)
			return
		}
	}
}

// AddTweenGroup registers a field tween. Finished groups are dropped
// automatically.
func (s *Stage) AddTweenGroup(g *TweenGroup) {
	s.groups = append(s.groups, g)
}

// SetEventSink forwards frame events of every animated sprite to sink.
// Pass nil to stop forwarding.
func (s *Stage) SetEventSink(sink EventSink) {
	s.sink = sink
	for _, sp := range s.sprites {
		s.wire(sp)
	}
}

func (s *Stage) wire(sp *Sprite) {
	if sp.anim == nil {
		return
	}
	if s.sink == nil {
		sp.anim.onEnter = nil
		return
	}
	sink := s.sink
	id, name := sp.ID, sp.Name
	sp.anim.onEnter = func(sheet string, frame int) {
		sink.EmitFrame(FrameEvent{SpriteID: id, SpriteName: name, Sheet: sheet, Frame: frame})
	}
}

// SetDebugMode enables or disables debug mode. When enabled, per-tick
// timing stats are printed to stderr and recoverable misuse is logged.
func (s *Stage) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Stage debug flag so that
// providers and surfaces (which lack a Stage pointer) can check it cheaply.
var globalDebug bool

// Update advances the stage by one clock tick. Implements ebiten.Game.
func (s *Stage) Update() error {
	s.Step(s.Clock.Next())
	return nil
}

// Step advances the stage by an explicit tick.
func (s *Stage) Step(tick Tick) {
	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.Input.Advance()
	if s.OnUpdate != nil {
		s.OnUpdate(tick)
	}
	for _, sp := range s.sprites {
		sp.Update(tick, s.Pixels)
		if sp.anim != nil {
			stats.animated++
		}
	}
	for _, o := range s.overlays {
		o.Update(tick, s.Pixels)
	}

	if s.debug {
		stats.spriteTime = time.Since(t0)
		stats.sprites = len(s.sprites)
		t0 = time.Now()
	}

	live := s.groups[:0]
	for _, g := range s.groups {
		g.Update(tick)
		if !g.Done {
			live = append(live, g)
		}
	}
	for i := len(live); i < len(s.groups); i++ {
		s.groups[i] = nil
	}
	s.groups = live
	for _, u := range s.tweeners {
		u.Update(tick)
	}
	s.Camera.Update(tick)

	if s.debug {
		stats.tweenTime = time.Since(t0)
		stats.tweens = len(s.groups) + len(s.tweeners)
		s.debugLog(stats)
	}
}

// Draw clears the screen, draws every visible sprite through the camera,
// then the overlays.
// Implements ebiten.Game.
func (s *Stage) Draw(screen *ebiten.Image) {
	if s.ClearColor != (Color{}) {
		screen.Fill(s.ClearColor.RGBA())
	}
	s.surface.ResetStats()
	s.surface.Target = screen
	s.surface.View = s.Camera.ViewMatrix()
	s.DrawTo(&s.surface)
	s.surface.View = IdentityTransform
	for _, o := range s.overlays {
		o.Draw(&s.surface)
	}
	s.flushScreenshots(screen)
}

// DrawTo draws every visible sprite inside the camera's view to surface.
func (s *Stage) DrawTo(surface RenderSurface) {
	view := s.Camera.VisibleBounds()
	for _, sp := range s.sprites {
		if !sp.Bounds().Intersects(view) {
			continue
		}
		sp.Draw(surface)
	}
}

// Layout returns the configured logical screen size. Implements ebiten.Game.
func (s *Stage) Layout(outsideWidth, outsideHeight int) (int, int) {
	if s.Width == 0 || s.Height == 0 {
		return outsideWidth, outsideHeight
	}
	return s.Width, s.Height
}
