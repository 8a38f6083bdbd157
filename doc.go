// Package sprig is the sprite animation and value-tweening core for
// [Ebitengine] games.
//
// It manages per-sprite state (position, velocity, transform, bounding box)
// updated every tick, frame-sheet animation with timed frame advance and
// per-frame callbacks, and a generic tweener that converges a value toward a
// target. Pixel upload, drawing and input polling go through small
// interfaces ([PixelProvider], [RenderSurface], [KeyState]) with Ebitengine
// implementations included.
//
// # Static sprites
//
//	tex, _, _ := ebitenutil.NewImageFromFile("ship.png")
//	ship := sprig.NewSprite("ship", tex, nil)
//	ship.Velocity = sprig.Vec2{X: 2}
//
//	// every tick
//	ship.Update(tick, pixels)
//	ship.Draw(surface)
//
// # Animated sprites
//
// Animated sprites are built in two phases. [NewAnimatedSprite] returns a
// [DraftSprite] that only accepts sprite sheets; [DraftSprite.Ready] loads
// the first frame of the first sheet and returns the usable [Sprite]:
//
//	draft := sprig.NewAnimatedSprite("hero")
//	draft.AddSheet("walk", &sprig.SpriteSheet{
//		Image: sheet, FrameWidth: 32, FrameHeight: 32, FrameCount: 4,
//		FrameTime: 100 * time.Millisecond, Loop: true,
//	})
//	hero, err := draft.Ready(sprig.NewEbitenPixelProvider())
//
// # Tweeners
//
// A [Tweener] moves a value toward a target once per tick, either by
// progress from a fixed start (linear, smoothstep, any gween easing) or
// recursively as a fraction of the remaining distance:
//
//	cam := sprig.NewVec2Tweener(sprig.Vec2{})
//	cam.SmoothingActive = true
//	cam.SmoothingType = sprig.SmoothingSmoothstep
//	cam.SmoothingRate = 0.05
//	cam.SetTarget(sprig.Vec2{X: 320, Y: 240})
//
// Duration-based field tweens built on [gween] are available as
// [TweenGroup].
//
// # Host loop
//
// Everything is single-threaded and tick-driven. [Stage] is an optional
// [ebiten.Game] that owns sprites, tweeners and a [Camera] and advances them
// in a fixed order. [Run] opens a window for it:
//
//	stage := sprig.NewStage(sprig.StageConfig{Width: 640, Height: 480})
//	stage.Add(hero)
//	stage.Camera.Follow(hero, sprig.Vec2{}, 0.1)
//	err := sprig.Run(stage, sprig.RunConfig{Title: "demo", Width: 640, Height: 480, ShowFPS: true})
//
// # Scripted runs
//
// [LoadTestScript] parses a JSON script of key holds, waits, speed changes,
// sheet switches and screenshots. Attached with [Stage.SetTestRunner], it
// feeds [Stage.Input] so sprites moved through it behave exactly as with a
// real keyboard:
//
//	{"steps": [
//		{"action": "hold", "keys": ["ArrowRight"], "frames": 30},
//		{"action": "screenshot", "label": "moved"}
//	]}
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package sprig
