package ecs

import (
	"image"
	"testing"
	"time"

	"github.com/phanxgames/sprig"

	"github.com/yohamta/donburi"
)

func newTestSprite(t *testing.T, name string) *sprig.Sprite {
	t.Helper()
	draft := sprig.NewAnimatedSprite(name)
	err := draft.AddSheet("run", &sprig.SpriteSheet{
		Image:       image.NewRGBA(image.Rect(0, 0, 12, 4)),
		FrameWidth:  4,
		FrameHeight: 4,
		FrameCount:  3,
		FrameTime:   10 * time.Millisecond,
		Loop:        true,
	})
	if err != nil {
		t.Fatalf("AddSheet: %v", err)
	}
	sp, err := draft.Ready(sprig.NewImagePixelProvider())
	if err != nil {
		t.Fatalf("Ready: %v", err)
	}
	return sp
}

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitFrame(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []sprig.FrameEvent
	FrameEventType.Subscribe(world, func(w donburi.World, e sprig.FrameEvent) {
		received = append(received, e)
	})

	sink.EmitFrame(sprig.FrameEvent{SpriteID: 42, SpriteName: "hero", Sheet: "walk", Frame: 1})
	sink.EmitFrame(sprig.FrameEvent{SpriteID: 42, SpriteName: "hero", Sheet: "walk", Frame: 2})

	// Events are queued until processed.
	FrameEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Frame != 1 || received[0].SpriteID != 42 || received[0].Sheet != "walk" {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Frame != 2 {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_ImplementsEventSink(t *testing.T) {
	world := donburi.NewWorld()
	var sink sprig.EventSink = NewDonburiSink(world)
	_ = sink // compile-time interface check
}

func TestDonburiSink_StageForwardsFrames(t *testing.T) {
	world := donburi.NewWorld()
	stage := sprig.NewStage(sprig.StageConfig{Width: 64, Height: 64, Pixels: sprig.NewImagePixelProvider()})
	sp := newTestSprite(t, "runner")
	stage.Add(sp)
	stage.SetEventSink(NewDonburiSink(world))

	var frames []int
	FrameEventType.Subscribe(world, func(w donburi.World, e sprig.FrameEvent) {
		if e.SpriteID != sp.ID {
			t.Errorf("SpriteID = %d, want %d", e.SpriteID, sp.ID)
		}
		frames = append(frames, e.Frame)
	})

	tick := sprig.NewTick(11*time.Millisecond, 1)
	for i := 0; i < 4; i++ {
		stage.Step(tick)
	}
	FrameEventType.ProcessEvents(world)

	want := []int{1, 2, 0, 1}
	if len(frames) != len(want) {
		t.Fatalf("got frames %v, want %v", frames, want)
	}
	for i := range want {
		if frames[i] != want[i] {
			t.Errorf("frames[%d] = %d, want %d", i, frames[i], want[i])
		}
	}
}

func TestUpdateSprites(t *testing.T) {
	world := donburi.NewWorld()
	pixels := sprig.NewImagePixelProvider()

	a := newTestSprite(t, "a")
	a.Velocity = sprig.Vec2{X: 1}
	b := newTestSprite(t, "b")
	AddSprite(world, a)
	eb := AddSprite(world, b)

	tick := sprig.NewTick(11*time.Millisecond, 1)
	UpdateSprites(world, tick, pixels)

	if a.Position.X != 1 {
		t.Errorf("a.Position.X = %v, want 1", a.Position.X)
	}
	if a.Animation().Frame() != 1 {
		t.Errorf("a frame = %d, want 1", a.Animation().Frame())
	}

	b.Dispose()
	UpdateSprites(world, tick, pixels)
	if world.Valid(eb) {
		t.Error("disposed sprite entity should be removed")
	}
	if world.Len() != 1 {
		t.Errorf("world.Len() = %d, want 1", world.Len())
	}
}

func TestDrawSprites(t *testing.T) {
	world := donburi.NewWorld()
	AddSprite(world, newTestSprite(t, "a"))
	hidden := newTestSprite(t, "b")
	hidden.Visible = false
	AddSprite(world, hidden)

	var rec sprig.CommandRecorder
	DrawSprites(world, &rec)
	if len(rec.Commands) != 1 {
		t.Errorf("recorded %d commands, want 1", len(rec.Commands))
	}
}
