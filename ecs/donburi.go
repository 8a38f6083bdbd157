package ecs

import (
	"github.com/phanxgames/sprig"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// FrameEventType is the Donburi event type for sprig frame events.
// Subscribe to this in your ECS systems to react to animation frames.
var FrameEventType = events.NewEventType[sprig.FrameEvent]()

// SpriteData is the component payload holding a sprite.
type SpriteData struct {
	Sprite *sprig.Sprite
}

// SpriteComponent attaches a sprite to an entity.
var SpriteComponent = donburi.NewComponentType[SpriteData]()

var spriteQuery = donburi.NewQuery(filter.Contains(SpriteComponent))

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Frame events are published to FrameEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) sprig.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitFrame(event sprig.FrameEvent) {
	FrameEventType.Publish(s.world, event)
}

// AddSprite creates an entity carrying sp.
func AddSprite(world donburi.World, sp *sprig.Sprite) donburi.Entity {
	e := world.Create(SpriteComponent)
	SpriteComponent.SetValue(world.Entry(e), SpriteData{Sprite: sp})
	return e
}

// UpdateSprites advances every sprite in the world by one tick. Disposed
// sprites are removed from the world.
func UpdateSprites(world donburi.World, tick sprig.Tick, pixels sprig.PixelProvider) {
	var dead []donburi.Entity
	spriteQuery.Each(world, func(entry *donburi.Entry) {
		sp := SpriteComponent.Get(entry).Sprite
		if sp == nil || sp.IsDisposed() {
			dead = append(dead, entry.Entity())
			return
		}
		sp.Update(tick, pixels)
	})
	for _, e := range dead {
		world.Remove(e)
	}
}

// DrawSprites draws every sprite in the world to surface.
func DrawSprites(world donburi.World, surface sprig.RenderSurface) {
	spriteQuery.Each(world, func(entry *donburi.Entry) {
		if sp := SpriteComponent.Get(entry).Sprite; sp != nil {
			sp.Draw(surface)
		}
	})
}
