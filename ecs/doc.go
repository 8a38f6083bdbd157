// Package ecs provides ECS adapters for sprig.
//
// [NewDonburiSink] bridges sprig frame events into a [Donburi] world as
// typed events; subscribe to [FrameEventType] in your ECS systems to receive
// them. [SpriteComponent] and [UpdateSprites] let a Donburi world own
// sprites directly instead of a sprig.Stage.
//
// Usage:
//
//	stage.SetEventSink(ecs.NewDonburiSink(world))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
