// Package ecs provides ECS adapters for sketch's gesture events.
//
// The primary adapter is [NewDonburiStore], which bridges gesture start,
// update and end events and shape deletions into a [Donburi] world as typed
// events. Subscribe to [GestureEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	canvas.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
