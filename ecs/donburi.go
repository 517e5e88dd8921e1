package ecs

import (
	"github.com/phanxgames/sketch"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for sketch gesture events.
var GestureEventType = events.NewEventType[sketch.GestureEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Events are queued on GestureEventType and delivered by ProcessEvents.
func NewDonburiStore(world donburi.World) sketch.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event sketch.GestureEvent) {
	GestureEventType.Publish(s.world, event)
}
