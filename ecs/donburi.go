package ecs

import (
	"github.com/phanxgames/chartkit"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ChartEventType is the Donburi event type for chartkit chart events.
var ChartEventType = events.NewEventType[chartkit.Event]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Chart events are published to ChartEventType and can be consumed with
// Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) chartkit.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event chartkit.Event) {
	ChartEventType.Publish(s.world, event)
}
