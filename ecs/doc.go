// Package ecs provides ECS adapters for chartkit's chart event system.
//
// The primary adapter is [NewDonburiStore], which bridges chart events
// (value and series hover and click) into a [Donburi] world as typed events.
// Subscribe to [ChartEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	donut.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
