// Package ecs provides ECS adapters for arbor's tree events.
//
// The primary adapter is [NewDonburiSink], which bridges arbor tree events
// (child added, removed, moved, renamed, group and owner changes, replace,
// free) into a [Donburi] world as typed events. Subscribe to
// [TreeEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	reg := arbor.NewRegistry(arbor.WithEventSink(sink))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
