// Package sim owns the body collection and the per-tick update cycle.
//
// A [World] is built from a [Config], seeded with bodies through
// [World.Spawn], and advanced with [World.Tick] or [World.Run]. Pointer and
// key interaction never touches bodies directly: callers [World.Enqueue]
// commands and the world applies them at the start of the next tick.
//
// # Thread Safety
//
// World methods are safe for concurrent use. A tick holds the world lock
// for its whole duration; observers are called after it is released.
package sim
