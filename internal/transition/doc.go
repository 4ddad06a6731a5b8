// Package transition drives time-based animations.
//
// A transition maps wall-clock time onto a normalized progress value in [0, 1],
// passes it through an easing curve and hands it to a step callback. Once the
// final position has been delivered the completion callback runs exactly once.
//
// The Scheduler does not own a goroutine or a timer: the UI loop calls Advance
// on every frame, so all callbacks run on the caller's goroutine. This keeps the
// animation state single-threaded alongside the rest of the UI model.
package transition
