// Package operations performs the physical side of a session: destination
// collision resolution and the per-file move itself, including dry-run
// simulation.
//
// Failures are returned as MoveOutcome values, never as errors crossing the
// per-file boundary: one file failing to move must not abort the session.
package operations
