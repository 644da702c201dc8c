// Package order implements the Order aggregate: one production task on one
// machine, progressing through a fixed sequence of stages with a write-once
// timestamp recorded at every transition.
//
// The aggregate enforces the stage state machine (see Stage), the hold/resume
// side path that preserves the worker's position in the flow, and the two
// terminal paths: a clean end that records bug time, and a force-stop that
// marks the order as ended early.
package order
