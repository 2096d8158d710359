// Package pipeline wires the stages of a clustering run:
//
//	load edges → build graph → weights (cache or Score) → Assign → export
//
// Each run gets a UUID that is attached to every log line. Stage timings and
// counts go to a metrics.Registry.
package pipeline
