// Package metrics owns a private prometheus registry for one pipeline run:
// rows loaded and dropped, nodes scored, cache lookups, complexes found and
// per-stage durations. WriteText renders the registry in the text
// exposition format so batch runs can leave a metrics file behind.
package metrics
