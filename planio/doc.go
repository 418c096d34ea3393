// Package planio persists engine output (§6's "Persisted state"): numbered
// plan files in found_plans/ (archived to found_plans/done/ on the next
// run, recovered from original_source's plan_manager.cc), a single JSON
// document via goccy/go-json, and a DOT export of the explored state space
// plus every recorded side-track edge.
package planio
