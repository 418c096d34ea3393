// Package postprocess implements task.PlanPostProcessor: Identity (no
// deduplication) and Canonical, the three-mode canonical-form deduplicator
// recovered from original_source's plan_selector.h (unordered multiset,
// strictly-ordered vector, or a regex-hybrid of the two).
package postprocess
