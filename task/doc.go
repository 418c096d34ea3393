// Package task defines the collaborator interfaces the search core consumes
// (Task, Evaluator, OpenList, PruningMethod, SymmetryGroup, PlanPostProcessor)
// and GraphTask, a core.Graph-backed Task used by taskfile and by the search
// tests in this module.
//
// The collaborators are intentionally thin: the core never inspects a
// concrete implementation, only the interface. GraphTask exists because a
// search engine needs at least one concrete, testable Task, and core.Graph is
// already the module's graph substrate — vertices become StateIds, edges
// become named, costed operators.
package task
