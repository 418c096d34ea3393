// Package taskfile loads a YAML task description — states, operators, an
// initial state, and a set of goal states — into a task.GraphTask, the way
// vanderheijden86-beadwork's pkg/config loads a YAML-configured Config into
// a typed struct via gopkg.in/yaml.v3.
package taskfile
