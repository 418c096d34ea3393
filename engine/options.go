package engine

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/kstarplan/kstar/task"
)

// Options configures an Engine, mirroring spec.md §6's enumerated CLI
// surface. Construct with DefaultOptions and override via the With*
// functions, following the same functional-options shape as astar.Options.
type Options struct {
	// K is target_k: the desired plan count. Disabled (ignore_k) if < 1.
	K int
	// Q is target_q: the desired quality ratio against C*. Disabled
	// (ignore_quality) if < 1.0.
	Q float64

	// OpenlistIncPercentLB / UB bound a burst's A* step count as a
	// percentage of cumulative expansions so far (defaults 1, 5).
	OpenlistIncPercentLB int
	OpenlistIncPercentUB int

	// SwitchOnGoal breaks the A* burst as soon as a goal state is
	// generated. The check sits in the k-mode branch of the burst loop
	// (§4.4), so it applies only while k is enabled; with q alone it has
	// no effect.
	SwitchOnGoal bool
	// RestartEppstein reseeds the Eppstein heap at every burst boundary
	// using strict threshold comparisons; false preserves the heap across
	// bursts with non-strict comparisons (default true).
	RestartEppstein bool
	// AllowGreedyKSelection loosens the Eppstein switch-back bound to
	// target_cost_bound instead of min_f_open_list when q is enabled and
	// RestartEppstein is set; whether k is enabled is not checked (§9
	// supplemented feature).
	AllowGreedyKSelection bool
	// NonRestartStrictBound flips the non-restart switching predicate
	// from the literal upstream `>=` to `>` (§9 Open Questions).
	NonRestartStrictBound bool

	// ReportPeriod holds the progress-reporting interval (default 540s,
	// the original's report_period). The engine does not read it: a
	// progress line is logged whenever the plan count has grown since the
	// last report, with no time-based limit (SPEC_FULL supplemented
	// feature 6).
	ReportPeriod time.Duration

	Pruning task.PruningMethod
	Logger  *log.Logger
}

// DefaultOptions returns the literal original defaults: k disabled (-1), q
// disabled (0.0), burst bounds 1%/5%, restart_eppstein on, report_period
// 540s.
func DefaultOptions() Options {
	return Options{
		K:                    -1,
		Q:                    0.0,
		OpenlistIncPercentLB: 1,
		OpenlistIncPercentUB: 5,
		RestartEppstein:      true,
		ReportPeriod:         540 * time.Second,
		Logger:               log.Default(),
	}
}

// Option is a functional option for Engine construction.
type Option func(*Options)

func WithK(k int) Option { return func(o *Options) { o.K = k } }
func WithQ(q float64) Option { return func(o *Options) { o.Q = q } }

func WithOpenlistIncPercent(lb, ub int) Option {
	return func(o *Options) { o.OpenlistIncPercentLB, o.OpenlistIncPercentUB = lb, ub }
}

func WithSwitchOnGoal(v bool) Option { return func(o *Options) { o.SwitchOnGoal = v } }
func WithRestartEppstein(v bool) Option { return func(o *Options) { o.RestartEppstein = v } }
func WithAllowGreedyKSelection(v bool) Option {
	return func(o *Options) { o.AllowGreedyKSelection = v }
}
func WithNonRestartStrictBound(v bool) Option {
	return func(o *Options) { o.NonRestartStrictBound = v }
}
func WithReportPeriod(d time.Duration) Option { return func(o *Options) { o.ReportPeriod = d } }
func WithPruning(p task.PruningMethod) Option { return func(o *Options) { o.Pruning = p } }
func WithLogger(l *log.Logger) Option { return func(o *Options) { o.Logger = l } }

// KEnabled reports whether the plan-count termination criterion is active.
func (o Options) KEnabled() bool { return o.K >= 1 }

// QEnabled reports whether the quality-bound termination criterion is
// active.
func (o Options) QEnabled() bool { return o.Q >= 1.0 }

// effectiveK returns the value to pass to Walker.StepEppstein: -1 disables
// the plan-count check there exactly as it does in astar/pathgraph.
func (o Options) effectiveK() int {
	if !o.KEnabled() {
		return -1
	}
	return o.K
}
