package engine

import "github.com/prometheus/client_golang/prometheus"

// Metrics is the engine's statistics registry, the Go analogue of the
// original's SearchStatistics::print_detailed_statistics. Each Engine owns
// its own prometheus.Registry rather than registering into the global
// DefaultRegisterer, so multiple engine runs (e.g. in tests or a batch CLI
// processing several task files) never collide on metric names.
type Metrics struct {
	Registry *prometheus.Registry

	Expansions  prometheus.Counter
	Reopens     prometheus.Counter
	PlansFound  prometheus.Counter
	OptimalCost prometheus.Gauge
	OuterSteps  prometheus.Counter
}

// NewMetrics constructs a fresh, independently-registered Metrics set.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		Expansions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kstarplan_astar_expansions_total",
			Help: "Number of A* state expansions performed.",
		}),
		Reopens: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kstarplan_astar_reopens_total",
			Help: "Number of closed states reopened via a cheaper predecessor.",
		}),
		PlansFound: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kstarplan_plans_found_total",
			Help: "Number of distinct plans emitted to the post-processor.",
		}),
		OptimalCost: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "kstarplan_optimal_cost",
			Help: "Cost of the first (optimal) plan found, or -1 before one is found.",
		}),
		OuterSteps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kstarplan_outer_steps_total",
			Help: "Number of engine outer-loop iterations (A*-burst + Eppstein-burst pairs).",
		}),
	}
	m.OptimalCost.Set(-1)
	reg.MustRegister(m.Expansions, m.Reopens, m.PlansFound, m.OptimalCost, m.OuterSteps)
	return m
}
