// Command kstarplan loads a YAML task file, runs the top-k shortest-path
// planner engine over it, and persists the resulting plans — the CLI
// surface enumerated in spec.md §6, structured the way
// upside-down-research-agentic/cmd/agentic/main.go shapes a kong-parsed
// options struct.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/kstarplan/kstar/astar"
	"github.com/kstarplan/kstar/engine"
	"github.com/kstarplan/kstar/openlist"
	"github.com/kstarplan/kstar/planio"
	"github.com/kstarplan/kstar/postprocess"
	"github.com/kstarplan/kstar/task"
	"github.com/kstarplan/kstar/taskfile"
)

// CLI is the flat option surface of spec.md §6: there is exactly one
// operation (plan a task file), so this module skips kong's subcommand
// dispatch and parses straight into a single struct.
var CLI struct {
	TaskFile string `arg:"" name:"taskfile" help:"YAML task file to plan over" type:"path"`

	K int     `name:"k" help:"target plan count, disabled if < 1" default:"-1"`
	Q float64 `name:"q" help:"target quality ratio against C*, disabled if < 1.0" default:"0.0"`

	OpenlistIncPercentLB int `name:"openlist-inc-percent-lb" help:"lower burst-size bound, percent of cumulative expansions" default:"1"`
	OpenlistIncPercentUB int `name:"openlist-inc-percent-ub" help:"upper burst-size bound, percent of cumulative expansions" default:"5"`

	SwitchOnGoal           bool `name:"switch-on-goal" help:"break the A* burst as soon as a goal state is generated"`
	RestartEppstein        bool `name:"restart-eppstein" help:"reseed the Eppstein heap at each burst boundary" default:"true"`
	AllowGreedyKPlansSelection bool `name:"allow-greedy-k-plans-selection" help:"loosen the Eppstein switch-back bound when k and q are both active"`
	NonRestartStrictBound  bool `name:"non-restart-strict-bound" help:"use strict > instead of >= for the non-restart switch-back bound"`

	ReportPeriod time.Duration `name:"report-period" help:"minimum interval between progress log lines" default:"540s"`

	FindUnorderedPlans          bool   `name:"find-unordered-plans" help:"canonicalize plans as operator-name multisets instead of recording every ordering"`
	PreserveOrdersActionsRegex string `name:"preserve-orders-actions-regex" help:"operator names matching this regex keep positional identity under unordered canonicalization"`

	PlansDir      string `name:"plans-dir" help:"directory plan files are written into" default:"found_plans"`
	DumpPlanFiles bool   `name:"dump-plan-files" help:"write one numbered plan file per emitted plan"`
	DumpPlans     bool   `name:"dump-plans" help:"write the plans JSON document"`
	JSONFileToDump string `name:"json-file-to-dump" help:"path of the JSON plans document" default:"plans.json"`
	WriteDot      bool   `name:"write-dot" help:"write a DOT export of the explored state space and side-track edges"`
	DotFile       string `name:"dot-file" help:"path of the DOT export" default:"search_space.dot"`

	Timeout time.Duration `name:"timeout" help:"wall-clock budget for the whole run" default:"5m"`
}

func main() {
	log.SetLevel(log.InfoLevel)
	kong.Parse(&CLI,
		kong.Name("kstarplan"),
		kong.Description("Top-k shortest-path planner over a YAML task file."),
		kong.UsageOnError(),
	)

	if err := run(); err != nil {
		log.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	tk, err := taskfile.Load(CLI.TaskFile)
	if err != nil {
		return fmt.Errorf("loading task file: %w", err)
	}

	driver, err := astar.NewDriver(tk, astar.WithOpenList(openlist.New()))
	if err != nil {
		return fmt.Errorf("constructing A* driver: %w", err)
	}

	post, err := newPostProcessor(tk)
	if err != nil {
		return fmt.Errorf("constructing post-processor: %w", err)
	}

	e, err := engine.New(tk, driver, post,
		engine.WithK(CLI.K),
		engine.WithQ(CLI.Q),
		engine.WithOpenlistIncPercent(CLI.OpenlistIncPercentLB, CLI.OpenlistIncPercentUB),
		engine.WithSwitchOnGoal(CLI.SwitchOnGoal),
		engine.WithRestartEppstein(CLI.RestartEppstein),
		engine.WithAllowGreedyKSelection(CLI.AllowGreedyKPlansSelection),
		engine.WithNonRestartStrictBound(CLI.NonRestartStrictBound),
		engine.WithReportPeriod(CLI.ReportPeriod),
	)
	if err != nil {
		return fmt.Errorf("constructing engine: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), CLI.Timeout)
	defer cancel()

	status, err := e.Run(ctx)
	if err != nil {
		return fmt.Errorf("engine run: %w", err)
	}
	log.Info("run finished", "status", runStatus(status), "plans", len(e.Plans()))

	return persist(e, tk)
}

func newPostProcessor(tk *task.GraphTask) (task.PlanPostProcessor, error) {
	if !CLI.FindUnorderedPlans {
		return postprocess.NewIdentity(CLI.DumpPlanFiles, true), nil
	}
	mode := postprocess.ModeUnordered
	if CLI.PreserveOrdersActionsRegex != "" {
		mode = postprocess.ModeHybrid
	}
	return postprocess.NewCanonical(mode, CLI.PreserveOrdersActionsRegex, tk.OperatorName, CLI.DumpPlanFiles, true)
}

func persist(e *engine.Engine, tk *task.GraphTask) error {
	plans := e.Plans()
	mgr := planio.New(planio.WithPlansDir(CLI.PlansDir))

	if CLI.DumpPlanFiles {
		if err := mgr.ArchivePrevious(); err != nil {
			return fmt.Errorf("archiving previous plans: %w", err)
		}
		for _, p := range plans {
			if _, err := mgr.SavePlan(p, tk, true); err != nil {
				return fmt.Errorf("saving plan: %w", err)
			}
		}
	}

	if CLI.DumpPlans {
		f, err := os.Create(CLI.JSONFileToDump)
		if err != nil {
			return fmt.Errorf("creating JSON dump: %w", err)
		}
		defer f.Close()
		if err := mgr.WriteJSON(f, plans, tk); err != nil {
			return fmt.Errorf("writing JSON dump: %w", err)
		}
	}

	if CLI.WriteDot {
		f, err := os.Create(CLI.DotFile)
		if err != nil {
			return fmt.Errorf("creating DOT export: %w", err)
		}
		defer f.Close()
		if err := planio.WriteDOT(f, e.SearchSpace(), e.HinLists(), tk); err != nil {
			return fmt.Errorf("writing DOT export: %w", err)
		}
	}

	return nil
}

func runStatus(s engine.Status) string {
	switch s {
	case engine.Solved:
		return "SOLVED"
	case engine.Timeout:
		return "TIMEOUT"
	default:
		return "IN_PROGRESS"
	}
}
