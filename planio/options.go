package planio

// Options configures a PlanManager, following the same functional-options
// shape as every other package in this module.
type Options struct {
	// PlansDir is the directory plan files are written into (original
	// default: "found_plans").
	PlansDir string
	// DoneDir is where ArchivePrevious moves prior plan files before a
	// fresh run starts writing new ones (SPEC_FULL supplemented feature:
	// the original deletes/overwrites in place; this module archives
	// instead so a run's history survives the next one).
	DoneDir string
	// PlanFilename is the base name each numbered plan file is built
	// from: PlanFilename + "." + N (original default: "sas_plan").
	PlanFilename string
}

// DefaultOptions mirrors the original PlanManager's constructor defaults.
func DefaultOptions() Options {
	return Options{
		PlansDir:     "found_plans",
		DoneDir:      "found_plans/done",
		PlanFilename: "sas_plan",
	}
}

// Option is a functional option for PlanManager construction.
type Option func(*Options)

// WithPlansDir overrides the plan output directory.
func WithPlansDir(dir string) Option { return func(o *Options) { o.PlansDir = dir } }

// WithDoneDir overrides the archive directory used by ArchivePrevious.
func WithDoneDir(dir string) Option { return func(o *Options) { o.DoneDir = dir } }

// WithPlanFilename overrides the base plan filename.
func WithPlanFilename(name string) Option { return func(o *Options) { o.PlanFilename = name } }
