package planio

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"github.com/kstarplan/kstar/task"
)

// PlanManager persists plans to numbered files on disk, generalizing
// original_source/.../plan_manager.cc's PlanManager: save_plan becomes
// SavePlan, delete_plans/move_plans become ArchivePrevious (moving rather
// than deleting, so a run's plans survive as history), and
// write_plan_json becomes the planio JSON document writer.
type PlanManager struct {
	opts        Options
	numPrevious int
	runID       string
}

// New returns a PlanManager with a fresh run ID (google/uuid), the way
// upside-down-research-agentic/internal/commands/generate.go stamps a run
// ID onto a session via uuid.NewUUID.
func New(opts ...Option) *PlanManager {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	id, err := uuid.NewUUID()
	runID := ""
	if err == nil {
		runID = id.String()
	}
	return &PlanManager{opts: cfg, runID: runID}
}

// RunID returns the UUID stamped on this PlanManager at construction, used
// to tag report lines and output subdirectories.
func (m *PlanManager) RunID() string { return m.runID }

// NumSaved reports how many plans SavePlan has written so far.
func (m *PlanManager) NumSaved() int { return m.numPrevious }

// ArchivePrevious moves every numbered plan file (PlanFilename.N) from a
// prior run out of PlansDir (an unnumbered PlanFilename stays in place)
// into DoneDir, so SavePlan starts a fresh run without clobbering the
// previous one's output (generalizes move_plans, called with the same
// directory for source and dest in the original; here source and dest are
// always distinct).
func (m *PlanManager) ArchivePrevious() error {
	entries, err := os.ReadDir(m.opts.PlansDir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("planio: read %s: %w", m.opts.PlansDir, err)
	}
	prefix := m.opts.PlanFilename + "."
	var toMove []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if len(e.Name()) > len(prefix) && e.Name()[:len(prefix)] == prefix {
			toMove = append(toMove, e.Name())
		}
	}
	if len(toMove) == 0 {
		return nil
	}
	if err := os.MkdirAll(m.opts.DoneDir, 0o755); err != nil {
		return fmt.Errorf("planio: mkdir %s: %w", m.opts.DoneDir, err)
	}
	for _, name := range toMove {
		src := filepath.Join(m.opts.PlansDir, name)
		dst := filepath.Join(m.opts.DoneDir, name)
		if err := os.Rename(src, dst); err != nil {
			return fmt.Errorf("planio: archive %s: %w", src, err)
		}
	}
	return nil
}

// SavePlan writes plan inside PlansDir: when multiFile is true, as the
// numbered file PlanFilename.N, where N is 1 + the count of plans already
// saved by this PlanManager; when false, as PlanFilename itself.
// multiFile mirrors the original's generates_multiple_plan_files: when
// false, SavePlan refuses a second call (ErrAnytimeSingleFile), matching
// the original's assert(plan_number == 1).
func (m *PlanManager) SavePlan(plan task.Plan, t task.Task, multiFile bool) (string, error) {
	if t == nil {
		return "", ErrNilTask
	}
	planNumber := m.numPrevious + 1
	if !multiFile && planNumber != 1 {
		return "", ErrAnytimeSingleFile
	}

	if err := os.MkdirAll(m.opts.PlansDir, 0o755); err != nil {
		return "", fmt.Errorf("planio: mkdir %s: %w", m.opts.PlansDir, err)
	}

	name := m.opts.PlanFilename
	if multiFile {
		name += "." + strconv.Itoa(planNumber)
	}
	path := filepath.Join(m.opts.PlansDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("planio: create %s: %w", path, err)
	}
	defer f.Close()

	for _, op := range plan.Actions {
		if _, err := fmt.Fprintf(f, "(%s)\n", t.OperatorName(op)); err != nil {
			return "", fmt.Errorf("planio: write %s: %w", path, err)
		}
	}
	if _, err := fmt.Fprintf(f, "; cost = %d (general cost)\n", plan.Cost); err != nil {
		return "", fmt.Errorf("planio: write %s: %w", path, err)
	}

	m.numPrevious++
	return path, nil
}
