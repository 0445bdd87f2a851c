package deploy

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	nanoid "github.com/matoous/go-nanoid/v2"

	"github.com/sprocketship/sprocketship/config"
	"github.com/sprocketship/sprocketship/notify"
	"github.com/sprocketship/sprocketship/snowflake"
)

// ProcedureResult records the outcome of one procedure in a run.
type ProcedureResult struct {
	Path     string
	Name     string
	Database string
	Schema   string
	Role     string
	SQL      string
	Grants   []string
	// GrantTargets mirrors Grants in structured form for preview output.
	GrantTargets []snowflake.Grant
	Err          error
}

// Target returns the database.schema pair the procedure lands in.
func (r *ProcedureResult) Target() string {
	return r.Database + "." + r.Schema
}

// Summary is the aggregate outcome of a Build, Plan, or Liftoff run.
type Summary struct {
	RunID    string
	Results  []ProcedureResult
	NotFound []string
}

// Failed returns the results that carry an error.
func (s *Summary) Failed() []ProcedureResult {
	var failed []ProcedureResult
	for _, r := range s.Results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}

// Err returns an aggregate error when any procedure failed, nil otherwise.
func (s *Summary) Err() error {
	if n := len(s.Failed()); n > 0 {
		return fmt.Errorf("%d of %d procedures failed", n, len(s.Results))
	}
	return nil
}

// Runner executes build and deployment runs over a project.
type Runner struct {
	Project  *Project
	Notifier notify.Notifier

	// RunID identifies the run in events and query tags. Generated when
	// empty, set it to share an ID with an already-opened session.
	RunID string
}

// NewRunner creates a runner. A nil notifier falls back to NopNotifier.
func NewRunner(project *Project, notifier notify.Notifier) *Runner {
	if notifier == nil {
		notifier = notify.NopNotifier{}
	}
	return &Runner{Project: project, Notifier: notifier}
}

// NewRunID generates the identifier tagged onto a run's events and its
// warehouse query tag.
func NewRunID() string {
	id, err := nanoid.New()
	if err != nil {
		// nanoid only fails when the system entropy source does.
		return fmt.Sprintf("run-%d", time.Now().UnixNano())
	}
	return id
}

// Build renders every selected procedure and writes the statements to
// <project>/<target>/<name>.sql. An empty target uses DefaultTarget.
func (r *Runner) Build(ctx context.Context, target string, only []string) (*Summary, error) {
	if target == "" {
		target = DefaultTarget
	}
	targetDir := filepath.Join(r.Project.Dir, target)
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return nil, fmt.Errorf("create target directory: %w", err)
	}

	return r.run(ctx, only, "", notify.EventProcedureBuilt, "built", func(result *ProcedureResult) error {
		out := filepath.Join(targetDir, result.Name+".sql")
		if err := os.WriteFile(out, []byte(result.SQL), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		return nil
	})
}

// Plan resolves and renders every selected procedure without touching a
// warehouse. Used for dry runs.
func (r *Runner) Plan(ctx context.Context, defaultRole string, only []string) (*Summary, error) {
	return r.run(ctx, only, defaultRole, notify.EventProcedurePlanned, "planned",
		func(*ProcedureResult) error { return nil })
}

// Liftoff deploys every selected procedure through the executor: switch
// role, create the procedure, apply grants. defaultRole is used when a
// procedure has no use_role of its own.
func (r *Runner) Liftoff(ctx context.Context, exec snowflake.Executor, defaultRole string, only []string) (*Summary, error) {
	return r.run(ctx, only, defaultRole, notify.EventProcedureDeployed, "deployed", func(result *ProcedureResult) error {
		if result.Role != "" {
			if err := exec.ExecContext(ctx, snowflake.UseRoleStatement(result.Role)); err != nil {
				return err
			}
		}
		if err := exec.ExecContext(ctx, result.SQL); err != nil {
			return err
		}
		for _, grant := range result.Grants {
			if err := exec.ExecContext(ctx, grant); err != nil {
				return err
			}
		}
		return nil
	})
}

// run is the shared per-file loop: discover, filter, resolve, render, then
// hand each result to apply. Failures never abort the loop; the summary
// carries them all.
func (r *Runner) run(ctx context.Context, only []string, defaultRole string, successType notify.EventType, verb string, apply func(*ProcedureResult) error) (*Summary, error) {
	files, err := r.Project.Discover()
	if err != nil {
		return nil, err
	}
	selected, notFound := Filter(files, only)

	runID := r.RunID
	if runID == "" {
		runID = NewRunID()
	}
	summary := &Summary{RunID: runID, NotFound: notFound}
	project := filepath.Base(r.Project.Dir)

	_ = r.Notifier.Notify(ctx, notify.Event{
		Type:      notify.EventRunStarted,
		RunID:     summary.RunID,
		Project:   project,
		Message:   fmt.Sprintf("run started with %d procedures", len(selected)),
		Severity:  notify.SeverityInfo,
		Timestamp: time.Now(),
	})

	for _, file := range selected {
		result := ProcedureResult{Path: file, Name: config.Stem(file)}

		resolved, sql, err := r.Project.Render(file)
		if err == nil {
			result.Name = resolved.Name()
			result.Database = resolved.GetString("database")
			result.Schema = resolved.GetString("schema")
			result.SQL = sql
			result.Grants = snowflake.GrantStatements(resolved)
			result.GrantTargets = snowflake.Grants(resolved)
			result.Role = resolved.GetString("use_role")
			if result.Role == "" {
				result.Role = defaultRole
			}
			err = apply(&result)
		}

		if err != nil {
			result.Err = err
			_ = r.Notifier.Notify(ctx, notify.Event{
				Type:      notify.EventProcedureFailed,
				RunID:     summary.RunID,
				Project:   project,
				Procedure: result.Name,
				Message:   fmt.Sprintf("%s could not be launched", result.Name),
				Severity:  notify.SeverityError,
				Timestamp: time.Now(),
				Metadata:  map[string]any{"error": err.Error()},
			})
		} else {
			_ = r.Notifier.Notify(ctx, notify.Event{
				Type:      successType,
				RunID:     summary.RunID,
				Project:   project,
				Procedure: result.Name,
				Message:   fmt.Sprintf("%s %s", result.Name, verb),
				Severity:  notify.SeverityInfo,
				Timestamp: time.Now(),
				Metadata:  map[string]any{"schema": result.Target()},
			})
		}
		summary.Results = append(summary.Results, result)
	}

	finish := notify.Event{
		Type:      notify.EventRunCompleted,
		RunID:     summary.RunID,
		Project:   project,
		Message:   fmt.Sprintf("run completed, %d procedures", len(summary.Results)),
		Severity:  notify.SeverityInfo,
		Timestamp: time.Now(),
	}
	if failed := summary.Failed(); len(failed) > 0 {
		finish.Type = notify.EventRunFailed
		finish.Message = fmt.Sprintf("run failed, %d of %d procedures", len(failed), len(summary.Results))
		finish.Severity = notify.SeverityError
	}
	_ = r.Notifier.Notify(ctx, finish)

	return summary, nil
}
