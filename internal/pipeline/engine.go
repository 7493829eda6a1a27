package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/relayops/relayctl/internal/compliance"
	"github.com/relayops/relayctl/internal/config"
	"github.com/relayops/relayctl/internal/reconcile"
	"github.com/relayops/relayctl/internal/state"
)

// RunState is the orchestrator's lifecycle state. Transitions are strictly
// forward within a run: Idle -> Validating -> Running -> Completed|Aborted.
type RunState string

const (
	StateIdle       RunState = "idle"
	StateValidating RunState = "validating"
	StateRunning    RunState = "running"
	StateCompleted  RunState = "completed"
	StateAborted    RunState = "aborted"
)

// HealthProber checks that the deployed service answers at the given URL.
type HealthProber func(ctx context.Context, url string) error

const (
	probeAttempts = 10
	probeInterval = 6 * time.Second
	probeTimeout  = 5 * time.Second
)

// httpProber polls the health endpoint until it answers 200 or the attempt
// budget runs out. The service needs a moment after rollout before it is
// reachable.
func httpProber(ctx context.Context, url string) error {
	client := &http.Client{Timeout: probeTimeout}
	var lastErr error

	for attempt := 1; attempt <= probeAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(probeInterval):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("failed to build health request: %w", err)
		}
		resp, err := client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		_ = resp.Body.Close()
		if resp.StatusCode == http.StatusOK {
			return nil
		}
		lastErr = fmt.Errorf("health endpoint answered %s", resp.Status)
	}
	return fmt.Errorf("service did not become healthy after %d attempts: %w", probeAttempts, lastErr)
}

// Engine orchestrates validation, the ordered phases, and cleanup against
// one environment.
type Engine struct {
	cfg   *config.Config
	cloud CloudProvisioner
	guard *compliance.Guard
	store *state.Store

	prober HealthProber
	now    func() time.Time

	runState RunState
	outcomes []reconcile.Outcome
}

// NewEngine wires an engine for the given environment.
func NewEngine(cfg *config.Config, cloud CloudProvisioner, guard *compliance.Guard, store *state.Store) *Engine {
	return &Engine{
		cfg:      cfg,
		cloud:    cloud,
		guard:    guard,
		store:    store,
		prober:   httpProber,
		now:      time.Now,
		runState: StateIdle,
	}
}

// State returns the current lifecycle state.
func (e *Engine) State() RunState {
	return e.runState
}

// Options selects what a Run does.
type Options struct {
	// ValidateOnly stops after the compliance report without touching
	// any resource.
	ValidateOnly bool

	// Phases restricts the run to the given phase ordinals, executed in
	// ascending order. Empty means all phases. Preconditions of skipped
	// phases are not re-verified; the operator vouches for them.
	Phases []int
}

// RunResult reports what a run did, including the full compliance report
// and every resource outcome, for operator display.
type RunResult struct {
	Compliance      []compliance.Result
	CompletedPhases []string
	Outcomes        []reconcile.Outcome
}

// Run executes the deployment pipeline. The first error aborts the run;
// already-reconciled resources are left in place so a re-invocation resumes
// where this one stopped.
func (e *Engine) Run(ctx context.Context, opts Options) (*RunResult, error) {
	result := &RunResult{}
	e.outcomes = nil

	e.runState = StateValidating
	slog.Info("validating deployment", "environment", e.cfg.Environment, "region", e.cfg.Region)

	checks, err := e.guard.Evaluate(ctx, compliance.Request{
		Region:                 e.cfg.Region,
		RequestedDiskGB:        int64(e.cfg.VolumeSizeGB),
		AllowExistingInstances: e.cfg.AllowExistingInstances,
	})
	if err != nil {
		e.runState = StateAborted
		return result, fmt.Errorf("compliance evaluation failed: %w", err)
	}
	result.Compliance = checks

	for _, warning := range compliance.Warnings(checks) {
		slog.Warn("compliance warning", "rule", warning.Rule, "detail", warning.Detail)
	}
	if err := compliance.BlockError(checks); err != nil {
		e.runState = StateAborted
		return result, err
	}

	if opts.ValidateOnly {
		e.runState = StateCompleted
		return result, nil
	}

	selected, err := selectPhases(e.phases(), opts.Phases)
	if err != nil {
		e.runState = StateAborted
		return result, err
	}

	e.runState = StateRunning
	for _, phase := range selected {
		slog.Info("phase starting", "ordinal", phase.Ordinal, "name", phase.Name)
		if err := phase.run(ctx); err != nil {
			e.runState = StateAborted
			result.Outcomes = e.outcomes
			return result, fmt.Errorf("phase %s failed: %w", phase.Name, err)
		}
		slog.Info("phase completed", "ordinal", phase.Ordinal, "name", phase.Name)
		result.CompletedPhases = append(result.CompletedPhases, phase.Name)
	}

	e.runState = StateCompleted
	result.Outcomes = e.outcomes
	return result, nil
}

// selectPhases resolves the requested ordinals to phases in ascending
// order. Duplicates collapse; an unknown ordinal is an error.
func selectPhases(all []Phase, ordinals []int) ([]Phase, error) {
	if len(ordinals) == 0 {
		return all, nil
	}

	byOrdinal := make(map[int]Phase, len(all))
	for _, p := range all {
		byOrdinal[p.Ordinal] = p
	}

	seen := make(map[int]bool)
	var selected []Phase
	for _, ordinal := range ordinals {
		if seen[ordinal] {
			continue
		}
		seen[ordinal] = true
		phase, ok := byOrdinal[ordinal]
		if !ok {
			return nil, fmt.Errorf("unknown phase %d: valid phases are 1-%d", ordinal, PhaseCount)
		}
		selected = append(selected, phase)
	}

	sort.Slice(selected, func(i, j int) bool {
		return selected[i].Ordinal < selected[j].Ordinal
	})
	return selected, nil
}

// PhaseNames returns the ordered phase names for operator display.
func (e *Engine) PhaseNames() []string {
	phases := e.phases()
	names := make([]string, len(phases))
	for i, p := range phases {
		names[i] = p.Name
	}
	return names
}
