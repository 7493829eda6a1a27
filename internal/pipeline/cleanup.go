package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/relayops/relayctl/internal/reconcile"
)

// CleanupOptions selects how a cleanup runs.
type CleanupOptions struct {
	// DryRun probes every managed resource and reports what would be
	// deleted without deleting anything.
	DryRun bool
}

// CleanupAction records what happened to one resource during cleanup.
type CleanupAction struct {
	Kind    reconcile.Kind
	Name    string
	Present bool
	Removed bool
	Err     error
}

// CleanupReport is the aggregate result of a cleanup run. Cleanup is
// best-effort: individual failures become warnings and the engine moves on
// to the next resource.
type CleanupReport struct {
	Actions      []CleanupAction
	Warnings     []string
	Remaining    []string
	StateRemoved bool
}

// cleanupOrder returns the managed resources in reverse dependency order:
// compute first so nothing holds the network, then network plumbing, then
// identity and observability, budget last.
func (e *Engine) cleanupOrder() []reconcile.Descriptor {
	return []reconcile.Descriptor{
		e.instanceDescriptor("", ""),
		e.diskDescriptor(),
		e.firewallDescriptor(""),
		e.subnetDescriptor(""),
		e.networkDescriptor(),
		e.serviceAccountDescriptor(),
		e.secretDescriptor(),
		e.alertPolicyDescriptor(),
		e.dashboardDescriptor(""),
		e.logMetricDescriptor(),
		e.budgetDescriptor(),
	}
}

// Cleanup removes every managed resource of the environment. Deletion is
// best-effort; each failure is recorded as a warning and the remaining
// resources are still attempted. State files are removed last, and only
// when the verification pass confirms nothing is left.
func (e *Engine) Cleanup(ctx context.Context, opts CleanupOptions) (*CleanupReport, error) {
	report := &CleanupReport{}
	order := e.cleanupOrder()

	if opts.DryRun {
		for _, d := range order {
			present, _, err := d.Exists(ctx)
			action := CleanupAction{Kind: d.Kind, Name: d.Name, Present: present, Err: err}
			if err != nil {
				report.Warnings = append(report.Warnings,
					fmt.Sprintf("%s %s: existence check failed: %v", d.Kind, d.Name, err))
			}
			report.Actions = append(report.Actions, action)
		}
		return report, nil
	}

	e.runState = StateRunning
	for _, d := range order {
		present, err := reconcile.Remove(ctx, d)
		action := CleanupAction{Kind: d.Kind, Name: d.Name, Present: present, Removed: present && err == nil, Err: err}
		if err != nil {
			slog.Warn("cleanup step failed", "kind", d.Kind, "name", d.Name, "error", err)
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("%s %s: %v", d.Kind, d.Name, err))
		}
		report.Actions = append(report.Actions, action)
	}

	// Verification pass: confirm nothing managed is still standing.
	for _, d := range order {
		present, _, err := d.Exists(ctx)
		if err != nil {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("%s %s: verification failed: %v", d.Kind, d.Name, err))
			continue
		}
		if present {
			report.Remaining = append(report.Remaining,
				fmt.Sprintf("%s %s", d.Kind, d.Name))
		}
	}

	// The state files are the map back to any surviving resources, so
	// they are only removed once the environment is verifiably empty.
	if len(report.Remaining) == 0 {
		if err := e.store.Delete(); err != nil {
			e.runState = StateAborted
			return report, fmt.Errorf("failed to remove state files: %w", err)
		}
		report.StateRemoved = true
	} else {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("%d resource(s) still present; state files kept for retry", len(report.Remaining)))
	}

	e.runState = StateCompleted
	return report, nil
}
