package compliance

import (
	"context"
	"fmt"
	"strings"

	relayerrors "github.com/relayops/relayctl/internal/errors"
)

// Severity classifies a rule result.
type Severity string

const (
	// SeverityHard marks rules whose failure blocks the deployment.
	SeverityHard Severity = "HARD"
	// SeverityWarn marks advisory rules. Failures are reported but do
	// not block.
	SeverityWarn Severity = "WARN"
)

// Rule names, stable for logs and operator output.
const (
	RuleRegionAllowed  = "region-allowed"
	RuleSingleInstance = "no-existing-minimal-instances"
	RuleStorageCeiling = "storage-ceiling"
	RuleReservedIPs    = "no-reserved-addresses"
	RuleBudgetLinked   = "budget-linked"
)

// Result is the outcome of one rule evaluation.
type Result struct {
	Rule     string
	Severity Severity
	Passed   bool
	Detail   string
}

// Inspector answers the account-state questions the guard asks. It is
// satisfied by awscloud.Cloud.
type Inspector interface {
	CountInstancesOfTypes(ctx context.Context, instanceTypes []string) (int, error)
	StandardVolumeGB(ctx context.Context, volumeTypes []string) (int64, error)
	ReservedAddresses(ctx context.Context) ([]string, error)
	HasBudget(ctx context.Context) (bool, error)
}

// Request carries the deployment parameters the rules judge.
type Request struct {
	Region          string
	RequestedDiskGB int64

	// AllowExistingInstances suppresses the minimal-instance rule for
	// accounts that intentionally run more than one deployment.
	AllowExistingInstances bool
}

// Guard evaluates the policy against live account state.
type Guard struct {
	policy    *Policy
	inspector Inspector
}

// NewGuard builds a guard from a loaded policy and an account inspector.
func NewGuard(policy *Policy, inspector Inspector) *Guard {
	return &Guard{policy: policy, inspector: inspector}
}

// Evaluate runs every rule and returns all results, passed and failed.
// Inspection errors abort evaluation; a rule is never silently skipped.
func (g *Guard) Evaluate(ctx context.Context, req Request) ([]Result, error) {
	results := make([]Result, 0, 5)

	results = append(results, g.checkRegion(req.Region))

	instances, err := g.checkInstances(ctx, req.AllowExistingInstances)
	if err != nil {
		return nil, err
	}
	results = append(results, instances)

	storage, err := g.checkStorage(ctx, req.RequestedDiskGB)
	if err != nil {
		return nil, err
	}
	results = append(results, storage)

	addresses, err := g.checkReservedAddresses(ctx)
	if err != nil {
		return nil, err
	}
	results = append(results, addresses)

	budget, err := g.checkBudget(ctx)
	if err != nil {
		return nil, err
	}
	results = append(results, budget)

	return results, nil
}

// HardFailures filters the results down to blocking failures.
func HardFailures(results []Result) []Result {
	var failures []Result
	for _, r := range results {
		if !r.Passed && r.Severity == SeverityHard {
			failures = append(failures, r)
		}
	}
	return failures
}

// Warnings filters the results down to advisory failures.
func Warnings(results []Result) []Result {
	var warnings []Result
	for _, r := range results {
		if !r.Passed && r.Severity == SeverityWarn {
			warnings = append(warnings, r)
		}
	}
	return warnings
}

// BlockError converts hard failures into a compliance error, or returns nil
// when the deployment may proceed.
func BlockError(results []Result) error {
	failures := HardFailures(results)
	if len(failures) == 0 {
		return nil
	}
	details := make([]string, len(failures))
	for i, f := range failures {
		details[i] = fmt.Sprintf("%s: %s", f.Rule, f.Detail)
	}
	return relayerrors.NewCompliance(strings.Join(details, "; "), nil)
}

func (g *Guard) checkRegion(region string) Result {
	r := Result{Rule: RuleRegionAllowed, Severity: SeverityHard}
	if g.policy.regionAllowed(region) {
		r.Passed = true
		r.Detail = fmt.Sprintf("region %s is allowed", region)
		return r
	}
	r.Detail = fmt.Sprintf("region %s is not in the allowed set %v", region, g.policy.AllowedRegions)
	return r
}

func (g *Guard) checkInstances(ctx context.Context, override bool) (Result, error) {
	r := Result{Rule: RuleSingleInstance, Severity: SeverityHard}
	count, err := g.inspector.CountInstancesOfTypes(ctx, g.policy.MinimalInstanceTypes)
	if err != nil {
		return r, fmt.Errorf("instance inspection failed: %w", err)
	}
	switch {
	case count == 0:
		r.Passed = true
		r.Detail = "no existing minimal-tier instances"
	case override:
		r.Passed = true
		r.Detail = fmt.Sprintf("%d existing minimal-tier instance(s), allowed by override", count)
	default:
		r.Detail = fmt.Sprintf("%d existing minimal-tier instance(s); pass --allow-existing-instances to deploy anyway", count)
	}
	return r, nil
}

func (g *Guard) checkStorage(ctx context.Context, requestedGB int64) (Result, error) {
	r := Result{Rule: RuleStorageCeiling, Severity: SeverityHard}
	existing, err := g.inspector.StandardVolumeGB(ctx, g.policy.StandardVolumeTypes)
	if err != nil {
		return r, fmt.Errorf("volume inspection failed: %w", err)
	}
	projected := existing + requestedGB
	// The ceiling is inclusive: a projected total equal to the ceiling
	// passes.
	if projected <= g.policy.StorageCeilingGB {
		r.Passed = true
		r.Detail = fmt.Sprintf("projected storage %dGB within ceiling %dGB", projected, g.policy.StorageCeilingGB)
		return r, nil
	}
	r.Detail = fmt.Sprintf("projected storage %dGB (existing %dGB + requested %dGB) exceeds ceiling %dGB",
		projected, existing, requestedGB, g.policy.StorageCeilingGB)
	return r, nil
}

func (g *Guard) checkReservedAddresses(ctx context.Context) (Result, error) {
	r := Result{Rule: RuleReservedIPs, Severity: SeverityWarn}
	addresses, err := g.inspector.ReservedAddresses(ctx)
	if err != nil {
		return r, fmt.Errorf("address inspection failed: %w", err)
	}
	if len(addresses) == 0 {
		r.Passed = true
		r.Detail = "no reserved external addresses"
		return r, nil
	}
	r.Detail = fmt.Sprintf("%d reserved external address(es) accruing charges: %s",
		len(addresses), strings.Join(addresses, ", "))
	return r, nil
}

func (g *Guard) checkBudget(ctx context.Context) (Result, error) {
	r := Result{Rule: RuleBudgetLinked, Severity: SeverityWarn}
	has, err := g.inspector.HasBudget(ctx)
	if err != nil {
		return r, fmt.Errorf("budget inspection failed: %w", err)
	}
	if has {
		r.Passed = true
		r.Detail = "account has a budget configured"
		return r, nil
	}
	r.Detail = "account has no budget configured; costs are uncapped"
	return r, nil
}
