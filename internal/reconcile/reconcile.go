// Package reconcile implements the check-then-create primitive every phase
// uses to make a single named cloud resource converge to its desired state.
// Calling Reconcile N times for the same descriptor produces exactly one
// resource: if the existence predicate reports present the call is a no-op.
// There is no update-in-place; configuration drift is resolved by manual
// deletion and recreation.
package reconcile

import (
	"context"
	"log/slog"

	relayerrors "github.com/relayops/relayctl/internal/errors"
)

// Kind is the resource class a descriptor manages.
type Kind string

const (
	KindNetwork        Kind = "network"
	KindSubnet         Kind = "subnet"
	KindFirewallRule   Kind = "firewall-rule"
	KindServiceAccount Kind = "service-account"
	KindDisk           Kind = "disk"
	KindInstance       Kind = "instance"
	KindSecret         Kind = "secret"
	KindAlertPolicy    Kind = "alert-policy"
	KindDashboard      Kind = "dashboard"
	KindLogMetric      Kind = "log-metric"
	KindBudget         Kind = "budget"
)

// Scope is the cloud scope a resource lives in.
type Scope string

const (
	ScopeGlobal Scope = "global"
	ScopeRegion Scope = "region"
	ScopeZone   Scope = "zone"
)

// Attributes are the generated properties of a live resource (assigned
// identifiers, addresses). They are the only values phases persist to the
// deployment state.
type Attributes map[string]string

// Descriptor is a stateless definition of one named cloud resource. The
// existence predicate is a read-only query scoped to the descriptor's name;
// create and delete are the only mutations.
type Descriptor struct {
	Kind  Kind
	Name  string
	Scope Scope

	// Exists reports whether the resource is present and, if so, its
	// generated attributes.
	Exists func(ctx context.Context) (bool, Attributes, error)
	// Create provisions the resource and returns its generated attributes.
	Create func(ctx context.Context) (Attributes, error)
	// Delete removes the resource. Deleting an absent resource is the
	// cloud API's problem; callers check Exists first.
	Delete func(ctx context.Context) error
}

// Status is the outcome class of one reconciliation.
type Status string

const (
	StatusCreated       Status = "created"
	StatusAlreadyExists Status = "already-exists"
	StatusFailed        Status = "failed"
)

// Outcome reports what one Reconcile call did.
type Outcome struct {
	Kind       Kind
	Name       string
	Status     Status
	Attributes Attributes
}

// Reconcile makes the described resource exist. A create failure is
// surfaced as a reconciliation error and is never retried automatically;
// re-invoking the pipeline is safe because of the idempotency guarantee.
func Reconcile(ctx context.Context, d Descriptor) (Outcome, error) {
	found, attrs, err := d.Exists(ctx)
	if err != nil {
		return Outcome{Kind: d.Kind, Name: d.Name, Status: StatusFailed},
			relayerrors.NewReconciliation(d.Name, "existence check failed", err)
	}

	if found {
		slog.Debug("resource already exists", "kind", d.Kind, "name", d.Name)
		return Outcome{Kind: d.Kind, Name: d.Name, Status: StatusAlreadyExists, Attributes: attrs}, nil
	}

	slog.Info("creating resource", "kind", d.Kind, "name", d.Name, "scope", d.Scope)
	attrs, err = d.Create(ctx)
	if err != nil {
		return Outcome{Kind: d.Kind, Name: d.Name, Status: StatusFailed},
			relayerrors.NewReconciliation(d.Name, "create failed", err)
	}

	return Outcome{Kind: d.Kind, Name: d.Name, Status: StatusCreated, Attributes: attrs}, nil
}

// Remove deletes the described resource if it exists. It returns whether
// the resource was present before the call.
func Remove(ctx context.Context, d Descriptor) (bool, error) {
	found, _, err := d.Exists(ctx)
	if err != nil {
		return false, relayerrors.NewReconciliation(d.Name, "existence check failed", err)
	}
	if !found {
		return false, nil
	}

	slog.Info("deleting resource", "kind", d.Kind, "name", d.Name)
	if err := d.Delete(ctx); err != nil {
		return true, relayerrors.NewReconciliation(d.Name, "delete failed", err)
	}
	return true, nil
}
