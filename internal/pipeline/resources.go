package pipeline

import (
	"context"

	"github.com/relayops/relayctl/internal/awscloud"
	"github.com/relayops/relayctl/internal/naming"
	"github.com/relayops/relayctl/internal/reconcile"
)

// Descriptor builders. Each binds one resource kind to its deterministic
// name and the provisioner calls that realize it. Descriptors carry no
// state; rebuilding one always yields the same resource identity.

func (e *Engine) networkDescriptor() reconcile.Descriptor {
	name := naming.Network(e.cfg.NamePrefix())
	return reconcile.Descriptor{
		Kind:  reconcile.KindNetwork,
		Name:  name,
		Scope: reconcile.ScopeRegion,
		Exists: func(ctx context.Context) (bool, reconcile.Attributes, error) {
			found, attrs, err := e.cloud.NetworkExists(ctx, name)
			return found, attrs, err
		},
		Create: func(ctx context.Context) (reconcile.Attributes, error) {
			return e.cloud.CreateNetwork(ctx, name, e.cfg.NetworkCIDR, e.cfg.Environment)
		},
		Delete: func(ctx context.Context) error {
			_, err := e.cloud.DeleteNetwork(ctx, name)
			return err
		},
	}
}

func (e *Engine) subnetDescriptor(vpcID string) reconcile.Descriptor {
	name := naming.Subnet(e.cfg.NamePrefix())
	return reconcile.Descriptor{
		Kind:  reconcile.KindSubnet,
		Name:  name,
		Scope: reconcile.ScopeZone,
		Exists: func(ctx context.Context) (bool, reconcile.Attributes, error) {
			found, attrs, err := e.cloud.SubnetExists(ctx, name)
			return found, attrs, err
		},
		Create: func(ctx context.Context) (reconcile.Attributes, error) {
			return e.cloud.CreateSubnet(ctx, name, vpcID, e.cfg.SubnetCIDR, e.cfg.Zone, e.cfg.Environment)
		},
		Delete: func(ctx context.Context) error {
			_, err := e.cloud.DeleteSubnet(ctx, name)
			return err
		},
	}
}

func (e *Engine) firewallDescriptor(vpcID string) reconcile.Descriptor {
	name := naming.FirewallRule(e.cfg.NamePrefix())
	return reconcile.Descriptor{
		Kind:  reconcile.KindFirewallRule,
		Name:  name,
		Scope: reconcile.ScopeRegion,
		Exists: func(ctx context.Context) (bool, reconcile.Attributes, error) {
			found, attrs, err := e.cloud.FirewallRuleExists(ctx, name)
			return found, attrs, err
		},
		Create: func(ctx context.Context) (reconcile.Attributes, error) {
			return e.cloud.CreateFirewallRule(ctx, name, vpcID, e.cfg.NetworkCIDR,
				int32(e.cfg.ServicePort), e.cfg.Environment)
		},
		Delete: func(ctx context.Context) error {
			_, err := e.cloud.DeleteFirewallRule(ctx, name)
			return err
		},
	}
}

func (e *Engine) serviceAccountDescriptor() reconcile.Descriptor {
	prefix := e.cfg.NamePrefix()
	name := naming.ServiceAccount(prefix)
	profile := naming.InstanceProfile(prefix)
	return reconcile.Descriptor{
		Kind:  reconcile.KindServiceAccount,
		Name:  name,
		Scope: reconcile.ScopeGlobal,
		Exists: func(ctx context.Context) (bool, reconcile.Attributes, error) {
			found, attrs, err := e.cloud.ServiceAccountExists(ctx, name)
			return found, attrs, err
		},
		Create: func(ctx context.Context) (reconcile.Attributes, error) {
			return e.cloud.CreateServiceAccount(ctx, name, profile, e.cfg.Environment)
		},
		Delete: func(ctx context.Context) error {
			_, err := e.cloud.DeleteServiceAccount(ctx, name, profile)
			return err
		},
	}
}

func (e *Engine) secretDescriptor() reconcile.Descriptor {
	name := naming.Secret(e.cfg.NamePrefix())
	return reconcile.Descriptor{
		Kind:  reconcile.KindSecret,
		Name:  name,
		Scope: reconcile.ScopeRegion,
		Exists: func(ctx context.Context) (bool, reconcile.Attributes, error) {
			found, attrs, err := e.cloud.SecretExists(ctx, name)
			return found, attrs, err
		},
		Create: func(ctx context.Context) (reconcile.Attributes, error) {
			return e.cloud.CreateSecret(ctx, name, e.cfg.Environment)
		},
		Delete: func(ctx context.Context) error {
			_, err := e.cloud.DeleteSecret(ctx, name)
			return err
		},
	}
}

func (e *Engine) diskDescriptor() reconcile.Descriptor {
	name := naming.Disk(e.cfg.NamePrefix())
	return reconcile.Descriptor{
		Kind:  reconcile.KindDisk,
		Name:  name,
		Scope: reconcile.ScopeZone,
		Exists: func(ctx context.Context) (bool, reconcile.Attributes, error) {
			found, attrs, err := e.cloud.DiskExists(ctx, name)
			return found, attrs, err
		},
		Create: func(ctx context.Context) (reconcile.Attributes, error) {
			return e.cloud.CreateDisk(ctx, name, e.cfg.Zone, e.cfg.VolumeSizeGB, e.cfg.Environment)
		},
		Delete: func(ctx context.Context) error {
			_, err := e.cloud.DeleteDisk(ctx, name)
			return err
		},
	}
}

func (e *Engine) instanceDescriptor(subnetID, firewallID string) reconcile.Descriptor {
	prefix := e.cfg.NamePrefix()
	name := naming.Instance(prefix)
	return reconcile.Descriptor{
		Kind:  reconcile.KindInstance,
		Name:  name,
		Scope: reconcile.ScopeZone,
		Exists: func(ctx context.Context) (bool, reconcile.Attributes, error) {
			found, attrs, err := e.cloud.InstanceExists(ctx, name)
			return found, attrs, err
		},
		Create: func(ctx context.Context) (reconcile.Attributes, error) {
			return e.cloud.CreateInstance(ctx, awscloud.InstanceSpec{
				Name:            name,
				ImageID:         e.cfg.ImageID,
				InstanceType:    e.cfg.InstanceType,
				SubnetID:        subnetID,
				SecurityGroupID: firewallID,
				ProfileName:     naming.InstanceProfile(prefix),
				DiskName:        naming.Disk(prefix),
				Environment:     e.cfg.Environment,
			})
		},
		Delete: func(ctx context.Context) error {
			_, err := e.cloud.DeleteInstance(ctx, name)
			return err
		},
	}
}

func (e *Engine) alertPolicyDescriptor() reconcile.Descriptor {
	name := naming.AlertPolicy(e.cfg.NamePrefix())
	return reconcile.Descriptor{
		Kind:  reconcile.KindAlertPolicy,
		Name:  name,
		Scope: reconcile.ScopeRegion,
		Exists: func(ctx context.Context) (bool, reconcile.Attributes, error) {
			found, attrs, err := e.cloud.AlertPolicyExists(ctx, name)
			return found, attrs, err
		},
		Create: func(ctx context.Context) (reconcile.Attributes, error) {
			return e.cloud.CreateAlertPolicy(ctx, name)
		},
		Delete: func(ctx context.Context) error {
			_, err := e.cloud.DeleteAlertPolicy(ctx, name)
			return err
		},
	}
}

func (e *Engine) dashboardDescriptor(instanceID string) reconcile.Descriptor {
	name := naming.Dashboard(e.cfg.NamePrefix())
	return reconcile.Descriptor{
		Kind:  reconcile.KindDashboard,
		Name:  name,
		Scope: reconcile.ScopeRegion,
		Exists: func(ctx context.Context) (bool, reconcile.Attributes, error) {
			found, attrs, err := e.cloud.DashboardExists(ctx, name)
			return found, attrs, err
		},
		Create: func(ctx context.Context) (reconcile.Attributes, error) {
			return e.cloud.CreateDashboard(ctx, name, instanceID)
		},
		Delete: func(ctx context.Context) error {
			_, err := e.cloud.DeleteDashboard(ctx, name)
			return err
		},
	}
}

func (e *Engine) logMetricDescriptor() reconcile.Descriptor {
	prefix := e.cfg.NamePrefix()
	logGroup := naming.LogGroup(prefix)
	filterName := naming.LogMetric(prefix)
	return reconcile.Descriptor{
		Kind:  reconcile.KindLogMetric,
		Name:  filterName,
		Scope: reconcile.ScopeRegion,
		Exists: func(ctx context.Context) (bool, reconcile.Attributes, error) {
			found, attrs, err := e.cloud.LogMetricExists(ctx, logGroup, filterName)
			return found, attrs, err
		},
		Create: func(ctx context.Context) (reconcile.Attributes, error) {
			return e.cloud.CreateLogMetric(ctx, logGroup, filterName)
		},
		Delete: func(ctx context.Context) error {
			_, err := e.cloud.DeleteLogMetric(ctx, logGroup, filterName)
			return err
		},
	}
}

func (e *Engine) budgetDescriptor() reconcile.Descriptor {
	name := naming.Budget(e.cfg.NamePrefix())
	return reconcile.Descriptor{
		Kind:  reconcile.KindBudget,
		Name:  name,
		Scope: reconcile.ScopeGlobal,
		Exists: func(ctx context.Context) (bool, reconcile.Attributes, error) {
			found, attrs, err := e.cloud.BudgetExists(ctx, name)
			return found, attrs, err
		},
		Create: func(ctx context.Context) (reconcile.Attributes, error) {
			return e.cloud.CreateBudget(ctx, name, float64(e.cfg.MonthlyBudgetUSD))
		},
		Delete: func(ctx context.Context) error {
			_, err := e.cloud.DeleteBudget(ctx, name)
			return err
		},
	}
}
