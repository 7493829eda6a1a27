// Package pipeline drives the six-phase deployment: compliance validation,
// ordered phase execution over idempotent resource reconciliation, and the
// reverse-order cleanup engine. It owns the run state machine; the cloud
// calls themselves live in awscloud.
package pipeline

import (
	"context"

	"github.com/relayops/relayctl/internal/awscloud"
)

// CloudProvisioner is the full cloud surface the phases and the cleanup
// engine use. It is satisfied by *awscloud.Cloud and faked in tests.
type CloudProvisioner interface {
	Identity() (accountID, region string)

	NetworkExists(ctx context.Context, name string) (bool, map[string]string, error)
	CreateNetwork(ctx context.Context, name, cidr, environment string) (map[string]string, error)
	DeleteNetwork(ctx context.Context, name string) (bool, error)

	SubnetExists(ctx context.Context, name string) (bool, map[string]string, error)
	CreateSubnet(ctx context.Context, name, vpcID, cidr, zone, environment string) (map[string]string, error)
	DeleteSubnet(ctx context.Context, name string) (bool, error)

	FirewallRuleExists(ctx context.Context, name string) (bool, map[string]string, error)
	CreateFirewallRule(ctx context.Context, name, vpcID, vpcCIDR string, servicePort int32, environment string) (map[string]string, error)
	DeleteFirewallRule(ctx context.Context, name string) (bool, error)

	ServiceAccountExists(ctx context.Context, name string) (bool, map[string]string, error)
	CreateServiceAccount(ctx context.Context, roleName, profileName, environment string) (map[string]string, error)
	AttachRuntimePolicy(ctx context.Context, roleName, secretARN, logGroupARN string) error
	DeleteServiceAccount(ctx context.Context, roleName, profileName string) (bool, error)

	SecretExists(ctx context.Context, name string) (bool, map[string]string, error)
	CreateSecret(ctx context.Context, name, environment string) (map[string]string, error)
	StoreCredential(ctx context.Context, name, value string) error
	ReadCredential(ctx context.Context, name string) (string, bool, error)
	GrantSecretAccess(ctx context.Context, name, roleARN string) error
	DeleteSecret(ctx context.Context, name string) (bool, error)

	DiskExists(ctx context.Context, name string) (bool, map[string]string, error)
	CreateDisk(ctx context.Context, name, zone string, sizeGB int32, environment string) (map[string]string, error)
	DeleteDisk(ctx context.Context, name string) (bool, error)

	InstanceExists(ctx context.Context, name string) (bool, map[string]string, error)
	CreateInstance(ctx context.Context, spec awscloud.InstanceSpec) (map[string]string, error)
	DeleteInstance(ctx context.Context, name string) (bool, error)

	AlertPolicyExists(ctx context.Context, name string) (bool, map[string]string, error)
	CreateAlertPolicy(ctx context.Context, name string) (map[string]string, error)
	DeleteAlertPolicy(ctx context.Context, name string) (bool, error)

	DashboardExists(ctx context.Context, name string) (bool, map[string]string, error)
	CreateDashboard(ctx context.Context, name, instanceID string) (map[string]string, error)
	DeleteDashboard(ctx context.Context, name string) (bool, error)

	LogMetricExists(ctx context.Context, logGroup, filterName string) (bool, map[string]string, error)
	CreateLogMetric(ctx context.Context, logGroup, filterName string) (map[string]string, error)
	DeleteLogMetric(ctx context.Context, logGroup, filterName string) (bool, error)

	BudgetExists(ctx context.Context, name string) (bool, map[string]string, error)
	CreateBudget(ctx context.Context, name string, monthlyUSD float64) (map[string]string, error)
	DeleteBudget(ctx context.Context, name string) (bool, error)

	RunCommands(ctx context.Context, instanceID string, commands []string) error
}
