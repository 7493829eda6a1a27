package pipeline

import (
	"context"
	"fmt"

	"github.com/relayops/relayctl/internal/awscloud"
)

// fakeCloud is an in-memory CloudProvisioner. Resources live in a map keyed
// by kind:name; create and delete calls are recorded in order.
type fakeCloud struct {
	existing map[string]map[string]string

	creates []string
	deletes []string

	failCreate map[string]error
	failDelete map[string]error

	credentials map[string]string
	grants      []string
	policies    []string
	commands    [][]string
	commandErr  error
}

func newFakeCloud() *fakeCloud {
	return &fakeCloud{
		existing:    make(map[string]map[string]string),
		failCreate:  make(map[string]error),
		failDelete:  make(map[string]error),
		credentials: make(map[string]string),
	}
}

func rkey(kind, name string) string {
	return kind + ":" + name
}

func (f *fakeCloud) Identity() (string, string) {
	return "123456789012", "us-east-1"
}

func (f *fakeCloud) exists(kind, name string) (bool, map[string]string, error) {
	attrs, ok := f.existing[rkey(kind, name)]
	return ok, attrs, nil
}

func (f *fakeCloud) create(kind, name string, attrs map[string]string) (map[string]string, error) {
	key := rkey(kind, name)
	if err := f.failCreate[key]; err != nil {
		return nil, err
	}
	f.existing[key] = attrs
	f.creates = append(f.creates, key)
	return attrs, nil
}

func (f *fakeCloud) remove(kind, name string) (bool, error) {
	key := rkey(kind, name)
	if err := f.failDelete[key]; err != nil {
		return false, err
	}
	_, ok := f.existing[key]
	delete(f.existing, key)
	f.deletes = append(f.deletes, key)
	return ok, nil
}

func (f *fakeCloud) NetworkExists(_ context.Context, name string) (bool, map[string]string, error) {
	return f.exists("network", name)
}

func (f *fakeCloud) CreateNetwork(_ context.Context, name, cidr, _ string) (map[string]string, error) {
	return f.create("network", name, map[string]string{"id": "vpc-0001", "cidr": cidr})
}

func (f *fakeCloud) DeleteNetwork(_ context.Context, name string) (bool, error) {
	return f.remove("network", name)
}

func (f *fakeCloud) SubnetExists(_ context.Context, name string) (bool, map[string]string, error) {
	return f.exists("subnet", name)
}

func (f *fakeCloud) CreateSubnet(_ context.Context, name, vpcID, cidr, zone, _ string) (map[string]string, error) {
	if vpcID == "" {
		return nil, fmt.Errorf("subnet create requires a vpc id")
	}
	return f.create("subnet", name, map[string]string{"id": "subnet-0001", "cidr": cidr, "zone": zone})
}

func (f *fakeCloud) DeleteSubnet(_ context.Context, name string) (bool, error) {
	return f.remove("subnet", name)
}

func (f *fakeCloud) FirewallRuleExists(_ context.Context, name string) (bool, map[string]string, error) {
	return f.exists("firewall-rule", name)
}

func (f *fakeCloud) CreateFirewallRule(_ context.Context, name, vpcID, _ string, _ int32, _ string) (map[string]string, error) {
	if vpcID == "" {
		return nil, fmt.Errorf("firewall create requires a vpc id")
	}
	return f.create("firewall-rule", name, map[string]string{"id": "sg-0001"})
}

func (f *fakeCloud) DeleteFirewallRule(_ context.Context, name string) (bool, error) {
	return f.remove("firewall-rule", name)
}

func (f *fakeCloud) ServiceAccountExists(_ context.Context, name string) (bool, map[string]string, error) {
	return f.exists("service-account", name)
}

func (f *fakeCloud) CreateServiceAccount(_ context.Context, roleName, _, _ string) (map[string]string, error) {
	return f.create("service-account", roleName,
		map[string]string{"arn": "arn:aws:iam::123456789012:role/" + roleName})
}

func (f *fakeCloud) AttachRuntimePolicy(_ context.Context, roleName, secretARN, logGroupARN string) error {
	f.policies = append(f.policies, fmt.Sprintf("%s|%s|%s", roleName, secretARN, logGroupARN))
	return nil
}

func (f *fakeCloud) DeleteServiceAccount(_ context.Context, roleName, _ string) (bool, error) {
	return f.remove("service-account", roleName)
}

func (f *fakeCloud) SecretExists(_ context.Context, name string) (bool, map[string]string, error) {
	return f.exists("secret", name)
}

func (f *fakeCloud) CreateSecret(_ context.Context, name, _ string) (map[string]string, error) {
	return f.create("secret", name,
		map[string]string{"arn": "arn:aws:secretsmanager:us-east-1:123456789012:secret:" + name})
}

func (f *fakeCloud) ReadCredential(_ context.Context, name string) (string, bool, error) {
	value, ok := f.credentials[name]
	return value, ok, nil
}

func (f *fakeCloud) StoreCredential(_ context.Context, name, value string) error {
	f.credentials[name] = value
	return nil
}

func (f *fakeCloud) GrantSecretAccess(_ context.Context, name, roleARN string) error {
	f.grants = append(f.grants, name+"|"+roleARN)
	return nil
}

func (f *fakeCloud) DeleteSecret(_ context.Context, name string) (bool, error) {
	return f.remove("secret", name)
}

func (f *fakeCloud) DiskExists(_ context.Context, name string) (bool, map[string]string, error) {
	return f.exists("disk", name)
}

func (f *fakeCloud) CreateDisk(_ context.Context, name, zone string, sizeGB int32, _ string) (map[string]string, error) {
	return f.create("disk", name,
		map[string]string{"id": "vol-0001", "zone": zone, "sizeGB": fmt.Sprintf("%d", sizeGB)})
}

func (f *fakeCloud) DeleteDisk(_ context.Context, name string) (bool, error) {
	return f.remove("disk", name)
}

func (f *fakeCloud) InstanceExists(_ context.Context, name string) (bool, map[string]string, error) {
	return f.exists("instance", name)
}

func (f *fakeCloud) CreateInstance(_ context.Context, spec awscloud.InstanceSpec) (map[string]string, error) {
	if spec.SubnetID == "" || spec.SecurityGroupID == "" {
		return nil, fmt.Errorf("instance create requires subnet and security group ids")
	}
	return f.create("instance", spec.Name, map[string]string{
		"id":         "i-0001",
		"zone":       "us-east-1a",
		"internalIP": "10.84.1.10",
		"externalIP": "203.0.113.7",
		"type":       spec.InstanceType,
	})
}

func (f *fakeCloud) DeleteInstance(_ context.Context, name string) (bool, error) {
	return f.remove("instance", name)
}

func (f *fakeCloud) AlertPolicyExists(_ context.Context, name string) (bool, map[string]string, error) {
	return f.exists("alert-policy", name)
}

func (f *fakeCloud) CreateAlertPolicy(_ context.Context, name string) (map[string]string, error) {
	return f.create("alert-policy", name, map[string]string{"name": name})
}

func (f *fakeCloud) DeleteAlertPolicy(_ context.Context, name string) (bool, error) {
	return f.remove("alert-policy", name)
}

func (f *fakeCloud) DashboardExists(_ context.Context, name string) (bool, map[string]string, error) {
	return f.exists("dashboard", name)
}

func (f *fakeCloud) CreateDashboard(_ context.Context, name, instanceID string) (map[string]string, error) {
	if instanceID == "" {
		return nil, fmt.Errorf("dashboard create requires an instance id")
	}
	return f.create("dashboard", name, map[string]string{"name": name})
}

func (f *fakeCloud) DeleteDashboard(_ context.Context, name string) (bool, error) {
	return f.remove("dashboard", name)
}

func (f *fakeCloud) LogMetricExists(_ context.Context, _, filterName string) (bool, map[string]string, error) {
	return f.exists("log-metric", filterName)
}

func (f *fakeCloud) CreateLogMetric(_ context.Context, logGroup, filterName string) (map[string]string, error) {
	return f.create("log-metric", filterName, map[string]string{"logGroup": logGroup})
}

func (f *fakeCloud) DeleteLogMetric(_ context.Context, _, filterName string) (bool, error) {
	return f.remove("log-metric", filterName)
}

func (f *fakeCloud) BudgetExists(_ context.Context, name string) (bool, map[string]string, error) {
	return f.exists("budget", name)
}

func (f *fakeCloud) CreateBudget(_ context.Context, name string, monthlyUSD float64) (map[string]string, error) {
	return f.create("budget", name, map[string]string{"name": name, "limitUSD": fmt.Sprintf("%.2f", monthlyUSD)})
}

func (f *fakeCloud) DeleteBudget(_ context.Context, name string) (bool, error) {
	return f.remove("budget", name)
}

func (f *fakeCloud) RunCommands(_ context.Context, instanceID string, commands []string) error {
	if f.commandErr != nil {
		return f.commandErr
	}
	f.commands = append(f.commands, append([]string{instanceID}, commands...))
	return nil
}
