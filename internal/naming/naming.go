// Package naming derives the deterministic identifiers for every cloud
// resource relayctl manages. All resources follow consistent naming
// patterns so that re-running derivation always yields the same name;
// this is what makes check-then-create reconciliation idempotent without
// a separate mapping table.
package naming

import "fmt"

// Prefix returns the project-scoped prefix for an environment.
func Prefix(env string) string {
	return fmt.Sprintf("relay-%s", env)
}

func Network(prefix string) string {
	return fmt.Sprintf("%s-vpc", prefix)
}

func Subnet(prefix string) string {
	return fmt.Sprintf("%s-subnet", prefix)
}

func FirewallRule(prefix string) string {
	return fmt.Sprintf("%s-fw", prefix)
}

func ServiceAccount(prefix string) string {
	return fmt.Sprintf("%s-svc", prefix)
}

func InstanceProfile(prefix string) string {
	return fmt.Sprintf("%s-svc-profile", prefix)
}

func Disk(prefix string) string {
	return fmt.Sprintf("%s-data", prefix)
}

func Instance(prefix string) string {
	return fmt.Sprintf("%s-relay", prefix)
}

func Secret(prefix string) string {
	return fmt.Sprintf("%s-relay-credential", prefix)
}

func AlertPolicy(prefix string) string {
	return fmt.Sprintf("%s-relay-errors", prefix)
}

func Dashboard(prefix string) string {
	return fmt.Sprintf("%s-relay", prefix)
}

func LogGroup(prefix string) string {
	return fmt.Sprintf("/relay/%s/service", prefix)
}

func LogMetric(prefix string) string {
	return fmt.Sprintf("%s-relay-5xx", prefix)
}

func Budget(prefix string) string {
	return fmt.Sprintf("%s-monthly", prefix)
}
