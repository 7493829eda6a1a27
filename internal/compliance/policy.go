// Package compliance evaluates account state against the deployment policy
// before any resource is created. Hard rule failures block the deployment;
// warnings are surfaced but do not.
package compliance

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed policy.yaml
var defaultPolicy []byte

// Policy holds the tunable limits the guard enforces.
type Policy struct {
	// AllowedRegions is the closed set of regions deployments may target.
	AllowedRegions []string `yaml:"allowed_regions"`

	// MinimalInstanceTypes are the instance types counted by the
	// one-deployment-per-account rule.
	MinimalInstanceTypes []string `yaml:"minimal_instance_types"`

	// StandardVolumeTypes are the volume types counted toward the
	// storage ceiling.
	StandardVolumeTypes []string `yaml:"standard_volume_types"`

	// StorageCeilingGB caps the projected total general purpose volume
	// size in the region. The ceiling is inclusive.
	StorageCeilingGB int64 `yaml:"storage_ceiling_gb"`
}

// LoadPolicy returns the embedded default policy, or the policy parsed from
// path when one is given.
func LoadPolicy(path string) (*Policy, error) {
	data := defaultPolicy
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read policy file: %w", err)
		}
	}

	var policy Policy
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return nil, fmt.Errorf("failed to parse policy: %w", err)
	}
	if len(policy.AllowedRegions) == 0 {
		return nil, fmt.Errorf("policy must allow at least one region")
	}
	if policy.StorageCeilingGB <= 0 {
		return nil, fmt.Errorf("policy storage ceiling must be positive")
	}
	return &policy, nil
}

func (p *Policy) regionAllowed(region string) bool {
	for _, allowed := range p.AllowedRegions {
		if allowed == region {
			return true
		}
	}
	return false
}
