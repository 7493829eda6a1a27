// Package state persists the deployment records that one phase writes and
// later phases read. Records are flat key=value text files, one per state
// category, so an operator can inspect or hand-edit them between phases.
// Only the cleanup engine is authorized to delete them.
package state

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	relayerrors "github.com/relayops/relayctl/internal/errors"
)

// Key identifies one typed record field of the deployment state. Keys are
// namespaced by category: everything before the first dot selects the file
// the record lives in.
type Key string

// Declared state keys. Phases declare their pre- and postconditions as
// subsets of these; no other keys exist.
const (
	KeyNetworkID  Key = "network.id"
	KeySubnetID   Key = "network.subnetId"
	KeyFirewallID Key = "network.firewallId"

	KeyServiceAccountARN Key = "credential.serviceAccountArn"
	KeySecretName        Key = "credential.secretName"
	KeySecretARN         Key = "credential.secretArn"

	KeyInstanceID      Key = "instance.id"
	KeyInstanceName    Key = "instance.name"
	KeyInstanceZone    Key = "instance.zone"
	KeyInternalAddress Key = "instance.internalAddress"
	KeyExternalAddress Key = "instance.externalAddress"

	KeyDeployedAt Key = "report.deployedAt"
	KeyServiceURL Key = "report.serviceUrl"
)

// File names per state category. Network and instance identity share one
// file; the credential pointer lives in its own file with restrictive
// permissions.
const (
	identityFile   = "identity.state"
	credentialFile = "credential.state"
	reportFile     = "report.state"

	filePerm       = os.FileMode(0o644)
	credentialPerm = os.FileMode(0o600)
	dirPerm        = os.FileMode(0o755)
)

// producers maps each key to the phase that writes it, so a failed
// precondition check can tell the operator which phase to run.
var producers = map[Key]string{
	KeyNetworkID:         "base-network",
	KeySubnetID:          "base-network",
	KeyFirewallID:        "base-network",
	KeyServiceAccountARN: "identity",
	KeySecretName:        "identity",
	KeySecretARN:         "identity",
	KeyInstanceID:        "compute",
	KeyInstanceName:      "compute",
	KeyInstanceZone:      "compute",
	KeyInternalAddress:   "compute",
	KeyExternalAddress:   "compute",
	KeyDeployedAt:        "service-rollout",
	KeyServiceURL:        "service-rollout",
}

// Producer returns the name of the phase that produces the given key.
func Producer(key Key) string {
	return producers[key]
}

func fileFor(key Key) (name string, perm os.FileMode) {
	switch strings.SplitN(string(key), ".", 2)[0] {
	case "credential":
		return credentialFile, credentialPerm
	case "report":
		return reportFile, filePerm
	default:
		return identityFile, filePerm
	}
}

// Store reads and writes deployment state files under a per-environment
// directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created lazily
// on first write.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory holding the state files.
func (s *Store) Dir() string {
	return s.dir
}

// Write merges the given records into their category files. Existing keys
// keep their value unless the record overwrites them.
func (s *Store) Write(records map[Key]string) error {
	if len(records) == 0 {
		return nil
	}

	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	// Group by destination file so each file is rewritten once.
	byFile := make(map[string]map[Key]string)
	perms := make(map[string]os.FileMode)
	for key, value := range records {
		name, perm := fileFor(key)
		if byFile[name] == nil {
			byFile[name] = make(map[Key]string)
		}
		byFile[name][key] = value
		perms[name] = perm
	}

	for name, updates := range byFile {
		path := filepath.Join(s.dir, name)
		existing, err := readFile(path)
		if err != nil {
			return err
		}
		for k, v := range updates {
			existing[k] = v
		}
		if err := writeFile(path, existing, perms[name]); err != nil {
			return err
		}
	}

	return nil
}

// Read returns the value for key. A missing key is a MissingState error
// naming the phase whose completion would have produced it.
func (s *Store) Read(key Key) (string, error) {
	value, ok, err := s.Lookup(key)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", relayerrors.NewMissingState(string(key), Producer(key))
	}
	return value, nil
}

// Lookup returns the value for key and whether it is present. Unlike Read,
// absence is not an error.
func (s *Store) Lookup(key Key) (string, bool, error) {
	name, _ := fileFor(key)
	records, err := readFile(filepath.Join(s.dir, name))
	if err != nil {
		return "", false, err
	}
	value, ok := records[key]
	return value, ok, nil
}

// Has reports whether all given keys are present.
func (s *Store) Has(keys ...Key) (bool, error) {
	for _, key := range keys {
		_, ok, err := s.Lookup(key)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// Snapshot returns all persisted records across every category file.
func (s *Store) Snapshot() (map[Key]string, error) {
	all := make(map[Key]string)
	for _, name := range []string{identityFile, credentialFile, reportFile} {
		records, err := readFile(filepath.Join(s.dir, name))
		if err != nil {
			return nil, err
		}
		for k, v := range records {
			all[k] = v
		}
	}
	return all, nil
}

// Delete removes all state files. Reserved for the cleanup engine.
func (s *Store) Delete() error {
	for _, name := range []string{identityFile, credentialFile, reportFile} {
		path := filepath.Join(s.dir, name)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove state file %s: %w", path, err)
		}
	}
	return nil
}

func readFile(path string) (map[Key]string, error) {
	records := make(map[Key]string)

	data, err := os.ReadFile(path) //nolint:gosec // path is under the operator's state dir
	if err != nil {
		if os.IsNotExist(err) {
			return records, nil
		}
		return nil, fmt.Errorf("failed to read state file %s: %w", path, err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed state line in %s: %q", path, line)
		}
		records[Key(parts[0])] = parts[1]
	}

	return records, nil
}

func writeFile(path string, records map[Key]string, perm os.FileMode) error {
	keys := make([]string, 0, len(records))
	for k := range records {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s=%s\n", k, records[Key(k)])
	}

	if err := os.WriteFile(path, []byte(b.String()), perm); err != nil {
		return fmt.Errorf("failed to write state file %s: %w", path, err)
	}
	// WriteFile does not change the mode of an existing file.
	if err := os.Chmod(path, perm); err != nil {
		return fmt.Errorf("failed to set state file permissions: %w", err)
	}
	return nil
}
