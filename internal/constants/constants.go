// Package constants defines shared constants for relayctl.
package constants

import (
	"os"
	"path/filepath"
)

// ProjectName is the CLI binary and product name.
const ProjectName = "relayctl"

// Version is set at build time via -ldflags.
var Version = "dev"

// Configuration file locations and permissions.
const (
	ConfigDirName  = ".relayctl"
	ConfigFileName = "config.yaml"

	ConfigDirPermissions  = os.FileMode(0o755)
	ConfigFilePermissions = os.FileMode(0o600)
)

// UI constants.
const (
	HeaderSeparatorLength = 40
)

// ctxKey is the private type for context values owned by this module.
type ctxKey string

// Context keys for values threaded through cobra command contexts.
const (
	ConfigCtxKey    ctxKey = "config"
	LogPathCtxKey   ctxKey = "logPath"
	StartTimeCtxKey ctxKey = "startTime"
)

// ConfigDirPath returns the relayctl configuration directory under the
// given home directory.
func ConfigDirPath(homeDir string) string {
	return filepath.Join(homeDir, ConfigDirName)
}
