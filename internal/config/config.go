// Package config manages configuration for the relayctl CLI.
// It uses Viper for unified configuration management from the config file
// and environment variables, validated once at startup. The resulting
// Config is constructed once and passed explicitly to every component;
// nothing reads configuration ambiently after startup.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/relayops/relayctl/internal/constants"
	"github.com/relayops/relayctl/internal/naming"
)

// Config is the immutable configuration for one relayctl invocation.
type Config struct {
	// Environment selects the deployment identity (dev, staging, ...).
	// All resource names derive from it.
	Environment string `mapstructure:"environment" validate:"required,hostname_rfc1123"`

	// Region is the target cloud region; Zone the availability zone the
	// instance and its disk are placed in.
	Region string `mapstructure:"region" validate:"required"`
	Zone   string `mapstructure:"zone" validate:"required"`

	// Network layout.
	NetworkCIDR string `mapstructure:"network_cidr" validate:"required,cidrv4"`
	SubnetCIDR  string `mapstructure:"subnet_cidr" validate:"required,cidrv4"`

	// Compute shape.
	InstanceType string `mapstructure:"instance_type" validate:"required"`
	ImageID      string `mapstructure:"image_id"`
	VolumeSizeGB int32  `mapstructure:"volume_size_gb" validate:"gt=0"`

	// ServicePort is the port the relay service listens on.
	ServicePort int `mapstructure:"service_port" validate:"gt=0,lte=65535"`

	// MonthlyBudgetUSD is the cost budget provisioned in phase 5.
	MonthlyBudgetUSD int `mapstructure:"monthly_budget_usd" validate:"gt=0"`

	// AllowExistingInstances overrides the compliance rule that no
	// minimal-tier instances may already exist in the account.
	AllowExistingInstances bool `mapstructure:"allow_existing_instances"`

	// PolicyFile optionally overrides the embedded compliance policy.
	PolicyFile string `mapstructure:"policy_file"`

	// StateDir holds per-environment deployment state; LogDir the
	// per-invocation log files.
	StateDir string `mapstructure:"state_dir" validate:"required"`
	LogDir   string `mapstructure:"log_dir" validate:"required"`

	LogLevel string `mapstructure:"log_level"`
}

var validate = validator.New()

// Load loads the configuration from ~/.relayctl/config.yaml merged with
// RELAYCTL_* environment variables. Environment variables take precedence
// over config file values. A missing config file is acceptable; defaults
// cover everything except the environment name.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if err := loadConfigFile(v); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	v.SetEnvPrefix("RELAYCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration after flag overrides are applied.
func (c *Config) Validate() error {
	if c.Zone == "" && c.Region != "" {
		c.Zone = c.Region + "a"
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	if !strings.HasPrefix(c.Zone, c.Region) {
		return fmt.Errorf("zone %s is not in region %s", c.Zone, c.Region)
	}
	return nil
}

// NamePrefix returns the project-scoped resource name prefix.
func (c *Config) NamePrefix() string {
	return naming.Prefix(c.Environment)
}

// StatePath returns the per-environment state directory.
func (c *Config) StatePath() string {
	return filepath.Join(c.StateDir, c.Environment)
}

// GetLogLevel returns the slog.Level from the string configuration.
// Defaults to INFO if the level string is invalid.
func (c *Config) GetLogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error getting home directory: %w", err)
	}
	return filepath.Join(constants.ConfigDirPath(homeDir), constants.ConfigFileName), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("region", "us-east-1")
	v.SetDefault("network_cidr", "10.84.0.0/16")
	v.SetDefault("subnet_cidr", "10.84.1.0/24")
	v.SetDefault("instance_type", "t3.micro")
	v.SetDefault("volume_size_gb", 10)
	v.SetDefault("service_port", 8080)
	v.SetDefault("monthly_budget_usd", 10)
	v.SetDefault("log_level", "INFO")

	if homeDir, err := os.UserHomeDir(); err == nil {
		v.SetDefault("state_dir", filepath.Join(constants.ConfigDirPath(homeDir), "state"))
		v.SetDefault("log_dir", filepath.Join(constants.ConfigDirPath(homeDir), "logs"))
	}
}

func loadConfigFile(v *viper.Viper) error {
	configFile, err := GetConfigPath()
	if err != nil {
		return err
	}

	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")

	return v.ReadInConfig()
}

func bindEnvVars(v *viper.Viper) {
	envVars := []string{
		"ENVIRONMENT",
		"REGION",
		"ZONE",
		"NETWORK_CIDR",
		"SUBNET_CIDR",
		"INSTANCE_TYPE",
		"IMAGE_ID",
		"VOLUME_SIZE_GB",
		"SERVICE_PORT",
		"MONTHLY_BUDGET_USD",
		"ALLOW_EXISTING_INSTANCES",
		"POLICY_FILE",
		"STATE_DIR",
		"LOG_DIR",
		"LOG_LEVEL",
	}

	for _, envVar := range envVars {
		configKey := strings.ToLower(envVar)
		_ = v.BindEnv(configKey, "RELAYCTL_"+envVar)
	}
}
