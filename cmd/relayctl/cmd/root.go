// Package cmd implements the relayctl subcommands.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/relayops/relayctl/internal/config"
	"github.com/relayops/relayctl/internal/constants"
	relayerrors "github.com/relayops/relayctl/internal/errors"
	"github.com/relayops/relayctl/internal/logger"
	"github.com/relayops/relayctl/internal/output"
)

var (
	flagEnv        string
	flagRegion     string
	flagLogDir     string
	flagPolicyFile string
	flagDebug      bool
	flagVerbose    bool

	// logPath is the per-invocation log file, printed on abort so the
	// operator can attach it to a report.
	logPath string
)

var rootCmd = &cobra.Command{
	Use:   constants.ProjectName,
	Short: "Deploy and manage the relay service",
	Long: fmt.Sprintf(`%s - relay service deployment engine
Provisions the relay service into a cloud account through ordered,
idempotent phases, with compliance validation up front and a full
cleanup path back out.`, constants.ProjectName),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cmd.SetContext(context.WithValue(cmd.Context(), constants.StartTimeCtxKey, time.Now().UTC()))
		printHeader(cmd)

		// version needs no configuration or logging.
		if cmd.Name() == "version" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if flagEnv != "" {
			cfg.Environment = flagEnv
		}
		if flagRegion != "" {
			cfg.Region = flagRegion
			// A region override invalidates a configured zone.
			cfg.Zone = ""
		}
		if flagLogDir != "" {
			cfg.LogDir = flagLogDir
		}
		if flagPolicyFile != "" {
			cfg.PolicyFile = flagPolicyFile
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logLevel := cfg.GetLogLevel()
		if flagDebug {
			logLevel = slog.LevelDebug
		}
		_, path, err := logger.Initialize(logLevel, cfg.LogDir)
		if err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		logPath = path

		if flagVerbose {
			output.Infof("Build: %s", output.Bold(constants.Version))
			output.Infof("Environment: %s", output.Bold(cfg.Environment))
			output.Infof("Region: %s", output.Bold(cfg.Region))
			output.Infof("Log file: %s", logPath)
		}

		cmd.SetContext(context.WithValue(cmd.Context(), constants.ConfigCtxKey, cfg))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, _ []string) {
		if flagVerbose {
			if startTime := getStartTimeFromContext(cmd); !startTime.IsZero() {
				output.Infof("Time elapsed: %s", output.Bold(time.Since(startTime).String()))
			}
		}
	},
}

// Execute runs the root command. Errors are printed with their failure
// class and the process exits non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		reportError(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagEnv, "env", "", "Deployment environment (overrides configuration)")
	rootCmd.PersistentFlags().StringVar(&flagRegion, "region", "", "Target region (overrides configuration)")
	rootCmd.PersistentFlags().StringVar(&flagLogDir, "log-dir", "", "Directory for invocation log files (overrides configuration)")
	rootCmd.PersistentFlags().StringVar(&flagPolicyFile, "policy-file", "", "Compliance policy file (overrides the embedded policy)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Verbose output")
}

func printHeader(cmd *cobra.Command) {
	output.Header(output.Bold(constants.ProjectName + " " + cmd.CalledAs()))
}

func reportError(err error) {
	if kind := relayerrors.KindOf(err); kind != "" {
		output.Errorf("[%s] %v", kind, err)
	} else {
		output.Errorf("%v", err)
	}
	if logPath != "" {
		output.Infof("Full log: %s", logPath)
	}
}

// getConfigFromContext retrieves the validated config from the command
// context.
func getConfigFromContext(cmd *cobra.Command) (*config.Config, error) {
	cfg, ok := cmd.Context().Value(constants.ConfigCtxKey).(*config.Config)
	if !ok || cfg == nil {
		return nil, fmt.Errorf("config not found in context")
	}
	return cfg, nil
}

func getStartTimeFromContext(cmd *cobra.Command) time.Time {
	startTime, ok := cmd.Context().Value(constants.StartTimeCtxKey).(time.Time)
	if !ok {
		return time.Time{}
	}
	return startTime
}
