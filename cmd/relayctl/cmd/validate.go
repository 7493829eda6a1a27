package cmd

import (
	"github.com/spf13/cobra"

	"github.com/relayops/relayctl/internal/output"
	"github.com/relayops/relayctl/internal/pipeline"
)

var validateAllowExisting bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Run the compliance checks without deploying",
	Long: `Evaluate every compliance rule against the live account and print the
report. Nothing is created or modified.`,
	RunE: validateRun,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&validateAllowExisting, "allow-existing-instances", false,
		"Override the rule blocking deployment while other minimal-tier instances exist")
}

func validateRun(cmd *cobra.Command, _ []string) error {
	engine, cfg, err := buildEngine(cmd)
	if err != nil {
		return err
	}
	if validateAllowExisting {
		cfg.AllowExistingInstances = true
	}

	result, err := engine.Run(cmd.Context(), pipeline.Options{ValidateOnly: true})
	if len(result.Compliance) > 0 {
		printComplianceReport(result.Compliance)
	}
	if err != nil {
		return err
	}

	output.Successf("Environment %s may be deployed to %s",
		output.Bold(cfg.Environment), output.Bold(cfg.Region))
	return nil
}
