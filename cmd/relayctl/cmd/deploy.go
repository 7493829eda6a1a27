package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relayops/relayctl/internal/output"
	"github.com/relayops/relayctl/internal/pipeline"
	"github.com/relayops/relayctl/internal/state"
)

var (
	deployPhases        []int
	deployYes           bool
	deployAllowExisting bool
)

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Deploy the relay service",
	Long: `Deploy the relay service through the ordered phases:

  1. base-network      VPC, subnet, and firewall rule
  2. identity          runtime role, instance profile, and credential secret
  3. compute           data volume and service instance
  4. service-rollout   service installation over the remote command channel
  5. observability     log metric, alarm, dashboard, and cost budget
  6. verify            end-to-end health check

Every phase is idempotent: resources that already exist are left untouched,
so re-running deploy resumes an aborted run where it stopped.

Examples:
  # Full deployment
  relayctl deploy --env dev

  # Re-run only the observability phase
  relayctl deploy --env dev --phases 5

  # Non-interactive
  relayctl deploy --env prod --yes`,
	RunE: deployRun,
}

func init() {
	rootCmd.AddCommand(deployCmd)

	deployCmd.Flags().IntSliceVar(&deployPhases, "phases", nil,
		"Run only the given phases (1-6), ascending. Preconditions of skipped phases are not re-verified")
	deployCmd.Flags().BoolVar(&deployYes, "yes", false,
		"Skip the confirmation prompt")
	deployCmd.Flags().BoolVar(&deployAllowExisting, "allow-existing-instances", false,
		"Override the rule blocking deployment while other minimal-tier instances exist")
}

func deployRun(cmd *cobra.Command, _ []string) error {
	engine, cfg, err := buildEngine(cmd)
	if err != nil {
		return err
	}
	if deployAllowExisting {
		cfg.AllowExistingInstances = true
	}

	if err := confirmOrAbort(fmt.Sprintf("Deploy relay to environment %s in %s?",
		output.Bold(cfg.Environment), output.Bold(cfg.Region)), deployYes); err != nil {
		return err
	}

	result, err := engine.Run(cmd.Context(), pipeline.Options{Phases: deployPhases})
	if len(result.Compliance) > 0 {
		printComplianceReport(result.Compliance)
	}
	if err != nil {
		return err
	}

	total := pipeline.PhaseCount
	names := engine.PhaseNames()
	completed := make(map[string]bool, len(result.CompletedPhases))
	for _, name := range result.CompletedPhases {
		completed[name] = true
	}
	for i, name := range names {
		if completed[name] {
			output.StepSuccess(i+1, total, name)
		} else {
			output.Step(i+1, total, name+" (skipped)")
		}
	}

	printDeploymentSummary(cfg.StatePath(), cfg.Environment)
	output.Blank()
	output.Successf("Deployment of %s completed", output.Bold(cfg.Environment))
	return nil
}

// printDeploymentSummary renders the persisted addresses and service URL.
func printDeploymentSummary(stateDir, environment string) {
	store := state.NewStore(stateDir)
	snapshot, err := store.Snapshot()
	if err != nil || len(snapshot) == 0 {
		return
	}

	output.Blank()
	output.Println(output.Bold("Deployment"))
	output.KeyValue("Environment", environment)
	for _, key := range []state.Key{
		state.KeyInstanceName,
		state.KeyInstanceZone,
		state.KeyInternalAddress,
		state.KeyExternalAddress,
		state.KeyServiceURL,
		state.KeyDeployedAt,
	} {
		if value, ok := snapshot[key]; ok {
			output.KeyValue(string(key), value)
		}
	}
}
