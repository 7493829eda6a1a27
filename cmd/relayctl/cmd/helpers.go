package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relayops/relayctl/internal/awscloud"
	"github.com/relayops/relayctl/internal/compliance"
	"github.com/relayops/relayctl/internal/config"
	"github.com/relayops/relayctl/internal/output"
	"github.com/relayops/relayctl/internal/pipeline"
	"github.com/relayops/relayctl/internal/state"
)

// buildEngine assembles the cloud clients, compliance guard, state store,
// and pipeline engine for the configured environment.
func buildEngine(cmd *cobra.Command) (*pipeline.Engine, *config.Config, error) {
	cfg, err := getConfigFromContext(cmd)
	if err != nil {
		return nil, nil, err
	}

	cloud, err := awscloud.New(cmd.Context(), cfg.Region)
	if err != nil {
		return nil, nil, err
	}
	if flagVerbose {
		accountID, region := cloud.Identity()
		output.Infof("Account: %s (%s)", output.Bold(accountID), region)
	}

	policy, err := compliance.LoadPolicy(cfg.PolicyFile)
	if err != nil {
		return nil, nil, err
	}
	guard := compliance.NewGuard(policy, cloud)
	store := state.NewStore(cfg.StatePath())

	return pipeline.NewEngine(cfg, cloud, guard, store), cfg, nil
}

// printComplianceReport renders the rule results as a table, warnings
// highlighted.
func printComplianceReport(results []compliance.Result) {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		status := output.Green("pass")
		if !r.Passed {
			if r.Severity == compliance.SeverityHard {
				status = output.Red("FAIL")
			} else {
				status = output.Yellow("warn")
			}
		}
		rows = append(rows, []string{r.Rule, string(r.Severity), status, r.Detail})
	}

	output.Blank()
	output.Table([]string{"RULE", "SEVERITY", "STATUS", "DETAIL"}, rows)
	output.Blank()

	for _, w := range compliance.Warnings(results) {
		output.Warningf("%s", w.Detail)
	}
}

func confirmOrAbort(prompt string, assumeYes bool) error {
	if assumeYes {
		return nil
	}
	if !output.Confirm(prompt) {
		return fmt.Errorf("aborted by operator")
	}
	return nil
}
