package cmd

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/relayops/relayctl/internal/output"
	"github.com/relayops/relayctl/internal/pipeline"
	"github.com/relayops/relayctl/internal/state"
)

var statusProbe bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the deployment state of an environment",
	Long: `Print the persisted deployment records of the environment. With --probe,
additionally check which managed cloud resources currently exist.`,
	RunE: statusRun,
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().BoolVar(&statusProbe, "probe", false,
		"Check the live existence of every managed resource")
}

func statusRun(cmd *cobra.Command, _ []string) error {
	cfg, err := getConfigFromContext(cmd)
	if err != nil {
		return err
	}

	store := state.NewStore(cfg.StatePath())
	snapshot, err := store.Snapshot()
	if err != nil {
		return err
	}

	if len(snapshot) == 0 {
		output.Infof("No deployment state for environment %s", output.Bold(cfg.Environment))
	} else {
		keys := make([]string, 0, len(snapshot))
		for k := range snapshot {
			keys = append(keys, string(k))
		}
		sort.Strings(keys)

		output.Blank()
		output.Println(output.Bold("Deployment state"))
		for _, k := range keys {
			output.KeyValue(k, snapshot[state.Key(k)])
		}
	}

	if !statusProbe {
		return nil
	}

	engine, _, err := buildEngine(cmd)
	if err != nil {
		return err
	}
	report, err := engine.Cleanup(cmd.Context(), pipeline.CleanupOptions{DryRun: true})
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(report.Actions))
	for _, action := range report.Actions {
		status := output.Yellow("absent")
		if action.Present {
			status = output.Green("present")
		}
		rows = append(rows, []string{string(action.Kind), action.Name, status})
	}
	output.Blank()
	output.Table([]string{"KIND", "NAME", "STATUS"}, rows)
	return nil
}
