package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relayops/relayctl/internal/output"
	"github.com/relayops/relayctl/internal/pipeline"
)

var (
	cleanupDryRun bool
	cleanupYes    bool
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Remove every resource of a deployment",
	Long: `Delete all managed resources of the environment in reverse dependency
order: compute first, then network plumbing, identity, and observability.

Cleanup is best-effort: a failed deletion is reported as a warning and the
remaining resources are still attempted. The local state files are removed
only once a verification pass confirms nothing is left.

Examples:
  # See what would be deleted
  relayctl cleanup --env dev --dry-run

  # Delete everything
  relayctl cleanup --env dev`,
	RunE: cleanupRun,
}

func init() {
	rootCmd.AddCommand(cleanupCmd)

	cleanupCmd.Flags().BoolVar(&cleanupDryRun, "dry-run", false,
		"Report what would be deleted without deleting anything")
	cleanupCmd.Flags().BoolVar(&cleanupYes, "yes", false,
		"Skip the confirmation prompt")
}

func cleanupRun(cmd *cobra.Command, _ []string) error {
	engine, cfg, err := buildEngine(cmd)
	if err != nil {
		return err
	}

	if !cleanupDryRun {
		if err := confirmOrAbort(fmt.Sprintf("Delete ALL relay resources of environment %s in %s?",
			output.Bold(cfg.Environment), output.Bold(cfg.Region)), cleanupYes); err != nil {
			return err
		}
	}

	report, err := engine.Cleanup(cmd.Context(), pipeline.CleanupOptions{DryRun: cleanupDryRun})
	if err != nil {
		return err
	}

	printCleanupReport(report, cleanupDryRun)

	switch {
	case cleanupDryRun:
		output.Infof("Dry run: nothing was deleted")
	case len(report.Remaining) > 0:
		output.Warningf("%d resource(s) could not be removed; state files kept, re-run cleanup to retry",
			len(report.Remaining))
	default:
		output.Successf("Environment %s cleaned up", output.Bold(cfg.Environment))
	}
	return nil
}

func printCleanupReport(report *pipeline.CleanupReport, dryRun bool) {
	rows := make([][]string, 0, len(report.Actions))
	for _, action := range report.Actions {
		status := "absent"
		switch {
		case action.Err != nil:
			status = output.Red("error")
		case action.Removed:
			status = output.Green("deleted")
		case action.Present && dryRun:
			status = output.Yellow("would delete")
		case action.Present:
			status = output.Yellow("present")
		}
		rows = append(rows, []string{string(action.Kind), action.Name, status})
	}

	output.Blank()
	output.Table([]string{"KIND", "NAME", "STATUS"}, rows)
	output.Blank()

	for _, warning := range report.Warnings {
		output.Warningf("%s", warning)
	}
}
