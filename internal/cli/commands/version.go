package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command. buildDate and gitCommit
// come from the linker; "unknown" values are omitted from the output.
func NewVersionCommand(version, buildDate, gitCommit string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display tritsys version and build information.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "tritsys v%s\n", version)
			if gitCommit != "unknown" && gitCommit != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Commit: %s\n", gitCommit)
			}
			if buildDate != "unknown" && buildDate != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Built:  %s\n", buildDate)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Ternary arithmetic toolkit")
		},
	}
}
