package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"

	verbose bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "sitescore",
		Short:         "Audit any website's markup consistency",
		Long:          "SiteScore fetches a page, scores its CSS and JavaScript consistency, and checks its colors against WCAG contrast requirements.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log fetch diagnostics to stderr")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newAuditCmd())
	cmd.AddCommand(newContrastCmd())
	cmd.AddCommand(newSuggestCmd())
	cmd.AddCommand(newVarsCmd())
	cmd.AddCommand(newHarmonyCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
