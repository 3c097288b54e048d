// Package cli provides the command-line interface for careerassist.
package cli

import "github.com/spf13/cobra"

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	serverURL string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "careerassist",
	Short: "Terminal client for the HotGigs career assistant",
	Long: `Careerassist is the terminal client for the HotGigs AI career assistant.

It answers questions about resumes, job search, interviews, skill growth and
candidate sourcing from a curated playbook, with role-aware suggestions for
job seekers and recruiters.

By default the assistant runs embedded in the process; point --server at a
careerassist API deployment to chat against a shared server instead.`,
	Version: Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "",
		"assistant API base URL (empty runs the embedded assistant)")

	// Add subcommands
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(rolesCmd)
	rootCmd.AddCommand(versionCmd)
}
