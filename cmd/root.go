package cmd

import (
	"github.com/spf13/cobra"

	"github.com/devgrill/repogrill/internal/env"
)

var rootCmd = &cobra.Command{
	Use:   "repogrill",
	Short: "Interactive code-review interview for GitHub repositories",
	Long: "Repogrill — terminal app that analyzes a GitHub repository, grills you\n" +
		"with questions about its design, and scores your answers.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	env.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("api-url", "", "Backend base URL (overrides REPOGRILL_API_URL)")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}
