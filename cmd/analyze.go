package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devgrill/repogrill/internal/assess"
	"github.com/devgrill/repogrill/internal/session"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <repo-url>",
	Short: "Analyze a repository and print the report without starting an interview",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repoURL := strings.TrimSpace(args[0])
		if err := session.ValidateRepositoryURL(repoURL); err != nil {
			return err
		}

		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		log, closeLog := newLogger(true)
		defer closeLog()

		client := assess.WithLogging(assess.NewHTTPClient(cfg), log)

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
		defer cancel()

		analysis, err := client.Analyze(ctx, repoURL)
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(analysis)
		}

		printAnalysis(analysis)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().Bool("json", false, "Print the raw analysis as JSON")
}

func printAnalysis(a *assess.Analysis) {
	fmt.Printf("Repository: %s (%d files analyzed)\n\n", a.RepositoryURL, a.FilesAnalyzed)

	fmt.Println("Patterns:")
	for _, p := range a.Patterns {
		mark := " "
		if p.Present {
			mark = "x"
		}
		fmt.Printf("  [%s] %-24s %.0f%%\n", mark, p.Name, p.Confidence*100)
	}

	fmt.Printf("\nAlgorithm:  %s (%.0f%% via %s)\n", a.Algorithm.Label, a.Algorithm.Confidence*100, a.Algorithm.DetectedBy)
	fmt.Printf("Quality:    %.1f/10 [%s]\n\n", a.Quality.Score, a.Quality.Grade)

	fmt.Println("Questions:")
	for i, q := range a.Questions {
		fmt.Printf("  %d. [%s] %s\n", i+1, q.Difficulty, q.Text)
	}
}
