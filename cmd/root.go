package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tutorbay/tutorbay/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "tutorbay",
	Short: "Tutoring marketplace backend tooling",
	Long:  "TutorBay: session lifecycle, cancellation negotiation, and the post-session assessment pipeline. This CLI inspects the store and drives operations by hand.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TUTORBAY_DB env var)")

	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then TUTORBAY_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
