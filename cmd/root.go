package cmd

import (
	"github.com/arulmurugan/vidhai/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vidhai",
	Short: "TNPSC practice tests in the terminal",
	Long:  "VidhAI — AI-generated TNPSC Group 4 practice tests with timed sessions, answer review, and hint chat.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides VIDHAI_DB env var)")
	rootCmd.PersistentFlags().String("material", "", "Path to the study material directory (overrides VIDHAI_MATERIAL_DIR env var)")
	rootCmd.PersistentFlags().String("server", "", "Base URL of a VidhAI generation server (overrides VIDHAI_SERVER_URL env var)")

	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then VIDHAI_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
