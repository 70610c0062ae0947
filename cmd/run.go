package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/arulmurugan/vidhai/internal/app"
	"github.com/arulmurugan/vidhai/internal/backend"
	"github.com/arulmurugan/vidhai/internal/generate"
	"github.com/arulmurugan/vidhai/internal/llm"
	"github.com/arulmurugan/vidhai/internal/store"
)

// defaultMaterialDir is the study material layout shipped alongside the
// binary: one directory per subject, one .txt file per topic.
const defaultMaterialDir = "source_material"

// runApp opens the store, builds the backend service, and launches the
// TUI. A missing database degrades to no history; a missing backend is
// fatal since nothing can generate questions.
func runApp(cmd *cobra.Command) error {
	_ = godotenv.Load()

	var attempts store.AttemptRepo
	dbPath, err := resolveDBPath(cmd)
	if err == nil {
		st, err := store.Open(dbPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Attempt history unavailable:", err)
		} else {
			defer st.Close()
			attempts = st.Attempts()
		}
	} else {
		fmt.Fprintln(os.Stderr, "Attempt history unavailable:", err)
	}

	svc, err := buildService(cmd)
	if err != nil {
		return err
	}

	return app.Run(svc, attempts)
}

// buildService picks the question source: a remote VidhAI server when
// one is configured, otherwise in-process generation against a
// configured LLM provider.
func buildService(cmd *cobra.Command) (backend.Service, error) {
	serverURL, _ := cmd.Flags().GetString("server")
	if serverURL == "" {
		serverURL = os.Getenv("VIDHAI_SERVER_URL")
	}
	if serverURL != "" {
		return backend.NewHTTPService(serverURL), nil
	}

	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, fmt.Errorf("no LLM provider configured: set VIDHAI_GEMINI_API_KEY (or GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY), or point VIDHAI_SERVER_URL at a generation server")
		}
		cfg = discovered
	}

	provider, err := llm.NewProvider(cmd.Context(), cfg)
	if err != nil {
		return nil, fmt.Errorf("create LLM provider: %w", err)
	}

	materialDir, _ := cmd.Flags().GetString("material")
	if materialDir == "" {
		materialDir = os.Getenv("VIDHAI_MATERIAL_DIR")
	}
	if materialDir == "" {
		materialDir = defaultMaterialDir
	}

	return generate.NewService(provider, generate.NewLibrary(materialDir)), nil
}
