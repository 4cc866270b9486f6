package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jeevibe/jeevibe/internal/app"
	"github.com/jeevibe/jeevibe/internal/auth"
	"github.com/jeevibe/jeevibe/internal/backend"
	"github.com/jeevibe/jeevibe/internal/store"
	"github.com/jeevibe/jeevibe/internal/tutor"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	deps, cleanup, err := buildDeps(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	return app.Run(*deps)
}

// buildDeps wires the store, the API client, and the optional tutor.
// The returned cleanup closes the store.
func buildDeps(cmd *cobra.Command) (*app.Deps, func(), error) {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	events := st.EventRepo()

	tokens, err := auth.NewSecureTokenSource(auth.ConfigFromEnv())
	if err != nil {
		st.Close()
		if errors.Is(err, auth.ErrNotSignedIn) {
			return nil, nil, fmt.Errorf("not signed in: set JEEVIBE_FIREBASE_API_KEY and JEEVIBE_FIREBASE_REFRESH_TOKEN")
		}
		return nil, nil, fmt.Errorf("auth setup: %w", err)
	}

	httpClient, err := backend.NewHTTPClient(backend.ConfigFromEnv(), tokens)
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("API client: %w", err)
	}

	if h, err := httpClient.Health(ctx); err == nil {
		if err := backend.CheckCompatibility(h, version); err != nil {
			st.Close()
			return nil, nil, err
		}
	}

	deps := &app.Deps{
		Client: backend.WithLogging(httpClient, events),
		Events: events,
	}

	tutorCfg := tutor.ConfigFromEnv()
	if err := tutorCfg.Validate(); err != nil {
		if discovered, ok := tutor.DiscoverConfig(); ok {
			tutorCfg = discovered
		} else {
			fmt.Fprintln(os.Stderr, "Tutor not configured:", err)
			fmt.Fprintln(os.Stderr, "The in-quiz tutor will be unavailable.")
			tutorCfg = tutor.Config{}
		}
	}
	if tutorCfg.Provider != "" {
		provider, err := tutor.NewProvider(ctx, tutorCfg, events)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Tutor setup failed:", err)
		} else {
			deps.TutorProvider = provider
			deps.TutorConfig = tutorCfg
		}
	}

	return deps, func() { _ = st.Close() }, nil
}
