// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/naka-gawa/ghprofile/internal/config"
	"github.com/naka-gawa/ghprofile/internal/gateway"
	"github.com/naka-gawa/ghprofile/internal/state"
	"github.com/naka-gawa/ghprofile/internal/ui"
	"github.com/naka-gawa/ghprofile/internal/usecase"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ghprofile",
	Short: "Look up a GitHub user profile from the terminal.",
	Long: `ghprofile looks up a GitHub user by username and shows their avatar,
name, bio, repository and follower counts, and profile link.

Without a subcommand it starts an interactive screen: type a username and
press Enter to search, ":open" to open the profile link in your browser,
":quit" to exit.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a, err := newApp(cmd, cmd.OutOrStdout(), true)
		if err != nil {
			return err
		}
		session := ui.NewSession(a.loop, a.store, a.lookup, ui.BrowserOpener{}, a.logger)
		return session.Run(ctx, cmd.InOrStdin())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Add a persistent flag for verbose output, available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("api-url", "", "GitHub REST API base URL (overrides "+config.EnvAPIURL+")")
}

// app holds the wired components shared by the commands.
type app struct {
	cfg    *config.Config
	logger *log.Logger
	store  *state.Store
	loop   *ui.Loop
	lookup *usecase.Lookup
}

// newApp loads configuration and injects dependencies. With redraw set, the
// screen is rendered to out after every state change.
func newApp(cmd *cobra.Command, out io.Writer, redraw bool) (*app, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := log.New(io.Discard, "", log.LstdFlags) // Default: discard all logs.
	if verbose {
		logger.SetOutput(cmd.ErrOrStderr()) // If verbose, log to standard error.
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if apiURL, _ := cmd.Flags().GetString("api-url"); apiURL != "" {
		cfg.APIURL = apiURL
	}

	githubGateway, err := gateway.NewGitHubGateway(cfg.APIURL, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub gateway: %w", err)
	}

	store := state.NewStore()
	var afterEach func()
	if redraw {
		afterEach = ui.Redraw(out, store, cfg.AvatarWidth, logger)
	}
	loop := ui.NewLoop(afterEach)

	return &app{
		cfg:    cfg,
		logger: logger,
		store:  store,
		loop:   loop,
		lookup: usecase.NewLookup(githubGateway, githubGateway, store, loop, logger),
	}, nil
}
