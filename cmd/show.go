// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/naka-gawa/ghprofile/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var errLookupFailed = errors.New("lookup failed")

var showCmd = &cobra.Command{
	Use:   "show <username>",
	Short: "Looks up a GitHub user once and prints the profile",
	Long: `Looks up a single GitHub user, waits for the profile and avatar to load,
and prints the rendered screen (text) or the profile (json, yaml).`,
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		err := runShow(cmd, args[0])
		if err != nil && !errors.Is(err, errLookupFailed) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
		return err
	},
}

func runShow(cmd *cobra.Command, username string) error {
	output, _ := cmd.Flags().GetString("output")
	switch output {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("invalid --output %q: use text, json or yaml", output)
	}

	a, err := newApp(cmd, cmd.OutOrStdout(), false)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	stopped := make(chan error, 1)
	go func() {
		stopped <- a.loop.Run(ctx)
	}()

	// Search runs on the loop like the interactive screen; Wait covers both fetches.
	a.loop.Post(func() {
		a.lookup.Search(ctx, username)
	})
	a.loop.Wait()
	cancel()
	if err := <-stopped; err != nil {
		return err
	}

	snap := a.store.Snapshot()
	if snap.Error != "" {
		// Printed verbatim: the message already reads "Error: ..." where it should.
		fmt.Fprintln(cmd.ErrOrStderr(), snap.Error)
		return errLookupFailed
	}

	out := cmd.OutOrStdout()
	switch output {
	case "json":
		// Marshal the profile into a pretty-printed JSON string.
		jsonData, err := json.MarshalIndent(snap.Profile, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal profile to JSON: %w", err)
		}
		fmt.Fprintln(out, string(jsonData))
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(snap.Profile); err != nil {
			return fmt.Errorf("failed to marshal profile to YAML: %w", err)
		}
		return enc.Close()
	default:
		return ui.Render(out, snap, a.cfg.AvatarWidth)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringP("output", "o", "text", "Output format: text, json or yaml")
}
