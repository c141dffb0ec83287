package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-dnd/internal/debug"
	"github.com/grindlemire/go-dnd/internal/scenario"
)

func newReplayCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay [file|dir]...",
		Short: "Replay YAML drag scenarios and print the impact after every step",
		Example: `  dnd replay scenarios/reorder.yaml
  dnd replay --json scenarios/`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := expand(args)
			if err != nil {
				return err
			}
			debug.Log("replaying %d scenario(s) with parallel=%d", len(paths), a.cfg.Replay.Parallel)

			reports, err := scenario.RunFiles(cmd.Context(), paths, a.cfg.Replay.Parallel, debug.Logger())
			if err != nil {
				return err
			}
			if a.cfg.Replay.JSON {
				return scenario.WriteJSON(cmd.OutOrStdout(), reports)
			}
			scenario.WriteTable(cmd.OutOrStdout(), reports)
			return nil
		},
	}

	cmd.Flags().Bool("json", false, "print reports as JSON")
	cmd.Flags().Int("parallel", 4, "maximum scenarios replayed at once")
	a.bind("replay.json", cmd.Flags().Lookup("json"))
	a.bind("replay.parallel", cmd.Flags().Lookup("parallel"))
	return cmd
}

// expand replaces directories with the YAML files directly inside them.
func expand(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}

		var found []string
		for _, pattern := range []string{"*.yaml", "*.yml"} {
			matches, err := filepath.Glob(filepath.Join(arg, pattern))
			if err != nil {
				return nil, err
			}
			found = append(found, matches...)
		}
		if len(found) == 0 {
			return nil, fmt.Errorf("no scenario files in %s", arg)
		}
		slices.Sort(found)
		paths = append(paths, found...)
	}
	return paths, nil
}
