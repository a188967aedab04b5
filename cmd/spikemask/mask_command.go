package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"spikemask/internal/artifacts"
	"spikemask/internal/batch"
	"spikemask/internal/config"
	"spikemask/internal/store"
)

func newMaskCommand(ctx *commandContext) *cobra.Command {
	var noConcurrent bool
	var concurrentFile string

	cmd := &cobra.Command{
		Use:   "mask [target]",
		Short: "Run the artifact detectors over a recording or a directory of recordings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			target, err := resolveTarget(args)
			if err != nil {
				return err
			}

			var windows *artifacts.ContaminatedWindows
			if noConcurrent {
				logger.Info("concurrent-activity rejection disabled")
			} else {
				windows, err = loadConcurrentWindows(cmd, cfg, target, concurrentFile)
				if err != nil {
					return err
				}
				logger.Info("concurrent-activity rejection enabled",
					"edges", len(windows.Edges), "bin_ms", windows.BinLength)
			}

			runner := batch.NewRunner(cfg, logger, windows)
			summary, err := runner.Run(cmd.Context(), target)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderSummary(summary))
			if summary.AllFailed() {
				return fmt.Errorf("all %d recordings failed", len(summary.Recordings))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noConcurrent, "no-concurrent", false, "Disable cross-channel concurrent-activity rejection")
	cmd.Flags().StringVar(&concurrentFile, "concurrent-file", "", "Path to the concurrent-activity source")
	return cmd
}

func resolveTarget(args []string) (string, error) {
	if len(args) == 0 {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("determine working directory: %w", err)
		}
		return cwd, nil
	}
	return config.ExpandPath(args[0])
}

// loadConcurrentWindows reads the auxiliary source and resolves the
// contaminated bin edges once for the whole batch.
func loadConcurrentWindows(cmd *cobra.Command, cfg *config.Config, target, override string) (*artifacts.ContaminatedWindows, error) {
	path := strings.TrimSpace(override)
	if path == "" {
		dir := target
		if info, err := os.Stat(target); err == nil && !info.IsDir() {
			dir = filepath.Dir(target)
		}
		path = filepath.Join(dir, cfg.Storage.ConcurrentFile)
	} else {
		expanded, err := config.ExpandPath(path)
		if err != nil {
			return nil, err
		}
		path = expanded
	}

	if _, err := os.Stat(path); err != nil {
		return nil, artifacts.Wrap(artifacts.ErrAuxSource, path, "stat",
			"pass --no-concurrent to disable cross-channel rejection", err)
	}
	profile, err := store.ReadConcurrentProfile(cmd.Context(), path)
	if err != nil {
		return nil, artifacts.Wrap(artifacts.ErrAuxSource, path, "read", "", err)
	}
	windows := artifacts.ResolveContaminatedEdges(profile, artifacts.DefaultSpecs().Bincount)
	return &windows, nil
}
