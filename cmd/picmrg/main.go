// Command picmrg merges the images in each immediate subdirectory of a root
// directory into a single composite PNG inside that subdirectory.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/backmassage/picmrg/internal/check"
	"github.com/backmassage/picmrg/internal/config"
	"github.com/backmassage/picmrg/internal/display"
	"github.com/backmassage/picmrg/internal/logging"
	"github.com/backmassage/picmrg/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "0.1.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	exitCode := 0
	cmd := newRootCommand(&exitCode)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "picmrg: %v\n", err)
		return 1
	}
	return exitCode
}

func newRootCommand(exitCode *int) *cobra.Command {
	var flags config.Flags

	cmd := &cobra.Command{
		Use:   "picmrg [ROOT_PATH]",
		Short: "Merge the images of each subdirectory into one composite",
		Long: `picmrg visits every immediate subdirectory of ROOT_PATH (default: the
current directory) and combines the images it holds into a single
merged-YY-MM-DD.png, named after the newest source. Mostly portrait
images are placed side by side, everything else is stacked.`,
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bootstrap: the logger doesn't exist yet, so errors are
			// returned to run and printed to stderr.
			cfg := config.DefaultConfig()
			if err := config.LoadFile(&cfg, flags.ConfigPath); err != nil {
				return err
			}
			flags.Apply(&cfg, cmd.Flags())
			if err := config.ParseArgs(&cfg, args); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			*exitCode = execute(cmd.Context(), &cfg)
			return nil
		},
	}
	flags.Bind(cmd.Flags())
	return cmd
}

func execute(parent context.Context, cfg *config.Config) int {
	log, err := logging.NewLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "picmrg: %v\n", err)
		return 1
	}
	defer log.Close()

	display.PrintBanner(os.Stdout)
	log.Debug(cfg.Verbose, "picmrg %s (%s)", version, commit)
	log.Info("Root path: %s", cfg.RootDir)
	if cfg.ConfigPath != "" {
		log.Debug(cfg.Verbose, "Config file: %s", cfg.ConfigPath)
	}

	if cfg.CheckOnly {
		if !check.RunCheck(cfg, log) {
			return 1
		}
		return 0
	}

	// Cancel on SIGINT/SIGTERM; the pipeline finishes the directory in
	// progress and stops before the next one.
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Received interrupt, finishing current directory…")
			cancel()
		case <-ctx.Done():
		}
	}()

	if _, err := pipeline.Run(ctx, cfg, log); err != nil {
		return 1
	}
	return 0
}
