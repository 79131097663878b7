package pipeline

import (
	"context"
	"path/filepath"

	"github.com/backmassage/picmrg/internal/config"
	"github.com/backmassage/picmrg/internal/display"
	"github.com/backmassage/picmrg/internal/merge"
	"github.com/backmassage/picmrg/internal/scanner"
)

// Logger is the logging surface the driver needs; *logging.Logger
// satisfies it.
type Logger interface {
	Info(format string, args ...interface{})
	Success(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
	Debug(verbose bool, format string, args ...interface{})
	Print(text string)
}

// Run scans cfg.RootDir and merges every subdirectory that holds images.
// The returned error is non-nil only when the scan itself fails; per
// directory outcomes are reported in RunStats.
func Run(ctx context.Context, cfg *config.Config, log Logger) (RunStats, error) {
	var stats RunStats

	scan, err := scanner.Scan(cfg.RootDir)
	if err != nil {
		log.Error("Error scanning directories: %v", err)
		return stats, err
	}

	names := scan.Names()
	stats.Total = len(names)
	if stats.Total == 0 {
		log.Info("No directories with images found to merge.")
		return stats, nil
	}

	log.Info("Found %d directories with images", stats.Total)
	if cfg.DryRun {
		log.Info("Dry run: nothing will be deleted or written")
	}

	engine := merge.NewEngine(log, cfg.Verbose)
	for i, name := range names {
		if ctx.Err() != nil {
			log.Warn("Interrupted, stopping before %s", name)
			stats.Interrupted = true
			break
		}
		stats.Current = i + 1
		stats.record(processDir(cfg, log, engine, name, scan.Path(name), scan.Dirs[name], &stats))
	}

	logSummary(cfg, log, &stats)
	return stats, nil
}

// processDir merges (or plans) one directory and logs the outcome.
func processDir(
	cfg *config.Config,
	log Logger,
	engine *merge.Engine,
	name, dir string,
	files []string,
	stats *RunStats,
) DirResult {
	log.Debug(cfg.Verbose, "[%d/%d] %s: %d image files", stats.Current, stats.Total, dir, len(files))

	r := DirResult{Name: name, Dir: dir, Images: len(files)}

	var res *merge.Result
	var err error
	if cfg.DryRun {
		res, err = engine.Plan(dir, files)
	} else {
		res, err = engine.Merge(dir, files)
	}

	switch {
	case err == nil:
		r.Result = res
		if cfg.DryRun {
			r.Status = StatusPlanned
			log.Success("[DRY] Would merge images in %s -> %s (%s, %s)",
				name, filepath.Base(res.OutputPath),
				display.FormatDimensions(res.Width, res.Height), res.Layout)
		} else {
			r.Status = StatusMerged
			log.Success("✓ Successfully merged images in %s -> %s (%s, %s, %s)",
				name, filepath.Base(res.OutputPath),
				display.FormatDimensions(res.Width, res.Height), res.Layout,
				display.FormatBytes(res.Bytes))
		}
	case merge.IsSkip(err):
		r.Status = StatusSkipped
		r.Err = err
		log.Info("- Skipped %s (%s)", name, skipReason(err))
	default:
		r.Status = StatusFailed
		r.Err = err
		log.Error("✗ Failed to merge images in %s: %v", name, err)
	}
	return r
}

func skipReason(err error) string {
	if merge.KindOf(err) == merge.KindEmptyInput {
		return "no images"
	}
	return "only one image"
}

func logSummary(cfg *config.Config, log Logger, stats *RunStats) {
	rows := make([]display.ResultRow, 0, len(stats.Results))
	for _, r := range stats.Results {
		row := display.ResultRow{Dir: r.Name, Images: r.Images, Status: string(r.Status)}
		if r.Result != nil {
			row.Layout = r.Result.Layout.String()
			row.Output = filepath.Base(r.Result.OutputPath)
			if !cfg.DryRun {
				row.Size = display.FormatBytes(r.Result.Bytes)
			}
		}
		rows = append(rows, row)
	}
	if table := display.RenderResults(rows); table != "" {
		log.Print(table)
	}

	verb := "merged"
	if cfg.DryRun {
		verb = "planned"
	}
	log.Info("Done: %d %s, %d skipped, %d failed", stats.Merged, verb, stats.Skipped, stats.Failed)
	if !cfg.DryRun && stats.Merged > 0 {
		log.Info("Total written: %s", display.FormatBytes(stats.TotalOutputBytes))
	}
	if stats.Interrupted {
		log.Warn("Interrupted after %d of %d directories", stats.Current, stats.Total)
		return
	}
	log.Success("Merging complete!")
}
