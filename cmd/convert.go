package main

import (
	"context"

	"github.com/iainktaylor/spotify-converter/internal/formatter"
	"github.com/iainktaylor/spotify-converter/internal/models"
	"github.com/iainktaylor/spotify-converter/internal/shared"
	"github.com/iainktaylor/spotify-converter/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Convert reads a library export and writes per-playlist documents plus an index.
func (r *Runner) Convert(ctx context.Context, cmd *cli.Command) error {
	if err := r.reloadConfig(cmd.String("config")); err != nil {
		return err
	}

	opts, err := r.convertOpts(cmd)
	if err != nil {
		return err
	}

	inputPath := cmd.String("input")
	logger := shared.WithLogger(r.logger, "run_id", shared.GenerateID())
	logger.Info("starting conversion", "input", inputPath, "format", opts.Format)
	r.writePlain("Reading JSON file: %s\n", inputPath)

	lib, err := models.LoadLibrary(inputPath)
	if err != nil {
		return err
	}

	r.writePlain("Output directory: %s\n", opts.OutputDir)
	r.writePlain("Output format: %s\n", opts.Format)
	r.writePlain("\nProcessing %d playlists...\n", lib.PlaylistCount())

	// Progress goroutine renders engine updates as they arrive
	progressCh := make(chan tasks.ProgressUpdate, 50)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progressCh {
			switch update.Phase {
			case tasks.WritePages:
				r.writePlain("  %s\n", update.Message)
			case tasks.WriteIndex:
				r.writePlain("\n  %s\n", update.Message)
			}
		}
	}()

	result, err := r.engine.Convert(ctx, progressCh, lib, opts)
	close(progressCh)
	<-done

	if err != nil {
		return err
	}

	logger.Info("conversion complete", "pages", result.TotalPlaylists, "index", result.IndexPath)

	for _, name := range result.DuplicateNames {
		r.writePlain("\nWarning: multiple playlists share the filename %s; the last one written wins.\n", name)
	}

	r.writePlain("\nDone! Generated %d %s files plus index.\n", result.TotalPlaylists, result.Format)
	r.writePlain("Open %s to get started!\n", result.IndexPath)

	return nil
}

// convertOpts resolves conversion options from flags, falling back to config values.
func (r *Runner) convertOpts(cmd *cli.Command) (tasks.ConvertOpts, error) {
	outputDir := cmd.String("output")
	if outputDir == "" {
		outputDir = r.config.Output.Directory
	}

	formatName := cmd.String("format")
	if formatName == "" {
		formatName = r.config.Output.Format
	}
	format, err := formatter.ParseFormat(formatName)
	if err != nil {
		return tasks.ConvertOpts{}, err
	}

	title := cmd.String("title")
	if title == "" {
		title = r.config.Index.Title
	}

	workers := int(cmd.Int("workers"))
	if workers == 0 {
		workers = r.config.Convert.Workers
	}

	return tasks.ConvertOpts{
		OutputDir:  outputDir,
		Format:     format,
		IndexTitle: title,
		NumWorkers: workers,
	}, nil
}
