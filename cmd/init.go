package main

import (
	"context"

	"github.com/iainktaylor/spotify-converter/internal/shared"
	"github.com/urfave/cli/v3"
)

// Init writes a starter configuration file at the given path.
func (r *Runner) Init(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")

	r.logger.Info("creating config file", "path", path)
	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.writePlain("Created %s\n", path)
	r.writePlain("Edit it to change the output directory, format, or index title.\n")

	return nil
}
