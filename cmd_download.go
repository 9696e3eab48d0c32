package main

import (
	"context"

	"github.com/urfave/cli/v3"
)

func newDownloadCommand() *cli.Command {
	return &cli.Command{
		Name:   "download",
		Usage:  "Download reference users' lists and build the datasets",
		Action: runDownload,
	}
}

func runDownload(ctx context.Context, cmd *cli.Command) error {
	app, ctx, err := setupApp(ctx, cmd)
	if err != nil {
		return err
	}

	if err := app.downloader.Run(ctx); err != nil {
		return err
	}

	LogInfoSuccess(ctx, "All reference datasets written to %s", app.config.DataDir)
	return nil
}
