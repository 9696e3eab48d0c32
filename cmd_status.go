package main

import (
	"context"

	"github.com/urfave/cli/v3"
)

func newStatusCommand() *cli.Command {
	return &cli.Command{
		Name:   "status",
		Usage:  "Show the state of the downloaded reference datasets",
		Action: runStatus,
	}
}

func runStatus(ctx context.Context, cmd *cli.Command) error {
	app, _, err := setupApp(ctx, cmd)
	if err != nil {
		return err
	}

	var statuses []DatasetStatus
	for _, mode := range []Mode{ModeFantasy, ModeIsekai} {
		for _, cm := range []ComparisonMode{ComparisonTwoUser, ComparisonFourUser} {
			statuses = append(statuses, app.store.Status(mode, cm))
		}
	}

	app.report.PrintDatasetStatus(statuses)
	return nil
}
