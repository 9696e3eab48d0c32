package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func newAnalyzeCommand() *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "Analyze a user's taste against the reference users",
		ArgsUsage: "<username>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    FlagPlatform,
				Aliases: []string{"p"},
				Usage:   "platform the username belongs to: anilist or mal",
				Value:   DefaultPlatform,
			},
			&cli.StringFlag{
				Name:  FlagComparison,
				Usage: "comparison mode: 2-user spectrum or 4-user compass",
				Value: DefaultComparison,
			},
		},
		Action: runAnalyze,
	}
}

func runAnalyze(ctx context.Context, cmd *cli.Command) error {
	username := cmd.Args().First()
	if username == "" {
		return fmt.Errorf("username argument is required")
	}

	platform, err := ParsePlatform(cmd.String(FlagPlatform))
	if err != nil {
		return err
	}
	mode, err := parseModeFlag(cmd)
	if err != nil {
		return err
	}
	comparisonMode, err := ParseComparisonMode(cmd.String(FlagComparison))
	if err != nil {
		return err
	}

	app, ctx, err := setupApp(ctx, cmd)
	if err != nil {
		return err
	}

	progress := func(stage, message string, percent int) {
		LogStage(ctx, "[%3d%%] %s: %s", percent, stage, message)
	}

	result, err := app.analyzer.Analyze(ctx, username, platform, mode, comparisonMode, progress)
	if err != nil {
		return err
	}

	if cmd.Bool(FlagJSONOutput) {
		return app.report.PrintJSON(os.Stdout, result)
	}

	app.report.PrintAnalysis(result)
	return nil
}
