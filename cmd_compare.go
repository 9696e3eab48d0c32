package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
)

func newCompareCommand() *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Usage:     "Compare two users' lists head to head",
		ArgsUsage: "<username1> <username2>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    FlagPlatform,
				Aliases: []string{"p"},
				Usage:   "platform for both usernames, or per-user as user@platform",
				Value:   DefaultPlatform,
			},
		},
		Action: runCompare,
	}
}

func runCompare(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 2 {
		return fmt.Errorf("expected exactly two usernames")
	}

	defaultPlatform, err := ParsePlatform(cmd.String(FlagPlatform))
	if err != nil {
		return err
	}
	mode, err := parseModeFlag(cmd)
	if err != nil {
		return err
	}

	app, ctx, err := setupApp(ctx, cmd)
	if err != nil {
		return err
	}

	profiles := make([]*UserProfile, 2)
	for i, arg := range cmd.Args().Slice() {
		username, platform, err := splitUserArg(arg, defaultPlatform)
		if err != nil {
			return err
		}
		if err := ValidateUsername(username); err != nil {
			return err
		}

		LogStage(ctx, "Fetching %s (%s)", username, platform)
		profile, err := app.fetcher.FetchUserProfile(ctx, username, platform, func(percent int, message string) {
			LogDebug(ctx, "  %s: %d%% %s", username, percent, message)
		})
		if err != nil {
			return NewFetchError(err)
		}
		profiles[i] = profile
	}

	result := CompareUsers(ctx, profiles[0], profiles[1], mode)

	if cmd.Bool(FlagJSONOutput) {
		return app.report.PrintJSON(os.Stdout, result)
	}

	app.report.PrintComparison(result)
	return nil
}

// splitUserArg parses "username" or "username@platform".
func splitUserArg(arg string, fallback Platform) (string, Platform, error) {
	username, platformName, found := strings.Cut(arg, "@")
	if !found {
		return arg, fallback, nil
	}
	platform, err := ParsePlatform(platformName)
	if err != nil {
		return "", "", err
	}
	return username, platform, nil
}
