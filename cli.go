package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

// NewCLI creates the root CLI command
func NewCLI() *cli.Command {
	configFlag := &cli.StringFlag{
		Name:    FlagConfigFile,
		Aliases: []string{"c"},
		Usage:   "path to config file",
		Value:   DefaultConfigFile,
	}
	modeFlag := &cli.StringFlag{
		Name:    FlagMode,
		Aliases: []string{"m"},
		Usage:   "category filter: fantasy or isekai",
		Value:   DefaultMode,
	}
	verboseFlag := &cli.BoolFlag{
		Name:    FlagVerbose,
		Aliases: []string{"v"},
		Usage:   "enable verbose logging",
	}
	jsonFlag := &cli.BoolFlag{
		Name:  FlagJSONOutput,
		Usage: "print results as JSON instead of a report",
	}

	return &cli.Command{
		Name:        "taste-spectrum",
		Usage:       "Place an anime list on a taste spectrum between reference users",
		Version:     "1.0.0",
		Description: "Compare an AniList or MyAnimeList profile against reference users and compute a similarity spectrum or compass position.",
		Flags: []cli.Flag{
			configFlag,
			modeFlag,
			verboseFlag,
			jsonFlag,
		},
		Commands: []*cli.Command{
			newAnalyzeCommand(),
			newCompareCommand(),
			newDownloadCommand(),
			newStatusCommand(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			// A bare username argument behaves like "analyze <username>".
			if cmd.Args().Present() {
				return runAnalyze(ctx, cmd)
			}
			return cli.ShowAppHelp(cmd)
		},
	}
}

// RunCLI executes the CLI application
func RunCLI() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cmd := NewCLI()

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "\nError: %v\n\n", err)
		return fmt.Errorf("command failed")
	}

	return nil
}

// setupApp loads config, builds the logger and wires the app graph. Shared
// by every command.
func setupApp(ctx context.Context, cmd *cli.Command) (*App, context.Context, error) {
	config, err := loadConfigFromFile(cmd.String(FlagConfigFile))
	if err != nil {
		return nil, ctx, fmt.Errorf("error loading config: %w", err)
	}

	logger := NewLogger(cmd.Bool(FlagVerbose))
	ctx = WithLogger(ctx, logger)

	return NewApp(ctx, config, logger), ctx, nil
}

func parseModeFlag(cmd *cli.Command) (Mode, error) {
	return ParseMode(cmd.String(FlagMode))
}
