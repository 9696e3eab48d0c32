package main

// Command-line flag names
const (
	FlagConfigFile = "config"
	FlagMode       = "mode"
	FlagComparison = "comparison"
	FlagPlatform   = "platform"
	FlagVerbose    = "verbose"
	FlagJSONOutput = "json"
)

// Default values for command-line flags
const (
	DefaultConfigFile = "config.yaml"
	DefaultMode       = string(ModeFantasy)
	DefaultComparison = string(ComparisonTwoUser)
	DefaultPlatform   = string(PlatformAnilist)
)
