package main

import (
	cfg "github.com/kodjax/taste-spectrum/internal/config"
)

// Re-export config types from internal/config so callers in package main
// can use the same type names.
type Config = cfg.Config
type ReferenceUser = cfg.ReferenceUser

func loadConfigFromFile(filename string) (Config, error) {
	return cfg.Load(filename)
}

// referencesFor returns the ordered reference users for a comparison mode.
func referencesFor(c Config, mode ComparisonMode) []ReferenceUser {
	if mode == ComparisonFourUser {
		return c.FourUserReferences
	}
	return c.TwoUserReferences
}
