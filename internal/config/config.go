// Package config provides configuration loading and default values.
package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// ReferenceUser names one reference account and the platform it lives on.
// Order in the lists below is meaningful: for the 2-user spectrum the first
// user is position 0 and the second 100; for the 4-user compass the corners
// are top-left, top-right, bottom-left, bottom-right in list order.
type ReferenceUser struct {
	Name     string `yaml:"name"`
	Platform string `yaml:"platform"`
	Username string `yaml:"username"`
}

type MyAnimeListConfig struct {
	ClientID    string `yaml:"client_id"`
	AccessToken string `yaml:"access_token"`
}

type Config struct {
	DataDir     string            `yaml:"data_dir"`
	MyAnimeList MyAnimeListConfig `yaml:"myanimelist"`

	// AniList classification lookups are throttled to this many requests
	// per minute (shared across the whole process run).
	AnilistRequestsPerMinute int `yaml:"anilist_requests_per_minute"`

	TwoUserReferences  []ReferenceUser `yaml:"two_user_references"`
	FourUserReferences []ReferenceUser `yaml:"four_user_references"`
}

// Default returns the built-in configuration: the canonical reference
// accounts the public datasets were built from.
func Default() Config {
	return Config{
		DataDir:                  "data",
		AnilistRequestsPerMinute: 30,
		TwoUserReferences: []ReferenceUser{
			{Name: "Pastafarianin", Platform: "mal", Username: "Pastafarianin"},
			{Name: "Kodjax", Platform: "anilist", Username: "Kodjax"},
		},
		FourUserReferences: []ReferenceUser{
			{Name: "Pastafarianin", Platform: "mal", Username: "Pastafarianin"},
			{Name: "Kodjax", Platform: "anilist", Username: "Kodjax"},
			{Name: "MaYxS", Platform: "anilist", Username: "MaYxS"},
			{Name: "Blonzej", Platform: "anilist", Username: "Blonzej"},
		},
	}
}

// Load reads configuration from a YAML file and applies environment
// overrides. A missing file is not an error: defaults apply.
func Load(filename string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		if !os.IsNotExist(err) {
			return Config{}, err
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}

	if clientID := os.Getenv("MAL_CLIENT_ID"); clientID != "" {
		cfg.MyAnimeList.ClientID = clientID
	}

	if token := os.Getenv("MAL_ACCESS_TOKEN"); token != "" {
		cfg.MyAnimeList.AccessToken = token
	}

	if dir := os.Getenv("TASTE_DATA_DIR"); dir != "" {
		cfg.DataDir = dir
	}

	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	if cfg.AnilistRequestsPerMinute <= 0 {
		cfg.AnilistRequestsPerMinute = 30
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if n := len(c.TwoUserReferences); n != 2 {
		return fmt.Errorf("two_user_references needs exactly 2 users, got %d", n)
	}
	if n := len(c.FourUserReferences); n != 4 {
		return fmt.Errorf("four_user_references needs exactly 4 users, got %d", n)
	}
	return nil
}
