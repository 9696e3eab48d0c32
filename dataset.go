package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DatasetMetadata describes when and how a reference dataset was built.
type DatasetMetadata struct {
	DownloadedAt time.Time `json:"downloadedAt"`
	FilterType   Mode      `json:"filterType"`
	TotalAnime   int       `json:"totalAnime"`
	TotalUsers   int       `json:"totalUsers"`
}

// Dataset is one on-disk reference file: the profiles of the reference users
// with their lists already filtered to one category.
type Dataset struct {
	BaseUsers map[string]UserProfile `json:"baseUsers"`
	Metadata  DatasetMetadata        `json:"metadata"`
}

// DatasetStore reads and writes reference dataset files under one directory.
// Files are named base-users-<mode>.json for the 2-user pair and
// base-users-<mode>-4user.json for the compass set.
type DatasetStore struct {
	dir string
}

// NewDatasetStore creates a store rooted at dir.
func NewDatasetStore(dir string) *DatasetStore {
	return &DatasetStore{dir: dir}
}

func datasetFileName(mode Mode, comparisonMode ComparisonMode) string {
	if comparisonMode == ComparisonFourUser {
		return fmt.Sprintf("base-users-%s-4user.json", mode)
	}
	return fmt.Sprintf("base-users-%s.json", mode)
}

func (s *DatasetStore) path(mode Mode, comparisonMode ComparisonMode) string {
	return filepath.Join(s.dir, datasetFileName(mode, comparisonMode))
}

// Load reads one dataset file.
func (s *DatasetStore) Load(mode Mode, comparisonMode ComparisonMode) (*Dataset, error) {
	path := s.path(mode, comparisonMode)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", path, err)
	}

	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parsing dataset %s: %w", path, err)
	}

	return &ds, nil
}

// Save writes one dataset file, creating the directory if needed.
func (s *DatasetStore) Save(ctx context.Context, mode Mode, comparisonMode ComparisonMode, ds *Dataset) error {
	if err := os.MkdirAll(s.dir, DatasetDirPerms); err != nil {
		return fmt.Errorf("creating dataset dir %s: %w", s.dir, err)
	}

	path := s.path(mode, comparisonMode)

	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding dataset: %w", err)
	}

	if err := os.WriteFile(path, data, DatasetFilePerms); err != nil {
		return fmt.Errorf("writing dataset %s: %w", path, err)
	}

	LogInfoSuccess(ctx, "Saved %s (%d users, %d anime)", path, len(ds.BaseUsers), ds.Metadata.TotalAnime)
	return nil
}

// ReferenceListsFor resolves the ordered reference lists for an analysis:
// each configured reference user's profile is pulled from the dataset and
// its scores translated onto the 0-10 scale. A reference missing from the
// dataset contributes an empty list rather than failing the analysis.
func (s *DatasetStore) ReferenceListsFor(ctx context.Context, refs []ReferenceUser, mode Mode, comparisonMode ComparisonMode) ([]ReferenceList, error) {
	ds, err := s.Load(mode, comparisonMode)
	if err != nil {
		return nil, err
	}

	lists := make([]ReferenceList, len(refs))
	for i, ref := range refs {
		lists[i] = ReferenceList{Name: ref.Name}

		profile, ok := lookupBaseUser(ds, ref.Username)
		if !ok {
			LogWarn(ctx, "Reference user %q missing from dataset %s", ref.Username, datasetFileName(mode, comparisonMode))
			continue
		}

		lists[i].Records = translatedProfileList(profile.AnimeList, profile.ScoreFormat)
	}

	return lists, nil
}

// lookupBaseUser finds a profile by username key, case-insensitively: the
// download script keys files by lowercased username.
func lookupBaseUser(ds *Dataset, username string) (UserProfile, bool) {
	if profile, ok := ds.BaseUsers[username]; ok {
		return profile, true
	}
	for key, profile := range ds.BaseUsers {
		if strings.EqualFold(key, username) {
			return profile, true
		}
	}
	return UserProfile{}, false
}

// DatasetStatus summarizes one dataset file for the status command.
type DatasetStatus struct {
	File         string
	Exists       bool
	DownloadedAt time.Time
	AgeHours     float64
	TotalUsers   int
	TotalAnime   int
	UserCounts   map[string]int
}

// Status inspects one dataset file without failing on absence.
func (s *DatasetStore) Status(mode Mode, comparisonMode ComparisonMode) DatasetStatus {
	status := DatasetStatus{File: s.path(mode, comparisonMode)}

	ds, err := s.Load(mode, comparisonMode)
	if err != nil {
		return status
	}

	status.Exists = true
	status.DownloadedAt = ds.Metadata.DownloadedAt
	status.AgeHours = time.Since(ds.Metadata.DownloadedAt).Hours()
	status.TotalUsers = len(ds.BaseUsers)
	status.TotalAnime = ds.Metadata.TotalAnime
	status.UserCounts = make(map[string]int, len(ds.BaseUsers))
	for name, profile := range ds.BaseUsers {
		status.UserCounts[name] = len(profile.AnimeList)
	}

	return status
}
