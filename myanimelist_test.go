package main

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nstratos/go-myanimelist/mal"
)

func TestRecordFromMALEntry(t *testing.T) {
	t.Parallel()

	entry := mal.UserAnime{
		Anime: mal.Anime{
			ID:    5114,
			Title: "Fullmetal Alchemist: Brotherhood",
			MainPicture: mal.Picture{
				Medium: "https://img/medium.jpg",
				Large:  "https://img/large.jpg",
			},
			Genres: []mal.Genre{
				{Name: "Action"},
				{Name: "Fantasy"},
			},
			NumEpisodes: 64,
			MediaType:   "tv",
			StartSeason: mal.StartSeason{Year: 2009},
		},
		Status: mal.AnimeListStatus{
			Status: mal.AnimeStatusCompleted,
			Score:  9,
		},
	}

	rec := recordFromMALEntry(entry)

	if rec.PlatformID != 5114 {
		t.Errorf("PlatformID = %d; want 5114", rec.PlatformID)
	}
	if rec.MALID == nil || *rec.MALID != 5114 {
		t.Errorf("MALID = %v; want 5114", rec.MALID)
	}
	if rec.Score == nil || *rec.Score != 9 {
		t.Errorf("Score = %v; want 9", rec.Score)
	}
	if rec.Source != PlatformMyAnimeList {
		t.Errorf("Source = %q; want mal", rec.Source)
	}
	if rec.Status != "completed" {
		t.Errorf("Status = %q; want completed", rec.Status)
	}
	if rec.CoverImage != "https://img/large.jpg" {
		t.Errorf("CoverImage = %q; want the large picture", rec.CoverImage)
	}
	if len(rec.Genres) != 2 || rec.Genres[1] != "Fantasy" {
		t.Errorf("Genres = %v; want [Action Fantasy]", rec.Genres)
	}
	if rec.Episodes != 64 || rec.Format != "tv" || rec.Year != 2009 {
		t.Errorf("metadata = %d/%s/%d; want 64/tv/2009", rec.Episodes, rec.Format, rec.Year)
	}
}

func TestRecordFromMALEntry_ZeroScoreIsUnrated(t *testing.T) {
	t.Parallel()

	rec := recordFromMALEntry(mal.UserAnime{Anime: mal.Anime{ID: 1, Title: "X"}})
	if rec.Score != nil {
		t.Errorf("Score = %v; want nil for unrated entry", rec.Score)
	}
}

func TestMALUserError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{"not found", errors.New("GET list: 404 Not Found"), "not found"},
		{"private list", errors.New("GET list: 403 Forbidden"), "private"},
		{"other", errors.New("connection reset"), "MyAnimeList API error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := malUserError("someone", tt.err)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.contains)
			}
		})
	}
}

func TestClientIDTransport(t *testing.T) {
	t.Parallel()

	var gotHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-MAL-CLIENT-ID")
	}))
	defer srv.Close()

	client := &http.Client{Transport: &clientIDTransport{clientID: "abc123", base: http.DefaultTransport}}
	resp, err := client.Get(srv.URL)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if gotHeader != "abc123" {
		t.Errorf("X-MAL-CLIENT-ID = %q; want abc123", gotHeader)
	}
}
