package main

import "testing"

func TestFilterByMode(t *testing.T) {
	t.Parallel()

	records := []AnimeRecord{
		{PlatformID: 1, Title: "Pure Fantasy", Genres: []string{"Action", "Fantasy"}},
		{PlatformID: 2, Title: "Dark Fantasy Theme", Themes: []string{"Dark Fantasy"}},
		{PlatformID: 3, Title: "Isekai Show", Themes: []string{"Isekai"}},
		{PlatformID: 4, Title: "Reverse Isekai Show", Themes: []string{"Reverse Isekai"}},
		{PlatformID: 5, Title: "Slice of Life", Genres: []string{"Slice of Life"}},
	}

	fantasy := FilterByMode(records, ModeFantasy)
	if len(fantasy) != 2 {
		t.Fatalf("fantasy count = %d; want 2", len(fantasy))
	}
	if fantasy[0].PlatformID != 1 || fantasy[1].PlatformID != 2 {
		t.Errorf("fantasy filter picked %v", fantasy)
	}

	isekai := FilterByMode(records, ModeIsekai)
	if len(isekai) != 2 {
		t.Fatalf("isekai count = %d; want 2", len(isekai))
	}
	if isekai[0].PlatformID != 3 || isekai[1].PlatformID != 4 {
		t.Errorf("isekai filter picked %v", isekai)
	}
}

func TestFilterByMode_PreservesOrder(t *testing.T) {
	t.Parallel()

	records := []AnimeRecord{
		{PlatformID: 3, Genres: []string{"Fantasy"}},
		{PlatformID: 1, Genres: []string{"Fantasy"}},
		{PlatformID: 2, Genres: []string{"Fantasy"}},
	}

	got := FilterByMode(records, ModeFantasy)
	for i, rec := range got {
		if rec.PlatformID != records[i].PlatformID {
			t.Fatalf("order changed at %d: got %d want %d", i, rec.PlatformID, records[i].PlatformID)
		}
	}
}

func TestApplyClassification(t *testing.T) {
	t.Parallel()

	records := []AnimeRecord{
		{PlatformID: 100, MALID: intPtr(100), Title: "A", Genres: []string{"Action"}},
		{PlatformID: 200, MALID: intPtr(200), Title: "B", Genres: []string{"Fantasy"}},
		{PlatformID: 300, MALID: intPtr(300), Title: "C"},
	}
	classes := map[int]Classification{
		100: {HasFantasy: true, HasIsekai: true, IsekaiRank: intPtr(95)},
		200: {HasFantasy: true},
	}

	got := ApplyClassification(records, classes)

	if !hasGenre(got[0], "Fantasy") || !hasTheme(got[0], "Isekai") {
		t.Errorf("record A not enriched: %+v", got[0])
	}
	if got[0].IsekaiRank == nil || *got[0].IsekaiRank != 95 {
		t.Errorf("record A isekai rank = %v; want 95", got[0].IsekaiRank)
	}

	// Already carrying the genre: no duplicate appended.
	if len(got[1].Genres) != 1 {
		t.Errorf("record B genres = %v; want no duplicate Fantasy", got[1].Genres)
	}

	// Unclassified record passes through untouched.
	if len(got[2].Genres) != 0 || len(got[2].Themes) != 0 {
		t.Errorf("record C changed: %+v", got[2])
	}
}
