package core

import (
	"testing"

	"mediafetch/constants"
	"mediafetch/internal/fetch"
)

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`Movie: The "Sequel" #2`, "Movie The Sequel 2"},
		{`a\b/c*d?e`, "abcde"},
		{"  padded  ", "padded"},
		{"plain title", "plain title"},
		{`<>|#%`, ""},
	}
	for _, tc := range cases {
		if got := sanitizeFilename(tc.in); got != tc.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPublishedFilename(t *testing.T) {
	episode := &fetch.Metadata{
		Title:         "The One Where It Works",
		Series:        "Some Show",
		SeasonNumber:  3,
		EpisodeNumber: 7,
	}
	got := publishedFilename(episode, constants.PlatformHotstar, "fallback")
	want := "Some Show - S03E07 - The One Where It Works [Hotstar] WEB-DL"
	if got != want {
		t.Errorf("episode name = %q, want %q", got, want)
	}

	// plain title without series metadata
	movie := &fetch.Metadata{Title: "Standalone Film"}
	got = publishedFilename(movie, constants.PlatformYouTube, "fallback")
	if got != "Standalone Film [YouTube] WEB-DL" {
		t.Errorf("movie name = %q", got)
	}

	// no metadata at all falls back to the job id
	got = publishedFilename(nil, constants.PlatformGeneric, "1234-abcd")
	if got != "1234-abcd [WEB] WEB-DL" {
		t.Errorf("fallback name = %q", got)
	}

	// partial series metadata does not produce a bogus S00E00
	partial := &fetch.Metadata{Title: "Special", Series: "Some Show"}
	got = publishedFilename(partial, constants.PlatformZee5, "fallback")
	if got != "Special [ZEE5] WEB-DL" {
		t.Errorf("partial metadata name = %q", got)
	}
}
