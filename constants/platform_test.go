package constants

import "testing"

func TestDetectPlatform(t *testing.T) {
	cases := []struct {
		url  string
		want Platform
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", PlatformYouTube},
		{"https://youtu.be/dQw4w9WgXcQ", PlatformYouTube},
		{"https://www.zee5.com/tv-shows/details/abc/0-6-123", PlatformZee5},
		{"https://www.hotstar.com/in/shows/xyz/1260000001", PlatformHotstar},
		{"https://www.sonyliv.com/shows/abc-1700000123", PlatformSonyLIV},
		{"https://twitter.com/user/status/123456", PlatformTwitter},
		{"https://x.com/user/status/123456", PlatformTwitter},
		{"https://www.instagram.com/reel/Cabc123/", PlatformInstagram},
		{"https://www.reddit.com/r/videos/comments/abc/", PlatformReddit},
		{"https://example.org/some/video.mp4", PlatformGeneric},
		{"", PlatformGeneric},
	}

	for _, tc := range cases {
		if got := DetectPlatform(tc.url); got != tc.want {
			t.Errorf("DetectPlatform(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}

func TestValidPlatform(t *testing.T) {
	for _, p := range Platforms() {
		if !ValidPlatform(string(p)) {
			t.Errorf("expected %q to be valid", p)
		}
	}
	for _, name := range []string{"", "netflix", "YouTube"} {
		if ValidPlatform(name) {
			t.Errorf("expected %q to be invalid", name)
		}
	}
}

func TestMatchesPlatform(t *testing.T) {
	if !MatchesPlatform("https://youtu.be/abc", PlatformYouTube) {
		t.Error("expected youtu.be to match youtube")
	}
	if MatchesPlatform("https://youtu.be/abc", PlatformHotstar) {
		t.Error("expected youtu.be not to match hotstar")
	}
	// generic matches anything, it is the fallback
	if !MatchesPlatform("https://example.org/clip", PlatformGeneric) {
		t.Error("expected generic to match any URL")
	}
}

func TestDisplayTag(t *testing.T) {
	if got := PlatformHotstar.DisplayTag(); got != "Hotstar" {
		t.Errorf("DisplayTag() = %q, want %q", got, "Hotstar")
	}
	if got := PlatformGeneric.DisplayTag(); got != "WEB" {
		t.Errorf("DisplayTag() = %q, want %q", got, "WEB")
	}
}

func TestTrackKind_Filename(t *testing.T) {
	if TrackVideo.Filename() == TrackAudio.Filename() {
		t.Error("track filenames must differ so concurrent tasks never collide")
	}
}
