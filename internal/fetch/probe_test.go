package fetch

import (
	"context"
	"testing"
	"time"

	"mediafetch/constants"
	"mediafetch/internal/common"
)

func TestProbe_ParsesMetadata(t *testing.T) {
	runner := &fakeRunner{stdout: []byte(`{
		"title": "Episode Title",
		"duration": 1423.5,
		"series": "Some Show",
		"season_number": 2,
		"episode_number": 7,
		"formats": [
			{"format_id": "hls-1080", "vcodec": "avc1", "acodec": "none", "height": 1080, "ext": "mp4", "tbr": 4500},
			{"format_id": "audio-hin", "vcodec": "none", "acodec": "aac", "abr": 128, "ext": "m4a", "language": "hin"}
		]
	}`)}
	f := NewFetcher(runner, "yt-dlp", Options{}, time.Minute, nil)

	md, err := f.Probe(context.Background(), "https://www.hotstar.com/in/shows/x", constants.PlatformHotstar, "", time.Minute)
	if err != nil {
		t.Fatalf("probe: %v", err)
	}
	if md.Title != "Episode Title" || md.Series != "Some Show" {
		t.Errorf("metadata = %+v", md)
	}
	if md.SeasonNumber != 2 || md.EpisodeNumber != 7 {
		t.Errorf("season/episode = %d/%d", md.SeasonNumber, md.EpisodeNumber)
	}
	if len(md.Videos) != 1 || md.Videos[0].ID != "hls-1080" {
		t.Errorf("videos = %+v", md.Videos)
	}
	if len(md.Audios) != 1 || md.Audios[0].Language != "Hindi" {
		t.Errorf("audios = %+v", md.Audios)
	}
	if argAfter(runner.gotArgs, "-J") == "" && runner.gotArgs[len(runner.gotArgs)-2] != "-J" {
		t.Errorf("expected -J probe flag, args: %v", runner.gotArgs)
	}
}

func TestProbe_MalformedJSONIsToolFailure(t *testing.T) {
	runner := &fakeRunner{stdout: []byte("not json")}
	f := NewFetcher(runner, "yt-dlp", Options{}, time.Minute, nil)

	_, err := f.Probe(context.Background(), "https://youtu.be/abc", constants.PlatformYouTube, "", time.Minute)
	if err == nil {
		t.Fatal("expected failure")
	}
	if got := common.KindOf(err); got != common.KindToolFailure {
		t.Errorf("kind = %q, want %q", got, common.KindToolFailure)
	}
}

func TestFilterVideoFormats(t *testing.T) {
	formats := []rawFormat{
		{FormatID: "v-720", VCodec: "avc1", ACodec: "none", Height: 720, TBR: 2000, Ext: "mp4"},
		{FormatID: "v-1080", VCodec: "avc1", ACodec: "none", Height: 1080, TBR: 4500, Ext: "mp4"},
		{FormatID: "v-1080-lo", VCodec: "avc1", ACodec: "none", Height: 1080, TBR: 2500, Ext: "mp4"},
		{FormatID: "muxed", VCodec: "avc1", ACodec: "aac", Height: 360, TBR: 800, Ext: "mp4"},
		{FormatID: "audio-only", VCodec: "none", ACodec: "aac", ABR: 128},
		{FormatID: "v-720", VCodec: "avc1", Height: 720}, // duplicate id dropped
		{FormatID: "patchy", Resolution: "1920x1080", Ext: "ts"},
		{VCodec: "avc1", Height: 480}, // no id, dropped
	}

	out := FilterVideoFormats(formats)

	wantOrder := []string{"v-1080", "v-1080-lo", "patchy", "v-720", "muxed"}
	if len(out) != len(wantOrder) {
		t.Fatalf("got %d formats, want %d: %+v", len(out), len(wantOrder), out)
	}
	for i, id := range wantOrder {
		if out[i].ID != id {
			t.Errorf("position %d = %q, want %q", i, out[i].ID, id)
		}
	}

	// height recovered from the WxH resolution string
	for _, f := range out {
		if f.ID == "patchy" && f.Height != 1080 {
			t.Errorf("patchy height = %d, want 1080", f.Height)
		}
		if f.ID == "muxed" && !f.HasAudio {
			t.Error("muxed format should report HasAudio")
		}
	}
}

func TestFilterAudioFormats(t *testing.T) {
	formats := []rawFormat{
		{FormatID: "a-hin-hi", VCodec: "none", ACodec: "aac", ABR: 256, Language: "hin", Ext: "m4a"},
		{FormatID: "a-hin-lo", VCodec: "none", ACodec: "aac", ABR: 64, Language: "hin", Ext: "m4a"},
		{FormatID: "a-eng", VCodec: "none", ACodec: "aac", ABR: 128, Language: "eng", Ext: "m4a"},
		{FormatID: "a-unknown", VCodec: "none", ACodec: "aac", ABR: 96, Ext: "m4a"},
		{FormatID: "muxed", VCodec: "avc1", ACodec: "aac", ABR: 128}, // not audio-only
		{FormatID: "video", VCodec: "avc1", ACodec: "none"},
	}

	out := FilterAudioFormats(formats)

	// language ascending, bitrate descending within a language
	wantOrder := []string{"a-eng", "a-hin-hi", "a-hin-lo", "a-unknown"}
	if len(out) != len(wantOrder) {
		t.Fatalf("got %d formats, want %d: %+v", len(out), len(wantOrder), out)
	}
	for i, id := range wantOrder {
		if out[i].ID != id {
			t.Errorf("position %d = %q, want %q", i, out[i].ID, id)
		}
	}
	if out[1].Language != "Hindi" {
		t.Errorf("language = %q, want Hindi", out[1].Language)
	}
	if out[3].Language != "Unknown" {
		t.Errorf("missing language = %q, want Unknown", out[3].Language)
	}
}
