package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"mediafetch/constants"
	"mediafetch/internal/common"
)

// Metadata is the subset of probe output the pipeline cares about.
type Metadata struct {
	Title         string
	Duration      float64 // seconds, 0 when the extractor cannot tell
	Thumbnail     string
	Series        string
	SeasonNumber  int
	EpisodeNumber int
	Videos        []VideoFormat
	Audios        []AudioFormat
}

// VideoFormat is a selectable video stream.
type VideoFormat struct {
	ID         string `json:"id"`
	Resolution string `json:"resolution"`
	Label      string `json:"label"`
	Ext        string `json:"ext"`
	Bitrate    int    `json:"tbr"`
	Height     int    `json:"height"`
	HasAudio   bool   `json:"has_audio"`
}

// AudioFormat is a selectable audio-only stream.
type AudioFormat struct {
	ID       string `json:"id"`
	Language string `json:"language"`
	Bitrate  int    `json:"bitrate"`
	Ext      string `json:"ext"`
	Label    string `json:"label"`
}

// rawInfo mirrors the retrieval tool's -J document loosely; unknown fields
// are ignored and missing ones default, since OTT extractors are patchy.
type rawInfo struct {
	Title         string      `json:"title"`
	Duration      float64     `json:"duration"`
	Thumbnail     string      `json:"thumbnail"`
	Series        string      `json:"series"`
	SeasonNumber  *int        `json:"season_number"`
	EpisodeNumber *int        `json:"episode_number"`
	Formats       []rawFormat `json:"formats"`
}

type rawFormat struct {
	FormatID   string   `json:"format_id"`
	Ext        string   `json:"ext"`
	VCodec     string   `json:"vcodec"`
	ACodec     string   `json:"acodec"`
	Width      int      `json:"width"`
	Height     int      `json:"height"`
	Resolution string   `json:"resolution"`
	FPS        float64  `json:"fps"`
	TBR        float64  `json:"tbr"`
	ABR        float64  `json:"abr"`
	Language   string   `json:"language"`
	FormatNote string   `json:"format_note"`
}

// Probe resolves title, duration and the selectable formats for a URL
// without downloading anything.
func (f *Fetcher) Probe(ctx context.Context, url string, platform constants.Platform, cookiePath string, timeout time.Duration) (*Metadata, error) {
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	args := baseArgs()
	args = append(args, platformArgs(platform)...)
	args = append(args, f.opts.cookieArgs(platform, cookiePath)...)
	args = append(args, "-J", url)

	stdout, stderr, err := f.runner.Run(ctx, f.binary, args...)
	if err != nil {
		if cause := ctx.Err(); cause != nil {
			if errors.Is(cause, context.DeadlineExceeded) {
				return nil, common.Ef(common.KindNetworkTransient, cause, "probe timed out after %s", timeout)
			}
			return nil, cause
		}
		kind := ClassifyToolError(string(stderr))
		return nil, common.Ef(kind, err, "probe failed: %s", firstStderrLine(stderr))
	}

	var info rawInfo
	if err := json.Unmarshal(stdout, &info); err != nil {
		return nil, common.Ef(common.KindToolFailure, err, "probe output is not valid JSON")
	}

	md := &Metadata{
		Title:     info.Title,
		Duration:  info.Duration,
		Thumbnail: info.Thumbnail,
		Series:    info.Series,
		Videos:    FilterVideoFormats(info.Formats),
		Audios:    FilterAudioFormats(info.Formats),
	}
	if info.SeasonNumber != nil {
		md.SeasonNumber = *info.SeasonNumber
	}
	if info.EpisodeNumber != nil {
		md.EpisodeNumber = *info.EpisodeNumber
	}
	return md, nil
}

// FilterVideoFormats keeps every usable video format (muxed or video-only),
// sorted by resolution then bitrate, highest first. Checks are deliberately
// relaxed: OTT extractors often omit codec details, so presence of a
// resolution or a known container is enough.
func FilterVideoFormats(formats []rawFormat) []VideoFormat {
	var out []VideoFormat
	seen := make(map[string]bool)

	for _, f := range formats {
		hasVideo := false
		switch {
		case f.VCodec != "" && f.VCodec != "none":
			hasVideo = true
		case f.Width > 0 || f.Height > 0:
			hasVideo = true
		case isVideoContainer(f.Ext) && f.ACodec != "none":
			// assume muxed if audio exists in a video container
			hasVideo = true
		}
		if !hasVideo || f.FormatID == "" || seen[f.FormatID] {
			continue
		}
		seen[f.FormatID] = true

		height := f.Height
		if height == 0 {
			height = heightFromResolution(f.Resolution)
		}

		hasAudio := f.ACodec != "" && f.ACodec != "none"

		var parts []string
		if height > 0 {
			parts = append(parts, fmt.Sprintf("%dp", height))
		} else {
			parts = append(parts, "Unknown Resolution")
		}
		if f.Ext != "" {
			parts = append(parts, fmt.Sprintf("(%s)", f.Ext))
		}
		if f.FPS > 0 {
			parts = append(parts, fmt.Sprintf("%gfps", f.FPS))
		}
		if f.TBR > 0 {
			parts = append(parts, fmt.Sprintf("%dkbps", int(f.TBR)))
		}
		if hasAudio {
			parts = append(parts, "[Video+Audio]")
		} else {
			parts = append(parts, "[Video Only]")
		}
		if f.FormatNote != "" {
			parts = append(parts, f.FormatNote)
		}

		resolution := "Unknown"
		if height > 0 {
			resolution = fmt.Sprintf("%dp", height)
		}
		out = append(out, VideoFormat{
			ID:         f.FormatID,
			Resolution: resolution,
			Label:      strings.Join(parts, " - "),
			Ext:        f.Ext,
			Bitrate:    int(f.TBR),
			Height:     height,
			HasAudio:   hasAudio,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Height != out[j].Height {
			return out[i].Height > out[j].Height
		}
		return out[i].Bitrate > out[j].Bitrate
	})
	return out
}

var audioLanguageNames = map[string]string{
	"hin": "Hindi", "mal": "Malayalam", "tam": "Tamil", "tel": "Telugu",
	"kan": "Kannada", "ben": "Bengali", "mar": "Marathi", "guj": "Gujarati",
	"pan": "Punjabi", "eng": "English", "jap": "Japanese",
}

// FilterAudioFormats keeps strictly audio-only formats, grouped by language
// and sorted by bitrate within each language.
func FilterAudioFormats(formats []rawFormat) []AudioFormat {
	var out []AudioFormat
	seen := make(map[string]bool)

	for _, f := range formats {
		if f.ACodec == "" || f.ACodec == "none" {
			continue
		}
		if f.VCodec != "" && f.VCodec != "none" {
			continue
		}
		if f.FormatID == "" || seen[f.FormatID] {
			continue
		}
		seen[f.FormatID] = true

		lang := f.Language
		if lang == "" {
			lang = "und"
		}
		if name, ok := audioLanguageNames[lang]; ok {
			lang = name
		}
		if lang == "und" {
			lang = "Unknown"
		}

		label := fmt.Sprintf("%s (%dkbps - %s)", lang, int(f.ABR), f.Ext)
		if f.FormatNote != "" {
			label += fmt.Sprintf(" [%s]", f.FormatNote)
		}

		out = append(out, AudioFormat{
			ID:       f.FormatID,
			Language: lang,
			Bitrate:  int(f.ABR),
			Ext:      f.Ext,
			Label:    label,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Language != out[j].Language {
			return out[i].Language < out[j].Language
		}
		return out[i].Bitrate > out[j].Bitrate
	})
	return out
}

func isVideoContainer(ext string) bool {
	switch ext {
	case "mp4", "mkv", "webm", "ts":
		return true
	}
	return false
}

func heightFromResolution(res string) int {
	if res == "" {
		return 0
	}
	parts := strings.Split(res, "x")
	if len(parts) != 2 {
		return 0
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0
	}
	return h
}
