package fetch

import (
	"fmt"
	"os"
	"path/filepath"

	"mediafetch/constants"
)

const (
	desktopUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	// Some OTT extractors only serve server IPs that look like residential
	// clients in the target region.
	spoofForwardedFor = "103.208.220.12"
)

// Options shape a retrieval-tool invocation for one platform.
type Options struct {
	// CookiesDir holds optional long-lived per-platform cookie files
	// (<dir>/<platform>.txt). A per-job cookie file takes precedence.
	CookiesDir string
}

// baseArgs are shared by every invocation. Cache is disabled to avoid stale
// extractor state between jobs.
func baseArgs() []string {
	return []string{
		"--no-playlist",
		"--no-warnings",
		"--no-check-certificates",
		"--no-cache-dir",
		"--newline",
	}
}

// platformArgs returns the extractor tuning for a platform, mirroring the
// site quirks the service has to work around.
func platformArgs(p constants.Platform) []string {
	var args []string
	switch p {
	case constants.PlatformHotstar:
		args = append(args,
			"--concurrent-fragments", "1",
			"--extractor-args", "hotstar:min_timestamp=0",
			"--add-headers", "User-Agent:"+desktopUA,
			"--add-headers", "Referer:https://www.hotstar.com/",
			"--add-headers", "Origin:https://www.hotstar.com",
			"--add-headers", "X-Forwarded-For:"+spoofForwardedFor,
		)
	case constants.PlatformZee5:
		args = append(args,
			"--add-headers", "User-Agent:"+desktopUA,
			"--add-headers", "Referer:https://www.zee5.com/",
			"--add-headers", "Origin:https://www.zee5.com",
			"--add-headers", "X-Forwarded-For:"+spoofForwardedFor,
		)
	case constants.PlatformYouTube, constants.PlatformGeneric:
		// The web client trips geo blocks on server IPs; android and ios
		// clients do not.
		args = append(args,
			"--extractor-args", "youtube:player_client=android,ios",
			"--geo-bypass-country", "IN",
			"--add-headers", "X-Forwarded-For:"+spoofForwardedFor,
		)
	}
	return args
}

// cookieArgs attaches the job cookie file when present, otherwise the
// platform's long-lived cookie file if one exists on disk.
func (o Options) cookieArgs(p constants.Platform, jobCookiePath string) []string {
	if jobCookiePath != "" {
		return []string{"--cookies", jobCookiePath}
	}
	if o.CookiesDir == "" {
		return nil
	}
	path := filepath.Join(o.CookiesDir, fmt.Sprintf("%s.txt", p))
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	return []string{"--cookies", path}
}

// trackFormat selects the retrieval-tool format expression for a track.
// Explicit format IDs from a probe are trusted as-is. Audio is requested
// strictly as audio-only: a source with no separate audio track must surface
// as a not-found outcome, not silently degrade to a muxed stream.
func trackFormat(kind constants.TrackKind, formatID string) string {
	if formatID != "" {
		return formatID
	}
	switch kind {
	case constants.TrackVideo:
		return "bv*"
	case constants.TrackAudio:
		return "ba"
	}
	return "b"
}
