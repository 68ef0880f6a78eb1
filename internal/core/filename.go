package core

import (
	"fmt"
	"regexp"
	"strings"

	"mediafetch/constants"
	"mediafetch/internal/fetch"
)

var unsafeFilenameChars = regexp.MustCompile(`[\\/*?:"<>|#%]`)

// sanitizeFilename strips characters that break filesystems or URLs.
func sanitizeFilename(name string) string {
	return strings.TrimSpace(unsafeFilenameChars.ReplaceAllString(name, ""))
}

// publishedFilename shapes the durable artifact name: episode-aware when the
// extractor reported series metadata, tagged with the platform.
func publishedFilename(md *fetch.Metadata, platform constants.Platform, fallback string) string {
	base := fallback
	if md != nil && md.Title != "" {
		base = md.Title
	}
	if md != nil && md.Series != "" && md.SeasonNumber > 0 && md.EpisodeNumber > 0 {
		base = fmt.Sprintf("%s - S%02dE%02d - %s", md.Series, md.SeasonNumber, md.EpisodeNumber, base)
	}
	name := sanitizeFilename(fmt.Sprintf("%s [%s] WEB-DL", base, platform.DisplayTag()))
	if name == "" {
		name = fallback
	}
	return name
}
