package constants

import "regexp"

// Platform identifies the site a URL belongs to. It selects per-site
// retrieval-tool options and the cookie file used for authenticated fetches.
type Platform string

const (
	PlatformYouTube   Platform = "youtube"
	PlatformZee5      Platform = "zee5"
	PlatformHotstar   Platform = "hotstar"
	PlatformSonyLIV   Platform = "sonyliv"
	PlatformTwitter   Platform = "twitter"
	PlatformInstagram Platform = "instagram"
	PlatformReddit    Platform = "reddit"
	PlatformGeneric   Platform = "generic"
)

var platformPatterns = map[Platform][]*regexp.Regexp{
	PlatformYouTube:   {regexp.MustCompile(`(?i)youtube\.com`), regexp.MustCompile(`(?i)youtu\.be`)},
	PlatformZee5:      {regexp.MustCompile(`(?i)zee5\.com`)},
	PlatformHotstar:   {regexp.MustCompile(`(?i)hotstar\.com`)},
	PlatformSonyLIV:   {regexp.MustCompile(`(?i)sonyliv\.com`)},
	PlatformTwitter:   {regexp.MustCompile(`(?i)twitter\.com`), regexp.MustCompile(`(?i)\bx\.com`)},
	PlatformInstagram: {regexp.MustCompile(`(?i)instagram\.com`)},
	PlatformReddit:    {regexp.MustCompile(`(?i)reddit\.com`)},
}

// Platforms lists every supported platform, generic last.
func Platforms() []Platform {
	return []Platform{
		PlatformYouTube, PlatformZee5, PlatformHotstar, PlatformSonyLIV,
		PlatformTwitter, PlatformInstagram, PlatformReddit, PlatformGeneric,
	}
}

// DetectPlatform matches the URL against known site patterns, falling back to
// generic when nothing matches.
func DetectPlatform(rawURL string) Platform {
	if rawURL == "" {
		return PlatformGeneric
	}
	for _, p := range Platforms() {
		for _, re := range platformPatterns[p] {
			if re.MatchString(rawURL) {
				return p
			}
		}
	}
	return PlatformGeneric
}

// ValidPlatform reports whether the name is a known platform.
func ValidPlatform(name string) bool {
	for _, p := range Platforms() {
		if string(p) == name {
			return true
		}
	}
	return false
}

// MatchesPlatform reports whether the URL matches the given platform's
// patterns. Generic matches anything.
func MatchesPlatform(rawURL string, p Platform) bool {
	if p == PlatformGeneric {
		return true
	}
	for _, re := range platformPatterns[p] {
		if re.MatchString(rawURL) {
			return true
		}
	}
	return false
}

// DisplayTag is the bracket tag used in published filenames.
func (p Platform) DisplayTag() string {
	switch p {
	case PlatformYouTube:
		return "YouTube"
	case PlatformZee5:
		return "ZEE5"
	case PlatformHotstar:
		return "Hotstar"
	case PlatformSonyLIV:
		return "SonyLIV"
	case PlatformTwitter:
		return "Twitter"
	case PlatformInstagram:
		return "Instagram"
	case PlatformReddit:
		return "Reddit"
	}
	return "WEB"
}
