package tool

import (
	"fmt"
	"os/exec"
)

// DependencyReport describes whether the external binaries are reachable.
type DependencyReport struct {
	YTDLPFound  bool   `json:"yt_dlp_found"`
	YTDLPPath   string `json:"yt_dlp_path,omitempty"`
	FFmpegFound bool   `json:"ffmpeg_found"`
	FFmpegPath  string `json:"ffmpeg_path,omitempty"`
}

// DependencyStatus probes PATH for the configured binaries.
func DependencyStatus(ytdlp, ffmpeg string) DependencyReport {
	report := DependencyReport{}
	if path, err := exec.LookPath(ytdlp); err == nil {
		report.YTDLPFound = true
		report.YTDLPPath = path
	}
	if path, err := exec.LookPath(ffmpeg); err == nil {
		report.FFmpegFound = true
		report.FFmpegPath = path
	}
	return report
}

// CheckDependencies fails fast when a required binary is missing.
func CheckDependencies(ytdlp, ffmpeg string) error {
	report := DependencyStatus(ytdlp, ffmpeg)
	if !report.YTDLPFound {
		return fmt.Errorf("missing dependency: %s is not installed or not on PATH", ytdlp)
	}
	if !report.FFmpegFound {
		return fmt.Errorf("missing dependency: %s is required for merging and was not found on PATH", ffmpeg)
	}
	return nil
}
