// Package fetch acquires single media tracks through the external retrieval
// tool and classifies its failures into the pipeline error taxonomy.
package fetch

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"time"

	"mediafetch/constants"
	"mediafetch/internal/common"
	"mediafetch/internal/tool"
)

// Request describes one track acquisition.
type Request struct {
	URL        string
	Platform   constants.Platform
	Track      constants.TrackKind
	FormatID   string // optional explicit format from a probe
	CookiePath string // optional per-job cookie file
	DestPath   string // exact output path inside the job workspace
}

// Fetcher invokes the retrieval tool for single tracks.
type Fetcher struct {
	runner  tool.Runner
	binary  string
	opts    Options
	timeout time.Duration
	logger  *slog.Logger
}

func NewFetcher(runner tool.Runner, binary string, opts Options, timeout time.Duration, logger *slog.Logger) *Fetcher {
	if runner == nil {
		runner = tool.ExecRunner{}
	}
	if binary == "" {
		binary = "yt-dlp"
	}
	if timeout <= 0 {
		timeout = 30 * time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{runner: runner, binary: binary, opts: opts, timeout: timeout, logger: logger}
}

// Fetch downloads exactly one track to req.DestPath. On any failure or
// cancellation the partial output is removed before returning, so the caller
// never observes a half-written file.
func (f *Fetcher) Fetch(ctx context.Context, req Request) error {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	args := baseArgs()
	args = append(args, platformArgs(req.Platform)...)
	args = append(args, f.opts.cookieArgs(req.Platform, req.CookiePath)...)
	args = append(args,
		"-f", trackFormat(req.Track, req.FormatID),
		"-o", req.DestPath,
		req.URL,
	)

	f.logger.Info("fetch start", "url", req.URL, "track", req.Track, "dest", req.DestPath)
	_, stderr, err := f.runner.Run(ctx, f.binary, args...)
	if err != nil {
		f.discardPartial(req.DestPath)
		if cause := ctx.Err(); cause != nil {
			if errors.Is(cause, context.DeadlineExceeded) {
				return common.Ef(common.KindNetworkTransient, cause, "%s fetch timed out after %s", req.Track, f.timeout)
			}
			return cause // cancelled by the job, not a tool failure
		}
		kind := ClassifyToolError(string(stderr))
		return common.Ef(kind, err, "%s fetch failed (exit %d): %s", req.Track, tool.ExitCode(err), firstStderrLine(stderr))
	}

	info, statErr := os.Stat(req.DestPath)
	if statErr != nil || info.Size() == 0 {
		f.discardPartial(req.DestPath)
		return common.Ef(common.KindToolFailure, statErr, "%s fetch produced no output at %s", req.Track, req.DestPath)
	}

	f.logger.Info("fetch done", "track", req.Track, "dest", req.DestPath, "bytes", info.Size())
	return nil
}

// discardPartial removes whatever the tool left behind, including its
// in-progress suffixes.
func (f *Fetcher) discardPartial(dest string) {
	for _, p := range []string{dest, dest + ".part", dest + ".ytdl"} {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			f.logger.Warn("partial cleanup failed", "path", p, "error", err)
		}
	}
}

// ClassifyToolError maps retrieval-tool stderr onto the error taxonomy.
// Ordering matters: authentication markers win over availability markers,
// which win over network markers. Anything unrecognized is ToolFailure.
func ClassifyToolError(stderr string) common.Kind {
	s := strings.ToLower(stderr)
	switch {
	case containsAny(s,
		"sign in to confirm",
		"login required",
		"log in",
		"cookies",
		"premium",
		"private video",
		"members-only",
		"subscriber",
		"account",
		"401",
		"403"):
		return common.KindAuthRequired
	case containsAny(s,
		"requested format is not available",
		"no video formats found",
		"video unavailable",
		"this video is not available",
		"does not exist",
		"not found",
		"404"):
		return common.KindNotFound
	case containsAny(s,
		"timed out",
		"timeout",
		"connection reset",
		"connection refused",
		"temporary failure",
		"unable to download webpage",
		"network",
		"unexpected eof",
		"429",
		"502",
		"503"):
		return common.KindNetworkTransient
	default:
		return common.KindToolFailure
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func firstStderrLine(stderr []byte) string {
	s := strings.TrimSpace(string(stderr))
	if s == "" {
		return "no stderr output"
	}
	// The last line usually carries the extractor's actual error.
	lines := strings.Split(s, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return s
}
