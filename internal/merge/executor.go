// Package merge multiplexes a fetched video track and audio track into one
// container via the external transcoding tool.
package merge

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"mediafetch/internal/common"
	"mediafetch/internal/tool"
)

// Result is the final artifact reference. Immutable after creation.
type Result struct {
	Path      string
	Bytes     int64
	Validated bool
}

// Executor drives the transcoding tool.
type Executor struct {
	runner        tool.Runner
	ffmpeg        string
	ffprobe       string
	timeout       time.Duration
	durationSlack time.Duration
	logger        *slog.Logger
}

func NewExecutor(runner tool.Runner, ffmpeg, ffprobe string, timeout time.Duration, logger *slog.Logger) *Executor {
	if runner == nil {
		runner = tool.ExecRunner{}
	}
	if ffmpeg == "" {
		ffmpeg = "ffmpeg"
	}
	if ffprobe == "" {
		ffprobe = "ffprobe"
	}
	if timeout <= 0 {
		timeout = 10 * time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{
		runner:        runner,
		ffmpeg:        ffmpeg,
		ffprobe:       ffprobe,
		timeout:       timeout,
		durationSlack: 5 * time.Second,
		logger:        logger,
	}
}

// Merge muxes videoPath and audioPath into outPath. Stream copy first; if
// the tool reports the codecs cannot live in the target container, one
// re-encode pass is attempted. On any failure outPath is removed before
// returning, so a partial artifact is never observable.
func (e *Executor) Merge(ctx context.Context, videoPath, audioPath, outPath string) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	e.logger.Info("merge start", "video", videoPath, "audio", audioPath, "out", outPath)

	stderr, err := e.run(ctx, videoPath, audioPath, outPath, false)
	if err != nil && codecIncompatible(stderr) {
		e.logger.Warn("stream copy rejected, re-encoding", "out", outPath, "detail", firstLine(stderr))
		_ = os.Remove(outPath)
		stderr, err = e.run(ctx, videoPath, audioPath, outPath, true)
	}
	if err != nil {
		_ = os.Remove(outPath)
		if cause := ctx.Err(); cause != nil {
			if errors.Is(cause, context.DeadlineExceeded) {
				return Result{}, common.Ef(common.KindMergeToolFailure, cause, "merge timed out after %s", e.timeout)
			}
			return Result{}, cause
		}
		return Result{}, common.Ef(common.KindMergeToolFailure, err, "merge tool failed (exit %d): %s", tool.ExitCode(err), firstLine(stderr))
	}

	res, err := e.validate(ctx, videoPath, audioPath, outPath)
	if err != nil {
		_ = os.Remove(outPath)
		return Result{}, err
	}

	e.logger.Info("merge done", "out", outPath, "bytes", res.Bytes, "validated", res.Validated)
	return res, nil
}

func (e *Executor) run(ctx context.Context, videoPath, audioPath, outPath string, reencode bool) (string, error) {
	args := []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-i", videoPath,
		"-i", audioPath,
		"-map", "0:v:0",
		"-map", "1:a:0",
	}
	if reencode {
		args = append(args, "-c:v", "libx264", "-c:a", "aac")
	} else {
		args = append(args, "-c", "copy")
	}
	args = append(args, outPath)

	_, stderr, err := e.runner.Run(ctx, e.ffmpeg, args...)
	return string(stderr), err
}

// validate checks the output is non-empty and, when the probe tool is
// available, that its duration is within tolerance of the longer input.
func (e *Executor) validate(ctx context.Context, videoPath, audioPath, outPath string) (Result, error) {
	info, err := os.Stat(outPath)
	if err != nil {
		return Result{}, common.Ef(common.KindValidationFailed, err, "merged file missing at %s", outPath)
	}
	if info.Size() == 0 {
		return Result{}, common.E(common.KindValidationFailed, "merged file is empty", nil)
	}

	res := Result{Path: outPath, Bytes: info.Size()}

	outDur, err := e.probeDuration(ctx, outPath)
	if err != nil {
		// Validation is best effort beyond the size check: a missing or
		// failing probe tool does not fail the job.
		e.logger.Warn("duration probe unavailable, accepting merged file on size check", "out", outPath, "error", err)
		return res, nil
	}

	longest := 0.0
	for _, in := range []string{videoPath, audioPath} {
		if d, err := e.probeDuration(ctx, in); err == nil && d > longest {
			longest = d
		}
	}
	if longest > 0 && math.Abs(outDur-longest) > e.durationSlack.Seconds() {
		return Result{}, common.Ef(common.KindValidationFailed, nil,
			"merged duration %.1fs deviates from input duration %.1fs", outDur, longest)
	}

	res.Validated = true
	return res, nil
}

func (e *Executor) probeDuration(ctx context.Context, path string) (float64, error) {
	stdout, _, err := e.runner.Run(ctx, e.ffprobe,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(strings.TrimSpace(string(stdout)), 64)
}

// codecIncompatible recognizes the tool's incompatible-container complaints
// that justify a re-encode fallback.
func codecIncompatible(stderr string) bool {
	s := strings.ToLower(stderr)
	for _, marker := range []string{
		"codec not currently supported in container",
		"could not find tag for codec",
		"incompatible",
	} {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}

func firstLine(stderr string) string {
	s := strings.TrimSpace(stderr)
	if s == "" {
		return "no stderr output"
	}
	if i := strings.IndexByte(s, '\n'); i > 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}
