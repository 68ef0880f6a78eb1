package fetch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"mediafetch/constants"
	"mediafetch/internal/common"
)

// fakeRunner scripts one tool invocation: it records the args, optionally
// writes the -o target, and returns the scripted outcome.
type fakeRunner struct {
	stdout    []byte
	stderr    []byte
	err       error
	writeDest string // content written to the -o path before returning
	leaveDest string // content left behind even on failure (partial output)

	gotName string
	gotArgs []string
}

func (r *fakeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	r.gotName = name
	r.gotArgs = args
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	if dest := argAfter(args, "-o"); dest != "" {
		if r.writeDest != "" {
			_ = os.WriteFile(dest, []byte(r.writeDest), 0o644)
		}
		if r.leaveDest != "" {
			_ = os.WriteFile(dest+".part", []byte(r.leaveDest), 0o644)
		}
	}
	return r.stdout, r.stderr, r.err
}

func argAfter(args []string, flag string) string {
	for i, a := range args {
		if a == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func hasArgPair(args []string, flag, value string) bool {
	for i, a := range args {
		if a == flag && i+1 < len(args) && args[i+1] == value {
			return true
		}
	}
	return false
}

func TestFetch_Success(t *testing.T) {
	runner := &fakeRunner{writeDest: "stream bytes"}
	f := NewFetcher(runner, "yt-dlp", Options{}, time.Minute, nil)

	dest := filepath.Join(t.TempDir(), "video.stream")
	err := f.Fetch(context.Background(), Request{
		URL:      "https://youtu.be/abc",
		Platform: constants.PlatformYouTube,
		Track:    constants.TrackVideo,
		DestPath: dest,
	})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if _, statErr := os.Stat(dest); statErr != nil {
		t.Fatalf("expected output at %s: %v", dest, statErr)
	}
	if !hasArgPair(runner.gotArgs, "-f", "bv*") {
		t.Errorf("expected default video selector bv*, args: %v", runner.gotArgs)
	}
	if runner.gotArgs[len(runner.gotArgs)-1] != "https://youtu.be/abc" {
		t.Errorf("expected URL as final arg, got %v", runner.gotArgs)
	}
}

func TestFetch_ExplicitFormatWins(t *testing.T) {
	runner := &fakeRunner{writeDest: "x"}
	f := NewFetcher(runner, "yt-dlp", Options{}, time.Minute, nil)

	dest := filepath.Join(t.TempDir(), "audio.stream")
	err := f.Fetch(context.Background(), Request{
		URL:      "https://youtu.be/abc",
		Platform: constants.PlatformYouTube,
		Track:    constants.TrackAudio,
		FormatID: "251",
		DestPath: dest,
	})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if !hasArgPair(runner.gotArgs, "-f", "251") {
		t.Errorf("expected explicit format 251, args: %v", runner.gotArgs)
	}
}

func TestFetch_FailureRemovesPartialOutput(t *testing.T) {
	runner := &fakeRunner{
		err:       errors.New("exit status 1"),
		stderr:    []byte("ERROR: Video unavailable"),
		leaveDest: "half a stream",
	}
	f := NewFetcher(runner, "yt-dlp", Options{}, time.Minute, nil)

	dest := filepath.Join(t.TempDir(), "video.stream")
	err := f.Fetch(context.Background(), Request{
		URL:      "https://youtu.be/gone",
		Platform: constants.PlatformYouTube,
		Track:    constants.TrackVideo,
		DestPath: dest,
	})
	if err == nil {
		t.Fatal("expected failure")
	}
	if got := common.KindOf(err); got != common.KindNotFound {
		t.Errorf("kind = %q, want %q", got, common.KindNotFound)
	}
	for _, p := range []string{dest, dest + ".part"} {
		if _, statErr := os.Stat(p); !os.IsNotExist(statErr) {
			t.Errorf("expected %s to be removed", p)
		}
	}
}

func TestFetch_EmptyOutputIsToolFailure(t *testing.T) {
	// tool exits zero but writes nothing
	runner := &fakeRunner{}
	f := NewFetcher(runner, "yt-dlp", Options{}, time.Minute, nil)

	dest := filepath.Join(t.TempDir(), "audio.stream")
	err := f.Fetch(context.Background(), Request{
		URL:      "https://youtu.be/abc",
		Platform: constants.PlatformYouTube,
		Track:    constants.TrackAudio,
		DestPath: dest,
	})
	if err == nil {
		t.Fatal("expected failure")
	}
	if got := common.KindOf(err); got != common.KindToolFailure {
		t.Errorf("kind = %q, want %q", got, common.KindToolFailure)
	}
}

func TestFetch_CancellationSurfacesRaw(t *testing.T) {
	runner := &fakeRunner{err: errors.New("signal: killed")}
	f := NewFetcher(runner, "yt-dlp", Options{}, time.Minute, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := f.Fetch(ctx, Request{
		URL:      "https://youtu.be/abc",
		Platform: constants.PlatformYouTube,
		Track:    constants.TrackVideo,
		DestPath: filepath.Join(t.TempDir(), "video.stream"),
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestFetch_TimeoutClassifiedTransient(t *testing.T) {
	runner := &fakeRunner{err: errors.New("signal: killed")}
	f := NewFetcher(runner, "yt-dlp", Options{}, time.Nanosecond, nil)

	// the nanosecond deadline expires before the runner is consulted
	err := f.Fetch(context.Background(), Request{
		URL:      "https://youtu.be/abc",
		Platform: constants.PlatformYouTube,
		Track:    constants.TrackVideo,
		DestPath: filepath.Join(t.TempDir(), "video.stream"),
	})
	if err == nil {
		t.Fatal("expected failure")
	}
	if got := common.KindOf(err); got != common.KindNetworkTransient {
		t.Errorf("kind = %q, want %q", got, common.KindNetworkTransient)
	}
}

func TestClassifyToolError(t *testing.T) {
	cases := []struct {
		stderr string
		want   common.Kind
	}{
		{"ERROR: Sign in to confirm you're not a bot", common.KindAuthRequired},
		{"ERROR: This video is only available for Premium users", common.KindAuthRequired},
		{"ERROR: Private video. Use --cookies for authentication", common.KindAuthRequired},
		{"HTTP Error 403: Forbidden", common.KindAuthRequired},
		{"ERROR: Video unavailable", common.KindNotFound},
		{"ERROR: requested format is not available", common.KindNotFound},
		{"HTTP Error 404: Not Found", common.KindNotFound},
		{"ERROR: unable to download webpage: <urlopen error timed out>", common.KindNetworkTransient},
		{"ERROR: Connection reset by peer", common.KindNetworkTransient},
		{"HTTP Error 429: Too Many Requests", common.KindNetworkTransient},
		{"HTTP Error 503: Service Unavailable", common.KindNetworkTransient},
		{"ERROR: ffmpeg exited with code 1", common.KindToolFailure},
		{"", common.KindToolFailure},
	}

	for _, tc := range cases {
		if got := ClassifyToolError(tc.stderr); got != tc.want {
			t.Errorf("ClassifyToolError(%q) = %q, want %q", tc.stderr, got, tc.want)
		}
	}
}

func TestCookieArgs_Precedence(t *testing.T) {
	dir := t.TempDir()
	platformCookie := filepath.Join(dir, "hotstar.txt")
	if err := os.WriteFile(platformCookie, []byte("cookies"), 0o600); err != nil {
		t.Fatal(err)
	}
	opts := Options{CookiesDir: dir}

	// job cookie wins over the platform file
	args := opts.cookieArgs(constants.PlatformHotstar, "/job/cookies.txt")
	if !hasArgPair(args, "--cookies", "/job/cookies.txt") {
		t.Errorf("expected job cookie, got %v", args)
	}

	// platform file used when no job cookie
	args = opts.cookieArgs(constants.PlatformHotstar, "")
	if !hasArgPair(args, "--cookies", platformCookie) {
		t.Errorf("expected platform cookie, got %v", args)
	}

	// nothing when the platform file does not exist
	if args = opts.cookieArgs(constants.PlatformZee5, ""); len(args) != 0 {
		t.Errorf("expected no cookie args, got %v", args)
	}
}

func TestFirstStderrLine_TakesLastNonEmpty(t *testing.T) {
	stderr := []byte("[youtube] extracting\n[download] 12%\nERROR: the real message\n\n")
	if got := firstStderrLine(stderr); got != "ERROR: the real message" {
		t.Errorf("firstStderrLine = %q", got)
	}
	if got := firstStderrLine(nil); got != "no stderr output" {
		t.Errorf("firstStderrLine(nil) = %q", got)
	}
}
