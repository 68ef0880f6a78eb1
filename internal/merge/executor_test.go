package merge

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"mediafetch/internal/common"
)

// call records one invocation handed to the scripted runner.
type call struct {
	name string
	args []string
}

// scriptedRunner distinguishes mux and probe invocations by binary name and
// plays back per-call outcomes for the mux passes.
type scriptedRunner struct {
	muxOutcomes []muxOutcome // consumed in order by ffmpeg calls
	probeOut    string       // stdout for every ffprobe call
	probeErr    error

	calls []call
}

type muxOutcome struct {
	stderr   string
	err      error
	writeOut string // content written to the output path
}

func (r *scriptedRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	r.calls = append(r.calls, call{name: name, args: args})
	if name == "ffprobe" {
		return []byte(r.probeOut), nil, r.probeErr
	}
	if len(r.muxOutcomes) == 0 {
		return nil, nil, errors.New("unscripted ffmpeg call")
	}
	out := r.muxOutcomes[0]
	r.muxOutcomes = r.muxOutcomes[1:]
	if out.writeOut != "" {
		_ = os.WriteFile(args[len(args)-1], []byte(out.writeOut), 0o644)
	}
	return nil, []byte(out.stderr), out.err
}

func (r *scriptedRunner) ffmpegCalls() []call {
	var out []call
	for _, c := range r.calls {
		if c.name == "ffmpeg" {
			out = append(out, c)
		}
	}
	return out
}

func hasPair(args []string, flag, value string) bool {
	for i, a := range args {
		if a == flag && i+1 < len(args) && args[i+1] == value {
			return true
		}
	}
	return false
}

func workspaceInputs(t *testing.T) (string, string, string) {
	t.Helper()
	dir := t.TempDir()
	video := filepath.Join(dir, "video.stream")
	audio := filepath.Join(dir, "audio.stream")
	for _, p := range []string{video, audio} {
		if err := os.WriteFile(p, []byte("track"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return video, audio, filepath.Join(dir, "merged.mp4")
}

func TestMerge_StreamCopySuccess(t *testing.T) {
	runner := &scriptedRunner{
		muxOutcomes: []muxOutcome{{writeOut: "muxed bytes"}},
		probeOut:    "120.0",
	}
	e := NewExecutor(runner, "ffmpeg", "ffprobe", time.Minute, nil)

	video, audio, out := workspaceInputs(t)
	res, err := e.Merge(context.Background(), video, audio, out)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if res.Path != out || res.Bytes == 0 || !res.Validated {
		t.Errorf("result = %+v", res)
	}

	mux := runner.ffmpegCalls()
	if len(mux) != 1 {
		t.Fatalf("expected one mux pass, got %d", len(mux))
	}
	if !hasPair(mux[0].args, "-c", "copy") {
		t.Errorf("expected stream copy, args: %v", mux[0].args)
	}
	if !hasPair(mux[0].args, "-map", "0:v:0") || !hasPair(mux[0].args, "-map", "1:a:0") {
		t.Errorf("expected explicit stream maps, args: %v", mux[0].args)
	}
}

func TestMerge_ReencodeFallbackOnCodecComplaint(t *testing.T) {
	runner := &scriptedRunner{
		muxOutcomes: []muxOutcome{
			{stderr: "Could not find tag for codec vp9 in stream #0", err: errors.New("exit status 1")},
			{writeOut: "reencoded bytes"},
		},
		probeOut: "120.0",
	}
	e := NewExecutor(runner, "ffmpeg", "ffprobe", time.Minute, nil)

	video, audio, out := workspaceInputs(t)
	res, err := e.Merge(context.Background(), video, audio, out)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if !res.Validated {
		t.Error("expected validated result")
	}

	mux := runner.ffmpegCalls()
	if len(mux) != 2 {
		t.Fatalf("expected two mux passes, got %d", len(mux))
	}
	if !hasPair(mux[1].args, "-c:v", "libx264") || !hasPair(mux[1].args, "-c:a", "aac") {
		t.Errorf("expected re-encode args, got %v", mux[1].args)
	}
}

func TestMerge_ToolFailureRemovesArtifact(t *testing.T) {
	runner := &scriptedRunner{
		muxOutcomes: []muxOutcome{
			{stderr: "Invalid data found when processing input", err: errors.New("exit status 1"), writeOut: "garbage"},
		},
	}
	e := NewExecutor(runner, "ffmpeg", "ffprobe", time.Minute, nil)

	video, audio, out := workspaceInputs(t)
	_, err := e.Merge(context.Background(), video, audio, out)
	if err == nil {
		t.Fatal("expected failure")
	}
	if got := common.KindOf(err); got != common.KindMergeToolFailure {
		t.Errorf("kind = %q, want %q", got, common.KindMergeToolFailure)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Error("expected partial artifact to be removed")
	}
	// a generic failure must not trigger the re-encode pass
	if n := len(runner.ffmpegCalls()); n != 1 {
		t.Errorf("expected one mux pass, got %d", n)
	}
}

func TestMerge_EmptyOutputFailsValidation(t *testing.T) {
	runner := &scriptedRunner{muxOutcomes: []muxOutcome{{}}} // exits clean, writes nothing
	e := NewExecutor(runner, "ffmpeg", "ffprobe", time.Minute, nil)

	video, audio, out := workspaceInputs(t)
	_, err := e.Merge(context.Background(), video, audio, out)
	if err == nil {
		t.Fatal("expected failure")
	}
	if got := common.KindOf(err); got != common.KindValidationFailed {
		t.Errorf("kind = %q, want %q", got, common.KindValidationFailed)
	}
}

func TestMerge_DurationMismatchFailsValidation(t *testing.T) {
	runner := &scriptedRunner{
		muxOutcomes: []muxOutcome{{writeOut: "short"}},
	}
	// output probes at 10s, inputs at 120s: far outside the slack
	probed := 0
	e := NewExecutor(&durationRunner{inner: runner, outDur: "10.0", inDur: "120.0", probed: &probed}, "ffmpeg", "ffprobe", time.Minute, nil)

	video, audio, out := workspaceInputs(t)
	_, err := e.Merge(context.Background(), video, audio, out)
	if err == nil {
		t.Fatal("expected failure")
	}
	if got := common.KindOf(err); got != common.KindValidationFailed {
		t.Errorf("kind = %q, want %q", got, common.KindValidationFailed)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Error("expected invalid artifact to be removed")
	}
}

// durationRunner reports a different duration for the merged file than for
// the inputs; the first ffprobe call targets the output.
type durationRunner struct {
	inner  *scriptedRunner
	outDur string
	inDur  string
	probed *int
}

func (r *durationRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	if name != "ffprobe" {
		return r.inner.Run(ctx, name, args...)
	}
	*r.probed++
	if *r.probed == 1 {
		return []byte(r.outDur), nil, nil
	}
	return []byte(r.inDur), nil, nil
}

func TestMerge_ProbeUnavailableStillAccepts(t *testing.T) {
	runner := &scriptedRunner{
		muxOutcomes: []muxOutcome{{writeOut: "muxed"}},
		probeErr:    errors.New("ffprobe: not found"),
	}
	e := NewExecutor(runner, "ffmpeg", "ffprobe", time.Minute, nil)

	video, audio, out := workspaceInputs(t)
	res, err := e.Merge(context.Background(), video, audio, out)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if res.Validated {
		t.Error("expected best-effort acceptance without validation")
	}
	if res.Bytes == 0 {
		t.Error("expected size to be recorded")
	}
}
