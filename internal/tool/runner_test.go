package tool

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestExecRunner_CapturesStreams(t *testing.T) {
	stdout, stderr, err := ExecRunner{}.Run(context.Background(), "sh", "-c", "echo out; echo err 1>&2")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := strings.TrimSpace(string(stdout)); got != "out" {
		t.Errorf("stdout = %q", got)
	}
	if got := strings.TrimSpace(string(stderr)); got != "err" {
		t.Errorf("stderr = %q", got)
	}
}

func TestExecRunner_ExitCode(t *testing.T) {
	_, _, err := ExecRunner{}.Run(context.Background(), "sh", "-c", "exit 3")
	if err == nil {
		t.Fatal("expected failure")
	}
	if got := ExitCode(err); got != 3 {
		t.Errorf("ExitCode = %d, want 3", got)
	}
}

func TestExitCode_NonExecErrors(t *testing.T) {
	if got := ExitCode(errors.New("not an exit error")); got != -1 {
		t.Errorf("ExitCode = %d, want -1", got)
	}
	if got := ExitCode(nil); got != -1 {
		t.Errorf("ExitCode(nil) = %d, want -1", got)
	}
}

func TestExecRunner_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, _, err := ExecRunner{}.Run(ctx, "sh", "-c", "sleep 10")
	if err == nil {
		t.Fatal("expected the context to kill the process")
	}
	if time.Since(start) > 5*time.Second {
		t.Fatal("process outlived its context by far too long")
	}
}

func TestDependencyStatus(t *testing.T) {
	report := DependencyStatus("sh", "definitely-not-a-real-binary-4242")
	if !report.YTDLPFound || report.YTDLPPath == "" {
		t.Errorf("expected sh to be found, report = %+v", report)
	}
	if report.FFmpegFound {
		t.Error("expected the bogus binary to be missing")
	}

	if err := CheckDependencies("sh", "definitely-not-a-real-binary-4242"); err == nil {
		t.Error("expected CheckDependencies to fail on a missing binary")
	}
	if err := CheckDependencies("sh", "sh"); err != nil {
		t.Errorf("CheckDependencies with present binaries: %v", err)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate = %q", got)
	}
	long := strings.Repeat("x", 20)
	got := truncate(long, 10)
	if !strings.HasSuffix(got, "...(truncated)") || !strings.HasPrefix(got, "xxxxxxxxxx") {
		t.Errorf("truncate = %q", got)
	}
}
