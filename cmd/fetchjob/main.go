package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"mediafetch/constants"
	"mediafetch/internal/async"
	"mediafetch/internal/common"
	"mediafetch/internal/core"
	"mediafetch/internal/fetch"
	"mediafetch/internal/merge"
	"mediafetch/internal/tool"
	"mediafetch/internal/workspace"
)

// fetchjob runs a single download-and-merge job to completion and prints
// a summary. It shares the daemon's pipeline but skips the database and
// the gRPC surface.
func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found")
	}

	url := flag.String("url", "", "media URL to fetch")
	platform := flag.String("platform", "", "platform override (default: auto-detect)")
	videoFormat := flag.String("video-format", "", "yt-dlp video format id")
	audioFormat := flag.String("audio-format", "", "yt-dlp audio format id")
	cookieFile := flag.String("cookies", "", "path to a Netscape cookie file for this job")
	listFormats := flag.Bool("list-formats", false, "probe the URL and list formats instead of fetching")
	flag.Parse()

	if *url == "" {
		fmt.Println("Usage: fetchjob -url <media-url> [-platform <name>] [-video-format <id>] [-audio-format <id>] [-cookies <file>]")
		fmt.Println("\nExample:")
		fmt.Println("  fetchjob -url https://www.youtube.com/watch?v=dQw4w9WgXcQ")
		fmt.Println("  fetchjob -url https://www.hotstar.com/in/shows/... -cookies hotstar.txt")
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if err := tool.CheckDependencies(cfg.Tools.YtDlpPath, cfg.Tools.FFmpegPath); err != nil {
		logger.Error("dependency check failed", "error", err)
		os.Exit(1)
	}
	for _, dir := range []string{cfg.ScratchDir(), cfg.DownloadDir(), cfg.CookiesDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Error("storage setup failed", "dir", dir, "error", err)
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := tool.ExecRunner{}
	fetcher := fetch.NewFetcher(runner, cfg.Tools.YtDlpPath,
		fetch.Options{CookiesDir: cfg.CookiesDir()},
		cfg.Pipeline.FetchTimeout, logger)
	merger := merge.NewExecutor(runner, cfg.Tools.FFmpegPath, cfg.Tools.FFprobePath,
		cfg.Pipeline.MergeTimeout, logger)

	registry := core.NewRegistry()
	workspaces := workspace.NewManager(cfg.ScratchDir(), logger)
	orch := core.NewOrchestrator(registry, workspaces, fetcher, merger, nil, core.OrchestratorConfig{
		DownloadDir:   cfg.DownloadDir(),
		RetryAttempts: cfg.Pipeline.RetryAttempts,
		BackoffBase:   cfg.Pipeline.BackoffBase,
		ProbeTimeout:  cfg.Pipeline.ProbeTimeout,
	}, logger)

	if *listFormats {
		md, err := orch.ListFormats(ctx, *url)
		if err != nil {
			logger.Error("probe failed", "error", err)
			os.Exit(1)
		}
		printFormats(md)
		return
	}

	queue := async.NewJobQueue(orch, logger, async.WithWorkers(1), async.WithQueueSize(1))
	orch.SetQueue(queue)

	var cookieBlob []byte
	if *cookieFile != "" {
		blob, err := os.ReadFile(*cookieFile)
		if err != nil {
			logger.Error("cookie file unreadable", "path", *cookieFile, "error", err)
			os.Exit(1)
		}
		cookieBlob = blob
	}

	jobID, err := orch.Submit(ctx, core.SubmitRequest{
		URL:           *url,
		Platform:      *platform,
		CookieBlob:    cookieBlob,
		VideoFormatID: *videoFormat,
		AudioFormatID: *audioFormat,
	})
	if err != nil {
		logger.Error("submit failed", "error", err)
		os.Exit(1)
	}
	logger.Info("job submitted", "job_id", jobID)

	// Propagate Ctrl-C to the job, then wait for the worker to settle it.
	go func() {
		<-ctx.Done()
		_ = orch.Cancel(jobID)
	}()

	var final core.Snapshot
	for {
		snap, err := orch.Status(jobID)
		if err != nil {
			logger.Error("status lookup failed", "error", err)
			os.Exit(1)
		}
		if snap.Status.Terminal() {
			final = snap
			break
		}
		time.Sleep(500 * time.Millisecond)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	queue.Shutdown(shutdownCtx)

	fmt.Println("\n=== Job Summary ===")
	fmt.Printf("Job ID:   %s\n", final.ID)
	fmt.Printf("Platform: %s\n", final.Platform)
	fmt.Printf("Status:   %s\n", final.Status)
	if final.Title != "" {
		fmt.Printf("Title:    %s\n", final.Title)
	}
	if final.ResultPath != "" {
		fmt.Printf("Result:   %s (%d bytes)\n", final.ResultPath, final.ResultSize)
	}
	if final.ErrMessage != "" {
		fmt.Printf("Error:    [%s] %s\n", final.ErrKind, final.ErrMessage)
	}
	if !final.FinishedAt.IsZero() {
		fmt.Printf("Finished: %s\n", final.FinishedAt.Format("2006-01-02 15:04:05 MST"))
	}
	if final.Status != constants.JobStatusCompleted {
		os.Exit(1)
	}
}

func printFormats(md *fetch.Metadata) {
	fmt.Printf("Title: %s\n", md.Title)
	fmt.Println("\nVideo formats:")
	for _, v := range md.Videos {
		fmt.Printf("  %-12s %5dp %6d kbps  %s\n", v.ID, v.Height, v.Bitrate, v.Label)
	}
	fmt.Println("\nAudio formats:")
	for _, a := range md.Audios {
		fmt.Printf("  %-12s %-10s %6d kbps\n", a.ID, a.Language, a.Bitrate)
	}
}
