package common

import (
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	if cfg.Server.GRPCAddr != ":8080" {
		t.Errorf("GRPCAddr = %q, want %q", cfg.Server.GRPCAddr, ":8080")
	}
	if cfg.Pipeline.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Pipeline.Workers)
	}
	if cfg.Pipeline.RetryAttempts != 3 {
		t.Errorf("RetryAttempts = %d, want 3", cfg.Pipeline.RetryAttempts)
	}
	if cfg.Retention.Window != time.Hour {
		t.Errorf("Retention.Window = %v, want 1h", cfg.Retention.Window)
	}
	if cfg.Retention.Archive != 30*24*time.Hour {
		t.Errorf("Retention.Archive = %v, want 720h", cfg.Retention.Archive)
	}
	if cfg.Tools.YtDlpPath != "yt-dlp" {
		t.Errorf("YtDlpPath = %q, want yt-dlp", cfg.Tools.YtDlpPath)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("STORAGE_ROOT", "/srv/media")
	t.Setenv("WORKER_COUNT", "8")
	t.Setenv("RETRY_BACKOFF_BASE", "500ms")
	t.Setenv("MASTER_KEY", "s3cret")

	cfg := LoadConfig()
	if cfg.Pipeline.StorageRoot != "/srv/media" {
		t.Errorf("StorageRoot = %q", cfg.Pipeline.StorageRoot)
	}
	if cfg.Pipeline.Workers != 8 {
		t.Errorf("Workers = %d, want 8", cfg.Pipeline.Workers)
	}
	if cfg.Pipeline.BackoffBase != 500*time.Millisecond {
		t.Errorf("BackoffBase = %v, want 500ms", cfg.Pipeline.BackoffBase)
	}
	if cfg.Server.MasterKey != "s3cret" {
		t.Errorf("MasterKey = %q", cfg.Server.MasterKey)
	}

	// derived directories hang off the storage root
	if got := cfg.ScratchDir(); got != filepath.Join("/srv/media", "temp") {
		t.Errorf("ScratchDir = %q", got)
	}
	if got := cfg.DownloadDir(); got != filepath.Join("/srv/media", "downloads") {
		t.Errorf("DownloadDir = %q", got)
	}
	if got := cfg.CookiesDir(); got != filepath.Join("/srv/media", "cookies") {
		t.Errorf("CookiesDir = %q", got)
	}
}

func TestLoadConfig_BadValuesFallBack(t *testing.T) {
	t.Setenv("WORKER_COUNT", "not-a-number")
	t.Setenv("FETCH_TIMEOUT", "soon")

	cfg := LoadConfig()
	if cfg.Pipeline.Workers != 4 {
		t.Errorf("Workers = %d, want default 4", cfg.Pipeline.Workers)
	}
	if cfg.Pipeline.FetchTimeout != 30*time.Minute {
		t.Errorf("FetchTimeout = %v, want default 30m", cfg.Pipeline.FetchTimeout)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := LoadConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}

	cfg.Pipeline.Workers = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected zero workers to be rejected")
	} else if KindOf(err) != KindInvalidInput {
		t.Errorf("validation error kind = %q, want %q", KindOf(err), KindInvalidInput)
	}
}
