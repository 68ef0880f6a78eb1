package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"mediafetch/internal/common"
	"mediafetch/internal/tool"
)

// doctor reports whether the external binaries the pipeline shells out to
// are reachable, using the same configuration the daemon loads.
func main() {
	_ = godotenv.Load()

	jsonOut := flag.Bool("json", false, "emit the report as JSON")
	flag.Parse()

	cfg := common.LoadConfig()
	report := tool.DependencyStatus(cfg.Tools.YtDlpPath, cfg.Tools.FFmpegPath)

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	} else {
		printStatus("yt-dlp", cfg.Tools.YtDlpPath, report.YTDLPFound, report.YTDLPPath)
		printStatus("ffmpeg", cfg.Tools.FFmpegPath, report.FFmpegFound, report.FFmpegPath)
	}

	if !report.YTDLPFound || !report.FFmpegFound {
		os.Exit(1)
	}
}

func printStatus(name, configured string, found bool, path string) {
	if found {
		fmt.Printf("%-8s OK       %s\n", name, path)
		return
	}
	fmt.Printf("%-8s MISSING  %q not found on PATH\n", name, configured)
}
