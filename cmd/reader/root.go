package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"

	"tech-pulse/cmd/internal/logger"
	"tech-pulse/cmd/reader/client"
	"tech-pulse/cmd/reader/tui"
	"tech-pulse/models"
)

var (
	flagAPI      string
	flagCategory string
	flagTimeout  time.Duration
	flagMirror   string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "reader",
	Short: "Terminal reader for the tech-pulse API",
	Long:  "reader browses developer news by category, shows TL;DR summaries, manages bookmarks and talks to the coding assistant.",
	RunE:  runReader,
}

func init() {
	rootCmd.Flags().StringVar(&flagAPI, "api", "http://localhost:8080", "base URL of the tech-pulse API")
	rootCmd.Flags().StringVar(&flagCategory, "category", string(models.CategoryAll), "category to open with")
	rootCmd.Flags().DurationVar(&flagTimeout, "timeout", 60*time.Second, "HTTP timeout for API calls")
	rootCmd.Flags().StringVar(&flagMirror, "bookmarks", "", "path of the local bookmark mirror (default under the XDG data dir)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "warn", "log level written to the reader log file")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runReader(cmd *cobra.Command, args []string) error {
	category := models.NormalizeCategory(flagCategory)
	if !category.Valid() {
		return fmt.Errorf("unknown category %q", flagCategory)
	}

	// TUI 가 화면을 쓰므로 로그는 파일로 보낸다
	logPath := filepath.Join(xdg.StateHome, "tech-pulse", "reader.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return fmt.Errorf("creating log dir: %w", err)
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()
	logger.InitWriter(flagLogLevel, logFile)

	mirror := flagMirror
	if mirror == "" {
		mirror = tui.DefaultMirrorPath()
	}

	return tui.Run(tui.RunOpts{
		API:        client.New(flagAPI, flagTimeout),
		MirrorPath: mirror,
		Category:   category,
	})
}
