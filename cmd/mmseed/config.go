package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Environment variables consulted for flags the user did not set.
const (
	envDB          = "MMSEED_DB"
	envMaxTries    = "MMSEED_MAX_TRIES"
	envMaxAttempts = "MMSEED_MAX_ATTEMPTS"
	envLogLevel    = "MMSEED_LOG_LEVEL"
	envLogFormat   = "MMSEED_LOG_FORMAT"
)

// settings holds the resolved persistent configuration.
type settings struct {
	envFile   string
	dbPath    string
	logLevel  string
	logFormat string
	logger    *slog.Logger
}

// loadEnv reads envFile into the process environment. A missing file is
// not an error; variables already set win.
func loadEnv(envFile string) error {
	if envFile == "" {
		return nil
	}
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("loading %s: %w", envFile, err)
	}

	return nil
}

// stringFromEnv sets *dst from key unless the flag was given.
func stringFromEnv(cmd *cobra.Command, flag, key string, dst *string) {
	if cmd.Flags().Changed(flag) {
		return
	}
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// intFromEnv sets *dst from key unless the flag was given.
func intFromEnv(cmd *cobra.Command, flag, key string, dst *int) error {
	if cmd.Flags().Changed(flag) {
		return nil
	}
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return fmt.Errorf("%s=%q: want a positive integer", key, v)
	}
	*dst = n

	return nil
}

// newLogger builds the process logger; format is "text" or "json".
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "", "info":
		lvl = slog.LevelInfo
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

// parseSizes reads "4,4,2" into []int.
func parseSizes(s string) ([]int, error) {
	var out []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		k, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("--sizes: %q is not an integer", f)
		}
		out = append(out, k)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("--sizes: no sizes given")
	}

	return out, nil
}

// parseGrid reads "RxC".
func parseGrid(s string) (rows, cols int, err error) {
	r, c, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("--grid: %q is not RxC", s)
	}
	if rows, err = strconv.Atoi(r); err != nil {
		return 0, 0, fmt.Errorf("--grid: %q is not RxC", s)
	}
	if cols, err = strconv.Atoi(c); err != nil {
		return 0, 0, fmt.Errorf("--grid: %q is not RxC", s)
	}

	return rows, cols, nil
}
