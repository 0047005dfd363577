//go:build ignore

// Package main generates synthetic log traffic for manually exercising
// rotation and the rotolog-logs viewer.
// Usage: go run scripts/genlogs.go -path /tmp/rotolog/app.log -lines 5000
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/stockholmr/rotolog/pkg/logger"
)

var (
	path     = flag.String("path", "/tmp/rotolog/app.log", "Active log file path")
	lines    = flag.Int("lines", 5000, "Number of lines to write")
	maxSize  = flag.Int64("max-size", 64*1024, "Rotation trigger in bytes")
	retained = flag.Int("retained", 5, "Retention bound for rotated files")
	seed     = flag.Int64("seed", 42, "Random seed for reproducibility")
)

var messages = []string{
	"request served",
	"cache miss, falling back to origin",
	"connection reset by peer",
	"slow query detected",
	"retrying upstream call",
	"configuration reloaded",
}

func main() {
	flag.Parse()
	rng := rand.New(rand.NewSource(*seed))

	sink, err := logger.NewFile(*path, logger.LevelDebug,
		logger.WithMaxSize(*maxSize),
		logger.WithMaxRotatedFiles(*retained))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer sink.Close()

	levels := []logger.Level{logger.LevelDebug, logger.LevelInfo, logger.LevelWarn, logger.LevelError}
	for i := 0; i < *lines; i++ {
		level := levels[rng.Intn(len(levels))]
		msg := fmt.Sprintf("%s (seq=%d)", messages[rng.Intn(len(messages))], i)
		if err := sink.Log(level, msg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	fmt.Printf("wrote %d lines to %s\n", *lines, *path)
}
