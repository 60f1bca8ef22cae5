// path: cmd/altair/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/swgillespie/altair/internal/uci"
)

func main() {
	// Flags with env fallbacks. Stdout carries UCI traffic only; all
	// diagnostics go to stderr.
	hashMB := flag.Int("hash", getenvInt("ALTAIR_HASH", 16), "transposition table size in megabytes")
	threads := flag.Int("threads", getenvInt("ALTAIR_THREADS", 1), "number of search workers")
	logLevel := flag.String("log", getenv("ALTAIR_LOG", "info"), "log level (trace|debug|info|warn|error)")
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q\n", *logLevel)
		os.Exit(2)
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	engine := uci.NewEngine(uci.Config{
		HashMB:  *hashMB,
		Threads: *threads,
	}, os.Stdout, log)

	if flag.NArg() == 1 && flag.Arg(0) == "bench" {
		engine.RunOne("bench")
		return
	}

	engine.Run(os.Stdin)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
