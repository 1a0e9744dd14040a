package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		slog.Error("phoneinput-demo failed", "error", err)
		os.Exit(1)
	}
}
