package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	clickercmd "github.com/ynizan/clicker-game/internal/cmd/clicker"
	"github.com/ynizan/clicker-game/internal/platform/config"
)

// main starts the clicker MCP server on stdio or HTTP.
func main() {
	if err := config.LoadDotEnv(os.Getenv("CLICKER_ENV_FILE")); err != nil {
		config.Exitf("%v", err)
	}
	cfg, err := clickercmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[CLICKER] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := clickercmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve clicker: %v", err)
	}
}
