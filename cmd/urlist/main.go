// Package main starts the UR List web service.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	urlistcmd "github.com/louisbranch/urlist/internal/cmd/urlist"
	"github.com/louisbranch/urlist/internal/platform/config"
)

func main() {
	log.SetPrefix("[URLIST] ")
	cfg, err := urlistcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := urlistcmd.Run(ctx, cfg); err != nil {
		config.Exitf("failed to serve: %v", err)
	}
}
