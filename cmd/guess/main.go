// Package main runs the number-guessing game on stdin and stdout.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	guesscmd "github.com/louisbranch/guess/internal/cmd/guess"
	"github.com/louisbranch/guess/internal/platform/config"
)

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	cfg, err := guesscmd.ParseConfig(fs, os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[GUESS] ")
	// Run unblocks a pending stdin read when ctx is cancelled, so SIGINT and
	// SIGTERM end the game even while it waits for a guess.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := guesscmd.Run(ctx, cfg, os.Stdin, os.Stdout, nil); err != nil {
		stop()
		config.Exitf("guess: %v", err)
	}
}
