package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"slackpaste/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	// A second signal falls through to the default handler and kills the
	// process, even while stdin is still being drained.
	context.AfterFunc(ctx, stop)

	program := cli.New(os.Stdin, os.Stdout, os.Stderr, cli.Options{Version: version})
	code := program.Main(ctx, os.Args[1:])

	stop()
	os.Exit(code)
}
