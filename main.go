package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/subcommands"
	"github.com/terassyi/goarp/cmd"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&cmd.RespondCommand{}, "")
	subcommands.Register(&cmd.RequestCommand{}, "")
	subcommands.Register(&cmd.RunCommand{}, "")

	flag.Parse()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// the first signal cancels ctx, a second one kills the process
	go func() {
		<-ctx.Done()
		stop()
	}()
	status := subcommands.Execute(ctx)
	stop()
	os.Exit(int(status))
}
