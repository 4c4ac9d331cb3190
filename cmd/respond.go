package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
	"github.com/terassyi/goarp/config"
)

type RespondCommand struct {
	commonFlags
	RequestOnly bool
}

func (*RespondCommand) Name() string {
	return "respond"
}

func (*RespondCommand) Synopsis() string {
	return "reply to arp requests"
}

func (*RespondCommand) Usage() string {
	return `goarp respond -i <interface name>:
	wait for arp packets and send back a reply to each of them`
}

func (r *RespondCommand) SetFlags(f *flag.FlagSet) {
	r.setFlags(f)
	f.BoolVar(&r.RequestOnly, "request-only", false, "reply to arp requests only")
}

func (r *RespondCommand) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := r.load(f)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"command": "respond",
		}).Error(err)
		return subcommands.ExitUsageError
	}
	cfg.Mode = config.ModeRespond
	f.Visit(func(fl *flag.Flag) {
		if fl.Name == "request-only" {
			cfg.RequestOnly = r.RequestOnly
		}
	})
	return execute(ctx, cfg)
}
