package cmd

import (
	"context"
	"flag"
	"time"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
	"github.com/terassyi/goarp/config"
)

type RequestCommand struct {
	commonFlags
	Dst     string
	Any     bool
	Timeout time.Duration
}

func (*RequestCommand) Name() string {
	return "request"
}

func (*RequestCommand) Synopsis() string {
	return "resolve a hardware address"
}

func (*RequestCommand) Usage() string {
	return `goarp request -i <interface name> -dest <target address>:
	broadcast an arp request and wait for the reply.
	By default only an arp reply sent from the target address is accepted;
	-any accepts the first arp packet of any kind.
`
}

func (r *RequestCommand) SetFlags(f *flag.FlagSet) {
	r.setFlags(f)
	f.StringVar(&r.Dst, "dest", config.DefaultTargetAddress, "target ipv4 address")
	f.BoolVar(&r.Any, "any", false, "accept the first arp packet as the reply instead of a reply from the target address")
	f.DurationVar(&r.Timeout, "timeout", 0, "give up waiting after this duration (0 waits forever)")
}

func (r *RequestCommand) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := r.resolve(f)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"command": "request",
		}).Error(err)
		return subcommands.ExitUsageError
	}
	return execute(ctx, cfg)
}

// resolve layers the request flags over the shared configuration.
func (r *RequestCommand) resolve(f *flag.FlagSet) (*config.Config, error) {
	cfg, err := r.load(f)
	if err != nil {
		return nil, err
	}
	cfg.Mode = config.ModeRequest
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "dest":
			cfg.TargetAddress = r.Dst
		case "any":
			strict := !r.Any
			cfg.Strict = &strict
		case "timeout":
			cfg.Timeout = r.Timeout
		}
	})
	return cfg, nil
}
