package cmd

import (
	"context"
	"flag"
	"fmt"
	"sync"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
	"github.com/terassyi/goarp/config"
	"github.com/terassyi/goarp/interfaces"
	"github.com/terassyi/goarp/proto/arp"
)

type RunCommand struct {
	commonFlags
}

func (*RunCommand) Name() string {
	return "run"
}

func (*RunCommand) Synopsis() string {
	return "run the mode selected by the config file"
}

func (*RunCommand) Usage() string {
	return `goarp run -config <path>:
	run respond or request mode as the config file says`
}

func (r *RunCommand) SetFlags(f *flag.FlagSet) {
	r.setFlags(f)
}

func (r *RunCommand) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := r.load(f)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"command": "run",
		}).Error(err)
		return subcommands.ExitUsageError
	}
	return execute(ctx, cfg)
}

// execute attaches to the device and runs the engine picked by cfg.Mode.
func execute(ctx context.Context, cfg *config.Config) subcommands.ExitStatus {
	log := logrus.WithFields(logrus.Fields{
		"command": cfg.Mode,
	})
	if err := cfg.Validate(); err != nil {
		log.Error(err)
		return subcommands.ExitUsageError
	}
	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
		log.Debug("debug flag is set")
	}

	iface, err := interfaces.New(cfg.Device, cfg.Type)
	if err != nil {
		log.Error(err)
		return subcommands.ExitFailure
	}
	var once sync.Once
	closeIface := func() {
		once.Do(func() { iface.Close() })
	}
	defer closeIface()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	// Recv cannot observe ctx, closing the device is what unblocks it.
	go func() {
		<-ctx.Done()
		closeIface()
	}()

	switch cfg.Mode {
	case config.ModeRespond:
		err = respond(ctx, iface, cfg)
	case config.ModeRequest:
		err = request(ctx, iface, cfg)
	}
	if err != nil {
		log.Error(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func respond(ctx context.Context, iface interfaces.Iface, cfg *config.Config) error {
	r, err := arp.NewResponder(iface, arp.Debug(cfg.Debug), arp.RequestOnly(cfg.RequestOnly))
	if err != nil {
		return err
	}
	fmt.Printf("MAC Address: %s\n", r.MacAddress)
	return r.Serve(ctx)
}

func request(ctx context.Context, iface interfaces.Iface, cfg *config.Config) error {
	r, err := arp.NewRequester(iface, cfg.Local(),
		arp.Debug(cfg.Debug),
		arp.Strict(cfg.IsStrict()),
		arp.Timeout(cfg.Timeout),
	)
	if err != nil {
		return err
	}
	fmt.Printf("MAC Address: %s\n", r.MacAddress)
	rep, err := r.Resolve(ctx, cfg.Target())
	if err != nil {
		return err
	}
	fmt.Printf("%s is at %s\n", rep.Arp.SourceProtocolAddress, rep.Arp.SourceHardwareAddress)
	return nil
}
