package cmd

import (
	"flag"

	"github.com/terassyi/goarp/config"
)

// commonFlags are shared by every mode. Flags given on the command line
// override the values read from the config file.
type commonFlags struct {
	Config string
	Iface  string
	Type   string
	Local  string
	Debug  bool
}

func (c *commonFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&c.Config, "config", "", "path to a yaml config file")
	f.StringVar(&c.Iface, "i", config.DefaultDevice, "tap device name")
	f.StringVar(&c.Type, "type", "tap", "interface type (tap or afpacket)")
	f.StringVar(&c.Local, "addr", config.DefaultLocalAddress, "local ipv4 address")
	f.BoolVar(&c.Debug, "debug", false, "output debug message")
}

func (c *commonFlags) load(f *flag.FlagSet) (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "i":
			cfg.Device = c.Iface
		case "type":
			cfg.Type = c.Type
		case "addr":
			cfg.LocalAddress = c.Local
		case "debug":
			cfg.Debug = c.Debug
		}
	})
	return cfg, nil
}
