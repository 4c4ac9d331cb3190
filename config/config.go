package config

import (
	"fmt"
	"os"
	"time"

	"github.com/terassyi/goarp/interfaces"
	"github.com/terassyi/goarp/packet/ipv4"
	"gopkg.in/yaml.v3"
)

const (
	ModeRespond = "respond"
	ModeRequest = "request"
)

const (
	DefaultDevice        = "tap0"
	DefaultLocalAddress  = "172.16.60.250"
	DefaultTargetAddress = "172.16.60.157"
)

type Config struct {
	Device        string        `yaml:"device"`
	Type          string        `yaml:"type"`
	LocalAddress  string        `yaml:"local_address"`
	TargetAddress string        `yaml:"target_address"`
	Mode          string        `yaml:"mode"`
	Debug         bool          `yaml:"debug"`
	RequestOnly   bool          `yaml:"request_only"`
	Strict        *bool         `yaml:"strict"`
	Timeout       time.Duration `yaml:"timeout"`

	local  ipv4.IPAddress
	target ipv4.IPAddress
}

func Default() *Config {
	c := &Config{}
	c.setDefaults()
	return c
}

// Load reads a yaml file. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

func Parse(b []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	c.setDefaults()
	return &c, nil
}

func (c *Config) setDefaults() {
	if c.Device == "" {
		c.Device = DefaultDevice
	}
	if c.Type == "" {
		c.Type = interfaces.TypeTap
	}
	if c.LocalAddress == "" {
		c.LocalAddress = DefaultLocalAddress
	}
	if c.TargetAddress == "" {
		c.TargetAddress = DefaultTargetAddress
	}
	if c.Mode == "" {
		c.Mode = ModeRespond
	}
	if c.Strict == nil {
		strict := true
		c.Strict = &strict
	}
}

// Validate checks the values and caches the parsed addresses.
func (c *Config) Validate() error {
	if c.Device == "" {
		return fmt.Errorf("device is required")
	}
	switch c.Type {
	case interfaces.TypeTap, interfaces.TypeAfPacket:
	default:
		return fmt.Errorf("type must be %s or %s: %q", interfaces.TypeTap, interfaces.TypeAfPacket, c.Type)
	}
	switch c.Mode {
	case ModeRespond, ModeRequest:
	default:
		return fmt.Errorf("mode must be %s or %s: %q", ModeRespond, ModeRequest, c.Mode)
	}
	local, err := ipv4.StringToIPAddress(c.LocalAddress)
	if err != nil {
		return fmt.Errorf("local_address: %w", err)
	}
	target, err := ipv4.StringToIPAddress(c.TargetAddress)
	if err != nil {
		return fmt.Errorf("target_address: %w", err)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	c.local = *local
	c.target = *target
	return nil
}

func (c *Config) Local() ipv4.IPAddress {
	return c.local
}

func (c *Config) Target() ipv4.IPAddress {
	return c.target
}

func (c *Config) IsStrict() bool {
	return c.Strict == nil || *c.Strict
}
