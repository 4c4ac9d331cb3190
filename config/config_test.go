package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/terassyi/goarp/packet/ipv4"
)

func TestDefault(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
	if c.Device != "tap0" || c.Mode != ModeRespond || c.Type != "tap" {
		t.Fatalf("actual %+v", c)
	}
	if c.Local() != (ipv4.IPAddress{172, 16, 60, 250}) {
		t.Fatalf("actual local %s", c.Local())
	}
	if c.Target() != (ipv4.IPAddress{172, 16, 60, 157}) {
		t.Fatalf("actual target %s", c.Target())
	}
	if !c.IsStrict() {
		t.Fatal("strict is not default")
	}
}

func TestParse(t *testing.T) {
	c, err := Parse([]byte(`
device: tap1
mode: request
target_address: 10.0.0.1
strict: false
timeout: 3s
`))
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
	if c.Device != "tap1" || c.Mode != ModeRequest {
		t.Fatalf("actual %+v", c)
	}
	if c.Target().String() != "10.0.0.1" || c.Local().String() != DefaultLocalAddress {
		t.Fatalf("actual %s %s", c.Target(), c.Local())
	}
	if c.IsStrict() {
		t.Fatal("strict is set")
	}
	if c.Timeout != 3*time.Second {
		t.Fatalf("actual timeout %v", c.Timeout)
	}
}

func TestValidateInvalid(t *testing.T) {
	for _, src := range []string{
		"mode: dump",
		"type: tun",
		"local_address: fe80::1",
		"target_address: 10.0.0",
		"timeout: -1s",
	} {
		c, err := Parse([]byte(src))
		if err != nil {
			t.Fatal(err)
		}
		if err := c.Validate(); err == nil {
			t.Fatalf("%q accepted", src)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goarp.yaml")
	if err := os.WriteFile(path, []byte("device: tap7\n"), 0600); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Device != "tap7" {
		t.Fatalf("actual %s", c.Device)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing file accepted")
	}
	c, err = Load("")
	if err != nil {
		t.Fatal(err)
	}
	if c.Device != DefaultDevice {
		t.Fatalf("actual %s", c.Device)
	}
}
