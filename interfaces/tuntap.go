package interfaces

import (
	"fmt"
	"os"
	"time"

	"github.com/songgao/water"
	"golang.org/x/sys/unix"
)

type tapDevice struct {
	ifce *water.Interface
	name string
}

func newTapDevice(name string) (*tapDevice, error) {
	if len(name) >= unix.IFNAMSIZ {
		return nil, fmt.Errorf("tap open: name is too long")
	}
	ifce, err := water.New(water.Config{
		DeviceType: water.TAP,
		PlatformSpecificParams: water.PlatformSpecificParams{
			Name: name,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("tap open: %w", err)
	}
	return &tapDevice{
		ifce: ifce,
		name: ifce.Name(),
	}, nil
}

func (tap *tapDevice) Name() string {
	return tap.name
}

func (tap *tapDevice) Recv(buf []byte) (int, error) {
	return tap.ifce.Read(buf)
}

func (tap *tapDevice) Send(buf []byte) (int, error) {
	return tap.ifce.Write(buf)
}

func (tap *tapDevice) Close() error {
	return tap.ifce.Close()
}

func (tap *tapDevice) Address() ([]byte, error) {
	addr, err := siocgifhwaddr(tap.name)
	if err != nil {
		return nil, fmt.Errorf("tap hwaddr: %w", err)
	}
	return addr, nil
}

func (tap *tapDevice) SetReadDeadline(t time.Time) error {
	f, ok := tap.ifce.ReadWriteCloser.(*os.File)
	if !ok {
		return ErrDeadlineUnsupported
	}
	if err := f.SetReadDeadline(t); err != nil {
		if err == os.ErrNoDeadline {
			return ErrDeadlineUnsupported
		}
		return err
	}
	return nil
}
