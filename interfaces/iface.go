package interfaces

import (
	"errors"
	"fmt"
	"time"
)

const (
	TypeTap      = "tap"
	TypeAfPacket = "afpacket"
)

// ErrDeadlineUnsupported is returned by SetReadDeadline when the underlying
// descriptor is not pollable.
var ErrDeadlineUnsupported = errors.New("read deadline is not supported")

// Iface moves raw ethernet frames across one link layer device.
type Iface interface {
	Name() string
	Recv([]byte) (int, error)
	Send([]byte) (int, error)
	Close() error
	Address() ([]byte, error)
}

// Deadliner is implemented by interfaces whose Recv can be bounded in time.
type Deadliner interface {
	SetReadDeadline(time.Time) error
}

func New(name, typ string) (Iface, error) {
	switch typ {
	case TypeTap, "":
		tap, err := newTapDevice(name)
		if err != nil {
			return nil, err
		}
		return tap, nil
	case TypeAfPacket:
		af, err := newAfPacket(name)
		if err != nil {
			return nil, err
		}
		return af, nil
	default:
		return nil, fmt.Errorf("invalid type %q", typ)
	}
}
