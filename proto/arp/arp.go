package arp

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/terassyi/goarp/interfaces"
	"github.com/terassyi/goarp/logger"
	"github.com/terassyi/goarp/packet/arp"
	"github.com/terassyi/goarp/packet/ethernet"
)

// MTU bounds every receive buffer.
const MTU int = 1500

var ErrTimeout = errors.New("arp reply timeout")

type options struct {
	out         io.Writer
	debug       bool
	requestOnly bool
	strict      bool
	timeout     time.Duration
}

type Option func(*options)

// Output sets where packet dumps are written. Defaults to stdout.
func Output(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

func Debug(flag bool) Option {
	return func(o *options) { o.debug = flag }
}

// RequestOnly makes a Responder drop ARP frames whose opcode is not request.
func RequestOnly(flag bool) Option {
	return func(o *options) { o.requestOnly = flag }
}

// Strict makes a Requester accept only a reply sent by the queried address.
func Strict(flag bool) Option {
	return func(o *options) { o.strict = flag }
}

// Timeout bounds how long a Requester waits. Zero waits forever.
func Timeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

func newOptions(opts []Option) *options {
	o := &options{
		out:    os.Stdout,
		strict: true,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func localAddress(iface interfaces.Iface) (ethernet.HardwareAddress, error) {
	b, err := iface.Address()
	if err != nil {
		return ethernet.HardwareAddress{}, err
	}
	mac, err := ethernet.Address(b)
	if err != nil {
		return ethernet.HardwareAddress{}, err
	}
	return *mac, nil
}

func newLogger(o *options) *logger.Logger {
	return logger.New(o.debug, "arp")
}

// Dumps are diagnostics only. A failed write is logged and the exchange goes on.
func printLines(w io.Writer, l *logger.Logger, lines ...string) {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			l.Warnf("write packet dump: %v", err)
			return
		}
	}
}

func dump(w io.Writer, l *logger.Logger, label string, f *arp.Frame) {
	if _, err := fmt.Fprintln(w, label); err != nil {
		l.Warnf("write packet dump: %v", err)
		return
	}
	if err := f.Render(w); err != nil {
		l.Warnf("write packet dump: %v", err)
		return
	}
	if _, err := fmt.Fprintln(w); err != nil {
		l.Warnf("write packet dump: %v", err)
	}
}
