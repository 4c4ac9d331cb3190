package arp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/terassyi/goarp/interfaces"
	"github.com/terassyi/goarp/logger"
	"github.com/terassyi/goarp/packet/arp"
	"github.com/terassyi/goarp/packet/ethernet"
	"github.com/terassyi/goarp/packet/ipv4"
)

// Requester broadcasts one ARP request and waits for its answer.
type Requester struct {
	iface      interfaces.Iface
	MacAddress ethernet.HardwareAddress
	IpAddress  ipv4.IPAddress
	out        io.Writer
	strict     bool
	timeout    time.Duration
	logger     *logger.Logger
}

func NewRequester(iface interfaces.Iface, ip ipv4.IPAddress, opts ...Option) (*Requester, error) {
	o := newOptions(opts)
	mac, err := localAddress(iface)
	if err != nil {
		return nil, err
	}
	return &Requester{
		iface:      iface,
		MacAddress: mac,
		IpAddress:  ip,
		out:        o.out,
		strict:     o.strict,
		timeout:    o.timeout,
		logger:     newLogger(o),
	}, nil
}

// Resolve asks who owns target and returns the first frame accepted as the answer.
func (r *Requester) Resolve(ctx context.Context, target ipv4.IPAddress) (*arp.Frame, error) {
	deadline, err := r.deadline(ctx)
	if err != nil {
		return nil, err
	}

	printLines(r.out, r.logger,
		"Request and wait mode!",
		"This mode sends an ARP request to retrieve MAC of an arbitrary device!",
	)

	req := arp.Request(r.MacAddress, r.IpAddress, target)
	dump(r.out, r.logger, "Packet ARP Request 0.1", req)

	b, err := req.Serialize()
	if err != nil {
		return nil, err
	}
	if _, err := r.iface.Send(b); err != nil {
		return nil, fmt.Errorf("write packet: %w", err)
	}

	q := Query{Target: target, Strict: r.strict}
	rep, res, err := r.await(ctx, q, deadline)
	if err != nil {
		return nil, err
	}
	switch res {
	case TimedOut:
		return nil, ErrTimeout
	case Unmatched:
		return nil, ctx.Err()
	}

	dump(r.out, r.logger, "Packet ARP Reply 0.2", rep)
	return rep, nil
}

// deadline is the earlier of the configured timeout and the context
// deadline. The zero time means no deadline. A deadline on an interface
// that cannot bound Recv is an error.
func (r *Requester) deadline(ctx context.Context) (time.Time, error) {
	var deadline time.Time
	if r.timeout > 0 {
		deadline = time.Now().Add(r.timeout)
	}
	if d, ok := ctx.Deadline(); ok && (deadline.IsZero() || d.Before(deadline)) {
		deadline = d
	}
	if deadline.IsZero() {
		return deadline, nil
	}
	if _, ok := r.iface.(interfaces.Deadliner); !ok {
		return deadline, fmt.Errorf("%s: %w", r.iface.Name(), interfaces.ErrDeadlineUnsupported)
	}
	return deadline, nil
}

// arm sets the read deadline before each Recv, so a timer that restarts
// per read still expires at the absolute deadline.
func (r *Requester) arm(deadline time.Time) error {
	if deadline.IsZero() {
		return nil
	}
	d, ok := r.iface.(interfaces.Deadliner)
	if !ok {
		return fmt.Errorf("%s: %w", r.iface.Name(), interfaces.ErrDeadlineUnsupported)
	}
	if err := d.SetReadDeadline(deadline); err != nil {
		return fmt.Errorf("%s: %w", r.iface.Name(), err)
	}
	return nil
}

func (r *Requester) await(ctx context.Context, q Query, deadline time.Time) (*arp.Frame, Result, error) {
	buf := make([]byte, MTU)
	for {
		if ctx.Err() != nil {
			return nil, Unmatched, nil
		}
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			return nil, TimedOut, nil
		}
		if err := r.arm(deadline); err != nil {
			return nil, Unmatched, err
		}
		n, err := r.iface.Recv(buf)
		if err != nil {
			if ctx.Err() != nil {
				return nil, Unmatched, nil
			}
			if !deadline.IsZero() && !time.Now().Before(deadline) {
				return nil, TimedOut, nil
			}
			return nil, Unmatched, fmt.Errorf("read packet: %w", err)
		}
		f, err := arp.Decode(buf[:n])
		if err != nil {
			if errors.Is(err, arp.ErrTruncated) {
				r.logger.Warnf("drop truncated frame: %d bytes", n)
			}
			continue
		}
		if q.Match(f) != Matched {
			r.logger.Debugf("ignore arp from %s opcode 0x%x", f.Arp.SourceProtocolAddress, uint16(f.Arp.Header.OpCode))
			continue
		}
		return f, Matched, nil
	}
}
