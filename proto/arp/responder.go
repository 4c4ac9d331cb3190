package arp

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/terassyi/goarp/interfaces"
	"github.com/terassyi/goarp/logger"
	"github.com/terassyi/goarp/packet/arp"
	"github.com/terassyi/goarp/packet/ethernet"
)

// Responder answers every ARP frame it receives with a reply claiming the
// asked-for address for the local hardware address.
type Responder struct {
	iface       interfaces.Iface
	MacAddress  ethernet.HardwareAddress
	count       int
	out         io.Writer
	requestOnly bool
	logger      *logger.Logger
}

func NewResponder(iface interfaces.Iface, opts ...Option) (*Responder, error) {
	o := newOptions(opts)
	mac, err := localAddress(iface)
	if err != nil {
		return nil, err
	}
	return &Responder{
		iface:       iface,
		MacAddress:  mac,
		out:         o.out,
		requestOnly: o.requestOnly,
		logger:      newLogger(o),
	}, nil
}

// Count is the number of exchanges handled so far.
func (r *Responder) Count() int {
	return r.count
}

// Serve receives frames until the interface fails or ctx is done.
// Cancellation is observed between frames. Close the interface to wake a
// pending Recv.
func (r *Responder) Serve(ctx context.Context) error {
	printLines(r.out, r.logger,
		"Wait and reply mode!",
		"This mode sends back an ARP reply to any request!",
	)
	buf := make([]byte, MTU)
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		n, err := r.iface.Recv(buf)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read packet: %w", err)
		}
		if _, err := r.Handle(buf[:n]); err != nil {
			return err
		}
	}
}

// Handle processes one received frame. It returns the reply that was sent,
// or nil when the frame was dropped.
func (r *Responder) Handle(buf []byte) (*arp.Frame, error) {
	req, err := arp.Decode(buf)
	if err != nil {
		switch {
		case errors.Is(err, arp.ErrNotARP):
			return nil, nil
		case errors.Is(err, arp.ErrTruncated):
			r.logger.Warnf("drop truncated frame: %d bytes", len(buf))
			return nil, nil
		default:
			return nil, err
		}
	}
	if r.requestOnly && req.Arp.Header.OpCode != arp.ARP_REQUEST {
		r.logger.Debugf("drop arp opcode 0x%x", uint16(req.Arp.Header.OpCode))
		return nil, nil
	}

	dump(r.out, r.logger, fmt.Sprintf("Packet ARP Request #%d.1", r.count), req)

	rep := arp.Reply(req, r.MacAddress)

	dump(r.out, r.logger, fmt.Sprintf("Packet ARP Reply #%d.2", r.count), rep)
	r.count++

	b, err := rep.Serialize()
	if err != nil {
		return nil, err
	}
	if _, err := r.iface.Send(b); err != nil {
		return nil, fmt.Errorf("write packet: %w", err)
	}
	r.logger.Infof("replied to %s as %s", req.Arp.SourceProtocolAddress, rep.Arp.SourceProtocolAddress)
	return rep, nil
}
