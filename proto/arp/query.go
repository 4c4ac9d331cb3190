package arp

import (
	"github.com/terassyi/goarp/packet/arp"
	"github.com/terassyi/goarp/packet/ipv4"
)

type Result int

const (
	Unmatched Result = iota
	Matched
	TimedOut
)

func (r Result) String() string {
	switch r {
	case Matched:
		return "MATCHED"
	case Unmatched:
		return "UNMATCHED"
	case TimedOut:
		return "TIMEOUT"
	default:
		return "UNKNOWN"
	}
}

// Query is an outstanding request for the hardware address of Target.
type Query struct {
	Target ipv4.IPAddress
	Strict bool
}

// Match reports whether f answers the query. A non strict query takes any ARP frame.
func (q Query) Match(f *arp.Frame) Result {
	if !q.Strict {
		return Matched
	}
	if f.Arp.Header.OpCode != arp.ARP_REPLY {
		return Unmatched
	}
	if f.Arp.SourceProtocolAddress != q.Target {
		return Unmatched
	}
	return Matched
}
