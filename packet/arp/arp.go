package arp

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/terassyi/goarp/packet/ethernet"
	"github.com/terassyi/goarp/packet/ipv4"
)

var (
	ErrTruncated = ethernet.ErrTruncated
	ErrNotARP    = errors.New("not an arp frame")
)

type HardwareType uint16
type ProtocolType uint16
type OperationCode uint16

type Header struct {
	HardwareType HardwareType
	ProtocolType ProtocolType
	HardwareSize uint8
	ProtocolSize uint8
	OpCode       OperationCode
}

// Packet is an ARP message for IPv4 over Ethernet.
type Packet struct {
	Header                Header
	SourceHardwareAddress ethernet.HardwareAddress
	SourceProtocolAddress ipv4.IPAddress
	TargetHardwareAddress ethernet.HardwareAddress
	TargetProtocolAddress ipv4.IPAddress
}

// Frame is an Ethernet header immediately followed by an ARP packet, with no padding.
type Frame struct {
	Ethernet ethernet.Header
	Arp      Packet
}

func (op OperationCode) String() string {
	switch op {
	case ARP_REQUEST:
		return "(REQUEST)"
	case ARP_REPLY:
		return "(REPLY)"
	default:
		return "(UNKNOWN)"
	}
}

// Decode interprets the first FrameSize bytes of data. Anything after them
// is link padding and is ignored.
func Decode(data []byte) (*Frame, error) {
	typ, err := ethernet.PeekType(data)
	if err != nil {
		return nil, err
	}
	if typ != ethernet.ETHER_TYPE_ARP {
		return nil, ErrNotARP
	}
	if len(data) < FrameSize {
		return nil, ErrTruncated
	}
	frame := &Frame{}
	if err := binary.Read(bytes.NewReader(data[:FrameSize]), binary.BigEndian, frame); err != nil {
		return nil, err
	}
	return frame, nil
}

// NewPacket decodes an ARP payload that has already been stripped of its Ethernet header.
func NewPacket(data []byte) (*Packet, error) {
	if len(data) < PacketSize {
		return nil, ErrTruncated
	}
	packet := &Packet{}
	if err := binary.Read(bytes.NewReader(data[:PacketSize]), binary.BigEndian, packet); err != nil {
		return nil, err
	}
	return packet, nil
}

func (arp *Packet) Serialize() ([]byte, error) {
	packet := bytes.NewBuffer(make([]byte, 0, PacketSize))
	if err := binary.Write(packet, binary.BigEndian, arp); err != nil {
		return nil, err
	}
	return packet.Bytes(), nil
}

func (f *Frame) Serialize() ([]byte, error) {
	frame := bytes.NewBuffer(make([]byte, 0, FrameSize))
	if err := binary.Write(frame, binary.BigEndian, f); err != nil {
		return nil, err
	}
	return frame.Bytes(), nil
}

// Render writes a human readable dump of the frame to w.
func (f *Frame) Render(w io.Writer) error {
	_, err := io.WriteString(w, f.String())
	return err
}

func (f *Frame) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Ethernet type: 0x%x\n", uint16(f.Ethernet.Type))
	fmt.Fprintf(&b, "Destination MAC Address: %s\n", f.Ethernet.Dst)
	fmt.Fprintf(&b, "Source MAC Address: %s\n", f.Ethernet.Src)
	fmt.Fprintf(&b, "Hardware address space: 0x%x\n", uint16(f.Arp.Header.HardwareType))
	fmt.Fprintf(&b, "Protocol address space: 0x%x\n", uint16(f.Arp.Header.ProtocolType))
	fmt.Fprintf(&b, "Opcode 0x%x %s\n", uint16(f.Arp.Header.OpCode), f.Arp.Header.OpCode)
	fmt.Fprintf(&b, "Src MAC:%s\n", f.Arp.SourceHardwareAddress)
	fmt.Fprintf(&b, "Src IP:%s\n", f.Arp.SourceProtocolAddress)
	fmt.Fprintf(&b, "Dst MAC:%s\n", f.Arp.TargetHardwareAddress)
	fmt.Fprintf(&b, "Dst IP:%s\n", f.Arp.TargetProtocolAddress)
	return b.String()
}

// Request builds the broadcast query asking who owns target.
func Request(mac ethernet.HardwareAddress, ip, target ipv4.IPAddress) *Frame {
	return &Frame{
		Ethernet: ethernet.Header{
			Dst:  ethernet.BroadcastAddress,
			Src:  mac,
			Type: ethernet.ETHER_TYPE_ARP,
		},
		Arp: Packet{
			Header: Header{
				HardwareType: HARDWARE_ETHERNET,
				ProtocolType: PROTOCOL_IPv4,
				HardwareSize: hardwareSize,
				ProtocolSize: protocolSize,
				OpCode:       ARP_REQUEST,
			},
			SourceHardwareAddress: mac,
			SourceProtocolAddress: ip,
			TargetHardwareAddress: ethernet.BroadcastAddress,
			TargetProtocolAddress: target,
		},
	}
}

// Reply answers req on behalf of mac. The address claimed is the one req
// asked for; every field not involved in the role swap is kept from req.
func Reply(req *Frame, mac ethernet.HardwareAddress) *Frame {
	rep := *req
	rep.Ethernet.Src = mac
	rep.Ethernet.Dst = req.Arp.SourceHardwareAddress

	rep.Arp.Header.OpCode = ARP_REPLY
	rep.Arp.SourceHardwareAddress = mac
	rep.Arp.SourceProtocolAddress = req.Arp.TargetProtocolAddress
	rep.Arp.TargetHardwareAddress = req.Arp.SourceHardwareAddress
	rep.Arp.TargetProtocolAddress = req.Arp.SourceProtocolAddress
	return &rep
}
