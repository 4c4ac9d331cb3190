package ethernet

import (
	"encoding/binary"
	"errors"
	"fmt"
	"net"
)

// ErrTruncated is returned when a buffer is shorter than the header it should hold.
var ErrTruncated = errors.New("truncated frame")

type HardwareAddress [6]byte

type EtherType uint16

type Header struct {
	Dst  HardwareAddress
	Src  HardwareAddress
	Type EtherType
}

func (hwaddr HardwareAddress) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", hwaddr[0], hwaddr[1], hwaddr[2], hwaddr[3], hwaddr[4], hwaddr[5])
}

func (hwaddr HardwareAddress) Bytes() []byte {
	return hwaddr[:]
}

func Address(data []byte) (*HardwareAddress, error) {
	if len(data) != 6 {
		return nil, fmt.Errorf("invalid hardware address %v", data)
	}
	addr := &HardwareAddress{}
	copy(addr[:], data)
	return addr, nil
}

// ParseHardwareAddress accepts the colon separated form printed by String.
func ParseHardwareAddress(s string) (*HardwareAddress, error) {
	mac, err := net.ParseMAC(s)
	if err != nil {
		return nil, err
	}
	if len(mac) != 6 {
		return nil, fmt.Errorf("not an ethernet address: %s", s)
	}
	return Address(mac)
}

func (typ EtherType) String() string {
	switch typ {
	case ETHER_TYPE_ARP:
		return "(ARP)"
	case ETHER_TYPE_IP:
		return "(IP)"
	case ETHER_TYPE_IPV6:
		return "(IPV6)"
	default:
		return "(UNKNOWN)"
	}
}

// PeekType reads the ether type of a raw frame without decoding the rest.
func PeekType(data []byte) (EtherType, error) {
	if len(data) < HeaderSize {
		return 0, ErrTruncated
	}
	return EtherType(binary.BigEndian.Uint16(data[12:14])), nil
}

func ParseHeader(data []byte) (*Header, error) {
	if len(data) < HeaderSize {
		return nil, ErrTruncated
	}
	header := &Header{Type: EtherType(binary.BigEndian.Uint16(data[12:14]))}
	copy(header.Dst[:], data[0:6])
	copy(header.Src[:], data[6:12])
	return header, nil
}

// Put writes the header into the first HeaderSize bytes of buf.
func (ethhdr *Header) Put(buf []byte) {
	copy(buf[0:6], ethhdr.Dst[:])
	copy(buf[6:12], ethhdr.Src[:])
	binary.BigEndian.PutUint16(buf[12:14], uint16(ethhdr.Type))
}

func (ethhdr *Header) Serialize() []byte {
	buf := make([]byte, HeaderSize)
	ethhdr.Put(buf)
	return buf
}
