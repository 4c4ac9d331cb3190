package ipv4

import (
	"fmt"
	"net"
)

type IPAddress [4]byte

func (ipaddr IPAddress) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", ipaddr[0], ipaddr[1], ipaddr[2], ipaddr[3])
}

func (ipaddr IPAddress) Bytes() []byte {
	return ipaddr[:]
}

func Address(addr []byte) (*IPAddress, error) {
	if len(addr) != 4 {
		return nil, fmt.Errorf("invalid address %v", addr)
	}
	return &IPAddress{addr[0], addr[1], addr[2], addr[3]}, nil
}

func StringToIPAddress(addr string) (*IPAddress, error) {
	ip := net.ParseIP(addr)
	if ip == nil {
		return nil, fmt.Errorf("invalid address %q", addr)
	}
	ip4 := ip.To4()
	if ip4 == nil {
		return nil, fmt.Errorf("not an ipv4 address %q", addr)
	}
	return Address(ip4)
}
