package interfaces

import (
	"encoding/binary"
	"fmt"
	"os"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

type afPacket struct {
	file *os.File
	name string
}

func newAfPacket(name string) (*afPacket, error) {
	fd, err := openPFPacket(name)
	if err != nil {
		return nil, err
	}
	return newAfPacketFd(fd, name)
}

// newAfPacketFd puts fd in non blocking mode and hands it to the runtime
// poller, so Close wakes a pending Recv and read deadlines are honored.
func newAfPacketFd(fd int, name string) (*afPacket, error) {
	if err := unix.SetNonblock(fd, true); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("afpacket open: %w", err)
	}
	return &afPacket{
		file: os.NewFile(uintptr(fd), name),
		name: name,
	}, nil
}

func (af *afPacket) Name() string {
	return af.name
}

func (af *afPacket) Recv(buf []byte) (int, error) {
	return af.file.Read(buf)
}

func (af *afPacket) Send(buf []byte) (int, error) {
	return af.file.Write(buf)
}

func (af *afPacket) Close() error {
	return af.file.Close()
}

func (af *afPacket) Address() ([]byte, error) {
	addr, err := siocgifhwaddr(af.name)
	if err != nil {
		return nil, fmt.Errorf("afpacket hwaddr: %w", err)
	}
	return addr, nil
}

// SetReadDeadline bounds Recv by an absolute time. A zero time blocks forever.
func (af *afPacket) SetReadDeadline(t time.Time) error {
	return af.file.SetReadDeadline(t)
}

func openPFPacket(name string) (int, error) {
	if name == "" {
		return -1, fmt.Errorf("afpacket open: name is empty")
	}
	if len(name) >= unix.IFNAMSIZ {
		return -1, fmt.Errorf("afpacket open: name is too long")
	}
	protocol := hton16(unix.ETH_P_ALL)
	fd, err := unix.Socket(unix.AF_PACKET, unix.SOCK_RAW|unix.SOCK_CLOEXEC, int(protocol))
	if err != nil {
		return -1, fmt.Errorf("afpacket open: %w", err)
	}
	index, err := siocgifindex(name)
	if err != nil {
		unix.Close(fd)
		return -1, fmt.Errorf("siocgifindex: %w", err)
	}
	addr := &unix.SockaddrLinklayer{
		Protocol: protocol,
		Ifindex:  index,
	}
	if err = unix.Bind(fd, addr); err != nil {
		unix.Close(fd)
		return -1, fmt.Errorf("afpacket bind: %w", err)
	}
	flags, err := siocgifflags(name)
	if err != nil {
		unix.Close(fd)
		return -1, fmt.Errorf("siocgifflags: %w", err)
	}
	flags |= unix.IFF_PROMISC
	if err := siocsifflags(name, flags); err != nil {
		unix.Close(fd)
		return -1, fmt.Errorf("siocsifflags: %w", err)
	}
	return fd, nil
}

func hton16(i uint16) uint16 {
	var ret uint16
	binary.BigEndian.PutUint16((*[2]byte)(unsafe.Pointer(&ret))[:], i)
	return ret
}
