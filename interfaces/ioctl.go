package interfaces

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

type sockaddr struct {
	family uint16
	addr   [14]byte
}

func ioctlSocket() (int, error) {
	return unix.Socket(unix.AF_INET, unix.SOCK_DGRAM|unix.SOCK_CLOEXEC, 0)
}

func siocgifindex(name string) (int, error) {
	soc, err := ioctlSocket()
	if err != nil {
		return 0, err
	}
	defer unix.Close(soc)
	ifreq, err := unix.NewIfreq(name)
	if err != nil {
		return 0, err
	}
	if err := unix.IoctlIfreq(soc, unix.SIOCGIFINDEX, ifreq); err != nil {
		return 0, err
	}
	return int(ifreq.Uint32()), nil
}

func siocgifflags(name string) (uint16, error) {
	soc, err := ioctlSocket()
	if err != nil {
		return 0, err
	}
	defer unix.Close(soc)
	ifreq, err := unix.NewIfreq(name)
	if err != nil {
		return 0, err
	}
	if err := unix.IoctlIfreq(soc, unix.SIOCGIFFLAGS, ifreq); err != nil {
		return 0, err
	}
	return ifreq.Uint16(), nil
}

func siocsifflags(name string, flags uint16) error {
	soc, err := ioctlSocket()
	if err != nil {
		return err
	}
	defer unix.Close(soc)
	ifreq, err := unix.NewIfreq(name)
	if err != nil {
		return err
	}
	ifreq.SetUint16(flags)
	return unix.IoctlIfreq(soc, unix.SIOCSIFFLAGS, ifreq)
}

// unix.Ifreq has no accessor for a sockaddr payload, so the request is laid out by hand.
func siocgifhwaddr(name string) ([]byte, error) {
	soc, err := ioctlSocket()
	if err != nil {
		return nil, err
	}
	defer unix.Close(soc)
	ifreq := struct {
		name [unix.IFNAMSIZ]byte
		addr sockaddr
		_pad [8]byte
	}{}
	copy(ifreq.name[:unix.IFNAMSIZ-1], name)
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(soc), unix.SIOCGIFHWADDR, uintptr(unsafe.Pointer(&ifreq))); errno != 0 {
		return nil, errno
	}
	addr := make([]byte, 6)
	copy(addr, ifreq.addr.addr[:6])
	return addr, nil
}
