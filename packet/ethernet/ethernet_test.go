package ethernet

import (
	"bytes"
	"errors"
	"testing"
)

func TestParseHeader(t *testing.T) {
	data := []byte{
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff,
		0x08, 0x06,
		0x00, 0x01,
	}
	h, err := ParseHeader(data)
	if err != nil {
		t.Fatal(err)
	}
	if h.Dst != BroadcastAddress {
		t.Fatalf("actual dst %s", h.Dst)
	}
	if h.Src.String() != "aa:bb:cc:dd:ee:ff" {
		t.Fatalf("actual src %s", h.Src)
	}
	if h.Type != ETHER_TYPE_ARP {
		t.Fatalf("actual type 0x%04x", uint16(h.Type))
	}
	if !bytes.Equal(h.Serialize(), data[:HeaderSize]) {
		t.Fatalf("actual %x", h.Serialize())
	}
}

func TestParseHeaderTruncated(t *testing.T) {
	if _, err := ParseHeader(make([]byte, HeaderSize-1)); !errors.Is(err, ErrTruncated) {
		t.Fatalf("actual %v", err)
	}
	if _, err := PeekType([]byte{0x01}); !errors.Is(err, ErrTruncated) {
		t.Fatalf("actual %v", err)
	}
}

func TestTypeIsBigEndian(t *testing.T) {
	h := Header{Type: ETHER_TYPE_IPV6}
	b := h.Serialize()
	if b[12] != 0x86 || b[13] != 0xdd {
		t.Fatalf("actual %x", b[12:14])
	}
	typ, err := PeekType(b)
	if err != nil {
		t.Fatal(err)
	}
	if typ != ETHER_TYPE_IPV6 {
		t.Fatalf("actual 0x%04x", uint16(typ))
	}
}

func TestParseHardwareAddress(t *testing.T) {
	addr, err := ParseHardwareAddress("11:22:33:44:55:66")
	if err != nil {
		t.Fatal(err)
	}
	if *addr != (HardwareAddress{0x11, 0x22, 0x33, 0x44, 0x55, 0x66}) {
		t.Fatalf("actual %s", addr)
	}
	if _, err := ParseHardwareAddress("00:00:00:00:fe:80:00:00:00:00:00:00:02:00:5e:10:00:00:00:01"); err == nil {
		t.Fatal("infiniband address accepted")
	}
}

func TestAddressLength(t *testing.T) {
	if _, err := Address([]byte{1, 2, 3, 4, 5, 6, 7}); err == nil {
		t.Fatal("7 byte address accepted")
	}
	if _, err := Address([]byte{1, 2, 3, 4, 5}); err == nil {
		t.Fatal("5 byte address accepted")
	}
	addr, err := Address([]byte{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatal(err)
	}
	if addr.String() != "01:02:03:04:05:06" {
		t.Fatalf("actual %s", addr)
	}
}
