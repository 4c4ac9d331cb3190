package arp

import (
	"errors"
	"io"
	"os"
	"time"
)

// fakeIface replays queued frames and records sent ones. Once the queue is
// drained Recv returns io.EOF, or waits for the deadline when one is set.
type fakeIface struct {
	frames   [][]byte
	sent     [][]byte
	mac      []byte
	addrErr  error
	sendErr  error
	deadline time.Time
}

func (f *fakeIface) Name() string { return "fake0" }

func (f *fakeIface) Recv(buf []byte) (int, error) {
	if len(f.frames) == 0 {
		if !f.deadline.IsZero() {
			time.Sleep(time.Until(f.deadline))
			return 0, os.ErrDeadlineExceeded
		}
		return 0, io.EOF
	}
	n := copy(buf, f.frames[0])
	f.frames = f.frames[1:]
	return n, nil
}

func (f *fakeIface) Send(buf []byte) (int, error) {
	if f.sendErr != nil {
		return 0, f.sendErr
	}
	f.sent = append(f.sent, append([]byte{}, buf...))
	return len(buf), nil
}

func (f *fakeIface) Close() error { return nil }

func (f *fakeIface) Address() ([]byte, error) {
	if f.addrErr != nil {
		return nil, f.addrErr
	}
	return f.mac, nil
}

type deadlineIface struct {
	fakeIface
	armed int
}

func (d *deadlineIface) SetReadDeadline(t time.Time) error {
	d.deadline = t
	d.armed++
	return nil
}

// busyIface delivers an unrelated frame every interval and never runs dry,
// like a promiscuous socket on a busy link.
type busyIface struct {
	deadlineIface
	frame    []byte
	interval time.Duration
}

func (b *busyIface) Recv(buf []byte) (int, error) {
	time.Sleep(b.interval)
	return copy(buf, b.frame), nil
}

// failWriter rejects every write.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("stdout closed")
}

var errLinkDown = errors.New("link down")
