package wl

import (
	"net"
	"os"
	"testing"

	"golang.org/x/sys/unix"
)

// socketpair builds a connected pair of Unix-domain stream sockets for
// tests, standing in for a real Wayland display socket without touching
// the filesystem.
func socketpair() (*net.UnixConn, *net.UnixConn, error) {
	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	if err != nil {
		return nil, nil, err
	}
	a, err := fdToUnixConn(fds[0])
	if err != nil {
		return nil, nil, err
	}
	b, err := fdToUnixConn(fds[1])
	if err != nil {
		a.Close()
		return nil, nil, err
	}
	return a, b, nil
}

func fdToUnixConn(fd int) (*net.UnixConn, error) {
	f := os.NewFile(uintptr(fd), "")
	defer f.Close()
	conn, err := net.FileConn(f)
	if err != nil {
		return nil, err
	}
	return conn.(*net.UnixConn), nil
}

// sendmsgWithFD sends a minimal 8-byte message header carrying fd as a
// single SCM_RIGHTS control message, the way a compositor hands a client
// a keymap or data-offer fd alongside its triggering event.
func sendmsgWithFD(t *testing.T, conn *net.UnixConn, fd int) []byte {
	t.Helper()
	rc, err := conn.SyscallConn()
	if err != nil {
		t.Fatalf("syscallconn: %v", err)
	}
	rights := unix.UnixRights(fd)
	data := []byte{0x01, 0, 0, 0, 0, 0, 0x08, 0}
	var sendErr error
	ctlErr := rc.Write(func(rawfd uintptr) bool {
		_, sendErr = unix.Sendmsg(int(rawfd), data, rights, nil, 0)
		return true
	})
	if ctlErr != nil {
		t.Fatalf("sendmsg control: %v", ctlErr)
	}
	if sendErr != nil {
		t.Fatalf("sendmsg: %v", sendErr)
	}
	return rights
}
