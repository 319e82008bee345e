// Package wlcore is a client-side Wayland protocol core: byte buffers,
// wire codec, object-id registry, Unix-domain socket I/O with SCM_RIGHTS
// file-descriptor passing, and single-sink event dispatch, for the
// closed set of interfaces defined by wayland.xml's core protocol plus
// xdg-shell.
//
// # Packages
//
//   - buffer: fixed-capacity byte buffers for outbound/inbound payload
//     and ancillary data, sized once and reused across send/receive calls.
//   - wire: the Wayland wire format: headers, integers, fixed-point
//     numbers, length-prefixed strings/arrays, and the fd control-message
//     channel.
//   - wl: the connection, object registry, per-interface request-encoding
//     handles, event types, and the dispatcher that ties them together.
//   - internal/client: a connect-and-bind bootstrap that resolves
//     WAYLAND_DISPLAY, performs the registry round trip, and binds the
//     globals a typical desktop client needs.
//
// # Usage
//
//	sock, _ := net.DialUnix("unix", nil, &net.UnixAddr{Name: socketPath, Net: "unix"})
//	conn := wl.NewConnection(sock)
//	display := conn.GetDisplay()
//	registry := display.GetRegistry()
//	conn.Send()
//
//	for {
//		conn.Recv()
//		conn.DispatchEvents(myHandler)
//	}
//
// myHandler embeds wl.NoopHandler and overrides only the events it cares
// about; internal/client is a complete bootstrap built this way.
//
// # Scope
//
// Resolving WAYLAND_DISPLAY and XDG_RUNTIME_DIR into a socket path is
// left to callers (internal/client does it for its bootstrap); this
// package only ever takes an already-connected socket. Shared-memory
// pool management, GPU buffer import, and rendering are likewise out of
// scope; wlcore gets bytes on and off the wire and nothing more.
package wlcore
