// Package client provides a connect-and-bind bootstrap on top of wl:
// dial the compositor socket, fetch the registry, wait for the initial
// sync, and bind the handful of globals every desktop client needs.
package client

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/wlcore/wl"
)

// Client owns a connection and the globals it has bound so far.
type Client struct {
	sock     *net.UnixConn
	conn     *wl.Connection
	display  wl.Display
	registry wl.Registry

	mu      sync.Mutex
	globals map[uint32]string

	compositor        *wl.Compositor
	shm               *wl.Shm
	seat              *wl.Seat
	dataDeviceManager *wl.DataDeviceManager
	subcompositor     *wl.Subcompositor
	xdgWmBase         *wl.XdgWmBase
}

// NewClient dials WAYLAND_DISPLAY (relative to XDG_RUNTIME_DIR unless
// already absolute), performs the registry bootstrap, and blocks until
// the initial sync completes; every global Client tracks that was
// advertised before the sync point is bound, and the bind requests sent,
// by the time this returns. Other globals are only recorded by name.
func NewClient() (*Client, error) {
	path, err := socketPath()
	if err != nil {
		return nil, fmt.Errorf("client: %w", err)
	}
	sock, err := net.DialUnix("unix", nil, &net.UnixAddr{Name: path, Net: "unix"})
	if err != nil {
		return nil, fmt.Errorf("client: dialing %s: %w", path, err)
	}

	c := &Client{
		sock:    sock,
		conn:    wl.NewConnection(sock),
		globals: make(map[uint32]string),
	}
	c.display = c.conn.GetDisplay()
	c.registry = c.display.GetRegistry()
	callback := c.display.Sync()

	h := &registryHandler{client: c, syncTarget: callback.ID()}
	c.conn.Send()
	for !h.done {
		c.conn.Recv()
		c.conn.DispatchEvents(h)
	}
	c.conn.Send()
	return c, nil
}

func socketPath() (string, error) {
	runtimeDir := os.Getenv("XDG_RUNTIME_DIR")
	if runtimeDir == "" {
		return "", fmt.Errorf("XDG_RUNTIME_DIR is not set")
	}
	display := os.Getenv("WAYLAND_DISPLAY")
	if display == "" {
		display = "wayland-0"
	}
	if filepath.IsAbs(display) {
		return display, nil
	}
	return filepath.Join(runtimeDir, display), nil
}

// registryHandler collects globals and binds the ones Client tracks,
// then flags done once the bootstrap sync callback fires. syncTarget
// pins it to this bootstrap's own sync rather than any later one a
// caller might issue on the same connection.
type registryHandler struct {
	wl.NoopHandler
	client     *Client
	syncTarget uint32
	done       bool
}

func (h *registryHandler) OnWlRegistryGlobal(e wl.WlRegistryGlobalEvent, conn *wl.Connection) {
	c := h.client
	c.mu.Lock()
	defer c.mu.Unlock()
	c.globals[e.Name] = e.Interface

	switch e.Interface {
	case "wl_compositor":
		if id, err := c.registry.Bind(e.Name, e.Interface, e.Version); err == nil {
			v := conn.AsCompositor(id)
			c.compositor = &v
		}
	case "wl_shm":
		if id, err := c.registry.Bind(e.Name, e.Interface, e.Version); err == nil {
			v := conn.AsShm(id)
			c.shm = &v
		}
	case "wl_seat":
		if id, err := c.registry.Bind(e.Name, e.Interface, e.Version); err == nil {
			v := conn.AsSeat(id)
			c.seat = &v
		}
	case "wl_data_device_manager":
		if id, err := c.registry.Bind(e.Name, e.Interface, e.Version); err == nil {
			v := conn.AsDataDeviceManager(id)
			c.dataDeviceManager = &v
		}
	case "wl_subcompositor":
		if id, err := c.registry.Bind(e.Name, e.Interface, e.Version); err == nil {
			v := conn.AsSubcompositor(id)
			c.subcompositor = &v
		}
	case "xdg_wm_base":
		if id, err := c.registry.Bind(e.Name, e.Interface, e.Version); err == nil {
			v := conn.AsXdgWmBase(id)
			c.xdgWmBase = &v
		}
	}
}

func (h *registryHandler) OnWlRegistryGlobalRemove(e wl.WlRegistryGlobalRemoveEvent, conn *wl.Connection) {
	c := h.client
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.globals, e.Name)
}

func (h *registryHandler) OnWlDisplaySyncDone(e wl.WlDisplaySyncDoneEvent, conn *wl.Connection) {
	if e.SourceID == h.syncTarget {
		h.done = true
	}
}

// Compositor returns the bound wl_compositor, or nil if the compositor
// never advertised one.
func (c *Client) Compositor() *wl.Compositor { c.mu.Lock(); defer c.mu.Unlock(); return c.compositor }

// Shm returns the bound wl_shm, or nil.
func (c *Client) Shm() *wl.Shm { c.mu.Lock(); defer c.mu.Unlock(); return c.shm }

// Seat returns the bound wl_seat, or nil.
func (c *Client) Seat() *wl.Seat { c.mu.Lock(); defer c.mu.Unlock(); return c.seat }

// DataDeviceManager returns the bound wl_data_device_manager, or nil.
func (c *Client) DataDeviceManager() *wl.DataDeviceManager {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dataDeviceManager
}

// Subcompositor returns the bound wl_subcompositor, or nil.
func (c *Client) Subcompositor() *wl.Subcompositor {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subcompositor
}

// XdgWmBase returns the bound xdg_wm_base, or nil.
func (c *Client) XdgWmBase() *wl.XdgWmBase { c.mu.Lock(); defer c.mu.Unlock(); return c.xdgWmBase }

// Connection returns the underlying connection for requests this
// bootstrap doesn't wrap directly.
func (c *Client) Connection() *wl.Connection { return c.conn }

// Close closes the underlying socket.
func (c *Client) Close() error { return c.sock.Close() }
