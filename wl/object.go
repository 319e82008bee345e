// Package wl is a client-side Wayland protocol core: connection, wire
// codec wiring, object-id registry, and event dispatch for the closed set
// of interfaces defined by wayland.xml's core protocol plus xdg-shell.
//
// Each interface is represented by a small value type (Display, Registry,
// Surface, Seat, XdgToplevel, ...) holding the object id and the owning
// Connection, with one method per request. Events arrive through a single
// EventHandler implemented by the caller; see NoopHandler for the
// embeddable no-op base, and Connection.DispatchEvents delivers them.
package wl

// Tag identifies the interface of an object occupying a registry slot.
// Tag zero is the reserved Null sentinel; every other value names exactly
// one of the closed set of interfaces this core understands.
type Tag uint8

const (
	Null Tag = iota
	TagWlDisplay
	TagWlRegistry
	TagWlCallbackSync  // the callback created by wl_display.sync
	TagWlCallbackFrame // the callback created by wl_surface.frame
	TagWlCompositor
	TagWlShmPool
	TagWlShm
	TagWlBuffer
	TagWlDataOffer
	TagWlDataSource
	TagWlDataDevice
	TagWlDataDeviceManager
	TagWlShell
	TagWlShellSurface
	TagWlSurface
	TagWlSeat
	TagWlPointer
	TagWlKeyboard
	TagWlTouch
	TagWlOutput
	TagWlRegion
	TagWlSubcompositor
	TagWlSubsurface
	TagXdgWmBase
	TagXdgPositioner
	TagXdgSurface
	TagXdgToplevel
	TagXdgPopup

	tagCount
)

var tagNames = [tagCount]string{
	Null:                   "<null>",
	TagWlDisplay:           "wl_display",
	TagWlRegistry:          "wl_registry",
	TagWlCallbackSync:      "wl_callback",
	TagWlCallbackFrame:     "wl_callback",
	TagWlCompositor:        "wl_compositor",
	TagWlShmPool:           "wl_shm_pool",
	TagWlShm:               "wl_shm",
	TagWlBuffer:            "wl_buffer",
	TagWlDataOffer:         "wl_data_offer",
	TagWlDataSource:        "wl_data_source",
	TagWlDataDevice:        "wl_data_device",
	TagWlDataDeviceManager: "wl_data_device_manager",
	TagWlShell:             "wl_shell",
	TagWlShellSurface:      "wl_shell_surface",
	TagWlSurface:           "wl_surface",
	TagWlSeat:              "wl_seat",
	TagWlPointer:           "wl_pointer",
	TagWlKeyboard:          "wl_keyboard",
	TagWlTouch:             "wl_touch",
	TagWlOutput:            "wl_output",
	TagWlRegion:            "wl_region",
	TagWlSubcompositor:     "wl_subcompositor",
	TagWlSubsurface:        "wl_subsurface",
	TagXdgWmBase:           "xdg_wm_base",
	TagXdgPositioner:       "xdg_positioner",
	TagXdgSurface:          "xdg_surface",
	TagXdgToplevel:         "xdg_toplevel",
	TagXdgPopup:            "xdg_popup",
}

// String returns the protocol interface name for t, or "<null>" for the
// Null sentinel.
func (t Tag) String() string {
	if t >= tagCount {
		return "<unknown>"
	}
	return tagNames[t]
}

// tagFromInterfaceName resolves the generic wl_registry.bind interface
// string to the tag the new_id should be allocated with. Bind is the only
// request where the interface of a new_id isn't already fixed by the
// request's own opcode, so this lookup only needs to run there.
func tagFromInterfaceName(name string) (Tag, bool) {
	for t, n := range tagNames {
		if Tag(t) == Null {
			continue
		}
		if n == name {
			// wl_callback has two tags sharing one interface name; bind
			// never targets wl_callback (it isn't a global), so returning
			// the first match is unambiguous for every bindable interface.
			if Tag(t) == TagWlCallbackFrame {
				continue
			}
			return Tag(t), true
		}
	}
	return Null, false
}
