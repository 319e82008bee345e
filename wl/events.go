package wl

// Event types carry the sender's object id (SourceID) plus the event's
// own arguments, decoded in declaration order straight off the wire by
// the dispatcher in dispatch.go. Field order and types are grounded on
// connection/events.rs's per-interface decode bodies.

// WlDisplaySyncDoneEvent fires once for the callback created by
// Display.Sync, carrying the event serial as its data word.
type WlDisplaySyncDoneEvent struct {
	SourceID uint32
	Data     uint32
}

// WlDisplayErrorEvent reports a fatal protocol error raised against
// ObjectID; the connection should be torn down on receipt.
type WlDisplayErrorEvent struct {
	SourceID uint32
	ObjectID uint32
	Code     uint32
	Message  string
}

// WlDisplayDeleteIdEvent names an id the server has finished with. The
// dispatcher intercepts this event to free the registry slot before
// invoking the handler; handlers see it purely for informational
// purposes and must not call DeleteObject themselves.
type WlDisplayDeleteIdEvent struct {
	SourceID uint32
	ID       uint32
}

// WlRegistryGlobalEvent advertises one compositor global.
type WlRegistryGlobalEvent struct {
	SourceID  uint32
	Name      uint32
	Interface string
	Version   uint32
}

// WlRegistryGlobalRemoveEvent retracts a previously advertised global.
type WlRegistryGlobalRemoveEvent struct {
	SourceID uint32
	Name     uint32
}

// WlShmFormatEvent advertises one pixel format the shm pool supports.
type WlShmFormatEvent struct {
	SourceID uint32
	Format   WlShmFormat
}

// WlBufferReleaseEvent signals the compositor no longer reads the buffer.
type WlBufferReleaseEvent struct {
	SourceID uint32
}

type WlDataOfferOfferEvent struct {
	SourceID uint32
	MimeType string
}

type WlDataOfferSourceActionsEvent struct {
	SourceID        uint32
	SourceActions   uint32
}

type WlDataOfferActionEvent struct {
	SourceID uint32
	DndAction uint32
}

type WlDataSourceTargetEvent struct {
	SourceID uint32
	MimeType string
}

type WlDataSourceSendEvent struct {
	SourceID uint32
	MimeType string
	FD       int
}

type WlDataSourceCancelledEvent struct {
	SourceID uint32
}

type WlDataSourceDndDropPerformedEvent struct {
	SourceID uint32
}

type WlDataSourceDndFinishedEvent struct {
	SourceID uint32
}

type WlDataSourceActionEvent struct {
	SourceID  uint32
	DndAction uint32
}

type WlDataDeviceDataOfferEvent struct {
	SourceID uint32
	ID       uint32
}

type WlDataDeviceEnterEvent struct {
	SourceID uint32
	Serial   uint32
	Surface  uint32
	X, Y     Fixed
	ID       uint32
}

type WlDataDeviceLeaveEvent struct {
	SourceID uint32
}

type WlDataDeviceMotionEvent struct {
	SourceID uint32
	Time     uint32
	X, Y     Fixed
}

type WlDataDeviceDropEvent struct {
	SourceID uint32
}

type WlDataDeviceSelectionEvent struct {
	SourceID uint32
	ID       uint32
}

type WlShellSurfacePingEvent struct {
	SourceID uint32
	Serial   uint32
}

type WlShellSurfaceConfigureEvent struct {
	SourceID      uint32
	Edges         uint32
	Width, Height int32
}

type WlShellSurfacePopupDoneEvent struct {
	SourceID uint32
}

// WlSurfaceFrameDoneEvent is the done event for Surface.Frame's
// callback; Data carries the presentation timestamp.
type WlSurfaceFrameDoneEvent struct {
	SourceID uint32
	Data     uint32
}

type WlSurfaceEnterEvent struct {
	SourceID uint32
	Output   uint32
}

type WlSurfaceLeaveEvent struct {
	SourceID uint32
	Output   uint32
}

type WlSurfacePreferredBufferScaleEvent struct {
	SourceID uint32
	Factor   int32
}

type WlSurfacePreferredBufferTransformEvent struct {
	SourceID  uint32
	Transform WlOutputTransform
}

type WlSeatCapabilitiesEvent struct {
	SourceID     uint32
	Capabilities uint32
}

type WlSeatNameEvent struct {
	SourceID uint32
	Name     string
}

type WlPointerEnterEvent struct {
	SourceID uint32
	Serial   uint32
	Surface  uint32
	X, Y     Fixed
}

type WlPointerLeaveEvent struct {
	SourceID uint32
	Serial   uint32
	Surface  uint32
}

type WlPointerMotionEvent struct {
	SourceID uint32
	Time     uint32
	X, Y     Fixed
}

type WlPointerButtonEvent struct {
	SourceID uint32
	Serial   uint32
	Time     uint32
	Button   uint32
	State    WlPointerButtonState
}

type WlPointerAxisEvent struct {
	SourceID uint32
	Time     uint32
	Axis     WlPointerAxis
	Value    Fixed
}

type WlPointerFrameEvent struct {
	SourceID uint32
}

type WlPointerAxisSourceEvent struct {
	SourceID    uint32
	AxisSource  WlPointerAxisSource
}

type WlPointerAxisStopEvent struct {
	SourceID uint32
	Time     uint32
	Axis     WlPointerAxis
}

type WlPointerAxisDiscreteEvent struct {
	SourceID uint32
	Axis     WlPointerAxis
	Discrete int32
}

type WlPointerAxisValue120Event struct {
	SourceID uint32
	Axis     WlPointerAxis
	Value120 int32
}

type WlPointerAxisRelativeDirectionEvent struct {
	SourceID  uint32
	Axis      WlPointerAxis
	Direction WlPointerAxisRelativeDirection
}

type WlKeyboardKeymapEvent struct {
	SourceID uint32
	Format   WlKeyboardKeymapFormat
	FD       int
	Size     uint32
}

type WlKeyboardEnterEvent struct {
	SourceID uint32
	Serial   uint32
	Surface  uint32
	Keys     []byte
}

type WlKeyboardLeaveEvent struct {
	SourceID uint32
	Serial   uint32
	Surface  uint32
}

type WlKeyboardKeyEvent struct {
	SourceID uint32
	Serial   uint32
	Time     uint32
	Key      uint32
	State    WlKeyboardKeyState
}

type WlKeyboardModifiersEvent struct {
	SourceID                               uint32
	Serial                                  uint32
	ModsDepressed, ModsLatched, ModsLocked  uint32
	Group                                   uint32
}

type WlKeyboardRepeatInfoEvent struct {
	SourceID uint32
	Rate     int32
	Delay    int32
}

type WlTouchDownEvent struct {
	SourceID uint32
	Serial   uint32
	Time     uint32
	Surface  uint32
	ID       int32
	X, Y     Fixed
}

type WlTouchUpEvent struct {
	SourceID uint32
	Serial   uint32
	Time     uint32
	ID       int32
}

type WlTouchMotionEvent struct {
	SourceID uint32
	Time     uint32
	ID       int32
	X, Y     Fixed
}

type WlTouchFrameEvent struct {
	SourceID uint32
}

type WlTouchCancelEvent struct {
	SourceID uint32
}

type WlTouchShapeEvent struct {
	SourceID uint32
	ID       int32
	Major    Fixed
	Minor    Fixed
}

type WlTouchOrientationEvent struct {
	SourceID    uint32
	ID          int32
	Orientation Fixed
}

type WlOutputGeometryEvent struct {
	SourceID                       uint32
	X, Y                           int32
	PhysicalWidth, PhysicalHeight  int32
	Subpixel                       WlOutputSubpixel
	Make, Model                    string
	Transform                      WlOutputTransform
}

type WlOutputModeEvent struct {
	SourceID      uint32
	Flags         uint32
	Width, Height int32
	Refresh       int32
}

type WlOutputDoneEvent struct {
	SourceID uint32
}

type WlOutputScaleEvent struct {
	SourceID uint32
	Factor   int32
}

type WlOutputNameEvent struct {
	SourceID uint32
	Name     string
}

type WlOutputDescriptionEvent struct {
	SourceID    uint32
	Description string
}

type XdgWmBasePingEvent struct {
	SourceID uint32
	Serial   uint32
}

type XdgSurfaceConfigureEvent struct {
	SourceID uint32
	Serial   uint32
}

// XdgToplevelConfigureEvent carries the compositor's suggested size and
// the raw states array (each entry a little-endian uint32
// xdg_toplevel state value; this package defines no constants for them); decoding each entry is left to the caller
// since the array length is arbitrary and most callers only care about a
// handful of the flags.
type XdgToplevelConfigureEvent struct {
	SourceID      uint32
	Width, Height int32
	States        []byte
}

type XdgToplevelCloseEvent struct {
	SourceID uint32
}

type XdgToplevelConfigureBoundsEvent struct {
	SourceID      uint32
	Width, Height int32
}

type XdgToplevelWmCapabilitiesEvent struct {
	SourceID     uint32
	Capabilities []byte
}

type XdgPopupConfigureEvent struct {
	SourceID      uint32
	X, Y          int32
	Width, Height int32
}

type XdgPopupPopupDoneEvent struct {
	SourceID uint32
}

type XdgPopupRepositionedEvent struct {
	SourceID uint32
	Token    uint32
}
