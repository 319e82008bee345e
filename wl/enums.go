package wl

// Wire enums decode to one of their named values, or to the type's
// Unexpected sentinel when the server sends a value outside the known
// set: unknown enum values never fail decoding, they just lose
// precision. Bitmask fields (capabilities, dnd actions,
// constraint-adjustment, output mode flags) have no invalid combination
// by construction and are carried as plain uint32 instead.

// WlPointerButtonState is wl_pointer.button's button state.
type WlPointerButtonState uint32

const (
	WlPointerButtonStateReleased WlPointerButtonState = 0
	WlPointerButtonStatePressed  WlPointerButtonState = 1
	WlPointerButtonStateUnexpected WlPointerButtonState = 2
)

func wlPointerButtonStateFromUint32(v uint32) WlPointerButtonState {
	switch v {
	case 0, 1:
		return WlPointerButtonState(v)
	default:
		return WlPointerButtonStateUnexpected
	}
}

// WlPointerAxis distinguishes scroll axes.
type WlPointerAxis uint32

const (
	WlPointerAxisVerticalScroll   WlPointerAxis = 0
	WlPointerAxisHorizontalScroll WlPointerAxis = 1
	WlPointerAxisUnexpected       WlPointerAxis = 0xffffffff
)

func wlPointerAxisFromUint32(v uint32) WlPointerAxis {
	switch v {
	case 0, 1:
		return WlPointerAxis(v)
	default:
		return WlPointerAxisUnexpected
	}
}

// WlPointerAxisSource is the source device behind axis events.
type WlPointerAxisSource uint32

const (
	WlPointerAxisSourceWheel      WlPointerAxisSource = 0
	WlPointerAxisSourceFinger     WlPointerAxisSource = 1
	WlPointerAxisSourceContinuous WlPointerAxisSource = 2
	WlPointerAxisSourceWheelTilt  WlPointerAxisSource = 3
	WlPointerAxisSourceUnexpected WlPointerAxisSource = 0xffffffff
)

func wlPointerAxisSourceFromUint32(v uint32) WlPointerAxisSource {
	if v <= 3 {
		return WlPointerAxisSource(v)
	}
	return WlPointerAxisSourceUnexpected
}

// WlPointerAxisRelativeDirection reports whether an axis event was
// inverted relative to the physical motion (natural scrolling).
type WlPointerAxisRelativeDirection uint32

const (
	WlPointerAxisRelativeDirectionIdentical WlPointerAxisRelativeDirection = 0
	WlPointerAxisRelativeDirectionInverted  WlPointerAxisRelativeDirection = 1
	WlPointerAxisRelativeDirectionUnexpected WlPointerAxisRelativeDirection = 0xffffffff
)

func wlPointerAxisRelativeDirectionFromUint32(v uint32) WlPointerAxisRelativeDirection {
	switch v {
	case 0, 1:
		return WlPointerAxisRelativeDirection(v)
	default:
		return WlPointerAxisRelativeDirectionUnexpected
	}
}

// WlKeyboardKeymapFormat names the encoding of the keymap fd payload.
type WlKeyboardKeymapFormat uint32

const (
	WlKeyboardKeymapFormatNoKeymap WlKeyboardKeymapFormat = 0
	WlKeyboardKeymapFormatXkbV1    WlKeyboardKeymapFormat = 1
	WlKeyboardKeymapFormatUnexpected WlKeyboardKeymapFormat = 0xffffffff
)

func wlKeyboardKeymapFormatFromUint32(v uint32) WlKeyboardKeymapFormat {
	switch v {
	case 0, 1:
		return WlKeyboardKeymapFormat(v)
	default:
		return WlKeyboardKeymapFormatUnexpected
	}
}

// WlKeyboardKeyState is wl_keyboard.key's physical key state.
type WlKeyboardKeyState uint32

const (
	WlKeyboardKeyStateReleased WlKeyboardKeyState = 0
	WlKeyboardKeyStatePressed  WlKeyboardKeyState = 1
	WlKeyboardKeyStateUnexpected WlKeyboardKeyState = 0xffffffff
)

func wlKeyboardKeyStateFromUint32(v uint32) WlKeyboardKeyState {
	switch v {
	case 0, 1:
		return WlKeyboardKeyState(v)
	default:
		return WlKeyboardKeyStateUnexpected
	}
}

// WlOutputSubpixel describes a monitor's subpixel geometry.
type WlOutputSubpixel uint32

const (
	WlOutputSubpixelUnknown        WlOutputSubpixel = 0
	WlOutputSubpixelNone           WlOutputSubpixel = 1
	WlOutputSubpixelHorizontalRGB  WlOutputSubpixel = 2
	WlOutputSubpixelHorizontalBGR  WlOutputSubpixel = 3
	WlOutputSubpixelVerticalRGB    WlOutputSubpixel = 4
	WlOutputSubpixelVerticalBGR    WlOutputSubpixel = 5
	WlOutputSubpixelUnexpected     WlOutputSubpixel = 0xffffffff
)

func wlOutputSubpixelFromUint32(v uint32) WlOutputSubpixel {
	if v <= 5 {
		return WlOutputSubpixel(v)
	}
	return WlOutputSubpixelUnexpected
}

// WlOutputTransform describes the transform applied to buffer contents.
type WlOutputTransform uint32

const (
	WlOutputTransformNormal     WlOutputTransform = 0
	WlOutputTransform90         WlOutputTransform = 1
	WlOutputTransform180        WlOutputTransform = 2
	WlOutputTransform270        WlOutputTransform = 3
	WlOutputTransformFlipped    WlOutputTransform = 4
	WlOutputTransformFlipped90  WlOutputTransform = 5
	WlOutputTransformFlipped180 WlOutputTransform = 6
	WlOutputTransformFlipped270 WlOutputTransform = 7
	WlOutputTransformUnexpected WlOutputTransform = 0xffffffff
)

func wlOutputTransformFromUint32(v uint32) WlOutputTransform {
	if v <= 7 {
		return WlOutputTransform(v)
	}
	return WlOutputTransformUnexpected
}

// WlShmFormat names a pixel format. Only the two formats every compositor
// must support get named constants; everything else, the bulk of the
// fourcc space, decodes to Unexpected rather than enumerating the
// hundreds of extension formats.
type WlShmFormat uint32

const (
	WlShmFormatArgb8888 WlShmFormat = 0
	WlShmFormatXrgb8888 WlShmFormat = 1
	WlShmFormatUnexpected WlShmFormat = 0xffffffff
)

func wlShmFormatFromUint32(v uint32) WlShmFormat {
	switch v {
	case 0, 1:
		return WlShmFormat(v)
	default:
		return WlShmFormatUnexpected
	}
}

// XdgPositionerAnchor names the anchor edge/corner of a positioner rule.
type XdgPositionerAnchor uint32

const (
	XdgPositionerAnchorNone        XdgPositionerAnchor = 0
	XdgPositionerAnchorTop         XdgPositionerAnchor = 1
	XdgPositionerAnchorBottom      XdgPositionerAnchor = 2
	XdgPositionerAnchorLeft        XdgPositionerAnchor = 3
	XdgPositionerAnchorRight       XdgPositionerAnchor = 4
	XdgPositionerAnchorTopLeft     XdgPositionerAnchor = 5
	XdgPositionerAnchorBottomLeft  XdgPositionerAnchor = 6
	XdgPositionerAnchorTopRight    XdgPositionerAnchor = 7
	XdgPositionerAnchorBottomRight XdgPositionerAnchor = 8
	XdgPositionerAnchorUnexpected  XdgPositionerAnchor = 0xffffffff
)

// XdgPositionerGravity names the direction a positioned surface grows in.
type XdgPositionerGravity uint32

const (
	XdgPositionerGravityNone        XdgPositionerGravity = 0
	XdgPositionerGravityTop         XdgPositionerGravity = 1
	XdgPositionerGravityBottom      XdgPositionerGravity = 2
	XdgPositionerGravityLeft        XdgPositionerGravity = 3
	XdgPositionerGravityRight       XdgPositionerGravity = 4
	XdgPositionerGravityTopLeft     XdgPositionerGravity = 5
	XdgPositionerGravityBottomLeft  XdgPositionerGravity = 6
	XdgPositionerGravityTopRight    XdgPositionerGravity = 7
	XdgPositionerGravityBottomRight XdgPositionerGravity = 8
	XdgPositionerGravityUnexpected  XdgPositionerGravity = 0xffffffff
)

// XdgToplevelResizeEdge names which edge/corner an interactive resize
// grabs.
type XdgToplevelResizeEdge uint32

const (
	XdgToplevelResizeEdgeNone        XdgToplevelResizeEdge = 0
	XdgToplevelResizeEdgeTop         XdgToplevelResizeEdge = 1
	XdgToplevelResizeEdgeBottom      XdgToplevelResizeEdge = 2
	XdgToplevelResizeEdgeLeft        XdgToplevelResizeEdge = 4
	XdgToplevelResizeEdgeTopLeft     XdgToplevelResizeEdge = 5
	XdgToplevelResizeEdgeBottomLeft  XdgToplevelResizeEdge = 6
	XdgToplevelResizeEdgeRight       XdgToplevelResizeEdge = 8
	XdgToplevelResizeEdgeTopRight    XdgToplevelResizeEdge = 9
	XdgToplevelResizeEdgeBottomRight XdgToplevelResizeEdge = 10
)

// WlShellSurfaceResize mirrors the legacy wl_shell_surface resize edges,
// bit-identical to XdgToplevelResizeEdge.
type WlShellSurfaceResize = XdgToplevelResizeEdge
