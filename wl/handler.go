package wl

// EventHandler receives every decoded event the dispatcher produces, one
// method per (interface, event) pair. Go interfaces can't carry default
// method bodies, so NoopHandler below supplies the all-methods-empty
// implementation callers embed and selectively override, the same
// pattern generated gRPC service code uses for forward-compatible
// server interfaces. Grounded on the original source's EventHandler
// trait, which plays the identical role against the same interface
// surface.
type EventHandler interface {
	OnWlDisplaySyncDone(e WlDisplaySyncDoneEvent, conn *Connection)
	OnWlDisplayError(e WlDisplayErrorEvent, conn *Connection)
	OnWlDisplayDeleteID(e WlDisplayDeleteIdEvent, conn *Connection)

	OnWlRegistryGlobal(e WlRegistryGlobalEvent, conn *Connection)
	OnWlRegistryGlobalRemove(e WlRegistryGlobalRemoveEvent, conn *Connection)

	OnWlShmFormat(e WlShmFormatEvent, conn *Connection)

	OnWlBufferRelease(e WlBufferReleaseEvent, conn *Connection)

	OnWlDataOfferOffer(e WlDataOfferOfferEvent, conn *Connection)
	OnWlDataOfferSourceActions(e WlDataOfferSourceActionsEvent, conn *Connection)
	OnWlDataOfferAction(e WlDataOfferActionEvent, conn *Connection)

	OnWlDataSourceTarget(e WlDataSourceTargetEvent, conn *Connection)
	OnWlDataSourceSend(e WlDataSourceSendEvent, conn *Connection)
	OnWlDataSourceCancelled(e WlDataSourceCancelledEvent, conn *Connection)
	OnWlDataSourceDndDropPerformed(e WlDataSourceDndDropPerformedEvent, conn *Connection)
	OnWlDataSourceDndFinished(e WlDataSourceDndFinishedEvent, conn *Connection)
	OnWlDataSourceAction(e WlDataSourceActionEvent, conn *Connection)

	OnWlDataDeviceDataOffer(e WlDataDeviceDataOfferEvent, conn *Connection)
	OnWlDataDeviceEnter(e WlDataDeviceEnterEvent, conn *Connection)
	OnWlDataDeviceLeave(e WlDataDeviceLeaveEvent, conn *Connection)
	OnWlDataDeviceMotion(e WlDataDeviceMotionEvent, conn *Connection)
	OnWlDataDeviceDrop(e WlDataDeviceDropEvent, conn *Connection)
	OnWlDataDeviceSelection(e WlDataDeviceSelectionEvent, conn *Connection)

	OnWlShellSurfacePing(e WlShellSurfacePingEvent, conn *Connection)
	OnWlShellSurfaceConfigure(e WlShellSurfaceConfigureEvent, conn *Connection)
	OnWlShellSurfacePopupDone(e WlShellSurfacePopupDoneEvent, conn *Connection)

	OnWlSurfaceFrameDone(e WlSurfaceFrameDoneEvent, conn *Connection)
	OnWlSurfaceEnter(e WlSurfaceEnterEvent, conn *Connection)
	OnWlSurfaceLeave(e WlSurfaceLeaveEvent, conn *Connection)
	OnWlSurfacePreferredBufferScale(e WlSurfacePreferredBufferScaleEvent, conn *Connection)
	OnWlSurfacePreferredBufferTransform(e WlSurfacePreferredBufferTransformEvent, conn *Connection)

	OnWlSeatCapabilities(e WlSeatCapabilitiesEvent, conn *Connection)
	OnWlSeatName(e WlSeatNameEvent, conn *Connection)

	OnWlPointerEnter(e WlPointerEnterEvent, conn *Connection)
	OnWlPointerLeave(e WlPointerLeaveEvent, conn *Connection)
	OnWlPointerMotion(e WlPointerMotionEvent, conn *Connection)
	OnWlPointerButton(e WlPointerButtonEvent, conn *Connection)
	OnWlPointerAxis(e WlPointerAxisEvent, conn *Connection)
	OnWlPointerFrame(e WlPointerFrameEvent, conn *Connection)
	OnWlPointerAxisSource(e WlPointerAxisSourceEvent, conn *Connection)
	OnWlPointerAxisStop(e WlPointerAxisStopEvent, conn *Connection)
	OnWlPointerAxisDiscrete(e WlPointerAxisDiscreteEvent, conn *Connection)
	OnWlPointerAxisValue120(e WlPointerAxisValue120Event, conn *Connection)
	OnWlPointerAxisRelativeDirection(e WlPointerAxisRelativeDirectionEvent, conn *Connection)

	OnWlKeyboardKeymap(e WlKeyboardKeymapEvent, conn *Connection)
	OnWlKeyboardEnter(e WlKeyboardEnterEvent, conn *Connection)
	OnWlKeyboardLeave(e WlKeyboardLeaveEvent, conn *Connection)
	OnWlKeyboardKey(e WlKeyboardKeyEvent, conn *Connection)
	OnWlKeyboardModifiers(e WlKeyboardModifiersEvent, conn *Connection)
	OnWlKeyboardRepeatInfo(e WlKeyboardRepeatInfoEvent, conn *Connection)

	OnWlTouchDown(e WlTouchDownEvent, conn *Connection)
	OnWlTouchUp(e WlTouchUpEvent, conn *Connection)
	OnWlTouchMotion(e WlTouchMotionEvent, conn *Connection)
	OnWlTouchFrame(e WlTouchFrameEvent, conn *Connection)
	OnWlTouchCancel(e WlTouchCancelEvent, conn *Connection)
	OnWlTouchShape(e WlTouchShapeEvent, conn *Connection)
	OnWlTouchOrientation(e WlTouchOrientationEvent, conn *Connection)

	OnWlOutputGeometry(e WlOutputGeometryEvent, conn *Connection)
	OnWlOutputMode(e WlOutputModeEvent, conn *Connection)
	OnWlOutputDone(e WlOutputDoneEvent, conn *Connection)
	OnWlOutputScale(e WlOutputScaleEvent, conn *Connection)
	OnWlOutputName(e WlOutputNameEvent, conn *Connection)
	OnWlOutputDescription(e WlOutputDescriptionEvent, conn *Connection)

	OnXdgWmBasePing(e XdgWmBasePingEvent, conn *Connection)
	OnXdgSurfaceConfigure(e XdgSurfaceConfigureEvent, conn *Connection)
	OnXdgToplevelConfigure(e XdgToplevelConfigureEvent, conn *Connection)
	OnXdgToplevelClose(e XdgToplevelCloseEvent, conn *Connection)
	OnXdgToplevelConfigureBounds(e XdgToplevelConfigureBoundsEvent, conn *Connection)
	OnXdgToplevelWmCapabilities(e XdgToplevelWmCapabilitiesEvent, conn *Connection)
	OnXdgPopupConfigure(e XdgPopupConfigureEvent, conn *Connection)
	OnXdgPopupPopupDone(e XdgPopupPopupDoneEvent, conn *Connection)
	OnXdgPopupRepositioned(e XdgPopupRepositionedEvent, conn *Connection)
}

// NoopHandler implements EventHandler with every method a no-op.
// Embed it in a handler type and override only the events that matter.
type NoopHandler struct{}

func (NoopHandler) OnWlDisplaySyncDone(WlDisplaySyncDoneEvent, *Connection)   {}
func (NoopHandler) OnWlDisplayError(WlDisplayErrorEvent, *Connection)         {}
func (NoopHandler) OnWlDisplayDeleteID(WlDisplayDeleteIdEvent, *Connection)   {}

func (NoopHandler) OnWlRegistryGlobal(WlRegistryGlobalEvent, *Connection)             {}
func (NoopHandler) OnWlRegistryGlobalRemove(WlRegistryGlobalRemoveEvent, *Connection) {}

func (NoopHandler) OnWlShmFormat(WlShmFormatEvent, *Connection) {}

func (NoopHandler) OnWlBufferRelease(WlBufferReleaseEvent, *Connection) {}

func (NoopHandler) OnWlDataOfferOffer(WlDataOfferOfferEvent, *Connection)                 {}
func (NoopHandler) OnWlDataOfferSourceActions(WlDataOfferSourceActionsEvent, *Connection) {}
func (NoopHandler) OnWlDataOfferAction(WlDataOfferActionEvent, *Connection)               {}

func (NoopHandler) OnWlDataSourceTarget(WlDataSourceTargetEvent, *Connection)                 {}
func (NoopHandler) OnWlDataSourceSend(WlDataSourceSendEvent, *Connection)                     {}
func (NoopHandler) OnWlDataSourceCancelled(WlDataSourceCancelledEvent, *Connection)           {}
func (NoopHandler) OnWlDataSourceDndDropPerformed(WlDataSourceDndDropPerformedEvent, *Connection) {}
func (NoopHandler) OnWlDataSourceDndFinished(WlDataSourceDndFinishedEvent, *Connection)       {}
func (NoopHandler) OnWlDataSourceAction(WlDataSourceActionEvent, *Connection)                 {}

func (NoopHandler) OnWlDataDeviceDataOffer(WlDataDeviceDataOfferEvent, *Connection) {}
func (NoopHandler) OnWlDataDeviceEnter(WlDataDeviceEnterEvent, *Connection)         {}
func (NoopHandler) OnWlDataDeviceLeave(WlDataDeviceLeaveEvent, *Connection)         {}
func (NoopHandler) OnWlDataDeviceMotion(WlDataDeviceMotionEvent, *Connection)       {}
func (NoopHandler) OnWlDataDeviceDrop(WlDataDeviceDropEvent, *Connection)           {}
func (NoopHandler) OnWlDataDeviceSelection(WlDataDeviceSelectionEvent, *Connection) {}

func (NoopHandler) OnWlShellSurfacePing(WlShellSurfacePingEvent, *Connection)           {}
func (NoopHandler) OnWlShellSurfaceConfigure(WlShellSurfaceConfigureEvent, *Connection) {}
func (NoopHandler) OnWlShellSurfacePopupDone(WlShellSurfacePopupDoneEvent, *Connection) {}

func (NoopHandler) OnWlSurfaceFrameDone(WlSurfaceFrameDoneEvent, *Connection) {}
func (NoopHandler) OnWlSurfaceEnter(WlSurfaceEnterEvent, *Connection)         {}
func (NoopHandler) OnWlSurfaceLeave(WlSurfaceLeaveEvent, *Connection)         {}
func (NoopHandler) OnWlSurfacePreferredBufferScale(WlSurfacePreferredBufferScaleEvent, *Connection) {
}
func (NoopHandler) OnWlSurfacePreferredBufferTransform(WlSurfacePreferredBufferTransformEvent, *Connection) {
}

func (NoopHandler) OnWlSeatCapabilities(WlSeatCapabilitiesEvent, *Connection) {}
func (NoopHandler) OnWlSeatName(WlSeatNameEvent, *Connection)                 {}

func (NoopHandler) OnWlPointerEnter(WlPointerEnterEvent, *Connection)   {}
func (NoopHandler) OnWlPointerLeave(WlPointerLeaveEvent, *Connection)   {}
func (NoopHandler) OnWlPointerMotion(WlPointerMotionEvent, *Connection) {}
func (NoopHandler) OnWlPointerButton(WlPointerButtonEvent, *Connection) {}
func (NoopHandler) OnWlPointerAxis(WlPointerAxisEvent, *Connection)     {}
func (NoopHandler) OnWlPointerFrame(WlPointerFrameEvent, *Connection)   {}
func (NoopHandler) OnWlPointerAxisSource(WlPointerAxisSourceEvent, *Connection) {}
func (NoopHandler) OnWlPointerAxisStop(WlPointerAxisStopEvent, *Connection)     {}
func (NoopHandler) OnWlPointerAxisDiscrete(WlPointerAxisDiscreteEvent, *Connection) {}
func (NoopHandler) OnWlPointerAxisValue120(WlPointerAxisValue120Event, *Connection) {}
func (NoopHandler) OnWlPointerAxisRelativeDirection(WlPointerAxisRelativeDirectionEvent, *Connection) {
}

func (NoopHandler) OnWlKeyboardKeymap(WlKeyboardKeymapEvent, *Connection)         {}
func (NoopHandler) OnWlKeyboardEnter(WlKeyboardEnterEvent, *Connection)           {}
func (NoopHandler) OnWlKeyboardLeave(WlKeyboardLeaveEvent, *Connection)           {}
func (NoopHandler) OnWlKeyboardKey(WlKeyboardKeyEvent, *Connection)               {}
func (NoopHandler) OnWlKeyboardModifiers(WlKeyboardModifiersEvent, *Connection)   {}
func (NoopHandler) OnWlKeyboardRepeatInfo(WlKeyboardRepeatInfoEvent, *Connection) {}

func (NoopHandler) OnWlTouchDown(WlTouchDownEvent, *Connection)             {}
func (NoopHandler) OnWlTouchUp(WlTouchUpEvent, *Connection)                 {}
func (NoopHandler) OnWlTouchMotion(WlTouchMotionEvent, *Connection)         {}
func (NoopHandler) OnWlTouchFrame(WlTouchFrameEvent, *Connection)           {}
func (NoopHandler) OnWlTouchCancel(WlTouchCancelEvent, *Connection)         {}
func (NoopHandler) OnWlTouchShape(WlTouchShapeEvent, *Connection)           {}
func (NoopHandler) OnWlTouchOrientation(WlTouchOrientationEvent, *Connection) {}

func (NoopHandler) OnWlOutputGeometry(WlOutputGeometryEvent, *Connection)       {}
func (NoopHandler) OnWlOutputMode(WlOutputModeEvent, *Connection)               {}
func (NoopHandler) OnWlOutputDone(WlOutputDoneEvent, *Connection)               {}
func (NoopHandler) OnWlOutputScale(WlOutputScaleEvent, *Connection)             {}
func (NoopHandler) OnWlOutputName(WlOutputNameEvent, *Connection)               {}
func (NoopHandler) OnWlOutputDescription(WlOutputDescriptionEvent, *Connection) {}

func (NoopHandler) OnXdgWmBasePing(XdgWmBasePingEvent, *Connection)                         {}
func (NoopHandler) OnXdgSurfaceConfigure(XdgSurfaceConfigureEvent, *Connection)             {}
func (NoopHandler) OnXdgToplevelConfigure(XdgToplevelConfigureEvent, *Connection)           {}
func (NoopHandler) OnXdgToplevelClose(XdgToplevelCloseEvent, *Connection)                   {}
func (NoopHandler) OnXdgToplevelConfigureBounds(XdgToplevelConfigureBoundsEvent, *Connection) {
}
func (NoopHandler) OnXdgToplevelWmCapabilities(XdgToplevelWmCapabilitiesEvent, *Connection) {}
func (NoopHandler) OnXdgPopupConfigure(XdgPopupConfigureEvent, *Connection)                 {}
func (NoopHandler) OnXdgPopupPopupDone(XdgPopupPopupDoneEvent, *Connection)                 {}
func (NoopHandler) OnXdgPopupRepositioned(XdgPopupRepositionedEvent, *Connection)           {}

var _ EventHandler = NoopHandler{}
