package wl

import "fmt"

// DispatchEvents decodes and delivers every message currently buffered
// by the last Recv, in arrival order, stopping once the payload cursor
// reaches the end of the buffer. It must run after Recv and before the
// next Recv clears the buffers out from under it.
//
// wl_display.delete_id is handled specially: the dispatcher frees the
// registry slot itself before calling the handler, so user code never
// needs to call DeleteObject for ids the server retires. This is a
// deliberate divergence from the original source, which only forwards
// the event and leaves id bookkeeping to the caller.
func (c *Connection) DispatchEvents(handler EventHandler) {
	if c.reader == nil {
		return
	}
	r := c.reader
	for r.Remaining() {
		start := r.Pos()
		hdr := r.ReadHeader()
		msgEnd := start + int(hdr.Len)

		tag, err := c.lookup(hdr.ObjID)
		if err != nil {
			panic(fmt.Errorf("wl: dispatch: %w", err))
		}

		switch tag {
		case TagWlDisplay:
			switch hdr.Opcode {
			case 0:
				handler.OnWlDisplayError(WlDisplayErrorEvent{
					SourceID: hdr.ObjID,
					ObjectID: r.ReadUint(),
					Code:     r.ReadUint(),
					Message:  r.ReadString(),
				}, c)
			case 1:
				id := r.ReadUint()
				c.DeleteObject(id)
				handler.OnWlDisplayDeleteID(WlDisplayDeleteIdEvent{SourceID: hdr.ObjID, ID: id}, c)
			default:
				r.Skip(msgEnd)
			}

		case TagWlCallbackSync:
			switch hdr.Opcode {
			case 0:
				handler.OnWlDisplaySyncDone(WlDisplaySyncDoneEvent{SourceID: hdr.ObjID, Data: r.ReadUint()}, c)
			default:
				r.Skip(msgEnd)
			}

		case TagWlCallbackFrame:
			switch hdr.Opcode {
			case 0:
				handler.OnWlSurfaceFrameDone(WlSurfaceFrameDoneEvent{SourceID: hdr.ObjID, Data: r.ReadUint()}, c)
			default:
				r.Skip(msgEnd)
			}

		case TagWlRegistry:
			switch hdr.Opcode {
			case 0:
				handler.OnWlRegistryGlobal(WlRegistryGlobalEvent{
					SourceID:  hdr.ObjID,
					Name:      r.ReadUint(),
					Interface: r.ReadString(),
					Version:   r.ReadUint(),
				}, c)
			case 1:
				handler.OnWlRegistryGlobalRemove(WlRegistryGlobalRemoveEvent{SourceID: hdr.ObjID, Name: r.ReadUint()}, c)
			default:
				r.Skip(msgEnd)
			}

		case TagWlShm:
			switch hdr.Opcode {
			case 0:
				handler.OnWlShmFormat(WlShmFormatEvent{SourceID: hdr.ObjID, Format: wlShmFormatFromUint32(r.ReadUint())}, c)
			default:
				r.Skip(msgEnd)
			}

		case TagWlBuffer:
			switch hdr.Opcode {
			case 0:
				handler.OnWlBufferRelease(WlBufferReleaseEvent{SourceID: hdr.ObjID}, c)
			default:
				r.Skip(msgEnd)
			}

		case TagWlDataOffer:
			switch hdr.Opcode {
			case 0:
				handler.OnWlDataOfferOffer(WlDataOfferOfferEvent{SourceID: hdr.ObjID, MimeType: r.ReadString()}, c)
			case 1:
				handler.OnWlDataOfferSourceActions(WlDataOfferSourceActionsEvent{SourceID: hdr.ObjID, SourceActions: r.ReadUint()}, c)
			case 2:
				handler.OnWlDataOfferAction(WlDataOfferActionEvent{SourceID: hdr.ObjID, DndAction: r.ReadUint()}, c)
			default:
				r.Skip(msgEnd)
			}

		case TagWlDataSource:
			switch hdr.Opcode {
			case 0:
				handler.OnWlDataSourceTarget(WlDataSourceTargetEvent{SourceID: hdr.ObjID, MimeType: r.ReadString()}, c)
			case 1:
				handler.OnWlDataSourceSend(WlDataSourceSendEvent{SourceID: hdr.ObjID, MimeType: r.ReadString(), FD: r.ReadFD()}, c)
			case 2:
				handler.OnWlDataSourceCancelled(WlDataSourceCancelledEvent{SourceID: hdr.ObjID}, c)
			case 3:
				handler.OnWlDataSourceDndDropPerformed(WlDataSourceDndDropPerformedEvent{SourceID: hdr.ObjID}, c)
			case 4:
				handler.OnWlDataSourceDndFinished(WlDataSourceDndFinishedEvent{SourceID: hdr.ObjID}, c)
			case 5:
				handler.OnWlDataSourceAction(WlDataSourceActionEvent{SourceID: hdr.ObjID, DndAction: r.ReadUint()}, c)
			default:
				r.Skip(msgEnd)
			}

		case TagWlDataDevice:
			switch hdr.Opcode {
			case 0:
				handler.OnWlDataDeviceDataOffer(WlDataDeviceDataOfferEvent{SourceID: hdr.ObjID, ID: r.ReadUint()}, c)
			case 1:
				handler.OnWlDataDeviceEnter(WlDataDeviceEnterEvent{
					SourceID: hdr.ObjID,
					Serial:   r.ReadUint(),
					Surface:  r.ReadUint(),
					X:        r.ReadFixed(),
					Y:        r.ReadFixed(),
					ID:       r.ReadUint(),
				}, c)
			case 2:
				handler.OnWlDataDeviceLeave(WlDataDeviceLeaveEvent{SourceID: hdr.ObjID}, c)
			case 3:
				handler.OnWlDataDeviceMotion(WlDataDeviceMotionEvent{SourceID: hdr.ObjID, Time: r.ReadUint(), X: r.ReadFixed(), Y: r.ReadFixed()}, c)
			case 4:
				handler.OnWlDataDeviceDrop(WlDataDeviceDropEvent{SourceID: hdr.ObjID}, c)
			case 5:
				handler.OnWlDataDeviceSelection(WlDataDeviceSelectionEvent{SourceID: hdr.ObjID, ID: r.ReadUint()}, c)
			default:
				r.Skip(msgEnd)
			}

		case TagWlShellSurface:
			switch hdr.Opcode {
			case 0:
				handler.OnWlShellSurfacePing(WlShellSurfacePingEvent{SourceID: hdr.ObjID, Serial: r.ReadUint()}, c)
			case 1:
				handler.OnWlShellSurfaceConfigure(WlShellSurfaceConfigureEvent{
					SourceID: hdr.ObjID,
					Edges:    r.ReadUint(),
					Width:    r.ReadInt(),
					Height:   r.ReadInt(),
				}, c)
			case 2:
				handler.OnWlShellSurfacePopupDone(WlShellSurfacePopupDoneEvent{SourceID: hdr.ObjID}, c)
			default:
				r.Skip(msgEnd)
			}

		case TagWlSurface:
			switch hdr.Opcode {
			case 0:
				handler.OnWlSurfaceEnter(WlSurfaceEnterEvent{SourceID: hdr.ObjID, Output: r.ReadUint()}, c)
			case 1:
				handler.OnWlSurfaceLeave(WlSurfaceLeaveEvent{SourceID: hdr.ObjID, Output: r.ReadUint()}, c)
			case 2:
				handler.OnWlSurfacePreferredBufferScale(WlSurfacePreferredBufferScaleEvent{SourceID: hdr.ObjID, Factor: r.ReadInt()}, c)
			case 3:
				handler.OnWlSurfacePreferredBufferTransform(WlSurfacePreferredBufferTransformEvent{SourceID: hdr.ObjID, Transform: wlOutputTransformFromUint32(r.ReadUint())}, c)
			default:
				r.Skip(msgEnd)
			}

		case TagWlSeat:
			switch hdr.Opcode {
			case 0:
				handler.OnWlSeatCapabilities(WlSeatCapabilitiesEvent{SourceID: hdr.ObjID, Capabilities: r.ReadUint()}, c)
			case 1:
				handler.OnWlSeatName(WlSeatNameEvent{SourceID: hdr.ObjID, Name: r.ReadString()}, c)
			default:
				r.Skip(msgEnd)
			}

		case TagWlPointer:
			switch hdr.Opcode {
			case 0:
				handler.OnWlPointerEnter(WlPointerEnterEvent{SourceID: hdr.ObjID, Serial: r.ReadUint(), Surface: r.ReadUint(), X: r.ReadFixed(), Y: r.ReadFixed()}, c)
			case 1:
				handler.OnWlPointerLeave(WlPointerLeaveEvent{SourceID: hdr.ObjID, Serial: r.ReadUint(), Surface: r.ReadUint()}, c)
			case 2:
				handler.OnWlPointerMotion(WlPointerMotionEvent{SourceID: hdr.ObjID, Time: r.ReadUint(), X: r.ReadFixed(), Y: r.ReadFixed()}, c)
			case 3:
				handler.OnWlPointerButton(WlPointerButtonEvent{SourceID: hdr.ObjID, Serial: r.ReadUint(), Time: r.ReadUint(), Button: r.ReadUint(), State: wlPointerButtonStateFromUint32(r.ReadUint())}, c)
			case 4:
				handler.OnWlPointerAxis(WlPointerAxisEvent{SourceID: hdr.ObjID, Time: r.ReadUint(), Axis: wlPointerAxisFromUint32(r.ReadUint()), Value: r.ReadFixed()}, c)
			case 5:
				handler.OnWlPointerFrame(WlPointerFrameEvent{SourceID: hdr.ObjID}, c)
			case 6:
				handler.OnWlPointerAxisSource(WlPointerAxisSourceEvent{SourceID: hdr.ObjID, AxisSource: wlPointerAxisSourceFromUint32(r.ReadUint())}, c)
			case 7:
				handler.OnWlPointerAxisStop(WlPointerAxisStopEvent{SourceID: hdr.ObjID, Time: r.ReadUint(), Axis: wlPointerAxisFromUint32(r.ReadUint())}, c)
			case 8:
				handler.OnWlPointerAxisDiscrete(WlPointerAxisDiscreteEvent{SourceID: hdr.ObjID, Axis: wlPointerAxisFromUint32(r.ReadUint()), Discrete: r.ReadInt()}, c)
			case 9:
				handler.OnWlPointerAxisValue120(WlPointerAxisValue120Event{SourceID: hdr.ObjID, Axis: wlPointerAxisFromUint32(r.ReadUint()), Value120: r.ReadInt()}, c)
			case 10:
				handler.OnWlPointerAxisRelativeDirection(WlPointerAxisRelativeDirectionEvent{SourceID: hdr.ObjID, Axis: wlPointerAxisFromUint32(r.ReadUint()), Direction: wlPointerAxisRelativeDirectionFromUint32(r.ReadUint())}, c)
			default:
				r.Skip(msgEnd)
			}

		case TagWlKeyboard:
			switch hdr.Opcode {
			case 0:
				handler.OnWlKeyboardKeymap(WlKeyboardKeymapEvent{SourceID: hdr.ObjID, Format: wlKeyboardKeymapFormatFromUint32(r.ReadUint()), FD: r.ReadFD(), Size: r.ReadUint()}, c)
			case 1:
				handler.OnWlKeyboardEnter(WlKeyboardEnterEvent{SourceID: hdr.ObjID, Serial: r.ReadUint(), Surface: r.ReadUint(), Keys: r.ReadArray()}, c)
			case 2:
				handler.OnWlKeyboardLeave(WlKeyboardLeaveEvent{SourceID: hdr.ObjID, Serial: r.ReadUint(), Surface: r.ReadUint()}, c)
			case 3:
				handler.OnWlKeyboardKey(WlKeyboardKeyEvent{SourceID: hdr.ObjID, Serial: r.ReadUint(), Time: r.ReadUint(), Key: r.ReadUint(), State: wlKeyboardKeyStateFromUint32(r.ReadUint())}, c)
			case 4:
				handler.OnWlKeyboardModifiers(WlKeyboardModifiersEvent{
					SourceID:      hdr.ObjID,
					Serial:        r.ReadUint(),
					ModsDepressed: r.ReadUint(),
					ModsLatched:   r.ReadUint(),
					ModsLocked:    r.ReadUint(),
					Group:         r.ReadUint(),
				}, c)
			case 5:
				handler.OnWlKeyboardRepeatInfo(WlKeyboardRepeatInfoEvent{SourceID: hdr.ObjID, Rate: r.ReadInt(), Delay: r.ReadInt()}, c)
			default:
				r.Skip(msgEnd)
			}

		case TagWlTouch:
			switch hdr.Opcode {
			case 0:
				handler.OnWlTouchDown(WlTouchDownEvent{SourceID: hdr.ObjID, Serial: r.ReadUint(), Time: r.ReadUint(), Surface: r.ReadUint(), ID: r.ReadInt(), X: r.ReadFixed(), Y: r.ReadFixed()}, c)
			case 1:
				handler.OnWlTouchUp(WlTouchUpEvent{SourceID: hdr.ObjID, Serial: r.ReadUint(), Time: r.ReadUint(), ID: r.ReadInt()}, c)
			case 2:
				handler.OnWlTouchMotion(WlTouchMotionEvent{SourceID: hdr.ObjID, Time: r.ReadUint(), ID: r.ReadInt(), X: r.ReadFixed(), Y: r.ReadFixed()}, c)
			case 3:
				handler.OnWlTouchFrame(WlTouchFrameEvent{SourceID: hdr.ObjID}, c)
			case 4:
				handler.OnWlTouchCancel(WlTouchCancelEvent{SourceID: hdr.ObjID}, c)
			case 5:
				handler.OnWlTouchShape(WlTouchShapeEvent{SourceID: hdr.ObjID, ID: r.ReadInt(), Major: r.ReadFixed(), Minor: r.ReadFixed()}, c)
			case 6:
				handler.OnWlTouchOrientation(WlTouchOrientationEvent{SourceID: hdr.ObjID, ID: r.ReadInt(), Orientation: r.ReadFixed()}, c)
			default:
				r.Skip(msgEnd)
			}

		case TagWlOutput:
			switch hdr.Opcode {
			case 0:
				handler.OnWlOutputGeometry(WlOutputGeometryEvent{
					SourceID:       hdr.ObjID,
					X:              r.ReadInt(),
					Y:              r.ReadInt(),
					PhysicalWidth:  r.ReadInt(),
					PhysicalHeight: r.ReadInt(),
					Subpixel:       wlOutputSubpixelFromUint32(r.ReadUint()),
					Make:           r.ReadString(),
					Model:          r.ReadString(),
					Transform:      wlOutputTransformFromUint32(r.ReadUint()),
				}, c)
			case 1:
				handler.OnWlOutputMode(WlOutputModeEvent{SourceID: hdr.ObjID, Flags: r.ReadUint(), Width: r.ReadInt(), Height: r.ReadInt(), Refresh: r.ReadInt()}, c)
			case 2:
				handler.OnWlOutputDone(WlOutputDoneEvent{SourceID: hdr.ObjID}, c)
			case 3:
				handler.OnWlOutputScale(WlOutputScaleEvent{SourceID: hdr.ObjID, Factor: r.ReadInt()}, c)
			case 4:
				handler.OnWlOutputName(WlOutputNameEvent{SourceID: hdr.ObjID, Name: r.ReadString()}, c)
			case 5:
				handler.OnWlOutputDescription(WlOutputDescriptionEvent{SourceID: hdr.ObjID, Description: r.ReadString()}, c)
			default:
				r.Skip(msgEnd)
			}

		case TagXdgWmBase:
			switch hdr.Opcode {
			case 0:
				handler.OnXdgWmBasePing(XdgWmBasePingEvent{SourceID: hdr.ObjID, Serial: r.ReadUint()}, c)
			default:
				r.Skip(msgEnd)
			}

		case TagXdgSurface:
			switch hdr.Opcode {
			case 0:
				handler.OnXdgSurfaceConfigure(XdgSurfaceConfigureEvent{SourceID: hdr.ObjID, Serial: r.ReadUint()}, c)
			default:
				r.Skip(msgEnd)
			}

		case TagXdgToplevel:
			switch hdr.Opcode {
			case 0:
				handler.OnXdgToplevelConfigure(XdgToplevelConfigureEvent{SourceID: hdr.ObjID, Width: r.ReadInt(), Height: r.ReadInt(), States: r.ReadArray()}, c)
			case 1:
				handler.OnXdgToplevelClose(XdgToplevelCloseEvent{SourceID: hdr.ObjID}, c)
			case 2:
				handler.OnXdgToplevelConfigureBounds(XdgToplevelConfigureBoundsEvent{SourceID: hdr.ObjID, Width: r.ReadInt(), Height: r.ReadInt()}, c)
			case 3:
				handler.OnXdgToplevelWmCapabilities(XdgToplevelWmCapabilitiesEvent{SourceID: hdr.ObjID, Capabilities: r.ReadArray()}, c)
			default:
				r.Skip(msgEnd)
			}

		case TagXdgPopup:
			switch hdr.Opcode {
			case 0:
				handler.OnXdgPopupConfigure(XdgPopupConfigureEvent{SourceID: hdr.ObjID, X: r.ReadInt(), Y: r.ReadInt(), Width: r.ReadInt(), Height: r.ReadInt()}, c)
			case 1:
				handler.OnXdgPopupPopupDone(XdgPopupPopupDoneEvent{SourceID: hdr.ObjID}, c)
			case 2:
				handler.OnXdgPopupRepositioned(XdgPopupRepositionedEvent{SourceID: hdr.ObjID, Token: r.ReadUint()}, c)
			default:
				r.Skip(msgEnd)
			}

		default:
			// wl_compositor, wl_shm_pool, wl_data_device_manager, wl_shell,
			// wl_region, wl_subcompositor, wl_subsurface and xdg_positioner
			// declare no events; the server addressing one of them is a
			// protocol violation.
			panic(fmt.Errorf("wl: dispatch: interface %s has no events, got opcode %d", tag, hdr.Opcode))
		}

		if r.Pos() != msgEnd {
			panic(fmt.Errorf("wl: dispatch: decoded %d bytes for %s opcode %d, header declared %d", r.Pos()-start, tag, hdr.Opcode, hdr.Len))
		}
	}
}
