package wl

// Per-interface handles wrap an object id and the connection that owns
// it, encoding each request onto the wire the way connection/requests.rs
// does: reserve an 8-byte header, write the request's fixed argument
// list, patch the header with the final length and opcode. The bytes stay
// in the outbound buffer until the next Connection.Send.
// Handles are plain values. Copying one is cheap and safe, since the
// connection (not the handle) owns all mutable state.

// AsCompositor wraps a bound wl_compositor id, for callers that obtained
// id through Registry.Bind rather than a typed factory method.
func (c *Connection) AsCompositor(id uint32) Compositor { return Compositor{id: id, conn: c} }

// AsShm wraps a bound wl_shm id.
func (c *Connection) AsShm(id uint32) Shm { return Shm{id: id, conn: c} }

// AsSeat wraps a bound wl_seat id.
func (c *Connection) AsSeat(id uint32) Seat { return Seat{id: id, conn: c} }

// AsDataDeviceManager wraps a bound wl_data_device_manager id.
func (c *Connection) AsDataDeviceManager(id uint32) DataDeviceManager {
	return DataDeviceManager{id: id, conn: c}
}

// AsShell wraps a bound wl_shell id.
func (c *Connection) AsShell(id uint32) Shell { return Shell{id: id, conn: c} }

// AsSubcompositor wraps a bound wl_subcompositor id.
func (c *Connection) AsSubcompositor(id uint32) Subcompositor {
	return Subcompositor{id: id, conn: c}
}

// AsXdgWmBase wraps a bound xdg_wm_base id.
func (c *Connection) AsXdgWmBase(id uint32) XdgWmBase { return XdgWmBase{id: id, conn: c} }

// AsOutput wraps a bound wl_output id.
func (c *Connection) AsOutput(id uint32) Output { return Output{id: id, conn: c} }

// Display is the wl_display singleton, always object id 1.
type Display struct {
	id   uint32
	conn *Connection
}

// ID returns the display's object id (always 1).
func (d Display) ID() uint32 { return d.id }

// Sync requests a round-trip done event, delivered as a callback firing
// once the server has processed every request sent before this one.
func (d Display) Sync() Callback {
	newID := d.conn.allocate(TagWlCallbackSync)
	w := d.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(newID)
	w.PatchHeader(pos, d.id, 0)
	return Callback{id: newID, conn: d.conn}
}

// GetRegistry requests the global registry singleton.
func (d Display) GetRegistry() Registry {
	newID := d.conn.allocate(TagWlRegistry)
	w := d.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(newID)
	w.PatchHeader(pos, d.id, 1)
	return Registry{id: newID, conn: d.conn}
}

// Registry is wl_registry, advertising and binding server globals.
type Registry struct {
	id   uint32
	conn *Connection
}

func (r Registry) ID() uint32 { return r.id }

// Bind binds the global named name, of the given interface and version,
// to a freshly allocated object id. The interface string selects which
// handle Tag the new id is registered under; callers wrap the returned
// id in the matching typed handle themselves since bind is generic over
// every bindable interface.
func (r Registry) Bind(name uint32, iface string, version uint32) (uint32, error) {
	tag, ok := tagFromInterfaceName(iface)
	if !ok {
		return 0, errUnknownInterface(iface)
	}
	newID := r.conn.allocate(tag)
	w := r.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(name)
	w.WriteString(iface)
	w.WriteUint(version)
	w.WriteUint(newID)
	w.PatchHeader(pos, r.id, 0)
	return newID, nil
}

func errUnknownInterface(iface string) error {
	return &unknownInterfaceError{iface: iface}
}

type unknownInterfaceError struct{ iface string }

func (e *unknownInterfaceError) Error() string {
	return "wl: bind: unknown interface " + e.iface
}

// Callback is wl_callback: a one-shot handle for either wl_display.sync's
// done event or wl_surface.frame's done event. It has no requests of its
// own; the server deletes it after firing.
type Callback struct {
	id   uint32
	conn *Connection
}

func (cb Callback) ID() uint32 { return cb.id }

// Compositor is wl_compositor, the factory for surfaces and regions.
type Compositor struct {
	id   uint32
	conn *Connection
}

func (c Compositor) ID() uint32 { return c.id }

func (c Compositor) CreateSurface() Surface {
	newID := c.conn.allocate(TagWlSurface)
	w := c.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(newID)
	w.PatchHeader(pos, c.id, 0)
	return Surface{id: newID, conn: c.conn}
}

func (c Compositor) CreateRegion() Region {
	newID := c.conn.allocate(TagWlRegion)
	w := c.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(newID)
	w.PatchHeader(pos, c.id, 1)
	return Region{id: newID, conn: c.conn}
}

// ShmPool is wl_shm_pool, a shared-memory-backed buffer factory.
type ShmPool struct {
	id   uint32
	conn *Connection
}

func (p ShmPool) ID() uint32 { return p.id }

func (p ShmPool) CreateBuffer(offset, width, height, stride int32, format WlShmFormat) Buffer {
	newID := p.conn.allocate(TagWlBuffer)
	w := p.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(newID)
	w.WriteInt(offset)
	w.WriteInt(width)
	w.WriteInt(height)
	w.WriteInt(stride)
	w.WriteUint(uint32(format))
	w.PatchHeader(pos, p.id, 0)
	return Buffer{id: newID, conn: p.conn}
}

func (p ShmPool) Destroy() {
	w := p.conn.writer()
	pos := w.ReserveHeader()
	w.PatchHeader(pos, p.id, 1)
}

func (p ShmPool) Resize(size int32) {
	w := p.conn.writer()
	pos := w.ReserveHeader()
	w.WriteInt(size)
	w.PatchHeader(pos, p.id, 2)
}

// Shm is wl_shm, the shared-memory-pool factory global.
type Shm struct {
	id   uint32
	conn *Connection
}

func (s Shm) ID() uint32 { return s.id }

func (s Shm) CreatePool(fd int, size int32) ShmPool {
	newID := s.conn.allocate(TagWlShmPool)
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(newID)
	w.WriteFD(fd)
	w.WriteInt(size)
	w.PatchHeader(pos, s.id, 0)
	return ShmPool{id: newID, conn: s.conn}
}

// Buffer is wl_buffer: a single content-bearing buffer attached to
// surfaces for presentation.
type Buffer struct {
	id   uint32
	conn *Connection
}

func (b Buffer) ID() uint32 { return b.id }

func (b Buffer) Destroy() {
	w := b.conn.writer()
	pos := w.ReserveHeader()
	w.PatchHeader(pos, b.id, 0)
}

// DataOffer is wl_data_offer, a single clipboard/DnD offer.
type DataOffer struct {
	id   uint32
	conn *Connection
}

func (o DataOffer) ID() uint32 { return o.id }

func (o DataOffer) Accept(serial uint32, mimeType string) {
	w := o.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(serial)
	w.WriteString(mimeType)
	w.PatchHeader(pos, o.id, 0)
}

func (o DataOffer) Receive(mimeType string, fd int) {
	w := o.conn.writer()
	pos := w.ReserveHeader()
	w.WriteString(mimeType)
	w.WriteFD(fd)
	w.PatchHeader(pos, o.id, 1)
}

func (o DataOffer) Destroy() {
	w := o.conn.writer()
	pos := w.ReserveHeader()
	w.PatchHeader(pos, o.id, 2)
}

func (o DataOffer) Finish() {
	w := o.conn.writer()
	pos := w.ReserveHeader()
	w.PatchHeader(pos, o.id, 3)
}

func (o DataOffer) SetActions(dndActions, preferredAction uint32) {
	w := o.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(dndActions)
	w.WriteUint(preferredAction)
	w.PatchHeader(pos, o.id, 4)
}

// DataSource is wl_data_source, the client's side of an offer it made.
type DataSource struct {
	id   uint32
	conn *Connection
}

func (s DataSource) ID() uint32 { return s.id }

func (s DataSource) Offer(mimeType string) {
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.WriteString(mimeType)
	w.PatchHeader(pos, s.id, 0)
}

func (s DataSource) Destroy() {
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.PatchHeader(pos, s.id, 1)
}

func (s DataSource) SetActions(dndActions uint32) {
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(dndActions)
	w.PatchHeader(pos, s.id, 2)
}

// DataDevice is wl_data_device, a seat's clipboard/DnD endpoint.
type DataDevice struct {
	id   uint32
	conn *Connection
}

func (d DataDevice) ID() uint32 { return d.id }

func (d DataDevice) StartDrag(source DataSource, origin, icon Surface, serial uint32) {
	w := d.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(source.id)
	w.WriteUint(origin.id)
	w.WriteUint(icon.id)
	w.WriteUint(serial)
	w.PatchHeader(pos, d.id, 0)
}

func (d DataDevice) SetSelection(source DataSource, serial uint32) {
	w := d.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(source.id)
	w.WriteUint(serial)
	w.PatchHeader(pos, d.id, 1)
}

func (d DataDevice) Release() {
	w := d.conn.writer()
	pos := w.ReserveHeader()
	w.PatchHeader(pos, d.id, 2)
}

// DataDeviceManager is wl_data_device_manager, the DnD/clipboard global.
type DataDeviceManager struct {
	id   uint32
	conn *Connection
}

func (m DataDeviceManager) ID() uint32 { return m.id }

func (m DataDeviceManager) CreateDataSource() DataSource {
	newID := m.conn.allocate(TagWlDataSource)
	w := m.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(newID)
	w.PatchHeader(pos, m.id, 0)
	return DataSource{id: newID, conn: m.conn}
}

func (m DataDeviceManager) GetDataDevice(seat Seat) DataDevice {
	newID := m.conn.allocate(TagWlDataDevice)
	w := m.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(newID)
	w.WriteUint(seat.id)
	w.PatchHeader(pos, m.id, 1)
	return DataDevice{id: newID, conn: m.conn}
}

// Shell is the legacy wl_shell global, superseded by xdg-shell but kept
// for compatibility with older compositors.
type Shell struct {
	id   uint32
	conn *Connection
}

func (s Shell) ID() uint32 { return s.id }

func (s Shell) GetShellSurface(surface Surface) ShellSurface {
	newID := s.conn.allocate(TagWlShellSurface)
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(newID)
	w.WriteUint(surface.id)
	w.PatchHeader(pos, s.id, 0)
	return ShellSurface{id: newID, conn: s.conn}
}

// ShellSurface is wl_shell_surface, the legacy toplevel/popup role.
type ShellSurface struct {
	id   uint32
	conn *Connection
}

func (s ShellSurface) ID() uint32 { return s.id }

func (s ShellSurface) Pong(serial uint32) {
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(serial)
	w.PatchHeader(pos, s.id, 0)
}

func (s ShellSurface) Move(seat Seat, serial uint32) {
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(seat.id)
	w.WriteUint(serial)
	w.PatchHeader(pos, s.id, 1)
}

func (s ShellSurface) Resize(seat Seat, serial uint32, edges WlShellSurfaceResize) {
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(seat.id)
	w.WriteUint(serial)
	w.WriteUint(uint32(edges))
	w.PatchHeader(pos, s.id, 2)
}

func (s ShellSurface) SetToplevel() {
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.PatchHeader(pos, s.id, 3)
}

func (s ShellSurface) SetTransient(parent Surface, x, y int32, flags uint32) {
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(parent.id)
	w.WriteInt(x)
	w.WriteInt(y)
	w.WriteUint(flags)
	w.PatchHeader(pos, s.id, 4)
}

func (s ShellSurface) SetFullscreen(method, framerate uint32, output Output) {
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(method)
	w.WriteUint(framerate)
	w.WriteUint(output.id)
	w.PatchHeader(pos, s.id, 5)
}

func (s ShellSurface) SetPopup(seat Seat, serial uint32, parent Surface, x, y int32, flags uint32) {
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(seat.id)
	w.WriteUint(serial)
	w.WriteUint(parent.id)
	w.WriteInt(x)
	w.WriteInt(y)
	w.WriteUint(flags)
	w.PatchHeader(pos, s.id, 6)
}

func (s ShellSurface) SetMaximized(output Output) {
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(output.id)
	w.PatchHeader(pos, s.id, 7)
}

func (s ShellSurface) SetTitle(title string) {
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.WriteString(title)
	w.PatchHeader(pos, s.id, 8)
}

func (s ShellSurface) SetClass(class string) {
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.WriteString(class)
	w.PatchHeader(pos, s.id, 9)
}

// Surface is wl_surface, the base drawable/input-receiving rectangle.
type Surface struct {
	id   uint32
	conn *Connection
}

func (s Surface) ID() uint32 { return s.id }

func (s Surface) Destroy() {
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.PatchHeader(pos, s.id, 0)
}

func (s Surface) Attach(buf Buffer, x, y int32) {
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(buf.id)
	w.WriteInt(x)
	w.WriteInt(y)
	w.PatchHeader(pos, s.id, 1)
}

func (s Surface) Damage(x, y, width, height int32) {
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.WriteInt(x)
	w.WriteInt(y)
	w.WriteInt(width)
	w.WriteInt(height)
	w.PatchHeader(pos, s.id, 2)
}

func (s Surface) Frame() Callback {
	newID := s.conn.allocate(TagWlCallbackFrame)
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(newID)
	w.PatchHeader(pos, s.id, 3)
	return Callback{id: newID, conn: s.conn}
}

func (s Surface) SetOpaqueRegion(region Region) {
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(region.id)
	w.PatchHeader(pos, s.id, 4)
}

func (s Surface) SetInputRegion(region Region) {
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(region.id)
	w.PatchHeader(pos, s.id, 5)
}

func (s Surface) Commit() {
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.PatchHeader(pos, s.id, 6)
}

func (s Surface) SetBufferTransform(transform WlOutputTransform) {
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.WriteInt(int32(transform))
	w.PatchHeader(pos, s.id, 7)
}

func (s Surface) SetBufferScale(scale int32) {
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.WriteInt(scale)
	w.PatchHeader(pos, s.id, 8)
}

func (s Surface) DamageBuffer(x, y, width, height int32) {
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.WriteInt(x)
	w.WriteInt(y)
	w.WriteInt(width)
	w.WriteInt(height)
	w.PatchHeader(pos, s.id, 9)
}

func (s Surface) Offset(x, y int32) {
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.WriteInt(x)
	w.WriteInt(y)
	w.PatchHeader(pos, s.id, 10)
}

// Seat is wl_seat, the input-device group (pointer/keyboard/touch).
type Seat struct {
	id   uint32
	conn *Connection
}

func (s Seat) ID() uint32 { return s.id }

func (s Seat) GetPointer() Pointer {
	newID := s.conn.allocate(TagWlPointer)
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(newID)
	w.PatchHeader(pos, s.id, 0)
	return Pointer{id: newID, conn: s.conn}
}

func (s Seat) GetKeyboard() Keyboard {
	newID := s.conn.allocate(TagWlKeyboard)
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(newID)
	w.PatchHeader(pos, s.id, 1)
	return Keyboard{id: newID, conn: s.conn}
}

func (s Seat) GetTouch() Touch {
	newID := s.conn.allocate(TagWlTouch)
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(newID)
	w.PatchHeader(pos, s.id, 2)
	return Touch{id: newID, conn: s.conn}
}

func (s Seat) Release() {
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.PatchHeader(pos, s.id, 3)
}

// Pointer is wl_pointer, a seat's pointer device.
type Pointer struct {
	id   uint32
	conn *Connection
}

func (p Pointer) ID() uint32 { return p.id }

func (p Pointer) SetCursor(serial uint32, surface Surface, hotspotX, hotspotY int32) {
	w := p.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(serial)
	w.WriteUint(surface.id)
	w.WriteInt(hotspotX)
	w.WriteInt(hotspotY)
	w.PatchHeader(pos, p.id, 0)
}

func (p Pointer) Release() {
	w := p.conn.writer()
	pos := w.ReserveHeader()
	w.PatchHeader(pos, p.id, 1)
}

// Keyboard is wl_keyboard, a seat's keyboard device.
type Keyboard struct {
	id   uint32
	conn *Connection
}

func (k Keyboard) ID() uint32 { return k.id }

func (k Keyboard) Release() {
	w := k.conn.writer()
	pos := w.ReserveHeader()
	w.PatchHeader(pos, k.id, 0)
}

// Touch is wl_touch, a seat's touchscreen device.
type Touch struct {
	id   uint32
	conn *Connection
}

func (t Touch) ID() uint32 { return t.id }

func (t Touch) Release() {
	w := t.conn.writer()
	pos := w.ReserveHeader()
	w.PatchHeader(pos, t.id, 0)
}

// Output is wl_output, a single display/monitor.
type Output struct {
	id   uint32
	conn *Connection
}

func (o Output) ID() uint32 { return o.id }

func (o Output) Release() {
	w := o.conn.writer()
	pos := w.ReserveHeader()
	w.PatchHeader(pos, o.id, 0)
}

// Region is wl_region, an accumulated rectangle set for opaque/input
// region hints.
type Region struct {
	id   uint32
	conn *Connection
}

func (r Region) ID() uint32 { return r.id }

func (r Region) Destroy() {
	w := r.conn.writer()
	pos := w.ReserveHeader()
	w.PatchHeader(pos, r.id, 0)
}

func (r Region) Add(x, y, width, height int32) {
	w := r.conn.writer()
	pos := w.ReserveHeader()
	w.WriteInt(x)
	w.WriteInt(y)
	w.WriteInt(width)
	w.WriteInt(height)
	w.PatchHeader(pos, r.id, 1)
}

func (r Region) Subtract(x, y, width, height int32) {
	w := r.conn.writer()
	pos := w.ReserveHeader()
	w.WriteInt(x)
	w.WriteInt(y)
	w.WriteInt(width)
	w.WriteInt(height)
	w.PatchHeader(pos, r.id, 2)
}

// Subcompositor is wl_subcompositor, the subsurface-role factory.
type Subcompositor struct {
	id   uint32
	conn *Connection
}

func (s Subcompositor) ID() uint32 { return s.id }

func (s Subcompositor) Destroy() {
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.PatchHeader(pos, s.id, 0)
}

func (s Subcompositor) GetSubsurface(surface, parent Surface) Subsurface {
	newID := s.conn.allocate(TagWlSubsurface)
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(newID)
	w.WriteUint(surface.id)
	w.WriteUint(parent.id)
	w.PatchHeader(pos, s.id, 1)
	return Subsurface{id: newID, conn: s.conn}
}

// Subsurface is wl_subsurface, a surface positioned relative to a parent.
type Subsurface struct {
	id   uint32
	conn *Connection
}

func (s Subsurface) ID() uint32 { return s.id }

func (s Subsurface) Destroy() {
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.PatchHeader(pos, s.id, 0)
}

func (s Subsurface) SetPosition(x, y int32) {
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.WriteInt(x)
	w.WriteInt(y)
	w.PatchHeader(pos, s.id, 1)
}

func (s Subsurface) PlaceAbove(sibling Surface) {
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(sibling.id)
	w.PatchHeader(pos, s.id, 2)
}

func (s Subsurface) PlaceBelow(sibling Surface) {
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(sibling.id)
	w.PatchHeader(pos, s.id, 3)
}

func (s Subsurface) SetSync() {
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.PatchHeader(pos, s.id, 4)
}

func (s Subsurface) SetDesync() {
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.PatchHeader(pos, s.id, 5)
}

// XdgWmBase is xdg_wm_base, the xdg-shell global.
type XdgWmBase struct {
	id   uint32
	conn *Connection
}

func (b XdgWmBase) ID() uint32 { return b.id }

func (b XdgWmBase) Destroy() {
	w := b.conn.writer()
	pos := w.ReserveHeader()
	w.PatchHeader(pos, b.id, 0)
}

func (b XdgWmBase) CreatePositioner() XdgPositioner {
	newID := b.conn.allocate(TagXdgPositioner)
	w := b.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(newID)
	w.PatchHeader(pos, b.id, 1)
	return XdgPositioner{id: newID, conn: b.conn}
}

func (b XdgWmBase) GetXdgSurface(surface Surface) XdgSurface {
	newID := b.conn.allocate(TagXdgSurface)
	w := b.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(newID)
	w.WriteUint(surface.id)
	w.PatchHeader(pos, b.id, 2)
	return XdgSurface{id: newID, conn: b.conn}
}

func (b XdgWmBase) Pong(serial uint32) {
	w := b.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(serial)
	w.PatchHeader(pos, b.id, 3)
}

// XdgPositioner is xdg_positioner, a reusable placement rule builder.
type XdgPositioner struct {
	id   uint32
	conn *Connection
}

func (p XdgPositioner) ID() uint32 { return p.id }

func (p XdgPositioner) Destroy() {
	w := p.conn.writer()
	pos := w.ReserveHeader()
	w.PatchHeader(pos, p.id, 0)
}

func (p XdgPositioner) SetSize(width, height int32) {
	w := p.conn.writer()
	pos := w.ReserveHeader()
	w.WriteInt(width)
	w.WriteInt(height)
	w.PatchHeader(pos, p.id, 1)
}

func (p XdgPositioner) SetAnchorRect(x, y, width, height int32) {
	w := p.conn.writer()
	pos := w.ReserveHeader()
	w.WriteInt(x)
	w.WriteInt(y)
	w.WriteInt(width)
	w.WriteInt(height)
	w.PatchHeader(pos, p.id, 2)
}

func (p XdgPositioner) SetAnchor(anchor XdgPositionerAnchor) {
	w := p.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(uint32(anchor))
	w.PatchHeader(pos, p.id, 3)
}

func (p XdgPositioner) SetGravity(gravity XdgPositionerGravity) {
	w := p.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(uint32(gravity))
	w.PatchHeader(pos, p.id, 4)
}

func (p XdgPositioner) SetConstraintAdjustment(adjustment uint32) {
	w := p.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(adjustment)
	w.PatchHeader(pos, p.id, 5)
}

func (p XdgPositioner) SetOffset(x, y int32) {
	w := p.conn.writer()
	pos := w.ReserveHeader()
	w.WriteInt(x)
	w.WriteInt(y)
	w.PatchHeader(pos, p.id, 6)
}

func (p XdgPositioner) SetReactive() {
	w := p.conn.writer()
	pos := w.ReserveHeader()
	w.PatchHeader(pos, p.id, 7)
}

func (p XdgPositioner) SetParentSize(width, height int32) {
	w := p.conn.writer()
	pos := w.ReserveHeader()
	w.WriteInt(width)
	w.WriteInt(height)
	w.PatchHeader(pos, p.id, 8)
}

func (p XdgPositioner) SetParentConfigure(serial uint32) {
	w := p.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(serial)
	w.PatchHeader(pos, p.id, 9)
}

// XdgSurface is xdg_surface, the desktop-role base for a wl_surface.
type XdgSurface struct {
	id   uint32
	conn *Connection
}

func (s XdgSurface) ID() uint32 { return s.id }

func (s XdgSurface) Destroy() {
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.PatchHeader(pos, s.id, 0)
}

func (s XdgSurface) GetToplevel() XdgToplevel {
	newID := s.conn.allocate(TagXdgToplevel)
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(newID)
	w.PatchHeader(pos, s.id, 1)
	return XdgToplevel{id: newID, conn: s.conn}
}

func (s XdgSurface) GetPopup(parent XdgSurface, positioner XdgPositioner) XdgPopup {
	newID := s.conn.allocate(TagXdgPopup)
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(newID)
	w.WriteUint(parent.id)
	w.WriteUint(positioner.id)
	w.PatchHeader(pos, s.id, 2)
	return XdgPopup{id: newID, conn: s.conn}
}

func (s XdgSurface) SetWindowGeometry(x, y, width, height int32) {
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.WriteInt(x)
	w.WriteInt(y)
	w.WriteInt(width)
	w.WriteInt(height)
	w.PatchHeader(pos, s.id, 3)
}

func (s XdgSurface) AckConfigure(serial uint32) {
	w := s.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(serial)
	w.PatchHeader(pos, s.id, 4)
}

// XdgToplevel is xdg_toplevel, a regular application window.
type XdgToplevel struct {
	id   uint32
	conn *Connection
}

func (t XdgToplevel) ID() uint32 { return t.id }

func (t XdgToplevel) Destroy() {
	w := t.conn.writer()
	pos := w.ReserveHeader()
	w.PatchHeader(pos, t.id, 0)
}

func (t XdgToplevel) SetParent(parent XdgToplevel) {
	w := t.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(parent.id)
	w.PatchHeader(pos, t.id, 1)
}

func (t XdgToplevel) SetTitle(title string) {
	w := t.conn.writer()
	pos := w.ReserveHeader()
	w.WriteString(title)
	w.PatchHeader(pos, t.id, 2)
}

func (t XdgToplevel) SetAppID(appID string) {
	w := t.conn.writer()
	pos := w.ReserveHeader()
	w.WriteString(appID)
	w.PatchHeader(pos, t.id, 3)
}

func (t XdgToplevel) ShowWindowMenu(seat Seat, serial uint32, x, y int32) {
	w := t.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(seat.id)
	w.WriteUint(serial)
	w.WriteInt(x)
	w.WriteInt(y)
	w.PatchHeader(pos, t.id, 4)
}

func (t XdgToplevel) Move(seat Seat, serial uint32) {
	w := t.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(seat.id)
	w.WriteUint(serial)
	w.PatchHeader(pos, t.id, 5)
}

func (t XdgToplevel) Resize(seat Seat, serial uint32, edges XdgToplevelResizeEdge) {
	w := t.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(seat.id)
	w.WriteUint(serial)
	w.WriteUint(uint32(edges))
	w.PatchHeader(pos, t.id, 6)
}

func (t XdgToplevel) SetMaxSize(width, height int32) {
	w := t.conn.writer()
	pos := w.ReserveHeader()
	w.WriteInt(width)
	w.WriteInt(height)
	w.PatchHeader(pos, t.id, 7)
}

func (t XdgToplevel) SetMinSize(width, height int32) {
	w := t.conn.writer()
	pos := w.ReserveHeader()
	w.WriteInt(width)
	w.WriteInt(height)
	w.PatchHeader(pos, t.id, 8)
}

func (t XdgToplevel) SetMaximized() {
	w := t.conn.writer()
	pos := w.ReserveHeader()
	w.PatchHeader(pos, t.id, 9)
}

func (t XdgToplevel) UnsetMaximized() {
	w := t.conn.writer()
	pos := w.ReserveHeader()
	w.PatchHeader(pos, t.id, 10)
}

func (t XdgToplevel) SetFullscreen(output Output) {
	w := t.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(output.id)
	w.PatchHeader(pos, t.id, 11)
}

func (t XdgToplevel) UnsetFullscreen() {
	w := t.conn.writer()
	pos := w.ReserveHeader()
	w.PatchHeader(pos, t.id, 12)
}

func (t XdgToplevel) SetMinimized() {
	w := t.conn.writer()
	pos := w.ReserveHeader()
	w.PatchHeader(pos, t.id, 13)
}

// XdgPopup is xdg_popup, a transient surface positioned against a parent.
type XdgPopup struct {
	id   uint32
	conn *Connection
}

func (p XdgPopup) ID() uint32 { return p.id }

func (p XdgPopup) Destroy() {
	w := p.conn.writer()
	pos := w.ReserveHeader()
	w.PatchHeader(pos, p.id, 0)
}

func (p XdgPopup) Grab(seat Seat, serial uint32) {
	w := p.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(seat.id)
	w.WriteUint(serial)
	w.PatchHeader(pos, p.id, 1)
}

func (p XdgPopup) Reposition(positioner XdgPositioner, token uint32) {
	w := p.conn.writer()
	pos := w.ReserveHeader()
	w.WriteUint(positioner.id)
	w.WriteUint(token)
	w.PatchHeader(pos, p.id, 2)
}
