package wl

import "github.com/bnema/wlcore/wire"

// Fixed is the wire's 24.8 fixed-point numeric type, re-exported here so
// event and request signatures in this package don't need to import wire
// directly.
type Fixed = wire.Fixed
