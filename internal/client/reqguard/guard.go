// Package reqguard implements a latest-request-wins guard for flows that can
// be re-triggered while a previous fetch is still in flight (regenerate,
// closet reload). A superseded request is not aborted; its result is simply
// not applied.
package reqguard

import "sync/atomic"

// Guard hands out monotonically increasing tickets. Take a ticket before
// starting a fetch and check Current before applying the result.
type Guard struct {
	cur atomic.Uint64
}

// Begin registers a new request and returns its ticket. Any earlier ticket
// becomes stale immediately.
func (g *Guard) Begin() uint64 {
	return g.cur.Add(1)
}

// Current reports whether the ticket still belongs to the latest request.
func (g *Guard) Current(ticket uint64) bool {
	return g.cur.Load() == ticket
}
