// Package port implements available-port discovery for the stencil CLI.
//
// The algorithm is a strictly sequential upward search:
//
//	probe preferredPort, preferredPort+1, ... until a bind succeeds
//	or the ceiling (65535 by default) is passed
//
// Each probe binds a transient TCP listener via net.Listen() and closes
// it immediately. This is a check-then-use probe, not a reservation: a
// race exists where another process binds the same port between the probe
// and the real listener's bind. The generated server template embeds the
// same algorithm (in JavaScript), so `stencil check` and the generated
// service always agree on which port would be chosen.
package port
