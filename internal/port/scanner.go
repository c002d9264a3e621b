package port

import (
	"fmt"
	"net"
)

// MaxPort is the highest valid TCP port number (2^16 - 1). It is the
// default ceiling for FindAvailablePort searches.
const MaxPort = 65535

// Scanner checks whether specific TCP ports are available on the host.
//
// It uses the operating system's network stack (net.Listen) to determine
// if a port is free. This is the most reliable method because it asks the
// OS directly, rather than parsing /proc/net/* or relying on external
// commands like `lsof` or `ss` which may require elevated permissions.
//
// The struct is currently stateless, but is defined as a struct (rather
// than bare functions) so that future options (e.g., bind address, probe
// timeout) can be added without breaking the API. It also makes the
// Scanner injectable as a dependency, which improves testability of the
// CLI layer.
type Scanner struct{}

// NewScanner creates a new Scanner instance.
// Currently no configuration is needed, but this constructor follows Go
// convention and allows future expansion (e.g., custom bind address).
func NewScanner() *Scanner {
	return &Scanner{}
}

// IsPortAvailable checks whether a single TCP port is free on the host.
//
// It attempts net.Listen("tcp", ":port"). If the bind succeeds, the port
// is available — the listener is immediately closed via defer.
//
// We bind to all interfaces (":port" rather than "127.0.0.1:port")
// because the generated service listens on all interfaces too, so we need
// to check the same address space to avoid false positives.
//
// Returns true if the port is free, false if it is already in use or the
// port number is invalid.
func (s *Scanner) IsPortAvailable(portNum int) bool {
	// net.Listen opens a TCP listener. If the port is already bound by
	// another process, this returns an error (typically "address already in use").
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", portNum))
	if err != nil {
		return false
	}
	// defer ensures the listener is closed even if something panics between
	// here and the return statement. We close immediately because we only
	// needed to test availability, not actually accept connections.
	defer func() { _ = listener.Close() }()
	return true
}

// FindAvailablePort returns the first TCP port in [preferredPort, maxPort]
// (inclusive) that is available, searching sequentially upward from the
// preferred port. When the preferred port is free it is returned without
// probing any further candidate.
//
// The second return value is false when every port in the range is in use.
// There is no randomization and no downward search: deterministic ordering
// means the same free port is selected consistently, which helps with
// reproducibility in testing and debugging.
func (s *Scanner) FindAvailablePort(preferredPort, maxPort int) (int, bool) {
	for candidate := preferredPort; candidate <= maxPort; candidate++ {
		if s.IsPortAvailable(candidate) {
			return candidate, true
		}
	}
	return 0, false
}
