package server

// Server defines the lifecycle contract for the transport server managed by
// this package.
//
// Implementations block in [RunServer] until shutdown is requested or the
// listener fails, and release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// A nil error means the server was shut down gracefully.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
