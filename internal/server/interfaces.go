package server

// Server defines the lifecycle contract of the service's transport.
//
// RunServer blocks until the process receives SIGTERM, SIGINT or SIGQUIT,
// or until the listener fails. Shutdown stops accepting new requests and
// waits for in-flight ones within the configured shutdown timeout.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown() error
}
