package server

// Server defines the lifecycle contract of the API process.
//
// RunServer blocks until shutdown is requested or the listener fails;
// Shutdown drains in-flight requests and releases registered resources.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
