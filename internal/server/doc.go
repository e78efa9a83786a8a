// Package server runs the HTTP API until the process is told to stop.
//
// It owns the http.Server lifecycle: startup, signal handling, graceful
// shutdown and the release of resources (database, tracer provider)
// registered through [WithCloser].
package server
