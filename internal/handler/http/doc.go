// Package http implements the HTTP transport layer of the starwars API.
//
// It wires the chi router, the catalog and favorite handlers, and the
// middleware chain (trace id, access log, metrics, panic recovery, CORS and
// trailing-slash stripping) in front of the service layer.
package http
