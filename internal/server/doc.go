// Package server runs the HTTP transport.
//
// It owns the http.Server lifecycle: listening, signal handling and graceful
// shutdown that lets in-flight requests finish.
package server
