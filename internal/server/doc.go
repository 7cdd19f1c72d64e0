// Package server runs the HTTP API of the user service.
//
// It owns the listener lifecycle: startup, waiting for a stop signal and a
// graceful shutdown bounded by the configured timeout.
package server
