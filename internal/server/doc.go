// Package server runs the proxy's HTTP listener.
//
// It owns the listener lifecycle: startup, stop-signal handling and graceful
// shutdown bounded by the configured timeout.
package server
