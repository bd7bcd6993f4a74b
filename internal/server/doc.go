// Package server wires the gin router, middleware stack, and handlers
// into a runnable HTTP server with graceful shutdown.
package server
