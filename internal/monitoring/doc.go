// Package monitoring exposes Prometheus metrics for the HTTP surface and
// the codec operations behind it, plus the gin middleware that records
// per-request measurements.
package monitoring
