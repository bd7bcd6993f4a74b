// Package middleware provides the HTTP middleware stack: CORS and per-IP
// token bucket rate limiting.
package middleware
