// Package http contains the gin handlers for the blueprint service:
// decode, encode, analyze, stats, and validate over exchange strings.
package http
