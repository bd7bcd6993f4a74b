// Package config loads application configuration from environment
// variables via envconfig. Every field has a default so the service runs
// with an empty environment.
package config
