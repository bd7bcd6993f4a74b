// Package logging provides structured logging using uber/zap.
//
// Production mode emits JSON; development mode emits colored console
// output with stack traces on errors.
package logging
