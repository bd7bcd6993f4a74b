// Package analyze inspects exchange strings in bulk: individual strings,
// free-form text containing many of them, and files or directory trees of
// such text. Reports are advisory; a string that fails to decode produces
// a report with the error rather than aborting the batch.
package analyze
