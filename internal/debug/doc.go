// Package debug provides the process-wide zap logger.
//
// Init configures console output and, when a log file is set, a rotated JSON
// file alongside it. Until Init runs every logger is a no-op, so library code
// and tests can log freely. Log keeps the printf-style helper for quick traces.
package debug
