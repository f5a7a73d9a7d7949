// Package logger provides a structured logging solution using the Zap logging library.
// It keeps a process-wide logger behind an atomic level and lets callers attach
// key-value fields to a context so that every entry logged with it carries them.
package logger
