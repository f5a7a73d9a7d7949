// Package app provides the application logic behind the CLI commands.
// It wires the configuration into the conversion service and writes results
// to the command output, one result per line.
package app
