// Package convert wraps the stateless conversions of the utils package in a service
// that adds logging, optional read progress and data URL verification.
package convert
