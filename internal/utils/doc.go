// Package utils provides small, stateless helpers: packaging ZIP archives as data URLs,
// rendering UTC timestamps in Indian Standard Time, and a few file and string helpers.
package utils
