// Package constants provides shared constants used throughout the endorecon
// codebase. This includes timeouts, file permissions, and other configuration
// values that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultRunTimeout is the standard timeout for a full reconciliation run,
	// covering workbook fetch, classification, and output materialization
	DefaultRunTimeout = 5 * time.Minute
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)
