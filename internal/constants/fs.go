package constants

import "os"

const (
	// DefaultFilePermissions sets the default permissions for regular files: (rw-r--r--).
	DefaultFilePermissions os.FileMode = 0o644

	// SecretFilePermissions is used for files holding credentials: (rw-------).
	SecretFilePermissions os.FileMode = 0o600
)

// File extension constants.
const (
	ExtensionZIP  = ".zip"
	ExtensionYAML = ".yaml"
)
