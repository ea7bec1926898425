package pkg

var version = "unset"

// GetVersion returns the version set at build time.
func GetVersion() string {
	return version
}
