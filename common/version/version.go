package version

import "fmt"

// VERSION indicates the major.minor.patch version the binary was built off of.
var VERSION string

// GITCOMMIT indicates which git hash (12char) the binary was built off of.
var GITCOMMIT string

// VersionToString returns "VERSION - GITCOMMIT", or "dev" when neither was injected at link time.
func VersionToString() string {
	if VERSION == "" && GITCOMMIT == "" {
		return "dev"
	}
	return fmt.Sprintf("%s - %s", VERSION, GITCOMMIT)
}
