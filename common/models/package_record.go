package models

// PackageRecord describes one package whose tests are run in CI.
type PackageRecord struct {
	// ID identifies the package in job ids, e.g. "core".
	ID string `yaml:"id" json:"id"`
	// Name is the display name used in job names.
	Name string `yaml:"name" json:"name"`
	// PackageName is the package path passed to the test runner.
	PackageName string `yaml:"packagename" json:"packagename"`
	// Dependencies are the ids of the packages whose packaging jobs must run first.
	Dependencies []string `yaml:"dependencies" json:"dependencies"`
	// HasCoDependencies is only ever checked for definedness; its value is ignored.
	// nil means the flag was absent (or explicitly null).
	HasCoDependencies interface{} `yaml:"hascodependencies,omitempty" json:"hascodependencies,omitempty"`
}

// NeedsCoDependencyStaging returns true if the co-dependency flag is defined, whatever its value.
// A flag set to false, 0 or "" still counts.
func (p *PackageRecord) NeedsCoDependencyStaging() bool {
	return p.HasCoDependencies != nil
}
