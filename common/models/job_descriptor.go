package models

// JobDescriptor describes one CI pipeline job. Field order matches the order the
// CI configuration expects the keys in.
type JobDescriptor struct {
	Name  string                 `yaml:"name"`
	Agent map[string]interface{} `yaml:"agent"`
	// Dependencies lists the jobs that must complete before this one.
	Dependencies []JobReference `yaml:"dependencies"`
	Commands     []string       `yaml:"commands"`
	Artifacts    Artifacts      `yaml:"artifacts"`
}

// Artifacts declares the files a job uploads when it finishes.
type Artifacts struct {
	Logs ArtifactPaths `yaml:"logs"`
}

// ArtifactPaths lists the paths, globs allowed, uploaded for one artifact group.
type ArtifactPaths struct {
	Paths []DoubleQuotedString `yaml:"paths"`
}
