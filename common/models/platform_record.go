package models

// PlatformRecord describes a CI agent platform that package tests run on.
type PlatformRecord struct {
	Name string `yaml:"name" json:"name"`
	OS   string `yaml:"os" json:"os"`
	// Agent is passed through to the job untouched.
	Agent      map[string]interface{} `yaml:"agent" json:"agent"`
	EditorPath string                 `yaml:"editorpath" json:"editorpath"`
	// CopyCmd stages co-dependent packages; only used for packages that have co-dependencies.
	CopyCmd string `yaml:"copycmd,omitempty" json:"copycmd,omitempty"`
}
