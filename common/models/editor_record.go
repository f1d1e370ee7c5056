package models

// EditorRecord identifies an editor version that package tests run against.
type EditorRecord struct {
	Version string `yaml:"version" json:"version"`
}
