package metafile

import (
	"path/filepath"
	"strings"
)

const (
	FormatYAML    Format = "yaml"
	FormatJSON    Format = "json"
	FormatJSONNET Format = "jsonnet"
	// FormatUnknown indicates a file whose extension is not a supported metafile format.
	FormatUnknown Format = "unknown"
)

type Format string

func (s Format) Valid() bool {
	return s == FormatYAML || s == FormatJSON || s == FormatJSONNET
}

func (s Format) String() string {
	return string(s)
}

// FormatFromPath determines the format of a metafile from its extension.
// ".metafile" files are YAML.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".metafile", ".yml", ".yaml":
		return FormatYAML
	case ".json":
		return FormatJSON
	case ".jsonnet":
		return FormatJSONNET
	default:
		return FormatUnknown
	}
}
