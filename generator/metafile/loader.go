package metafile

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v2"
	"github.com/google/go-jsonnet"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/buildbeaver/yamato/common/gerror"
	"github.com/buildbeaver/yamato/common/logger"
)

type Loader struct {
	log logger.Log
}

func NewLoader(logFactory logger.LogFactory) *Loader {
	return &Loader{
		log: logFactory("metafile"),
	}
}

// LoadGlob loads every metafile matching the doublestar pattern and merges them, in path order.
func (s *Loader) LoadGlob(pattern string) (*Metafile, error) {
	paths, err := doublestar.Glob(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "error matching metafile pattern %q", pattern)
	}
	if len(paths) == 0 {
		return nil, gerror.NewErrNotFound("No metafiles found").EDetail("pattern", pattern)
	}
	sort.Strings(paths)
	merged := &Metafile{}
	for _, path := range paths {
		meta, err := s.LoadFile(path)
		if err != nil {
			return nil, err
		}
		merged.Merge(meta)
	}
	return merged, nil
}

// LoadFile reads and parses a single metafile, choosing the format from its extension.
func (s *Loader) LoadFile(path string) (*Metafile, error) {
	format := FormatFromPath(path)
	if !format.Valid() {
		return nil, gerror.NewErrUnsupportedFormat(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading metafile %s", path)
	}
	meta, err := s.Parse(data, format, path)
	if err != nil {
		return nil, errors.Wrapf(err, "error loading metafile %s", path)
	}
	s.log.WithField("file", path).Debugf("Loaded %d package(s), %d platform(s), %d editor(s)",
		len(meta.Packages), len(meta.Platforms), len(meta.Editors))
	return meta, nil
}

// Parse parses raw metafile content. name is used for error messages and JSONNET imports.
func (s *Loader) Parse(data []byte, format Format, name string) (*Metafile, error) {
	var (
		err error
		raw interface{}
	)
	switch format {
	case FormatYAML:
		raw, err = s.parseFromYAML(data)
	case FormatJSON:
		raw, err = s.parseFromJSON(data)
	case FormatJSONNET:
		raw, err = s.parseFromJSONNET(data, name)
	default:
		return nil, gerror.NewErrUnsupportedFormat(name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "error unmarshalling metafile from %s", format)
	}

	// An empty document is a metafile with no records
	if raw == nil {
		return &Metafile{}, nil
	}
	topLevelElement, ok := raw.(map[string]interface{})
	if !ok {
		return nil, errors.Errorf("error parsing metafile: must contain a top-level object but found: %T", raw)
	}
	return decodeMetafile(topLevelElement)
}

func (s *Loader) parseFromYAML(data []byte) (interface{}, error) {
	var raw interface{}
	err := yaml.Unmarshal(data, &raw)
	if err != nil {
		return nil, errors.Wrap(err, "error unmarshalling yml")
	}
	return normalizeMapValues(raw), nil
}

func (s *Loader) parseFromJSON(data []byte) (interface{}, error) {
	var raw interface{}
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return nil, errors.Wrap(err, "error unmarshalling json")
	}
	return normalizeMapValues(raw), nil
}

func (s *Loader) parseFromJSONNET(data []byte, name string) (interface{}, error) {
	vm := jsonnet.MakeVM()
	out, err := vm.EvaluateSnippet(name, string(data))
	if err != nil {
		return nil, errors.Wrap(err, "error evaluating jsonnet")
	}
	return s.parseFromJSON([]byte(out))
}

// normalizeMapValues iterates through all properties (including nested properties)
// of an object and converts all map[interface{}]interface{} to map[string]interface{},
// so YAML and JSON metafiles decode identically. Scalars keep their types: opaque values
// such as agent settings are passed through untouched, and typed fields format scalars
// themselves (see scalarString).
func normalizeMapValues(v interface{}) interface{} {
	switch v := v.(type) {
	case []interface{}:
		res := make([]interface{}, len(v))
		for i, e := range v {
			res[i] = normalizeMapValues(e)
		}
		return res
	case map[interface{}]interface{}:
		res := make(map[string]interface{}, len(v))
		for k, e := range v {
			res[fmt.Sprintf("%v", k)] = normalizeMapValues(e)
		}
		return res
	case map[string]interface{}:
		res := make(map[string]interface{}, len(v))
		for k, e := range v {
			res[k] = normalizeMapValues(e)
		}
		return res
	default:
		return v
	}
}
