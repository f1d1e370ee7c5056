package metafile

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/buildbeaver/yamato/common/gerror"
	"github.com/buildbeaver/yamato/common/models"
)

const metafileRecord = "metafile"

// decodeMetafile turns the normalized top-level element of a metafile into typed records.
// Every missing or malformed field is reported, not just the first.
func decodeMetafile(raw map[string]interface{}) (*Metafile, error) {
	var (
		result *multierror.Error
		meta   = &Metafile{}
	)
	for i, element := range listOf(raw, "editors", &result) {
		r := newFieldReader("editor", i, element, "version", &result)
		if r == nil {
			continue
		}
		meta.Editors = append(meta.Editors, &models.EditorRecord{
			Version: r.requiredString("version"),
		})
	}
	for i, element := range listOf(raw, "platforms", &result) {
		r := newFieldReader("platform", i, element, "name", &result)
		if r == nil {
			continue
		}
		meta.Platforms = append(meta.Platforms, &models.PlatformRecord{
			Name:       r.requiredString("name"),
			OS:         r.requiredString("os"),
			Agent:      r.requiredObject("agent"),
			EditorPath: r.requiredString("editorpath"),
			CopyCmd:    r.optionalString("copycmd"),
		})
	}
	for i, element := range listOf(raw, "packages", &result) {
		r := newFieldReader("package", i, element, "id", &result)
		if r == nil {
			continue
		}
		meta.Packages = append(meta.Packages, &models.PackageRecord{
			ID:                r.requiredString("id"),
			Name:              r.requiredString("name"),
			PackageName:       r.requiredString("packagename"),
			Dependencies:      r.stringList("dependencies"),
			HasCoDependencies: r.defined("hascodependencies"),
		})
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return meta, nil
}

// listOf returns the named top-level list, or nil if it is absent.
func listOf(raw map[string]interface{}, field string, result **multierror.Error) []interface{} {
	value, ok := raw[field]
	if !ok || value == nil {
		return nil
	}
	list, ok := value.([]interface{})
	if !ok {
		*result = multierror.Append(*result, gerror.NewErrInvalidField(metafileRecord, field, "a list", value))
		return nil
	}
	return list
}

// fieldReader reads fields from one raw record, appending a typed error for each problem found.
type fieldReader struct {
	record string
	raw    map[string]interface{}
	result **multierror.Error
}

// newFieldReader returns a reader for the record at index i, named after its identifying
// field when that is available. Returns nil (after recording an error) if the element is
// not an object.
func newFieldReader(kind string, i int, element interface{}, idField string, result **multierror.Error) *fieldReader {
	record := fmt.Sprintf("%s at index %d", kind, i)
	raw, ok := element.(map[string]interface{})
	if !ok {
		*result = multierror.Append(*result, gerror.NewErrInvalidField(record, kind, "an object", element))
		return nil
	}
	if id, ok := raw[idField].(string); ok {
		record = fmt.Sprintf("%s %s", kind, id)
	}
	return &fieldReader{record: record, raw: raw, result: result}
}

func (r *fieldReader) fail(err error) {
	*r.result = multierror.Append(*r.result, err)
}

func (r *fieldReader) requiredString(field string) string {
	value, ok := r.raw[field]
	if !ok || value == nil {
		r.fail(gerror.NewErrMissingField(r.record, field))
		return ""
	}
	str, ok := scalarString(value)
	if !ok {
		r.fail(gerror.NewErrInvalidField(r.record, field, "a string", value))
		return ""
	}
	return str
}

func (r *fieldReader) optionalString(field string) string {
	value, ok := r.raw[field]
	if !ok || value == nil {
		return ""
	}
	str, ok := scalarString(value)
	if !ok {
		r.fail(gerror.NewErrInvalidField(r.record, field, "a string", value))
		return ""
	}
	return str
}

func (r *fieldReader) requiredObject(field string) map[string]interface{} {
	value, ok := r.raw[field]
	if !ok || value == nil {
		r.fail(gerror.NewErrMissingField(r.record, field))
		return nil
	}
	obj, ok := value.(map[string]interface{})
	if !ok {
		r.fail(gerror.NewErrInvalidField(r.record, field, "an object", value))
		return nil
	}
	return obj
}

// stringList returns the named list of strings, or an empty list if the field is absent.
func (r *fieldReader) stringList(field string) []string {
	value, ok := r.raw[field]
	if !ok || value == nil {
		return []string{}
	}
	list, ok := value.([]interface{})
	if !ok {
		r.fail(gerror.NewErrInvalidField(r.record, field, "a list", value))
		return []string{}
	}
	strs := make([]string, 0, len(list))
	for i, e := range list {
		str, ok := scalarString(e)
		if !ok {
			r.fail(gerror.NewErrInvalidField(r.record, fmt.Sprintf("%s[%d]", field, i), "a string", e))
			continue
		}
		strs = append(strs, str)
	}
	return strs
}

// scalarString returns a string field's value. Unquoted numbers and booleans are accepted
// and formatted, so `version: 2021.1` reads as "2021.1"; objects, lists and null are not.
func scalarString(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case bool, int, int64, uint64, float64:
		return fmt.Sprintf("%v", v), true
	default:
		return "", false
	}
}

// defined returns the field's value if it is present and not null, or nil otherwise.
func (r *fieldReader) defined(field string) interface{} {
	value, ok := r.raw[field]
	if !ok {
		return nil
	}
	return value
}
