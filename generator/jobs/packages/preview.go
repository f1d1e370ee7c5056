package packages

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/buildbeaver/yamato/common/models"
)

const previewIndent = 2

// WritePreview writes the descriptors of jobs to w as a YAML mapping keyed by job id, in the
// order given. It is meant for inspecting generated jobs; it is not a complete CI configuration.
func WritePreview(w io.Writer, jobs []*models.PackageTestJob) error {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, job := range jobs {
		value := &yaml.Node{}
		if err := value.Encode(job.Descriptor); err != nil {
			return errors.Wrapf(err, "error encoding job %s", job.JobID)
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: job.JobID}
		doc.Content = append(doc.Content, key, value)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(previewIndent)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "error writing job preview")
	}
	return enc.Close()
}
