package packages

import (
	"github.com/pkg/errors"

	"github.com/buildbeaver/yamato/common/gerror"
	"github.com/buildbeaver/yamato/common/logger"
	"github.com/buildbeaver/yamato/common/models"
	"github.com/buildbeaver/yamato/generator/metafile"
)

// Filter restricts which package test jobs are generated. Empty fields match everything.
type Filter struct {
	PackageID     string
	PlatformName  string
	EditorVersion string
}

func (f Filter) matches(pkg *models.PackageRecord, platform *models.PlatformRecord, editor *models.EditorRecord) bool {
	return (f.PackageID == "" || f.PackageID == pkg.ID) &&
		(f.PlatformName == "" || f.PlatformName == platform.Name) &&
		(f.EditorVersion == "" || f.EditorVersion == editor.Version)
}

// Generator produces the package test jobs for every package, platform and editor combination
// in a metafile.
type Generator struct {
	log logger.Log
}

func NewGenerator(logFactory logger.LogFactory) *Generator {
	return &Generator{
		log: logFactory("packages"),
	}
}

// Generate returns one test job per (package, platform, editor) combination accepted by the
// filter, ordered by package, then platform, then editor as they appear in the metafile.
// Two combinations producing the same job id is an error.
func (g *Generator) Generate(meta *metafile.Metafile, filter Filter) ([]*models.PackageTestJob, error) {
	var (
		jobs = []*models.PackageTestJob{}
		seen = map[string]bool{}
	)
	for _, pkg := range meta.Packages {
		for _, platform := range meta.Platforms {
			for _, editor := range meta.Editors {
				if !filter.matches(pkg, platform, editor) {
					continue
				}
				job, err := NewPackageTestJob(pkg, platform, editor)
				if err != nil {
					return nil, errors.Wrapf(err, "error generating test job for package %s", pkg.ID)
				}
				if seen[job.JobID] {
					return nil, gerror.NewErrAlreadyExists("Duplicate package test job").EDetail("job", job.JobID)
				}
				seen[job.JobID] = true
				g.log.WithField("job", job.JobID).Debugf("Generated %q with %d dependencies", job.Descriptor.Name, len(job.Descriptor.Dependencies))
				jobs = append(jobs, job)
			}
		}
	}
	if len(jobs) == 0 {
		g.log.Warnf("No package test jobs matched filter %+v", filter)
	}
	return jobs, nil
}
