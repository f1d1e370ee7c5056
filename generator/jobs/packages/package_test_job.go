package packages

import (
	"fmt"

	"github.com/buildbeaver/yamato/common/gerror"
	"github.com/buildbeaver/yamato/common/models"
	"github.com/buildbeaver/yamato/generator/namer"
)

var setupCommands = []string{
	`npm install upm-ci-utils@stable -g --registry https://api.bintray.com/npm/unity/unity-npm`,
	`pip install unity-downloader-cli --extra-index-url https://artifactory.internal.unity3d.com/api/pypi/common-python/simple --upgrade`,
	fmt.Sprintf(`unity-downloader-cli --source-file %s -c editor --wait --published-only`, namer.PathUnityRevision),
}

// GetJobDefinition returns the job that tests pkg on the given platform and editor version.
// The job depends on the editor priming job for the platform, followed by the packing job of
// each of the package's dependencies in order.
func GetJobDefinition(pkg *models.PackageRecord, platform *models.PlatformRecord, editor *models.EditorRecord) (*models.JobDescriptor, error) {
	if err := checkRecords(pkg, platform, editor); err != nil {
		return nil, err
	}

	dependencies := make([]models.JobReference, 0, 1+len(pkg.Dependencies))
	dependencies = append(dependencies, namer.EditorJobRef(editor.Version, platform.OS))
	for _, dep := range pkg.Dependencies {
		dependencies = append(dependencies, namer.PackageJobRefPack(dep))
	}

	commands := make([]string, 0, len(setupCommands)+2)
	commands = append(commands, setupCommands...)
	if pkg.NeedsCoDependencyStaging() {
		if platform.CopyCmd == "" {
			return nil, gerror.NewErrMissingField("platform "+platform.Name, "copycmd").EDetail("package", pkg.ID)
		}
		commands = append(commands, platform.CopyCmd)
	}
	commands = append(commands, fmt.Sprintf("upm-ci package test -u %s --package-path %s", platform.EditorPath, pkg.PackageName))

	return &models.JobDescriptor{
		Name:         fmt.Sprintf("Test %s %s %s", pkg.Name, platform.Name, editor.Version),
		Agent:        copyAgent(platform.Agent),
		Dependencies: dependencies,
		Commands:     commands,
		Artifacts: models.Artifacts{
			Logs: models.ArtifactPaths{
				Paths: []models.DoubleQuotedString{namer.PathTestResultsPadded},
			},
		},
	}, nil
}

// NewPackageTestJob builds the test job for pkg on the given platform and editor version,
// along with the ids needed to register it.
func NewPackageTestJob(pkg *models.PackageRecord, platform *models.PlatformRecord, editor *models.EditorRecord) (*models.PackageTestJob, error) {
	descriptor, err := GetJobDefinition(pkg, platform, editor)
	if err != nil {
		return nil, err
	}
	return &models.PackageTestJob{
		PackageID:  pkg.ID,
		JobID:      namer.PackageJobIDTest(pkg.ID, platform.Name, editor.Version),
		Descriptor: descriptor,
	}, nil
}

func checkRecords(pkg *models.PackageRecord, platform *models.PlatformRecord, editor *models.EditorRecord) error {
	if pkg == nil {
		return gerror.NewErrMissingRecord("package")
	}
	if platform == nil {
		return gerror.NewErrMissingRecord("platform").IDetail("package", pkg.ID)
	}
	if editor == nil {
		return gerror.NewErrMissingRecord("editor").IDetail("package", pkg.ID).IDetail("platform", platform.Name)
	}
	return nil
}

// copyAgent returns a shallow copy of the agent map; nested values are shared.
func copyAgent(agent map[string]interface{}) map[string]interface{} {
	if agent == nil {
		return nil
	}
	c := make(map[string]interface{}, len(agent))
	for k, v := range agent {
		c[k] = v
	}
	return c
}
