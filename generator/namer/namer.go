// Package namer builds the file paths and job ids that CI jobs use to refer to each other.
// All functions are pure and deterministic.
package namer

import (
	"fmt"

	"github.com/buildbeaver/yamato/common/models"
)

const (
	editorFilePath   = ".yamato/_editor.yml"
	packagesFilePath = ".yamato/_packages.yml"
)

// EditorFilePath returns the path of the file defining the editor priming jobs.
func EditorFilePath() string {
	return editorFilePath
}

// EditorJobID returns the id of the job priming the given editor version on the given OS.
func EditorJobID(editorVersion string, platformOS string) string {
	return fmt.Sprintf("editor:priming:%s:%s", editorVersion, platformOS)
}

// PackagesFilePath returns the path of the file defining the package jobs.
func PackagesFilePath() string {
	return packagesFilePath
}

// PackageJobIDPack returns the id of the job packing the given package.
func PackageJobIDPack(packageID string) string {
	return fmt.Sprintf("pack_%s", packageID)
}

// PackageJobIDTest returns the id of the job testing the given package on a platform and editor version.
func PackageJobIDTest(packageID string, platformName string, editorVersion string) string {
	return fmt.Sprintf("test_%s_%s_%s", packageID, platformName, editorVersion)
}

func EditorJobRef(editorVersion string, platformOS string) models.JobReference {
	return models.NewJobReference(EditorFilePath(), EditorJobID(editorVersion, platformOS))
}

func PackageJobRefPack(packageID string) models.JobReference {
	return models.NewJobReference(PackagesFilePath(), PackageJobIDPack(packageID))
}
