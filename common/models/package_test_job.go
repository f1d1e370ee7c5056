package models

// PackageTestJob is a package test job descriptor together with the ids a job registry
// needs in order to file it into a pipeline.
type PackageTestJob struct {
	PackageID  string
	JobID      string
	Descriptor *JobDescriptor
}
