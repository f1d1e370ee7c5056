package models

import "strings"

const jobReferenceSeparator = "#"

// JobReference identifies another job by the file that defines it and its id within that
// file, e.g. ".yamato/_packages.yml#pack_core". Jobs list references to express "depends on".
type JobReference string

func NewJobReference(definingFile string, jobID string) JobReference {
	return JobReference(definingFile + jobReferenceSeparator + jobID)
}

// File returns the path of the file defining the referenced job.
func (r JobReference) File() string {
	file, _ := r.split()
	return file
}

// JobID returns the id of the referenced job within its defining file.
func (r JobReference) JobID() string {
	_, id := r.split()
	return id
}

func (r JobReference) String() string {
	return string(r)
}

func (r JobReference) split() (string, string) {
	i := strings.LastIndex(string(r), jobReferenceSeparator)
	if i < 0 {
		return "", string(r)
	}
	return string(r[:i]), string(r[i+1:])
}
