package metafile

import "github.com/buildbeaver/yamato/common/models"

// Metafile is the typed content of one or more metafiles: the editors, platforms and
// packages that package test jobs are generated for.
type Metafile struct {
	Editors   []*models.EditorRecord
	Platforms []*models.PlatformRecord
	Packages  []*models.PackageRecord
}

// Merge appends the records of other to m, keeping the order of both.
func (m *Metafile) Merge(other *Metafile) {
	m.Editors = append(m.Editors, other.Editors...)
	m.Platforms = append(m.Platforms, other.Platforms...)
	m.Packages = append(m.Packages, other.Packages...)
}
