// Package store persists records to flat files: an append-only CSV index
// per record family plus companion artifact files (Markdown, HTML, text).
package store

// Storages aggregates every storage backend used by the services.
type Storages struct {
	Index     CSVIndex
	Artifacts ArtifactStorage
}

// NewStorages constructs the default filesystem-backed storage set.
func NewStorages() *Storages {
	return &Storages{
		Index:     NewCSVIndex(),
		Artifacts: NewArtifactStorage(),
	}
}
