package store

import (
	"go.uber.org/zap"

	"aihustle/internal/domain"
	"aihustle/internal/logging"
)

// DefaultResearchPath is resolved against the process working directory.
const DefaultResearchPath = "data/research.json"

// ResearchFileStore reads the research document from a JSON file.
type ResearchFileStore struct {
	path string
	log  *zap.Logger
}

// NewResearchFileStore returns a store for path; an empty path means
// DefaultResearchPath.
func NewResearchFileStore(path string, log *zap.Logger) *ResearchFileStore {
	if path == "" {
		path = DefaultResearchPath
	}
	return &ResearchFileStore{path: path, log: logging.Named(log, logging.CategoryStore)}
}

// LoadResearch returns the decoded document or FallbackResearch.
func (s *ResearchFileStore) LoadResearch() domain.ResearchData {
	var m map[string]any
	if err := readJSONObject(s.path, &m); err != nil {
		s.log.Warn("research load error, using sample data", zap.String("path", s.path), zap.Error(err))
		return FallbackResearch()
	}
	return domain.ResearchData(m)
}

var _ domain.ResearchSource = (*ResearchFileStore)(nil)
