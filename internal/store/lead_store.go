package store

import (
	"go.uber.org/zap"

	"aihustle/internal/domain"
	"aihustle/internal/logging"
)

// DefaultLeadsPath is resolved against the process working directory.
const DefaultLeadsPath = "data/leads.csv"

// LeadFileStore reads leads from a CSV file with a header row.
type LeadFileStore struct {
	path string
	log  *zap.Logger
}

// NewLeadFileStore returns a store for path; an empty path means
// DefaultLeadsPath.
func NewLeadFileStore(path string, log *zap.Logger) *LeadFileStore {
	if path == "" {
		path = DefaultLeadsPath
	}
	return &LeadFileStore{path: path, log: logging.Named(log, logging.CategoryStore)}
}

// LoadLeads returns every CSV row as a Lead, or FallbackLeads.
func (s *LeadFileStore) LoadLeads() []domain.Lead {
	rows, err := readCSVRecords(s.path)
	if err != nil {
		s.log.Warn("leads load error, using sample lead", zap.String("path", s.path), zap.Error(err))
		return FallbackLeads()
	}
	leads := make([]domain.Lead, len(rows))
	for i, r := range rows {
		leads[i] = domain.Lead(r)
	}
	return leads
}

var _ domain.LeadSource = (*LeadFileStore)(nil)
