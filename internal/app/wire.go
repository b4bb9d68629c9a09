package app

import (
	"go.uber.org/zap"

	"aihustle/internal/domain"
	"aihustle/internal/services/builder"
	"aihustle/internal/services/outreach"
	"aihustle/internal/services/strategist"
	"aihustle/internal/store"
)

// Wire bundles the data stores and agents built from a Config.
type Wire struct {
	Research   domain.ResearchSource
	Leads      domain.LeadSource
	Builder    domain.BuilderService
	Outreach   domain.OutreachService
	Strategist domain.StrategistService
}

// NewWire constructs the dependency graph from cfg. Data files are read here,
// once; the agents keep what was loaded for the life of the process.
func NewWire(cfg *Config, log *zap.Logger) *Wire {
	research := store.NewResearchFileStore(cfg.Data.ResearchPath, log)
	leads := store.NewLeadFileStore(cfg.Data.LeadsPath, log)

	return &Wire{
		Research:   research,
		Leads:      leads,
		Builder:    builder.New(log),
		Outreach:   outreach.New(leads, log),
		Strategist: strategist.New(research, log),
	}
}
