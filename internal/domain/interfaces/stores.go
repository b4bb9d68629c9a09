package interfaces

import domaintypes "aihustle/internal/domain/types"

// ResearchSource loads the research document. It never fails; an unreadable
// source yields a fallback document.
type ResearchSource interface {
	LoadResearch() domaintypes.ResearchData
}

// LeadSource loads the lead list. It never fails; an unreadable source yields
// a single sample lead.
type LeadSource interface {
	LoadLeads() []domaintypes.Lead
}
