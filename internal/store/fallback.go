package store

import "aihustle/internal/domain"

// FallbackResearch is served when the research file cannot be loaded. It
// always carries an "error" key.
func FallbackResearch() domain.ResearchData {
	return domain.ResearchData{
		"error": "Data unavailable",
		"sample_data": map[string]any{
			"market_size": "$2.5B",
			"top_niche":   "AI Content Tools",
		},
	}
}

// FallbackLeads is served when the leads file cannot be loaded.
func FallbackLeads() []domain.Lead {
	return []domain.Lead{{
		"name":  "Sample Lead",
		"email": "test@example.com",
		"niche": "AI Content Creation",
	}}
}
