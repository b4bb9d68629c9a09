package interfaces

import domaintypes "aihustle/internal/domain/types"

// BuilderService instantiates product templates.
type BuilderService interface {
	CreateProduct(productType domaintypes.ProductType) domaintypes.ProductResult
	GetTemplates() domaintypes.Templates
	Products() []domaintypes.Product
}

// OutreachService produces DM templates and matching leads.
type OutreachService interface {
	GenerateDMs(leadType domaintypes.LeadType) domaintypes.DMResult
}

// StrategistService analyzes arbitrary JSON input.
type StrategistService interface {
	Analyze(input any) domaintypes.AnalysisResult
	MarketData() domaintypes.ResearchData
}
