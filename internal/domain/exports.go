package domain

import (
	interfaces "aihustle/internal/domain/interfaces"
	types "aihustle/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	ProductType      = types.ProductType
	LeadType         = types.LeadType
	Product          = types.Product
	Lead             = types.Lead
	ResearchData     = types.ResearchData
	ProductResult    = types.ProductResult
	Templates        = types.Templates
	DMResult         = types.DMResult
	AnalysisMetadata = types.AnalysisMetadata
	AnalysisResult   = types.AnalysisResult
	Stats            = types.Stats
	ErrorResponse    = types.ErrorResponse
)

// Interface aliases expose contracts from the interfaces subpackage.
type (
	BuilderService    = interfaces.BuilderService
	OutreachService   = interfaces.OutreachService
	StrategistService = interfaces.StrategistService
	ResearchSource    = interfaces.ResearchSource
	LeadSource        = interfaces.LeadSource
)

// Timestamp formats t as an ISO-8601 UTC string.
var Timestamp = types.Timestamp

const (
	TimestampLayout = types.TimestampLayout

	LeadCold     = types.LeadCold
	LeadWarm     = types.LeadWarm
	LeadFollowup = types.LeadFollowup
)
