package strategist

import (
	"time"

	"go.uber.org/zap"

	"aihustle/internal/domain"
	"aihustle/internal/logging"
)

// APIVersion is reported in every analysis result.
const APIVersion = "2.1"

// Service holds the research data loaded at construction.
type Service struct {
	marketData domain.ResearchData
	now        func() time.Time
	analyze    func(any) domain.AnalysisResult
}

// New loads research data from src once. Analyze calls are logged under the
// analysis category.
func New(src domain.ResearchSource, log *zap.Logger) *Service {
	s := &Service{marketData: src.LoadResearch(), now: time.Now}
	s.analyze = logging.Analysis(log, "analyze", s.analyzeInput)
	return s
}

// Analyze runs the analysis on input and wraps it in the result envelope.
func (s *Service) Analyze(input any) domain.AnalysisResult {
	return s.analyze(input)
}

func (s *Service) analyzeInput(input any) domain.AnalysisResult {
	return domain.AnalysisResult{
		Status:    "success",
		Timestamp: domain.Timestamp(s.now()),
		Analysis:  s.runAnalysis(input),
		Metadata: domain.AnalysisMetadata{
			APIVersion:      APIVersion,
			MobileOptimized: true,
		},
	}
}

// runAnalysis produces no analysis yet; results carry a null analysis.
func (s *Service) runAnalysis(any) any { return nil }

// MarketData returns a shallow copy of the research data.
func (s *Service) MarketData() domain.ResearchData {
	out := make(domain.ResearchData, len(s.marketData))
	for k, v := range s.marketData {
		out[k] = v
	}
	return out
}

// GetStats returns the fixed dashboard summary.
func GetStats() domain.Stats {
	return domain.Stats{
		DailyTarget:    "$1000",
		ActiveUsers:    42,
		ConversionRate: "8.5%",
	}
}

var _ domain.StrategistService = (*Service)(nil)
