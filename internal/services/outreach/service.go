package outreach

import (
	"go.uber.org/zap"

	"aihustle/internal/domain"
	"aihustle/internal/logging"
)

var templates = map[domain.LeadType]string{
	domain.LeadCold: "Hey {name}, noticed your work in {niche}. " +
		"Have you tried automating content repurposing?",
	domain.LeadWarm: "Hi {name}, loved your post about {recent_post}! " +
		"I've got a free tool that might help with {pain_point}.",
	domain.LeadFollowup: "Hi {name}, just following up on my last message about {niche}. " +
		"Happy to send over the free tool if it's still useful.",
}

// OptimalSendTimes are the suggested windows for sending DMs.
var OptimalSendTimes = []string{"9-11 AM", "2-4 PM"}

// Service holds the leads loaded at construction.
type Service struct {
	leads    []domain.Lead
	generate func(domain.LeadType) domain.DMResult
}

// New loads leads from src once. GenerateDMs calls are logged under the
// dm_activity category.
func New(src domain.LeadSource, log *zap.Logger) *Service {
	s := &Service{leads: src.LoadLeads()}
	s.generate = logging.DMActivity(log, "generate_dms", s.generateDMs)
	return s
}

// GenerateDMs returns the template for leadType and the leads whose status
// equals leadType. An empty leadType means cold. An unknown type yields a
// nil template; a type no lead carries yields no leads. The two lookups are
// independent.
func (s *Service) GenerateDMs(leadType domain.LeadType) domain.DMResult {
	if leadType == "" {
		leadType = domain.LeadCold
	}
	return s.generate(leadType)
}

func (s *Service) generateDMs(leadType domain.LeadType) domain.DMResult {
	var tmpl *string
	if t, ok := templates[leadType]; ok {
		tmpl = &t
	}
	return domain.DMResult{
		Template:         tmpl,
		SuggestedLeads:   s.filterLeads(leadType),
		OptimalSendTimes: append([]string(nil), OptimalSendTimes...),
	}
}

func (s *Service) filterLeads(leadType domain.LeadType) []domain.Lead {
	out := []domain.Lead{}
	for _, l := range s.leads {
		if l.Status() == string(leadType) {
			out = append(out, l.Clone())
		}
	}
	return out
}

var _ domain.OutreachService = (*Service)(nil)
