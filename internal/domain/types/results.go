package types

// ProductResult is returned by Builder.CreateProduct. Exactly one of Error or
// the success fields is set; a lookup miss is a value, not a Go error.
type ProductResult struct {
	Status          string   `json:"status,omitempty"`
	Timestamp       string   `json:"timestamp,omitempty"`
	Product         *Product `json:"product,omitempty"`
	MobileOptimized bool     `json:"mobile_optimized,omitempty"`
	Error           string   `json:"error,omitempty"`
}

// OK reports whether the result carries a product.
func (r ProductResult) OK() bool { return r.Error == "" }

// Templates lists the landing-page and email-sequence template names.
type Templates struct {
	LandingPages   []string `json:"landing_pages"`
	EmailSequences []string `json:"email_sequences"`
}

// DMResult is returned by Outreach.GenerateDMs. Template is nil for an
// unknown lead type and keeps its placeholders unsubstituted otherwise.
type DMResult struct {
	Template         *string  `json:"template"`
	SuggestedLeads   []Lead   `json:"suggested_leads"`
	OptimalSendTimes []string `json:"optimal_send_times"`
}

// AnalysisMetadata describes the analysis API.
type AnalysisMetadata struct {
	APIVersion      string `json:"api_version"`
	MobileOptimized bool   `json:"mobile_optimized"`
}

// AnalysisResult is returned by Strategist.Analyze.
type AnalysisResult struct {
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
	Analysis  any              `json:"analysis"`
	Metadata  AnalysisMetadata `json:"metadata"`
}

// Stats is the fixed dashboard summary.
type Stats struct {
	DailyTarget    string `json:"daily_target"`
	ActiveUsers    int    `json:"active_users"`
	ConversionRate string `json:"conversion_rate"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}
