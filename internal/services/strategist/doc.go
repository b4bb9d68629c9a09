// Package strategist wraps market research and the analysis endpoint.
//
// Analyze has no analysis logic yet: it returns the response envelope with a
// null analysis. GetStats returns fixed dashboard numbers.
package strategist
