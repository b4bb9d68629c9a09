package types

import "time"

// ProductType selects a product template, e.g. "prompt_kit".
type ProductType string

// String returns the string form of the product type.
func (t ProductType) String() string { return string(t) }

// LeadType selects an outreach template and is also matched against a lead's
// status column. The two uses are independent of each other.
type LeadType string

// String returns the string form of the lead type.
func (t LeadType) String() string { return string(t) }

const (
	LeadCold     LeadType = "cold"
	LeadWarm     LeadType = "warm"
	LeadFollowup LeadType = "followup"
)

// TimestampLayout is ISO-8601 in UTC with microsecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// Timestamp formats t in UTC using TimestampLayout.
func Timestamp(t time.Time) string { return t.UTC().Format(TimestampLayout) }
