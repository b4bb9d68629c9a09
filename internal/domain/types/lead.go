package types

// Lead is one CSV row keyed by the header columns. No column is required.
type Lead map[string]string

// Status returns the lead's status column, or "" when the column is absent.
func (l Lead) Status() string { return l["status"] }

// Clone returns a copy of l.
func (l Lead) Clone() Lead {
	out := make(Lead, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}

// ResearchData is the decoded research document. Its shape is not validated.
type ResearchData map[string]any
