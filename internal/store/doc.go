// Package store loads the flat data files the agents are built from.
//
// Two sources exist:
//   - Research data: a JSON document (any top-level object) read by
//     ResearchFileStore.
//   - Leads: a CSV file whose header row names the columns, read by
//     LeadFileStore.
//
// Loading never fails. A missing, unreadable or malformed file is logged as a
// warning and replaced by a fixed sample value (see FallbackResearch and
// FallbackLeads). Files are read on every Load call; callers load once at
// construction and keep the result.
package store
