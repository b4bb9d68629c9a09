// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (wire/state) and contracts (interfaces) only.
//
// Result types are named per operation so every JSON shape the HTTP layer
// returns is declared here rather than assembled ad hoc in handlers.
package domain
