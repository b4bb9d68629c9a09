// Package builder instantiates product templates and lists the landing-page
// and email-sequence templates offered to customers.
//
// Product templates are fixed at construction; lookups never mutate them.
package builder
