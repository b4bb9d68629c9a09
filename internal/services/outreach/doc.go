// Package outreach produces direct-message templates and the leads they are
// meant for.
//
// Templates keep their placeholder tokens ({name}, {niche}, {recent_post},
// {pain_point}); personalisation is left to the caller.
package outreach
