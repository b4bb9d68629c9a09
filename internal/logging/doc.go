// Package logging builds the process-wide zap logger and the wrappers that
// instrument agent operations.
//
// Every line goes to two sinks: the console (stderr by default) and an
// append-only log file. Both writers are locked so concurrent requests never
// interleave partial lines.
//
// Concerns are separated by logger name (see Category) so log consumers can
// filter, e.g. only dm_activity lines.
package logging
