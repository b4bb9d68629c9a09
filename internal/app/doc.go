// Package app wires application dependencies for the CLI and the server.
//
// It loads Config (YAML file plus environment overrides), opens the log
// sinks and builds the stores and agents, exposing them via the Wire struct.
package app
