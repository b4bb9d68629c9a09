// Package commands defines the aihustle CLI and wires dependencies for subcommands.
//
// Commands
//
//   - serve       Run the dashboard and JSON API
//   - product     Instantiate a product template
//   - templates   List landing-page and email-sequence templates
//   - dms         Print the DM template and matching leads for a lead type
//   - stats       Print the dashboard stats
//   - research    Print the loaded research data
//   - analyze     Run the strategist locally or against a server (--server)
//
// # Implementation
//
// The root command loads the config, opens the log sinks and builds the
// stores and agents before any subcommand runs. Data files are therefore read
// once per invocation. Subcommands print JSON to stdout.
package commands
