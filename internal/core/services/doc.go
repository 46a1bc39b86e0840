// Package services implements the driving port interfaces.
//
// The Pipeline resolves a LookupQuery against a tier table of source
// adapters, the Dispatcher turns MCP tool calls into queries and rendered
// text, and the SettingsService manages source configuration.
//
// Services depend only on domain, the driven ports and the logger.
package services
