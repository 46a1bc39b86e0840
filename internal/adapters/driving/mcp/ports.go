package mcp

import (
	"github.com/custodia-labs/wpdocs/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Dispatcher runs the documentation tools.
	Dispatcher driving.ToolDispatcher

	// Settings exposes the effective source settings. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Dispatcher == nil {
		return ErrMissingDispatcher
	}
	return nil
}
