// Package mcp provides an MCP (Model Context Protocol) server adapter for wpdocs.
// It exposes the documentation lookup tools to AI assistants over stdio or
// streamable HTTP.
package mcp

import "errors"

// ErrMissingDispatcher is returned when the tool dispatcher is not provided.
var ErrMissingDispatcher = errors.New("mcp: tool dispatcher is required")
