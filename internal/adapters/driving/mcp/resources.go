package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for wpdocs resources.
	uriScheme = "wpdocs://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	if s.ports.Settings != nil {
		s.server.AddResource(&mcp.Resource{
			URI:         uriScheme + "settings",
			Name:        "settings",
			Description: "Effective documentation source settings",
			MIMEType:    "application/json",
		}, s.handleSettingsResource)
	}

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "tools/{name}",
		Name:        "tool-help",
		Description: "Usage of a documentation tool",
		MIMEType:    "text/markdown",
	}, s.handleToolResource)
}

// handleSettingsResource returns the effective settings as JSON.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	values := make(map[string]string)
	for _, key := range s.ports.Settings.Keys() {
		val, err := s.ports.Settings.Value(key)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", key, err)
		}
		values[key] = val
	}

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling settings: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleToolResource describes one tool and its arguments.
func (s *Server) handleToolResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := extractToolName(req.Params.URI)

	for _, spec := range s.ports.Dispatcher.Tools() {
		if spec.Name != name {
			continue
		}

		var b strings.Builder
		fmt.Fprintf(&b, "# %s\n\n%s\n", spec.Name, spec.Description)
		if len(spec.Arguments) > 0 {
			b.WriteString("\n## Arguments\n")
		}
		for _, arg := range spec.Arguments {
			fmt.Fprintf(&b, "\n- `%s`", arg.Name)
			if arg.Required {
				b.WriteString(" (required)")
			}
			fmt.Fprintf(&b, ": %s", arg.Description)
			if len(arg.Enum) > 0 {
				fmt.Fprintf(&b, ". One of: %s", strings.Join(arg.Enum, ", "))
			}
		}

		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "text/markdown",
				Text:     b.String(),
			}},
		}, nil
	}

	return nil, mcp.ResourceNotFoundError(req.Params.URI)
}

// extractToolName extracts the tool name from a URI like wpdocs://tools/{name}.
func extractToolName(uri string) string {
	const prefix = uriScheme + "tools/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimSuffix(strings.TrimPrefix(uri, prefix), "/")
}
