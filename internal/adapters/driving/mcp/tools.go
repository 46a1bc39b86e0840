package mcp

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/wpdocs/internal/core/domain"
)

// errArgumentsNotObject is reported when tool arguments are not a JSON object.
var errArgumentsNotObject = errors.New("tool arguments must be a JSON object")

// registerTools registers one MCP tool per dispatcher tool.
func (s *Server) registerTools() {
	for _, spec := range s.ports.Dispatcher.Tools() {
		s.server.AddTool(&mcp.Tool{
			Name:        spec.Name,
			Description: spec.Description,
			InputSchema: inputSchema(spec),
		}, s.toolHandler(spec.Name))
	}
}

// toolHandler forwards a call to the dispatcher, carrying any trace context
// from the request _meta. Validation failures become tool errors; the text
// of every other outcome is returned unchanged.
func (s *Server) toolHandler(name string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var raw json.RawMessage
		if req != nil && req.Params != nil {
			raw = req.Params.Arguments
			ctx = withRemoteTrace(ctx, req.Params.GetMeta())
		}

		args, err := decodeArguments(raw)
		if err != nil {
			return errorResult(err), nil
		}

		text, err := s.ports.Dispatcher.Invoke(ctx, name, args)
		if err != nil {
			if domain.IsValidation(err) {
				return errorResult(err), nil
			}
			return nil, err
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil
	}
}

// inputSchema builds the JSON schema of a tool's arguments.
func inputSchema(spec domain.ToolSpec) *jsonschema.Schema {
	schema := &jsonschema.Schema{
		Type:       "object",
		Properties: make(map[string]*jsonschema.Schema, len(spec.Arguments)),
	}

	for _, arg := range spec.Arguments {
		prop := &jsonschema.Schema{
			Type:        "string",
			Description: arg.Description,
		}
		for _, v := range arg.Enum {
			prop.Enum = append(prop.Enum, v)
		}
		schema.Properties[arg.Name] = prop

		if arg.Required {
			schema.Required = append(schema.Required, arg.Name)
		}
	}

	return schema
}

func decodeArguments(raw json.RawMessage) (map[string]any, error) {
	args := make(map[string]any)
	if len(raw) == 0 || string(raw) == "null" {
		return args, nil
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, errArgumentsNotObject
	}
	return args, nil
}

func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
