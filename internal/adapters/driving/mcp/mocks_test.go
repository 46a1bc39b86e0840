package mcp

import (
	"context"

	"github.com/custodia-labs/wpdocs/internal/core/domain"
)

// mockDispatcher is a mock implementation of driving.ToolDispatcher.
type mockDispatcher struct {
	text     string
	err      error
	lastTool string
	lastArgs map[string]any
}

func (m *mockDispatcher) Invoke(_ context.Context, toolName string, args map[string]any) (string, error) {
	m.lastTool = toolName
	m.lastArgs = args
	return m.text, m.err
}

func (m *mockDispatcher) Tools() []domain.ToolSpec {
	return []domain.ToolSpec{
		{
			Name:        "wp_search_docs",
			Description: "Search docs",
			Arguments: []domain.ToolArgument{
				{Name: "query", Description: "Search term", Required: true},
				{Name: "content_type", Description: "Family", Enum: []string{"posts", "functions"}},
			},
		},
		{Name: "hello_world", Description: "Greeting"},
	}
}

// mockSettings is a mock implementation of driving.SettingsService.
type mockSettings struct {
	values map[string]string
}

func (m *mockSettings) Get() domain.SourceSettings {
	return domain.DefaultSourceSettings("test")
}

func (m *mockSettings) Value(key string) (string, error) {
	val, ok := m.values[key]
	if !ok {
		return "", domain.NewValidationError("unknown setting %q", key)
	}
	return val, nil
}

func (m *mockSettings) Set(_, _ string) error {
	return nil
}

func (m *mockSettings) Keys() []string {
	return []string{"http.timeout_seconds", "vip.search_url"}
}
