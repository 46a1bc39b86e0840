package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/custodia-labs/wpdocs/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/wpdocs/internal/core/domain"
	"github.com/custodia-labs/wpdocs/internal/core/services"
)

// mockDispatcher records invocations and returns a fixed answer.
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
	return services.ToolSpecs()
}

// setupTestServices injects a mock dispatcher and an in-memory settings
// service, restoring the previous services on cleanup.
func setupTestServices(t *testing.T) (*mockDispatcher, *memory.ConfigStore) {
	t.Helper()

	oldDispatcher, oldSettings, oldPath := dispatcher, settingsService, configPath
	t.Cleanup(func() {
		SetServices(oldDispatcher, oldSettings, oldPath)
	})

	d := &mockDispatcher{text: "Found 1 result for \"x\""}
	store := memory.NewConfigStore()
	SetServices(d, services.NewSettingsService(store, "test"), "/tmp/wpdocs/config.toml")
	return d, store
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		searchType, vipSection, lookupType, greetedName = "", "", "", ""
	})

	err := rootCmd.Execute()
	return buf.String(), err
}
