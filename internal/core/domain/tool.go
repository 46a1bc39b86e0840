package domain

// ToolArgument describes one tool argument.
type ToolArgument struct {
	Name        string
	Description string
	Required    bool

	// Enum lists the accepted values, if restricted.
	Enum []string
}

// ToolSpec describes a tool exposed by the dispatcher.
type ToolSpec struct {
	Name        string
	Description string
	Arguments   []ToolArgument
}
