package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools exposed over MCP",
	Args:  cobra.NoArgs,
	RunE:  runTools,
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}

func runTools(cmd *cobra.Command, _ []string) error {
	if dispatcher == nil {
		return errors.New("dispatcher not configured")
	}

	styled := isTerminal(cmd.OutOrStdout())
	for _, spec := range dispatcher.Tools() {
		name := spec.Name
		if styled {
			name = headingStyle.Render(name)
		}
		cmd.Printf("%s\n  %s\n", name, spec.Description)

		for _, arg := range spec.Arguments {
			required := ""
			if arg.Required {
				required = " (required)"
			}
			cmd.Printf("    --%s%s  %s", arg.Name, required, arg.Description)
			if len(arg.Enum) > 0 {
				cmd.Printf(" [%s]", strings.Join(arg.Enum, "|"))
			}
			cmd.Println()
		}
		cmd.Println()
	}
	return nil
}
