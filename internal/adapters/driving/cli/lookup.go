package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wpdocs/internal/core/services"
)

var (
	searchType  string
	vipSection  string
	lookupType  string
	greetedName string
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the WordPress developer documentation",
	Long: `Searches developer.wordpress.org by keyword.

Use --type to search the code reference instead of documentation posts:
  posts      - handbooks and articles (default)
  functions  - function reference
  hooks      - action and filter reference
  classes    - class reference`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(cmd, services.ToolSearchDocs, map[string]any{
			"query":        strings.Join(args, " "),
			"content_type": searchType,
		})
	},
}

var vipCmd = &cobra.Command{
	Use:   "vip [query]",
	Short: "Search the WordPress VIP documentation",
	Long: `Searches docs.wpvip.com. The VIP REST API is tried first; when it has
nothing, the VIP search page is used instead.

Use --section to keep only results from one area of the documentation.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(cmd, services.ToolVIPSearch, map[string]any{
			"query":   strings.Join(args, " "),
			"section": vipSection,
		})
	},
}

var lookupCmd = &cobra.Command{
	Use:   "lookup [name]",
	Short: "Look up a function, hook or class by exact name",
	Long: `Fetches the code reference page for an exact name, for example get_post.

When no reference page exists, related results from a keyword search are
shown instead. Network failures are reported as errors.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(cmd, services.ToolFunctionLookup, map[string]any{
			"function_name": args[0],
			"content_type":  lookupType,
		})
	},
}

var helloCmd = &cobra.Command{
	Use:    "hello",
	Short:  "Print a WordPress greeting",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if greetedName == "" {
			return invoke(cmd, services.ToolHelloWorld, nil)
		}
		return invoke(cmd, services.ToolHelloWP, map[string]any{"name": greetedName})
	},
}

func init() {
	searchCmd.Flags().StringVarP(&searchType, "type", "t", "", "content type: posts, functions, hooks or classes")
	vipCmd.Flags().StringVarP(&vipSection, "section", "s", "", "VIP section, e.g. guides or vip-cli")
	lookupCmd.Flags().StringVarP(&lookupType, "type", "t", "", "reference family: functions, hooks or classes")
	helloCmd.Flags().StringVar(&greetedName, "name", "", "name to greet")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(vipCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(helloCmd)
}

// invoke runs a tool through the dispatcher and prints its text.
// Empty optional arguments are omitted.
func invoke(cmd *cobra.Command, tool string, args map[string]any) error {
	if dispatcher == nil {
		return errors.New("dispatcher not configured")
	}

	for k, v := range args {
		if s, ok := v.(string); ok && s == "" {
			delete(args, k)
		}
	}

	text, err := dispatcher.Invoke(cmd.Context(), tool, args)
	if err != nil {
		return err
	}

	writeResult(cmd.OutOrStdout(), text)
	return nil
}
