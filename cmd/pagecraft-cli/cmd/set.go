package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pagecraft/internal/application"
	"pagecraft/internal/application/session"
)

var setCmd = &cobra.Command{
	Use:   "set <page-id> <element-id> <property.path> <value>",
	Short: "Set a property value",
	Long: `Set a property value on an element. Nested values are addressed with
dots. true/false and numbers are stored typed, null removes the
property and a "quoted" value is always a string.

Examples:
  pagecraft-cli set landing 9a1e... label "Buy now"
  pagecraft-cli set landing 9a1e... style.padding.left 12
  pagecraft-cli set landing 9a1e... disabled null`,
	Args: cobra.MinimumNArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		value := application.ParseValue(strings.Join(args[3:], " "))
		return edit(args[0], func(s *session.Session) error {
			if err := s.SetProperty(args[1], args[2], value); err != nil {
				return err
			}
			fmt.Printf("%s.%s = %s\n", args[1], args[2], application.FormatValue(value))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
}
