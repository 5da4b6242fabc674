package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pagecraft/internal/application"
	"pagecraft/internal/application/session"
)

var (
	addName  string
	addIndex int
)

var addCmd = &cobra.Command{
	Use:   "add <page-id> <parent-id> <pattern>",
	Short: "Add a new element under a parent",
	Long: `Add a new element under a parent element.

Examples:
  pagecraft-cli add landing 3f2c... section --name Hero
  pagecraft-cli add landing 3f2c... text --index 0`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return edit(args[0], func(s *session.Session) error {
			el, err := s.AddChild(args[1], args[2], addName, addIndex)
			if err != nil {
				return err
			}
			fmt.Printf("Added %s [%s] at index %d\n", el.ID(), el.Pattern(), el.Index())
			return nil
		})
	},
}

var siblingName string

var siblingCmd = &cobra.Command{
	Use:   "sibling <page-id> <location-id> <pattern>",
	Short: "Add a new element directly after another",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return edit(args[0], func(s *session.Session) error {
			el, err := s.AddSibling(args[1], args[2], siblingName)
			if err != nil {
				return err
			}
			fmt.Printf("Added %s [%s] after %s\n", el.ID(), el.Pattern(), args[1])
			return nil
		})
	},
}

func init() {
	addCmd.Flags().StringVarP(&addName, "name", "n", "", "display name (default: the pattern)")
	addCmd.Flags().IntVarP(&addIndex, "index", "i", application.AppendIndex, "position among the parent's children (default: append)")
	siblingCmd.Flags().StringVarP(&siblingName, "name", "n", "", "display name (default: the pattern)")
	rootCmd.AddCommand(addCmd, siblingCmd)
}
