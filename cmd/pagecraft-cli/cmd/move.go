package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pagecraft/internal/application"
	"pagecraft/internal/application/session"
)

var moveIndex int

var moveCmd = &cobra.Command{
	Use:   "move <page-id> <element-id> <parent-id>",
	Short: "Move an element under a new parent",
	Long: `Move an element, with its subtree, under a new parent.

Moving an element into its own subtree is rejected.

Examples:
  pagecraft-cli move landing 9a1e... 3f2c...
  pagecraft-cli move landing 9a1e... 3f2c... --index 0`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return edit(args[0], func(s *session.Session) error {
			if err := s.Move(args[1], args[2], moveIndex); err != nil {
				return err
			}
			fmt.Printf("Moved %s under %s\n", args[1], args[2])
			return nil
		})
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <page-id> <element-id>",
	Short: "Remove an element and its subtree",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return edit(args[0], func(s *session.Session) error {
			if err := s.Remove(args[1]); err != nil {
				return err
			}
			fmt.Printf("Removed %s\n", args[1])
			return nil
		})
	},
}

func init() {
	moveCmd.Flags().IntVarP(&moveIndex, "index", "i", application.AppendIndex, "position among the new parent's children (default: append)")
	rootCmd.AddCommand(moveCmd, removeCmd)
}
