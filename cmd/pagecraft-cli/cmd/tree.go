package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"pagecraft/internal/application"
)

var treeCmd = &cobra.Command{
	Use:   "tree <page-id>",
	Short: "Display the element tree of a page",
	Long: `Display the element tree of a page, one element per line:
ID, [pattern] and name, indented by depth.

Example:
  pagecraft-cli tree landing`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := GetRepo().LoadPage(args[0])
		if err != nil {
			return err
		}
		return application.WriteTree(os.Stdout, page)
	},
}

var showCmd = &cobra.Command{
	Use:   "show <page-id> <element-id>",
	Short: "Show an element and its properties",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(args[0])
		if err != nil {
			return err
		}
		el, err := s.Element(args[1])
		if err != nil {
			return err
		}
		return application.WriteElement(os.Stdout, el)
	},
}

func init() {
	rootCmd.AddCommand(treeCmd, showCmd)
}
