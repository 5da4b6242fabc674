package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pagecraft/internal/application/session"
)

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "List stored pages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pages, err := GetRepo().ListPages()
		if err != nil {
			return err
		}
		if len(pages) == 0 {
			fmt.Println("No pages.")
			return nil
		}
		for _, p := range pages {
			fmt.Printf("%s  %s  (%d elements)\n", p.ID, p.Name, p.ElementCount)
		}
		return nil
	},
}

var newPageID string

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create an empty page",
	Long: `Create an empty page containing only its root element.

Examples:
  pagecraft-cli new "Landing page"
  pagecraft-cli new About --id about`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := session.New(GetRepo(), session.WithLogger(logger))
		page, err := s.NewPage(args[0])
		if err != nil {
			return err
		}
		if newPageID != "" {
			page.ID = newPageID
		}
		if err := s.Save(); err != nil {
			return err
		}
		fmt.Printf("Created page %s (root %s)\n", page.ID, page.Root.ID())
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <page-id>",
	Short: "Delete a page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := GetRepo().DeletePage(args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted page %s\n", args[0])
		return nil
	},
}

func init() {
	newCmd.Flags().StringVar(&newPageID, "id", "", "page ID (default: generated)")
	rootCmd.AddCommand(pagesCmd, newCmd, deleteCmd)
}
