package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pagecraft/internal/adapters/editor"
	"pagecraft/internal/ports"
)

var editCmd = &cobra.Command{
	Use:   "edit <page-id>",
	Short: "Open a page file in $EDITOR",
	Long: `Open the YAML file of a page in your editor. Only available with the
yaml store. The editor is PAGECRAFT_EDITOR, $EDITOR or $VISUAL.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		locator, ok := GetRepo().(ports.PageFileLocator)
		if !ok {
			return fmt.Errorf("store %q has no page files", cfg.Store)
		}
		path, err := locator.PagePath(args[0])
		if err != nil {
			return err
		}
		return editor.NewOpener(cfg.Editor).OpenFile(path)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
