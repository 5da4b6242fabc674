package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var scriptDryRun bool

var scriptCmd = &cobra.Command{
	Use:   "script <page-id> [file]",
	Short: "Apply a sequence of edits, undos and redos",
	Long: `Apply a script of edits to a page, one action per line, and print the
resulting undo/redo history sizes. Reads stdin when no file is given.

Actions:
  add <parent> <pattern> [name]       sibling <location> <pattern> [name]
  move <element> <parent> [index]     remove <element>
  up|down|indent|outdent <element>    set <element> <property.path> <value>
  undo                                redo

@root names the page root and @last the most recently added element.
The page is saved only if every line succeeds.

Example:
  printf 'add @root text\nset @last text Hi\nundo\n' | pagecraft-cli script landing`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var in io.Reader = os.Stdin
		if len(args) == 2 {
			f, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		s, err := openSession(args[0])
		if err != nil {
			return err
		}
		if err := s.RunScript(in, os.Stdout); err != nil {
			return err
		}

		undo, redo := s.History()
		fmt.Printf("History: %d undo, %d redo\n", undo, redo)

		if scriptDryRun {
			return nil
		}
		return s.Save()
	},
}

func init() {
	scriptCmd.Flags().BoolVar(&scriptDryRun, "dry-run", false, "run the script without saving the page")
	rootCmd.AddCommand(scriptCmd)
}
