package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"pagecraft/internal/adapters/repository"
	"pagecraft/internal/application/session"
	"pagecraft/internal/config"
	"pagecraft/internal/ports"
)

var (
	cfg       config.Config
	repo      ports.PageRepository
	closeRepo func() error
	logger    *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pagecraft-cli",
	Short: "CLI for editing pagecraft pages",
	Long: `pagecraft-cli edits page element trees from the command line.

Every change runs through the same undo/redo command stack as the
interactive editor; each invocation saves the page when it succeeds.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		loaded, err := config.Load()
		if err != nil {
			return err
		}
		applyFlags(cmd, &loaded)
		cfg = loaded
		logger = cfg.Logger(os.Stderr)

		repo, closeRepo, err = repository.Open(cfg)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if closeRepo == nil {
			return nil
		}
		return closeRepo()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaults := config.Default()
	rootCmd.PersistentFlags().StringP("pages", "p", defaults.PagesPath, "path to the pages directory")
	rootCmd.PersistentFlags().String("store", defaults.Store, "page store (yaml or sqlite)")
	rootCmd.PersistentFlags().String("db", "", "SQLite database path")
}

// applyFlags overrides configuration with flags given on the command line
func applyFlags(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	for name, target := range map[string]*string{
		"pages": &c.PagesPath,
		"store": &c.Store,
		"db":    &c.DBPath,
	} {
		if flags.Changed(name) {
			*target, _ = flags.GetString(name)
		}
	}
}

// GetRepo returns the initialized repository
func GetRepo() ports.PageRepository {
	return repo
}

// openSession loads a page into a new editing session
func openSession(pageID string) (*session.Session, error) {
	s := session.New(GetRepo(), session.WithLogger(logger))
	if err := s.Open(pageID); err != nil {
		return nil, err
	}
	return s, nil
}

// edit opens a page, applies fn and saves the page if fn succeeds
func edit(pageID string, fn func(*session.Session) error) error {
	s, err := openSession(pageID)
	if err != nil {
		return err
	}
	if err := fn(s); err != nil {
		return err
	}
	return s.Save()
}
