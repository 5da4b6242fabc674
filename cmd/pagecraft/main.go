package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"pagecraft/internal/adapters/editor"
	"pagecraft/internal/adapters/repository"
	"pagecraft/internal/adapters/tui"
	"pagecraft/internal/application/session"
	"pagecraft/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flag.StringVar(&cfg.PagesPath, "pages", cfg.PagesPath, "path to the pages directory")
	flag.StringVar(&cfg.Store, "store", cfg.Store, "page store (yaml or sqlite)")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite database path")
	logPath := flag.String("log", "", "write logs to this file")
	flag.Parse()

	repo, closeRepo, err := repository.Open(cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	// The terminal belongs to the UI; logs go to a file or nowhere
	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "pagecraft")
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}

	s := session.New(repo, session.WithLogger(cfg.Logger(logOut)))
	app := tui.NewApp(repo, editor.NewOpener(cfg.Editor), s)

	if pageID := flag.Arg(0); pageID != "" {
		if err := app.OpenPage(pageID); err != nil {
			return err
		}
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
