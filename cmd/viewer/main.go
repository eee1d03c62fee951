package main

import (
	"chat-shell/domain"
	"chat-shell/fixtures"
	"chat-shell/repositories"
	"chat-shell/services"
	"chat-shell/session"
	"chat-shell/ui"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run signs in with the VIEWER_* credentials and prints one tab.
func run(out io.Writer) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(cfg.LogLevel)

	view, err := domain.ParseView(cfg.View)
	if err != nil {
		return err
	}

	directory, err := repositories.OpenDirectory(log)
	if err != nil {
		return err
	}
	defer func() { _ = directory.Close() }()
	if err = directory.LoadDataset(fixtures.Seed(time.Now())); err != nil {
		return err
	}

	svc := services.NewShellService(log, directory, repositories.NewMemorySessionRepository(0), time.Now)
	id, _, err := svc.Open()
	if err != nil {
		return err
	}
	defer svc.Close(id)

	for _, action := range actions(cfg, view) {
		if _, err = svc.Dispatch(id, action); err != nil {
			return err
		}
	}

	page, err := svc.Page(id)
	if err != nil {
		return err
	}
	if !page.LoggedIn {
		log.Warn("Sign in rejected, email and password are required", slog.Bool("register", cfg.Register))
	}
	return ui.Render(out, page, cfg.Colours)
}

func actions(cfg Config, view domain.View) []session.Action {
	var acts []session.Action
	if cfg.Register {
		acts = append(acts, session.ToggleRegistering{})
	}
	return append(acts,
		session.EditForm{Field: session.NAME, Value: cfg.Name},
		session.EditForm{Field: session.EMAIL, Value: cfg.Email},
		session.EditForm{Field: session.PASSWORD, Value: cfg.Password},
		session.Submit{},
		session.SetView{View: view},
		session.SetSearch{Term: cfg.Search},
	)
}
