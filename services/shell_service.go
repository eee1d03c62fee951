package services

import (
	"chat-shell/fixtures"
	"chat-shell/projection"
	"chat-shell/repositories"
	"chat-shell/session"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

type IShellService interface {
	Open() (repositories.SessionID, session.State, error)
	Dispatch(id repositories.SessionID, action session.Action) (session.State, error)
	State(id repositories.SessionID) (session.State, error)
	Page(id repositories.SessionID) (projection.Page, error)
	Close(id repositories.SessionID)
	Sessions() int
}

// Clock returns the instant relative times are computed against.
type Clock func() time.Time

type ShellService struct {
	log       *slog.Logger
	directory repositories.IDirectoryRepository
	sessions  repositories.ISessionRepository
	clock     Clock
	// Dispatches are applied one at a time, like events on a UI thread.
	mu sync.Mutex
}

func NewShellService(log *slog.Logger, directory repositories.IDirectoryRepository,
	sessions repositories.ISessionRepository, clock Clock) *ShellService {
	if clock == nil {
		clock = time.Now
	}
	return &ShellService{log: log, directory: directory, sessions: sessions, clock: clock}
}

func (s *ShellService) Open() (repositories.SessionID, session.State, error) {
	id := uuid.New()
	state := session.New()
	if err := s.sessions.Create(id, state); err != nil {
		return uuid.Nil, session.State{}, fmt.Errorf("creating session: %w", err)
	}
	s.log.Debug("Session opened", "session_id", id)
	return id, state, nil
}

func (s *ShellService) Dispatch(id repositories.SessionID, action session.Action) (session.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before, err := s.sessions.Get(id)
	if err != nil {
		return session.State{}, err
	}
	after := session.Reduce(before, action)
	if err = s.sessions.Save(id, after); err != nil {
		return session.State{}, err
	}
	s.logTransition(id, action, before, after)
	return after, nil
}

func (s *ShellService) logTransition(id repositories.SessionID, action session.Action, before, after session.State) {
	log := s.log.With("session_id", id, "action", action.Kind())
	switch {
	case !before.LoggedIn() && after.LoggedIn():
		user, _ := after.CurrentUser.Get()
		log.Info("User logged in", "email", user.Email)
	case before.LoggedIn() && !after.LoggedIn():
		log.Info("User logged out")
	case before.View != after.View:
		log.Debug("View changed", "from", before.View, "to", after.View)
	default:
		log.Debug("Action applied")
	}
}

func (s *ShellService) State(id repositories.SessionID) (session.State, error) {
	return s.sessions.Get(id)
}

// Page renders the session against the current directory content and clock.
func (s *ShellService) Page(id repositories.SessionID) (projection.Page, error) {
	state, err := s.sessions.Get(id)
	if err != nil {
		return projection.Page{}, err
	}
	if !state.LoggedIn() {
		return projection.Build(state, fixtures.Dataset{}, s.clock()), nil
	}
	data, err := s.dataset()
	if err != nil {
		return projection.Page{}, fmt.Errorf("reading directory: %w", err)
	}
	return projection.Build(state, data, s.clock()), nil
}

func (s *ShellService) dataset() (fixtures.Dataset, error) {
	var (
		data fixtures.Dataset
		err  error
	)
	if data.Users, err = s.directory.Users(); err != nil {
		return data, err
	}
	if data.Messages, err = s.directory.Messages(); err != nil {
		return data, err
	}
	if data.Groups, err = s.directory.Groups(); err != nil {
		return data, err
	}
	if data.Chronicles, err = s.directory.Chronicles(); err != nil {
		return data, err
	}
	data.Owner, err = s.directory.Owner()
	return data, err
}

func (s *ShellService) Close(id repositories.SessionID) {
	s.sessions.Delete(id)
	s.log.Debug("Session closed", "session_id", id)
}

func (s *ShellService) Sessions() int {
	return s.sessions.Count()
}
