// Package session holds the view state of one shell user.
// State is an immutable snapshot; Reduce is the only way to move between snapshots.
// It never reads or writes the sample data.
package session

import "chat-shell/domain"

// Form mirrors the login/register inputs.
type Form struct {
	Registering bool
	Name        string
	Email       string
	Password    string
}

type State struct {
	CurrentUser domain.Option[domain.User]
	View        domain.View
	// Search is collected but never applied to any list.
	Search string
	Form   Form
}

// New returns the logged-out starting state.
func New() State {
	return State{
		CurrentUser: domain.None[domain.User](),
		View:        domain.MESSAGES,
	}
}

func (s State) LoggedIn() bool {
	return s.CurrentUser.IsPresent()
}
