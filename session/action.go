package session

import "chat-shell/domain"

type Action interface {
	Kind() string
}

// Login succeeds whenever email and password are non-empty. Name may be empty.
type Login struct {
	Name     string
	Email    string
	Password string
}

type Register struct {
	Name     string
	Email    string
	Password string
}

type Logout struct{}

type SetView struct {
	View domain.View
}

type SetSearch struct {
	Term string
}

type Field string

const (
	NAME     Field = "name"
	EMAIL    Field = "email"
	PASSWORD Field = "password"
)

type EditForm struct {
	Field Field
	Value string
}

type ToggleRegistering struct{}

// Submit sends the form as a Login or a Register depending on the form mode.
type Submit struct{}

func (Login) Kind() string             { return "login" }
func (Register) Kind() string          { return "register" }
func (Logout) Kind() string            { return "logout" }
func (SetView) Kind() string           { return "set_view" }
func (SetSearch) Kind() string         { return "set_search" }
func (EditForm) Kind() string          { return "edit_form" }
func (ToggleRegistering) Kind() string { return "toggle_registering" }
func (Submit) Kind() string            { return "submit" }
