package session

import (
	"chat-shell/auth"
	"chat-shell/domain"
	"chat-shell/fixtures"
)

// Reduce applies an action to a state and returns the next state.
// Rejected actions return the state unchanged, with no error: an incomplete
// form simply does not submit.
func Reduce(s State, a Action) State {
	switch act := a.(type) {
	case Login:
		return login(s, act)
	case Register:
		return register(s, act)
	case Logout:
		s.CurrentUser = domain.None[domain.User]()
		return s
	case SetView:
		if !s.LoggedIn() {
			return s
		}
		if _, err := domain.ParseView(string(act.View)); err != nil {
			return s
		}
		s.View = act.View
		return s
	case SetSearch:
		s.Search = act.Term
		return s
	case EditForm:
		return editForm(s, act)
	case ToggleRegistering:
		s.Form.Registering = !s.Form.Registering
		return s
	case Submit:
		if s.Form.Registering {
			return register(s, Register{Name: s.Form.Name, Email: s.Form.Email, Password: s.Form.Password})
		}
		return login(s, Login{Name: s.Form.Name, Email: s.Form.Email, Password: s.Form.Password})
	default:
		return s
	}
}

func login(s State, act Login) State {
	if err := auth.ValidateLogin(auth.LoginRequest{Email: act.Email, Password: act.Password}); err != nil {
		return s
	}
	name := act.Name
	if name == "" {
		name = fixtures.DefaultName
	}
	return signIn(s, name, act.Email)
}

func register(s State, act Register) State {
	req := auth.RegisterRequest{Name: act.Name, Email: act.Email, Password: act.Password}
	if err := auth.ValidateRegister(req); err != nil {
		return s
	}
	return signIn(s, act.Name, act.Email)
}

func signIn(s State, name, email string) State {
	s.CurrentUser = domain.Some(domain.User{
		ID:     domain.CurrentUserID,
		Name:   name,
		Email:  email,
		Avatar: fixtures.OwnerAvatar,
		Status: domain.ONLINE,
	})
	s.View = domain.MESSAGES
	s.Form.Password = ""
	return s
}

func editForm(s State, act EditForm) State {
	switch act.Field {
	case NAME:
		s.Form.Name = act.Value
	case EMAIL:
		s.Form.Email = act.Value
	case PASSWORD:
		s.Form.Password = act.Value
	}
	return s
}
