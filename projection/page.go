// Package projection turns a session state and the sample data into render data.
// Both the web shell and the terminal viewer draw from these models.
// Does not mutate the state or the data.
package projection

import (
	"chat-shell/domain"
	"chat-shell/fixtures"
	"chat-shell/session"
	"time"

	"github.com/samber/lo"
)

// Page is either the login form or the shell, depending on LoggedIn.
type Page struct {
	LoggedIn bool
	Login    LoginPage
	Shell    Shell
}

type LoginPage struct {
	Title       string
	SubmitLabel string
	ToggleLabel string
	ShowName    bool
	Name        string
	Email       string
}

type Header struct {
	Name     string
	Avatar   string
	Initials string
	Presence string
}

type NavItem struct {
	View   domain.View
	Label  string
	Active bool
}

type Shell struct {
	Header Header
	Nav    []NavItem
	Title  string
	Active domain.View
	Search string

	// Only the rows of the active tab are filled.
	Conversations []ConversationRow
	Groups        []GroupRow
	Chronicles    []ChronicleRow
	Profile       *Profile
}

type ConversationRow struct {
	UserID    string
	Name      string
	Avatar    string
	Initial   string
	Online    bool
	Preview   string
	TimeLabel string
}

type GroupRow struct {
	ID          string
	Name        string
	Avatar      string
	Initial     string
	LastMessage string
	TimeLabel   string
	Unread      uint
	ShowBadge   bool
}

type ChronicleRow struct {
	ID        string
	Author    string
	Avatar    string
	Initial   string
	Content   string
	TimeLabel string
	Unviewed  bool
}

type Profile struct {
	Name     string
	Initials string
	Avatar   string
	Bio      string
	Email    string
	Phone    string
	Status   string
	Settings []string
	LogOut   string
}

// AccountSettings are displayed on the Me tab and do nothing.
var AccountSettings = []string{"Edit Profile", "Privacy Settings", "Notification Preferences"}

func Build(state session.State, data fixtures.Dataset, now time.Time) Page {
	user, ok := state.CurrentUser.Get()
	if !ok {
		return Page{Login: buildLogin(state.Form)}
	}
	return Page{LoggedIn: true, Shell: buildShell(state, user, data, now)}
}

func buildLogin(form session.Form) LoginPage {
	if form.Registering {
		return LoginPage{
			Title:       "Create Account",
			SubmitLabel: "Create Account",
			ToggleLabel: "Already have an account? Sign in",
			ShowName:    true,
			Name:        form.Name,
			Email:       form.Email,
		}
	}
	return LoginPage{
		Title:       "Welcome Back",
		SubmitLabel: "Sign In",
		ToggleLabel: "Need an account? Sign up",
		Name:        form.Name,
		Email:       form.Email,
	}
}

func buildShell(state session.State, user domain.User, data fixtures.Dataset, now time.Time) Shell {
	shell := Shell{
		Header: Header{
			Name:     user.Name,
			Avatar:   user.Avatar,
			// The avatar fallback always shows the owner's initials.
			Initials: domain.Initials(fixtures.DefaultName),
			Presence: "Online",
		},
		Nav: lo.Map(domain.AllViews(), func(v domain.View, _ int) NavItem {
			return NavItem{View: v, Label: v.Title(), Active: v == state.View}
		}),
		Title:  state.View.Title(),
		Active: state.View,
		Search: state.Search,
	}

	switch state.View {
	case domain.MESSAGES:
		shell.Conversations = Conversations(data.Users, data.Messages, now)
	case domain.GROUPS:
		shell.Groups = Groups(data.Groups, now)
	case domain.CHRONICLES:
		shell.Chronicles = Chronicles(data.Chronicles, now)
	case domain.ME:
		shell.Profile = lo.ToPtr(BuildProfile(data.Owner))
	}
	return shell
}

// Conversations lists one row per user. The preview is the first message
// involving the user; every row shows the age of the first message overall.
func Conversations(users []domain.User, messages []domain.Message, now time.Time) []ConversationRow {
	label := ""
	if len(messages) > 0 {
		label = domain.FormatTime(messages[0].Timestamp, now)
	}
	return lo.Map(users, func(u domain.User, _ int) ConversationRow {
		preview, _ := lo.Find(messages, func(m domain.Message) bool { return m.Involves(u.ID) })
		return ConversationRow{
			UserID:    u.ID,
			Name:      u.Name,
			Avatar:    u.Avatar,
			Initial:   domain.Initial(u.Name),
			Online:    u.IsOnline(),
			Preview:   preview.Content,
			TimeLabel: label,
		}
	})
}

func Groups(groups []domain.Group, now time.Time) []GroupRow {
	return lo.Map(groups, func(g domain.Group, _ int) GroupRow {
		return GroupRow{
			ID:          g.ID,
			Name:        g.Name,
			Avatar:      g.Avatar,
			Initial:     domain.Initial(g.Name),
			LastMessage: g.LastMessage,
			TimeLabel:   domain.FormatTime(g.Timestamp, now),
			Unread:      g.UnreadCount,
			ShowBadge:   g.HasUnread(),
		}
	})
}

func Chronicles(chronicles []domain.Chronicle, now time.Time) []ChronicleRow {
	return lo.Map(chronicles, func(c domain.Chronicle, _ int) ChronicleRow {
		return ChronicleRow{
			ID:        c.ID,
			Author:    c.Author,
			Avatar:    c.Avatar,
			Initial:   domain.Initial(c.Author),
			Content:   c.Content,
			TimeLabel: domain.FormatTime(c.Timestamp, now),
			Unviewed:  !c.IsViewed,
		}
	})
}

func BuildProfile(owner domain.Owner) Profile {
	return Profile{
		Name:     owner.Name,
		Initials: domain.Initials(owner.Name),
		Avatar:   owner.Avatar,
		Bio:      owner.Bio,
		Email:    owner.Email,
		Phone:    owner.Phone,
		Status:   owner.Status,
		Settings: AccountSettings,
		LogOut:   "Log Out",
	}
}
