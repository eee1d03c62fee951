package session

import (
	"chat-shell/domain"
	"chat-shell/fixtures"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReduce_Login(t *testing.T) {
	tests := []struct {
		name     string
		action   Login
		loggedIn bool
		userName string
	}{
		{"Email and password", Login{Email: "a@b.c", Password: "pw"}, true, fixtures.DefaultName},
		{"Provided name is kept", Login{Name: "Jane", Email: "a@b.c", Password: "pw"}, true, "Jane"},
		{"Missing email", Login{Password: "pw"}, false, ""},
		{"Missing password", Login{Email: "a@b.c"}, false, ""},
		{"Nothing", Login{}, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			next := Reduce(New(), tt.action)
			req.Equal(tt.loggedIn, next.LoggedIn())
			if !tt.loggedIn {
				req.Equal(New(), next)
				return
			}
			user, ok := next.CurrentUser.Get()
			req.True(ok)
			req.Equal(domain.CurrentUserID, user.ID)
			req.Equal(tt.action.Email, user.Email)
			req.Equal(tt.userName, user.Name)
			req.Equal(fixtures.OwnerAvatar, user.Avatar)
			req.Equal(domain.ONLINE, user.Status)
		})
	}
}

func TestReduce_Register(t *testing.T) {
	tests := []struct {
		name     string
		action   Register
		loggedIn bool
	}{
		{"All fields", Register{"Jane", "jane@example.com", "pw"}, true},
		{"Missing name", Register{"", "jane@example.com", "pw"}, false},
		{"Missing email", Register{"Jane", "", "pw"}, false},
		{"Missing password", Register{"Jane", "jane@example.com", ""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			next := Reduce(New(), tt.action)
			req.Equal(tt.loggedIn, next.LoggedIn())
			if tt.loggedIn {
				user, _ := next.CurrentUser.Get()
				req.Equal("Jane", user.Name)
				req.Equal("jane@example.com", user.Email)
			}
		})
	}
}

func TestReduce_Logout(t *testing.T) {
	req := require.New(t)
	state := Reduce(New(), Login{Email: "a@b.c", Password: "pw"})
	state = Reduce(state, SetView{View: domain.GROUPS})
	state = Reduce(state, Logout{})

	req.False(state.LoggedIn())
	_, ok := state.CurrentUser.Get()
	req.False(ok)

	// The next login starts on the messages tab again.
	state = Reduce(state, Login{Email: "x@y.z", Password: "pw"})
	req.Equal(domain.MESSAGES, state.View)
	user, _ := state.CurrentUser.Get()
	req.Equal("x@y.z", user.Email)
}

func TestReduce_SetView(t *testing.T) {
	req := require.New(t)
	state := New()
	req.Equal(domain.MESSAGES, state.View)

	// Ignored while logged out.
	req.Equal(domain.MESSAGES, Reduce(state, SetView{View: domain.ME}).View)

	state = Reduce(state, Login{Email: "a@b.c", Password: "pw"})
	req.Equal(domain.MESSAGES, state.View)

	state = Reduce(state, SetView{View: domain.GROUPS})
	req.Equal(domain.GROUPS, state.View)

	state = Reduce(state, SetView{View: domain.View("settings")})
	req.Equal(domain.GROUPS, state.View)

	for _, v := range domain.AllViews() {
		req.Equal(v, Reduce(state, SetView{View: v}).View)
	}
}

func TestReduce_Form(t *testing.T) {
	req := require.New(t)
	state := New()
	state = Reduce(state, EditForm{Field: EMAIL, Value: "a@b.c"})
	req.False(Reduce(state, Submit{}).LoggedIn())

	state = Reduce(state, EditForm{Field: PASSWORD, Value: "pw"})
	req.Equal(Form{Email: "a@b.c", Password: "pw"}, state.Form)

	state = Reduce(state, ToggleRegistering{})
	req.True(state.Form.Registering)
	// Register mode needs a name too.
	req.False(Reduce(state, Submit{}).LoggedIn())

	state = Reduce(state, EditForm{Field: NAME, Value: "Jane"})
	state = Reduce(state, Submit{})
	req.True(state.LoggedIn())
	req.Empty(state.Form.Password)
	user, _ := state.CurrentUser.Get()
	req.Equal("Jane", user.Name)

	state = Reduce(state, EditForm{Field: Field("age"), Value: "12"})
	req.Equal("Jane", state.Form.Name)
}

func TestReduce_SubmitLoginUsesFormName(t *testing.T) {
	req := require.New(t)
	state := New()
	state = Reduce(state, EditForm{Field: EMAIL, Value: "a@b.c"})
	state = Reduce(state, EditForm{Field: PASSWORD, Value: "pw"})
	state = Reduce(state, Submit{})
	user, ok := state.CurrentUser.Get()
	req.True(ok)
	req.Equal(fixtures.DefaultName, user.Name)
}

func TestReduce_SearchIsStoredOnly(t *testing.T) {
	req := require.New(t)
	state := Reduce(New(), Login{Email: "a@b.c", Password: "pw"})
	state = Reduce(state, SetSearch{Term: "sarah"})
	req.Equal("sarah", state.Search)
	req.Equal(domain.MESSAGES, state.View)
}

type unknownAction struct{}

func (unknownAction) Kind() string { return "unknown" }

func TestReduce_UnknownAction(t *testing.T) {
	require.Equal(t, New(), Reduce(New(), unknownAction{}))
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	req := require.New(t)
	before := New()
	before.Form.Email = "a@b.c"
	before.Form.Password = "pw"
	_ = Reduce(before, Submit{})
	req.False(before.LoggedIn())
	req.Equal("pw", before.Form.Password)
}
