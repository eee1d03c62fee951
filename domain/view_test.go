package domain

import (
	"chat-shell/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseView(t *testing.T) {
	req := require.New(t)
	for _, v := range AllViews() {
		parsed, err := ParseView(string(v))
		req.NoError(err)
		req.Equal(v, parsed)
	}

	_, err := ParseView("settings")
	req.ErrorIs(err, errors.ErrUnknownView)

	_, err = ParseView("")
	req.ErrorIs(err, errors.ErrUnknownView)
}

func TestView_Title(t *testing.T) {
	req := require.New(t)
	req.Equal("Messages", MESSAGES.Title())
	req.Equal("Groups", GROUPS.Title())
	req.Equal("Chronicles", CHRONICLES.Title())
	req.Equal("Me", ME.Title())
}

func TestOption(t *testing.T) {
	req := require.New(t)

	none := None[User]()
	req.False(none.IsPresent())
	_, ok := none.Get()
	req.False(ok)
	req.Equal("fallback", none.OrElse(User{Name: "fallback"}).Name)

	some := Some(User{ID: CurrentUserID})
	req.True(some.IsPresent())
	u, ok := some.Get()
	req.True(ok)
	req.Equal(CurrentUserID, u.ID)
}

func TestInitials(t *testing.T) {
	req := require.New(t)
	req.Equal("AC", Initials("Arnold Chirchir"))
	req.Equal("S", Initial("Sarah Johnson"))
	req.Equal("É", Initial("Émile"))
	req.Equal("", Initial(""))
	req.Equal("", Initials("   "))
}

func TestMessage_Involves(t *testing.T) {
	req := require.New(t)
	m := Message{SenderID: "1", ReceiverID: CurrentUserID}
	req.True(m.Involves("1"))
	req.True(m.Involves(CurrentUserID))
	req.False(m.Involves("2"))
}
