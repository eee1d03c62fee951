package domain

import (
	"chat-shell/errors"
	"fmt"
)

// View is the active tab of the shell. Exactly one is active at a time.
type View string

const (
	MESSAGES   View = "messages"
	GROUPS     View = "groups"
	CHRONICLES View = "chronicles"
	ME         View = "me"
)

var titles = map[View]string{
	MESSAGES:   "Messages",
	GROUPS:     "Groups",
	CHRONICLES: "Chronicles",
	ME:         "Me",
}

// AllViews returns the views in navigation order.
func AllViews() []View {
	return []View{MESSAGES, GROUPS, CHRONICLES, ME}
}

func ParseView(s string) (View, error) {
	v := View(s)
	if _, ok := titles[v]; !ok {
		return "", fmt.Errorf("%w: %q", errors.ErrUnknownView, s)
	}
	return v, nil
}

func (v View) Title() string {
	return titles[v]
}

func (v View) String() string {
	return string(v)
}
