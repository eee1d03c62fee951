package domain

import "time"

// Group is a group chat summary. LastMessage is denormalized.
type Group struct {
	ID          string
	Name        string
	Avatar      string
	LastMessage string
	UnreadCount uint
	Timestamp   time.Time
}

func (g Group) HasUnread() bool {
	return g.UnreadCount > 0
}
