// Package domain contains core concepts of the chat shell.
// This file defines direct Message records.
// Messages are immutable sample data: read flags are display-only.
package domain

import "time"

// CurrentUserID is the id every logged-in user gets.
const CurrentUserID = "current"

// Message represents a direct message between two users.
// There is no conversation entity: membership is inferred from SenderID and ReceiverID.
type Message struct {
	ID         string
	Content    string
	SenderID   string
	ReceiverID string
	Timestamp  time.Time
	IsRead     bool
}

// Involves reports whether the user sent or received the message.
func (m Message) Involves(userID string) bool {
	return m.SenderID == userID || m.ReceiverID == userID
}
