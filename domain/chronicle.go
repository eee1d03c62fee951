package domain

import "time"

// Chronicle is a short-lived shared post, like a story.
type Chronicle struct {
	ID        string
	Author    string
	Content   string
	Avatar    string
	Timestamp time.Time
	IsViewed  bool
}
