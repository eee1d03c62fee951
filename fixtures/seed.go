// Package fixtures holds the fixed sample data shown by the shell.
// The seed is created once at startup and never modified.
package fixtures

import (
	"chat-shell/domain"
	"time"
)

const avatarService = "https://placeholder-image-service.onrender.com/image/"

// DefaultName is used when a login form carries no name.
const DefaultName = "Arnold Chirchir"

// OwnerAvatar is given to every logged-in user.
const OwnerAvatar = avatarService + "128x128?prompt=Professional headshot of a software developer with friendly smile&id=f911da43-33b5-4bde-85b7-4e2c12160226"

type Dataset struct {
	Users      []domain.User
	Messages   []domain.Message
	Groups     []domain.Group
	Chronicles []domain.Chronicle
	Owner      domain.Owner
}

// Seed builds the dataset with timestamps relative to now.
func Seed(now time.Time) Dataset {
	return Dataset{
		Users:      users(),
		Messages:   messages(now),
		Groups:     groups(now),
		Chronicles: chronicles(now),
		Owner:      Owner(),
	}
}

func Owner() domain.Owner {
	return domain.Owner{
		Name:   DefaultName,
		Email:  "arnoldkipruto193@gmail.com",
		Phone:  "+254 712 345 678",
		Status: "Available",
		Bio:    "Software Developer & Entrepreneur",
		Avatar: OwnerAvatar,
	}
}

func avatar(prompt string) string {
	return avatarService + "64x64?prompt=" + prompt + "&id=f911da43-33b5-4bde-85b7-4e2c12160226"
}

func users() []domain.User {
	return []domain.User{
		{
			ID:     "1",
			Name:   "Sarah Johnson",
			Email:  "sarah@example.com",
			Avatar: avatar("Professional headshot of a young woman with curly brown hair and friendly smile"),
			Status: domain.ONLINE,
		},
		{
			ID:     "2",
			Name:   "Mike Chen",
			Email:  "mike@example.com",
			Avatar: avatar("Asian man with glasses and professional attire in office setting"),
			Status: domain.ONLINE,
		},
		{
			ID:     "3",
			Name:   "Emma Davis",
			Email:  "emma@example.com",
			Avatar: avatar("Blonde woman with blue eyes and warm smile in casual setting"),
			Status: domain.OFFLINE,
		},
	}
}

func messages(now time.Time) []domain.Message {
	return []domain.Message{
		{
			ID:         "1",
			Content:    "Hey! How are you doing today?",
			SenderID:   "1",
			ReceiverID: domain.CurrentUserID,
			Timestamp:  now.Add(-5 * time.Minute),
			IsRead:     true,
		},
		{
			ID:         "2",
			Content:    "I'm doing great! Just finished the project",
			SenderID:   domain.CurrentUserID,
			ReceiverID: "1",
			Timestamp:  now.Add(-4 * time.Minute),
			IsRead:     true,
		},
		{
			ID:         "3",
			Content:    "That's awesome! Want to grab coffee later?",
			SenderID:   "1",
			ReceiverID: domain.CurrentUserID,
			Timestamp:  now.Add(-2 * time.Minute),
			IsRead:     false,
		},
	}
}

func groups(now time.Time) []domain.Group {
	return []domain.Group{
		{
			ID:          "1",
			Name:        "Family Group",
			Avatar:      avatar("Family silhouette with parents and children holding hands"),
			LastMessage: "Mom: Dinner at 7 PM tonight!",
			UnreadCount: 3,
			Timestamp:   now.Add(-time.Hour),
		},
		{
			ID:          "2",
			Name:        "Work Team",
			Avatar:      avatar("Team of professionals collaborating around a table"),
			LastMessage: "John: Meeting moved to 2 PM",
			UnreadCount: 0,
			Timestamp:   now.Add(-2 * time.Hour),
		},
		{
			ID:          "3",
			Name:        "College Friends",
			Avatar:      avatar("Group of diverse friends laughing together on campus"),
			LastMessage: "Alex: Who's coming to the reunion?",
			UnreadCount: 12,
			Timestamp:   now.Add(-24 * time.Hour),
		},
	}
}

func chronicles(now time.Time) []domain.Chronicle {
	return []domain.Chronicle{
		{
			ID:        "1",
			Author:    "Sarah Johnson",
			Content:   "Beautiful sunset at the beach today! 🌅",
			Avatar:    avatar("Sunset over ocean with vibrant orange and pink sky"),
			Timestamp: now.Add(-3 * time.Hour),
			IsViewed:  false,
		},
		{
			ID:        "2",
			Author:    "Mike Chen",
			Content:   "Just completed my first marathon! 🏃‍♂️",
			Avatar:    avatar("Runner crossing finish line with arms raised in victory"),
			Timestamp: now.Add(-12 * time.Hour),
			IsViewed:  true,
		},
		{
			ID:        "3",
			Author:    "Emma Davis",
			Content:   "New coffee shop discovery! Best latte ever ☕",
			Avatar:    avatar("Artistic latte with heart design in cozy coffee shop"),
			Timestamp: now.Add(-24 * time.Hour),
			IsViewed:  false,
		},
	}
}
