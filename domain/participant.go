// Package domain contains core concepts of the chat shell.
// This file defines User and Owner entities.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"strings"
	"unicode/utf8"
)

type Status string

const (
	ONLINE  Status = "online"
	OFFLINE Status = "offline"
)

type User struct {
	ID     string
	Name   string
	Email  string
	Avatar string
	Status Status
}

func (u User) IsOnline() bool {
	return u.Status == ONLINE
}

// Owner is the single hard-coded profile shown on the "Me" tab.
type Owner struct {
	Name   string
	Email  string
	Phone  string
	Status string
	Bio    string
	Avatar string
}

// Initial returns the first character of a name, used as avatar fallback.
func Initial(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 || r == utf8.RuneError {
		return ""
	}
	return string(r)
}

// Initials returns the first character of every word: "Arnold Chirchir" gives "AC".
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		b.WriteString(Initial(word))
	}
	return b.String()
}
