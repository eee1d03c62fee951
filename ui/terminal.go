// Package ui draws projection pages on a terminal.
// It observes state through projection.Page and never modifies it.
package ui

import (
	"chat-shell/projection"
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

const (
	dot    = "●"
	marker = "•"
)

type palette struct {
	enabled bool
}

func (p palette) paint(s string, colors ...color.Color) string {
	if !p.enabled || s == "" {
		return s
	}
	return color.New(colors...).Render(s)
}

// Render writes the login form or the active tab of the shell.
func Render(w io.Writer, page projection.Page, colours bool) error {
	p := palette{enabled: colours}
	if !page.LoggedIn {
		return renderLogin(w, page.Login, p)
	}
	return renderShell(w, page.Shell, p)
}

func renderLogin(w io.Writer, login projection.LoginPage, p palette) error {
	fmt.Fprintln(w, p.paint(login.Title, color.OpBold))
	table := newTable(w)
	if login.ShowName {
		table.Append([]string{"Full Name", login.Name})
	}
	table.Append([]string{"Email Address", login.Email})
	table.Append([]string{"Password", "********"})
	table.Render()
	fmt.Fprintf(w, "[ %s ]\n", login.SubmitLabel)
	_, err := fmt.Fprintln(w, p.paint(login.ToggleLabel, color.OpUnderscore))
	return err
}

func renderShell(w io.Writer, shell projection.Shell, p palette) error {
	fmt.Fprintf(w, "%s %s  %s\n",
		p.paint("("+shell.Header.Initials+")", color.FgCyan),
		p.paint(shell.Header.Name, color.OpBold),
		p.paint(shell.Header.Presence, color.FgGreen))
	fmt.Fprintf(w, "Search: %s\n", shell.Search)

	tabs := make([]string, 0, len(shell.Nav))
	for _, item := range shell.Nav {
		if item.Active {
			tabs = append(tabs, p.paint("["+item.Label+"]", color.OpBold, color.FgCyan))
		} else {
			tabs = append(tabs, " "+item.Label+" ")
		}
	}
	fmt.Fprintln(w, strings.Join(tabs, " "))
	fmt.Fprintln(w)
	fmt.Fprintln(w, p.paint(shell.Title, color.OpBold))

	switch {
	case shell.Conversations != nil:
		renderConversations(w, shell.Conversations, p)
	case shell.Groups != nil:
		renderGroups(w, shell.Groups, p)
	case shell.Chronicles != nil:
		renderChronicles(w, shell.Chronicles, p)
	case shell.Profile != nil:
		renderProfile(w, *shell.Profile, p)
	}
	return nil
}

func renderConversations(w io.Writer, rows []projection.ConversationRow, p palette) {
	table := newTable(w)
	table.SetHeader([]string{"", "Name", "Last message", "When"})
	for _, row := range rows {
		status := p.paint(dot, color.FgGray)
		if row.Online {
			status = p.paint(dot, color.FgGreen)
		}
		table.Append([]string{status, row.Name, row.Preview, row.TimeLabel})
	}
	table.Render()
}

func renderGroups(w io.Writer, rows []projection.GroupRow, p palette) {
	table := newTable(w)
	table.SetHeader([]string{"Group", "Last message", "When", "Unread"})
	for _, row := range rows {
		badge := ""
		if row.ShowBadge {
			badge = p.paint(fmt.Sprintf(" %d ", row.Unread), color.BgBlue, color.FgWhite)
		}
		table.Append([]string{row.Name, row.LastMessage, row.TimeLabel, badge})
	}
	table.Render()
}

func renderChronicles(w io.Writer, rows []projection.ChronicleRow, p palette) {
	table := newTable(w)
	table.SetHeader([]string{"", "Author", "Chronicle", "When"})
	for _, row := range rows {
		unviewed := ""
		if row.Unviewed {
			unviewed = p.paint(marker, color.FgBlue)
		}
		table.Append([]string{unviewed, row.Author, row.Content, row.TimeLabel})
	}
	table.Render()
}

func renderProfile(w io.Writer, profile projection.Profile, p palette) {
	fmt.Fprintf(w, "%s %s\n%s\n\n", p.paint("("+profile.Initials+")", color.FgCyan),
		p.paint(profile.Name, color.OpBold), profile.Bio)
	table := newTable(w)
	table.Append([]string{"Email:", profile.Email})
	table.Append([]string{"Phone:", profile.Phone})
	table.Append([]string{"Status:", p.paint(profile.Status, color.FgGreen)})
	table.Render()

	fmt.Fprintln(w)
	fmt.Fprintln(w, p.paint("Account Settings", color.OpBold))
	for _, s := range profile.Settings {
		fmt.Fprintf(w, "[ %s ]\n", s)
	}
	fmt.Fprintf(w, "[ %s ]\n", p.paint(profile.LogOut, color.FgRed))
}

func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}
