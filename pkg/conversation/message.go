package conversation

import (
	"context"
	"strings"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_sender.go github.com/kasuboski/serialz/pkg/conversation Sender

// Sender delivers messages to a chat
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type Button struct {
	Text string
	Data string
}

// Message is an outgoing chat message. A non-zero EditMessageID replaces that message instead of
// sending a new one.
type Message struct {
	ChatID        int64
	Text          string
	Keyboard      [][]Button
	EditMessageID int
	Markdown      bool
}

// Command describes a slash command the bot understands
type Command struct {
	Name        string
	Description string
}

const (
	CommandStart      = "start"
	CommandHelp       = "help"
	CommandAdd        = "add"
	CommandList       = "list"
	CommandLater      = "later"
	CommandAddLater   = "addlater"
	CommandWatched    = "watched"
	CommandAddWatched = "addwatched"
	CommandUpdate     = "update"
	CommandCancel     = "cancel"
)

// Commands lists the commands advertised in the chat menu
var Commands = []Command{
	{Name: CommandStart, Description: "Start the bot"},
	{Name: CommandHelp, Description: "Show help"},
	{Name: CommandAdd, Description: "Track a series you are watching"},
	{Name: CommandList, Description: "Series you are watching"},
	{Name: CommandUpdate, Description: "Update your progress"},
	{Name: CommandLater, Description: "Series you plan to watch"},
	{Name: CommandAddLater, Description: "Add a series to watch later"},
	{Name: CommandWatched, Description: "Series you have finished"},
	{Name: CommandAddWatched, Description: "Add a series you have already watched"},
	{Name: CommandCancel, Description: "Cancel the current operation"},
}

var commands = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Commands))
	for _, c := range Commands {
		m[c.Name] = struct{}{}
	}
	return m
}()

const (
	episodesPerRow = 5
	maxEpisodes    = 60
)

var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

// EscapeMarkdown escapes text for messages sent with Markdown enabled
func EscapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// Bold wraps s in a bold entity. Markdown entities cannot contain escapes, so text with
// markup characters is escaped and left plain.
func Bold(s string) string {
	if strings.ContainsAny(s, "_*`[") {
		return EscapeMarkdown(s)
	}
	return "*" + s + "*"
}

func button(text, data string) []Button {
	return []Button{{Text: text, Data: data}}
}

func cancelRow() []Button {
	return button("Cancel", string(ActionCancel))
}

func mainMenu() [][]Button {
	return [][]Button{
		{
			{Text: "Add series", Data: CommandData(CommandAdd)},
			{Text: "Watching", Data: CommandData(CommandList)},
		},
		{
			{Text: "Watch later", Data: CommandData(CommandLater)},
			{Text: "Watched", Data: CommandData(CommandWatched)},
		},
		button("Help", CommandData(CommandHelp)),
	}
}

// numberGrid lays out one button per number in rows of perRow
func numberGrid(numbers []int32, perRow int, label func(int32) string, data func(int32) string) [][]Button {
	rows := make([][]Button, 0, len(numbers)/perRow+1)
	var row []Button
	for _, n := range numbers {
		row = append(row, Button{Text: label(n), Data: data(n)})
		if len(row) == perRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return rows
}
