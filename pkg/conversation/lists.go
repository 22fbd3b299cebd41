package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/serialz/pkg/storage"
	"github.com/kasuboski/serialz/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/serialz/pkg/storage/sqlite/schema/gen/table"
)

const watchedDateFormat = "2006-01-02"

func (e *Engine) welcome(ctx context.Context, in Update, user *model.User) error {
	name := "there"
	switch {
	case user.FirstName != nil:
		name = *user.FirstName
	case user.Username != nil:
		name = *user.Username
	}

	return e.reply(ctx, in, Message{
		Text: fmt.Sprintf("Hi, %s!\n\nI keep track of the series you watch, the ones you plan to watch "+
			"and the ones you have finished. I will also tell you when new episodes come out.\n\n"+
			"Use the menu button or the buttons below to get started.", name),
		Keyboard: mainMenu(),
	})
}

func (e *Engine) help(ctx context.Context, in Update) error {
	var b strings.Builder
	b.WriteString("Here is what I can do:\n\n")
	for _, c := range Commands {
		fmt.Fprintf(&b, "/%s - %s\n", c.Name, EscapeMarkdown(c.Description))
	}
	b.WriteString("\nYou can add a title right after /add, /addlater or /addwatched to search at once.")

	return e.reply(ctx, in, Message{
		Text:     b.String(),
		Keyboard: mainMenu(),
		Markdown: true,
	})
}

func (e *Engine) showWatching(ctx context.Context, in Update, user *model.User) error {
	tracked, err := e.store.ListTracked(ctx, user.ID, storage.ListWatching)
	if err != nil {
		return err
	}

	if len(tracked) == 0 {
		return e.reply(ctx, in, Message{
			Text: "You are not watching any series yet. Use /add or the button below.",
			Keyboard: [][]Button{
				button("Add series", CommandData(CommandAdd)),
				button("Help", CommandData(CommandHelp)),
			},
		})
	}

	if err := e.reply(ctx, in, Message{Text: "*Series you are watching:*", Markdown: true}); err != nil {
		return err
	}

	for _, t := range tracked {
		err := e.send(ctx, in, Message{
			Text: fmt.Sprintf("• %s%s\n  Now at season %d, episode %d",
				Bold(t.Series.Name), yearSuffix(t.Series.Year), t.CurrentSeason, t.CurrentEpisode),
			Markdown: true,
			Keyboard: [][]Button{{
				{Text: "Watched", Data: Data(ActionMarkWatched, t.Series.ID)},
				{Text: "Later", Data: Data(ActionMoveWatchlist, t.Series.ID)},
				{Text: "Remove", Data: Data(ActionRemoveSeries, t.Series.ID)},
			}},
		})
		if err != nil {
			return err
		}
	}

	return e.send(ctx, in, Message{
		Text:     "*Actions:*",
		Markdown: true,
		Keyboard: [][]Button{
			{
				{Text: "Add series", Data: CommandData(CommandAdd)},
				{Text: "Update progress", Data: CommandData(CommandUpdate)},
			},
			{
				{Text: "Watched series", Data: CommandData(CommandWatched)},
				{Text: "Help", Data: CommandData(CommandHelp)},
			},
		},
	})
}

func (e *Engine) showWatchlist(ctx context.Context, in Update, user *model.User) error {
	tracked, err := e.store.ListTracked(ctx, user.ID, storage.ListWatchlist)
	if err != nil {
		return err
	}

	if len(tracked) == 0 {
		return e.reply(ctx, in, Message{
			Text: "Your watch later list is empty. Use /addlater to add series you plan to watch.",
			Keyboard: [][]Button{
				button("Add to watch later", CommandData(CommandAddLater)),
				button("Watching", CommandData(CommandList)),
			},
		})
	}

	if err := e.reply(ctx, in, Message{Text: "*Your watch later list:*", Markdown: true}); err != nil {
		return err
	}

	for _, t := range tracked {
		err := e.send(ctx, in, Message{
			Text:     fmt.Sprintf("• %s%s", Bold(t.Series.Name), yearSuffix(t.Series.Year)),
			Markdown: true,
			Keyboard: [][]Button{{
				{Text: "Start watching", Data: Data(ActionMoveWatching, t.Series.ID)},
				{Text: "Remove", Data: Data(ActionRemoveSeries, t.Series.ID)},
			}},
		})
		if err != nil {
			return err
		}
	}

	return e.send(ctx, in, Message{
		Text:     "*Actions:*",
		Markdown: true,
		Keyboard: [][]Button{
			{
				{Text: "Add to watch later", Data: CommandData(CommandAddLater)},
				{Text: "Watching", Data: CommandData(CommandList)},
			},
			button("Help", CommandData(CommandHelp)),
		},
	})
}

func (e *Engine) showWatched(ctx context.Context, in Update, user *model.User) error {
	tracked, err := e.store.ListTracked(ctx, user.ID, storage.ListWatched)
	if err != nil {
		return err
	}

	keyboard := [][]Button{
		button("Add watched series", CommandData(CommandAddWatched)),
		button("Watching", CommandData(CommandList)),
	}

	if len(tracked) == 0 {
		return e.reply(ctx, in, Message{
			Text:     "You have not finished any series yet. Use /addwatched to add the ones you have seen.",
			Keyboard: keyboard,
		})
	}

	var b strings.Builder
	b.WriteString("*Series you have watched:*\n\n")
	for _, t := range tracked {
		finished := "unknown date"
		if t.WatchedDate != nil {
			finished = t.WatchedDate.Format(watchedDateFormat)
		}
		fmt.Fprintf(&b, "• %s%s\n  Finished: %s\n\n", Bold(t.Series.Name), yearSuffix(t.Series.Year), finished)
	}

	return e.reply(ctx, in, Message{
		Text:     strings.TrimRight(b.String(), "\n"),
		Markdown: true,
		Keyboard: append(keyboard, button("Help", CommandData(CommandHelp))),
	})
}

func (e *Engine) showUpdateMenu(ctx context.Context, in Update, user *model.User) error {
	tracked, err := e.store.ListTracked(ctx, user.ID, storage.ListWatching)
	if err != nil {
		return err
	}

	if len(tracked) == 0 {
		return e.reply(ctx, in, Message{
			Text:     "You are not watching any series yet. Use /add to start tracking one.",
			Keyboard: [][]Button{button("Add series", CommandData(CommandAdd))},
		})
	}

	keyboard := make([][]Button, 0, len(tracked)+1)
	for _, t := range tracked {
		label := fmt.Sprintf("%s (S%dE%d)", t.Series.Name, t.CurrentSeason, t.CurrentEpisode)
		keyboard = append(keyboard, button(label, Data(ActionUpdate, t.Series.ID)))
	}
	keyboard = append(keyboard, cancelRow())

	return e.reply(ctx, in, Message{Text: "Which series do you want to update?", Keyboard: keyboard})
}

// moveToWatching starts watching a series from the watch later list and asks for the season
func (e *Engine) moveToWatching(ctx context.Context, in Update, user *model.User, seriesID int32) error {
	e.endSession(in.ChatID)

	moved, err := e.store.MoveToWatching(ctx, user.ID, seriesID)
	if err != nil {
		return err
	}
	if !moved {
		return e.reply(ctx, in, Message{Text: "That series is not in your lists anymore."})
	}

	series, err := e.store.GetSeries(ctx, table.Series.ID.EQ(sqlite.Int32(seriesID)))
	if err != nil {
		return err
	}

	if err := e.reply(ctx, in, Message{Text: fmt.Sprintf("%q moved to your watching list.", series.Name)}); err != nil {
		return err
	}

	s := e.startSession(in.ChatID, storage.ListWatching)
	s.SeriesID = seriesID
	if err := e.advance(in.ChatID, s, StateSelectingSeason); err != nil {
		return err
	}

	// the confirmation replaced the pressed message, the prompt goes below it
	in.Callback = false
	return e.promptSeason(ctx, in, series, nil)
}

var listActionReplies = map[Action]string{
	ActionMoveWatchlist: "%q moved to your watch later list.",
	ActionMarkWatched:   "%q marked as watched.",
	ActionRemoveSeries:  "%q removed from your lists.",
}

func (e *Engine) listAction(ctx context.Context, in Update, user *model.User, action Action, seriesID int32) error {
	series, err := e.store.GetSeries(ctx, table.Series.ID.EQ(sqlite.Int32(seriesID)))
	if errors.Is(err, storage.ErrNotFound) {
		return e.reply(ctx, in, Message{Text: "That series is not in your lists anymore."})
	}
	if err != nil {
		return err
	}

	var ok bool
	switch action {
	case ActionMoveWatchlist:
		ok, err = e.store.MoveToWatchlist(ctx, user.ID, seriesID)
	case ActionMarkWatched:
		ok, err = e.store.MarkWatched(ctx, user.ID, seriesID)
	case ActionRemoveSeries:
		ok, err = e.store.RemoveTracking(ctx, user.ID, seriesID)
	default:
		return errStale
	}
	if err != nil {
		return err
	}
	if !ok {
		return e.reply(ctx, in, Message{Text: "That series is not in your lists anymore."})
	}

	return e.reply(ctx, in, Message{Text: fmt.Sprintf(listActionReplies[action], series.Name)})
}
