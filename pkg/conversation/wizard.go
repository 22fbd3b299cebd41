package conversation

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/serialz/pkg/catalog"
	"github.com/kasuboski/serialz/pkg/storage"
	"github.com/kasuboski/serialz/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/serialz/pkg/storage/sqlite/schema/gen/table"
)

const seasonsPerRow = 2

var addPrompts = map[storage.ListKind]string{
	storage.ListWatching:  "Send me the title of the series you are watching.",
	storage.ListWatchlist: "Send me the title of the series you want to watch later.",
	storage.ListWatched:   "Send me the title of the series you have already watched.",
}

// startAdd opens the add wizard for a list. A non-empty query is searched right away.
func (e *Engine) startAdd(ctx context.Context, in Update, flow storage.ListKind, query string) error {
	s := e.startSession(in.ChatID, flow)
	if err := e.advance(in.ChatID, s, StateSelectingSeries); err != nil {
		return err
	}

	if query != "" {
		return e.search(ctx, in, query)
	}

	return e.reply(ctx, in, Message{Text: addPrompts[flow]})
}

func (e *Engine) search(ctx context.Context, in Update, query string) error {
	if query == "" {
		return e.reply(ctx, in, Message{Text: "Please send me a title to search for."})
	}

	results := e.catalog.Search(ctx, query)

	keyboard := make([][]Button, 0, len(results)+2)
	for _, r := range results {
		keyboard = append(keyboard, button(r.Name+yearSuffix(r.Year), Data(ActionSeries, r.ID)))
	}
	keyboard = append(keyboard,
		button("Add manually (not in the list)", string(ActionManualAdd)),
		cancelRow(),
	)

	text := "Here is what I found. Pick a series or add it manually:"
	if len(results) == 0 {
		text = "I could not find a series with that title. Do you want to add it manually?"
	}

	return e.reply(ctx, in, Message{Text: text, Keyboard: keyboard})
}

// selectSeries stores the picked search result and tracks it in the session's list.
// When the details lookup fails the locally stored row for the same tmdb id is used.
func (e *Engine) selectSeries(ctx context.Context, in Update, user *model.User, s *Session, tmdbID int32) error {
	s.TmdbID = tmdbID

	details, found := e.catalog.Details(ctx, tmdbID)
	if !found {
		series, err := e.store.GetSeries(ctx, table.Series.TmdbID.EQ(sqlite.Int32(tmdbID)))
		if errors.Is(err, storage.ErrNotFound) {
			e.endSession(in.ChatID)
			return e.reply(ctx, in, Message{Text: "Sorry, I could not load that series. Please try again later."})
		}
		if err != nil {
			return err
		}

		return e.track(ctx, in, user, s, series, nil)
	}

	row := model.Series{
		TmdbID: &details.ID,
		Name:   details.Name,
		Year:   details.Year,
	}
	if details.TotalSeasons > 0 {
		row.TotalSeasons = &details.TotalSeasons
	}

	series, err := e.store.UpsertSeries(ctx, row)
	if err != nil {
		return err
	}

	return e.track(ctx, in, user, s, series, details)
}

func (e *Engine) manualName(ctx context.Context, in Update, s *Session, text string) error {
	if text == "" {
		return e.reply(ctx, in, Message{Text: "Please send me the title of the series."})
	}

	s.ManualName = text
	if err := e.advance(in.ChatID, s, StateManualYear); err != nil {
		return err
	}

	return e.reply(ctx, in, Message{Text: "What year did it premiere? Send 0 if you don't know."})
}

func (e *Engine) manualYear(ctx context.Context, in Update, s *Session, text string) error {
	year, ok := parseNumber(text)
	if !ok || year < 0 {
		return e.reply(ctx, in, Message{Text: "Please send the year as a number, or 0 if you don't know it."})
	}

	s.ManualYear = nil
	if year > 0 {
		s.ManualYear = &year
	}
	if err := e.advance(in.ChatID, s, StateManualSeasons); err != nil {
		return err
	}

	return e.reply(ctx, in, Message{Text: "How many seasons does it have?"})
}

func (e *Engine) manualSeasons(ctx context.Context, in Update, user *model.User, s *Session, text string) error {
	seasons, ok := parseNumber(text)
	if !ok || seasons <= 0 {
		return e.reply(ctx, in, Message{Text: "Please send the number of seasons, at least 1."})
	}

	id := ManualID(s.ManualName)
	series, err := e.store.UpsertSeries(ctx, model.Series{
		TmdbID:       &id,
		Name:         s.ManualName,
		Year:         s.ManualYear,
		TotalSeasons: &seasons,
	})
	if err != nil {
		return err
	}

	return e.track(ctx, in, user, s, series, nil)
}

// track puts the series in the session's list. Only the watching list continues to progress
// selection.
func (e *Engine) track(ctx context.Context, in Update, user *model.User, s *Session, series *model.Series, details *catalog.SeriesDetails) error {
	switch s.Flow {
	case storage.ListWatched:
		if _, err := e.store.MarkWatchedDirectly(ctx, user.ID, series.ID); err != nil {
			return err
		}
		e.endSession(in.ChatID)
		return e.reply(ctx, in, Message{Text: fmt.Sprintf("%q was added to your watched series.", series.Name)})
	case storage.ListWatchlist:
		if _, err := e.store.TrackSeries(ctx, user.ID, series.ID, 1, 0, storage.ListWatchlist); err != nil {
			return err
		}
		e.endSession(in.ChatID)
		return e.reply(ctx, in, Message{Text: fmt.Sprintf("%q was added to your watch later list.", series.Name)})
	}

	if _, err := e.store.TrackSeries(ctx, user.ID, series.ID, 1, 0, storage.ListWatching); err != nil {
		return err
	}

	s.SeriesID = series.ID
	if err := e.advance(in.ChatID, s, StateSelectingSeason); err != nil {
		return err
	}

	return e.promptSeason(ctx, in, series, details)
}

// seasonNumbers prefers the provider's season list and falls back to the stored season count
func (e *Engine) seasonNumbers(ctx context.Context, series *model.Series, details *catalog.SeriesDetails) []int32 {
	if details == nil && series.TmdbID != nil && *series.TmdbID > 0 {
		if d, ok := e.catalog.Details(ctx, *series.TmdbID); ok {
			details = d
		}
	}

	if details != nil {
		if numbers := details.SeasonNumbers(); len(numbers) > 0 {
			return numbers
		}
	}

	var numbers []int32
	if series.TotalSeasons != nil {
		for n := int32(1); n <= *series.TotalSeasons; n++ {
			numbers = append(numbers, n)
		}
	}
	return numbers
}

func (e *Engine) promptSeason(ctx context.Context, in Update, series *model.Series, details *catalog.SeriesDetails) error {
	keyboard := numberGrid(
		e.seasonNumbers(ctx, series, details),
		seasonsPerRow,
		func(n int32) string { return fmt.Sprintf("Season %d", n) },
		func(n int32) string { return Data(ActionSeason, series.ID, n) },
	)
	keyboard = append(keyboard,
		button("Enter season manually", Data(ActionManualSeason, series.ID)),
		cancelRow(),
	)

	return e.reply(ctx, in, Message{
		Text:     fmt.Sprintf("%s\nWhich season are you watching?", Bold(series.Name)),
		Keyboard: keyboard,
		Markdown: true,
	})
}

func (e *Engine) enterSeason(ctx context.Context, in Update, s *Session, text string) error {
	season, ok := parseNumber(text)
	if !ok || season <= 0 {
		return e.reply(ctx, in, Message{Text: "Please send a season number greater than 0."})
	}

	return e.chooseSeason(ctx, in, s, s.SeriesID, season)
}

func (e *Engine) chooseSeason(ctx context.Context, in Update, s *Session, seriesID int32, season int32) error {
	series, err := e.store.GetSeries(ctx, table.Series.ID.EQ(sqlite.Int32(seriesID)))
	if err != nil {
		return err
	}

	s.SeriesID = seriesID
	s.Season = season
	if err := e.advance(in.ChatID, s, StateSelectingEpisode); err != nil {
		return err
	}

	var episodes []int32
	if series.TmdbID != nil && *series.TmdbID > 0 {
		if details, ok := e.catalog.Season(ctx, *series.TmdbID, season); ok {
			for _, ep := range details.Episodes {
				if len(episodes) == maxEpisodes {
					break
				}
				episodes = append(episodes, ep.Number)
			}
		}
	}

	keyboard := numberGrid(
		episodes,
		episodesPerRow,
		func(n int32) string { return fmt.Sprint(n) },
		func(n int32) string { return Data(ActionEpisode, seriesID, season, n) },
	)
	keyboard = append(keyboard,
		button("Enter episode manually", Data(ActionManualEpisode, seriesID, season)),
		cancelRow(),
	)

	return e.reply(ctx, in, Message{
		Text:     fmt.Sprintf("%s, season %d\nWhich episode did you stop at?", Bold(series.Name), season),
		Keyboard: keyboard,
		Markdown: true,
	})
}

func (e *Engine) enterEpisode(ctx context.Context, in Update, user *model.User, s *Session, text string) error {
	episode, ok := parseNumber(text)
	if !ok || episode < 0 {
		return e.reply(ctx, in, Message{Text: "Please send the episode number, 0 or more."})
	}

	return e.saveProgress(ctx, in, user, s.SeriesID, s.Season, episode)
}

func (e *Engine) saveProgress(ctx context.Context, in Update, user *model.User, seriesID, season, episode int32) error {
	err := e.store.UpdateProgress(ctx, user.ID, seriesID, season, episode)
	if errors.Is(err, storage.ErrNotFound) {
		e.endSession(in.ChatID)
		return e.reply(ctx, in, Message{Text: "That series is not in your watching list anymore."})
	}
	if err != nil {
		return err
	}

	e.endSession(in.ChatID)
	return e.reply(ctx, in, Message{
		Text: fmt.Sprintf("Progress saved: season %d, episode %d.", season, episode),
	})
}

// startUpdate re-enters the wizard at season selection for a series being watched
func (e *Engine) startUpdate(ctx context.Context, in Update, user *model.User, seriesID int32) error {
	e.endSession(in.ChatID)

	if _, err := e.store.GetUserSeries(ctx, user.ID, seriesID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return e.reply(ctx, in, Message{Text: "That series is not in your lists anymore."})
		}
		return err
	}

	series, err := e.store.GetSeries(ctx, table.Series.ID.EQ(sqlite.Int32(seriesID)))
	if err != nil {
		return err
	}

	s := e.startSession(in.ChatID, storage.ListWatching)
	s.SeriesID = seriesID
	if err := e.advance(in.ChatID, s, StateSelectingSeason); err != nil {
		return err
	}

	return e.promptSeason(ctx, in, series, nil)
}

func yearSuffix(year *int32) string {
	if year == nil || *year == 0 {
		return ""
	}
	return fmt.Sprintf(" (%d)", *year)
}
