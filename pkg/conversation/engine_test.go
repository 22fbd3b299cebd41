package conversation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	jet "github.com/go-jet/jet/v2/sqlite"
	"github.com/jonboulle/clockwork"
	"github.com/kasuboski/serialz/pkg/catalog"
	catalogMocks "github.com/kasuboski/serialz/pkg/catalog/mocks"
	"github.com/kasuboski/serialz/pkg/conversation"
	"github.com/kasuboski/serialz/pkg/conversation/mocks"
	"github.com/kasuboski/serialz/pkg/storage"
	storageMocks "github.com/kasuboski/serialz/pkg/storage/mocks"
	"github.com/kasuboski/serialz/pkg/storage/sqlite"
	"github.com/kasuboski/serialz/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/serialz/pkg/storage/sqlite/schema/gen/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const chatID = int64(100)

var (
	testNow = time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)

	message = conversation.Update{
		ChatID: chatID,
		From:   conversation.User{ID: chatID, Username: "tester", FirstName: "Test"},
	}
	press = conversation.Update{
		ChatID:    chatID,
		MessageID: 7,
		From:      conversation.User{ID: chatID, Username: "tester", FirstName: "Test"},
		Callback:  true,
	}
)

func ptr[T any](v T) *T {
	return &v
}

type harness struct {
	t       *testing.T
	ctx     context.Context
	engine  *conversation.Engine
	store   storage.Storage
	catalog *catalogMocks.MockCatalog
	clock   *clockwork.FakeClock
	sent    []conversation.Message
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	ctx := context.Background()
	ctrl := gomock.NewController(t)
	clock := clockwork.NewFakeClockAt(testNow)

	store, err := sqlite.New(ctx, ":memory:", sqlite.WithClock(clock))
	require.NoError(t, err)
	t.Cleanup(func() {
		store.Close()
	})
	require.NoError(t, store.RunMigrations(ctx))

	h := &harness{
		t:       t,
		ctx:     ctx,
		store:   store,
		catalog: catalogMocks.NewMockCatalog(ctrl),
		clock:   clock,
	}

	sender := mocks.NewMockSender(ctrl)
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg conversation.Message) error {
		h.sent = append(h.sent, msg)
		return nil
	}).AnyTimes()

	h.engine = conversation.New(store, h.catalog, sender, conversation.WithClock(clock))
	return h
}

func (h *harness) command(name, args string) {
	h.t.Helper()
	require.NoError(h.t, h.engine.HandleCommand(h.ctx, message, name, args))
}

func (h *harness) text(text string) {
	h.t.Helper()
	require.NoError(h.t, h.engine.HandleText(h.ctx, message, text))
}

func (h *harness) press(data string) {
	h.t.Helper()
	require.NoError(h.t, h.engine.HandleCallback(h.ctx, press, data))
}

func (h *harness) last() conversation.Message {
	h.t.Helper()
	require.NotEmpty(h.t, h.sent)
	return h.sent[len(h.sent)-1]
}

func (h *harness) state() conversation.State {
	s, ok := h.engine.Session(chatID)
	if !ok {
		return conversation.StateIdle
	}
	return s.State()
}

func (h *harness) userID() int32 {
	h.t.Helper()
	user, err := h.store.GetUser(h.ctx, "100")
	require.NoError(h.t, err)
	return user.ID
}

func (h *harness) seriesByTmdb(id int32) *model.Series {
	h.t.Helper()
	series, err := h.store.GetSeries(h.ctx, table.Series.TmdbID.EQ(jet.Int32(id)))
	require.NoError(h.t, err)
	return series
}

func (h *harness) tracking(seriesID int32) *model.UserSeries {
	h.t.Helper()
	us, err := h.store.GetUserSeries(h.ctx, h.userID(), seriesID)
	require.NoError(h.t, err)
	return us
}

func buttonData(msg conversation.Message) []string {
	var data []string
	for _, row := range msg.Keyboard {
		for _, b := range row {
			data = append(data, b.Data)
		}
	}
	return data
}

func fooDetails() *catalog.SeriesDetails {
	return &catalog.SeriesDetails{
		ID:           42,
		Name:         "Foo",
		Year:         ptr(int32(2020)),
		TotalSeasons: 3,
		Seasons:      []catalog.Season{{Number: 1}, {Number: 2}, {Number: 3}},
	}
}

func episodes(n int32) *catalog.SeasonDetails {
	season := &catalog.SeasonDetails{Number: 2}
	for i := int32(1); i <= n; i++ {
		season.Episodes = append(season.Episodes, catalog.Episode{Number: i})
	}
	return season
}

func TestAddWatchingFromSearch(t *testing.T) {
	h := newHarness(t)

	h.catalog.EXPECT().Search(gomock.Any(), "Foo").Return([]catalog.SearchResult{
		{ID: 42, Name: "Foo", Year: ptr(int32(2020))},
	})
	h.catalog.EXPECT().Details(gomock.Any(), int32(42)).Return(fooDetails(), true)
	h.catalog.EXPECT().Season(gomock.Any(), int32(42), int32(2)).Return(episodes(8), true)

	h.command(conversation.CommandAdd, "")
	assert.Equal(t, conversation.StateSelectingSeries, h.state())

	h.text("Foo")
	results := h.last()
	assert.Equal(t, "Foo (2020)", results.Keyboard[0][0].Text)
	assert.Equal(t, []string{"series_42", "manual_add", "cancel"}, buttonData(results))

	h.press("series_42")
	series := h.seriesByTmdb(42)
	assert.Equal(t, "Foo", series.Name)
	assert.Equal(t, int32(2020), *series.Year)
	assert.Equal(t, int32(3), *series.TotalSeasons)

	us := h.tracking(series.ID)
	assert.True(t, us.IsWatching)
	assert.False(t, us.InWatchlist)
	assert.False(t, us.IsWatched)
	assert.Equal(t, int32(1), us.CurrentSeason)
	assert.Equal(t, int32(0), us.CurrentEpisode)

	assert.Equal(t, conversation.StateSelectingSeason, h.state())
	seasons := h.last()
	assert.Equal(t, press.MessageID, seasons.EditMessageID)
	assert.Contains(t, buttonData(seasons), conversation.Data(conversation.ActionSeason, series.ID, 2))
	assert.Contains(t, buttonData(seasons), conversation.Data(conversation.ActionManualSeason, series.ID))

	h.press(conversation.Data(conversation.ActionSeason, series.ID, 2))
	assert.Equal(t, conversation.StateSelectingEpisode, h.state())
	episodeMenu := h.last()
	require.Len(t, episodeMenu.Keyboard, 4)
	assert.Len(t, episodeMenu.Keyboard[0], 5)
	assert.Len(t, episodeMenu.Keyboard[1], 3)

	h.press(conversation.Data(conversation.ActionEpisode, series.ID, 2, 5))
	us = h.tracking(series.ID)
	assert.Equal(t, int32(2), us.CurrentSeason)
	assert.Equal(t, int32(5), us.CurrentEpisode)

	_, ok := h.engine.Session(chatID)
	assert.False(t, ok)
}

func TestRepeatedSeriesPress(t *testing.T) {
	h := newHarness(t)

	h.catalog.EXPECT().Search(gomock.Any(), "Foo").Return([]catalog.SearchResult{{ID: 42, Name: "Foo"}, {ID: 43, Name: "Foo II"}})
	h.catalog.EXPECT().Details(gomock.Any(), int32(42)).Return(fooDetails(), true)

	h.command(conversation.CommandAdd, "Foo")
	h.press("series_42")
	require.Equal(t, conversation.StateSelectingSeason, h.state())
	sent := len(h.sent)

	h.press("series_42")
	assert.Equal(t, conversation.StateSelectingSeason, h.state())
	assert.Len(t, h.sent, sent)

	// another result from the same menu is still out of date
	h.press("series_43")
	assert.Contains(t, h.last().Text, "no longer active")
	assert.Equal(t, conversation.StateIdle, h.state())
}

func TestAddManualSeries(t *testing.T) {
	h := newHarness(t)

	h.catalog.EXPECT().Search(gomock.Any(), "Bar Show").Return(nil)

	h.command(conversation.CommandAdd, "Bar Show")
	assert.Equal(t, []string{"manual_add", "cancel"}, buttonData(h.last()))

	h.press("manual_add")
	assert.Equal(t, conversation.StateManualName, h.state())

	h.text("   ")
	assert.Equal(t, conversation.StateManualName, h.state())
	h.text("Bar Show")
	assert.Equal(t, conversation.StateManualYear, h.state())

	h.text("nineteen")
	assert.Equal(t, conversation.StateManualYear, h.state())
	h.text("-1")
	assert.Equal(t, conversation.StateManualYear, h.state())
	h.text("0")
	assert.Equal(t, conversation.StateManualSeasons, h.state())

	h.text("0")
	assert.Equal(t, conversation.StateManualSeasons, h.state())
	h.text("3")

	series := h.seriesByTmdb(conversation.ManualID("Bar Show"))
	assert.Equal(t, "Bar Show", series.Name)
	assert.Nil(t, series.Year)
	assert.Equal(t, int32(3), *series.TotalSeasons)

	us := h.tracking(series.ID)
	assert.True(t, us.IsWatching)
	assert.Equal(t, int32(1), us.CurrentSeason)
	assert.Equal(t, int32(0), us.CurrentEpisode)

	assert.Equal(t, conversation.StateSelectingSeason, h.state())
	assert.Contains(t, buttonData(h.last()), conversation.Data(conversation.ActionSeason, series.ID, 3))

	// typing a season skips the buttons, no episode list exists for manual series
	h.text("2")
	assert.Equal(t, conversation.StateSelectingEpisode, h.state())
	assert.Equal(t, []string{
		conversation.Data(conversation.ActionManualEpisode, series.ID, 2),
		"cancel",
	}, buttonData(h.last()))

	h.press(conversation.Data(conversation.ActionManualEpisode, series.ID, 2))
	assert.Equal(t, conversation.StateManualEpisode, h.state())
	h.text("x")
	assert.Equal(t, conversation.StateManualEpisode, h.state())
	h.text("4")

	us = h.tracking(series.ID)
	assert.Equal(t, int32(2), us.CurrentSeason)
	assert.Equal(t, int32(4), us.CurrentEpisode)
	assert.Equal(t, conversation.StateIdle, h.state())
}

func TestMoveToWatchingPromptsSeason(t *testing.T) {
	h := newHarness(t)

	h.command(conversation.CommandStart, "")
	series, err := h.store.UpsertSeries(h.ctx, model.Series{TmdbID: ptr(int32(7)), Name: "X", TotalSeasons: ptr(int32(2))})
	require.NoError(t, err)
	_, err = h.store.TrackSeries(h.ctx, h.userID(), series.ID, 1, 0, storage.ListWatchlist)
	require.NoError(t, err)

	h.catalog.EXPECT().Details(gomock.Any(), int32(7)).Return(nil, false)

	before := len(h.sent)
	h.press(conversation.Data(conversation.ActionMoveWatching, series.ID))

	us := h.tracking(series.ID)
	assert.False(t, us.InWatchlist)
	assert.True(t, us.IsWatching)
	assert.False(t, us.IsWatched)

	require.Len(t, h.sent, before+2)
	assert.Equal(t, press.MessageID, h.sent[before].EditMessageID)
	prompt := h.sent[before+1]
	assert.Zero(t, prompt.EditMessageID)
	assert.Equal(t, []string{
		conversation.Data(conversation.ActionSeason, series.ID, 1),
		conversation.Data(conversation.ActionSeason, series.ID, 2),
		conversation.Data(conversation.ActionManualSeason, series.ID),
		"cancel",
	}, buttonData(prompt))
	assert.Equal(t, conversation.StateSelectingSeason, h.state())
}

func TestCancelKeepsTracking(t *testing.T) {
	h := newHarness(t)

	h.catalog.EXPECT().Search(gomock.Any(), "Foo").Return([]catalog.SearchResult{{ID: 42, Name: "Foo"}})
	h.catalog.EXPECT().Details(gomock.Any(), int32(42)).Return(fooDetails(), true)

	h.command(conversation.CommandAdd, "Foo")
	h.press("series_42")
	assert.Equal(t, conversation.StateSelectingSeason, h.state())

	h.press("cancel")
	assert.Equal(t, "Operation cancelled.", h.last().Text)
	_, ok := h.engine.Session(chatID)
	assert.False(t, ok)

	us := h.tracking(h.seriesByTmdb(42).ID)
	assert.True(t, us.IsWatching)
	assert.Equal(t, int32(1), us.CurrentSeason)
	assert.Equal(t, int32(0), us.CurrentEpisode)
}

func TestCancelCommand(t *testing.T) {
	h := newHarness(t)

	h.command(conversation.CommandAddLater, "")
	assert.Equal(t, conversation.StateSelectingSeries, h.state())

	h.command(conversation.CommandCancel, "")
	assert.Equal(t, conversation.StateIdle, h.state())
	assert.Equal(t, "Operation cancelled.", h.last().Text)
}

func TestAddToWatchlist(t *testing.T) {
	h := newHarness(t)

	h.catalog.EXPECT().Search(gomock.Any(), "Foo").Return([]catalog.SearchResult{{ID: 42, Name: "Foo"}})
	h.catalog.EXPECT().Details(gomock.Any(), int32(42)).Return(fooDetails(), true)

	h.command(conversation.CommandAddLater, "Foo")
	h.press("series_42")

	us := h.tracking(h.seriesByTmdb(42).ID)
	assert.True(t, us.InWatchlist)
	assert.False(t, us.IsWatching)
	assert.Equal(t, conversation.StateIdle, h.state())
}

func TestAddWatchedFallsBackToStoredSeries(t *testing.T) {
	h := newHarness(t)

	_, err := h.store.UpsertSeries(h.ctx, model.Series{TmdbID: ptr(int32(42)), Name: "Foo"})
	require.NoError(t, err)

	h.catalog.EXPECT().Search(gomock.Any(), "Foo").Return([]catalog.SearchResult{{ID: 42, Name: "Foo"}})
	h.catalog.EXPECT().Details(gomock.Any(), int32(42)).Return(nil, false)

	h.command(conversation.CommandAddWatched, "Foo")
	h.press("series_42")

	us := h.tracking(h.seriesByTmdb(42).ID)
	assert.True(t, us.IsWatched)
	assert.NotNil(t, us.WatchedDate)
	assert.Equal(t, conversation.StateIdle, h.state())
}

func TestSelectUnknownSeries(t *testing.T) {
	h := newHarness(t)

	h.catalog.EXPECT().Search(gomock.Any(), "Foo").Return([]catalog.SearchResult{{ID: 42, Name: "Foo"}})
	h.catalog.EXPECT().Details(gomock.Any(), int32(42)).Return(nil, false)

	h.command(conversation.CommandAdd, "Foo")
	h.press("series_42")

	_, err := h.store.GetSeries(h.ctx, table.Series.TmdbID.EQ(jet.Int32(42)))
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.Equal(t, conversation.StateIdle, h.state())
}

func TestMalformedCallback(t *testing.T) {
	h := newHarness(t)

	h.command(conversation.CommandAdd, "")
	h.press("season_abc")

	assert.Equal(t, conversation.StateIdle, h.state())
	assert.Contains(t, h.last().Text, "try again")
}

func TestStaleButton(t *testing.T) {
	h := newHarness(t)

	h.press("series_42")
	assert.Contains(t, h.last().Text, "no longer active")

	h.command(conversation.CommandAdd, "")
	h.press(conversation.Data(conversation.ActionEpisode, 1, 1, 1))
	assert.Contains(t, h.last().Text, "no longer active")
	assert.Equal(t, conversation.StateIdle, h.state())
}

func TestSessionExpires(t *testing.T) {
	h := newHarness(t)

	h.command(conversation.CommandAdd, "")
	h.clock.Advance(conversation.DefaultSessionTTL + time.Minute)

	// no search happens, the text is treated as idle chatter
	h.text("Foo")
	assert.Contains(t, h.last().Text, "/help")
	assert.Zero(t, h.engine.PruneSessions())
}

func TestUpdateProgress(t *testing.T) {
	h := newHarness(t)

	h.command(conversation.CommandStart, "")
	series, err := h.store.UpsertSeries(h.ctx, model.Series{TmdbID: ptr(int32(42)), Name: "Foo", TotalSeasons: ptr(int32(3))})
	require.NoError(t, err)
	_, err = h.store.TrackSeries(h.ctx, h.userID(), series.ID, 1, 2, storage.ListWatching)
	require.NoError(t, err)

	h.command(conversation.CommandUpdate, "")
	assert.Equal(t, "Foo (S1E2)", h.last().Keyboard[0][0].Text)
	assert.Equal(t, []string{conversation.Data(conversation.ActionUpdate, series.ID), "cancel"}, buttonData(h.last()))

	h.catalog.EXPECT().Details(gomock.Any(), int32(42)).Return(fooDetails(), true)
	h.press(conversation.Data(conversation.ActionUpdate, series.ID))
	assert.Equal(t, conversation.StateSelectingSeason, h.state())

	h.catalog.EXPECT().Season(gomock.Any(), int32(42), int32(3)).Return(nil, false)
	h.press(conversation.Data(conversation.ActionManualSeason, series.ID))
	assert.Equal(t, conversation.StateManualSeason, h.state())
	h.text("0")
	assert.Equal(t, conversation.StateManualSeason, h.state())
	h.text("3")
	assert.Equal(t, conversation.StateSelectingEpisode, h.state())

	h.text("4")
	us := h.tracking(series.ID)
	assert.Equal(t, int32(3), us.CurrentSeason)
	assert.Equal(t, int32(4), us.CurrentEpisode)
}

func TestEpisodeButtonsAreBounded(t *testing.T) {
	h := newHarness(t)

	h.command(conversation.CommandStart, "")
	series, err := h.store.UpsertSeries(h.ctx, model.Series{TmdbID: ptr(int32(42)), Name: "Long"})
	require.NoError(t, err)
	_, err = h.store.TrackSeries(h.ctx, h.userID(), series.ID, 1, 0, storage.ListWatching)
	require.NoError(t, err)

	h.catalog.EXPECT().Details(gomock.Any(), int32(42)).Return(nil, false)
	h.catalog.EXPECT().Season(gomock.Any(), int32(42), int32(1)).Return(episodes(100), true)

	h.press(conversation.Data(conversation.ActionUpdate, series.ID))
	h.press(conversation.Data(conversation.ActionSeason, series.ID, 1))

	// 60 episodes in rows of 5, then manual entry and cancel
	assert.Len(t, h.last().Keyboard, 14)
	assert.Len(t, buttonData(h.last()), 62)
}

func TestListActions(t *testing.T) {
	h := newHarness(t)

	h.command(conversation.CommandStart, "")
	userID := h.userID()

	a, err := h.store.UpsertSeries(h.ctx, model.Series{TmdbID: ptr(int32(1)), Name: "Alpha"})
	require.NoError(t, err)
	b, err := h.store.UpsertSeries(h.ctx, model.Series{TmdbID: ptr(int32(2)), Name: "Beta_2"})
	require.NoError(t, err)
	for _, s := range []*model.Series{a, b} {
		_, err = h.store.TrackSeries(h.ctx, userID, s.ID, 1, 0, storage.ListWatching)
		require.NoError(t, err)
	}

	before := len(h.sent)
	h.command(conversation.CommandList, "")
	// header, one message per series, footer
	require.Len(t, h.sent, before+4)
	assert.Contains(t, h.sent[before+1].Text, "• *Alpha*")
	assert.Contains(t, h.sent[before+2].Text, "• Beta\\_2\n")
	assert.Equal(t, []string{
		conversation.Data(conversation.ActionMarkWatched, a.ID),
		conversation.Data(conversation.ActionMoveWatchlist, a.ID),
		conversation.Data(conversation.ActionRemoveSeries, a.ID),
	}, buttonData(h.sent[before+1]))

	h.press(conversation.Data(conversation.ActionMarkWatched, a.ID))
	assert.True(t, h.tracking(a.ID).IsWatched)

	h.press(conversation.Data(conversation.ActionMoveWatchlist, b.ID))
	assert.True(t, h.tracking(b.ID).InWatchlist)

	h.command(conversation.CommandWatched, "")
	assert.Contains(t, h.last().Text, "Alpha")
	assert.Contains(t, h.last().Text, "Finished: 2024-05-20")

	before = len(h.sent)
	h.command(conversation.CommandLater, "")
	require.Len(t, h.sent, before+3)
	assert.Contains(t, buttonData(h.sent[before+1]), conversation.Data(conversation.ActionMoveWatching, b.ID))

	h.press(conversation.Data(conversation.ActionRemoveSeries, b.ID))
	_, err = h.store.GetUserSeries(h.ctx, userID, b.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	h.press(conversation.Data(conversation.ActionRemoveSeries, b.ID))
	assert.Contains(t, h.last().Text, "not in your lists")

	h.press(conversation.Data(conversation.ActionMarkWatched, 999))
	assert.Contains(t, h.last().Text, "not in your lists")
}

func TestEmptyLists(t *testing.T) {
	h := newHarness(t)

	for _, command := range []string{conversation.CommandList, conversation.CommandLater, conversation.CommandWatched, conversation.CommandUpdate} {
		before := len(h.sent)
		h.command(command, "")
		assert.Len(t, h.sent, before+1, command)
	}
}

func TestStartRegistersUser(t *testing.T) {
	h := newHarness(t)

	h.command(conversation.CommandStart, "")
	assert.Contains(t, h.last().Text, "Hi, Test!")

	user, err := h.store.GetUser(h.ctx, "100")
	require.NoError(t, err)
	assert.Equal(t, "tester", *user.Username)
	assert.Nil(t, user.LastName)

	h.command(conversation.CommandHelp, "")
	assert.True(t, h.last().Markdown)
	assert.Contains(t, h.last().Text, "/addwatched")
}

func TestSendFailureIsReturned(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	store, err := sqlite.New(ctx, ":memory:")
	require.NoError(t, err)
	defer store.Close()
	require.NoError(t, store.RunMigrations(ctx))

	sendErr := errors.New("network down")
	sender := mocks.NewMockSender(ctrl)
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(sendErr).Times(2)

	engine := conversation.New(store, catalogMocks.NewMockCatalog(ctrl), sender)
	err = engine.HandleCommand(ctx, message, conversation.CommandHelp, "")
	assert.ErrorIs(t, err, sendErr)
}

func TestStorageFailureEndsConversation(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	store := storageMocks.NewMockStorage(ctrl)
	sender := mocks.NewMockSender(ctrl)
	engine := conversation.New(store, catalogMocks.NewMockCatalog(ctrl), sender)

	store.EXPECT().UpsertUser(gomock.Any(), gomock.Any()).Return(nil, errors.New("database is locked"))
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg conversation.Message) error {
		assert.Equal(t, chatID, msg.ChatID)
		assert.Equal(t, "Sorry, something went wrong. Please try again.", msg.Text)
		return nil
	})

	require.NoError(t, engine.HandleCommand(ctx, message, "list", ""))

	_, ok := engine.Session(chatID)
	assert.False(t, ok)
}

func TestStorageFailureMidConversation(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	store := storageMocks.NewMockStorage(ctrl)
	sender := mocks.NewMockSender(ctrl)
	engine := conversation.New(store, catalogMocks.NewMockCatalog(ctrl), sender)

	var texts []string
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg conversation.Message) error {
		texts = append(texts, msg.Text)
		return nil
	}).AnyTimes()

	store.EXPECT().UpsertUser(gomock.Any(), gomock.Any()).Return(&model.User{ID: 1, TelegramID: "100"}, nil).Times(5)
	store.EXPECT().UpsertSeries(gomock.Any(), gomock.Any()).Return(nil, errors.New("disk I/O error"))

	require.NoError(t, engine.HandleCommand(ctx, message, "add", ""))
	require.NoError(t, engine.HandleCallback(ctx, press, "manual_add"))
	require.NoError(t, engine.HandleText(ctx, message, "Local Show"))
	require.NoError(t, engine.HandleText(ctx, message, "2020"))

	// the season count is the step that writes the series
	require.NoError(t, engine.HandleText(ctx, message, "3"))

	require.NotEmpty(t, texts)
	assert.Equal(t, "Sorry, something went wrong. Please try again.", texts[len(texts)-1])

	_, ok := engine.Session(chatID)
	assert.False(t, ok)
}
