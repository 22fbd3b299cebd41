package conversation

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/kasuboski/serialz/pkg/cache"
	"github.com/kasuboski/serialz/pkg/catalog"
	"github.com/kasuboski/serialz/pkg/logger"
	"github.com/kasuboski/serialz/pkg/machine"
	"github.com/kasuboski/serialz/pkg/metrics"
	"github.com/kasuboski/serialz/pkg/storage"
	"github.com/kasuboski/serialz/pkg/storage/sqlite/schema/gen/model"
	"go.uber.org/zap"
)

const DefaultSessionTTL = 24 * time.Hour

// errStale is returned when a button belongs to a step the chat is no longer in
var errStale = errors.New("action does not match the conversation state")

const (
	msgFailure   = "Sorry, something went wrong. Please try again."
	msgMalformed = "Sorry, I did not understand that button. Please try again."
	msgStale     = "That menu is no longer active. Please start again."
	msgCancelled = "Operation cancelled."
)

// User is the chat account an update came from
type User struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
}

// Update is an incoming chat event reduced to what the engine needs
type Update struct {
	ChatID    int64
	MessageID int
	From      User
	// Callback is set for inline button presses. Replies then edit MessageID.
	Callback bool
}

// Engine drives the per-chat conversations. It is meant to be called from a single
// update loop.
type Engine struct {
	store    storage.Storage
	catalog  catalog.Catalog
	sender   Sender
	clock    clockwork.Clock
	ttl      time.Duration
	sessions *cache.Cache[int64, *Session]
}

type Option func(*Engine)

// WithSessionTTL sets how long an untouched conversation is kept
func WithSessionTTL(ttl time.Duration) Option {
	return func(e *Engine) {
		e.ttl = ttl
	}
}

func WithClock(clock clockwork.Clock) Option {
	return func(e *Engine) {
		e.clock = clock
	}
}

func New(store storage.Storage, cat catalog.Catalog, sender Sender, opts ...Option) *Engine {
	e := &Engine{
		store:   store,
		catalog: cat,
		sender:  sender,
		clock:   clockwork.NewRealClock(),
		ttl:     DefaultSessionTTL,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.sessions = cache.New(
		cache.WithTTL[int64, *Session](e.ttl),
		cache.WithClock[int64, *Session](e.clock),
	)

	return e
}

// Session returns the conversation in progress for a chat
func (e *Engine) Session(chatID int64) (*Session, bool) {
	return e.sessions.Get(chatID)
}

// PruneSessions drops expired conversations
func (e *Engine) PruneSessions() int {
	removed := e.sessions.Prune()
	e.recordSessions()
	return removed
}

// HandleCommand handles a slash command. Any conversation in progress is abandoned first.
func (e *Engine) HandleCommand(ctx context.Context, in Update, command string, args string) error {
	user, err := e.ensureUser(ctx, in.From)
	if err != nil {
		return e.fail(ctx, in, err)
	}

	e.endSession(in.ChatID)
	return e.fail(ctx, in, e.runCommand(ctx, in, user, command, strings.TrimSpace(args)))
}

// HandleText handles a plain text message according to the chat's conversation state
func (e *Engine) HandleText(ctx context.Context, in Update, text string) error {
	user, err := e.ensureUser(ctx, in.From)
	if err != nil {
		return e.fail(ctx, in, err)
	}

	text = strings.TrimSpace(text)

	s, ok := e.sessions.Get(in.ChatID)
	if !ok {
		return e.fail(ctx, in, e.reply(ctx, in, Message{
			Text:     "Send /help to see what I can do.",
			Keyboard: mainMenu(),
		}))
	}

	switch s.State() {
	case StateSelectingSeries:
		err = e.search(ctx, in, text)
	case StateManualName:
		err = e.manualName(ctx, in, s, text)
	case StateManualYear:
		err = e.manualYear(ctx, in, s, text)
	case StateManualSeasons:
		err = e.manualSeasons(ctx, in, user, s, text)
	case StateSelectingSeason, StateManualSeason:
		err = e.enterSeason(ctx, in, s, text)
	case StateSelectingEpisode, StateManualEpisode:
		err = e.enterEpisode(ctx, in, user, s, text)
	default:
		err = errStale
	}

	return e.fail(ctx, in, err)
}

// HandleCallback handles an inline button press
func (e *Engine) HandleCallback(ctx context.Context, in Update, data string) error {
	user, err := e.ensureUser(ctx, in.From)
	if err != nil {
		return e.fail(ctx, in, err)
	}

	cb, err := ParseCallback(data)
	if err != nil {
		return e.fail(ctx, in, err)
	}

	logger.FromCtx(ctx).Debugw("callback", "action", cb.Action, "args", cb.Args, "command", cb.Command)

	return e.fail(ctx, in, e.runCallback(ctx, in, user, cb))
}

func (e *Engine) runCallback(ctx context.Context, in Update, user *model.User, cb Callback) error {
	switch cb.Action {
	case ActionCommand:
		e.endSession(in.ChatID)
		return e.runCommand(ctx, in, user, cb.Command, "")
	case ActionCancel:
		return e.cancel(ctx, in)
	case ActionUpdate:
		return e.startUpdate(ctx, in, user, cb.Args[0])
	case ActionMoveWatching:
		return e.moveToWatching(ctx, in, user, cb.Args[0])
	case ActionMoveWatchlist, ActionMarkWatched, ActionRemoveSeries:
		return e.listAction(ctx, in, user, cb.Action, cb.Args[0])
	}

	s, ok := e.sessions.Get(in.ChatID)
	if !ok {
		return errStale
	}

	switch cb.Action {
	case ActionSeries:
		// a second tap on the result that was just picked
		if s.State() == StateSelectingSeason && s.TmdbID == cb.Args[0] {
			return nil
		}
		if err := expect(s, StateSelectingSeries); err != nil {
			return err
		}
		return e.selectSeries(ctx, in, user, s, cb.Args[0])
	case ActionManualAdd:
		if err := e.advance(in.ChatID, s, StateManualName); err != nil {
			return err
		}
		return e.reply(ctx, in, Message{Text: "Send me the title of the series."})
	case ActionSeason:
		if err := expect(s, StateSelectingSeason); err != nil {
			return err
		}
		return e.chooseSeason(ctx, in, s, cb.Args[0], cb.Args[1])
	case ActionManualSeason:
		if err := expect(s, StateSelectingSeason); err != nil {
			return err
		}
		s.SeriesID = cb.Args[0]
		if err := e.advance(in.ChatID, s, StateManualSeason); err != nil {
			return err
		}
		return e.reply(ctx, in, Message{Text: "Send me the season number."})
	case ActionEpisode:
		if err := expect(s, StateSelectingEpisode); err != nil {
			return err
		}
		return e.saveProgress(ctx, in, user, cb.Args[0], cb.Args[1], cb.Args[2])
	case ActionManualEpisode:
		if err := expect(s, StateSelectingEpisode); err != nil {
			return err
		}
		s.SeriesID, s.Season = cb.Args[0], cb.Args[1]
		if err := e.advance(in.ChatID, s, StateManualEpisode); err != nil {
			return err
		}
		return e.reply(ctx, in, Message{Text: "Send me the episode number you stopped at."})
	}

	return errStale
}

func (e *Engine) runCommand(ctx context.Context, in Update, user *model.User, command string, args string) error {
	switch command {
	case CommandStart:
		return e.welcome(ctx, in, user)
	case CommandHelp:
		return e.help(ctx, in)
	case CommandAdd:
		return e.startAdd(ctx, in, storage.ListWatching, args)
	case CommandAddLater:
		return e.startAdd(ctx, in, storage.ListWatchlist, args)
	case CommandAddWatched:
		return e.startAdd(ctx, in, storage.ListWatched, args)
	case CommandList:
		return e.showWatching(ctx, in, user)
	case CommandLater:
		return e.showWatchlist(ctx, in, user)
	case CommandWatched:
		return e.showWatched(ctx, in, user)
	case CommandUpdate:
		return e.showUpdateMenu(ctx, in, user)
	case CommandCancel:
		return e.cancel(ctx, in)
	default:
		return e.reply(ctx, in, Message{Text: "Unknown command. Send /help to see what I can do."})
	}
}

func (e *Engine) cancel(ctx context.Context, in Update) error {
	e.endSession(in.ChatID)
	return e.reply(ctx, in, Message{Text: msgCancelled})
}

// fail reports a failed step to the chat and drops its conversation. Committed rows are kept.
// Only a failure to deliver the report is returned.
func (e *Engine) fail(ctx context.Context, in Update, err error) error {
	if err == nil {
		return nil
	}

	log := logger.FromCtx(ctx)

	text := msgFailure
	switch {
	case errors.Is(err, ErrMalformedCallback):
		log.Warnw("malformed callback", zap.Error(err))
		text = msgMalformed
	case errors.Is(err, errStale), errors.Is(err, machine.ErrInvalidTransition):
		log.Debugw("stale conversation action", zap.Error(err))
		text = msgStale
	default:
		log.Errorw("failed to handle update", zap.Error(err))
	}

	e.endSession(in.ChatID)

	if sendErr := e.sender.Send(ctx, Message{ChatID: in.ChatID, Text: text}); sendErr != nil {
		return errors.Join(err, sendErr)
	}

	return nil
}

func (e *Engine) ensureUser(ctx context.Context, u User) (*model.User, error) {
	return e.store.UpsertUser(ctx, model.User{
		TelegramID: strconv.FormatInt(u.ID, 10),
		Username:   optional(u.Username),
		FirstName:  optional(u.FirstName),
		LastName:   optional(u.LastName),
	})
}

// reply answers the update, editing the pressed message for button presses
func (e *Engine) reply(ctx context.Context, in Update, msg Message) error {
	msg.ChatID = in.ChatID
	if in.Callback {
		msg.EditMessageID = in.MessageID
	}
	return e.sender.Send(ctx, msg)
}

// send posts a new message to the update's chat
func (e *Engine) send(ctx context.Context, in Update, msg Message) error {
	msg.ChatID = in.ChatID
	return e.sender.Send(ctx, msg)
}

func (e *Engine) startSession(chatID int64, flow storage.ListKind) *Session {
	s := newSession(flow)
	e.sessions.Set(chatID, s)
	e.recordSessions()
	return s
}

// advance moves the session to the next step and refreshes its expiry
func (e *Engine) advance(chatID int64, s *Session, to State) error {
	if err := s.transition(to); err != nil {
		return err
	}

	e.sessions.Set(chatID, s)
	return nil
}

func (e *Engine) endSession(chatID int64) {
	e.sessions.Delete(chatID)
	e.recordSessions()
}

func (e *Engine) recordSessions() {
	metrics.ConversationSessions.Set(float64(e.sessions.Size()))
}

func expect(s *Session, state State) error {
	if s.State() != state {
		return errStale
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// parseNumber reads a whole number that fits a season or episode column
func parseNumber(text string) (int32, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}
