package notifier

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/jonboulle/clockwork"
	"github.com/kasuboski/serialz/pkg/catalog"
	"github.com/kasuboski/serialz/pkg/conversation"
	"github.com/kasuboski/serialz/pkg/logger"
	"github.com/kasuboski/serialz/pkg/metrics"
	"github.com/kasuboski/serialz/pkg/storage"
	"github.com/kasuboski/serialz/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/serialz/pkg/storage/sqlite/schema/gen/table"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	DefaultDaily       = "0 10 * * *"
	DefaultWeekly      = "0 12 * * 1"
	DefaultSendRate    = 25.0
	DefaultStopTimeout = 5 * time.Second

	airDateFormat = "2006-01-02"
)

var ErrCheckFailed = errors.New("could not check series for new content")

type Config struct {
	// Daily and Weekly are cron expressions for the new content sweep and the metadata refresh
	Daily       string
	Weekly      string
	Location    *time.Location
	SendRate    float64
	StopTimeout time.Duration
}

// Report summarizes one sweep
type Report struct {
	Checked   int
	Refreshed int
	Notified  int
	Failed    int
}

// Notifier periodically looks for new seasons and episodes of the series people are watching
// and messages every watcher about them.
type Notifier struct {
	store   storage.Storage
	catalog catalog.Catalog
	sender  conversation.Sender
	clock   clockwork.Clock
	limiter *rate.Limiter
	config  Config

	mu     sync.Mutex
	cron   *cron.Cron
	cancel context.CancelFunc
}

type Option func(*Notifier)

func WithClock(clock clockwork.Clock) Option {
	return func(n *Notifier) {
		n.clock = clock
	}
}

func New(store storage.Storage, cat catalog.Catalog, sender conversation.Sender, config Config, opts ...Option) *Notifier {
	if config.Daily == "" {
		config.Daily = DefaultDaily
	}
	if config.Weekly == "" {
		config.Weekly = DefaultWeekly
	}
	if config.Location == nil {
		config.Location = time.Local
	}
	if config.SendRate <= 0 {
		config.SendRate = DefaultSendRate
	}
	if config.StopTimeout <= 0 {
		config.StopTimeout = DefaultStopTimeout
	}

	n := &Notifier{
		store:   store,
		catalog: cat,
		sender:  sender,
		clock:   clockwork.NewRealClock(),
		limiter: rate.NewLimiter(rate.Limit(config.SendRate), max(1, int(config.SendRate))),
		config:  config,
	}

	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Start schedules the daily and weekly sweeps. Starting a running notifier does nothing.
func (n *Notifier) Start(ctx context.Context) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.cron != nil {
		return nil
	}

	log := logger.FromCtx(ctx)
	ctx, cancel := context.WithCancel(ctx)

	c := cron.New(cron.WithLocation(n.config.Location))
	if _, err := c.AddFunc(n.config.Daily, func() { n.CheckForUpdates(ctx) }); err != nil {
		cancel()
		return fmt.Errorf("invalid daily schedule %q: %w", n.config.Daily, err)
	}
	if _, err := c.AddFunc(n.config.Weekly, func() { n.FullContentCheck(ctx) }); err != nil {
		cancel()
		return fmt.Errorf("invalid weekly schedule %q: %w", n.config.Weekly, err)
	}

	c.Start()
	n.cron = c
	n.cancel = cancel

	log.Infow("notifier started", "daily", n.config.Daily, "weekly", n.config.Weekly, "location", n.config.Location.String())
	return nil
}

// Stop cancels the schedule and waits for a running sweep to wind down, at most StopTimeout
func (n *Notifier) Stop() {
	n.mu.Lock()
	c, cancel := n.cron, n.cancel
	n.cron, n.cancel = nil, nil
	n.mu.Unlock()

	if c == nil {
		return
	}

	log := logger.Get()

	cancel()
	select {
	case <-c.Stop().Done():
		log.Info("notifier stopped")
	case <-n.clock.After(n.config.StopTimeout):
		log.Warnw("notifier did not stop in time", "timeout", n.config.StopTimeout)
	}
}

func (n *Notifier) Running() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.cron != nil
}

// CheckForUpdates notifies watchers about content that aired since each series was last checked
func (n *Notifier) CheckForUpdates(ctx context.Context) Report {
	return n.sweep(ctx, "daily", Report{})
}

// FullContentCheck refreshes the stored title, year and season count of every catalogued
// series and then runs CheckForUpdates.
func (n *Notifier) FullContentCheck(ctx context.Context) Report {
	log := logger.FromCtx(ctx, "trigger", "weekly")

	report := Report{}
	series, err := n.store.ListSeries(ctx, table.Series.TmdbID.GT(sqlite.Int32(0)))
	if err != nil {
		log.Errorw("failed to list series for refresh", zap.Error(err))
		return n.sweep(ctx, "weekly", report)
	}

	for _, s := range series {
		if ctx.Err() != nil {
			break
		}

		details, ok := n.catalog.Details(ctx, *s.TmdbID)
		if !ok {
			continue
		}

		var totalSeasons *int32
		if details.TotalSeasons > 0 {
			totalSeasons = &details.TotalSeasons
		}

		if err := n.store.RefreshSeriesMetadata(ctx, s.ID, details.Name, details.Year, totalSeasons); err != nil {
			log.Warnw("failed to refresh series", "series_id", s.ID, zap.Error(err))
			metrics.SweepSeriesErrors.Inc()
			report.Failed++
			continue
		}
		report.Refreshed++
	}

	log.Infow("refreshed series metadata", "refreshed", report.Refreshed)
	return n.sweep(ctx, "weekly", report)
}

func (n *Notifier) sweep(ctx context.Context, trigger string, report Report) Report {
	start := n.clock.Now()
	log := logger.FromCtx(ctx, "trigger", trigger)
	defer func() {
		metrics.SweepDuration.WithLabelValues(trigger).Observe(n.clock.Since(start).Seconds())
	}()

	series, err := n.store.ListWatchedSeries(ctx)
	if err != nil {
		log.Errorw("failed to list watched series", zap.Error(err))
		return report
	}

	for _, s := range series {
		if ctx.Err() != nil {
			log.Debugw("sweep cancelled", zap.Error(ctx.Err()))
			break
		}

		// manually entered series have nothing to check against
		if s.TmdbID == nil || *s.TmdbID <= 0 {
			continue
		}

		report.Checked++
		sent, failed, err := n.checkSeries(logger.WithCtx(ctx, log.With("series_id", s.ID)), s)
		report.Notified += sent
		report.Failed += failed
		if err != nil {
			log.Warnw("failed to check series", "series_id", s.ID, zap.Error(err))
			metrics.SweepSeriesErrors.Inc()
			report.Failed++
		}
	}

	log.Infow("sweep finished", "checked", report.Checked, "notified", report.Notified, "failed", report.Failed)
	return report
}

// checkSeries stamps the series as checked before messaging, a failed send is not retried.
// A failed catalog check leaves the stamp untouched so the same window is checked next sweep.
func (n *Notifier) checkSeries(ctx context.Context, series *model.Series) (int, int, error) {
	log := logger.FromCtx(ctx)
	now := n.clock.Now()

	since := now.Add(-catalog.DefaultLookback)
	if series.LastUpdate != nil {
		since = *series.LastUpdate
	}

	items, ok := n.catalog.CheckNewSince(ctx, *series.TmdbID, since)
	if !ok {
		return 0, 0, ErrCheckFailed
	}

	if err := n.store.TouchSeries(ctx, series.ID, now); err != nil {
		return 0, 0, err
	}

	if len(items) == 0 {
		return 0, 0, nil
	}

	watchers, err := n.store.ListWatchers(ctx, series.ID)
	if err != nil {
		return 0, 0, err
	}

	sent, failed := 0, 0
	for _, w := range watchers {
		chatID, err := strconv.ParseInt(w.TelegramID, 10, 64)
		if err != nil {
			log.Warnw("skipping watcher with invalid telegram id", "user_id", w.ID, zap.Error(err))
			failed++
			continue
		}

		for _, item := range items {
			if err := n.notify(ctx, chatID, series.Name, item, now); err != nil {
				log.Warnw("failed to send notification", "user_id", w.ID, zap.Error(err))
				metrics.NotificationErrors.Inc()
				failed++
				continue
			}

			metrics.NotificationsSent.WithLabelValues(string(item.Kind)).Inc()
			sent++
		}
	}

	return sent, failed, nil
}

func (n *Notifier) notify(ctx context.Context, chatID int64, name string, item catalog.NewContent, now time.Time) error {
	if err := n.limiter.Wait(ctx); err != nil {
		return err
	}

	return n.sender.Send(ctx, conversation.Message{
		ChatID:   chatID,
		Text:     FormatNotification(name, item, now),
		Markdown: true,
	})
}

// FormatNotification renders the message announcing a new season or episode
func FormatNotification(name string, item catalog.NewContent, now time.Time) string {
	name = conversation.Bold(name)

	var text string
	switch item.Kind {
	case catalog.ContentSeason:
		text = fmt.Sprintf("🎬 New season alert!\n\n%s season %d is now available!", name, item.Number)
	default:
		text = fmt.Sprintf("📺 New episode alert!\n\n%s S%dE%d", name, item.Season, item.Number)
		if item.Name != "" {
			text += fmt.Sprintf(" \"%s\"", conversation.EscapeMarkdown(item.Name))
		}
		text += " is now available!"
	}

	if !item.AirDate.IsZero() {
		text += fmt.Sprintf("\nReleased on %s (%s)",
			item.AirDate.Format(airDateFormat),
			humanize.RelTime(item.AirDate, now, "ago", "from now"),
		)
	}

	return text
}
