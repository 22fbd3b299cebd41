package catalog

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/kasuboski/serialz/pkg/logger"
	"github.com/kasuboski/serialz/pkg/tmdb"
	"go.uber.org/zap"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_catalog.go github.com/kasuboski/serialz/pkg/catalog Catalog

const (
	DefaultSearchLimit = 5
	// DefaultLookback is used when a series has never been checked for new content
	DefaultLookback = 7 * 24 * time.Hour
)

// Catalog looks up series metadata. Failures are logged and reported as absent or empty results.
type Catalog interface {
	Search(ctx context.Context, title string) []SearchResult
	Details(ctx context.Context, id int32) (*SeriesDetails, bool)
	Season(ctx context.Context, id int32, number int32) (*SeasonDetails, bool)
	// CheckNewSince reports false when the provider could not be fully checked
	CheckNewSince(ctx context.Context, id int32, since time.Time) ([]NewContent, bool)
}

type SearchResult struct {
	ID       int32
	Name     string
	Year     *int32
	Overview string
}

type Season struct {
	Number       int32
	Name         string
	EpisodeCount int32
	AirDate      *time.Time
}

type SeriesDetails struct {
	ID           int32
	Name         string
	Year         *int32
	TotalSeasons int32
	// Seasons is nil when the provider did not return a season list
	Seasons []Season
	Status  string
}

// SeasonNumbers lists the regular seasons in order. It falls back to 1..TotalSeasons
// when no season list is known.
func (d SeriesDetails) SeasonNumbers() []int32 {
	if d.Seasons != nil {
		numbers := make([]int32, 0, len(d.Seasons))
		for _, s := range d.Seasons {
			numbers = append(numbers, s.Number)
		}
		return numbers
	}

	numbers := make([]int32, 0, d.TotalSeasons)
	for n := int32(1); n <= d.TotalSeasons; n++ {
		numbers = append(numbers, n)
	}
	return numbers
}

type Episode struct {
	Number  int32
	Name    string
	AirDate *time.Time
}

type SeasonDetails struct {
	Number   int32
	Episodes []Episode
}

type ContentKind string

const (
	ContentSeason  ContentKind = "season"
	ContentEpisode ContentKind = "episode"
)

// NewContent is a season or episode that aired inside a checked window.
// For seasons Number is the season number, for episodes it is the episode number within Season.
type NewContent struct {
	Kind    ContentKind
	Season  int32
	Number  int32
	Name    string
	AirDate time.Time
}

// TMDB implements Catalog on top of the TMDB api
type TMDB struct {
	tmdb  tmdb.ITmdb
	clock clockwork.Clock
	limit int
}

type Option func(*TMDB)

func WithClock(clock clockwork.Clock) Option {
	return func(t *TMDB) {
		t.clock = clock
	}
}

// WithSearchLimit caps how many search results are offered, zero keeps the default
func WithSearchLimit(limit int) Option {
	return func(t *TMDB) {
		if limit > 0 {
			t.limit = limit
		}
	}
}

func New(client tmdb.ITmdb, opts ...Option) *TMDB {
	t := &TMDB{
		tmdb:  client,
		clock: clockwork.NewRealClock(),
		limit: DefaultSearchLimit,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

func (t *TMDB) Search(ctx context.Context, title string) []SearchResult {
	log := logger.FromCtx(ctx)

	title = strings.TrimSpace(title)
	if title == "" {
		return nil
	}

	res, err := t.tmdb.SearchSeries(ctx, title)
	if err != nil {
		log.Errorw("failed to search series", "title", title, zap.Error(err))
		return nil
	}

	results := make([]SearchResult, 0, min(len(res.Results), t.limit))
	for _, r := range res.Results {
		if len(results) == t.limit {
			break
		}

		results = append(results, SearchResult{
			ID:       r.ID,
			Name:     r.Name,
			Year:     extractYear(r.FirstAirDate),
			Overview: r.Overview,
		})
	}

	return results
}

func (t *TMDB) Details(ctx context.Context, id int32) (*SeriesDetails, bool) {
	log := logger.FromCtx(ctx)

	res, err := t.tmdb.GetSeriesDetails(ctx, id)
	if err != nil {
		log.Errorw("failed to get series details", "tmdb_id", id, zap.Error(err))
		return nil, false
	}

	return FromSeriesDetails(*res), true
}

func (t *TMDB) Season(ctx context.Context, id int32, number int32) (*SeasonDetails, bool) {
	log := logger.FromCtx(ctx)

	res, err := t.tmdb.GetSeasonDetails(ctx, id, number)
	if err != nil {
		log.Errorw("failed to get season details", "tmdb_id", id, "season", number, zap.Error(err))
		return nil, false
	}

	season := &SeasonDetails{
		Number:   number,
		Episodes: make([]Episode, 0, len(res.Episodes)),
	}
	for _, e := range res.Episodes {
		season.Episodes = append(season.Episodes, Episode{
			Number:  e.EpisodeNumber,
			Name:    e.Name,
			AirDate: parseDate(e.AirDate),
		})
	}

	return season, true
}

// CheckNewSince reports seasons and episodes whose air date falls after since and not after now.
// A season that premiered in the window is reported once as a season; otherwise its episodes are inspected.
// Any failed lookup reports false and no content, so the window can be checked again later.
func (t *TMDB) CheckNewSince(ctx context.Context, id int32, since time.Time) ([]NewContent, bool) {
	log := logger.FromCtx(ctx, "tmdb_id", id)

	details, ok := t.Details(ctx, id)
	if !ok {
		return nil, false
	}

	now := t.clock.Now()
	inWindow := func(at *time.Time) bool {
		return at != nil && at.After(since) && !at.After(now)
	}

	var found []NewContent
	for _, season := range details.Seasons {
		if season.AirDate != nil && season.AirDate.After(now) {
			continue
		}

		if inWindow(season.AirDate) {
			found = append(found, NewContent{
				Kind:    ContentSeason,
				Season:  season.Number,
				Number:  season.Number,
				Name:    season.Name,
				AirDate: *season.AirDate,
			})
			continue
		}

		episodes, ok := t.Season(ctx, id, season.Number)
		if !ok {
			return nil, false
		}

		for _, e := range episodes.Episodes {
			if !inWindow(e.AirDate) {
				continue
			}

			found = append(found, NewContent{
				Kind:    ContentEpisode,
				Season:  season.Number,
				Number:  e.Number,
				Name:    e.Name,
				AirDate: *e.AirDate,
			})
		}
	}

	log.Debugw("checked for new content", "since", since, "found", len(found))
	return found, true
}

// FromSeriesDetails normalizes a TMDB series payload. Specials (season 0) are dropped.
func FromSeriesDetails(det tmdb.SeriesDetailsResponse) *SeriesDetails {
	details := &SeriesDetails{
		ID:   det.ID,
		Name: det.Name,
		Year: extractYear(det.FirstAirDate),
	}

	if det.Status != nil {
		details.Status = *det.Status
	}

	if det.Seasons.IsSpecified() && !det.Seasons.IsNull() {
		entries := det.Seasons.MustGet()
		details.Seasons = make([]Season, 0, len(entries))
		for _, s := range entries {
			if s.SeasonNumber <= 0 {
				continue
			}

			details.Seasons = append(details.Seasons, Season{
				Number:       s.SeasonNumber,
				Name:         s.Name,
				EpisodeCount: s.EpisodeCount,
				AirDate:      parseDate(s.AirDate),
			})
		}
	}

	switch {
	case det.NumberOfSeasons != nil:
		details.TotalSeasons = *det.NumberOfSeasons
	default:
		details.TotalSeasons = int32(len(details.Seasons))
	}

	return details
}

func extractYear(date *string) *int32 {
	if date == nil || *date == "" {
		return nil
	}

	yearPart, _, _ := strings.Cut(*date, "-")
	year, err := strconv.ParseInt(yearPart, 10, 32)
	if err != nil {
		return nil
	}

	y := int32(year)
	return &y
}

func parseDate(date *string) *time.Time {
	if date == nil || *date == "" {
		return nil
	}

	t, err := time.Parse(time.DateOnly, *date)
	if err != nil {
		return nil
	}

	return &t
}
