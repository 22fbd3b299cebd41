package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/serialz/pkg/storage/sqlite/schema/gen/model"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_storage.go github.com/kasuboski/serialz/pkg/storage Storage

var ErrNotFound = errors.New("not found in storage")

type Storage interface {
	RunMigrations(ctx context.Context) error
	Close() error
	UserStorage
	SeriesStorage
	TrackingStorage
}

type UserStorage interface {
	// UpsertUser inserts the user or refreshes the display fields of the existing row with the same telegram id
	UpsertUser(ctx context.Context, user model.User) (*model.User, error)
	GetUser(ctx context.Context, telegramID string) (*model.User, error)
}

type SeriesStorage interface {
	// UpsertSeries inserts the series or updates the row with the same tmdb id and stamps last_update
	UpsertSeries(ctx context.Context, series model.Series) (*model.Series, error)
	GetSeries(ctx context.Context, where sqlite.BoolExpression) (*model.Series, error)
	ListSeries(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.Series, error)
	// ListWatchedSeries lists series with at least one user currently watching them
	ListWatchedSeries(ctx context.Context) ([]*model.Series, error)
	// RefreshSeriesMetadata updates cached title, year and season count without moving last_update
	RefreshSeriesMetadata(ctx context.Context, id int32, name string, year *int32, totalSeasons *int32) error
	TouchSeries(ctx context.Context, id int32, at time.Time) error
}

type TrackingStorage interface {
	TrackSeries(ctx context.Context, userID, seriesID int32, season, episode int32, kind ListKind) (*model.UserSeries, error)
	GetUserSeries(ctx context.Context, userID, seriesID int32) (*model.UserSeries, error)
	UpdateProgress(ctx context.Context, userID, seriesID int32, season, episode int32) error
	RemoveTracking(ctx context.Context, userID, seriesID int32) (bool, error)
	ListTracked(ctx context.Context, userID int32, kind ListKind) ([]*TrackedSeries, error)
	MoveToWatching(ctx context.Context, userID, seriesID int32) (bool, error)
	MoveToWatchlist(ctx context.Context, userID, seriesID int32) (bool, error)
	MarkWatched(ctx context.Context, userID, seriesID int32) (bool, error)
	MarkWatchedDirectly(ctx context.Context, userID, seriesID int32) (*model.UserSeries, error)
	// ListWatchers lists users currently watching the series
	ListWatchers(ctx context.Context, seriesID int32) ([]*model.User, error)
}

// ListKind is one of the mutually exclusive tracking states of a UserSeries
type ListKind string

const (
	ListWatching  ListKind = "watching"
	ListWatchlist ListKind = "watchlist"
	ListWatched   ListKind = "watched"
)

func ParseListKind(s string) (ListKind, error) {
	switch k := ListKind(s); k {
	case ListWatching, ListWatchlist, ListWatched:
		return k, nil
	default:
		return "", fmt.Errorf("unknown list kind %q", s)
	}
}

// Flags returns the is_watching, in_watchlist and is_watched values for the kind
func (k ListKind) Flags() (watching, watchlist, watched bool) {
	switch k {
	case ListWatchlist:
		return false, true, false
	case ListWatched:
		return false, false, true
	default:
		return true, false, false
	}
}

type TrackedSeries struct {
	model.UserSeries
	Series model.Series
}
