package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/serialz/pkg/storage"
	"github.com/kasuboski/serialz/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/serialz/pkg/storage/sqlite/schema/gen/table"
)

var trackingInsertColumns = sqlite.ColumnList{
	table.UserSeries.UserID,
	table.UserSeries.SeriesID,
	table.UserSeries.CurrentSeason,
	table.UserSeries.CurrentEpisode,
	table.UserSeries.IsWatching,
	table.UserSeries.InWatchlist,
	table.UserSeries.IsWatched,
	table.UserSeries.WatchedDate,
	table.UserSeries.LastUpdated,
}

func whereTracking(userID, seriesID int32) sqlite.BoolExpression {
	return table.UserSeries.UserID.EQ(sqlite.Int32(userID)).
		AND(table.UserSeries.SeriesID.EQ(sqlite.Int32(seriesID)))
}

func kindColumn(kind storage.ListKind) sqlite.ColumnBool {
	switch kind {
	case storage.ListWatchlist:
		return table.UserSeries.InWatchlist
	case storage.ListWatched:
		return table.UserSeries.IsWatched
	default:
		return table.UserSeries.IsWatching
	}
}

// trackingRow builds the flag and timestamp state of a row in the given list.
// watched_date is only kept while the row is in the watched list.
func (s *SQLite) trackingRow(userID, seriesID int32, kind storage.ListKind) model.UserSeries {
	now := s.now()
	watching, watchlist, watched := kind.Flags()

	us := model.UserSeries{
		UserID:      userID,
		SeriesID:    seriesID,
		IsWatching:  watching,
		InWatchlist: watchlist,
		IsWatched:   watched,
		LastUpdated: now,
	}
	if watched {
		us.WatchedDate = &now
	}

	return us
}

// TrackSeries starts tracking a series for a user in the given list. Tracking an already tracked
// series replaces its progress and list.
func (s *SQLite) TrackSeries(ctx context.Context, userID, seriesID int32, season, episode int32, kind storage.ListKind) (*model.UserSeries, error) {
	us := s.trackingRow(userID, seriesID, kind)
	us.CurrentSeason = season
	us.CurrentEpisode = episode

	stmt := table.UserSeries.
		INSERT(trackingInsertColumns).
		MODEL(us).
		ON_CONFLICT(table.UserSeries.UserID, table.UserSeries.SeriesID).
		DO_UPDATE(sqlite.SET(
			table.UserSeries.CurrentSeason.SET(table.UserSeries.EXCLUDED.CurrentSeason),
			table.UserSeries.CurrentEpisode.SET(table.UserSeries.EXCLUDED.CurrentEpisode),
			table.UserSeries.IsWatching.SET(table.UserSeries.EXCLUDED.IsWatching),
			table.UserSeries.InWatchlist.SET(table.UserSeries.EXCLUDED.InWatchlist),
			table.UserSeries.IsWatched.SET(table.UserSeries.EXCLUDED.IsWatched),
			table.UserSeries.WatchedDate.SET(table.UserSeries.EXCLUDED.WatchedDate),
			table.UserSeries.LastUpdated.SET(table.UserSeries.EXCLUDED.LastUpdated),
		)).
		RETURNING(table.UserSeries.AllColumns)

	var result model.UserSeries
	if err := s.handleQuery(ctx, stmt, &result); err != nil {
		return nil, fmt.Errorf("failed to track series: %w", err)
	}

	return &result, nil
}

// MarkWatchedDirectly puts a series in the watched list whether or not it was tracked before.
// Progress of an existing row is kept.
func (s *SQLite) MarkWatchedDirectly(ctx context.Context, userID, seriesID int32) (*model.UserSeries, error) {
	us := s.trackingRow(userID, seriesID, storage.ListWatched)
	us.CurrentSeason = 1
	us.CurrentEpisode = 0

	stmt := table.UserSeries.
		INSERT(trackingInsertColumns).
		MODEL(us).
		ON_CONFLICT(table.UserSeries.UserID, table.UserSeries.SeriesID).
		DO_UPDATE(sqlite.SET(
			table.UserSeries.IsWatching.SET(table.UserSeries.EXCLUDED.IsWatching),
			table.UserSeries.InWatchlist.SET(table.UserSeries.EXCLUDED.InWatchlist),
			table.UserSeries.IsWatched.SET(table.UserSeries.EXCLUDED.IsWatched),
			table.UserSeries.WatchedDate.SET(table.UserSeries.EXCLUDED.WatchedDate),
			table.UserSeries.LastUpdated.SET(table.UserSeries.EXCLUDED.LastUpdated),
		)).
		RETURNING(table.UserSeries.AllColumns)

	var result model.UserSeries
	if err := s.handleQuery(ctx, stmt, &result); err != nil {
		return nil, fmt.Errorf("failed to mark series watched: %w", err)
	}

	return &result, nil
}

// GetUserSeries returns the tracking row for a user and series
func (s *SQLite) GetUserSeries(ctx context.Context, userID, seriesID int32) (*model.UserSeries, error) {
	stmt := table.UserSeries.
		SELECT(table.UserSeries.AllColumns).
		FROM(table.UserSeries).
		WHERE(whereTracking(userID, seriesID))

	var us model.UserSeries
	err := stmt.QueryContext(ctx, s.db, &us)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user series: %w", err)
	}

	return &us, nil
}

// UpdateProgress sets the current season and episode of a tracked series.
// It returns storage.ErrNotFound and creates nothing if the series is not tracked.
func (s *SQLite) UpdateProgress(ctx context.Context, userID, seriesID int32, season, episode int32) error {
	stmt := table.UserSeries.
		UPDATE(
			table.UserSeries.CurrentSeason,
			table.UserSeries.CurrentEpisode,
			table.UserSeries.LastUpdated,
		).
		MODEL(model.UserSeries{
			CurrentSeason:  season,
			CurrentEpisode: episode,
			LastUpdated:    s.now(),
		}).
		WHERE(whereTracking(userID, seriesID))

	result, err := s.handleStatement(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to update progress: %w", err)
	}

	ok, err := affected(result)
	if err != nil {
		return err
	}
	if !ok {
		return storage.ErrNotFound
	}

	return nil
}

// RemoveTracking deletes the tracking row. It reports false when there was nothing to delete.
func (s *SQLite) RemoveTracking(ctx context.Context, userID, seriesID int32) (bool, error) {
	stmt := table.UserSeries.
		DELETE().
		WHERE(whereTracking(userID, seriesID))

	result, err := s.handleStatement(ctx, stmt)
	if err != nil {
		return false, fmt.Errorf("failed to remove tracking: %w", err)
	}

	return affected(result)
}

// ListTracked lists a user's series in the given list ordered by series name
func (s *SQLite) ListTracked(ctx context.Context, userID int32, kind storage.ListKind) ([]*storage.TrackedSeries, error) {
	stmt := table.UserSeries.
		SELECT(
			table.UserSeries.AllColumns,
			table.Series.AllColumns,
		).
		FROM(
			table.UserSeries.
				INNER_JOIN(table.Series, table.Series.ID.EQ(table.UserSeries.SeriesID)),
		).
		WHERE(
			table.UserSeries.UserID.EQ(sqlite.Int32(userID)).
				AND(kindColumn(kind).IS_TRUE()),
		).
		ORDER_BY(table.Series.Name.ASC(), table.UserSeries.ID.ASC())

	tracked := make([]*storage.TrackedSeries, 0)
	if err := stmt.QueryContext(ctx, s.db, &tracked); err != nil {
		return nil, fmt.Errorf("failed to list tracked series: %w", err)
	}

	return tracked, nil
}

// MoveToWatching moves a tracked series to the watching list
func (s *SQLite) MoveToWatching(ctx context.Context, userID, seriesID int32) (bool, error) {
	return s.moveTo(ctx, userID, seriesID, storage.ListWatching)
}

// MoveToWatchlist moves a tracked series to the watch later list
func (s *SQLite) MoveToWatchlist(ctx context.Context, userID, seriesID int32) (bool, error) {
	return s.moveTo(ctx, userID, seriesID, storage.ListWatchlist)
}

// MarkWatched moves a tracked series to the watched list and stamps the completion date
func (s *SQLite) MarkWatched(ctx context.Context, userID, seriesID int32) (bool, error) {
	return s.moveTo(ctx, userID, seriesID, storage.ListWatched)
}

func (s *SQLite) moveTo(ctx context.Context, userID, seriesID int32, kind storage.ListKind) (bool, error) {
	stmt := table.UserSeries.
		UPDATE(
			table.UserSeries.IsWatching,
			table.UserSeries.InWatchlist,
			table.UserSeries.IsWatched,
			table.UserSeries.WatchedDate,
			table.UserSeries.LastUpdated,
		).
		MODEL(s.trackingRow(userID, seriesID, kind)).
		WHERE(whereTracking(userID, seriesID))

	result, err := s.handleStatement(ctx, stmt)
	if err != nil {
		return false, fmt.Errorf("failed to move series to %s: %w", kind, err)
	}

	return affected(result)
}

// ListWatchers lists the users currently watching a series
func (s *SQLite) ListWatchers(ctx context.Context, seriesID int32) ([]*model.User, error) {
	stmt := table.User.
		SELECT(table.User.AllColumns).
		FROM(
			table.User.
				INNER_JOIN(table.UserSeries, table.UserSeries.UserID.EQ(table.User.ID)),
		).
		WHERE(
			table.UserSeries.SeriesID.EQ(sqlite.Int32(seriesID)).
				AND(table.UserSeries.IsWatching.IS_TRUE()),
		).
		ORDER_BY(table.User.ID.ASC())

	users := make([]*model.User, 0)
	if err := stmt.QueryContext(ctx, s.db, &users); err != nil {
		return nil, fmt.Errorf("failed to list watchers: %w", err)
	}

	return users, nil
}
