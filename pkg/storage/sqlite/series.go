package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/serialz/pkg/storage"
	"github.com/kasuboski/serialz/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/serialz/pkg/storage/sqlite/schema/gen/table"
)

// UpsertSeries stores a series keyed by tmdb id. An existing row gets its mutable fields replaced
// and last_update stamped with the current time.
func (s *SQLite) UpsertSeries(ctx context.Context, series model.Series) (*model.Series, error) {
	if series.Name == "" {
		return nil, errors.New("series name is required")
	}

	now := s.now()
	series.LastUpdate = &now

	stmt := table.Series.
		INSERT(table.Series.MutableColumns).
		MODEL(series).
		ON_CONFLICT(table.Series.TmdbID).
		DO_UPDATE(sqlite.SET(
			table.Series.Name.SET(table.Series.EXCLUDED.Name),
			table.Series.Year.SET(table.Series.EXCLUDED.Year),
			table.Series.TotalSeasons.SET(table.Series.EXCLUDED.TotalSeasons),
			table.Series.LastUpdate.SET(table.Series.EXCLUDED.LastUpdate),
		)).
		RETURNING(table.Series.AllColumns)

	var result model.Series
	if err := s.handleQuery(ctx, stmt, &result); err != nil {
		return nil, fmt.Errorf("failed to upsert series: %w", err)
	}

	return &result, nil
}

// GetSeries looks for a series given a where condition
func (s *SQLite) GetSeries(ctx context.Context, where sqlite.BoolExpression) (*model.Series, error) {
	stmt := table.Series.
		SELECT(table.Series.AllColumns).
		FROM(table.Series).
		WHERE(where)

	var series model.Series
	err := stmt.QueryContext(ctx, s.db, &series)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get series: %w", err)
	}

	return &series, nil
}

// ListSeries lists all series matching the optional conditions
func (s *SQLite) ListSeries(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.Series, error) {
	stmt := table.Series.
		SELECT(table.Series.AllColumns).
		FROM(table.Series).
		ORDER_BY(table.Series.ID.ASC())

	if len(where) > 0 {
		condition := where[0]
		for _, w := range where[1:] {
			condition = condition.AND(w)
		}
		stmt = stmt.WHERE(condition)
	}

	series := make([]*model.Series, 0)
	if err := stmt.QueryContext(ctx, s.db, &series); err != nil {
		return nil, fmt.Errorf("failed to list series: %w", err)
	}

	return series, nil
}

// ListWatchedSeries lists the series that at least one user is currently watching
func (s *SQLite) ListWatchedSeries(ctx context.Context) ([]*model.Series, error) {
	// one row per watcher comes back from the join; rows are grouped by series primary key on scan
	stmt := table.Series.
		SELECT(table.Series.AllColumns).
		FROM(
			table.Series.
				INNER_JOIN(table.UserSeries, table.UserSeries.SeriesID.EQ(table.Series.ID)),
		).
		WHERE(table.UserSeries.IsWatching.IS_TRUE()).
		ORDER_BY(table.Series.ID.ASC())

	series := make([]*model.Series, 0)
	if err := stmt.QueryContext(ctx, s.db, &series); err != nil {
		return nil, fmt.Errorf("failed to list watched series: %w", err)
	}

	return series, nil
}

// RefreshSeriesMetadata updates the cached title and, when known, the year and season count.
// last_update is left alone so new content checks keep their window.
func (s *SQLite) RefreshSeriesMetadata(ctx context.Context, id int32, name string, year *int32, totalSeasons *int32) error {
	columns := sqlite.ColumnList{table.Series.Name}
	if year != nil {
		columns = append(columns, table.Series.Year)
	}
	if totalSeasons != nil {
		columns = append(columns, table.Series.TotalSeasons)
	}

	stmt := table.Series.
		UPDATE(columns).
		MODEL(model.Series{
			Name:         name,
			Year:         year,
			TotalSeasons: totalSeasons,
		}).
		WHERE(table.Series.ID.EQ(sqlite.Int32(id)))

	result, err := s.handleStatement(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to refresh series: %w", err)
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

// TouchSeries records when the series was last checked for new content
func (s *SQLite) TouchSeries(ctx context.Context, id int32, at time.Time) error {
	at = at.UTC()
	stmt := table.Series.
		UPDATE(table.Series.LastUpdate).
		MODEL(model.Series{LastUpdate: &at}).
		WHERE(table.Series.ID.EQ(sqlite.Int32(id)))

	result, err := s.handleStatement(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to touch series: %w", err)
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
