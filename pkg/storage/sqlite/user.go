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

// UpsertUser stores a user keyed by telegram id, refreshing the display fields if it already exists
func (s *SQLite) UpsertUser(ctx context.Context, user model.User) (*model.User, error) {
	if user.TelegramID == "" {
		return nil, errors.New("telegram id is required")
	}

	stmt := table.User.
		INSERT(
			table.User.TelegramID,
			table.User.Username,
			table.User.FirstName,
			table.User.LastName,
		).
		MODEL(user).
		ON_CONFLICT(table.User.TelegramID).
		DO_UPDATE(sqlite.SET(
			table.User.Username.SET(table.User.EXCLUDED.Username),
			table.User.FirstName.SET(table.User.EXCLUDED.FirstName),
			table.User.LastName.SET(table.User.EXCLUDED.LastName),
		)).
		RETURNING(table.User.AllColumns)

	var result model.User
	if err := s.handleQuery(ctx, stmt, &result); err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	return &result, nil
}

// GetUser looks up a user by telegram id
func (s *SQLite) GetUser(ctx context.Context, telegramID string) (*model.User, error) {
	stmt := table.User.
		SELECT(table.User.AllColumns).
		FROM(table.User).
		WHERE(table.User.TelegramID.EQ(sqlite.String(telegramID)))

	var user model.User
	err := stmt.QueryContext(ctx, s.db, &user)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}
