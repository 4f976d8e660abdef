package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type settingsRepository struct {
	db *sql.DB
}

func NewSettingsRepository(db *sql.DB) *settingsRepository {
	return &settingsRepository{db: db}
}

// SetMyGoMode upserts the flag for a chat. The write is durable before this
// returns; on failure nothing is committed and the caller reports it instead
// of applying a setting that would vanish on restart.
func (s *settingsRepository) SetMyGoMode(ctx context.Context, chatID int64, enabled bool) error {
	const query = `
		INSERT INTO chat_settings (chat_id, mygo_enabled)
		VALUES (?, ?)
		ON CONFLICT (chat_id)
		DO UPDATE SET mygo_enabled = excluded.mygo_enabled
	`

	if _, err := s.db.ExecContext(ctx, query, chatID, enabled); err != nil {
		return fmt.Errorf("saving mygo mode: %w", err)
	}

	return nil
}

// GetMyGoMode returns the flag for a chat. Chats that never set anything read
// as false; absence is not an error and is indistinguishable from an explicit
// false record.
func (s *settingsRepository) GetMyGoMode(ctx context.Context, chatID int64) (bool, error) {
	const query = `
		SELECT mygo_enabled
		FROM chat_settings
		WHERE chat_id = ?
	`

	var enabled bool
	err := s.db.QueryRowContext(ctx, query, chatID).Scan(&enabled)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("fetching mygo mode by chatID: %w", err)
	}

	return enabled, nil
}
