package storage

import (
	"database/sql"
	"errors"
	"fmt"
)

const keyTutorialSeen = "tutorial_seen"

// Setting returns a per-player setting and whether it exists.
func (s *Store) Setting(player, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(
		"SELECT value FROM settings WHERE player = ? AND key = ?",
		player, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read setting %s: %w", key, err)
	}
	return value, true, nil
}

// SetSetting stores a per-player setting, replacing any previous value.
func (s *Store) SetSetting(player, key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (player, key, value) VALUES (?, ?, ?)
		 ON CONFLICT(player, key) DO UPDATE SET value = excluded.value`,
		player, key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write setting %s: %w", key, err)
	}
	return nil
}

// TutorialSeen reports whether the player has finished or skipped the
// tutorial.
func (s *Store) TutorialSeen(player string) (bool, error) {
	v, ok, err := s.Setting(player, keyTutorialSeen)
	if err != nil {
		return false, err
	}
	return ok && v == "1", nil
}

// MarkTutorialSeen records that the player has finished or skipped the
// tutorial.
func (s *Store) MarkTutorialSeen(player string) error {
	return s.SetSetting(player, keyTutorialSeen, "1")
}

// ResetTutorial makes the tutorial show again for the player.
func (s *Store) ResetTutorial(player string) error {
	_, err := s.db.Exec("DELETE FROM settings WHERE player = ? AND key = ?", player, keyTutorialSeen)
	if err != nil {
		return fmt.Errorf("storage: cannot reset tutorial: %w", err)
	}
	return nil
}
