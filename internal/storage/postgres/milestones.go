package postgres

import (
	"fmt"
	"time"
)

func (s *Store) GetNotifiedMilestones() ([]string, error) {
	rows, err := s.db.Query("SELECT id FROM notified_milestones ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query notified milestones: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *Store) MarkMilestonesNotified(ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO notified_milestones (id, notified_at) VALUES ($1, $2)
		ON CONFLICT (id) DO NOTHING`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, id := range ids {
		if _, err := stmt.Exec(id, now); err != nil {
			return fmt.Errorf("failed to mark milestone %s: %w", id, err)
		}
	}
	return tx.Commit()
}
