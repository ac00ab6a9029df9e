package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/smokeless/internal/models"
	"github.com/julianstephens/smokeless/internal/validation"
)

const dailyLogColumns = "id, date, cravings, mood, notes, created_at"

func (s *Store) SaveDailyLog(log models.DailyLog) error {
	if err := validation.ValidateDailyLog(log); err != nil {
		return err
	}
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(
		"INSERT INTO daily_logs ("+dailyLogColumns+") VALUES (?, ?, ?, ?, ?, ?)",
		log.ID, log.Date, log.Cravings, log.Mood, log.Notes, log.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to save daily log: %w", err)
	}
	return nil
}

func (s *Store) GetDailyLogs() ([]models.DailyLog, error) {
	rows, err := s.db.Query("SELECT " + dailyLogColumns + " FROM daily_logs ORDER BY date, created_at")
	if err != nil {
		return nil, fmt.Errorf("failed to query daily logs: %w", err)
	}
	return scanDailyLogs(rows)
}

// GetDailyLogsInRange returns logs with startDay <= date <= endDay.
func (s *Store) GetDailyLogsInRange(startDay, endDay string) ([]models.DailyLog, error) {
	rows, err := s.db.Query(
		"SELECT "+dailyLogColumns+" FROM daily_logs WHERE date >= ? AND date <= ? ORDER BY date, created_at",
		startDay, endDay,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily logs: %w", err)
	}
	return scanDailyLogs(rows)
}

func scanDailyLogs(rows *sql.Rows) ([]models.DailyLog, error) {
	defer rows.Close()

	logs := []models.DailyLog{}
	for rows.Next() {
		var log models.DailyLog
		var createdAt string
		if err := rows.Scan(&log.ID, &log.Date, &log.Cravings, &log.Mood, &log.Notes, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan daily log: %w", err)
		}
		t, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for log %s: %w", log.ID, err)
		}
		log.CreatedAt = t
		logs = append(logs, log)
	}
	return logs, rows.Err()
}
