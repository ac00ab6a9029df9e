package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/smokeless/internal/constants"
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
		"INSERT INTO daily_logs ("+dailyLogColumns+") VALUES ($1, $2, $3, $4, $5, $6)",
		log.ID, log.Date, log.Cravings, log.Mood, log.Notes, log.CreatedAt.UTC(),
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

func (s *Store) GetDailyLogsInRange(startDay, endDay string) ([]models.DailyLog, error) {
	rows, err := s.db.Query(
		"SELECT "+dailyLogColumns+" FROM daily_logs WHERE date >= $1 AND date <= $2 ORDER BY date, created_at",
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
		var date time.Time
		if err := rows.Scan(&log.ID, &date, &log.Cravings, &log.Mood, &log.Notes, &log.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan daily log: %w", err)
		}
		log.Date = date.Format(constants.DateFormat)
		logs = append(logs, log)
	}
	return logs, rows.Err()
}
