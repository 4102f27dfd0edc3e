package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sprintops/sprintops/internal/domain"
)

const taskLogColumns = `log_id, sprint_id, task_id, summary, skills_used, time_spent_minutes, progress_percent, log_date, created_at, updated_at`

func scanTaskLog(row pgx.Row) (domain.TaskLog, error) {
	var l domain.TaskLog
	err := row.Scan(&l.ID, &l.SprintID, &l.TaskID, &l.Summary, &l.SkillsUsed, &l.TimeSpentMinutes, &l.ProgressPercent, &l.Date, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}

func (r *Repository) InsertTaskLog(ctx context.Context, log domain.TaskLog) (domain.TaskLog, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO task_logs (log_id, sprint_id, task_id, summary, skills_used, time_spent_minutes, progress_percent, log_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+taskLogColumns+`
	`, log.ID, log.SprintID, log.TaskID, log.Summary, log.SkillsUsed, log.TimeSpentMinutes, log.ProgressPercent, log.Date)

	stored, err := scanTaskLog(row)
	if err != nil {
		return domain.TaskLog{}, fmt.Errorf("insert task log: %w", err)
	}

	return stored, nil
}

func (r *Repository) ListTaskLogsByTask(ctx context.Context, taskID string) ([]domain.TaskLog, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+taskLogColumns+`
		FROM task_logs
		WHERE task_id = $1
		ORDER BY log_date DESC
	`, taskID)
	if err != nil {
		return nil, fmt.Errorf("select task logs: %w", err)
	}
	defer rows.Close()

	return collectTaskLogs(rows)
}

func collectTaskLogs(rows pgx.Rows) ([]domain.TaskLog, error) {
	logs := make([]domain.TaskLog, 0)
	for rows.Next() {
		log, err := scanTaskLog(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task log: %w", err)
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate task logs: %w", err)
	}
	return logs, nil
}
