package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sprintops/sprintops/internal/domain"
)

const sprintColumns = `sprint_id, user_id, name, goal, start_date, end_date, created_at, updated_at`

func scanSprint(row pgx.Row) (domain.Sprint, error) {
	var s domain.Sprint
	err := row.Scan(&s.ID, &s.UserID, &s.Name, &s.Goal, &s.StartDate, &s.EndDate, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func (r *Repository) InsertSprint(ctx context.Context, sprint domain.Sprint) (domain.Sprint, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO sprints (sprint_id, user_id, name, goal, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+sprintColumns+`
	`, sprint.ID, sprint.UserID, sprint.Name, sprint.Goal, sprint.StartDate, sprint.EndDate)

	stored, err := scanSprint(row)
	if err != nil {
		return domain.Sprint{}, fmt.Errorf("insert sprint: %w", err)
	}

	return stored, nil
}

func (r *Repository) GetSprint(ctx context.Context, sprintID, userID string) (domain.Sprint, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+sprintColumns+`
		FROM sprints
		WHERE sprint_id = $1 AND user_id = $2
	`, sprintID, userID)

	sprint, err := scanSprint(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Sprint{}, ErrSprintNotFound
	}
	if err != nil {
		return domain.Sprint{}, fmt.Errorf("select sprint: %w", err)
	}

	return sprint, nil
}

func (r *Repository) ListSprintsByUser(ctx context.Context, userID string) ([]domain.Sprint, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+sprintColumns+`
		FROM sprints
		WHERE user_id = $1
		ORDER BY start_date DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("select sprints: %w", err)
	}
	defer rows.Close()

	sprints := make([]domain.Sprint, 0)
	for rows.Next() {
		sprint, err := scanSprint(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sprint: %w", err)
		}
		sprints = append(sprints, sprint)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sprints: %w", err)
	}

	return sprints, nil
}

func (r *Repository) UpdateSprint(ctx context.Context, sprint domain.Sprint) (domain.Sprint, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE sprints
		SET name = $3,
		    goal = $4,
		    start_date = $5,
		    end_date = $6,
		    updated_at = NOW()
		WHERE sprint_id = $1 AND user_id = $2
		RETURNING `+sprintColumns+`
	`, sprint.ID, sprint.UserID, sprint.Name, sprint.Goal, sprint.StartDate, sprint.EndDate)

	stored, err := scanSprint(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Sprint{}, ErrSprintNotFound
	}
	if err != nil {
		return domain.Sprint{}, fmt.Errorf("update sprint: %w", err)
	}

	return stored, nil
}

func (r *Repository) DeleteTaskLogsBySprint(ctx context.Context, tx pgx.Tx, sprintID string) error {
	if tx == nil {
		return errTxRequired
	}
	if _, err := tx.Exec(ctx, `DELETE FROM task_logs WHERE sprint_id = $1`, sprintID); err != nil {
		return fmt.Errorf("delete sprint task logs: %w", err)
	}
	return nil
}

func (r *Repository) DeleteTasksBySprint(ctx context.Context, tx pgx.Tx, sprintID string) error {
	if tx == nil {
		return errTxRequired
	}
	if _, err := tx.Exec(ctx, `DELETE FROM tasks WHERE sprint_id = $1`, sprintID); err != nil {
		return fmt.Errorf("delete sprint tasks: %w", err)
	}
	return nil
}

func (r *Repository) DeletePullRequestsBySprint(ctx context.Context, tx pgx.Tx, sprintID string) error {
	if tx == nil {
		return errTxRequired
	}
	if _, err := tx.Exec(ctx, `DELETE FROM pull_requests WHERE sprint_id = $1`, sprintID); err != nil {
		return fmt.Errorf("delete sprint pull requests: %w", err)
	}
	return nil
}

func (r *Repository) DeleteFeedbackBySprint(ctx context.Context, tx pgx.Tx, sprintID string) error {
	if tx == nil {
		return errTxRequired
	}
	if _, err := tx.Exec(ctx, `DELETE FROM feedback WHERE sprint_id = $1`, sprintID); err != nil {
		return fmt.Errorf("delete sprint feedback: %w", err)
	}
	return nil
}

func (r *Repository) DeleteSprint(ctx context.Context, tx pgx.Tx, sprintID, userID string) error {
	if tx == nil {
		return errTxRequired
	}
	tag, err := tx.Exec(ctx, `
		DELETE FROM sprints WHERE sprint_id = $1 AND user_id = $2
	`, sprintID, userID)
	if err != nil {
		return fmt.Errorf("delete sprint: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSprintNotFound
	}
	return nil
}
