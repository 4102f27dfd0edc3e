package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sprintops/sprintops/internal/domain"
)

const taskColumns = `task_id, sprint_id, title, description, story_points, skills, status, created_at, updated_at`

func scanTask(row pgx.Row) (domain.Task, error) {
	var t domain.Task
	err := row.Scan(&t.ID, &t.SprintID, &t.Title, &t.Description, &t.StoryPoints, &t.Skills, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (r *Repository) InsertTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (task_id, sprint_id, title, description, story_points, skills, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+taskColumns+`
	`, task.ID, task.SprintID, task.Title, task.Description, task.StoryPoints, task.Skills, task.Status)

	stored, err := scanTask(row)
	if err != nil {
		return domain.Task{}, fmt.Errorf("insert task: %w", err)
	}

	return stored, nil
}

func (r *Repository) GetTask(ctx context.Context, taskID, sprintID string) (domain.Task, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+taskColumns+`
		FROM tasks
		WHERE task_id = $1 AND sprint_id = $2
	`, taskID, sprintID)

	task, err := scanTask(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Task{}, ErrTaskNotFound
	}
	if err != nil {
		return domain.Task{}, fmt.Errorf("select task: %w", err)
	}

	return task, nil
}

func (r *Repository) ListTasksBySprint(ctx context.Context, sprintID string) ([]domain.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+taskColumns+`
		FROM tasks
		WHERE sprint_id = $1
		ORDER BY created_at DESC
	`, sprintID)
	if err != nil {
		return nil, fmt.Errorf("select tasks: %w", err)
	}
	defer rows.Close()

	return collectTasks(rows)
}

func collectTasks(rows pgx.Rows) ([]domain.Task, error) {
	tasks := make([]domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

func (r *Repository) UpdateTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE tasks
		SET title = $3,
		    description = $4,
		    story_points = $5,
		    skills = $6,
		    status = $7,
		    updated_at = NOW()
		WHERE task_id = $1 AND sprint_id = $2
		RETURNING `+taskColumns+`
	`, task.ID, task.SprintID, task.Title, task.Description, task.StoryPoints, task.Skills, task.Status)

	stored, err := scanTask(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Task{}, ErrTaskNotFound
	}
	if err != nil {
		return domain.Task{}, fmt.Errorf("update task: %w", err)
	}

	return stored, nil
}

func (r *Repository) DeleteTaskLogsByTask(ctx context.Context, tx pgx.Tx, taskID string) error {
	if tx == nil {
		return errTxRequired
	}
	if _, err := tx.Exec(ctx, `DELETE FROM task_logs WHERE task_id = $1`, taskID); err != nil {
		return fmt.Errorf("delete task logs: %w", err)
	}
	return nil
}

func (r *Repository) DeleteTask(ctx context.Context, tx pgx.Tx, taskID, sprintID string) error {
	if tx == nil {
		return errTxRequired
	}
	tag, err := tx.Exec(ctx, `
		DELETE FROM tasks WHERE task_id = $1 AND sprint_id = $2
	`, taskID, sprintID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTaskNotFound
	}
	return nil
}
