package repository

import (
	"context"
	"fmt"

	"github.com/sprintops/sprintops/internal/domain"
)

// Analytics reads. The join/filter stage is pushed down to the store;
// grouping and windowing happen in the aggregation engine.

func (r *Repository) ListUserSprints(ctx context.Context, userID string) ([]domain.Sprint, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+sprintColumns+`
		FROM sprints
		WHERE user_id = $1
		ORDER BY created_at, sprint_id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("select user sprints: %w", err)
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
		return nil, fmt.Errorf("iterate user sprints: %w", err)
	}

	return sprints, nil
}

func (r *Repository) ListUserTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT t.task_id, t.sprint_id, t.title, t.description, t.story_points, t.skills, t.status, t.created_at, t.updated_at
		FROM tasks t
		JOIN sprints s ON s.sprint_id = t.sprint_id
		WHERE s.user_id = $1
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("select user tasks: %w", err)
	}
	defer rows.Close()

	return collectTasks(rows)
}

func (r *Repository) ListUserPullRequests(ctx context.Context, userID string) ([]domain.PullRequest, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT pr.pull_request_id, pr.sprint_id, pr.title, pr.purpose, pr.summary, pr.challenges, pr.skills_used, pr.status, pr.created_at, pr.updated_at
		FROM pull_requests pr
		JOIN sprints s ON s.sprint_id = pr.sprint_id
		WHERE s.user_id = $1
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("select user pull requests: %w", err)
	}
	defer rows.Close()

	return collectPullRequests(rows)
}

func (r *Repository) ListUserFeedback(ctx context.Context, userID string) ([]domain.Feedback, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT f.feedback_id, f.sprint_id, f.type, f.source, f.content, f.context, f.fb_date, f.created_at, f.updated_at
		FROM feedback f
		JOIN sprints s ON s.sprint_id = f.sprint_id
		WHERE s.user_id = $1
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("select user feedback: %w", err)
	}
	defer rows.Close()

	return collectFeedback(rows)
}

func (r *Repository) ListUserTaskLogs(ctx context.Context, userID string) ([]domain.TaskLog, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT tl.log_id, tl.sprint_id, tl.task_id, tl.summary, tl.skills_used, tl.time_spent_minutes, tl.progress_percent, tl.log_date, tl.created_at, tl.updated_at
		FROM task_logs tl
		JOIN sprints s ON s.sprint_id = tl.sprint_id
		WHERE s.user_id = $1
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("select user task logs: %w", err)
	}
	defer rows.Close()

	return collectTaskLogs(rows)
}

// ListSprintTasksChronological returns a sprint's tasks in the strict
// (created_at, task_id) order the cumulative story-point series is
// defined over.
func (r *Repository) ListSprintTasksChronological(ctx context.Context, sprintID string) ([]domain.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+taskColumns+`
		FROM tasks
		WHERE sprint_id = $1
		ORDER BY created_at, task_id
	`, sprintID)
	if err != nil {
		return nil, fmt.Errorf("select sprint tasks: %w", err)
	}
	defer rows.Close()

	return collectTasks(rows)
}

func (r *Repository) ListSprintTaskLogs(ctx context.Context, sprintID string) ([]domain.TaskLog, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+taskLogColumns+`
		FROM task_logs
		WHERE sprint_id = $1
	`, sprintID)
	if err != nil {
		return nil, fmt.Errorf("select sprint task logs: %w", err)
	}
	defer rows.Close()

	return collectTaskLogs(rows)
}
