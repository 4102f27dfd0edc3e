package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sprintops/sprintops/internal/domain"
)

const feedbackColumns = `feedback_id, sprint_id, type, source, content, context, fb_date, created_at, updated_at`

func scanFeedback(row pgx.Row) (domain.Feedback, error) {
	var f domain.Feedback
	err := row.Scan(&f.ID, &f.SprintID, &f.Type, &f.Source, &f.Content, &f.Context, &f.Date, &f.CreatedAt, &f.UpdatedAt)
	return f, err
}

func (r *Repository) InsertFeedback(ctx context.Context, fb domain.Feedback) (domain.Feedback, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO feedback (feedback_id, sprint_id, type, source, content, context, fb_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+feedbackColumns+`
	`, fb.ID, fb.SprintID, fb.Type, fb.Source, fb.Content, fb.Context, fb.Date)

	stored, err := scanFeedback(row)
	if err != nil {
		return domain.Feedback{}, fmt.Errorf("insert feedback: %w", err)
	}

	return stored, nil
}

func (r *Repository) ListFeedbackBySprint(ctx context.Context, sprintID string) ([]domain.Feedback, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+feedbackColumns+`
		FROM feedback
		WHERE sprint_id = $1
		ORDER BY fb_date DESC
	`, sprintID)
	if err != nil {
		return nil, fmt.Errorf("select feedback: %w", err)
	}
	defer rows.Close()

	return collectFeedback(rows)
}

func collectFeedback(rows pgx.Rows) ([]domain.Feedback, error) {
	list := make([]domain.Feedback, 0)
	for rows.Next() {
		fb, err := scanFeedback(rows)
		if err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		list = append(list, fb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feedback: %w", err)
	}
	return list, nil
}

func (r *Repository) UpdateFeedback(ctx context.Context, fb domain.Feedback) (domain.Feedback, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE feedback
		SET type = $3,
		    source = $4,
		    content = $5,
		    context = $6,
		    fb_date = $7,
		    updated_at = NOW()
		WHERE feedback_id = $1 AND sprint_id = $2
		RETURNING `+feedbackColumns+`
	`, fb.ID, fb.SprintID, fb.Type, fb.Source, fb.Content, fb.Context, fb.Date)

	stored, err := scanFeedback(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Feedback{}, ErrFeedbackNotFound
	}
	if err != nil {
		return domain.Feedback{}, fmt.Errorf("update feedback: %w", err)
	}

	return stored, nil
}

func (r *Repository) DeleteFeedback(ctx context.Context, feedbackID, sprintID string) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM feedback WHERE feedback_id = $1 AND sprint_id = $2
	`, feedbackID, sprintID)
	if err != nil {
		return fmt.Errorf("delete feedback: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrFeedbackNotFound
	}
	return nil
}
