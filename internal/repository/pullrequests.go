package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sprintops/sprintops/internal/domain"
)

const pullRequestColumns = `pull_request_id, sprint_id, title, purpose, summary, challenges, skills_used, status, created_at, updated_at`

func scanPullRequest(row pgx.Row) (domain.PullRequest, error) {
	var pr domain.PullRequest
	err := row.Scan(&pr.ID, &pr.SprintID, &pr.Title, &pr.Purpose, &pr.Summary, &pr.Challenges, &pr.SkillsUsed, &pr.Status, &pr.CreatedAt, &pr.UpdatedAt)
	return pr, err
}

func (r *Repository) InsertPullRequest(ctx context.Context, pr domain.PullRequest) (domain.PullRequest, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO pull_requests (pull_request_id, sprint_id, title, purpose, summary, challenges, skills_used, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+pullRequestColumns+`
	`, pr.ID, pr.SprintID, pr.Title, pr.Purpose, pr.Summary, pr.Challenges, pr.SkillsUsed, pr.Status)

	stored, err := scanPullRequest(row)
	if err != nil {
		return domain.PullRequest{}, fmt.Errorf("insert pull request: %w", err)
	}

	return stored, nil
}

func (r *Repository) ListPullRequestsBySprint(ctx context.Context, sprintID string) ([]domain.PullRequest, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+pullRequestColumns+`
		FROM pull_requests
		WHERE sprint_id = $1
		ORDER BY created_at DESC
	`, sprintID)
	if err != nil {
		return nil, fmt.Errorf("select pull requests: %w", err)
	}
	defer rows.Close()

	return collectPullRequests(rows)
}

func collectPullRequests(rows pgx.Rows) ([]domain.PullRequest, error) {
	prs := make([]domain.PullRequest, 0)
	for rows.Next() {
		pr, err := scanPullRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pull request: %w", err)
		}
		prs = append(prs, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pull requests: %w", err)
	}
	return prs, nil
}

func (r *Repository) UpdatePullRequest(ctx context.Context, pr domain.PullRequest) (domain.PullRequest, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE pull_requests
		SET title = $3,
		    purpose = $4,
		    summary = $5,
		    challenges = $6,
		    skills_used = $7,
		    status = $8,
		    updated_at = NOW()
		WHERE pull_request_id = $1 AND sprint_id = $2
		RETURNING `+pullRequestColumns+`
	`, pr.ID, pr.SprintID, pr.Title, pr.Purpose, pr.Summary, pr.Challenges, pr.SkillsUsed, pr.Status)

	stored, err := scanPullRequest(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.PullRequest{}, ErrPullRequestNotFound
	}
	if err != nil {
		return domain.PullRequest{}, fmt.Errorf("update pull request: %w", err)
	}

	return stored, nil
}

func (r *Repository) DeletePullRequest(ctx context.Context, prID, sprintID string) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM pull_requests WHERE pull_request_id = $1 AND sprint_id = $2
	`, prID, sprintID)
	if err != nil {
		return fmt.Errorf("delete pull request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPullRequestNotFound
	}
	return nil
}
