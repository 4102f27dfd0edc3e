package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sprintops/sprintops/internal/domain"
)

const userColumns = `user_id, name, email, password_hash, created_at, updated_at`

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (r *Repository) InsertUser(ctx context.Context, user domain.User) (domain.User, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (user_id, name, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING `+userColumns+`
	`, user.ID, user.Name, user.Email, user.PasswordHash)

	stored, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, fmt.Errorf("insert user: %w", err)
	}

	return stored, nil
}

func (r *Repository) GetUser(ctx context.Context, userID string) (domain.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = $1`, userID)

	user, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("select user: %w", err)
	}

	return user, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)

	user, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("select user by email: %w", err)
	}

	return user, nil
}

func (r *Repository) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

func (r *Repository) UpdateUser(ctx context.Context, user domain.User) (domain.User, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE users
		SET name = $2,
		    email = $3,
		    password_hash = $4,
		    updated_at = NOW()
		WHERE user_id = $1
		RETURNING `+userColumns+`
	`, user.ID, user.Name, user.Email, user.PasswordHash)

	stored, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, ErrUserNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, fmt.Errorf("update user: %w", err)
	}

	return stored, nil
}

// Per-user tx deletes resolve children through the sprint ownership
// chain; the delete-user use case issues them in dependency order.

func (r *Repository) DeleteTaskLogsByUser(ctx context.Context, tx pgx.Tx, userID string) error {
	if tx == nil {
		return errTxRequired
	}
	if _, err := tx.Exec(ctx, `
		DELETE FROM task_logs tl
		USING sprints s
		WHERE tl.sprint_id = s.sprint_id AND s.user_id = $1
	`, userID); err != nil {
		return fmt.Errorf("delete user task logs: %w", err)
	}
	return nil
}

func (r *Repository) DeleteTasksByUser(ctx context.Context, tx pgx.Tx, userID string) error {
	if tx == nil {
		return errTxRequired
	}
	if _, err := tx.Exec(ctx, `
		DELETE FROM tasks t
		USING sprints s
		WHERE t.sprint_id = s.sprint_id AND s.user_id = $1
	`, userID); err != nil {
		return fmt.Errorf("delete user tasks: %w", err)
	}
	return nil
}

func (r *Repository) DeletePullRequestsByUser(ctx context.Context, tx pgx.Tx, userID string) error {
	if tx == nil {
		return errTxRequired
	}
	if _, err := tx.Exec(ctx, `
		DELETE FROM pull_requests pr
		USING sprints s
		WHERE pr.sprint_id = s.sprint_id AND s.user_id = $1
	`, userID); err != nil {
		return fmt.Errorf("delete user pull requests: %w", err)
	}
	return nil
}

func (r *Repository) DeleteFeedbackByUser(ctx context.Context, tx pgx.Tx, userID string) error {
	if tx == nil {
		return errTxRequired
	}
	if _, err := tx.Exec(ctx, `
		DELETE FROM feedback f
		USING sprints s
		WHERE f.sprint_id = s.sprint_id AND s.user_id = $1
	`, userID); err != nil {
		return fmt.Errorf("delete user feedback: %w", err)
	}
	return nil
}

func (r *Repository) DeleteSprintsByUser(ctx context.Context, tx pgx.Tx, userID string) error {
	if tx == nil {
		return errTxRequired
	}
	if _, err := tx.Exec(ctx, `DELETE FROM sprints WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete user sprints: %w", err)
	}
	return nil
}

func (r *Repository) DeleteUser(ctx context.Context, tx pgx.Tx, userID string) error {
	if tx == nil {
		return errTxRequired
	}
	tag, err := tx.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}
