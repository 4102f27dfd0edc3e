package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/sprintops/sprintops/internal/domain"
	"github.com/sprintops/sprintops/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *Service) GetUser(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

// UpdateUserInput carries the optional fields of a partial user update;
// nil means leave unchanged.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
}

func (s *Service) UpdateUser(ctx context.Context, userID string, input UpdateUserInput) (domain.User, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}

	if input.Name != nil && strings.TrimSpace(*input.Name) != "" {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil && strings.TrimSpace(*input.Email) != "" {
		user.Email = strings.TrimSpace(*input.Email)
	}
	if input.Password != nil && strings.TrimSpace(*input.Password) != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcryptCost)
		if err != nil {
			return domain.User{}, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	stored, err := s.repo.UpdateUser(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return domain.User{}, ErrUserNotFound
		case errors.Is(err, repository.ErrEmailTaken):
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, err
	}

	return stored, nil
}

// DeleteUser removes the user and every record reachable through the
// user's sprints, as one ordered transaction: logs, tasks, pull
// requests, feedback, sprints, then the user row itself.
func (s *Service) DeleteUser(ctx context.Context, userID string) error {
	return s.repo.RunInTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.repo.DeleteTaskLogsByUser(ctx, tx, userID); err != nil {
			return err
		}
		if err := s.repo.DeleteTasksByUser(ctx, tx, userID); err != nil {
			return err
		}
		if err := s.repo.DeletePullRequestsByUser(ctx, tx, userID); err != nil {
			return err
		}
		if err := s.repo.DeleteFeedbackByUser(ctx, tx, userID); err != nil {
			return err
		}
		if err := s.repo.DeleteSprintsByUser(ctx, tx, userID); err != nil {
			return err
		}
		if err := s.repo.DeleteUser(ctx, tx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		return nil
	})
}
