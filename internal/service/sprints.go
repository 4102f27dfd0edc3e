package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sprintops/sprintops/internal/domain"
	"github.com/sprintops/sprintops/internal/repository"
)

type SprintInput struct {
	Name      string
	Goal      string
	StartDate time.Time
	EndDate   time.Time
}

func (s *Service) CreateSprint(ctx context.Context, userID string, input SprintInput) (domain.Sprint, error) {
	return s.repo.InsertSprint(ctx, domain.Sprint{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      input.Name,
		Goal:      input.Goal,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	})
}

func (s *Service) ListSprints(ctx context.Context, userID string) ([]domain.Sprint, error) {
	return s.repo.ListSprintsByUser(ctx, userID)
}

func (s *Service) GetSprint(ctx context.Context, userID, sprintID string) (domain.Sprint, error) {
	sprint, err := s.repo.GetSprint(ctx, sprintID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSprintNotFound) {
			return domain.Sprint{}, ErrSprintNotFound
		}
		return domain.Sprint{}, err
	}
	return sprint, nil
}

func (s *Service) UpdateSprint(ctx context.Context, userID, sprintID string, input SprintInput) (domain.Sprint, error) {
	sprint, err := s.repo.UpdateSprint(ctx, domain.Sprint{
		ID:        sprintID,
		UserID:    userID,
		Name:      input.Name,
		Goal:      input.Goal,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	})
	if err != nil {
		if errors.Is(err, repository.ErrSprintNotFound) {
			return domain.Sprint{}, ErrSprintNotFound
		}
		return domain.Sprint{}, err
	}
	return sprint, nil
}

// DeleteSprint removes the sprint together with its logs, tasks, pull
// requests and feedback in one transaction. The foreign keys reject
// orphaned children, so the cascade is explicit.
func (s *Service) DeleteSprint(ctx context.Context, userID, sprintID string) error {
	if _, err := s.GetSprint(ctx, userID, sprintID); err != nil {
		return err
	}

	return s.repo.RunInTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.repo.DeleteTaskLogsBySprint(ctx, tx, sprintID); err != nil {
			return err
		}
		if err := s.repo.DeleteTasksBySprint(ctx, tx, sprintID); err != nil {
			return err
		}
		if err := s.repo.DeletePullRequestsBySprint(ctx, tx, sprintID); err != nil {
			return err
		}
		if err := s.repo.DeleteFeedbackBySprint(ctx, tx, sprintID); err != nil {
			return err
		}
		if err := s.repo.DeleteSprint(ctx, tx, sprintID, userID); err != nil {
			if errors.Is(err, repository.ErrSprintNotFound) {
				return ErrSprintNotFound
			}
			return err
		}
		return nil
	})
}

// ensureSprint verifies the (sprint, user) ownership pair before any
// child-entity operation.
func (s *Service) ensureSprint(ctx context.Context, userID, sprintID string) error {
	_, err := s.GetSprint(ctx, userID, sprintID)
	return err
}
