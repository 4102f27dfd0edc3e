package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sprintops/sprintops/internal/domain"
	"github.com/sprintops/sprintops/internal/repository"
)

type PullRequestInput struct {
	Title      string
	Purpose    string
	Summary    string
	Challenges string
	SkillsUsed []string
	Status     domain.PullRequestStatus
}

func (in PullRequestInput) normalized() (PullRequestInput, error) {
	if in.Status == "" {
		in.Status = domain.PullRequestStatusCreated
	}
	if !in.Status.Valid() {
		return in, fmt.Errorf("%w: unknown pull request status %q", ErrInvalidInput, in.Status)
	}
	if in.SkillsUsed == nil {
		in.SkillsUsed = []string{}
	}
	return in, nil
}

func (s *Service) CreatePullRequest(ctx context.Context, userID, sprintID string, input PullRequestInput) (domain.PullRequest, error) {
	if err := s.ensureSprint(ctx, userID, sprintID); err != nil {
		return domain.PullRequest{}, err
	}
	input, err := input.normalized()
	if err != nil {
		return domain.PullRequest{}, err
	}

	return s.repo.InsertPullRequest(ctx, domain.PullRequest{
		ID:         uuid.NewString(),
		SprintID:   sprintID,
		Title:      input.Title,
		Purpose:    input.Purpose,
		Summary:    input.Summary,
		Challenges: input.Challenges,
		SkillsUsed: input.SkillsUsed,
		Status:     input.Status,
	})
}

func (s *Service) ListPullRequests(ctx context.Context, userID, sprintID string) ([]domain.PullRequest, error) {
	if err := s.ensureSprint(ctx, userID, sprintID); err != nil {
		return nil, err
	}
	return s.repo.ListPullRequestsBySprint(ctx, sprintID)
}

func (s *Service) UpdatePullRequest(ctx context.Context, userID, sprintID, prID string, input PullRequestInput) (domain.PullRequest, error) {
	if err := s.ensureSprint(ctx, userID, sprintID); err != nil {
		return domain.PullRequest{}, err
	}
	input, err := input.normalized()
	if err != nil {
		return domain.PullRequest{}, err
	}

	pr, err := s.repo.UpdatePullRequest(ctx, domain.PullRequest{
		ID:         prID,
		SprintID:   sprintID,
		Title:      input.Title,
		Purpose:    input.Purpose,
		Summary:    input.Summary,
		Challenges: input.Challenges,
		SkillsUsed: input.SkillsUsed,
		Status:     input.Status,
	})
	if err != nil {
		if errors.Is(err, repository.ErrPullRequestNotFound) {
			return domain.PullRequest{}, ErrPullRequestNotFound
		}
		return domain.PullRequest{}, err
	}
	return pr, nil
}

func (s *Service) DeletePullRequest(ctx context.Context, userID, sprintID, prID string) error {
	if err := s.ensureSprint(ctx, userID, sprintID); err != nil {
		return err
	}

	if err := s.repo.DeletePullRequest(ctx, prID, sprintID); err != nil {
		if errors.Is(err, repository.ErrPullRequestNotFound) {
			return ErrPullRequestNotFound
		}
		return err
	}
	return nil
}
