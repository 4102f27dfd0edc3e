package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sprintops/sprintops/internal/domain"
	"github.com/sprintops/sprintops/internal/repository"
)

type FeedbackInput struct {
	Type    domain.FeedbackType
	Source  domain.FeedbackSource
	Content string
	Context domain.FeedbackContext
	Date    time.Time
}

func (in FeedbackInput) normalized(now time.Time) (FeedbackInput, error) {
	if !in.Type.Valid() {
		return in, fmt.Errorf("%w: unknown feedback type %q", ErrInvalidInput, in.Type)
	}
	if !in.Source.Valid() {
		return in, fmt.Errorf("%w: unknown feedback source %q", ErrInvalidInput, in.Source)
	}
	if in.Context == "" {
		in.Context = domain.FeedbackContextGeneral
	}
	if !in.Context.Valid() {
		return in, fmt.Errorf("%w: unknown feedback context %q", ErrInvalidInput, in.Context)
	}
	if in.Date.IsZero() {
		in.Date = now
	}
	return in, nil
}

func (s *Service) CreateFeedback(ctx context.Context, userID, sprintID string, input FeedbackInput) (domain.Feedback, error) {
	if err := s.ensureSprint(ctx, userID, sprintID); err != nil {
		return domain.Feedback{}, err
	}
	input, err := input.normalized(s.now().UTC())
	if err != nil {
		return domain.Feedback{}, err
	}

	return s.repo.InsertFeedback(ctx, domain.Feedback{
		ID:       uuid.NewString(),
		SprintID: sprintID,
		Type:     input.Type,
		Source:   input.Source,
		Content:  input.Content,
		Context:  input.Context,
		Date:     input.Date,
	})
}

func (s *Service) ListFeedback(ctx context.Context, userID, sprintID string) ([]domain.Feedback, error) {
	if err := s.ensureSprint(ctx, userID, sprintID); err != nil {
		return nil, err
	}
	return s.repo.ListFeedbackBySprint(ctx, sprintID)
}

func (s *Service) UpdateFeedback(ctx context.Context, userID, sprintID, feedbackID string, input FeedbackInput) (domain.Feedback, error) {
	if err := s.ensureSprint(ctx, userID, sprintID); err != nil {
		return domain.Feedback{}, err
	}
	input, err := input.normalized(s.now().UTC())
	if err != nil {
		return domain.Feedback{}, err
	}

	fb, err := s.repo.UpdateFeedback(ctx, domain.Feedback{
		ID:       feedbackID,
		SprintID: sprintID,
		Type:     input.Type,
		Source:   input.Source,
		Content:  input.Content,
		Context:  input.Context,
		Date:     input.Date,
	})
	if err != nil {
		if errors.Is(err, repository.ErrFeedbackNotFound) {
			return domain.Feedback{}, ErrFeedbackNotFound
		}
		return domain.Feedback{}, err
	}
	return fb, nil
}

func (s *Service) DeleteFeedback(ctx context.Context, userID, sprintID, feedbackID string) error {
	if err := s.ensureSprint(ctx, userID, sprintID); err != nil {
		return err
	}

	if err := s.repo.DeleteFeedback(ctx, feedbackID, sprintID); err != nil {
		if errors.Is(err, repository.ErrFeedbackNotFound) {
			return ErrFeedbackNotFound
		}
		return err
	}
	return nil
}
