package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sprintops/sprintops/internal/domain"
	"github.com/sprintops/sprintops/internal/repository"
)

type TaskInput struct {
	Title       string
	Description string
	StoryPoints int
	Skills      []string
	Status      domain.TaskStatus
}

func (in TaskInput) normalized() (TaskInput, error) {
	if in.Status == "" {
		in.Status = domain.TaskStatusTodo
	}
	if !in.Status.Valid() {
		return in, fmt.Errorf("%w: unknown task status %q", ErrInvalidInput, in.Status)
	}
	if in.Skills == nil {
		in.Skills = []string{}
	}
	return in, nil
}

func (s *Service) CreateTask(ctx context.Context, userID, sprintID string, input TaskInput) (domain.Task, error) {
	if err := s.ensureSprint(ctx, userID, sprintID); err != nil {
		return domain.Task{}, err
	}
	input, err := input.normalized()
	if err != nil {
		return domain.Task{}, err
	}

	return s.repo.InsertTask(ctx, domain.Task{
		ID:          uuid.NewString(),
		SprintID:    sprintID,
		Title:       input.Title,
		Description: input.Description,
		StoryPoints: input.StoryPoints,
		Skills:      input.Skills,
		Status:      input.Status,
	})
}

func (s *Service) ListTasks(ctx context.Context, userID, sprintID string) ([]domain.Task, error) {
	if err := s.ensureSprint(ctx, userID, sprintID); err != nil {
		return nil, err
	}
	return s.repo.ListTasksBySprint(ctx, sprintID)
}

func (s *Service) GetTask(ctx context.Context, userID, sprintID, taskID string) (domain.Task, error) {
	if err := s.ensureSprint(ctx, userID, sprintID); err != nil {
		return domain.Task{}, err
	}

	task, err := s.repo.GetTask(ctx, taskID, sprintID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return domain.Task{}, ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return task, nil
}

func (s *Service) UpdateTask(ctx context.Context, userID, sprintID, taskID string, input TaskInput) (domain.Task, error) {
	if err := s.ensureSprint(ctx, userID, sprintID); err != nil {
		return domain.Task{}, err
	}
	input, err := input.normalized()
	if err != nil {
		return domain.Task{}, err
	}

	task, err := s.repo.UpdateTask(ctx, domain.Task{
		ID:          taskID,
		SprintID:    sprintID,
		Title:       input.Title,
		Description: input.Description,
		StoryPoints: input.StoryPoints,
		Skills:      input.Skills,
		Status:      input.Status,
	})
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return domain.Task{}, ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return task, nil
}

// DeleteTask removes the task and its logs in one transaction.
func (s *Service) DeleteTask(ctx context.Context, userID, sprintID, taskID string) error {
	if err := s.ensureSprint(ctx, userID, sprintID); err != nil {
		return err
	}

	return s.repo.RunInTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.repo.DeleteTaskLogsByTask(ctx, tx, taskID); err != nil {
			return err
		}
		if err := s.repo.DeleteTask(ctx, tx, taskID, sprintID); err != nil {
			if errors.Is(err, repository.ErrTaskNotFound) {
				return ErrTaskNotFound
			}
			return err
		}
		return nil
	})
}

type TaskLogInput struct {
	Summary          string
	SkillsUsed       []string
	TimeSpentMinutes int
	ProgressPercent  int
}

func (s *Service) AddTaskLog(ctx context.Context, userID, sprintID, taskID string, input TaskLogInput) (domain.TaskLog, error) {
	if err := s.ensureSprint(ctx, userID, sprintID); err != nil {
		return domain.TaskLog{}, err
	}
	if _, err := s.GetTask(ctx, userID, sprintID, taskID); err != nil {
		return domain.TaskLog{}, err
	}
	if input.TimeSpentMinutes < 0 {
		return domain.TaskLog{}, fmt.Errorf("%w: timeSpentMinutes must be >= 0", ErrInvalidInput)
	}
	if input.ProgressPercent < 0 || input.ProgressPercent > 100 {
		return domain.TaskLog{}, fmt.Errorf("%w: progressPercent must be between 0 and 100", ErrInvalidInput)
	}
	if input.SkillsUsed == nil {
		input.SkillsUsed = []string{}
	}

	return s.repo.InsertTaskLog(ctx, domain.TaskLog{
		ID:               uuid.NewString(),
		SprintID:         sprintID,
		TaskID:           taskID,
		Summary:          input.Summary,
		SkillsUsed:       input.SkillsUsed,
		TimeSpentMinutes: input.TimeSpentMinutes,
		ProgressPercent:  input.ProgressPercent,
		Date:             s.now().UTC(),
	})
}

func (s *Service) ListTaskLogs(ctx context.Context, userID, sprintID, taskID string) ([]domain.TaskLog, error) {
	if err := s.ensureSprint(ctx, userID, sprintID); err != nil {
		return nil, err
	}
	return s.repo.ListTaskLogsByTask(ctx, taskID)
}
