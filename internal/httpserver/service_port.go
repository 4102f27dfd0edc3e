package httpserver

import (
	"context"

	"github.com/sprintops/sprintops/internal/domain"
	"github.com/sprintops/sprintops/internal/service"
)

type Service interface {
	Register(ctx context.Context, name, email, password string) (domain.User, error)
	Login(ctx context.Context, email, password string) (string, domain.User, error)

	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, userID string) (domain.User, error)
	UpdateUser(ctx context.Context, userID string, input service.UpdateUserInput) (domain.User, error)
	DeleteUser(ctx context.Context, userID string) error

	CreateSprint(ctx context.Context, userID string, input service.SprintInput) (domain.Sprint, error)
	ListSprints(ctx context.Context, userID string) ([]domain.Sprint, error)
	GetSprint(ctx context.Context, userID, sprintID string) (domain.Sprint, error)
	UpdateSprint(ctx context.Context, userID, sprintID string, input service.SprintInput) (domain.Sprint, error)
	DeleteSprint(ctx context.Context, userID, sprintID string) error

	CreateTask(ctx context.Context, userID, sprintID string, input service.TaskInput) (domain.Task, error)
	ListTasks(ctx context.Context, userID, sprintID string) ([]domain.Task, error)
	GetTask(ctx context.Context, userID, sprintID, taskID string) (domain.Task, error)
	UpdateTask(ctx context.Context, userID, sprintID, taskID string, input service.TaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, userID, sprintID, taskID string) error
	AddTaskLog(ctx context.Context, userID, sprintID, taskID string, input service.TaskLogInput) (domain.TaskLog, error)
	ListTaskLogs(ctx context.Context, userID, sprintID, taskID string) ([]domain.TaskLog, error)

	CreatePullRequest(ctx context.Context, userID, sprintID string, input service.PullRequestInput) (domain.PullRequest, error)
	ListPullRequests(ctx context.Context, userID, sprintID string) ([]domain.PullRequest, error)
	UpdatePullRequest(ctx context.Context, userID, sprintID, prID string, input service.PullRequestInput) (domain.PullRequest, error)
	DeletePullRequest(ctx context.Context, userID, sprintID, prID string) error

	CreateFeedback(ctx context.Context, userID, sprintID string, input service.FeedbackInput) (domain.Feedback, error)
	ListFeedback(ctx context.Context, userID, sprintID string) ([]domain.Feedback, error)
	UpdateFeedback(ctx context.Context, userID, sprintID, feedbackID string, input service.FeedbackInput) (domain.Feedback, error)
	DeleteFeedback(ctx context.Context, userID, sprintID, feedbackID string) error

	GlobalAnalytics(ctx context.Context, userID string) (domain.GlobalAnalytics, error)
	SprintAnalytics(ctx context.Context, userID, sprintID string) (domain.SprintAnalytics, error)
}
