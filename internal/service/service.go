package service

import (
	"errors"
	"time"

	"github.com/sprintops/sprintops/internal/config"
	"github.com/sprintops/sprintops/internal/repository"
)

var (
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserNotFound        = errors.New("user not found")
	ErrSprintNotFound      = errors.New("sprint not found")
	ErrTaskNotFound        = errors.New("task not found")
	ErrPullRequestNotFound = errors.New("pull request not found")
	ErrFeedbackNotFound    = errors.New("feedback not found")
	ErrInvalidInput        = errors.New("invalid input")
)

type Service struct {
	repo      *repository.Repository
	analytics *Analytics
	jwtSecret []byte
	jwtTTL    time.Duration
	now       func() time.Time
}

func New(repo *repository.Repository, cfg config.Config) *Service {
	return &Service{
		repo:      repo,
		analytics: NewAnalytics(repo),
		jwtSecret: []byte(cfg.JWTSecret),
		jwtTTL:    cfg.JWTTTL,
		now:       time.Now,
	}
}
