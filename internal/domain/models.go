package domain

import "time"

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Sprint struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Goal      string    `json:"goal"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "Todo"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusBlocked    TaskStatus = "Blocked"
	TaskStatusDone       TaskStatus = "Done"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusBlocked, TaskStatusDone:
		return true
	}
	return false
}

type Task struct {
	ID          string     `json:"id"`
	SprintID    string     `json:"sprintId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StoryPoints int        `json:"storyPoints"`
	Skills      []string   `json:"skills"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type TaskLog struct {
	ID               string    `json:"id"`
	SprintID         string    `json:"sprintId"`
	TaskID           string    `json:"taskId"`
	Summary          string    `json:"summary"`
	SkillsUsed       []string  `json:"skillsUsed"`
	TimeSpentMinutes int       `json:"timeSpentMinutes"`
	ProgressPercent  int       `json:"progressPercent"`
	Date             time.Time `json:"date"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type PullRequestStatus string

const (
	PullRequestStatusCreated     PullRequestStatus = "Created"
	PullRequestStatusUnderReview PullRequestStatus = "Under Review"
	PullRequestStatusMerged      PullRequestStatus = "Merged"
)

func (s PullRequestStatus) Valid() bool {
	switch s {
	case PullRequestStatusCreated, PullRequestStatusUnderReview, PullRequestStatusMerged:
		return true
	}
	return false
}

type PullRequest struct {
	ID         string            `json:"id"`
	SprintID   string            `json:"sprintId"`
	Title      string            `json:"title"`
	Purpose    string            `json:"purpose"`
	Summary    string            `json:"summary"`
	Challenges string            `json:"challenges"`
	SkillsUsed []string          `json:"skillsUsed"`
	Status     PullRequestStatus `json:"status"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

type FeedbackType string

const (
	FeedbackTypePositive     FeedbackType = "Positive"
	FeedbackTypeConstructive FeedbackType = "Constructive"
)

func (t FeedbackType) Valid() bool {
	return t == FeedbackTypePositive || t == FeedbackTypeConstructive
}

type FeedbackSource string

const (
	FeedbackSourceManager FeedbackSource = "Manager"
	FeedbackSourcePeer    FeedbackSource = "Peer"
	FeedbackSourceLead    FeedbackSource = "Lead"
	FeedbackSourceSelf    FeedbackSource = "Self"
)

func (s FeedbackSource) Valid() bool {
	switch s {
	case FeedbackSourceManager, FeedbackSourcePeer, FeedbackSourceLead, FeedbackSourceSelf:
		return true
	}
	return false
}

type FeedbackContext string

const (
	FeedbackContextTask    FeedbackContext = "Task-related"
	FeedbackContextGeneral FeedbackContext = "General"
)

func (c FeedbackContext) Valid() bool {
	return c == FeedbackContextTask || c == FeedbackContextGeneral
}

type Feedback struct {
	ID        string          `json:"id"`
	SprintID  string          `json:"sprintId"`
	Type      FeedbackType    `json:"type"`
	Source    FeedbackSource  `json:"source"`
	Content   string          `json:"content"`
	Context   FeedbackContext `json:"context"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
