package service

import (
	"context"
	"errors"
	"sort"

	"github.com/sprintops/sprintops/internal/domain"
	"github.com/sprintops/sprintops/internal/repository"
)

// AnalyticsStore is the read-only query surface the aggregation engine
// runs over. The store is responsible for scoping rows to a user (join
// through sprints) or to a sprint; the engine owns the grouping,
// averaging and windowing math. Implemented by *repository.Repository,
// faked in tests.
type AnalyticsStore interface {
	GetSprint(ctx context.Context, sprintID, userID string) (domain.Sprint, error)
	ListUserSprints(ctx context.Context, userID string) ([]domain.Sprint, error)
	ListUserTasks(ctx context.Context, userID string) ([]domain.Task, error)
	ListUserPullRequests(ctx context.Context, userID string) ([]domain.PullRequest, error)
	ListUserFeedback(ctx context.Context, userID string) ([]domain.Feedback, error)
	ListUserTaskLogs(ctx context.Context, userID string) ([]domain.TaskLog, error)
	ListSprintTasksChronological(ctx context.Context, sprintID string) ([]domain.Task, error)
	ListPullRequestsBySprint(ctx context.Context, sprintID string) ([]domain.PullRequest, error)
	ListFeedbackBySprint(ctx context.Context, sprintID string) ([]domain.Feedback, error)
	ListSprintTaskLogs(ctx context.Context, sprintID string) ([]domain.TaskLog, error)
}

type Analytics struct {
	store AnalyticsStore
}

func NewAnalytics(store AnalyticsStore) *Analytics {
	return &Analytics{store: store}
}

// Global computes the cross-sprint rollups for one user. A user with no
// sprints (or no records) gets empty slices, never an error.
func (a *Analytics) Global(ctx context.Context, userID string) (domain.GlobalAnalytics, error) {
	sprints, err := a.store.ListUserSprints(ctx, userID)
	if err != nil {
		return domain.GlobalAnalytics{}, err
	}
	tasks, err := a.store.ListUserTasks(ctx, userID)
	if err != nil {
		return domain.GlobalAnalytics{}, err
	}
	prs, err := a.store.ListUserPullRequests(ctx, userID)
	if err != nil {
		return domain.GlobalAnalytics{}, err
	}
	feedback, err := a.store.ListUserFeedback(ctx, userID)
	if err != nil {
		return domain.GlobalAnalytics{}, err
	}
	logs, err := a.store.ListUserTaskLogs(ctx, userID)
	if err != nil {
		return domain.GlobalAnalytics{}, err
	}

	skills := skillFrequency(logs)

	return domain.GlobalAnalytics{
		TaskStatusBreakdown:   taskStatusBreakdown(tasks),
		PRStatusBreakdown:     prStatusBreakdown(prs),
		StoryPointsOverTime:   storyPointsBySprint(sprints, tasks),
		FeedbackTypeBreakdown: feedbackTypeBreakdown(feedback),
		FeedbackBySource:      feedbackBySource(feedback),
		SkillsRadar:           skills,
		SkillFrequency:        skills,
	}, nil
}

// Sprint computes the single-sprint rollups. The sprint must belong to
// the given user or the whole call fails with ErrSprintNotFound.
func (a *Analytics) Sprint(ctx context.Context, userID, sprintID string) (domain.SprintAnalytics, error) {
	if _, err := a.store.GetSprint(ctx, sprintID, userID); err != nil {
		if errors.Is(err, repository.ErrSprintNotFound) {
			return domain.SprintAnalytics{}, ErrSprintNotFound
		}
		return domain.SprintAnalytics{}, err
	}

	tasks, err := a.store.ListSprintTasksChronological(ctx, sprintID)
	if err != nil {
		return domain.SprintAnalytics{}, err
	}
	prs, err := a.store.ListPullRequestsBySprint(ctx, sprintID)
	if err != nil {
		return domain.SprintAnalytics{}, err
	}
	feedback, err := a.store.ListFeedbackBySprint(ctx, sprintID)
	if err != nil {
		return domain.SprintAnalytics{}, err
	}
	logs, err := a.store.ListSprintTaskLogs(ctx, sprintID)
	if err != nil {
		return domain.SprintAnalytics{}, err
	}

	return domain.SprintAnalytics{
		TaskStatusBreakdown:   taskStatusBreakdown(tasks),
		PRStatusBreakdown:     prStatusBreakdown(prs),
		StoryPointsOverTime:   cumulativeStoryPoints(tasks),
		FeedbackTypeBreakdown: feedbackTypeBreakdown(feedback),
		FeedbackBySource:      feedbackBySource(feedback),
		SkillsRadar:           skillFrequency(logs),
	}, nil
}

func (s *Service) GlobalAnalytics(ctx context.Context, userID string) (domain.GlobalAnalytics, error) {
	return s.analytics.Global(ctx, userID)
}

func (s *Service) SprintAnalytics(ctx context.Context, userID, sprintID string) (domain.SprintAnalytics, error) {
	return s.analytics.Sprint(ctx, userID, sprintID)
}

func taskStatusBreakdown(tasks []domain.Task) []domain.StatusCount {
	keys := make([]string, 0, len(tasks))
	for _, t := range tasks {
		keys = append(keys, string(t.Status))
	}
	return groupCount(keys)
}

func prStatusBreakdown(prs []domain.PullRequest) []domain.StatusCount {
	keys := make([]string, 0, len(prs))
	for _, pr := range prs {
		keys = append(keys, string(pr.Status))
	}
	return groupCount(keys)
}

func feedbackTypeBreakdown(feedback []domain.Feedback) []domain.StatusCount {
	keys := make([]string, 0, len(feedback))
	for _, f := range feedback {
		keys = append(keys, string(f.Type))
	}
	return groupCount(keys)
}

func feedbackBySource(feedback []domain.Feedback) []domain.SourceCount {
	keys := make([]string, 0, len(feedback))
	for _, f := range feedback {
		keys = append(keys, string(f.Source))
	}
	counts := groupCount(keys)

	out := make([]domain.SourceCount, 0, len(counts))
	for _, c := range counts {
		out = append(out, domain.SourceCount{Key: c.Key, Count: c.Value})
	}
	return out
}

// groupCount counts occurrences per distinct key, sorted by key so that
// repeated calls over unchanged data produce identical output.
func groupCount(keys []string) []domain.StatusCount {
	counts := make(map[string]int64)
	for _, k := range keys {
		counts[k]++
	}

	out := make([]domain.StatusCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, domain.StatusCount{Key: k, Value: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// skillFrequency flattens each log's skillsUsed into (log, skill) pairs
// and counts per distinct skill. Logs with no skills contribute nothing.
func skillFrequency(logs []domain.TaskLog) []domain.SkillCount {
	counts := make(map[string]int64)
	for _, l := range logs {
		for _, skill := range l.SkillsUsed {
			counts[skill]++
		}
	}

	out := make([]domain.SkillCount, 0, len(counts))
	for skill, n := range counts {
		out = append(out, domain.SkillCount{Skill: skill, Value: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Skill < out[j].Skill })
	return out
}

// storyPointsBySprint emits one row per sprint that has tasks, in
// sprint creation order, with avgPoints = ceil(sum/count). Sprints with
// no tasks produce no row at all.
func storyPointsBySprint(sprints []domain.Sprint, tasks []domain.Task) []domain.SprintPoints {
	type acc struct {
		sum   int64
		count int64
	}
	bySprint := make(map[string]*acc)
	for _, t := range tasks {
		a := bySprint[t.SprintID]
		if a == nil {
			a = &acc{}
			bySprint[t.SprintID] = a
		}
		a.sum += int64(t.StoryPoints)
		a.count++
	}

	out := make([]domain.SprintPoints, 0, len(bySprint))
	for _, s := range sprints {
		a, ok := bySprint[s.ID]
		if !ok {
			continue
		}
		out = append(out, domain.SprintPoints{
			SprintID:   s.ID,
			SprintName: s.Name,
			AvgPoints:  ceilDiv(a.sum, a.count),
		})
	}
	return out
}

// ceilDiv rounds the quotient toward positive infinity.
func ceilDiv(sum, count int64) int64 {
	if count == 0 {
		return 0
	}
	q := sum / count
	if sum%count != 0 && (sum > 0) == (count > 0) {
		q++
	}
	return q
}

// cumulativeStoryPoints produces the running story-point total over
// tasks already ordered by (created_at, id).
func cumulativeStoryPoints(tasks []domain.Task) []int64 {
	series := make([]int64, 0, len(tasks))
	var total int64
	for _, t := range tasks {
		total += int64(t.StoryPoints)
		series = append(series, total)
	}
	return series
}
