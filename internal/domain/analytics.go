package domain

// Analytics result rows. The JSON keys mirror the shapes chart
// consumers already bind to: status/type groupings expose the count as
// "value", the feedback-by-source grouping exposes it as "count". The
// two must not be unified.

type StatusCount struct {
	Key   string `json:"_id"`
	Value int64  `json:"value"`
}

type SourceCount struct {
	Key   string `json:"_id"`
	Count int64  `json:"count"`
}

type SkillCount struct {
	Skill string `json:"skill"`
	Value int64  `json:"value"`
}

type SprintPoints struct {
	SprintID   string `json:"sprintId"`
	SprintName string `json:"sprintName"`
	AvgPoints  int64  `json:"avgPoints"`
}

type GlobalAnalytics struct {
	TaskStatusBreakdown   []StatusCount  `json:"taskStatusBreakdown"`
	PRStatusBreakdown     []StatusCount  `json:"prStatusBreakdown"`
	StoryPointsOverTime   []SprintPoints `json:"storyPointsOverTime"`
	FeedbackTypeBreakdown []StatusCount  `json:"feedbackTypeBreakdown"`
	FeedbackBySource      []SourceCount  `json:"feedbackBySource"`
	SkillsRadar           []SkillCount   `json:"skillsRadar"`
	SkillFrequency        []SkillCount   `json:"skillFrequency"`
}

type SprintAnalytics struct {
	TaskStatusBreakdown   []StatusCount  `json:"taskStatusBreakdown"`
	PRStatusBreakdown     []StatusCount  `json:"prStatusBreakdown"`
	StoryPointsOverTime   []int64        `json:"storyPointsOverTime"`
	FeedbackTypeBreakdown []StatusCount  `json:"feedbackTypeBreakdown"`
	FeedbackBySource      []SourceCount  `json:"feedbackBySource"`
	SkillsRadar           []SkillCount   `json:"skillsRadar"`
}
