package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sprintops/sprintops/internal/config"
	"github.com/sprintops/sprintops/internal/domain"
	"github.com/sprintops/sprintops/internal/service"
	"go.uber.org/zap"
)

const (
	testSecret    = "test-secret"
	testDemoEmail = "johndoe.test@example.com"
)

// fakeService returns canned values; individual tests override the
// hooks they care about.
type fakeService struct {
	sprints         []domain.Sprint
	sprintAnalytics func(ctx context.Context, userID, sprintID string) (domain.SprintAnalytics, error)
	deletedSprints  []string
}

func (f *fakeService) Register(_ context.Context, name, email, _ string) (domain.User, error) {
	return domain.User{ID: "u1", Name: name, Email: email}, nil
}

func (f *fakeService) Login(_ context.Context, email, _ string) (string, domain.User, error) {
	return "a-token", domain.User{ID: "u1", Name: "John", Email: email}, nil
}

func (f *fakeService) ListUsers(context.Context) ([]domain.User, error) {
	return []domain.User{}, nil
}

func (f *fakeService) GetUser(_ context.Context, userID string) (domain.User, error) {
	return domain.User{ID: userID, Name: "John"}, nil
}

func (f *fakeService) UpdateUser(_ context.Context, userID string, _ service.UpdateUserInput) (domain.User, error) {
	return domain.User{ID: userID}, nil
}

func (f *fakeService) DeleteUser(context.Context, string) error { return nil }

func (f *fakeService) CreateSprint(_ context.Context, userID string, input service.SprintInput) (domain.Sprint, error) {
	return domain.Sprint{ID: "s-new", UserID: userID, Name: input.Name}, nil
}

func (f *fakeService) ListSprints(context.Context, string) ([]domain.Sprint, error) {
	if f.sprints == nil {
		return []domain.Sprint{}, nil
	}
	return f.sprints, nil
}

func (f *fakeService) GetSprint(_ context.Context, _, sprintID string) (domain.Sprint, error) {
	for _, s := range f.sprints {
		if s.ID == sprintID {
			return s, nil
		}
	}
	return domain.Sprint{}, service.ErrSprintNotFound
}

func (f *fakeService) UpdateSprint(_ context.Context, _, sprintID string, input service.SprintInput) (domain.Sprint, error) {
	return domain.Sprint{ID: sprintID, Name: input.Name}, nil
}

func (f *fakeService) DeleteSprint(_ context.Context, _, sprintID string) error {
	f.deletedSprints = append(f.deletedSprints, sprintID)
	return nil
}

func (f *fakeService) CreateTask(_ context.Context, _, sprintID string, input service.TaskInput) (domain.Task, error) {
	return domain.Task{ID: "t-new", SprintID: sprintID, Title: input.Title}, nil
}

func (f *fakeService) ListTasks(context.Context, string, string) ([]domain.Task, error) {
	return []domain.Task{}, nil
}

func (f *fakeService) GetTask(context.Context, string, string, string) (domain.Task, error) {
	return domain.Task{}, service.ErrTaskNotFound
}

func (f *fakeService) UpdateTask(_ context.Context, _, _, taskID string, _ service.TaskInput) (domain.Task, error) {
	return domain.Task{ID: taskID}, nil
}

func (f *fakeService) DeleteTask(context.Context, string, string, string) error { return nil }

func (f *fakeService) AddTaskLog(context.Context, string, string, string, service.TaskLogInput) (domain.TaskLog, error) {
	return domain.TaskLog{ID: "l-new"}, nil
}

func (f *fakeService) ListTaskLogs(context.Context, string, string, string) ([]domain.TaskLog, error) {
	return []domain.TaskLog{}, nil
}

func (f *fakeService) CreatePullRequest(context.Context, string, string, service.PullRequestInput) (domain.PullRequest, error) {
	return domain.PullRequest{ID: "p-new"}, nil
}

func (f *fakeService) ListPullRequests(context.Context, string, string) ([]domain.PullRequest, error) {
	return []domain.PullRequest{}, nil
}

func (f *fakeService) UpdatePullRequest(_ context.Context, _, _, prID string, _ service.PullRequestInput) (domain.PullRequest, error) {
	return domain.PullRequest{ID: prID}, nil
}

func (f *fakeService) DeletePullRequest(context.Context, string, string, string) error { return nil }

func (f *fakeService) CreateFeedback(context.Context, string, string, service.FeedbackInput) (domain.Feedback, error) {
	return domain.Feedback{ID: "f-new"}, nil
}

func (f *fakeService) ListFeedback(context.Context, string, string) ([]domain.Feedback, error) {
	return []domain.Feedback{}, nil
}

func (f *fakeService) UpdateFeedback(_ context.Context, _, _, feedbackID string, _ service.FeedbackInput) (domain.Feedback, error) {
	return domain.Feedback{ID: feedbackID}, nil
}

func (f *fakeService) DeleteFeedback(context.Context, string, string, string) error { return nil }

func (f *fakeService) GlobalAnalytics(context.Context, string) (domain.GlobalAnalytics, error) {
	return domain.GlobalAnalytics{
		TaskStatusBreakdown:   []domain.StatusCount{},
		PRStatusBreakdown:     []domain.StatusCount{},
		StoryPointsOverTime:   []domain.SprintPoints{},
		FeedbackTypeBreakdown: []domain.StatusCount{},
		FeedbackBySource:      []domain.SourceCount{},
		SkillsRadar:           []domain.SkillCount{},
		SkillFrequency:        []domain.SkillCount{},
	}, nil
}

func (f *fakeService) SprintAnalytics(ctx context.Context, userID, sprintID string) (domain.SprintAnalytics, error) {
	if f.sprintAnalytics != nil {
		return f.sprintAnalytics(ctx, userID, sprintID)
	}
	return domain.SprintAnalytics{
		TaskStatusBreakdown:   []domain.StatusCount{},
		PRStatusBreakdown:     []domain.StatusCount{},
		StoryPointsOverTime:   []int64{},
		FeedbackTypeBreakdown: []domain.StatusCount{},
		FeedbackBySource:      []domain.SourceCount{},
		SkillsRadar:           []domain.SkillCount{},
	}, nil
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func testConfig() config.Config {
	return config.Config{
		JWTSecret:   testSecret,
		JWTTTL:      6 * time.Hour,
		DemoEmail:   testDemoEmail,
		Environment: "test",
		AppVersion:  "test",
	}
}

func newTestRouter(t *testing.T, svc Service) http.Handler {
	t.Helper()
	return newRouter(testConfig(), zap.NewNop(), svc, fakePinger{})
}

func signToken(t *testing.T, userID, email string) string {
	t.Helper()
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    userID,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func doRequest(t *testing.T, router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope from %q: %v", rec.Body.String(), err)
	}
	return env
}

func TestMissingTokenUnauthorized(t *testing.T) {
	router := newTestRouter(t, &fakeService{})

	rec := doRequest(t, router, http.MethodGet, "/sprints/", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Success || env.Message != "No token provided" {
		t.Errorf("envelope = %+v", env)
	}
}

func TestMalformedTokenUnauthorized(t *testing.T) {
	router := newTestRouter(t, &fakeService{})

	rec := doRequest(t, router, http.MethodGet, "/sprints/", "not-a-jwt", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Message != "Invalid token" {
		t.Errorf("message = %q, want %q", env.Message, "Invalid token")
	}
}

func TestListSprintsEmptyArrayNotNull(t *testing.T) {
	router := newTestRouter(t, &fakeService{})
	token := signToken(t, "u1", "user@example.com")

	rec := doRequest(t, router, http.MethodGet, "/sprints/", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Errorf("body = %s, want data to be an empty array", rec.Body.String())
	}
}

func TestSprintNotFoundEnvelope(t *testing.T) {
	svc := &fakeService{
		sprintAnalytics: func(context.Context, string, string) (domain.SprintAnalytics, error) {
			return domain.SprintAnalytics{}, service.ErrSprintNotFound
		},
	}
	router := newTestRouter(t, svc)
	token := signToken(t, "u1", "user@example.com")

	rec := doRequest(t, router, http.MethodGet, "/analytics/sprint/nope", token, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Success || env.Message != "Sprint not found" || env.Data != nil {
		t.Errorf("envelope = %+v, want failure with null data", env)
	}
}

func TestGlobalAnalyticsPayloadKeys(t *testing.T) {
	router := newTestRouter(t, &fakeService{})
	token := signToken(t, "u1", "user@example.com")

	rec := doRequest(t, router, http.MethodGet, "/analytics/global", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}

	var payload struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	want := []string{
		"taskStatusBreakdown", "prStatusBreakdown", "storyPointsOverTime",
		"feedbackTypeBreakdown", "feedbackBySource", "skillsRadar", "skillFrequency",
	}
	for _, key := range want {
		if _, ok := payload.Data[key]; !ok {
			t.Errorf("global analytics payload missing %q", key)
		}
	}
	if len(payload.Data) != len(want) {
		t.Errorf("payload has %d keys, want %d: %v", len(payload.Data), len(want), payload.Data)
	}
}

func TestSprintAnalyticsPayloadKeys(t *testing.T) {
	svc := &fakeService{sprints: []domain.Sprint{{ID: "s1", UserID: "u1"}}}
	router := newTestRouter(t, svc)
	token := signToken(t, "u1", "user@example.com")

	rec := doRequest(t, router, http.MethodGet, "/analytics/sprint/s1", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}

	var payload struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if _, ok := payload.Data["skillFrequency"]; ok {
		t.Error("sprint analytics payload must not carry skillFrequency")
	}
	if len(payload.Data) != 6 {
		t.Errorf("payload has %d keys, want 6: %v", len(payload.Data), payload.Data)
	}
}

func TestDemoAccountBlockedFromWrites(t *testing.T) {
	svc := &fakeService{}
	router := newTestRouter(t, svc)
	token := signToken(t, "u-demo", testDemoEmail)

	rec := doRequest(t, router, http.MethodDelete, "/sprints/s1/", token, "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Message != "This Account is only for Demo Purposes. Modifications are not allowed." {
		t.Errorf("message = %q", env.Message)
	}
	if len(svc.deletedSprints) != 0 {
		t.Errorf("delete reached the service: %v", svc.deletedSprints)
	}
}

func TestDemoAccountCanRead(t *testing.T) {
	router := newTestRouter(t, &fakeService{})
	token := signToken(t, "u-demo", testDemoEmail)

	rec := doRequest(t, router, http.MethodGet, "/analytics/global", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
}

func TestUnknownRouteForbidden(t *testing.T) {
	router := newTestRouter(t, &fakeService{})

	rec := doRequest(t, router, http.MethodGet, "/definitely/not/a/route", "", "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Message != "Access forbidden" {
		t.Errorf("message = %q, want %q", env.Message, "Access forbidden")
	}
}

func TestRegisterReturnsEnvelope(t *testing.T) {
	router := newTestRouter(t, &fakeService{})

	body := `{"name":"Jane","email":"jane@example.com","password":"secret123"}`
	rec := doRequest(t, router, http.MethodPost, "/auth/register", "", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if !env.Success || env.Message != "User registered" {
		t.Errorf("envelope = %+v", env)
	}
}

func TestHealthReportsOK(t *testing.T) {
	router := newTestRouter(t, &fakeService{})

	rec := doRequest(t, router, http.MethodGet, "/health", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("body = %s, want status ok", rec.Body.String())
	}
}

func TestAnalyticsExportIsPDF(t *testing.T) {
	router := newTestRouter(t, &fakeService{})
	token := signToken(t, "u1", "user@example.com")

	rec := doRequest(t, router, http.MethodGet, "/analytics/export", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q, want application/pdf", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF") {
		t.Error("body does not look like a PDF document")
	}
}
