// Package seed populates the database with the demo account and a
// fixed four-sprint history for it.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const demoPassword = "johndoe"

var skills = []string{
	"Go", "PostgreSQL", "Redis", "JWT", "Microservices", "Docker",
	"Testing", "CI/CD", "Kubernetes", "Observability", "gRPC",
	"Rate Limiting", "OAuth2", "Design Patterns", "Performance Tuning",
	"API Security",
}

type sprintPlan struct {
	name      string
	goal      string
	start     time.Time
	end       time.Time
	completed bool
	points    []int
	titles    []string
}

func timeline() []sprintPlan {
	return []sprintPlan{
		{
			name:      "Sprint 1",
			goal:      "User Authentication & Account Service",
			start:     time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC),
			end:       time.Date(2025, 8, 28, 17, 0, 0, 0, time.UTC),
			completed: true,
			points:    []int{8, 8, 8, 6, 6, 6, 5, 5},
			titles: []string{
				"Design user schema and JWT flow",
				"Implement registration & login routes",
				"Password hashing and validation",
				"Refresh token rotation",
				"Rate limiting & input validation",
				"Auth middleware and guards",
				"Auth unit tests",
				"API collection + docs",
			},
		},
		{
			name:      "Sprint 2",
			goal:      "Product Service + Search + Aggregations",
			start:     time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC),
			end:       time.Date(2025, 9, 28, 17, 0, 0, 0, time.UTC),
			completed: true,
			points:    []int{8, 8, 8, 8, 7, 6, 5, 5},
			titles: []string{
				"Product CRUD API",
				"Category aggregation queries",
				"Search endpoint with pagination",
				"Product image upload & storage",
				"Variant mapping & pricing model",
				"Product validation & sanitization",
				"Product unit & integration tests",
				"API docs and swagger",
			},
		},
		{
			name:      "Sprint 3",
			goal:      "Cart & Wishlist Service + Redis Cache",
			start:     time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC),
			end:       time.Date(2025, 10, 28, 17, 0, 0, 0, time.UTC),
			completed: true,
			points:    []int{9, 9, 8, 8, 7, 6, 6, 5},
			titles: []string{
				"Cart service core APIs",
				"Redis caching layer integration",
				"Wishlist API endpoints",
				"Cache invalidation rules",
				"TTL monitoring and alerts",
				"Session handling improvements",
				"Integration tests for cache",
				"Documentation and runbooks",
			},
		},
		{
			name:      "Sprint 4",
			goal:      "Order Service + Payments (Ongoing)",
			start:     time.Date(2025, 11, 15, 9, 0, 0, 0, time.UTC),
			end:       time.Date(2025, 12, 12, 17, 0, 0, 0, time.UTC),
			completed: false,
			points:    []int{8, 8, 7, 7, 7, 6, 5, 5},
			titles: []string{
				"Order schema design",
				"Order placement API",
				"Payments integration",
				"Email notifications for orders",
				"Refund flow design (draft)",
				"Idempotency and retries",
				"Webhooks handling",
				"End-to-end order tests",
			},
		},
	}
}

// Run wipes all tables and rebuilds the demo dataset. A fixed random
// seed keeps repeated runs identical.
func Run(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger, demoEmail string) error {
	rng := rand.New(rand.NewSource(42))

	logger.Info("clearing database")
	for _, table := range []string{"task_logs", "feedback", "pull_requests", "tasks", "sprints", "users"} {
		if _, err := pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), 10)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	userID := uuid.NewString()
	if _, err := pool.Exec(ctx, `
		INSERT INTO users (user_id, name, email, password_hash)
		VALUES ($1, $2, $3, $4)
	`, userID, "John Doe", demoEmail, string(hash)); err != nil {
		return fmt.Errorf("insert demo user: %w", err)
	}
	logger.Info("demo user created", zap.String("email", demoEmail))

	for _, plan := range timeline() {
		sprintID := uuid.NewString()
		if _, err := pool.Exec(ctx, `
			INSERT INTO sprints (sprint_id, user_id, name, goal, start_date, end_date)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, sprintID, userID, plan.name, plan.goal, plan.start, plan.end); err != nil {
			return fmt.Errorf("insert sprint %s: %w", plan.name, err)
		}

		taskIDs, taskSkills, taskStatuses, err := seedTasks(ctx, pool, rng, sprintID, plan)
		if err != nil {
			return err
		}
		if err := seedTaskLogs(ctx, pool, rng, sprintID, plan, taskIDs, taskSkills, taskStatuses); err != nil {
			return err
		}
		if err := seedPullRequests(ctx, pool, rng, sprintID, plan, taskSkills); err != nil {
			return err
		}
		if err := seedFeedback(ctx, pool, rng, sprintID, plan); err != nil {
			return err
		}
		logger.Info("sprint seeded", zap.String("sprint", plan.name))
	}

	logger.Info("seed completed")
	return nil
}

func seedTasks(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, sprintID string, plan sprintPlan) ([]string, [][]string, []string, error) {
	ids := make([]string, 0, len(plan.titles))
	skillSets := make([][]string, 0, len(plan.titles))
	statuses := make([]string, 0, len(plan.titles))

	for i, title := range plan.titles {
		status := "Done"
		if !plan.completed {
			status = pick(rng, []string{"Todo", "In Progress", "Blocked", "In Progress"})
		}
		taskSkills := pickSkills(rng, 3)
		createdAt := plan.start.Add(time.Duration(i) * 36 * time.Hour)

		id := uuid.NewString()
		if _, err := pool.Exec(ctx, `
			INSERT INTO tasks (task_id, sprint_id, title, story_points, skills, status, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, id, sprintID, title, plan.points[i], taskSkills, status, createdAt); err != nil {
			return nil, nil, nil, fmt.Errorf("insert task %q: %w", title, err)
		}
		ids = append(ids, id)
		skillSets = append(skillSets, taskSkills)
		statuses = append(statuses, status)
	}

	return ids, skillSets, statuses, nil
}

func seedTaskLogs(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, sprintID string, plan sprintPlan, taskIDs []string, taskSkills [][]string, taskStatuses []string) error {
	for i := 0; i < 20; i++ {
		idx := rng.Intn(len(taskIDs))
		title := plan.titles[idx]

		var summary string
		var progress int
		if taskStatuses[idx] == "Done" {
			summary = pick(rng, []string{
				fmt.Sprintf("Finished implementation of %q and addressed final review comments.", title),
				fmt.Sprintf("Wrote unit tests and fixed edge cases for %q.", title),
				fmt.Sprintf("Polished docs and API contract for %q.", title),
				fmt.Sprintf("Merged PR and verified %q in staging environment.", title),
			})
			progress = 100
		} else {
			summary = pick(rng, []string{
				fmt.Sprintf("Implemented core endpoints for %q and started testing.", title),
				fmt.Sprintf("Fixed bugs and optimized query performance for %q.", title),
				fmt.Sprintf("Refactored parts of the %q flow to improve error handling.", title),
				fmt.Sprintf("WIP: added input validation and started writing tests for %q.", title),
			})
			progress = 10 + rng.Intn(80)
		}

		used := taskSkills[idx]
		if len(used) > 2 {
			used = used[:2]
		}
		logDate := randDate(rng, plan.start, plan.end)

		if _, err := pool.Exec(ctx, `
			INSERT INTO task_logs (log_id, sprint_id, task_id, summary, skills_used, time_spent_minutes, progress_percent, log_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, uuid.NewString(), sprintID, taskIDs[idx], summary, used, 30+rng.Intn(180), progress, logDate); err != nil {
			return fmt.Errorf("insert task log: %w", err)
		}
	}
	return nil
}

func seedPullRequests(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, sprintID string, plan sprintPlan, taskSkills [][]string) error {
	statuses := []string{"Created", "Under Review", "Created", "Under Review"}
	if plan.completed {
		statuses = []string{"Merged", "Merged", "Merged", "Under Review"}
	}

	for i, title := range plan.titles {
		if _, err := pool.Exec(ctx, `
			INSERT INTO pull_requests (pull_request_id, sprint_id, title, purpose, summary, challenges, skills_used, status, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, uuid.NewString(), sprintID,
			fmt.Sprintf("PR - %s (%d)", title, i+1),
			"Code Review",
			fmt.Sprintf("Implemented work for %q: changes include logic, tests and docs.", title),
			"Minor merge conflicts and some edge case fixes in validation logic.",
			taskSkills[i],
			pick(rng, statuses),
			randDate(rng, plan.start, plan.end),
		); err != nil {
			return fmt.Errorf("insert pull request: %w", err)
		}
	}
	return nil
}

func seedFeedback(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, sprintID string, plan sprintPlan) error {
	sources := []string{"Manager", "Peer", "Lead", "Self"}

	for i := 0; i < 8; i++ {
		positive := rng.Float64() > 0.4

		fbType, fbContext := "Constructive", "Task-related"
		content := pick(rng, []string{
			fmt.Sprintf("Improve commit messages and PR descriptions for %s.", plan.name),
			"Break large tasks into smaller deliverables next sprint.",
			"More end-to-end testing needed for critical flows.",
			fmt.Sprintf("Focus on better error handling and edge cases in %s.", plan.name),
		})
		if positive {
			fbType, fbContext = "Positive", "General"
			content = pick(rng, []string{
				fmt.Sprintf("Showed strong ownership during %s.", plan.name),
				fmt.Sprintf("Good clarity and test coverage in delivered features of %s.", plan.name),
				fmt.Sprintf("Consistent progress and helpful in code reviews during %s.", plan.name),
				fmt.Sprintf("Well structured PRs and useful documentation work in %s.", plan.name),
			})
		}

		if _, err := pool.Exec(ctx, `
			INSERT INTO feedback (feedback_id, sprint_id, type, source, content, context, fb_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, uuid.NewString(), sprintID, fbType, pick(rng, sources), content, fbContext,
			randDate(rng, plan.start, plan.end)); err != nil {
			return fmt.Errorf("insert feedback: %w", err)
		}
	}
	return nil
}

func pick(rng *rand.Rand, options []string) string {
	return options[rng.Intn(len(options))]
}

func pickSkills(rng *rand.Rand, n int) []string {
	shuffled := append([]string(nil), skills...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}

func randDate(rng *rand.Rand, start, end time.Time) time.Time {
	span := end.Sub(start)
	return start.Add(time.Duration(rng.Int63n(int64(span))))
}
