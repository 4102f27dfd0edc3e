package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sprintops/sprintops/internal/config"
	"github.com/sprintops/sprintops/internal/migrations"
	"github.com/sprintops/sprintops/internal/repository"
	"go.uber.org/zap"
)

// Auth round-trip tests need a real Postgres; skipped unless
// TEST_DATABASE_URL is set.
func setupService(t *testing.T) *Service {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := migrations.Run(ctx, dsn, zap.NewNop()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	for _, table := range []string{"task_logs", "feedback", "pull_requests", "tasks", "sprints", "users"} {
		if _, err := pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			t.Fatalf("clean %s: %v", table, err)
		}
	}

	return New(repository.New(pool), config.Config{
		JWTSecret: "test-secret",
		JWTTTL:    6 * time.Hour,
	})
}

func TestRegisterLoginRoundTrip(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "Jane", "jane@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if registered.PasswordHash == "hunter22" {
		t.Fatal("password stored in plain text")
	}

	token, user, err := svc.Login(ctx, "jane@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.ID != registered.ID {
		t.Errorf("login user id = %s, want %s", user.ID, registered.ID)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tk *jwt.Token) (any, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", tk.Header["alg"])
		}
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims["id"] != registered.ID {
		t.Errorf("claim id = %v, want %s", claims["id"], registered.ID)
	}
	if claims["email"] != "jane@example.com" {
		t.Errorf("claim email = %v", claims["email"])
	}
	iat, _ := claims["iat"].(float64)
	exp, _ := claims["exp"].(float64)
	if exp-iat != (6 * time.Hour).Seconds() {
		t.Errorf("token lifetime = %v seconds, want 6h", exp-iat)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Jane", "jane@example.com", "hunter22"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, _, err := svc.Login(ctx, "jane@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := svc.Login(ctx, "nobody@example.com", "hunter22"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Jane", "jane@example.com", "hunter22"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Register(ctx, "Other", "jane@example.com", "different"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}
