package actions_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"github.com/devoverflow/backend/internal/actions"
	"github.com/devoverflow/backend/internal/database"
	"github.com/devoverflow/backend/internal/models"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("devoverflow_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Fatalf("failed to get connection string: %v", err)
	}

	testDB, err = database.Open(dsn)
	if err != nil {
		log.Fatalf("failed to open test database: %v", err)
	}

	if err := database.Migrate(testDB); err != nil {
		log.Fatalf("failed to migrate test database: %v", err)
	}

	code := m.Run()

	_ = container.Terminate(ctx)
	os.Exit(code)
}

// newService wipes the schema and returns a service with a synchronous
// dispatcher so deferred side effects are visible to assertions.
func newService(t *testing.T) *actions.Service {
	t.Helper()

	err := testDB.Exec(
		"TRUNCATE users, questions, answers, tags, tag_questions, votes, interactions, collections RESTART IDENTITY CASCADE",
	).Error
	require.NoError(t, err)

	svc := actions.New(testDB)
	svc.SetDispatcher(func(fn func()) { fn() })
	return svc
}

func createUser(t *testing.T, username string) models.User {
	t.Helper()

	user := models.User{
		Username:     username,
		Name:         username,
		Email:        fmt.Sprintf("%s@example.com", username),
		Password:     "hashed",
		AuthProvider: "email",
	}
	require.NoError(t, testDB.Create(&user).Error)
	return user
}

func reputationOf(t *testing.T, userID int) int {
	t.Helper()

	var user models.User
	require.NoError(t, testDB.First(&user, userID).Error)
	return user.Reputation
}

func questionByID(t *testing.T, id int) models.Question {
	t.Helper()

	var q models.Question
	require.NoError(t, testDB.First(&q, id).Error)
	return q
}

func tagByName(t *testing.T, name string) models.Tag {
	t.Helper()

	var tag models.Tag
	require.NoError(t, testDB.Where("name = ?", name).First(&tag).Error)
	return tag
}

func countRows(t *testing.T, model any, query string, args ...any) int64 {
	t.Helper()

	var n int64
	q := testDB.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}
