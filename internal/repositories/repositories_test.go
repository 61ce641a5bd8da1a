package repositories_test

import (
	"context"
	"fmt"
	"testing"

	"moodboard/internal/database"
	"moodboard/internal/models"
	"moodboard/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory database with the schema and moods in
// place.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := database.Open(dsn, zap.NewNop().Sugar())
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.SeedMoods(context.Background(), db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func createUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: name + "@x.com", Password: "hash"}
	require.NoError(t, repositories.NewGORMUserRepository(db).Create(context.Background(), user))
	return user
}

func mood(t *testing.T, db *gorm.DB, name string) *models.Mood {
	t.Helper()
	m, err := repositories.NewGORMMoodRepository(db).GetByName(context.Background(), name)
	require.NoError(t, err)
	return m
}
