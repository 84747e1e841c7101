package user

import (
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/salestrack/sales-api/internal/apperr"
	"github.com/salestrack/sales-api/internal/config"
	"github.com/salestrack/sales-api/internal/models"
	"github.com/salestrack/sales-api/internal/utils/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	database, err := db.OpenInMemory()
	require.NoError(t, err, "Failed to create test database")
	return database
}

func TestRegister_StoresHashNotPlaintext(t *testing.T) {
	database := setupTestDB(t)
	store := NewStore()

	u, err := store.Register(database, "ana", "ana@example.com", "s3cret", false)
	require.NoError(t, err)
	assert.NotZero(t, u.ID)

	var stored models.User
	require.NoError(t, database.First(&stored, u.ID).Error)
	assert.NotEqual(t, "s3cret", stored.UserPassword)
	assert.NotEmpty(t, stored.UserPassword)
}

func TestRegister_Conflicts(t *testing.T) {
	database := setupTestDB(t)
	store := NewStore()

	_, err := store.Register(database, "ana", "ana@example.com", "s3cret", false)
	require.NoError(t, err)

	_, err = store.Register(database, "ana", "other@example.com", "x", false)
	assert.ErrorIs(t, err, apperr.ErrConflict)

	_, err = store.Register(database, "bia", "ana@example.com", "x", false)
	assert.ErrorIs(t, err, apperr.ErrConflict)

	var count int64
	database.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRegister_RequiresFields(t *testing.T) {
	store := NewStore()
	database := setupTestDB(t)

	_, err := store.Register(database, " ", "a@b.c", "x", false)
	assert.ErrorIs(t, err, apperr.ErrValidation)
	_, err = store.Register(database, "a", "", "x", false)
	assert.ErrorIs(t, err, apperr.ErrValidation)
	_, err = store.Register(database, "a", "a@b.c", "", false)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestAuthenticate(t *testing.T) {
	database := setupTestDB(t)
	store := NewStore()
	_, err := store.Register(database, "ana", "ana@example.com", "s3cret", true)
	require.NoError(t, err)

	u, ok := store.Authenticate(database, "ana", "s3cret")
	require.True(t, ok)
	assert.True(t, u.IsAdmin)

	u, ok = store.Authenticate(database, "ana", "wrong")
	assert.False(t, ok)
	assert.Nil(t, u)

	u, ok = store.Authenticate(database, "nobody", "s3cret")
	assert.False(t, ok)
	assert.Nil(t, u)
}

func TestSeedAdmin(t *testing.T) {
	database := setupTestDB(t)
	log := zerolog.New(io.Discard)

	require.NoError(t, SeedAdmin(database, &config.Config{}, log))
	var count int64
	database.Model(&models.User{}).Count(&count)
	assert.Zero(t, count)

	cfg := &config.Config{AdminName: "root", AdminPassword: "pw"}
	require.NoError(t, SeedAdmin(database, cfg, log))
	require.NoError(t, SeedAdmin(database, cfg, log), "seeding twice is a no-op")

	u, ok := NewStore().Authenticate(database, "root", "pw")
	require.True(t, ok)
	assert.True(t, u.IsAdmin)
	assert.Equal(t, "root@localhost", u.UserEmail)
}
