package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tuistmessiah/active-sloth-api/internal/errs"
	"github.com/Tuistmessiah/active-sloth-api/internal/models"
)

func TestStorage_RegisterUser(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	changedAt := time.Now().UTC().Add(-time.Second)
	user := models.User{
		UID:               uuid.NewString(),
		Name:              "testuser",
		Email:             "test@example.com",
		PasswordHash:      "hashedpassword",
		Role:              models.RoleUser,
		PasswordChangedAt: &changedAt,
		Tags:              models.DefaultTags(),
	}

	uid, err := storage.RegisterUser(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, user.UID, uid)

	got, err := storage.GetUserByEmail(context.Background(), "test@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.UID, got.UID)
	assert.Equal(t, "testuser", got.Name)
	assert.True(t, got.Active)
	assert.Len(t, got.Tags, 5)
	require.NotNil(t, got.PasswordChangedAt)
	assert.WithinDuration(t, changedAt, *got.PasswordChangedAt, time.Second)

	// Повторная регистрация на тот же email упирается в уникальный индекс.
	dup := user
	dup.UID = uuid.NewString()
	_, err = storage.RegisterUser(context.Background(), dup)
	assert.ErrorIs(t, err, errs.ErrAlreadyExists)
}

func TestStorage_GetUser_NotFound(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	_, err := storage.GetUserByEmail(context.Background(), "missing@example.com")
	assert.ErrorIs(t, err, errs.ErrNotFound)

	_, err = storage.GetUserByUID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestStorage_UpdateUser(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	userUID := factory.CreateUser(t, "oldname", "test@example.com")

	t.Run("name only keeps tags", func(t *testing.T) {
		name := "newname"
		got, err := storage.UpdateUser(context.Background(), userUID, &name, nil)
		require.NoError(t, err)
		assert.Equal(t, "newname", got.Name)
	})

	t.Run("tags only keeps name", func(t *testing.T) {
		tags := []models.Tag{{Title: "running", Color: "#FFA500"}}
		got, err := storage.UpdateUser(context.Background(), userUID, nil, tags)
		require.NoError(t, err)
		assert.Equal(t, "newname", got.Name)
		assert.Equal(t, tags, got.Tags)
	})

	t.Run("unknown user", func(t *testing.T) {
		name := "whoever"
		_, err := storage.UpdateUser(context.Background(), uuid.NewString(), &name, nil)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestStorage_DeactivateUser(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	userUID := factory.CreateUser(t, "testuser", "test@example.com")

	require.NoError(t, storage.DeactivateUser(context.Background(), userUID))

	// Мягко удаленный пользователь исчезает из выборок.
	_, err := storage.GetUserByUID(context.Background(), userUID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	_, err = storage.GetUserByEmail(context.Background(), "test@example.com")
	assert.ErrorIs(t, err, errs.ErrNotFound)

	// Но запись остается в базе.
	var count int
	require.NoError(t, storage.DB.QueryRow(
		"SELECT COUNT(*) FROM users WHERE uid = $1", userUID).Scan(&count))
	assert.Equal(t, 1, count)

	// Повторная деактивация - уже не найден.
	assert.ErrorIs(t, storage.DeactivateUser(context.Background(), userUID), errs.ErrNotFound)
}
