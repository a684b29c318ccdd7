//go:build integration

package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	mongocontainer "github.com/testcontainers/testcontainers-go/modules/mongodb"

	"github.com/EdDee296/exercise-log-api/internal/domain"
)

func setupRepository(t *testing.T) *Repository {
	t.Helper()
	ctx := context.Background()

	container, err := mongocontainer.Run(ctx, "mongo:7")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := Connect(ctx, uri)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(ctx) })

	repo := NewRepository(client.Database("exercise_log_test"))
	require.NoError(t, repo.EnsureIndexes(ctx))
	return repo
}

func TestUserRoundTrip(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	created, err := repo.InsertUser(ctx, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	found, err := repo.FindUserByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, created, *found)

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, created, users[0])
}

func TestFindUserByIDMalformedAndUnknown(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	found, err := repo.FindUserByID(ctx, "not-a-hex-id")
	require.NoError(t, err)
	require.Nil(t, found)

	found, err = repo.FindUserByID(ctx, "64f000000000000000000000")
	require.NoError(t, err)
	require.Nil(t, found)
}

func TestExerciseLogFiltering(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	user, err := repo.InsertUser(ctx, "alice")
	require.NoError(t, err)

	days := []time.Time{
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, day := range days {
		_, err := repo.InsertExercise(ctx, domain.Exercise{
			OwnerID:     user.ID,
			Description: "jog",
			DurationMin: 30,
			Date:        day,
		})
		require.NoError(t, err)
	}

	from := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	entries, err := repo.ListExercisesByOwner(ctx, user.ID, domain.LogFilter{From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.True(t, entries[0].Date.Equal(days[1]))

	entries, err = repo.ListExercisesByOwner(ctx, user.ID, domain.LogFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	entries, err = repo.ListExercisesByOwner(ctx, user.ID, domain.LogFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 3, "no limit applies no cap")
}
