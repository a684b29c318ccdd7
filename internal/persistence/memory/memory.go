// Package memory stores users and exercises in memory for tests and local
// development without a MongoDB instance.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/EdDee296/exercise-log-api/internal/domain"
)

// Store implements the domain repositories over in-process slices. Records
// keep insertion order, matching the store-natural order of the Mongo backend.
type Store struct {
	mu        sync.RWMutex
	users     []domain.User
	exercises []domain.Exercise
}

// NewStore constructs an empty Store.
func NewStore() *Store {
	return &Store{}
}

// InsertUser implements domain.UserRepository.
func (s *Store) InsertUser(ctx context.Context, username string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := domain.User{ID: uuid.NewString(), Username: username}
	s.users = append(s.users, user)
	return user, nil
}

// ListUsers implements domain.UserRepository.
func (s *Store) ListUsers(ctx context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

// FindUserByID implements domain.UserRepository. Unknown ids return (nil, nil).
func (s *Store) FindUserByID(ctx context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.ID == id {
			found := user
			return &found, nil
		}
	}
	return nil, nil
}

// InsertExercise implements domain.ExerciseRepository.
func (s *Store) InsertExercise(ctx context.Context, exercise domain.Exercise) (domain.Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exercise.ID = uuid.NewString()
	s.exercises = append(s.exercises, exercise)
	return exercise, nil
}

// ListExercisesByOwner implements domain.ExerciseRepository.
func (s *Store) ListExercisesByOwner(ctx context.Context, ownerID string, filter domain.LogFilter) ([]domain.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Exercise, 0)
	for _, exercise := range s.exercises {
		if exercise.OwnerID != ownerID {
			continue
		}
		if filter.From != nil && exercise.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && exercise.Date.After(*filter.To) {
			continue
		}
		out = append(out, exercise)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}
