// Package domain defines the business logic for the exercise log service.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/EdDee296/exercise-log-api/internal/events"
	"github.com/EdDee296/exercise-log-api/internal/observability"
)

// ErrUserNotFound is returned when an owner id does not resolve to a stored
// user. A malformed id resolves the same way; ids are never validated up front.
var ErrUserNotFound = errors.New("user not found")

// UserRepository captures persistence operations on the users collection.
type UserRepository interface {
	// InsertUser persists a new user and returns it with the store-generated id.
	InsertUser(ctx context.Context, username string) (User, error)
	// ListUsers returns every user in store-natural order.
	ListUsers(ctx context.Context) ([]User, error)
	// FindUserByID resolves a user by id. Unknown and malformed ids both
	// return (nil, nil).
	FindUserByID(ctx context.Context, id string) (*User, error)
}

// ExerciseRepository captures persistence operations on the exercises collection.
type ExerciseRepository interface {
	InsertExercise(ctx context.Context, exercise Exercise) (Exercise, error)
	// ListExercisesByOwner returns the owner's exercises matching the filter,
	// in store-natural order, capped at filter.Limit when positive.
	ListExercisesByOwner(ctx context.Context, ownerID string, filter LogFilter) ([]Exercise, error)
}

// Service orchestrates user and exercise workflows.
type Service struct {
	users     UserRepository
	exercises ExerciseRepository
	publisher events.Publisher
	log       *logrus.Logger
}

// NewService constructs a Service.
func NewService(users UserRepository, exercises ExerciseRepository, publisher events.Publisher, log *logrus.Logger) *Service {
	return &Service{users: users, exercises: exercises, publisher: publisher, log: log}
}

// ListUsers returns every stored user.
func (s *Service) ListUsers(ctx context.Context) ([]User, error) {
	return s.users.ListUsers(ctx)
}

// CreateUser persists a new user. Duplicate usernames are allowed.
func (s *Service) CreateUser(ctx context.Context, username string) (*User, error) {
	user, err := s.users.InsertUser(ctx, username)
	if err != nil {
		return nil, err
	}

	observability.RecordUserCreated()
	s.publish(ctx, func(ctx context.Context) error {
		return s.publisher.PublishUserCreated(ctx, events.UserCreated{
			UserID:   user.ID,
			Username: user.Username,
		})
	})
	return &user, nil
}

// AddExerciseInput captures the payload from the API layer. A nil Date means
// "today at handling time".
type AddExerciseInput struct {
	OwnerID     string
	Description string
	DurationMin int
	Date        *time.Time
}

// LoggedExercise pairs a persisted exercise with its owner.
type LoggedExercise struct {
	User     User
	Exercise Exercise
}

// AddExercise looks up the owner, persists the exercise and returns both.
// The owner reference is checked once here and never re-validated afterwards.
func (s *Service) AddExercise(ctx context.Context, input AddExerciseInput) (*LoggedExercise, error) {
	user, err := s.users.FindUserByID(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	date := Today()
	if input.Date != nil {
		date = *input.Date
	}

	exercise, err := s.exercises.InsertExercise(ctx, Exercise{
		OwnerID:     user.ID,
		Description: input.Description,
		DurationMin: input.DurationMin,
		Date:        date,
	})
	if err != nil {
		return nil, err
	}

	observability.RecordExerciseLogged(time.Now().UTC())
	s.publish(ctx, func(ctx context.Context) error {
		return s.publisher.PublishExerciseLogged(ctx, events.ExerciseLogged{
			ExerciseID:  exercise.ID,
			OwnerID:     exercise.OwnerID,
			Description: exercise.Description,
			DurationMin: exercise.DurationMin,
			Date:        exercise.Date,
		})
	})

	return &LoggedExercise{User: *user, Exercise: exercise}, nil
}

// LogResult is the filtered view of a user's exercise log.
type LogResult struct {
	User    User
	Entries []Exercise
}

// GetLog resolves the owner and fetches their filtered exercise log.
func (s *Service) GetLog(ctx context.Context, ownerID string, filter LogFilter) (*LogResult, error) {
	user, err := s.users.FindUserByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	entries, err := s.exercises.ListExercisesByOwner(ctx, user.ID, filter)
	if err != nil {
		return nil, err
	}
	return &LogResult{User: *user, Entries: entries}, nil
}

// publish delivers an event best-effort. Delivery runs on a detached context
// with a short deadline so a slow broker cannot stall or fail the request.
func (s *Service) publish(ctx context.Context, fn func(context.Context) error) {
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()

	if err := fn(publishCtx); err != nil {
		s.log.WithError(err).Warn("event publish failed")
	}
}
