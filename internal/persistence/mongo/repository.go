// Package mongo provides MongoDB-backed persistence for users and exercises.
package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/EdDee296/exercise-log-api/internal/domain"
)

// Connect dials MongoDB and verifies the connection with a ping.
func Connect(ctx context.Context, uri string) (*driver.Client, error) {
	client, err := driver.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return client, nil
}

// Repository implements the domain repositories over two collections.
type Repository struct {
	users     *driver.Collection
	exercises *driver.Collection
}

// NewRepository constructs a Repository on the given database.
func NewRepository(db *driver.Database) *Repository {
	return &Repository{
		users:     db.Collection("users"),
		exercises: db.Collection("exercises"),
	}
}

// EnsureIndexes creates the owner/date index the log query relies on.
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.exercises.Indexes().CreateOne(ctx, driver.IndexModel{
		Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "date", Value: 1}},
	})
	return err
}

type userDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
}

type exerciseDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID     string             `bson:"ownerId"`
	Description string             `bson:"description"`
	DurationMin int                `bson:"duration"`
	Date        time.Time          `bson:"date"`
}

// InsertUser implements domain.UserRepository.
func (r *Repository) InsertUser(ctx context.Context, username string) (domain.User, error) {
	res, err := r.users.InsertOne(ctx, userDoc{Username: username})
	if err != nil {
		return domain.User{}, err
	}
	id := res.InsertedID.(primitive.ObjectID)
	return domain.User{ID: id.Hex(), Username: username}, nil
}

// ListUsers implements domain.UserRepository.
func (r *Repository) ListUsers(ctx context.Context) ([]domain.User, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1, "username": 1})
	cursor, err := r.users.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	var docs []userDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]domain.User, 0, len(docs))
	for _, doc := range docs {
		out = append(out, domain.User{ID: doc.ID.Hex(), Username: doc.Username})
	}
	return out, nil
}

// FindUserByID implements domain.UserRepository. A malformed hex id is treated
// the same as an unknown one: (nil, nil).
func (r *Repository) FindUserByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var doc userDoc
	if err := r.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	user := domain.User{ID: doc.ID.Hex(), Username: doc.Username}
	return &user, nil
}

// InsertExercise implements domain.ExerciseRepository.
func (r *Repository) InsertExercise(ctx context.Context, exercise domain.Exercise) (domain.Exercise, error) {
	res, err := r.exercises.InsertOne(ctx, exerciseDoc{
		OwnerID:     exercise.OwnerID,
		Description: exercise.Description,
		DurationMin: exercise.DurationMin,
		Date:        exercise.Date,
	})
	if err != nil {
		return domain.Exercise{}, err
	}
	exercise.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return exercise, nil
}

// ListExercisesByOwner implements domain.ExerciseRepository.
func (r *Repository) ListExercisesByOwner(ctx context.Context, ownerID string, filter domain.LogFilter) ([]domain.Exercise, error) {
	query := bson.M{"ownerId": ownerID}

	dateBounds := bson.M{}
	if filter.From != nil {
		dateBounds["$gte"] = *filter.From
	}
	if filter.To != nil {
		dateBounds["$lte"] = *filter.To
	}
	if len(dateBounds) > 0 {
		query["date"] = dateBounds
	}

	opts := options.Find()
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cursor, err := r.exercises.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	var docs []exerciseDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]domain.Exercise, 0, len(docs))
	for _, doc := range docs {
		out = append(out, domain.Exercise{
			ID:          doc.ID.Hex(),
			OwnerID:     doc.OwnerID,
			Description: doc.Description,
			DurationMin: doc.DurationMin,
			Date:        doc.Date,
		})
	}
	return out, nil
}
