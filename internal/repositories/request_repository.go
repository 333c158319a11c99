package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/volunize-hub/backend/internal/models"
)

var (
	// ErrAlreadyApplied is returned when the volunteer already has a
	// request for the same post.
	ErrAlreadyApplied = errors.New("already applied to this post")
	// ErrRequestNotFound is returned when no request exists for the given id.
	ErrRequestNotFound = errors.New("request not found")
)

// RequestRepository defines the interface for volunteer-request data operations
type RequestRepository interface {
	CreateRequest(ctx context.Context, request *models.VolunteerRequest) error
	DeleteRequest(ctx context.Context, id string) error
	ListByVolunteer(ctx context.Context, email string) ([]models.VolunteerRequest, error)
	EnsureIndexes(ctx context.Context) error
}

// MongoRequestRepository implements RequestRepository for MongoDB
type MongoRequestRepository struct {
	collection *mongo.Collection
}

// NewMongoRequestRepository creates a new MongoRequestRepository
func NewMongoRequestRepository(db *mongo.Database) *MongoRequestRepository {
	return &MongoRequestRepository{collection: db.Collection("volunteer-request")}
}

// EnsureIndexes creates the unique index on (volunteer_email, postId).
// The store enforces one request per volunteer per post, so concurrent
// applications surface as a duplicate-key conflict instead of a
// silently inserted duplicate.
func (r *MongoRequestRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "volunteer_email", Value: 1}, {Key: "postId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// CreateRequest inserts a new volunteer request. A duplicate
// (volunteer_email, postId) pair returns ErrAlreadyApplied.
func (r *MongoRequestRepository) CreateRequest(ctx context.Context, request *models.VolunteerRequest) error {
	request.ID = primitive.NewObjectID()
	_, err := r.collection.InsertOne(ctx, request)
	if mongo.IsDuplicateKeyError(err) {
		return ErrAlreadyApplied
	}
	return err
}

// DeleteRequest deletes a volunteer request by ID
func (r *MongoRequestRepository) DeleteRequest(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidID, err)
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrRequestNotFound
	}
	return nil
}

// ListByVolunteer retrieves all requests placed by the given volunteer email.
func (r *MongoRequestRepository) ListByVolunteer(ctx context.Context, email string) ([]models.VolunteerRequest, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"volunteer_email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var requests []models.VolunteerRequest
	if err = cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}
