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
	// ErrPostNotFound is returned when no post exists for the given id.
	ErrPostNotFound = errors.New("post not found")
	// ErrInvalidID is returned when an id is not a valid ObjectID hex string.
	ErrInvalidID = errors.New("invalid id format")
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	ListSoonest(ctx context.Context, limit int64) ([]models.Post, error)
	ListPosts(ctx context.Context, filter PostFilter, sort PostSort, page PostPage) ([]models.Post, error)
	CountByTitle(ctx context.Context, search string) (int64, error)
	ListByOrganizer(ctx context.Context, email string) ([]models.Post, error)
	GetPostByID(ctx context.Context, id string) (*models.Post, error)
	CreatePost(ctx context.Context, post *models.Post) error
	UpdatePost(ctx context.Context, id string, post *models.Post) error
	DeletePost(ctx context.Context, id string) error
	ReserveSlot(ctx context.Context, id string) (bool, error)
	ReleaseSlot(ctx context.Context, id string) error
}

// MongoPostRepository implements PostRepository for MongoDB
type MongoPostRepository struct {
	collection *mongo.Collection
}

// NewMongoPostRepository creates a new MongoPostRepository
func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{collection: db.Collection("volunteer-post")}
}

// ListSoonest retrieves the posts with the nearest deadlines for the
// landing-page preview.
func (r *MongoPostRepository) ListSoonest(ctx context.Context, limit int64) ([]models.Post, error) {
	findOptions := options.Find().SetLimit(limit).SetSort(bson.D{{Key: "deadline", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// ListPosts retrieves posts matching the filter, sorted and paginated.
func (r *MongoPostRepository) ListPosts(ctx context.Context, filter PostFilter, sort PostSort, page PostPage) ([]models.Post, error) {
	cursor, err := r.collection.Find(ctx, buildPostFilter(filter), buildFindOptions(sort, page))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// CountByTitle counts posts whose title matches the search string.
func (r *MongoPostRepository) CountByTitle(ctx context.Context, search string) (int64, error) {
	return r.collection.CountDocuments(ctx, buildCountFilter(search))
}

// ListByOrganizer retrieves all posts owned by the given organizer email.
func (r *MongoPostRepository) ListByOrganizer(ctx context.Context, email string) ([]models.Post, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"organizer_Email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPostByID retrieves a post by ID from MongoDB
func (r *MongoPostRepository) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidID, err)
	}

	var post models.Post
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// CreatePost creates a new post in MongoDB
func (r *MongoPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID()
	_, err := r.collection.InsertOne(ctx, post)
	return err
}

// UpdatePost replaces the full business field set of an existing post.
// Fields outside this set are left untouched.
func (r *MongoPostRepository) UpdatePost(ctx context.Context, id string, post *models.Post) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidID, err)
	}

	update := bson.M{
		"$set": bson.M{
			"title":             post.Title,
			"category":          post.Category,
			"location":          post.Location,
			"numberOfVolunteer": post.NumberOfVolunteer,
			"photo_url":         post.PhotoURL,
			"description":       post.Description,
			"deadline":          post.Deadline,
			"organizer_Email":   post.OrganizerEmail,
			"organizer_Name":    post.OrganizerName,
		},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrPostNotFound
	}
	return nil
}

// DeletePost deletes a post by ID from MongoDB
func (r *MongoPostRepository) DeletePost(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidID, err)
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrPostNotFound
	}
	return nil
}

// ReserveSlot atomically takes one volunteer slot on the post. The
// decrement only matches while numberOfVolunteer is above zero, so the
// counter can never go negative. Returns false when the post is full
// or does not exist.
func (r *MongoPostRepository) ReserveSlot(ctx context.Context, id string) (bool, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidID, err)
	}

	filter := bson.M{"_id": objID, "numberOfVolunteer": bson.M{"$gt": 0}}
	res, err := r.collection.UpdateOne(ctx, filter, bson.M{"$inc": bson.M{"numberOfVolunteer": -1}})
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

// ReleaseSlot gives one volunteer slot back. A post that no longer
// exists is tolerated: withdrawing a request must still succeed.
func (r *MongoPostRepository) ReleaseSlot(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidID, err)
	}

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$inc": bson.M{"numberOfVolunteer": 1}})
	return err
}
