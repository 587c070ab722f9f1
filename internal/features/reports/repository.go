package reports

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "springwatch/pkg/errors"
)

// Repository is the gateway to the "updates" collection, the sole
// source of truth for reports.
type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("updates")

	collection.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})

	return &Repository{collection: collection}
}

// Append writes a new immutable record. The store side assigns both the
// id and the creation time; whatever the caller put in those fields is
// overwritten, so client clock skew can never corrupt the feed order.
func (r *Repository) Append(ctx context.Context, report *Report) error {
	report.ID = primitive.NilObjectID
	report.CreatedAt = At(time.Now())

	result, err := r.collection.InsertOne(ctx, report)
	if err != nil {
		return fmt.Errorf("%w: insert report: %v", apperrors.ErrStorage, err)
	}

	report.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// ListAll returns every report ordered newest-first.
func (r *Repository) ListAll(ctx context.Context) ([]Report, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: list reports: %v", apperrors.ErrFetch, err)
	}
	defer cursor.Close(ctx)

	var reports []Report
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, fmt.Errorf("%w: decode reports: %v", apperrors.ErrFetch, err)
	}

	if reports == nil {
		reports = []Report{}
	}

	return reports, nil
}

// Latest returns the most recent report, or nil when the collection is
// empty.
func (r *Repository) Latest(ctx context.Context) (*Report, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var report Report
	err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(&report)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: latest report: %v", apperrors.ErrFetch, err)
	}

	return &report, nil
}

// Count returns the number of stored reports.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("%w: count reports: %v", apperrors.ErrFetch, err)
	}
	return count, nil
}
