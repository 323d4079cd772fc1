package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"studyhive/database"
	"studyhive/internal/models"
)

type BookingRepository interface {
	Insert(ctx context.Context, b models.Booking) (models.InsertResult, error)
	// ListWithSession returns the student's bookings, each joined with its
	// course under sessionInfo.
	ListWithSession(ctx context.Context, studentEmail string) ([]models.BookedSession, error)
}

type mongoBookingRepo struct {
	col *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) BookingRepository {
	return &mongoBookingRepo{col: db.Collection(database.BookingsCollection)}
}

func (r *mongoBookingRepo) Insert(ctx context.Context, b models.Booking) (models.InsertResult, error) {
	b.ID = bson.NewObjectID()
	return insert(ctx, r.col, b)
}

// bookedSessionsPipeline joins on the string form of both keys: sessionId has
// been stored both as hex text and as a native ObjectID over time. Bookings
// whose course is gone are kept without sessionInfo.
func bookedSessionsPipeline(studentEmail string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: StageMatch, Value: bson.M{"studentEmail": studentEmail}}},
		{{Key: StageLookup, Value: bson.M{
			KeyFrom: database.CoursesCollection,
			KeyLet:  bson.M{"sessionId": "$sessionId"},
			KeyPipeline: mongo.Pipeline{
				{{Key: StageMatch, Value: bson.M{
					"$expr": bson.M{"$eq": bson.A{
						bson.M{"$toString": "$_id"},
						bson.M{"$toString": "$$sessionId"},
					}},
				}}},
			},
			KeyAs: "sessionInfo",
		}}},
		{{Key: StageUnwind, Value: bson.M{
			"path":                       "$sessionInfo",
			"preserveNullAndEmptyArrays": true,
		}}},
	}
}

func (r *mongoBookingRepo) ListWithSession(ctx context.Context, studentEmail string) ([]models.BookedSession, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	cur, err := r.col.Aggregate(ctx, bookedSessionsPipeline(studentEmail))
	if err != nil {
		return nil, err
	}
	out := []models.BookedSession{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
