package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"studyhive/database"
	"studyhive/internal/models"
)

type ReviewRepository interface {
	FindBySession(ctx context.Context, sessionID string) (*models.Review, error)
	Insert(ctx context.Context, rv models.Review) (models.InsertResult, error)
}

type mongoReviewRepo struct {
	col *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) ReviewRepository {
	return &mongoReviewRepo{col: db.Collection(database.ReviewsCollection)}
}

func (r *mongoReviewRepo) FindBySession(ctx context.Context, sessionID string) (*models.Review, error) {
	return findOne[models.Review](ctx, r.col, bson.M{"sessionId": refMatch(sessionID)})
}

func (r *mongoReviewRepo) Insert(ctx context.Context, rv models.Review) (models.InsertResult, error) {
	rv.ID = bson.NewObjectID()
	return insert(ctx, r.col, rv)
}
