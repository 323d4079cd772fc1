package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"studyhive/database"
	"studyhive/internal/models"
)

type MaterialRepository interface {
	List(ctx context.Context) ([]models.Material, error)
	ListByTutor(ctx context.Context, tutorEmail string) ([]models.Material, error)
	ListBySession(ctx context.Context, sessionID string) ([]models.Material, error)
	Insert(ctx context.Context, m models.Material) (models.InsertResult, error)
	Update(ctx context.Context, id, title, image, material string) (models.UpdateResult, error)
	Delete(ctx context.Context, id string) (models.DeleteResult, error)
}

type mongoMaterialRepo struct {
	col *mongo.Collection
}

func NewMaterialRepository(db *mongo.Database) MaterialRepository {
	return &mongoMaterialRepo{col: db.Collection(database.MaterialsCollection)}
}

func (r *mongoMaterialRepo) List(ctx context.Context) ([]models.Material, error) {
	return findAll[models.Material](ctx, r.col, bson.M{})
}

func (r *mongoMaterialRepo) ListByTutor(ctx context.Context, tutorEmail string) ([]models.Material, error) {
	return findAll[models.Material](ctx, r.col, bson.M{"tutorEmail": tutorEmail})
}

func (r *mongoMaterialRepo) ListBySession(ctx context.Context, sessionID string) ([]models.Material, error) {
	return findAll[models.Material](ctx, r.col, bson.M{"sessionId": refMatch(sessionID)})
}

func (r *mongoMaterialRepo) Insert(ctx context.Context, m models.Material) (models.InsertResult, error) {
	m.ID = bson.NewObjectID()
	return insert(ctx, r.col, m)
}

func (r *mongoMaterialRepo) Update(ctx context.Context, id, title, image, material string) (models.UpdateResult, error) {
	return setByID(ctx, r.col, id, bson.M{"title": title, "image": image, "material": material})
}

func (r *mongoMaterialRepo) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	return deleteByID(ctx, r.col, id)
}
