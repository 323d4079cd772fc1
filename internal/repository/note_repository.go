package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"studyhive/database"
	"studyhive/internal/models"
)

type NoteRepository interface {
	ListByOwner(ctx context.Context, email string) ([]models.Note, error)
	FindByID(ctx context.Context, id string) (*models.Note, error)
	Insert(ctx context.Context, n models.Note) (models.InsertResult, error)
	Update(ctx context.Context, id, title, description string) (models.UpdateResult, error)
	Delete(ctx context.Context, id string) (models.DeleteResult, error)
}

type mongoNoteRepo struct {
	col *mongo.Collection
}

func NewNoteRepository(db *mongo.Database) NoteRepository {
	return &mongoNoteRepo{col: db.Collection(database.NotesCollection)}
}

func (r *mongoNoteRepo) ListByOwner(ctx context.Context, email string) ([]models.Note, error) {
	return findAll[models.Note](ctx, r.col, bson.M{"email": email})
}

func (r *mongoNoteRepo) FindByID(ctx context.Context, id string) (*models.Note, error) {
	return findByID[models.Note](ctx, r.col, id)
}

func (r *mongoNoteRepo) Insert(ctx context.Context, n models.Note) (models.InsertResult, error) {
	n.ID = bson.NewObjectID()
	return insert(ctx, r.col, n)
}

func (r *mongoNoteRepo) Update(ctx context.Context, id, title, description string) (models.UpdateResult, error) {
	return setByID(ctx, r.col, id, bson.M{"title": title, "description": description})
}

func (r *mongoNoteRepo) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	return deleteByID(ctx, r.col, id)
}
