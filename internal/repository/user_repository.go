package repository

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"studyhive/database"
	"studyhive/internal/models"
)

type UserRepository interface {
	// Search matches name or email against term as a case-insensitive substring.
	Search(ctx context.Context, term string) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Insert(ctx context.Context, u models.User) (models.InsertResult, error)
	UpdateRole(ctx context.Context, id string, role models.Role) (models.UpdateResult, error)
	ListByRole(ctx context.Context, role models.Role) ([]models.User, error)
}

type mongoUserRepo struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &mongoUserRepo{col: db.Collection(database.UsersCollection)}
}

func searchFilter(term string) bson.M {
	rx := bson.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
	return bson.M{"$or": []bson.M{
		{"name": bson.M{"$regex": rx}},
		{"email": bson.M{"$regex": rx}},
	}}
}

func (r *mongoUserRepo) Search(ctx context.Context, term string) ([]models.User, error) {
	return findAll[models.User](ctx, r.col, searchFilter(term))
}

func (r *mongoUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return findOne[models.User](ctx, r.col, bson.M{"email": email})
}

func (r *mongoUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	return findByID[models.User](ctx, r.col, id)
}

func (r *mongoUserRepo) Insert(ctx context.Context, u models.User) (models.InsertResult, error) {
	u.ID = bson.NewObjectID()
	res, err := insert(ctx, r.col, u)
	if mongo.IsDuplicateKeyError(err) {
		return models.InsertResult{}, ErrDuplicateEmail
	}
	return res, err
}

func (r *mongoUserRepo) UpdateRole(ctx context.Context, id string, role models.Role) (models.UpdateResult, error) {
	return setByID(ctx, r.col, id, bson.M{"role": role})
}

func (r *mongoUserRepo) ListByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	return findAll[models.User](ctx, r.col, bson.M{"role": role})
}
