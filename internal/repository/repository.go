package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"studyhive/internal/models"
	"studyhive/utils"
)

var (
	// ErrInvalidID is returned for a primary key that is not a 24-hex ObjectID.
	ErrInvalidID = errors.New("invalid id")
	// ErrDuplicateEmail is returned when the unique email index rejects an insert.
	ErrDuplicateEmail = errors.New("email already registered")
)

// ===== MongoDB stage/keyword constants =====
const (
	StageMatch  = "$match"
	StageLookup = "$lookup"
	StageUnwind = "$unwind"

	KeyFrom     = "from"
	KeyAs       = "as"
	KeyPipeline = "pipeline"
	KeyLet      = "let"
)

const opTimeout = 5 * time.Second

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, opTimeout)
}

func oid(hex string) (bson.ObjectID, error) {
	id, err := utils.Oid(hex)
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("%w: %q", ErrInvalidID, hex)
	}
	return id, nil
}

func findAll[T any](ctx context.Context, col *mongo.Collection, filter any) ([]T, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	cur, err := col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// findOne returns nil, nil when nothing matches.
func findOne[T any](ctx context.Context, col *mongo.Collection, filter any) (*T, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var doc T
	err := col.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func findByID[T any](ctx context.Context, col *mongo.Collection, id string) (*T, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	return findOne[T](ctx, col, bson.M{"_id": objID})
}

func insert(ctx context.Context, col *mongo.Collection, doc any) (models.InsertResult, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := col.InsertOne(ctx, doc)
	if err != nil {
		return models.InsertResult{}, err
	}
	return models.InsertResult{Acknowledged: true, InsertedID: idString(res.InsertedID)}, nil
}

// setByID applies a $set of the given fields to the document with the given id.
func setByID(ctx context.Context, col *mongo.Collection, id string, fields bson.M) (models.UpdateResult, error) {
	objID, err := oid(id)
	if err != nil {
		return models.UpdateResult{}, err
	}
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := col.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": fields})
	if err != nil {
		return models.UpdateResult{}, err
	}
	return models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    idString(res.UpsertedID),
	}, nil
}

func deleteByID(ctx context.Context, col *mongo.Collection, id string) (models.DeleteResult, error) {
	objID, err := oid(id)
	if err != nil {
		return models.DeleteResult{}, err
	}
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := col.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return models.DeleteResult{}, err
	}
	return models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

// refMatch matches a cross-collection reference stored either as canonical
// hex text or, in older documents, as a native ObjectID.
func refMatch(ref string) any {
	ref = utils.CanonicalRef(ref)
	if id, err := bson.ObjectIDFromHex(ref); err == nil {
		return bson.M{"$in": bson.A{ref, id}}
	}
	return ref
}

func idString(id any) *string {
	switch v := id.(type) {
	case nil:
		return nil
	case bson.ObjectID:
		s := v.Hex()
		return &s
	default:
		s := fmt.Sprint(v)
		return &s
	}
}
