package bootstrap

import (
	"context"
	"fmt"

	"github.com/golang/glog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"golang.org/x/sync/errgroup"

	"studyhive/database"
)

type indexSpec struct {
	collection string
	keys       bson.D
	name       string
	unique     bool
}

func (s indexSpec) model() mongo.IndexModel {
	opts := options.Index().SetName(s.name)
	if s.unique {
		opts.SetUnique(true)
	}
	return mongo.IndexModel{Keys: s.keys, Options: opts}
}

// Bookings have no unique (studentEmail, sessionId) index: booking the same
// session twice is allowed.
var indexSpecs = []indexSpec{
	{database.UsersCollection, bson.D{{Key: "email", Value: 1}}, "uniq_email", true},
	{database.UsersCollection, bson.D{{Key: "role", Value: 1}}, "role", false},
	{database.CoursesCollection, bson.D{{Key: "status", Value: 1}, {Key: "tutorEmail", Value: 1}}, "status_tutor", false},
	{database.BookingsCollection, bson.D{{Key: "studentEmail", Value: 1}}, "student", false},
	{database.ReviewsCollection, bson.D{{Key: "sessionId", Value: 1}}, "session", false},
	{database.NotesCollection, bson.D{{Key: "email", Value: 1}}, "owner", false},
	{database.MaterialsCollection, bson.D{{Key: "tutorEmail", Value: 1}}, "tutor", false},
	{database.MaterialsCollection, bson.D{{Key: "sessionId", Value: 1}}, "session", false},
}

// EnsureIndexes creates every index the service relies on. The unique email
// index is what keeps concurrent POST /users calls from inserting twice.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, spec := range indexSpecs {
		g.Go(func() error {
			_, err := db.Collection(spec.collection).Indexes().CreateOne(ctx, spec.model())
			switch {
			case err == nil:
				return nil
			case blockedByDuplicates(spec, err):
				// UserService.Create still checks by email before inserting.
				glog.Errorf("index %s.%s not built, %s already holds duplicate keys: %v",
					spec.collection, spec.name, spec.collection, err)
				return nil
			default:
				return fmt.Errorf("ensure index %s.%s: %w", spec.collection, spec.name, err)
			}
		})
	}
	return g.Wait()
}

// blockedByDuplicates reports whether a unique index build failed on data
// that predates the index.
func blockedByDuplicates(spec indexSpec, err error) bool {
	return spec.unique && mongo.IsDuplicateKeyError(err)
}
