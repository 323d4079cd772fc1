package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"studyhive/database"
	"studyhive/internal/models"
)

// CourseRepository exposes one method per allowed partial update, so every
// write sets a fixed set of fields.
type CourseRepository interface {
	ListByStatus(ctx context.Context, status models.CourseStatus) ([]models.Course, error)
	ListByTutor(ctx context.Context, tutorEmail string, status models.CourseStatus) ([]models.Course, error)
	FindByID(ctx context.Context, id string) (*models.Course, error)
	Insert(ctx context.Context, c models.Course) (models.InsertResult, error)
	Approve(ctx context.Context, id string, fee float64) (models.UpdateResult, error)
	Reject(ctx context.Context, id, reason, feedback string) (models.UpdateResult, error)
	ResetToPending(ctx context.Context, id string) (models.UpdateResult, error)
	UpdateDetails(ctx context.Context, id string, d models.CourseDetails) (models.UpdateResult, error)
	Delete(ctx context.Context, id string) (models.DeleteResult, error)
}

type mongoCourseRepo struct {
	col *mongo.Collection
}

func NewCourseRepository(db *mongo.Database) CourseRepository {
	return &mongoCourseRepo{col: db.Collection(database.CoursesCollection)}
}

func (r *mongoCourseRepo) ListByStatus(ctx context.Context, status models.CourseStatus) ([]models.Course, error) {
	return findAll[models.Course](ctx, r.col, bson.M{"status": status})
}

func (r *mongoCourseRepo) ListByTutor(ctx context.Context, tutorEmail string, status models.CourseStatus) ([]models.Course, error) {
	return findAll[models.Course](ctx, r.col, bson.M{"tutorEmail": tutorEmail, "status": status})
}

func (r *mongoCourseRepo) FindByID(ctx context.Context, id string) (*models.Course, error) {
	return findByID[models.Course](ctx, r.col, id)
}

func (r *mongoCourseRepo) Insert(ctx context.Context, c models.Course) (models.InsertResult, error) {
	c.ID = bson.NewObjectID()
	return insert(ctx, r.col, c)
}

func (r *mongoCourseRepo) Approve(ctx context.Context, id string, fee float64) (models.UpdateResult, error) {
	return setByID(ctx, r.col, id, bson.M{
		"status":          models.StatusApproved,
		"registrationFee": fee,
	})
}

func (r *mongoCourseRepo) Reject(ctx context.Context, id, reason, feedback string) (models.UpdateResult, error) {
	return setByID(ctx, r.col, id, bson.M{
		"status":       models.StatusRejected,
		"rejectReason": reason,
		"feedback":     feedback,
	})
}

func (r *mongoCourseRepo) ResetToPending(ctx context.Context, id string) (models.UpdateResult, error) {
	return setByID(ctx, r.col, id, bson.M{"status": models.StatusPending})
}

func (r *mongoCourseRepo) UpdateDetails(ctx context.Context, id string, d models.CourseDetails) (models.UpdateResult, error) {
	return setByID(ctx, r.col, id, bson.M{
		"tutorEmail":            d.TutorEmail,
		"title":                 d.Title,
		"description":           d.Description,
		"registrationStartDate": d.RegistrationStartDate,
		"registrationEndDate":   d.RegistrationEndDate,
		"classStartTime":        d.ClassStartTime,
		"classEndDate":          d.ClassEndDate,
		"registrationFee":       d.RegistrationFee,
		"duration":              d.Duration,
	})
}

func (r *mongoCourseRepo) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	return deleteByID(ctx, r.col, id)
}
