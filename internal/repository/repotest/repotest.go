// Package repotest provides in-memory repositories for handler and service
// tests. They honour the same contracts as the MongoDB implementations:
// invalid ids fail with repository.ErrInvalidID, missing documents are nil.
package repotest

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"studyhive/internal/models"
	"studyhive/internal/repository"
	"studyhive/utils"
)

// ErrInjected is returned by a fake whose Fail field is set.
var ErrInjected = errors.New("injected failure")

type store[T any] struct {
	mu    sync.Mutex
	order []bson.ObjectID
	docs  map[bson.ObjectID]*T
}

func (s *store[T]) add(id bson.ObjectID, doc T) models.InsertResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.docs == nil {
		s.docs = map[bson.ObjectID]*T{}
	}
	s.docs[id] = &doc
	s.order = append(s.order, id)
	hex := id.Hex()
	return models.InsertResult{Acknowledged: true, InsertedID: &hex}
}

func (s *store[T]) filter(match func(*T) bool) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []T{}
	for _, id := range s.order {
		if d, ok := s.docs[id]; ok && match(d) {
			out = append(out, *d)
		}
	}
	return out
}

func (s *store[T]) first(match func(*T) bool) *T {
	if all := s.filter(match); len(all) > 0 {
		return &all[0]
	}
	return nil
}

func (s *store[T]) get(id string) (*T, error) {
	oid, err := utils.Oid(id)
	if err != nil {
		return nil, repository.ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if d, ok := s.docs[oid]; ok {
		cp := *d
		return &cp, nil
	}
	return nil, nil
}

// set applies mutate and reports whether the document changed.
func (s *store[T]) set(id string, mutate func(*T) bool) (models.UpdateResult, error) {
	oid, err := utils.Oid(id)
	if err != nil {
		return models.UpdateResult{}, repository.ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	res := models.UpdateResult{Acknowledged: true}
	if d, ok := s.docs[oid]; ok {
		res.MatchedCount = 1
		if mutate(d) {
			res.ModifiedCount = 1
		}
	}
	return res, nil
}

func (s *store[T]) remove(id string) (models.DeleteResult, error) {
	oid, err := utils.Oid(id)
	if err != nil {
		return models.DeleteResult{}, repository.ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	res := models.DeleteResult{Acknowledged: true}
	if _, ok := s.docs[oid]; ok {
		delete(s.docs, oid)
		res.DeletedCount = 1
	}
	return res, nil
}

func changed[V comparable](dst *V, v V) bool {
	if *dst == v {
		return false
	}
	*dst = v
	return true
}

// ===== users =====

type Users struct {
	store[models.User]
	Fail bool
}

var _ repository.UserRepository = (*Users)(nil)

func (r *Users) Search(_ context.Context, term string) ([]models.User, error) {
	if r.Fail {
		return nil, ErrInjected
	}
	term = strings.ToLower(term)
	return r.filter(func(u *models.User) bool {
		return strings.Contains(strings.ToLower(u.Name), term) || strings.Contains(strings.ToLower(u.Email), term)
	}), nil
}

func (r *Users) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if r.Fail {
		return nil, ErrInjected
	}
	return r.first(func(u *models.User) bool { return u.Email == email }), nil
}

func (r *Users) FindByID(_ context.Context, id string) (*models.User, error) {
	return r.get(id)
}

func (r *Users) Insert(_ context.Context, u models.User) (models.InsertResult, error) {
	if r.Fail {
		return models.InsertResult{}, ErrInjected
	}
	if r.first(func(x *models.User) bool { return x.Email == u.Email }) != nil {
		return models.InsertResult{}, repository.ErrDuplicateEmail
	}
	u.ID = bson.NewObjectID()
	return r.add(u.ID, u), nil
}

func (r *Users) UpdateRole(_ context.Context, id string, role models.Role) (models.UpdateResult, error) {
	return r.set(id, func(u *models.User) bool { return changed(&u.Role, role) })
}

func (r *Users) ListByRole(_ context.Context, role models.Role) ([]models.User, error) {
	return r.filter(func(u *models.User) bool { return u.Role == role }), nil
}

// ===== courses =====

type Courses struct {
	store[models.Course]
}

var _ repository.CourseRepository = (*Courses)(nil)

func (r *Courses) ListByStatus(_ context.Context, status models.CourseStatus) ([]models.Course, error) {
	return r.filter(func(c *models.Course) bool { return c.Status == status }), nil
}

func (r *Courses) ListByTutor(_ context.Context, tutorEmail string, status models.CourseStatus) ([]models.Course, error) {
	return r.filter(func(c *models.Course) bool { return c.TutorEmail == tutorEmail && c.Status == status }), nil
}

func (r *Courses) FindByID(_ context.Context, id string) (*models.Course, error) {
	return r.get(id)
}

func (r *Courses) Insert(_ context.Context, c models.Course) (models.InsertResult, error) {
	c.ID = bson.NewObjectID()
	return r.add(c.ID, c), nil
}

func (r *Courses) Approve(_ context.Context, id string, fee float64) (models.UpdateResult, error) {
	return r.set(id, func(c *models.Course) bool {
		a := changed(&c.Status, models.StatusApproved)
		b := changed(&c.RegistrationFee, models.Number(fee))
		return a || b
	})
}

func (r *Courses) Reject(_ context.Context, id, reason, feedback string) (models.UpdateResult, error) {
	return r.set(id, func(c *models.Course) bool {
		a := changed(&c.Status, models.StatusRejected)
		b := changed(&c.RejectReason, reason)
		d := changed(&c.Feedback, feedback)
		return a || b || d
	})
}

func (r *Courses) ResetToPending(_ context.Context, id string) (models.UpdateResult, error) {
	return r.set(id, func(c *models.Course) bool { return changed(&c.Status, models.StatusPending) })
}

func (r *Courses) UpdateDetails(_ context.Context, id string, d models.CourseDetails) (models.UpdateResult, error) {
	return r.set(id, func(c *models.Course) bool {
		before := *c
		c.TutorEmail = d.TutorEmail
		c.Title = d.Title
		c.Description = d.Description
		c.RegistrationStartDate = models.Text(d.RegistrationStartDate)
		c.RegistrationEndDate = models.Text(d.RegistrationEndDate)
		c.ClassStartTime = models.Text(d.ClassStartTime)
		c.ClassEndDate = models.Text(d.ClassEndDate)
		c.RegistrationFee = models.Number(d.RegistrationFee)
		c.Duration = models.Text(d.Duration)
		return before != *c
	})
}

func (r *Courses) Delete(_ context.Context, id string) (models.DeleteResult, error) {
	return r.remove(id)
}

// ===== bookings =====

// Bookings joins against Courses the way the aggregation pipeline does.
type Bookings struct {
	store[models.Booking]
	Courses *Courses
}

var _ repository.BookingRepository = (*Bookings)(nil)

func (r *Bookings) Insert(_ context.Context, b models.Booking) (models.InsertResult, error) {
	b.ID = bson.NewObjectID()
	return r.add(b.ID, b), nil
}

func (r *Bookings) ListWithSession(ctx context.Context, studentEmail string) ([]models.BookedSession, error) {
	out := []models.BookedSession{}
	for _, b := range r.filter(func(b *models.Booking) bool { return b.StudentEmail == studentEmail }) {
		bs := models.BookedSession{Booking: b}
		if r.Courses != nil {
			if c, err := r.Courses.FindByID(ctx, string(b.SessionID)); err == nil {
				bs.SessionInfo = c
			}
		}
		out = append(out, bs)
	}
	return out, nil
}

// ===== reviews =====

type Reviews struct {
	store[models.Review]
}

var _ repository.ReviewRepository = (*Reviews)(nil)

func (r *Reviews) FindBySession(_ context.Context, sessionID string) (*models.Review, error) {
	ref := models.Ref(utils.CanonicalRef(sessionID))
	return r.first(func(rv *models.Review) bool { return rv.SessionID == ref }), nil
}

func (r *Reviews) Insert(_ context.Context, rv models.Review) (models.InsertResult, error) {
	rv.ID = bson.NewObjectID()
	return r.add(rv.ID, rv), nil
}

// ===== notes =====

type Notes struct {
	store[models.Note]
}

var _ repository.NoteRepository = (*Notes)(nil)

func (r *Notes) ListByOwner(_ context.Context, email string) ([]models.Note, error) {
	return r.filter(func(n *models.Note) bool { return n.Email == email }), nil
}

func (r *Notes) FindByID(_ context.Context, id string) (*models.Note, error) {
	return r.get(id)
}

func (r *Notes) Insert(_ context.Context, n models.Note) (models.InsertResult, error) {
	n.ID = bson.NewObjectID()
	return r.add(n.ID, n), nil
}

func (r *Notes) Update(_ context.Context, id, title, description string) (models.UpdateResult, error) {
	return r.set(id, func(n *models.Note) bool {
		a := changed(&n.Title, title)
		b := changed(&n.Description, description)
		return a || b
	})
}

func (r *Notes) Delete(_ context.Context, id string) (models.DeleteResult, error) {
	return r.remove(id)
}

// ===== materials =====

type Materials struct {
	store[models.Material]
}

var _ repository.MaterialRepository = (*Materials)(nil)

func (r *Materials) List(_ context.Context) ([]models.Material, error) {
	return r.filter(func(*models.Material) bool { return true }), nil
}

func (r *Materials) ListByTutor(_ context.Context, tutorEmail string) ([]models.Material, error) {
	return r.filter(func(m *models.Material) bool { return m.TutorEmail == tutorEmail }), nil
}

func (r *Materials) ListBySession(_ context.Context, sessionID string) ([]models.Material, error) {
	ref := models.Ref(utils.CanonicalRef(sessionID))
	return r.filter(func(m *models.Material) bool { return m.SessionID == ref }), nil
}

func (r *Materials) Insert(_ context.Context, m models.Material) (models.InsertResult, error) {
	m.ID = bson.NewObjectID()
	return r.add(m.ID, m), nil
}

func (r *Materials) Update(_ context.Context, id, title, image, material string) (models.UpdateResult, error) {
	return r.set(id, func(m *models.Material) bool {
		a := changed(&m.Title, title)
		b := changed(&m.Image, image)
		c := changed(&m.Material, material)
		return a || b || c
	})
}

func (r *Materials) Delete(_ context.Context, id string) (models.DeleteResult, error) {
	return r.remove(id)
}
