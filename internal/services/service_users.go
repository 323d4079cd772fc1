package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang/glog"

	"studyhive/internal/models"
	"studyhive/internal/repository"
)

var (
	ErrInvalidRole  = errors.New("invalid role")
	ErrMissingEmail = errors.New("email is required")
)

type UserService struct {
	users   repository.UserRepository
	revoked RevocationStore
	now     func() time.Time
}

func NewUserService(users repository.UserRepository, revoked RevocationStore) *UserService {
	return &UserService{users: users, revoked: revoked, now: time.Now}
}

// Create inserts u unless a user with the same email exists, in which case
// existed is true and nothing is written.
func (s *UserService) Create(ctx context.Context, u models.User) (res models.InsertResult, existed bool, err error) {
	u.Email = strings.TrimSpace(u.Email)
	if u.Email == "" {
		return res, false, ErrMissingEmail
	}
	if u.Role == "" {
		u.Role = models.RoleStudent
	}
	if !u.Role.Valid() {
		return res, false, ErrInvalidRole
	}

	current, err := s.users.FindByEmail(ctx, u.Email)
	if err != nil {
		return res, false, err
	}
	if current != nil {
		return res, true, nil
	}

	res, err = s.users.Insert(ctx, u)
	if errors.Is(err, repository.ErrDuplicateEmail) {
		// lost the race to a concurrent insert of the same email
		return models.InsertResult{}, true, nil
	}
	return res, false, err
}

// ChangeRole sets the user's role and revokes tokens minted before the change.
func (s *UserService) ChangeRole(ctx context.Context, id string, role models.Role) (models.UpdateResult, error) {
	if !role.Valid() {
		return models.UpdateResult{}, ErrInvalidRole
	}
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return models.UpdateResult{}, err
	}
	res, err := s.users.UpdateRole(ctx, id, role)
	if err != nil {
		return res, err
	}
	if u != nil && res.ModifiedCount > 0 && s.revoked != nil {
		if err := s.revoked.MarkRoleChanged(ctx, u.Email, s.now()); err != nil {
			glog.Errorf("record role change for %s: %v", u.Email, err)
		}
	}
	return res, nil
}

// RoleOf returns the stored role of email, or student when the user is unknown.
func (s *UserService) RoleOf(ctx context.Context, email string) (models.Role, error) {
	if email == "" {
		return models.RoleStudent, nil
	}
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u == nil || !u.Role.Valid() {
		return models.RoleStudent, nil
	}
	return u.Role, nil
}

func (s *UserService) HasRole(ctx context.Context, email string, role models.Role) (bool, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil || u == nil {
		return false, err
	}
	return u.Role == role, nil
}
