package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleStudent, RoleTutor, RoleAdmin} {
		assert.True(t, r.Valid(), string(r))
	}
	for _, r := range []Role{"", "Admin", "teacher"} {
		assert.False(t, r.Valid(), string(r))
	}
}

func TestCourseStatusValid(t *testing.T) {
	for _, s := range []CourseStatus{StatusPending, StatusApproved, StatusRejected} {
		assert.True(t, s.Valid(), string(s))
	}
	for _, s := range []CourseStatus{"", "archived", "APPROVED"} {
		assert.False(t, s.Valid(), string(s))
	}
}
