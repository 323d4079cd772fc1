package models

import "go.mongodb.org/mongo-driver/v2/bson"

type Role string

const (
	RoleStudent Role = "student"
	RoleTutor   Role = "tutor"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTutor, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID    bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name  string        `bson:"name" json:"name"`
	Email string        `bson:"email" json:"email"`
	Photo string        `bson:"photo,omitempty" json:"photo,omitempty"`
	Role  Role          `bson:"role" json:"role"`
}
